// Package game wraps a chess.Position with move history and threefold
// repetition tracking -- the layer a UI or search driver actually calls
// through, per SPEC_FULL.md section 4.7.
package game

import "github.com/oliverans-student/chessengine/chess"

// Game owns a Position plus the ordered history needed to undo moves and
// detect draws. It does not duplicate Position state: the Position is
// mutated in place, and history/repetitions record only what is needed to
// reverse a move or recognize a repeated hash.
type Game struct {
	Position *chess.Position

	history      []chess.UndoState
	moves        []chess.Move
	repetitions  map[uint64]int
}

// NewGame parses fen (the standard start position if empty) into a fresh
// Game. An invalid FEN is returned as an error, never a panic -- FEN parsing
// is a boundary, per SPEC_FULL.md section 7.
func NewGame(fen string) (*Game, error) {
	if fen == "" {
		fen = chess.StartFEN
	}
	pos := &chess.Position{}
	if err := pos.FromFEN(fen); err != nil {
		return nil, err
	}
	g := &Game{Position: pos}
	g.resetHistory()
	return g, nil
}

func (g *Game) resetHistory() {
	g.history = g.history[:0]
	g.moves = g.moves[:0]
	g.repetitions = map[uint64]int{g.Position.Hash(): 1}
}

// Reset returns the game to the standard starting position, clearing history
// and the repetition multiset.
func (g *Game) Reset() {
	pos := &chess.Position{}
	_ = pos.FromFEN(chess.StartFEN)
	g.Position = pos
	g.resetHistory()
}

// GetMoves fills buf with the legal moves for the side to move and returns
// the count.
func (g *Game) GetMoves(buf []chess.Move) int {
	return chess.GenerateMoves(g.Position, buf)
}

// MakeMove applies m, recording undo information and the played move, and
// increments the repetition count for the resulting hash.
func (g *Game) MakeMove(m chess.Move) {
	var undo chess.UndoState
	g.Position.MakeMoveUndo(m, &undo)
	g.history = append(g.history, undo)
	g.moves = append(g.moves, m)
	g.repetitions[g.Position.Hash()]++
}

// UndoMove reverses the most recent MakeMove. Calling it with no history is
// a programming error and panics, matching the core's "no silent repair"
// stance (SPEC_FULL.md section 7).
func (g *Game) UndoMove() {
	if len(g.history) == 0 {
		panic("game: UndoMove called with empty history")
	}
	last := len(g.history) - 1
	g.repetitions[g.Position.Hash()]--
	undo := g.history[last]
	g.Position.UndoMove(&undo)
	g.history = g.history[:last]
	g.moves = g.moves[:last]
}

// History returns the played moves in order. The returned slice aliases
// internal state and must not be mutated.
func (g *Game) History() []chess.Move { return g.moves }

// IsDraw reports the Game-level draw condition: the 50-move rule or
// threefold repetition. This resolves the open question in SPEC_FULL.md
// section 9 -- original_source calls Game.is_draw() from the engine but
// never defines it.
func (g *Game) IsDraw() bool {
	if g.Position.HalfmoveClock() >= 100 {
		return true
	}
	return g.repetitions[g.Position.Hash()] >= 3
}
