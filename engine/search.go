package engine

import (
	"context"

	"golang.org/x/exp/slices"

	"github.com/oliverans-student/chessengine/chess"
	"github.com/oliverans-student/chessengine/game"
)

// Search constants, per SPEC_FULL.md section 4.6.
const (
	MateScore = 30000
	DrawScore = 0
	Inf       = 32000
)

type scoredMove struct {
	move  chess.Move
	score int
}

// scoreMove assigns a move-ordering heuristic score: MVV-LVA-ish for
// captures, a flat promotion bonus, and a small bonus for pawn pushes into
// the center. Ported from original_source's score_move.
func scoreMove(pos *chess.Position, m chess.Move) int {
	score := 0
	from, to := m.From(), m.To()
	us := pos.Turn()
	them := us.Other()

	if m.IsCapture() {
		for pt := chess.PieceType(0); pt < 6; pt++ {
			if pos.PieceBB(them, pt).Has(to) {
				score += (int(pt) + 1) * 100 // victim
			}
			if pos.PieceBB(us, pt).Has(from) {
				score -= (int(pt) + 1) * 10 // attacker
			}
		}
	}
	if m.IsPromotion() {
		score += 800
	}
	if pos.PieceBB(us, chess.Pawn).Has(from) && isCentralSquare(to) {
		score += 20
	}
	return score
}

func isCentralSquare(sq chess.Square) bool {
	return sq == 27 || sq == 28 || sq == 35 || sq == 36 // d4, e4, d5, e5
}

// orderMoves scores moves[:n] and sorts scored[:n] into descending order,
// in place over a fixed-capacity stack array -- no per-node allocation, per
// SPEC_FULL.md section 9's redesign note.
func orderMoves(pos *chess.Position, moves []chess.Move, n int, scored *[chess.MaxMoves]scoredMove) {
	for i := 0; i < n; i++ {
		scored[i] = scoredMove{move: moves[i], score: scoreMove(pos, moves[i])}
	}
	slices.SortFunc(scored[:n], func(a, b scoredMove) bool { return a.score > b.score })
}

func negamax(g *game.Game, depth, alpha, beta int) int {
	pos := g.Position

	if depth == 0 {
		e := Eval(pos)
		if pos.Turn() == chess.Black {
			e = -e
		}
		return e
	}
	if g.IsDraw() {
		return DrawScore
	}

	var buf [chess.MaxMoves]chess.Move
	n := g.GetMoves(buf[:])
	if n == 0 {
		if pos.KingChecked(pos.Turn()) {
			return -(MateScore + depth)
		}
		return DrawScore
	}

	var scored [chess.MaxMoves]scoredMove
	orderMoves(pos, buf[:n], n, &scored)

	for i := 0; i < n; i++ {
		g.MakeMove(scored[i].move)
		score := -negamax(g, depth-1, -beta, -alpha)
		g.UndoMove()

		if score >= beta {
			return beta // beta cutoff
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

// Solve returns the best move for the side to move at the given search depth
// and its centipawn score from that side's perspective. If the position has
// no legal moves, it returns the zero-valued Move and an appropriate
// mate/stalemate score; callers must check move count before consuming the
// move (SPEC_FULL.md section 7/9).
//
// ctx is checked between root-move iterations only; negamax itself takes no
// context, so a cancellation takes effect at the next root move rather than
// mid-recursion (SPEC_FULL.md section 5). On cancellation, Solve returns the
// best move and score found among the root moves already searched.
func Solve(ctx context.Context, g *game.Game, depth int) (chess.Move, int) {
	var buf [chess.MaxMoves]chess.Move
	n := g.GetMoves(buf[:])
	if n == 0 {
		if g.Position.KingChecked(g.Position.Turn()) {
			return chess.Move(0), -MateScore
		}
		return chess.Move(0), DrawScore
	}

	var scored [chess.MaxMoves]scoredMove
	orderMoves(g.Position, buf[:n], n, &scored)

	var best chess.Move
	bestScore := -Inf
	alpha, beta := -Inf, Inf

	for i := 0; i < n; i++ {
		if ctx.Err() != nil {
			break
		}
		g.MakeMove(scored[i].move)
		score := -negamax(g, depth-1, -beta, -alpha)
		g.UndoMove()

		if score > bestScore {
			bestScore = score
			best = scored[i].move
		}
		if score > alpha {
			alpha = score
		}
	}
	return best, bestScore
}
