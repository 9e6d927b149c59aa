package engine

import (
	"context"
	"testing"

	"github.com/oliverans-student/chessengine/chess"
	"github.com/oliverans-student/chessengine/game"
)

func TestSolveFindsMateInOne(t *testing.T) {
	// Black queen and king vs lone white king: black to move at depth 2
	// must produce a mate-in-one score. Several black moves preserve the
	// existing mate (queen defended, king boxed in on the back rank), so this
	// only checks the score, per the documented property.
	g, err := game.NewGame("8/8/8/8/8/3k4/3q4/3K4 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	_, score := Solve(context.Background(), g, 2)
	if score < MateScore-1 {
		t.Errorf("Solve score = %d, want >= %d", score, MateScore-1)
	}
}

func TestSolveReturnsZeroScoreOnStalemate(t *testing.T) {
	// The standard stalemate position: black king on h8 with no legal moves
	// and not in check.
	g, err := game.NewGame("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	var buf [chess.MaxMoves]chess.Move
	if n := g.GetMoves(buf[:]); n != 0 {
		t.Fatalf("expected stalemate position to have no legal moves, got %d", n)
	}
	move, score := Solve(context.Background(), g, 1)
	if move != chess.Move(0) {
		t.Errorf("Solve on stalemate returned move %s, want zero move", move.String())
	}
	if score != DrawScore {
		t.Errorf("Solve on stalemate returned score %d, want %d", score, DrawScore)
	}
}
