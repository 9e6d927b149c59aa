package engine

import (
	"testing"

	"github.com/oliverans-student/chessengine/chess"
)

func TestEvalStartingPositionIsZero(t *testing.T) {
	p := &chess.Position{}
	if err := p.FromFEN(chess.StartFEN); err != nil {
		t.Fatal(err)
	}
	if got := Eval(p); got != 0 {
		t.Errorf("Eval(start) = %d, want 0", got)
	}
}

func TestEvalMirrorSymmetry(t *testing.T) {
	fens := []string{
		"r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
		"8/5k2/8/3P4/8/8/5K2/8 w - - 0 1",
	}
	mirrored := []string{
		"rnbqk2r/pppp1ppp/5n2/2b1p3/4P3/2N5/PPPP1PPP/R1BQKBNR b KQkq - 4 4",
		"8/5k2/8/8/3p4/8/5K2/8 b - - 0 1",
	}
	for i, fen := range fens {
		p := &chess.Position{}
		if err := p.FromFEN(fen); err != nil {
			t.Fatal(err)
		}
		m := &chess.Position{}
		if err := m.FromFEN(mirrored[i]); err != nil {
			t.Fatal(err)
		}
		if Eval(p) != -Eval(m) {
			t.Errorf("Eval(%q) = %d, want -Eval(%q) = %d", fen, Eval(p), mirrored[i], -Eval(m))
		}
	}
}

func TestEvalFavorsMaterialAdvantage(t *testing.T) {
	p := &chess.Position{}
	if err := p.FromFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 1"); err != nil {
		t.Fatal(err)
	}
	if got := Eval(p); got <= 0 {
		t.Errorf("Eval(extra rook for white) = %d, want > 0", got)
	}
}
