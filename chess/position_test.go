package chess

import (
	"errors"
	"testing"
)

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}
	for _, fen := range fens {
		p := &Position{}
		if err := p.FromFEN(fen); err != nil {
			t.Fatalf("FromFEN(%q): %v", fen, err)
		}
		if got := p.ToFEN(); got != fen {
			t.Errorf("round trip: FromFEN(%q).ToFEN() = %q", fen, got)
		}
	}
}

func TestFromFENRejectsMalformed(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w ZZZZ - 0 1",
	}
	for _, fen := range bad {
		p := &Position{}
		if err := p.FromFEN(fen); err == nil {
			t.Errorf("FromFEN(%q): expected error, got nil", fen)
		}
	}
}

func TestFromFENRejectsBadEnPassantSquare(t *testing.T) {
	p := &Position{}
	err := p.FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq j9 0 1")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, ErrInvalidSquare) {
		t.Errorf("FromFEN error = %v, want wrapping ErrInvalidSquare", err)
	}
}

func TestMakeUndoRestoresPosition(t *testing.T) {
	p := &Position{}
	if err := p.FromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"); err != nil {
		t.Fatal(err)
	}
	before := *p
	beforeHash := p.Hash()

	var buf [MaxMoves]Move
	n := GenerateMoves(p, buf[:])
	if n == 0 {
		t.Fatal("expected legal moves")
	}
	for i := 0; i < n; i++ {
		var undo UndoState
		p.MakeMoveUndo(buf[i], &undo)
		p.ValidateOccupancy()
		p.UndoMove(&undo)
		p.ValidateOccupancy()
		if *p != before {
			t.Fatalf("move %s: position not restored by undo", buf[i].String())
		}
		if p.Hash() != beforeHash {
			t.Fatalf("move %s: hash not restored by undo", buf[i].String())
		}
	}
}

func TestHashChangesAcrossMove(t *testing.T) {
	p := &Position{}
	if err := p.FromFEN(StartFEN); err != nil {
		t.Fatal(err)
	}
	h0 := p.Hash()
	var buf [MaxMoves]Move
	GenerateMoves(p, buf[:])
	var undo UndoState
	p.MakeMoveUndo(buf[0], &undo)
	if p.Hash() == h0 {
		t.Fatal("hash did not change after a move")
	}
}

func TestValidateOccupancyPanicsOnCorruption(t *testing.T) {
	p := &Position{}
	if err := p.FromFEN(StartFEN); err != nil {
		t.Fatal(err)
	}
	p.pieces[White][Pawn] |= p.pieces[Black][Knight]

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on overlapping bitboards")
		}
	}()
	p.ValidateOccupancy()
}
