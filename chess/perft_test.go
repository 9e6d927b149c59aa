package chess

import "testing"

// Perft seed positions and expected node counts, per SPEC_FULL.md section 8.
func TestPerftStartingPosition(t *testing.T) {
	p := &Position{}
	if err := p.FromFEN(StartFEN); err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
	}
	for _, c := range cases {
		if got := Perft(p, c.depth); got != c.want {
			t.Errorf("Perft(start, %d) = %d, want %d", c.depth, got, c.want)
		}
	}
}

func TestPerftStartingPositionDeep(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep perft in short mode")
	}
	p := &Position{}
	if err := p.FromFEN(StartFEN); err != nil {
		t.Fatal(err)
	}
	if got := Perft(p, 4); got != 197281 {
		t.Errorf("Perft(start, 4) = %d, want 197281", got)
	}
	if got := Perft(p, 5); got != 4865609 {
		t.Errorf("Perft(start, 5) = %d, want 4865609", got)
	}
}

func TestPerftKiwipete(t *testing.T) {
	p := &Position{}
	if err := p.FromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"); err != nil {
		t.Fatal(err)
	}
	if got := Perft(p, 1); got != 48 {
		t.Errorf("Perft(kiwipete, 1) = %d, want 48", got)
	}
	if got := Perft(p, 2); got != 2039 {
		t.Errorf("Perft(kiwipete, 2) = %d, want 2039", got)
	}
	if testing.Short() {
		return
	}
	if got := Perft(p, 3); got != 97862 {
		t.Errorf("Perft(kiwipete, 3) = %d, want 97862", got)
	}
}

func TestPerftPinsAndEnPassant(t *testing.T) {
	p := &Position{}
	if err := p.FromFEN("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"); err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 14},
		{2, 191},
		{3, 2812},
	}
	for _, c := range cases {
		if got := Perft(p, c.depth); got != c.want {
			t.Errorf("Perft(pins/ep, %d) = %d, want %d", c.depth, got, c.want)
		}
	}
	if testing.Short() {
		return
	}
	if got := Perft(p, 4); got != 43238 {
		t.Errorf("Perft(pins/ep, 4) = %d, want 43238", got)
	}
}

func TestPerftPromotions(t *testing.T) {
	p := &Position{}
	if err := p.FromFEN("r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"); err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 6},
		{2, 264},
		{3, 9467},
	}
	for _, c := range cases {
		if got := Perft(p, c.depth); got != c.want {
			t.Errorf("Perft(promotions, %d) = %d, want %d", c.depth, got, c.want)
		}
	}
	if testing.Short() {
		return
	}
	if got := Perft(p, 4); got != 422333 {
		t.Errorf("Perft(promotions, 4) = %d, want 422333", got)
	}
}

func TestPerftDivideSumsToPerft(t *testing.T) {
	p := &Position{}
	if err := p.FromFEN(StartFEN); err != nil {
		t.Fatal(err)
	}
	div := PerftDivide(p, 3)
	var sum uint64
	for _, n := range div {
		sum += n
	}
	if want := Perft(p, 3); sum != want {
		t.Errorf("PerftDivide sum = %d, want %d", sum, want)
	}
}

func TestGeneratedMovesLeaveOwnKingSafe(t *testing.T) {
	positions := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}
	for _, fen := range positions {
		p := &Position{}
		if err := p.FromFEN(fen); err != nil {
			t.Fatal(err)
		}
		us := p.Turn()
		var buf [MaxMoves]Move
		n := GenerateMoves(p, buf[:])
		for i := 0; i < n; i++ {
			var undo UndoState
			p.MakeMoveUndo(buf[i], &undo)
			if p.KingChecked(us) {
				t.Errorf("%s: move %s leaves own king in check", fen, buf[i].String())
			}
			p.UndoMove(&undo)
		}
	}
}
