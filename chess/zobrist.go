package chess

import "math/rand"

// Zobrist keys: 768 piece-placement keys (color, piece type, square), 16
// castling-rights combinations, 8 en-passant files, and one side-to-move key.
// Seeded from a fixed constant so any two processes running this module agree.
var (
	zobristPiece   [2][6][64]uint64
	zobristCastle  [16]uint64
	zobristEnFile  [8]uint64
	zobristSide    uint64
)

func initZobrist() {
	rng := rand.New(rand.NewSource(0xC0DE))
	for c := 0; c < 2; c++ {
		for pt := 0; pt < 6; pt++ {
			for sq := 0; sq < 64; sq++ {
				zobristPiece[c][pt][sq] = rng.Uint64()
			}
		}
	}
	for i := range zobristCastle {
		zobristCastle[i] = rng.Uint64()
	}
	for i := range zobristEnFile {
		zobristEnFile[i] = rng.Uint64()
	}
	zobristSide = rng.Uint64()
}

func init() {
	initZobrist()
}
