// Package engine implements the tapered evaluator and fail-hard alpha-beta
// negamax search described in SPEC_FULL.md sections 4.5/4.6.
package engine

import "github.com/oliverans-student/chessengine/chess"

var pieceValues = [6]int{100, 320, 330, 500, 900, 0}
var phaseWeights = [6]int{0, 1, 1, 2, 4, 0}

const maxPhase = 24

func totalPhase(pos *chess.Position) int {
	phase := 0
	for c := 0; c < 2; c++ {
		for pt := chess.PieceType(0); pt < 6; pt++ {
			phase += pos.PieceBB(chess.Color(c), pt).PopCount() * phaseWeights[pt]
		}
	}
	if phase > maxPhase {
		phase = maxPhase
	}
	return phase
}

// isPassedPawn reports whether the pawn on sq (belonging to us) has no enemy
// pawn on its file or an adjacent file on any rank ahead of it.
func isPassedPawn(pos *chess.Position, us chess.Color, sq chess.Square) bool {
	file, rank := sq.File(), sq.Rank()
	enemy := pos.PieceBB(us.Other(), chess.Pawn)

	var forwardMask chess.Bitboard
	if us == chess.White {
		for r := rank + 1; r <= 7; r++ {
			forwardMask |= chess.Rank1 << uint(8*r)
		}
	} else {
		for r := rank - 1; r >= 0; r-- {
			forwardMask |= chess.Rank1 << uint(8*r)
		}
	}

	var fileMask chess.Bitboard
	for _, f := range [3]int{file - 1, file, file + 1} {
		if f < 0 || f > 7 {
			continue
		}
		fileMask |= chess.FileA << uint(f)
	}

	return enemy&forwardMask&fileMask == 0
}

// Eval returns a centipawn score from White's perspective: material + PST +
// passed-pawn bonus, tapered between midgame and endgame weights by the
// remaining material on the board. Symmetric: mirroring the board and
// flipping every piece's color negates the score.
func Eval(pos *chess.Position) int {
	mg, eg := 0, 0

	for c := 0; c < 2; c++ {
		color := chess.Color(c)
		sign := 1
		if color == chess.Black {
			sign = -1
		}
		for pt := chess.PieceType(0); pt < 6; pt++ {
			bb := pos.PieceBB(color, pt)
			for bb != 0 {
				sq := bb.PopLSB()
				msq := mirrorSquare(color, sq)
				mg += sign * (pieceValues[pt] + pst[midgame][pt][msq])
				eg += sign * (pieceValues[pt] + pst[endgame][pt][msq])

				if pt == chess.Pawn && isPassedPawn(pos, color, sq) {
					mg += sign * 20
					eg += sign * 40
				}
			}
		}
	}

	phase := totalPhase(pos)
	return (mg*phase + eg*(maxPhase-phase)) / maxPhase
}
