package engine

import "github.com/oliverans-student/chessengine/chess"

// Game phase for piece-square table lookups.
const (
	midgame = 0
	endgame = 1
)

// mirrorSquare flips a square vertically for Black, so both colors read the
// same white-oriented table. (56 ^ (sq & 56)) isolates and flips the rank
// bits; (sq & 7) keeps the file.
func mirrorSquare(c chess.Color, sq chess.Square) chess.Square {
	if c == chess.White {
		return sq
	}
	s := int(sq)
	return chess.Square((56 ^ (s & 56)) | (s & 7))
}

var pstPawnMid = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	10, 10, 10, -10, -10, 10, 10, 10,
	5, 5, 10, 15, 15, 10, 5, 5,
	2, 2, 5, 10, 10, 5, 2, 2,
	1, 1, 2, 5, 5, 2, 1, 1,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, -10, -10, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var pstPawnEnd = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	10, 10, 10, 15, 15, 10, 10, 10,
	10, 10, 15, 20, 20, 15, 10, 10,
	15, 15, 20, 30, 30, 20, 15, 15,
	20, 20, 30, 40, 40, 30, 20, 20,
	30, 30, 40, 50, 50, 40, 30, 30,
	50, 50, 60, 70, 70, 60, 50, 50,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var pstKnight = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var pstBishop = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var pstRookMid = [64]int{
	0, 0, 5, 10, 10, 5, 0, 0,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	5, 10, 10, 10, 10, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var pstRookEnd = [64]int{
	0, 0, 0, 5, 5, 0, 0, 0,
	0, 0, 0, 10, 10, 0, 0, 0,
	0, 0, 0, 15, 15, 0, 0, 0,
	5, 5, 10, 20, 20, 10, 5, 5,
	5, 5, 10, 20, 20, 10, 5, 5,
	0, 5, 10, 15, 15, 10, 5, 0,
	0, 0, 5, 10, 10, 5, 0, 0,
	0, 0, 5, 5, 5, 5, 0, 0,
}

var pstQueenMid = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var pstQueenEnd = [64]int{
	-10, -5, -5, -5, -5, -5, -5, -10,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 5, 5, 5, 5, 0, -5,
	-5, 0, 5, 10, 10, 5, 0, -5,
	-5, 0, 5, 10, 10, 5, 0, -5,
	-5, 0, 5, 5, 5, 5, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-10, -5, -5, -5, -5, -5, -5, -10,
}

var pstKingMid = [64]int{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

var pstKingEnd = [64]int{
	-50, -40, -30, -20, -20, -30, -40, -50,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-50, -30, -30, -30, -30, -30, -30, -50,
}

// pst[phase][pieceType][square]
var pst = [2][6]*[64]int{
	{&pstPawnMid, &pstKnight, &pstBishop, &pstRookMid, &pstQueenMid, &pstKingMid},
	{&pstPawnEnd, &pstKnight, &pstBishop, &pstRookEnd, &pstQueenEnd, &pstKingEnd},
}
