package chess

// MaxMoves is the safe upper bound on legal moves in any reachable position;
// callers must supply a buffer of at least this capacity to GenerateMoves.
const MaxMoves = 256

// isValidMove decides legality without mutating the position: it forms the
// hypothetical post-move occupancy, picks the king square (the destination
// if piece is itself the king), excludes the captured square from the enemy
// bitboards, and checks pawn/knight/king/sliding attacks against that
// masked, post-move picture. Grounded on original_source's attacks.cpp
// is_valid -- see SPEC_FULL.md section 4.3.
func isValidMove(p *Position, us Color, piece PieceType, m Move) bool {
	them := us.Other()
	from, to := m.From(), m.To()

	newOcc := p.allOccupancy
	newOcc &^= from.Bit()
	newOcc |= to.Bit()

	mask := Full
	if m.IsEnPassant() {
		capSq := NewSquare(to.File(), from.Rank())
		newOcc &^= capSq.Bit()
		mask &^= capSq.Bit()
	} else if m.IsCapture() {
		mask &^= to.Bit()
	}

	var kingSq Square
	if piece == King {
		kingSq = to
	} else {
		kingSq = p.KingSquare(us)
	}

	if PawnAttacks(us, kingSq)&p.pieces[them][Pawn]&mask != 0 {
		return false
	}
	if KnightAttacks(kingSq)&p.pieces[them][Knight]&mask != 0 {
		return false
	}
	if KingAttacks(kingSq)&p.pieces[them][King]&mask != 0 {
		return false
	}
	bishopsQueens := (p.pieces[them][Bishop] | p.pieces[them][Queen]) & mask
	if BishopAttacks(kingSq, newOcc)&bishopsQueens != 0 {
		return false
	}
	rooksQueens := (p.pieces[them][Rook] | p.pieces[them][Queen]) & mask
	if RookAttacks(kingSq, newOcc)&rooksQueens != 0 {
		return false
	}
	return true
}

const promoRankWhite = 7
const promoRankBlack = 0

var promoFlags = [4]uint16{FlagPromoN, FlagPromoB, FlagPromoR, FlagPromoQ}
var promoFlagsCapture = [4]uint16{FlagPromoN | 1, FlagPromoB | 1, FlagPromoR | 1, FlagPromoQ | 1}

// GenerateMoves fills buf with every strictly legal move for the side to
// move and returns the count. buf must have capacity >= MaxMoves; it is
// never reallocated, per SPEC_FULL.md section 5's no-allocation contract.
func GenerateMoves(p *Position, buf []Move) int {
	p.ValidateOccupancy()
	us := p.Turn()
	them := us.Other()
	ownOcc := p.occupancy[us]
	enemyOcc := p.occupancy[them]
	empty := ^p.allOccupancy

	n := 0
	add := func(piece PieceType, m Move) {
		// The enemy king is never a capture target.
		if p.pieces[them][King].Has(m.To()) {
			return
		}
		if isValidMove(p, us, piece, m) {
			buf[n] = m
			n++
		}
	}

	genPawns(p, us, empty, enemyOcc, add)

	knights := p.pieces[us][Knight]
	for knights != 0 {
		from := knights.PopLSB()
		targets := KnightAttacks(from) &^ ownOcc
		emitSimple(targets, from, enemyOcc, Knight, add)
	}

	bishops := p.pieces[us][Bishop]
	for bishops != 0 {
		from := bishops.PopLSB()
		targets := BishopAttacks(from, p.allOccupancy) &^ ownOcc
		emitSimple(targets, from, enemyOcc, Bishop, add)
	}

	rooks := p.pieces[us][Rook]
	for rooks != 0 {
		from := rooks.PopLSB()
		targets := RookAttacks(from, p.allOccupancy) &^ ownOcc
		emitSimple(targets, from, enemyOcc, Rook, add)
	}

	queens := p.pieces[us][Queen]
	for queens != 0 {
		from := queens.PopLSB()
		targets := QueenAttacks(from, p.allOccupancy) &^ ownOcc
		emitSimple(targets, from, enemyOcc, Queen, add)
	}

	from := p.KingSquare(us)
	targets := KingAttacks(from) &^ ownOcc
	emitSimple(targets, from, enemyOcc, King, add)
	genCastling(p, us, func(m Move) {
		buf[n] = m
		n++
	})

	return n
}

func emitSimple(targets Bitboard, from Square, enemyOcc Bitboard, piece PieceType, add func(PieceType, Move)) {
	for targets != 0 {
		to := targets.PopLSB()
		flags := FlagQuiet
		if enemyOcc.Has(to) {
			flags = FlagCapture
		}
		add(piece, NewMove(from, to, flags))
	}
}

func genPawns(p *Position, us Color, empty, enemyOcc Bitboard, add func(PieceType, Move)) {
	them := us.Other()
	pawns := p.pieces[us][Pawn]
	forward := 1
	startRank := 1
	promoRank := promoRankWhite
	if us == Black {
		forward = -1
		startRank = 6
		promoRank = promoRankBlack
	}

	bb := pawns
	for bb != 0 {
		from := bb.PopLSB()
		file, rank := from.File(), from.Rank()

		// Single push, expanding into four promotions on the last rank.
		oneRank := rank + forward
		if oneRank >= 0 && oneRank <= 7 {
			to := NewSquare(file, oneRank)
			if empty.Has(to) {
				if oneRank == promoRank {
					emitPromotions(from, to, false, add)
				} else {
					add(Pawn, NewMove(from, to, FlagQuiet))
					// Double push from the starting rank.
					if rank == startRank {
						twoRank := rank + 2*forward
						to2 := NewSquare(file, twoRank)
						if empty.Has(to2) {
							add(Pawn, NewMove(from, to2, FlagDoublePush))
						}
					}
				}
			}
		}

		// Diagonal captures, including en passant.
		for _, df := range [2]int{-1, 1} {
			nf := file + df
			nr := rank + forward
			if nf < 0 || nf > 7 || nr < 0 || nr > 7 {
				continue
			}
			to := NewSquare(nf, nr)
			if enemyOcc.Has(to) {
				if nr == promoRank {
					emitPromotions(from, to, true, add)
				} else {
					add(Pawn, NewMove(from, to, FlagCapture))
				}
			} else if p.enPassantSquare != NoSquare && to == p.enPassantSquare {
				add(Pawn, NewMove(from, to, FlagEnPassant))
			}
		}
	}
	_ = them
}

func emitPromotions(from, to Square, capture bool, add func(PieceType, Move)) {
	flags := &promoFlags
	if capture {
		flags = &promoFlagsCapture
	}
	for _, f := range flags {
		add(Pawn, NewMove(from, to, f))
	}
}

// genCastling checks castling's preconditions directly against the current
// (pre-move) occupancy and attack picture, per SPEC_FULL.md section 4.4 --
// unlike every other move kind, castling legality is not decided by the
// generic post-move isValidMove filter, since the rook's relocation would
// need to be reflected in a hypothetical occupancy that filter does not
// model. raw appends straight to the move buffer.
func genCastling(p *Position, us Color, raw func(Move)) {
	rank := 0
	kRight, qRight := CastleWK, CastleWQ
	if us == Black {
		rank = 7
		kRight, qRight = CastleBK, CastleBQ
	}
	from := NewSquare(4, rank)
	if p.KingSquare(us) != from {
		return
	}

	if p.castlingRights&kRight != 0 {
		f1, f2 := NewSquare(5, rank), NewSquare(6, rank)
		if !p.allOccupancy.Has(f1) && !p.allOccupancy.Has(f2) &&
			!p.SquareAttacked(us, from) && !p.SquareAttacked(us, f1) && !p.SquareAttacked(us, f2) {
			raw(NewMove(from, f2, FlagCastleK))
		}
	}
	if p.castlingRights&qRight != 0 {
		f1, f2, f3 := NewSquare(3, rank), NewSquare(2, rank), NewSquare(1, rank)
		if !p.allOccupancy.Has(f1) && !p.allOccupancy.Has(f2) && !p.allOccupancy.Has(f3) &&
			!p.SquareAttacked(us, from) && !p.SquareAttacked(us, f1) && !p.SquareAttacked(us, f2) {
			raw(NewMove(from, f2, FlagCastleQ))
		}
	}
}
