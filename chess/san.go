package chess

import "strings"

func pieceAttackBB(pt PieceType, sq Square, occ Bitboard) Bitboard {
	switch pt {
	case Knight:
		return KnightAttacks(sq)
	case Bishop:
		return BishopAttacks(sq, occ)
	case Rook:
		return RookAttacks(sq, occ)
	case Queen:
		return QueenAttacks(sq, occ)
	case King:
		return KingAttacks(sq)
	default:
		return 0
	}
}

// AlgebraicNotation renders m, which must be legal in p, as Standard
// Algebraic Notation. Disambiguation, capture/promotion/castle notation
// follow SPEC_FULL.md section 4.4. Check/mate suffixes are appended by the
// caller after actually making the move, not by this function.
func (p *Position) AlgebraicNotation(m Move) string {
	if m.IsCastleKingside() {
		return "O-O"
	}
	if m.IsCastleQueenside() {
		return "O-O-O"
	}

	us := p.Turn()
	from, to := m.From(), m.To()
	movedType, ok := p.pieceTypeAt(us, from)
	if !ok {
		return "?"
	}

	var sb strings.Builder
	if movedType == Pawn {
		if m.IsCapture() {
			sb.WriteByte(byte('a' + from.File()))
		}
	} else {
		sb.WriteByte(movedType.Letter())
		writeDisambiguation(&sb, p, us, movedType, from, to, m.IsCapture())
	}

	if m.IsCapture() {
		sb.WriteByte('x')
	}
	sb.WriteString(to.String())

	if m.IsPromotion() {
		sb.WriteByte('=')
		sb.WriteByte(m.PromotionPiece().Letter())
	}
	return sb.String()
}

func writeDisambiguation(sb *strings.Builder, p *Position, us Color, movedType PieceType, from, to Square, isCapture bool) {
	candidateFlags := FlagQuiet
	if isCapture {
		candidateFlags = FlagCapture
	}

	attackers := p.pieces[us][movedType] &^ from.Bit()
	var any, sameFile, sameRank bool
	for attackers != 0 {
		sq := attackers.PopLSB()
		if pieceAttackBB(movedType, sq, p.allOccupancy)&to.Bit() == 0 {
			continue
		}
		if !isValidMove(p, us, movedType, NewMove(sq, to, candidateFlags)) {
			continue
		}
		any = true
		if sq.File() == from.File() {
			sameFile = true
		}
		if sq.Rank() == from.Rank() {
			sameRank = true
		}
	}
	if !any {
		return
	}
	switch {
	case !sameFile:
		sb.WriteByte(byte('a' + from.File()))
	case !sameRank:
		sb.WriteByte(byte('1' + from.Rank()))
	default:
		sb.WriteByte(byte('a' + from.File()))
		sb.WriteByte(byte('1' + from.Rank()))
	}
}
