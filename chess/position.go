package chess

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position is the mutable board state: piece bitboards, derived occupancy,
// castling rights, en-passant target, halfmove clock, and ply count. See
// SPEC_FULL.md section 3 for the full invariant list.
type Position struct {
	pieces       [2][6]Bitboard
	occupancy    [2]Bitboard
	allOccupancy Bitboard

	castlingRights  uint8
	enPassantSquare Square
	halfmoveClock   uint32
	ply             uint32
}

// UndoState captures everything make_move must restore on undo_move, per
// SPEC_FULL.md section 3.
type UndoState struct {
	Move           Move
	MovedType      PieceType
	CapturedType   PieceType
	HadCapture     bool
	CastlingRights uint8
	EnPassant      Square
	HalfmoveClock  uint32
}

// NewPosition returns the standard starting position.
func NewPosition() *Position {
	p := &Position{}
	_ = p.FromFEN(StartFEN)
	return p
}

func (p *Position) Turn() Color           { return Color(p.ply & 1) }
func (p *Position) FullmoveNumber() uint32 { return p.ply/2 + 1 }
func (p *Position) Ply() uint32            { return p.ply }
func (p *Position) HalfmoveClock() uint32  { return p.halfmoveClock }
func (p *Position) CastlingRights() uint8  { return p.castlingRights }
func (p *Position) EnPassantSquare() Square { return p.enPassantSquare }
func (p *Position) AllOccupancy() Bitboard { return p.allOccupancy }
func (p *Position) Occupancy(c Color) Bitboard { return p.occupancy[c] }
func (p *Position) PieceBB(c Color, pt PieceType) Bitboard { return p.pieces[c][pt] }

func (p *Position) IsOccupied(sq Square) bool { return p.allOccupancy.Has(sq) }

// KingSquare returns the square of color c's king.
func (p *Position) KingSquare(c Color) Square { return p.pieces[c][King].LSB() }

// ComputeOccupancy recomputes occupancy[c] and allOccupancy from the piece
// bitboards. Idempotent.
func (p *Position) ComputeOccupancy() {
	for c := 0; c < 2; c++ {
		var u Bitboard
		for pt := 0; pt < 6; pt++ {
			u |= p.pieces[c][pt]
		}
		p.occupancy[c] = u
	}
	p.allOccupancy = p.occupancy[White] | p.occupancy[Black]
}

// ValidateOccupancy asserts the invariants in SPEC_FULL.md section 3. A
// violation is a programming error reachable only through misuse of this
// package, not through untrusted input, so it panics rather than returning
// an error -- mirroring goosemg/board.go's Validate.
func (p *Position) ValidateOccupancy() {
	for c := 0; c < 2; c++ {
		if p.pieces[c][King].PopCount() != 1 {
			panic(fmt.Sprintf("chess: color %d does not have exactly one king", c))
		}
		var union Bitboard
		for pt := 0; pt < 6; pt++ {
			bb := p.pieces[c][pt]
			if union&bb != 0 {
				panic("chess: overlapping piece bitboards for same color")
			}
			union |= bb
		}
		if union != p.occupancy[c] {
			panic("chess: occupancy cache does not match piece bitboards")
		}
	}
	if p.occupancy[White]&p.occupancy[Black] != 0 {
		panic("chess: white and black occupancy overlap")
	}
	if p.allOccupancy != p.occupancy[White]|p.occupancy[Black] {
		panic("chess: all_occupancy cache does not match color occupancy")
	}
}

func (p *Position) pieceTypeAt(c Color, sq Square) (PieceType, bool) {
	bit := sq.Bit()
	for pt := PieceType(0); pt < 6; pt++ {
		if p.pieces[c][pt]&bit != 0 {
			return pt, true
		}
	}
	return 0, false
}

// Hash computes the Zobrist hash of the position: XOR of every occupied
// square's piece key, the castling-rights key, the en-passant-file key iff
// an en-passant square is set (regardless of whether it is reachable -- a
// known, preserved imperfection, see SPEC_FULL.md section 9), and the side
// key iff Black to move.
func (p *Position) Hash() uint64 {
	var h uint64
	for c := 0; c < 2; c++ {
		for pt := 0; pt < 6; pt++ {
			bb := p.pieces[c][pt]
			for bb != 0 {
				sq := bb.PopLSB()
				h ^= zobristPiece[c][pt][sq]
			}
		}
	}
	h ^= zobristCastle[p.castlingRights]
	if p.enPassantSquare != NoSquare {
		h ^= zobristEnFile[p.enPassantSquare.File()]
	}
	if p.Turn() == Black {
		h ^= zobristSide
	}
	return h
}

// SquareAttacked reports whether the opponent of us attacks sq.
func (p *Position) SquareAttacked(us Color, sq Square) bool {
	them := us.Other()
	if PawnAttacks(us, sq)&p.pieces[them][Pawn] != 0 {
		return true
	}
	if KnightAttacks(sq)&p.pieces[them][Knight] != 0 {
		return true
	}
	if KingAttacks(sq)&p.pieces[them][King] != 0 {
		return true
	}
	bishopsQueens := p.pieces[them][Bishop] | p.pieces[them][Queen]
	if BishopAttacks(sq, p.allOccupancy)&bishopsQueens != 0 {
		return true
	}
	rooksQueens := p.pieces[them][Rook] | p.pieces[them][Queen]
	if RookAttacks(sq, p.allOccupancy)&rooksQueens != 0 {
		return true
	}
	return false
}

// AttackedSquares returns, among the squares in mask, those attacked by the
// opponent of us.
func (p *Position) AttackedSquares(us Color, mask Bitboard) Bitboard {
	var result Bitboard
	m := mask
	for m != 0 {
		sq := m.PopLSB()
		if p.SquareAttacked(us, sq) {
			result |= sq.Bit()
		}
	}
	return result
}

// KingChecked reports whether color us's king is currently attacked.
func (p *Position) KingChecked(us Color) bool {
	return p.SquareAttacked(us, p.KingSquare(us))
}

// MakeMove applies m without recording undo information.
func (p *Position) MakeMove(m Move) {
	var undo UndoState
	p.MakeMoveUndo(m, &undo)
}

// MakeMoveUndo applies m and records everything needed to reverse it into undo.
func (p *Position) MakeMoveUndo(m Move, undo *UndoState) {
	us := p.Turn()
	them := us.Other()
	from, to := m.From(), m.To()

	movedType, ok := p.pieceTypeAt(us, from)
	if !ok {
		panic("chess: make_move: no piece on origin square")
	}

	*undo = UndoState{
		Move:           m,
		MovedType:      movedType,
		CastlingRights: p.castlingRights,
		EnPassant:      p.enPassantSquare,
		HalfmoveClock:  p.halfmoveClock,
	}

	// Remove captured piece first (en passant removes a pawn that is not on
	// the destination square).
	if m.IsEnPassant() {
		capSq := NewSquare(to.File(), from.Rank())
		p.pieces[them][Pawn] &^= capSq.Bit()
		undo.CapturedType = Pawn
		undo.HadCapture = true
	} else if capturedType, found := p.pieceTypeAt(them, to); found {
		p.pieces[them][capturedType] &^= to.Bit()
		undo.CapturedType = capturedType
		undo.HadCapture = true
		p.updateCastlingRightsOnRookCapture(them, to)
	}

	// Move the piece, expanding into the promoted type if applicable.
	p.pieces[us][movedType] &^= from.Bit()
	destType := movedType
	if m.IsPromotion() {
		destType = m.PromotionPiece()
	}
	p.pieces[us][destType] |= to.Bit()

	// Castling also relocates the rook.
	if m.IsCastleKingside() || m.IsCastleQueenside() {
		p.moveCastlingRook(us, m.IsCastleKingside())
	}

	p.updateCastlingRightsOnMove(us, movedType, from)

	if m.IsDoublePush() {
		p.enPassantSquare = NewSquare(from.File(), (int(from.Rank())+int(to.Rank()))/2)
	} else {
		p.enPassantSquare = NoSquare
	}

	if movedType == Pawn || undo.HadCapture {
		p.halfmoveClock = 0
	} else {
		p.halfmoveClock++
	}

	p.ply++
	p.ComputeOccupancy()
}

func (p *Position) moveCastlingRook(us Color, kingside bool) {
	rank := 0
	if us == Black {
		rank = 7
	}
	var rookFrom, rookTo Square
	if kingside {
		rookFrom, rookTo = NewSquare(7, rank), NewSquare(5, rank)
	} else {
		rookFrom, rookTo = NewSquare(0, rank), NewSquare(3, rank)
	}
	p.pieces[us][Rook] &^= rookFrom.Bit()
	p.pieces[us][Rook] |= rookTo.Bit()
}

var castlingRightsForRookSquare = map[Square]uint8{
	NewSquare(7, 0): CastleWK,
	NewSquare(0, 0): CastleWQ,
	NewSquare(7, 7): CastleBK,
	NewSquare(0, 7): CastleBQ,
}

func (p *Position) updateCastlingRightsOnMove(us Color, movedType PieceType, from Square) {
	if movedType == King {
		if us == White {
			p.castlingRights &^= CastleWK | CastleWQ
		} else {
			p.castlingRights &^= CastleBK | CastleBQ
		}
		return
	}
	if movedType == Rook {
		if right, ok := castlingRightsForRookSquare[from]; ok {
			p.castlingRights &^= right
		}
	}
}

func (p *Position) updateCastlingRightsOnRookCapture(them Color, to Square) {
	if right, ok := castlingRightsForRookSquare[to]; ok {
		p.castlingRights &^= right
	}
	_ = them
}

// UndoMove reverses a move previously applied via MakeMoveUndo.
func (p *Position) UndoMove(undo *UndoState) {
	p.ply--
	us := p.Turn()
	them := us.Other()
	m := undo.Move
	from, to := m.From(), m.To()

	destType := undo.MovedType
	if m.IsPromotion() {
		destType = m.PromotionPiece()
	}
	p.pieces[us][destType] &^= to.Bit()
	p.pieces[us][undo.MovedType] |= from.Bit()

	if m.IsCastleKingside() || m.IsCastleQueenside() {
		p.unmoveCastlingRook(us, m.IsCastleKingside())
	}

	if undo.HadCapture {
		if m.IsEnPassant() {
			capSq := NewSquare(to.File(), from.Rank())
			p.pieces[them][Pawn] |= capSq.Bit()
		} else {
			p.pieces[them][undo.CapturedType] |= to.Bit()
		}
	}

	p.castlingRights = undo.CastlingRights
	p.enPassantSquare = undo.EnPassant
	p.halfmoveClock = undo.HalfmoveClock
	p.ComputeOccupancy()
}

func (p *Position) unmoveCastlingRook(us Color, kingside bool) {
	rank := 0
	if us == Black {
		rank = 7
	}
	var rookFrom, rookTo Square
	if kingside {
		rookFrom, rookTo = NewSquare(7, rank), NewSquare(5, rank)
	} else {
		rookFrom, rookTo = NewSquare(0, rank), NewSquare(3, rank)
	}
	p.pieces[us][Rook] &^= rookTo.Bit()
	p.pieces[us][Rook] |= rookFrom.Bit()
}

var pieceFromFENChar = map[byte]struct {
	color Color
	pt    PieceType
}{
	'P': {White, Pawn}, 'N': {White, Knight}, 'B': {White, Bishop},
	'R': {White, Rook}, 'Q': {White, Queen}, 'K': {White, King},
	'p': {Black, Pawn}, 'n': {Black, Knight}, 'b': {Black, Bishop},
	'r': {Black, Rook}, 'q': {Black, Queen}, 'k': {Black, King},
}

// FromFEN parses a standard six-field FEN string into the position. On an
// unknown piece or castling character it returns ErrInvalidPiece /
// ErrInvalidCastling wrapped with the offending field, per SPEC_FULL.md
// section 7 -- this is a boundary function and must not panic on bad input.
func (p *Position) FromFEN(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return fmt.Errorf("%w: expected 6 fields, got %d", ErrInvalidFEN, len(fields))
	}

	var pieces [2][6]Bitboard
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: expected 8 ranks, got %d", ErrInvalidFEN, len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range []byte(rankStr) {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			entry, ok := pieceFromFENChar[ch]
			if !ok {
				return fmt.Errorf("%w: %q", ErrInvalidPiece, string(ch))
			}
			if file > 7 {
				return fmt.Errorf("%w: rank %d overflows", ErrInvalidFEN, rank)
			}
			pieces[entry.color][entry.pt] |= NewSquare(file, rank).Bit()
			file++
		}
	}

	var turn Color
	switch fields[1] {
	case "w":
		turn = White
	case "b":
		turn = Black
	default:
		return fmt.Errorf("%w: bad side to move %q", ErrInvalidFEN, fields[1])
	}

	var castling uint8
	if fields[2] != "-" {
		for _, ch := range []byte(fields[2]) {
			switch ch {
			case 'K':
				castling |= CastleWK
			case 'Q':
				castling |= CastleWQ
			case 'k':
				castling |= CastleBK
			case 'q':
				castling |= CastleBQ
			default:
				return fmt.Errorf("%w: %q", ErrInvalidCastling, string(ch))
			}
		}
	}

	epSquare := NoSquare
	if fields[3] != "-" {
		sq, ok := ParseSquare(fields[3])
		if !ok {
			return fmt.Errorf("%w: bad en passant square %q", ErrInvalidSquare, fields[3])
		}
		epSquare = sq
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return fmt.Errorf("%w: bad halfmove clock %q", ErrInvalidFEN, fields[4])
	}
	fullmove, err := strconv.Atoi(fields[5])
	if err != nil || fullmove < 1 {
		return fmt.Errorf("%w: bad fullmove number %q", ErrInvalidFEN, fields[5])
	}

	p.pieces = pieces
	p.castlingRights = castling
	p.enPassantSquare = epSquare
	p.halfmoveClock = uint32(halfmove)
	p.ply = uint32(turn) + uint32(fullmove-1)*2
	p.ComputeOccupancy()
	return nil
}

// ToFEN serializes the position to canonical FEN. Round-trips exactly with
// FromFEN for any legal position.
func (p *Position) ToFEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := NewSquare(file, rank)
			ch := byte(0)
			for c := 0; c < 2; c++ {
				for pt := PieceType(0); pt < 6; pt++ {
					if p.pieces[c][pt].Has(sq) {
						letter := pt.Letter()
						if Color(c) == Black {
							letter += 'a' - 'A'
						}
						ch = letter
					}
				}
			}
			if ch == 0 {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(ch)
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.Turn() == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	if p.castlingRights == 0 {
		sb.WriteByte('-')
	} else {
		if p.castlingRights&CastleWK != 0 {
			sb.WriteByte('K')
		}
		if p.castlingRights&CastleWQ != 0 {
			sb.WriteByte('Q')
		}
		if p.castlingRights&CastleBK != 0 {
			sb.WriteByte('k')
		}
		if p.castlingRights&CastleBQ != 0 {
			sb.WriteByte('q')
		}
	}

	sb.WriteByte(' ')
	if p.enPassantSquare == NoSquare {
		sb.WriteByte('-')
	} else {
		sb.WriteString(p.enPassantSquare.String())
	}

	fmt.Fprintf(&sb, " %d %d", p.halfmoveClock, p.FullmoveNumber())
	return sb.String()
}
