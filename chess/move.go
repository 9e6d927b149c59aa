package chess

// Move is a 16-bit packed move: bits 0..5 destination, bits 6..11 origin,
// bits 12..15 flags.
type Move uint16

// Move flag nibbles, per SPEC_FULL.md section 3.
const (
	FlagQuiet      uint16 = 0b0000
	FlagCapture    uint16 = 0b0001
	FlagDoublePush uint16 = 0b0010
	FlagEnPassant  uint16 = 0b0011
	FlagCastleK    uint16 = 0b0100
	FlagCastleQ    uint16 = 0b0101

	flagPromoMask uint16 = 0b1000
	FlagPromoN    uint16 = 0b1000
	FlagPromoB    uint16 = 0b1010
	FlagPromoR    uint16 = 0b1100
	FlagPromoQ    uint16 = 0b1110
)

const (
	moveToShift   = 0
	moveFromShift = 6
	moveFlagShift = 12

	moveToMask   = 0x3F
	moveFromMask = 0x3F
)

// NewMove packs a from/to/flags triple into a Move.
func NewMove(from, to Square, flags uint16) Move {
	return Move(uint16(to)<<moveToShift | uint16(from)<<moveFromShift | flags<<moveFlagShift)
}

func (m Move) To() Square   { return Square((uint16(m) >> moveToShift) & moveToMask) }
func (m Move) From() Square { return Square((uint16(m) >> moveFromShift) & moveFromMask) }
func (m Move) Flags() uint16 { return (uint16(m) >> moveFlagShift) & 0xF }

func (m Move) IsCapture() bool      { return m.Flags()&0b0001 != 0 && m.Flags() != FlagCastleK && m.Flags() != FlagCastleQ }
func (m Move) IsPromotion() bool    { return m.Flags()&flagPromoMask != 0 }
func (m Move) IsCastleKingside() bool { return m.Flags() == FlagCastleK }
func (m Move) IsCastleQueenside() bool { return m.Flags() == FlagCastleQ }
func (m Move) IsEnPassant() bool    { return m.Flags() == FlagEnPassant }
func (m Move) IsDoublePush() bool   { return m.Flags() == FlagDoublePush }

// PromotionPiece returns the promoted-to piece type. Only valid when IsPromotion.
func (m Move) PromotionPiece() PieceType {
	// bits 1..2 of the flag nibble select N,B,R,Q
	return PieceType(1 + ((m.Flags() >> 1) & 0b11))
}

// String renders the move in long algebraic coordinates, e.g. "e2e4".
// Promotion suffix is the UI layer's responsibility, per SPEC_FULL.md section 6.
func (m Move) String() string {
	return m.From().String() + m.To().String()
}
