package chess

import "errors"

// Sentinel errors surfaced at the FEN parsing boundary. Malformed external
// text is reported, never panicked on; see SPEC_FULL.md section 7.
var (
	ErrInvalidFEN      = errors.New("chess: invalid FEN")
	ErrInvalidPiece    = errors.New("chess: unknown piece character")
	ErrInvalidCastling = errors.New("chess: unknown castling character")
	ErrInvalidSquare   = errors.New("chess: invalid square")
)
