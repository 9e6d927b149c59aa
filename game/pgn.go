package game

import (
	"regexp"
	"strings"

	"github.com/oliverans-student/chessengine/chess"
)

var (
	pgnTagRe       = regexp.MustCompile(`(?s)\[[^\]]*\]`)
	pgnCommentRe   = regexp.MustCompile(`(?s)\{[^}]*\}`)
	pgnNAGRe       = regexp.MustCompile(`\$\d+`)
	pgnMoveNumRe   = regexp.MustCompile(`\d+\.`)
)

var pgnResultTokens = map[string]bool{
	"1-0": true, "0-1": true, "1/2-1/2": true, "*": true,
}

// ReplayPGN applies the moves described by a PGN movetext, per SPEC_FULL.md
// section 6: tags are skipped, comments/NAGs/move-number prefixes/result
// tokens are stripped, and the remaining tokens are matched one-by-one
// against the current position's legal-move SAN. On the first unmatched
// token, replay halts silently -- no error is returned, and the game is left
// however far replay got (SPEC_FULL.md section 9 resolves this as the
// module's deliberate behavior, not a remaining ambiguity).
func (g *Game) ReplayPGN(text string) {
	movetext := pgnTagRe.ReplaceAllString(text, "")
	movetext = pgnCommentRe.ReplaceAllString(movetext, "")
	movetext = pgnNAGRe.ReplaceAllString(movetext, "")
	movetext = pgnMoveNumRe.ReplaceAllString(movetext, "")

	var buf [chess.MaxMoves]chess.Move
	for _, token := range strings.Fields(movetext) {
		if pgnResultTokens[token] {
			continue
		}
		san := strings.TrimRight(token, "+#")

		n := g.GetMoves(buf[:])
		matched := false
		for i := 0; i < n; i++ {
			if g.Position.AlgebraicNotation(buf[i]) == san {
				g.MakeMove(buf[i])
				matched = true
				break
			}
		}
		if !matched {
			return
		}
	}
}
