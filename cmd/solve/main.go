// Command solve runs a fixed-depth search from a FEN position and prints the
// chosen move and its centipawn score, mirroring the reference module's own
// one-shot CLI drivers.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/rs/zerolog"

	"github.com/oliverans-student/chessengine/chess"
	"github.com/oliverans-student/chessengine/engine"
	"github.com/oliverans-student/chessengine/game"
)

func main() {
	fen := flag.String("fen", chess.StartFEN, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 6, "search depth in plies")
	timeout := flag.Duration("timeout", 0, "abort the search after this duration (0 = no limit)")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	g, err := game.NewGame(*fen)
	if err != nil {
		log.Error().Err(err).Str("fen", *fen).Msg("invalid FEN")
		os.Exit(2)
	}

	log.Info().Str("fen", *fen).Int("depth", *depth).Msg("starting search")

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	move, score := engine.Solve(ctx, g, *depth)

	if ctx.Err() != nil {
		log.Warn().Dur("timeout", *timeout).Msg("search canceled, returning best move found so far")
	}
	if move == chess.Move(0) {
		log.Info().Int("score", score).Msg("no legal moves")
		return
	}
	log.Info().Str("move", move.String()).Int("score", score).Msg("search complete")
}
