// Command perft drives move-count verification against the seed positions in
// SPEC_FULL.md section 8, in the spirit of the reference module's own
// cmd/perft: flag-driven, with an optional per-move divide breakdown.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/oliverans-student/chessengine/chess"
)

func main() {
	fen := flag.String("fen", chess.StartFEN, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "perft depth (required)")
	divide := flag.Bool("divide", false, "print per-move node counts at root")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if *depth <= 0 {
		log.Error().Msg("-depth must be > 0")
		os.Exit(2)
	}

	pos := &chess.Position{}
	if err := pos.FromFEN(*fen); err != nil {
		log.Error().Err(err).Str("fen", *fen).Msg("invalid FEN")
		os.Exit(2)
	}

	log.Info().Str("fen", *fen).Int("depth", *depth).Msg("starting perft")

	if *divide {
		div := chess.PerftDivide(pos, *depth)
		type kv struct {
			m chess.Move
			n uint64
		}
		arr := make([]kv, 0, len(div))
		var sum uint64
		for m, n := range div {
			arr = append(arr, kv{m, n})
			sum += n
		}
		sort.Slice(arr, func(i, j int) bool { return arr[i].m.String() < arr[j].m.String() })
		for _, x := range arr {
			fmt.Printf("%s: %d\n", x.m.String(), x.n)
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	start := time.Now()
	nodes := chess.Perft(pos, *depth)
	elapsed := time.Since(start)
	nps := float64(nodes) / elapsed.Seconds()

	log.Info().
		Uint64("nodes", nodes).
		Dur("elapsed", elapsed).
		Float64("nps", nps).
		Msg("perft complete")
}
