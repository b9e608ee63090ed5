// Command gen-preflop regenerates the compiled-in heads-up preflop odds
// table used by analysis.HandWinOdds for an empty board.
package main

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/lox/holdemeval/internal/logging"
	"github.com/lox/holdemeval/sdk/analysis"
)

type CLI struct {
	Workers int    `help:"Board chunks enumerated in parallel (0 means one per CPU)" default:"0"`
	Output  string `short:"o" help:"Output file for generated Go code" default:"preflop_odds_gen.go" type:"path"`
	Debug   bool   `help:"Log progress as each board chunk finishes"`
	JSON    bool   `name:"json" help:"Log as JSON instead of console text"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("gen-preflop"),
		kong.Description("Generate the heads-up preflop odds table."),
	)

	logger := logging.SetupLogger(os.Stderr, cli.Debug)
	if cli.JSON {
		logger = logging.SetupStructuredLogger(os.Stderr, cli.Debug)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cli, logger); err != nil {
		logger.Error().Err(err).Msg("generation failed")
		kctx.Exit(1)
	}
}

func run(ctx context.Context, cli CLI, logger zerolog.Logger) error {
	workers := cli.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	logger.Info().
		Int("workers", workers).
		Msg("enumerating preflop odds")

	start := time.Now()
	progress := func(done, total int64) {
		logger.Debug().
			Int64("boards", done).
			Int64("total", total).
			Msg("chunk complete")
	}

	odds, err := analysis.GeneratePreflopOdds(ctx, workers, progress)
	if err != nil {
		return err
	}

	code, err := analysis.GenerateGoCode(odds, "gen-preflop")
	if err != nil {
		return err
	}
	if err := os.WriteFile(cli.Output, code, 0o644); err != nil {
		return err
	}

	logger.Info().
		Str("output", cli.Output).
		Dur("elapsed", time.Since(start)).
		Msg("wrote preflop table")
	return nil
}
