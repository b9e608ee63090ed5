// Command holdem-odds evaluates Texas Hold'em hands and estimates equity,
// outs and hand potential from the command line.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/holdemeval/internal/config"
	"github.com/lox/holdemeval/internal/logging"
	"github.com/lox/holdemeval/internal/randutil"
	"github.com/lox/holdemeval/sdk/analysis"
)

type CLI struct {
	Config    string         `help:"HCL configuration file" default:"holdem-odds.hcl" type:"path"`
	Debug     bool           `help:"Enable debug logging"`
	Seed      *int64         `help:"Random seed for reproducible results"`
	Duration  *time.Duration `short:"t" help:"Monte Carlo time budget, e.g. 500ms"`
	MaxTrials *int           `help:"Stop Monte Carlo runs after this many trials"`
	Color     string         `help:"Color output: auto, always or never"`

	Eval      EvalCmd      `cmd:"" help:"Evaluate and describe a hand"`
	Odds      OddsCmd      `cmd:"" help:"Win odds against random hands, a known hand or a range"`
	Outs      OutsCmd      `cmd:"" help:"List the cards that improve a hand"`
	Potential PotentialCmd `cmd:"" help:"Hand strength and positive/negative potential"`
	Preflop   PreflopCmd   `cmd:"" help:"Heads-up preflop equity by starting hand"`
}

// App carries the resolved settings every command runs with.
type App struct {
	Config    *config.Config
	Logger    *log.Logger
	Estimator *analysis.Estimator
	Out       io.Writer
	Styles    styles
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr, os.LookupEnv); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer, lookupEnv func(string) (string, bool)) error {
	var cli CLI
	exited := false
	parser, err := kong.New(&cli,
		kong.Name("holdem-odds"),
		kong.Description("Texas Hold'em hand evaluation, equity and outs."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) { exited = true }),
	)
	if err != nil {
		return err
	}

	kctx, err := parser.Parse(args)
	if exited {
		return nil
	}
	if err != nil {
		return err
	}

	app, err := newApp(&cli, stdout, stderr, lookupEnv)
	if err != nil {
		return err
	}
	return kctx.Run(app)
}

func newApp(cli *CLI, stdout, stderr io.Writer, lookupEnv func(string) (string, bool)) (*App, error) {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(lookupEnv); err != nil {
		return nil, err
	}

	if cli.Seed != nil {
		cfg.Random.Seed = *cli.Seed
	}
	if cli.Duration != nil {
		cfg.Analysis.Duration = cli.Duration.String()
	}
	if cli.MaxTrials != nil {
		cfg.Analysis.MaxTrials = *cli.MaxTrials
	}
	if cli.Color != "" {
		cfg.Output.Color = cli.Color
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.NewCLILogger(stderr, cfg.Output.LogLevel, cli.Debug)
	if err != nil {
		return nil, err
	}
	logger.Debug("configuration loaded",
		"file", cli.Config,
		"seed", cfg.Random.Seed,
		"duration", cfg.Analysis.Budget(),
		"opponents", cfg.Analysis.Opponents)

	estimator := analysis.NewEstimator(
		analysis.WithRand(randutil.FromSeed(cfg.Random.Seed)),
		analysis.WithLogger(logger),
		analysis.WithMaxTrials(cfg.Analysis.MaxTrials),
	)

	return &App{
		Config:    cfg,
		Logger:    logger,
		Estimator: estimator,
		Out:       stdout,
		Styles:    newStyles(stdout, cfg.Output.Color),
	}, nil
}

// opponents returns n when set on the command line, else the configured count.
func (a *App) opponents(n int) (int, error) {
	if n == 0 {
		return a.Config.Analysis.Opponents, nil
	}
	if n < 1 || n > config.MaxOpponents {
		return 0, fmt.Errorf("opponents must be between 1 and %d, got %d", config.MaxOpponents, n)
	}
	return n, nil
}

func (a *App) budget() time.Duration {
	return a.Config.Analysis.Budget()
}

var errNoBoard = errors.New("this command needs a flop or turn board")
