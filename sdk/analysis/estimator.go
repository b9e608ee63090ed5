package analysis

import (
	"io"
	"iter"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdemeval/poker"
)

// DefaultDuration is the time budget used by callers that have no opinion.
const DefaultDuration = 250 * time.Millisecond

// Estimator runs the Monte Carlo variants of the equity calculations. Each
// run samples trials until its duration has elapsed, checking the clock once
// per trial, so a trial is never cut short.
type Estimator struct {
	rng       *rand.Rand
	clock     quartz.Clock
	logger    *log.Logger
	maxTrials int
	sampler   *poker.Sampler
}

// Option configures an Estimator.
type Option func(*Estimator)

// WithRand sets the random source. Without it the global source is used.
func WithRand(rng *rand.Rand) Option {
	return func(e *Estimator) { e.rng = rng }
}

// WithClock sets the clock used for the time budget.
func WithClock(clock quartz.Clock) Option {
	return func(e *Estimator) { e.clock = clock }
}

// WithLogger sets the logger that receives a debug line per run.
func WithLogger(logger *log.Logger) Option {
	return func(e *Estimator) { e.logger = logger }
}

// WithMaxTrials stops every run after n trials even if time remains.
// Zero means no limit.
func WithMaxTrials(n int) Option {
	return func(e *Estimator) { e.maxTrials = n }
}

// NewEstimator creates an estimator with the given options.
func NewEstimator(opts ...Option) *Estimator {
	e := &Estimator{}
	for _, opt := range opts {
		opt(e)
	}
	if e.clock == nil {
		e.clock = quartz.NewReal()
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}
	e.sampler = poker.NewSampler(e.rng, e.clock)
	return e
}

// trials yields random completions of board to n cards until d has elapsed
// or the trial limit is reached.
func (e *Estimator) trials(board, dead poker.Mask, n int, d time.Duration) (iter.Seq[poker.Mask], error) {
	boards, err := e.sampler.RandomHands(board, dead, n, d)
	if err != nil {
		return nil, err
	}
	if e.maxTrials <= 0 {
		return boards, nil
	}
	return limit(boards, e.maxTrials), nil
}

func limit(seq iter.Seq[poker.Mask], n int) iter.Seq[poker.Mask] {
	return func(yield func(poker.Mask) bool) {
		count := 0
		for m := range seq {
			if count >= n || !yield(m) {
				return
			}
			count++
		}
	}
}

// opponents deals n two-card hands disjoint from used and from each other.
func (e *Estimator) opponents(used poker.Mask, hands []poker.Mask) []poker.Mask {
	deck := e.sampler.NewDeck(used)
	for i := range hands {
		hands[i] = deck.Deal(2)
	}
	return hands
}

func (e *Estimator) logRun(name string, trials int, start time.Time) {
	e.logger.Debug("monte carlo run complete",
		"estimator", name,
		"trials", trials,
		"elapsed", e.clock.Since(start))
}

// outcome compares the player against every opponent: 1 when strictly ahead
// of all of them, 0.5 when tied with the best, 0 when behind any.
func outcome(player poker.HandValue, board poker.Mask, opponents []poker.Mask) float64 {
	tied := false
	for _, opp := range opponents {
		v := poker.EvaluateUnchecked(opp | board)
		switch {
		case v > player:
			return 0
		case v == player:
			tied = true
		}
	}
	if tied {
		return 0.5
	}
	return 1
}
