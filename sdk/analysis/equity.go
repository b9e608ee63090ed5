// Package analysis estimates equity, win odds and hand potential, either
// exactly by enumerating every outcome or by Monte Carlo sampling on a time
// budget.
package analysis

import (
	"iter"
	"math"
	"math/rand/v2"
	"time"

	"github.com/lox/holdemeval/poker"
)

// EquityResult represents the result of an equity calculation
type EquityResult struct {
	Wins             uint32
	Ties             uint32
	TotalSimulations uint32
}

// WinRate returns the win rate as a percentage (0.0 to 1.0)
func (e EquityResult) WinRate() float64 {
	if e.TotalSimulations == 0 {
		return 0.0
	}
	return float64(e.Wins) / float64(e.TotalSimulations)
}

// TieRate returns the tie rate as a percentage (0.0 to 1.0)
func (e EquityResult) TieRate() float64 {
	if e.TotalSimulations == 0 {
		return 0.0
	}
	return float64(e.Ties) / float64(e.TotalSimulations)
}

// LossRate returns the loss rate as a percentage (0.0 to 1.0)
func (e EquityResult) LossRate() float64 {
	if e.TotalSimulations == 0 {
		return 0.0
	}
	losses := e.TotalSimulations - e.Wins - e.Ties
	return float64(losses) / float64(e.TotalSimulations)
}

// Equity returns the overall equity (0.0 to 1.0)
// Wins count as 1.0, ties count as 0.5
func (e EquityResult) Equity() float64 {
	if e.TotalSimulations == 0 {
		return 0.0
	}
	winEquity := float64(e.Wins)
	tieEquity := float64(e.Ties) * 0.5
	return (winEquity + tieEquity) / float64(e.TotalSimulations)
}

// ConfidenceInterval returns the 95% confidence interval for equity
func (e EquityResult) ConfidenceInterval() (lower, upper float64) {
	equity := e.Equity()
	n := float64(e.TotalSimulations)

	if n == 0 {
		return 0.0, 0.0
	}

	// Standard error for binomial proportion
	se := math.Sqrt((equity * (1.0 - equity)) / n)

	// 95% confidence interval (±1.96 * SE)
	margin := 1.96 * se

	lower = math.Max(0.0, equity-margin)
	upper = math.Min(1.0, equity+margin)

	return lower, upper
}

// Equity samples board completions that avoid dead until d has elapsed and
// reports how often the player beats or ties numOpponents random pockets.
func (e *Estimator) Equity(pocket, board, dead poker.Mask, numOpponents int, d time.Duration) (EquityResult, error) {
	if err := validateEquity(pocket, board, dead, numOpponents); err != nil {
		return EquityResult{}, err
	}
	trials, err := e.trials(board, pocket|dead, 5, d)
	if err != nil {
		return EquityResult{}, err
	}

	start := e.clock.Now()
	result := e.equity(pocket, dead, numOpponents, trials)
	e.logRun("Equity", int(result.TotalSimulations), start)
	return result, nil
}

// CalculateEquity runs a fixed number of simulations for card strings such
// as "As Kh" and "7c 8d 9h". It is the count-bounded counterpart of
// Estimator.Equity for callers that want a reproducible amount of work.
func CalculateEquity(hero, board string, opponents, simulations int, rng *rand.Rand) (EquityResult, error) {
	pocket, _, err := poker.ParseHand(hero, "")
	if err != nil {
		return EquityResult{}, err
	}
	boardMask, _, err := poker.ParseHand(board, "")
	if err != nil {
		return EquityResult{}, err
	}
	if err := validateEquity(pocket, boardMask, 0, opponents); err != nil {
		return EquityResult{}, err
	}

	e := NewEstimator(WithRand(rng))
	trials, err := e.sampler.RandomHandsN(boardMask, pocket, 5, simulations)
	if err != nil {
		return EquityResult{}, err
	}
	return e.equity(pocket, 0, opponents, trials), nil
}

func (e *Estimator) equity(pocket, dead poker.Mask, numOpponents int, trials iter.Seq[poker.Mask]) EquityResult {
	opps := make([]poker.Mask, numOpponents)

	var result EquityResult
	for b := range trials {
		e.opponents(pocket|dead|b, opps)
		switch outcome(poker.EvaluateUnchecked(pocket|b), b, opps) {
		case 1:
			result.Wins++
		case 0.5:
			result.Ties++
		}
		result.TotalSimulations++
	}
	return result
}

func validateEquity(pocket, board, dead poker.Mask, numOpponents int) error {
	if err := validateHand(pocket, board, dead, 0, 3, 4, 5); err != nil {
		return err
	}
	return validateOpponents(pocket|board|dead, 5-board.CountCards(), numOpponents)
}
