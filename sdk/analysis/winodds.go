package analysis

import (
	"time"

	"github.com/lox/holdemeval/poker"
)

// HandOdds splits showdown results by the final hand type of the winner.
// Player[t] is the probability the player wins holding a t and Opponent[t]
// the probability the opponent side wins holding a t. A split pot counts
// half to each side, so the two arrays together sum to one.
type HandOdds struct {
	Player   [poker.NumHandTypes]float64
	Opponent [poker.NumHandTypes]float64
}

// PlayerWin returns the player's total share, ties counted as half.
func (o HandOdds) PlayerWin() float64 {
	var sum float64
	for _, p := range o.Player {
		sum += p
	}
	return sum
}

// OpponentWin returns the opponents' total share, ties counted as half.
func (o HandOdds) OpponentWin() float64 {
	var sum float64
	for _, p := range o.Opponent {
		sum += p
	}
	return sum
}

func (o *HandOdds) record(player, opponent poker.HandValue) {
	switch {
	case player > opponent:
		o.Player[player.Type()]++
	case player < opponent:
		o.Opponent[opponent.Type()]++
	default:
		o.Player[player.Type()] += 0.5
		o.Opponent[opponent.Type()] += 0.5
	}
}

func (o *HandOdds) normalize(count int) {
	if count == 0 {
		return
	}
	for i := range o.Player {
		o.Player[i] /= float64(count)
		o.Opponent[i] /= float64(count)
	}
}

// HandWinOdds returns the exact heads-up odds of pocket against one random
// opponent, enumerating every opponent pocket and every board completion.
// An empty board is answered from the precomputed preflop table; otherwise
// the board must have 3 to 5 cards.
func HandWinOdds(pocket, board poker.Mask) (HandOdds, error) {
	if err := validateHand(pocket, board, 0, 0, 3, 4, 5); err != nil {
		return HandOdds{}, err
	}
	if board == 0 {
		class, err := poker.PocketHand169Type(pocket)
		if err != nil {
			return HandOdds{}, err
		}
		return PreflopOdds(class), nil
	}

	opponents, err := poker.Hands(0, pocket|board, 2)
	if err != nil {
		return HandOdds{}, err
	}

	var odds HandOdds
	count := 0
	for opp := range opponents {
		boards, err := poker.Hands(board, pocket|opp, 5)
		if err != nil {
			return HandOdds{}, err
		}
		for b := range boards {
			odds.record(poker.EvaluateUnchecked(pocket|b), poker.EvaluateUnchecked(opp|b))
			count++
		}
	}
	odds.normalize(count)
	return odds, nil
}

// HandWinOddsVs returns the exact odds of pocket against a known opponent
// pocket, enumerating every completion of board that avoids dead. The board
// may be empty or have 3 to 5 cards.
func HandWinOddsVs(pocket, opponent, board, dead poker.Mask) (HandOdds, error) {
	if err := validateHand(pocket, board, dead, 0, 3, 4, 5); err != nil {
		return HandOdds{}, err
	}
	if err := poker.ValidatePocket(opponent); err != nil {
		return HandOdds{}, err
	}
	if err := poker.ValidateDisjoint(pocket|board|dead, opponent); err != nil {
		return HandOdds{}, err
	}

	boards, err := poker.Hands(board, pocket|opponent|dead, 5)
	if err != nil {
		return HandOdds{}, err
	}

	var odds HandOdds
	count := 0
	for b := range boards {
		odds.record(poker.EvaluateUnchecked(pocket|b), poker.EvaluateUnchecked(opponent|b))
		count++
	}
	odds.normalize(count)
	return odds, nil
}

// HandWinOdds estimates the odds of pocket against numOpponents random
// pockets by sampling board completions that avoid dead. Opponent entries
// are credited to the type of the best opponent hand.
func (e *Estimator) HandWinOdds(pocket, board, dead poker.Mask, numOpponents int, d time.Duration) (HandOdds, error) {
	if err := validateEquity(pocket, board, dead, numOpponents); err != nil {
		return HandOdds{}, err
	}

	trials, err := e.trials(board, pocket|dead, 5, d)
	if err != nil {
		return HandOdds{}, err
	}

	start := e.clock.Now()
	opps := make([]poker.Mask, numOpponents)

	var odds HandOdds
	count := 0
	for b := range trials {
		e.opponents(pocket|dead|b, opps)
		odds.record(poker.EvaluateUnchecked(pocket|b), bestOf(opps, b))
		count++
	}
	e.logRun("HandWinOdds", count, start)

	odds.normalize(count)
	return odds, nil
}

// WinOdds estimates the player's share of the pot against numOpponents
// random pockets: a trial scores 1 when the player is strictly ahead of
// every opponent and 0.5 when tied with the best of them.
func (e *Estimator) WinOdds(pocket, board, dead poker.Mask, numOpponents int, d time.Duration) (float64, error) {
	result, err := e.Equity(pocket, board, dead, numOpponents, d)
	if err != nil {
		return 0, err
	}
	return result.Equity(), nil
}

func bestOf(opponents []poker.Mask, board poker.Mask) poker.HandValue {
	var best poker.HandValue
	for _, opp := range opponents {
		best = max(best, poker.EvaluateUnchecked(opp|board))
	}
	return best
}
