package analysis

import (
	"errors"
	"fmt"
	"time"

	"github.com/lox/holdemeval/poker"
)

// ErrInvalidOpponents is returned when the opponent count is below one or
// more than the remaining deck can deal.
var ErrInvalidOpponents = errors.New("invalid number of opponents")

// HandStrength returns the fraction of opponent pockets the player currently
// beats on board, counting a tie as half a win. It enumerates every pocket
// the opponent could hold. The board must have 3 to 5 cards.
func HandStrength(pocket, board poker.Mask) (float64, error) {
	if err := validateHand(pocket, board, 0, 3, 4, 5); err != nil {
		return 0, err
	}

	ours := poker.EvaluateUnchecked(pocket | board)
	opponents, err := poker.Hands(0, pocket|board, 2)
	if err != nil {
		return 0, err
	}

	var win, count float64
	for opp := range opponents {
		theirs := poker.EvaluateUnchecked(opp | board)
		switch {
		case ours > theirs:
			win++
		case ours == theirs:
			win += 0.5
		}
		count++
	}
	return win / count, nil
}

// HandStrength estimates the player's strength on the current board against
// numOpponents random pockets. A trial scores 1 when the player is strictly
// ahead of every opponent and 0.5 when tied with the best of them.
func (e *Estimator) HandStrength(pocket, board poker.Mask, numOpponents int, d time.Duration) (float64, error) {
	if err := validateHand(pocket, board, 0, 3, 4, 5); err != nil {
		return 0, err
	}
	if err := validateOpponents(pocket|board, 0, numOpponents); err != nil {
		return 0, err
	}

	trials, err := e.trials(board, pocket, board.CountCards(), d)
	if err != nil {
		return 0, err
	}

	start := e.clock.Now()
	ours := poker.EvaluateUnchecked(pocket | board)
	opps := make([]poker.Mask, numOpponents)

	var win float64
	count := 0
	for range trials {
		e.opponents(pocket|board, opps)
		win += outcome(ours, board, opps)
		count++
	}
	e.logRun("HandStrength", count, start)

	if count == 0 {
		return 0, nil
	}
	return win / float64(count), nil
}

func validateHand(pocket, board, dead poker.Mask, boardSizes ...int) error {
	if err := poker.ValidatePocket(pocket); err != nil {
		return err
	}
	if err := poker.ValidateBoard(board, boardSizes...); err != nil {
		return err
	}
	if (pocket|board|dead)&^fullDeck != 0 {
		return fmt.Errorf("%w: bits set above the 52-card deck", poker.ErrInvalidCardCount)
	}
	return poker.ValidateDisjoint(pocket, board, dead)
}

// validateOpponents checks that numOpponents pockets plus reserve more cards
// can still be dealt once used cards are removed.
func validateOpponents(used poker.Mask, reserve, numOpponents int) error {
	if numOpponents < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidOpponents, numOpponents)
	}
	if need, avail := 2*numOpponents+reserve, 52-used.CountCards(); need > avail {
		return fmt.Errorf("%w: %d opponents need %d cards, %d remain", ErrInvalidOpponents, numOpponents, need, avail)
	}
	return nil
}

const fullDeck poker.Mask = 1<<52 - 1
