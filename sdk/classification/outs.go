package classification

import (
	"errors"
	"fmt"
	"iter"

	"github.com/lox/holdemeval/poker"
)

// ErrInvalidHandType is returned when a target category is outside the known hand types.
var ErrInvalidHandType = errors.New("invalid hand type")

const fullDeck poker.Mask = 1<<52 - 1

// OutsMask returns the next cards that improve the player's hand, beat what
// the board alone makes with that card, and leave the player strictly ahead
// of every listed opponent. Opponent cards are not removed from the
// candidates; use OutsMaskEx when they should be dead.
func OutsMask(player, board poker.Mask, opponents ...poker.Mask) (poker.Mask, error) {
	if err := validateOpponents(player, board, opponents); err != nil {
		return 0, err
	}
	return outsMask(player, board, 0, opponents), nil
}

// Outs returns the number of cards in OutsMask.
func Outs(player, board poker.Mask, opponents ...poker.Mask) (int, error) {
	m, err := OutsMask(player, board, opponents...)
	return m.CountCards(), err
}

// OutsMaskEx returns the cards that improve the player's hand beyond what the
// board alone makes, never considering the dead cards.
func OutsMaskEx(player, board, dead poker.Mask) (poker.Mask, error) {
	if err := validatePocketBoard(player, board, dead); err != nil {
		return 0, err
	}
	return outsMask(player, board, dead, nil), nil
}

// OutsEx returns the number of cards in OutsMaskEx.
func OutsEx(player, board, dead poker.Mask) (int, error) {
	m, err := OutsMaskEx(player, board, dead)
	return m.CountCards(), err
}

// OutCards is OutsMask for card strings. It returns the outs formatted with
// poker.MaskToString.
func OutCards(pocket, board string, opponents ...string) (string, error) {
	player, _, err := poker.ParseHand(pocket, "")
	if err != nil {
		return "", err
	}
	boardMask, _, err := poker.ParseHand(board, "")
	if err != nil {
		return "", err
	}
	opps := make([]poker.Mask, 0, len(opponents))
	for _, o := range opponents {
		m, _, err := poker.ParseHand(o, "")
		if err != nil {
			return "", err
		}
		opps = append(opps, m)
	}
	outs, err := OutsMask(player, boardMask, opps...)
	if err != nil {
		return "", err
	}
	return poker.MaskToString(outs), nil
}

func outsMask(player, board, dead poker.Mask, opponents []poker.Mask) poker.Mask {
	mask := player | board
	current := poker.EvaluateUnchecked(mask)

	var outs poker.Mask
	for c := range undealt(mask | dead) {
		next := poker.EvaluateUnchecked(mask | c)
		if !improves(next, current) || !beatsBoard(next, poker.EvaluateUnchecked(board|c)) {
			continue
		}
		if aheadOfAll(next, board|c, opponents) {
			outs |= c
		}
	}
	return outs
}

// improves reports a higher category, or the same category with a higher top card.
func improves(next, current poker.HandValue) bool {
	return next.Type() > current.Type() ||
		(next.Type() == current.Type() && next.TopCard() > current.TopCard())
}

// beatsBoard reports whether the player's hand is better than the board's
// own hand by category or, within a category, by top card.
func beatsBoard(player, board poker.HandValue) bool {
	return player.Type() > board.Type() ||
		(player.Type() == board.Type() && player.TopCard() > board.TopCard())
}

func aheadOfAll(player poker.HandValue, board poker.Mask, opponents []poker.Mask) bool {
	for _, opp := range opponents {
		if poker.EvaluateUnchecked(opp|board) >= player {
			return false
		}
	}
	return true
}

// undealt yields single-card masks for every card not in excluded, deuce of
// clubs first.
func undealt(excluded poker.Mask) iter.Seq[poker.Mask] {
	return func(yield func(poker.Mask) bool) {
		for rest := fullDeck &^ excluded; rest != 0; rest &= rest - 1 {
			if !yield(rest & -rest) {
				return
			}
		}
	}
}

func validateDrawMask(mask, dead poker.Mask) error {
	if n := mask.CountCards(); n < 4 || n > 6 {
		return fmt.Errorf("%w: draw mask must have 4-6 cards, got %d", poker.ErrWrongCardinality, n)
	}
	if (mask|dead)&^fullDeck != 0 {
		return fmt.Errorf("%w: bits set above the 52-card deck", poker.ErrInvalidCardCount)
	}
	return poker.ValidateDisjoint(mask, dead)
}

func validatePocketBoard(pocket, board, dead poker.Mask) error {
	if err := poker.ValidatePocket(pocket); err != nil {
		return err
	}
	if err := poker.ValidateBoard(board, 3, 4); err != nil {
		return err
	}
	if (pocket|board|dead)&^fullDeck != 0 {
		return fmt.Errorf("%w: bits set above the 52-card deck", poker.ErrInvalidCardCount)
	}
	return poker.ValidateDisjoint(pocket, board, dead)
}

func validateOpponents(player, board poker.Mask, opponents []poker.Mask) error {
	var dead poker.Mask
	for _, opp := range opponents {
		if err := poker.ValidatePocket(opp); err != nil {
			return fmt.Errorf("opponent: %w", err)
		}
		if err := poker.ValidateDisjoint(dead, opp); err != nil {
			return err
		}
		dead |= opp
	}
	return validatePocketBoard(player, board, dead)
}
