package poker

import (
	"errors"
	"fmt"
	"math/bits"
)

var (
	// ErrInvalidCardFormat is returned when a card token cannot be parsed.
	ErrInvalidCardFormat = errors.New("invalid card format")
	// ErrDuplicateCard is returned when the same card appears twice in one hand.
	ErrDuplicateCard = errors.New("duplicate card")
	// ErrWrongCardinality is returned when a pocket or board has the wrong number of cards.
	ErrWrongCardinality = errors.New("wrong number of cards")
	// ErrOverlappingMasks is returned when pocket, board or dead masks share a card.
	ErrOverlappingMasks = errors.New("overlapping card masks")
	// ErrInvalidCardCount is returned when a mask handed to the evaluator has 0 or more than 7 cards.
	ErrInvalidCardCount = errors.New("invalid card count")
	// ErrInvalidDuration is returned when a sampling time budget is not positive.
	ErrInvalidDuration = errors.New("invalid duration")
)

// ValidatePocket checks that pocket holds exactly two cards.
func ValidatePocket(pocket Mask) error {
	if n := pocket.CountCards(); n != 2 {
		return fmt.Errorf("%w: pocket must have 2 cards, got %d", ErrWrongCardinality, n)
	}
	return nil
}

// ValidateBoard checks that board holds one of the allowed card counts.
func ValidateBoard(board Mask, allowed ...int) error {
	n := board.CountCards()
	for _, a := range allowed {
		if n == a {
			return nil
		}
	}
	return fmt.Errorf("%w: board has %d cards, want one of %v", ErrWrongCardinality, n, allowed)
}

// ValidateDisjoint checks that no two masks share a card.
func ValidateDisjoint(masks ...Mask) error {
	var seen Mask
	for _, m := range masks {
		if overlap := seen & m; overlap != 0 {
			return fmt.Errorf("%w: %s", ErrOverlappingMasks, MaskToString(overlap))
		}
		seen |= m
	}
	return nil
}

func validateEvaluable(m Mask) error {
	if n := bits.OnesCount64(uint64(m)); n < 1 || n > 7 {
		return fmt.Errorf("%w: %d", ErrInvalidCardCount, n)
	}
	if m&^fullDeck != 0 {
		return fmt.Errorf("%w: bits set above the 52-card deck", ErrInvalidCardCount)
	}
	return nil
}
