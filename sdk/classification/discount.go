package classification

import (
	"math/bits"

	"github.com/lox/holdemeval/poker"
)

// OutsMaskDiscounted returns the player's outs after dropping cards that are
// likely to help an unseen opponent as much as the player.
//
// With opponents listed, their cards are dead and an out is any improving
// card that leaves the player strictly ahead of all of them. The board filter
// and the discount rules below apply only when no opponents are given.
//
// Without opponents, an out must improve the player's hand and beat the
// board's own hand, and is then discarded when:
//   - it makes only a pair from high card and is no higher than the board's top card
//   - it makes two pair without pairing a pocket card on top of an existing pair
//   - the result is below a flush while the board, with or without the card,
//     shows three of a suit
//   - the result is below a straight while the board with the card scores
//     two or more on ConnectedRanks
func OutsMaskDiscounted(player, board poker.Mask, opponents ...poker.Mask) (poker.Mask, error) {
	if err := validateOpponents(player, board, opponents); err != nil {
		return 0, err
	}
	if len(opponents) > 0 {
		return outsAgainstOpponents(player, board, opponents), nil
	}
	return discountedOuts(player, board), nil
}

// OutsDiscounted returns the number of cards in OutsMaskDiscounted.
func OutsDiscounted(player, board poker.Mask, opponents ...poker.Mask) (int, error) {
	m, err := OutsMaskDiscounted(player, board, opponents...)
	return m.CountCards(), err
}

// outsAgainstOpponents never applies the board filter. An opponent holds at
// least the board's own hand, so an out that beats every opponent already
// outranks the board's hand, though it may share the board's top card.
func outsAgainstOpponents(player, board poker.Mask, opponents []poker.Mask) poker.Mask {
	var dead poker.Mask
	for _, opp := range opponents {
		dead |= opp
	}

	mask := player | board
	current := poker.EvaluateUnchecked(mask)

	var outs poker.Mask
	for c := range undealt(mask | dead) {
		next := poker.EvaluateUnchecked(mask | c)
		if improves(next, current) && aheadOfAll(next, board|c, opponents) {
			outs |= c
		}
	}
	return outs
}

func discountedOuts(player, board poker.Mask) poker.Mask {
	mask := player | board
	current := poker.EvaluateUnchecked(mask)
	boardTop := bits.Len16(board.RankMask()) - 1
	pocketRanks := player.RankMask()
	boardSuited := MaxSuitCount(board) >= 3

	var outs poker.Mask
	for c := range undealt(mask) {
		next := poker.EvaluateUnchecked(mask | c)
		if !improves(next, current) || !beatsBoard(next, poker.EvaluateUnchecked(board|c)) {
			continue
		}

		card := poker.Card(c)
		rank := int(card.Rank())
		nextType := next.Type()

		switch {
		case nextType == poker.Pair && current.Type() == poker.HighCard && rank <= boardTop:
			// Pairing an undercard.
			continue
		case nextType == poker.TwoPair &&
			!(pocketRanks&(1<<rank) != 0 && current.Type() >= poker.Pair):
			continue
		case nextType < poker.Flush && (boardSuited || MaxSuitCount(board|c) >= 3):
			continue
		case nextType < poker.Straight && ConnectedRanks((board|c).RankMask()) >= 2:
			continue
		}
		outs |= c
	}
	return outs
}
