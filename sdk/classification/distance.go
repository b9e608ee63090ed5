package classification

import (
	"slices"

	"github.com/lox/holdemeval/poker"
	"github.com/samber/lo"
)

// HandDistance ranks the pocket's hand among every distinct hand value any
// two-card pocket can make on the board: 0 is the nuts, 1 the second best
// value and so on. It returns -1 if the pocket's value is not found.
func HandDistance(pocket, board poker.Mask) (int, error) {
	if err := poker.ValidatePocket(pocket); err != nil {
		return 0, err
	}
	if err := poker.ValidateBoard(board, 3, 4, 5); err != nil {
		return 0, err
	}
	if err := poker.ValidateDisjoint(pocket, board); err != nil {
		return 0, err
	}

	pockets, err := poker.Hands(0, board, 2)
	if err != nil {
		return 0, err
	}
	var values []poker.HandValue
	for p := range pockets {
		values = append(values, poker.EvaluateUnchecked(p|board))
	}
	values = lo.Uniq(values)
	slices.SortFunc(values, func(a, b poker.HandValue) int {
		return poker.CompareHands(b, a)
	})

	return slices.Index(values, poker.EvaluateUnchecked(pocket|board)), nil
}
