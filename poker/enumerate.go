package poker

import (
	"fmt"
	"iter"
	"math/bits"
)

// Hands yields every mask holding the board plus enough undealt cards to reach
// n cards in total. Undealt cards come from the deck minus board and dead.
// Each call returns a fresh, restartable sequence in a fixed order.
func Hands(board, dead Mask, n int) (iter.Seq[Mask], error) {
	avail, k, err := enumerationSetup(board, dead, n)
	if err != nil {
		return nil, err
	}

	return func(yield func(Mask) bool) {
		if k == 0 {
			yield(board)
			return
		}

		// idx walks the k-subsets of avail in lexicographic order.
		idx := make([]int, k)
		for i := range idx {
			idx[i] = i
		}
		last := len(avail) - k
		for {
			m := board
			for _, i := range idx {
				m |= avail[i]
			}
			if !yield(m) {
				return
			}

			i := k - 1
			for i >= 0 && idx[i] == last+i {
				i--
			}
			if i < 0 {
				return
			}
			idx[i]++
			for j := i + 1; j < k; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}, nil
}

// HandsCount returns how many masks Hands(board, dead, n) yields, or 0 when
// the arguments are invalid.
func HandsCount(board, dead Mask, n int) int64 {
	avail, k, err := enumerationSetup(board, dead, n)
	if err != nil {
		return 0
	}
	return binomial(len(avail), k)
}

func enumerationSetup(board, dead Mask, n int) ([]Mask, int, error) {
	if err := ValidateDisjoint(board, dead); err != nil {
		return nil, 0, err
	}
	if (board|dead)&^fullDeck != 0 {
		return nil, 0, fmt.Errorf("%w: bits set above the 52-card deck", ErrInvalidCardCount)
	}
	avail := undealtCards(board | dead)
	k := n - board.CountCards()
	if k < 0 || k > len(avail) {
		return nil, 0, fmt.Errorf("%w: cannot build %d-card hands from a %d-card board with %d cards available",
			ErrWrongCardinality, n, board.CountCards(), len(avail))
	}
	return avail, k, nil
}

// undealtCards lists the single-card masks not present in excluded, lowest bit first.
func undealtCards(excluded Mask) []Mask {
	avail := make([]Mask, 0, 52-excluded.CountCards())
	for rest := fullDeck &^ excluded; rest != 0; rest &= rest - 1 {
		avail = append(avail, Mask(1)<<bits.TrailingZeros64(uint64(rest)))
	}
	return avail
}

func binomial(n, k int) int64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := int64(1)
	for i := 1; i <= k; i++ {
		result = result * int64(n-k+i) / int64(i)
	}
	return result
}
