package poker

import (
	"fmt"
	"math/bits"
	"strings"
)

// PocketHand169 identifies one of the 169 strategically distinct starting
// hands: 13 pairs, 78 suited and 78 offsuit rank combinations.
//
// Order: pairs AA..22 (0-12), then for each high rank from Ace down and each
// lower rank from just below it down to Two, the suited class followed by
// the offsuit class (AKs=13, AKo=14, AQs=15, ..., 32s=167, 32o=168).
type PocketHand169 uint8

// NumPocketHands169 is the number of starting-hand classes.
const NumPocketHands169 = 169

type pocketClass struct {
	high, low uint8
	suited    bool
}

var (
	pocketClasses [NumPocketHands169]pocketClass
	// pocketIndex[high][low][suited] with high >= low.
	pocketIndex [13][13][2]PocketHand169
)

func init() {
	idx := 0
	for r := int(Ace); r >= int(Two); r-- {
		pocketClasses[idx] = pocketClass{high: uint8(r), low: uint8(r)}
		pocketIndex[r][r][0] = PocketHand169(idx)
		pocketIndex[r][r][1] = PocketHand169(idx)
		idx++
	}
	for high := int(Ace); high > int(Two); high-- {
		for low := high - 1; low >= int(Two); low-- {
			pocketClasses[idx] = pocketClass{high: uint8(high), low: uint8(low), suited: true}
			pocketIndex[high][low][1] = PocketHand169(idx)
			idx++
			pocketClasses[idx] = pocketClass{high: uint8(high), low: uint8(low)}
			pocketIndex[high][low][0] = PocketHand169(idx)
			idx++
		}
	}
}

// NewPocketHand169 returns the class for two ranks in either order. suited
// is ignored for pairs.
func NewPocketHand169(r1, r2 uint8, suited bool) PocketHand169 {
	if r2 > r1 {
		r1, r2 = r2, r1
	}
	if suited && r1 != r2 {
		return pocketIndex[r1][r2][1]
	}
	return pocketIndex[r1][r2][0]
}

// PocketHand169Type returns the starting-hand class of a two-card pocket.
// The result depends only on the two ranks and whether the suits match.
func PocketHand169Type(pocket Mask) (PocketHand169, error) {
	if err := ValidatePocket(pocket); err != nil {
		return 0, err
	}
	if pocket&^fullDeck != 0 {
		return 0, fmt.Errorf("%w: bits set above the 52-card deck", ErrInvalidCardCount)
	}
	first := Card(pocket & -pocket)
	second := Card(pocket &^ Mask(first))

	high, low := first.Rank(), second.Rank()
	if low > high {
		high, low = low, high
	}
	suited := 0
	if first.Suit() == second.Suit() {
		suited = 1
	}
	return pocketIndex[high][low][suited], nil
}

// HighRank returns the higher of the two ranks.
func (p PocketHand169) HighRank() uint8 { return pocketClasses[p].high }

// LowRank returns the lower of the two ranks.
func (p PocketHand169) LowRank() uint8 { return pocketClasses[p].low }

// IsPair reports whether the class is a pocket pair.
func (p PocketHand169) IsPair() bool { return pocketClasses[p].high == pocketClasses[p].low }

// IsSuited reports whether the class is suited.
func (p PocketHand169) IsSuited() bool { return pocketClasses[p].suited }

// String returns the conventional notation, e.g. "AA", "AKs" or "72o".
func (p PocketHand169) String() string {
	if p >= NumPocketHands169 {
		return "??"
	}
	c := pocketClasses[p]
	s := string(rankChars[c.high]) + string(rankChars[c.low])
	switch {
	case c.high == c.low:
		return s
	case c.suited:
		return s + "s"
	default:
		return s + "o"
	}
}

// ParsePocketHand169 parses "AA", "AKs", "KAo" and the like. Rank order does
// not matter; non-pairs need an s or o suffix.
func ParsePocketHand169(s string) (PocketHand169, error) {
	if len(s) < 2 || len(s) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCardFormat, s)
	}
	r1, ok1 := parseRank(s[0])
	r2, ok2 := parseRank(s[1])
	if !ok1 || !ok2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCardFormat, s)
	}
	if r2 > r1 {
		r1, r2 = r2, r1
	}
	if r1 == r2 {
		if len(s) != 2 {
			return 0, fmt.Errorf("%w: pair %q takes no suffix", ErrInvalidCardFormat, s)
		}
		return pocketIndex[r1][r1][0], nil
	}
	if len(s) != 3 {
		return 0, fmt.Errorf("%w: %q needs an s or o suffix", ErrInvalidCardFormat, s)
	}
	switch strings.ToLower(s[2:]) {
	case "s":
		return pocketIndex[r1][r2][1], nil
	case "o":
		return pocketIndex[r1][r2][0], nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidCardFormat, s)
}

// Masks returns every concrete pocket in the class: 6 for pairs, 4 suited or
// 12 offsuit.
func (p PocketHand169) Masks() []Mask {
	c := pocketClasses[p]
	var masks []Mask
	for s1 := range uint8(4) {
		for s2 := range uint8(4) {
			switch {
			case c.high == c.low && s2 <= s1:
				continue
			case c.high != c.low && c.suited != (s1 == s2):
				continue
			}
			masks = append(masks, NewMask(NewCard(c.high, s1), NewCard(c.low, s2)))
		}
	}
	return masks
}

// Representative returns one concrete pocket of the class: the high card in
// spades, and the low card in spades when suited or hearts otherwise.
func (p PocketHand169) Representative() Mask {
	c := pocketClasses[p]
	lowSuit := Hearts
	if c.suited {
		lowSuit = Spades
	}
	return NewMask(NewCard(c.high, Spades), NewCard(c.low, lowSuit))
}

// IsSuited reports whether both pocket cards share a suit.
func IsSuited(pocket Mask) bool {
	for suit := range uint8(4) {
		if bits.OnesCount16(pocket.SuitMask(suit)) == 2 {
			return true
		}
	}
	return false
}

// GapCount returns the number of ranks missing between the two pocket cards:
// 0 for connectors, up to 3 for one-gappers through three-gappers. The ace
// also plays low, so A2 is connected. Pairs and wider gaps return -1.
func GapCount(pocket Mask) int {
	if pocket.CountCards() != 2 {
		return -1
	}
	ranks := pocket.RankMask()
	if bits.OnesCount16(ranks) != 2 {
		return -1
	}
	high := bits.Len16(ranks) - 1
	low := bits.TrailingZeros16(ranks)
	gap := high - low - 1
	if high == int(Ace) {
		gap = min(gap, low)
	}
	if gap > 3 {
		return -1
	}
	return gap
}
