package poker

import (
	"math/bits"
)

// HandValue is the strength of the best five-card hand in a mask. Higher
// values are stronger; equal values split the pot.
//
// Layout: type<<24 | top<<16 | second<<12 | third<<8 | fourth<<4 | fifth.
type HandValue uint32

// HandType enumerates the categories of poker hands ordered from weakest to strongest.
type HandType uint8

const (
	HighCard HandType = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// NumHandTypes is the number of hand categories.
const NumHandTypes = 9

const (
	handTypeShift   = 24
	topCardShift    = 16
	secondCardShift = 12
	thirdCardShift  = 8
	fourthCardShift = 4
	fifthCardShift  = 0
	cardWidth       = 4
	cardMask        = 0x0F
)

// String returns the category name.
func (t HandType) String() string {
	switch t {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// Type extracts the hand category.
func (v HandValue) Type() HandType {
	return HandType(v >> handTypeShift)
}

// TopCard returns the most significant rank of the hand: the straight's high
// card, the quad/trip/pair rank, or the highest card otherwise.
func (v HandValue) TopCard() uint8 {
	return uint8((v >> topCardShift) & cardMask)
}

// SecondCard returns the second significant rank (pair rank of a full house,
// low pair of two pair, or the first kicker).
func (v HandValue) SecondCard() uint8 {
	return uint8((v >> secondCardShift) & cardMask)
}

// ThirdCard returns the third significant rank.
func (v HandValue) ThirdCard() uint8 {
	return uint8((v >> thirdCardShift) & cardMask)
}

// FourthCard returns the fourth significant rank.
func (v HandValue) FourthCard() uint8 {
	return uint8((v >> fourthCardShift) & cardMask)
}

// FifthCard returns the fifth significant rank.
func (v HandValue) FifthCard() uint8 {
	return uint8((v >> fifthCardShift) & cardMask)
}

// String returns a human-readable hand description.
func (v HandValue) String() string {
	return v.Describe()
}

// Evaluate returns the value of the best five-card hand in a 1-7 card mask.
func Evaluate(m Mask) (HandValue, error) {
	if err := validateEvaluable(m); err != nil {
		return 0, err
	}
	return EvaluateUnchecked(m), nil
}

// EvaluateType returns only the category of the best hand in a 1-7 card mask.
func EvaluateType(m Mask) (HandType, error) {
	if err := validateEvaluable(m); err != nil {
		return 0, err
	}
	return EvaluateTypeUnchecked(m), nil
}

// EvaluateUnchecked is the fast path behind Evaluate. The caller guarantees
// the mask holds 1-7 cards; other masks give meaningless values.
func EvaluateUnchecked(m Mask) HandValue {
	s0, s1, s2, s3 := m.SuitMask(Clubs), m.SuitMask(Diamonds), m.SuitMask(Hearts), m.SuitMask(Spades)
	rankMask := s0 | s1 | s2 | s3

	// At most one suit can hold five of seven cards, and a flush rules out
	// quads and full houses, so it can be returned straight away.
	for _, suitMask := range [4]uint16{s0, s1, s2, s3} {
		if bits.OnesCount16(suitMask) >= 5 {
			if high := straightHighMask(suitMask); high > 0 {
				return makeValue(StraightFlush) | HandValue(high)<<topCardShift
			}
			return makeValue(Flush) | kickers(suitMask, 5, topCardShift)
		}
	}

	quadsMask := s0 & s1 & s2 & s3
	tripCandidates := (s0 & s1 & s2) | (s0 & s1 & s3) | (s0 & s2 & s3) | (s1 & s2 & s3)
	tripsMask := tripCandidates &^ quadsMask
	pairsMask := ((s0 & s1) | (s0 & s2) | (s0 & s3) | (s1 & s2) | (s1 & s3) | (s2 & s3)) &^ tripCandidates

	if quadsMask != 0 {
		quad := highestRank(quadsMask)
		return makeValue(FourOfAKind) |
			HandValue(quad)<<topCardShift |
			kickers(rankMask&^(1<<quad), 1, secondCardShift)
	}

	if tripsMask != 0 {
		trip := highestRank(tripsMask)
		if pairCandidates := pairsMask | (tripsMask &^ (1 << trip)); pairCandidates != 0 {
			return makeValue(FullHouse) |
				HandValue(trip)<<topCardShift |
				HandValue(highestRank(pairCandidates))<<secondCardShift
		}
	}

	if high := straightHighMask(rankMask); high > 0 {
		return makeValue(Straight) | HandValue(high)<<topCardShift
	}

	if tripsMask != 0 {
		trip := highestRank(tripsMask)
		return makeValue(ThreeOfAKind) |
			HandValue(trip)<<topCardShift |
			kickers(rankMask&^(1<<trip), 2, secondCardShift)
	}

	if pairsMask != 0 {
		highPair := highestRank(pairsMask)
		if rest := pairsMask &^ (1 << highPair); rest != 0 {
			lowPair := highestRank(rest)
			return makeValue(TwoPair) |
				HandValue(highPair)<<topCardShift |
				HandValue(lowPair)<<secondCardShift |
				kickers(rankMask&^(1<<highPair|1<<lowPair), 1, thirdCardShift)
		}
		return makeValue(Pair) |
			HandValue(highPair)<<topCardShift |
			kickers(rankMask&^(1<<highPair), 3, secondCardShift)
	}

	return makeValue(HighCard) | kickers(rankMask, 5, topCardShift)
}

// EvaluateTypeUnchecked is the fast path behind EvaluateType. It stops at the
// category and never resolves kickers.
func EvaluateTypeUnchecked(m Mask) HandType {
	s0, s1, s2, s3 := m.SuitMask(Clubs), m.SuitMask(Diamonds), m.SuitMask(Hearts), m.SuitMask(Spades)
	rankMask := s0 | s1 | s2 | s3

	for _, suitMask := range [4]uint16{s0, s1, s2, s3} {
		if bits.OnesCount16(suitMask) >= 5 {
			if straightHighMask(suitMask) > 0 {
				return StraightFlush
			}
			return Flush
		}
	}

	if s0&s1&s2&s3 != 0 {
		return FourOfAKind
	}

	tripsMask := (s0 & s1 & s2) | (s0 & s1 & s3) | (s0 & s2 & s3) | (s1 & s2 & s3)
	pairsMask := ((s0 & s1) | (s0 & s2) | (s0 & s3) | (s1 & s2) | (s1 & s3) | (s2 & s3)) &^ tripsMask
	if tripsMask != 0 && (pairsMask != 0 || bits.OnesCount16(tripsMask) > 1) {
		return FullHouse
	}
	if straightHighMask(rankMask) > 0 {
		return Straight
	}
	switch {
	case tripsMask != 0:
		return ThreeOfAKind
	case bits.OnesCount16(pairsMask) >= 2:
		return TwoPair
	case pairsMask != 0:
		return Pair
	default:
		return HighCard
	}
}

func makeValue(t HandType) HandValue {
	return HandValue(t) << handTypeShift
}

// kickers packs the top n ranks of mask into consecutive 4-bit slots starting at shift.
func kickers(mask uint16, n int, shift uint) HandValue {
	var v HandValue
	for ; n > 0 && mask != 0; n-- {
		top := highestRank(mask)
		mask &^= 1 << top
		v |= HandValue(top) << shift
		shift -= cardWidth
	}
	return v
}

// highestRank returns the highest rank present in the bitmask (or -1 when empty).
func highestRank(mask uint16) int {
	if mask == 0 {
		return -1
	}
	return bits.Len16(mask) - 1
}

// straightHighMask returns the high-card rank of the best straight present in
// the rank mask (0 if none). The wheel reports Five as its high card.
func straightHighMask(mask uint16) uint8 {
	const wheelMask = 0x100F // Ace + 2-3-4-5
	mask &= RankMask

	// Bitwise cascade identifies consecutive sequences in one pass.
	if seq := mask & (mask >> 1) & (mask >> 2) & (mask >> 3) & (mask >> 4); seq != 0 {
		return uint8(bits.Len16(seq)-1) + 4
	}
	if mask&wheelMask == wheelMask {
		return Five
	}
	return 0
}

// StraightHigh returns the high card of the best straight in a 13-bit rank
// mask, or 0 when there is none.
func StraightHigh(rankMask uint16) uint8 {
	return straightHighMask(rankMask)
}

// CompareHands returns 1 if a wins, -1 if b wins, 0 for a tie.
func CompareHands(a, b HandValue) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	}
	return 0
}
