// Package classification analyses draws, outs and board texture on top of
// the poker package's bitmask evaluator.
package classification

import (
	"math/bits"

	"github.com/lox/holdemeval/poker"
)

// BoardTexture represents the "wetness" of a poker board from dry to very wet
type BoardTexture int

const (
	Dry BoardTexture = iota
	SemiWet
	Wet
	VeryWet
)

func (bt BoardTexture) String() string {
	switch bt {
	case Dry:
		return "dry"
	case SemiWet:
		return "semi-wet"
	case Wet:
		return "wet"
	case VeryWet:
		return "very wet"
	default:
		return "unknown"
	}
}

// FlushInfo contains information about flush potential on a board
type FlushInfo struct {
	MaxSuitCount int
	DominantSuit *uint8
	IsMonotone   bool // Single suit (3+ cards)
	IsRainbow    bool // All different suits
}

// StraightInfo contains information about straight potential on a board
type StraightInfo struct {
	ConnectedCards int // Longest run of consecutive ranks, ace playing high or low
	Gaps           int // Missing ranks between the lowest and highest card
	HasAce         bool
	BroadwayCards  int // Number of T, J, Q, K, A cards
	Connectedness  int // ConnectedRanks score used by outs discounting
}

// connectWindows are the adjacent rank pairs from A-K down to 3-2, then the
// ace-deuce wrap. Each window is scanned high bit first.
var connectWindows = [13]struct{ high, low uint16 }{
	{0x1000, 0x0800}, {0x0800, 0x0400}, {0x0400, 0x0200}, {0x0200, 0x0100},
	{0x0100, 0x0080}, {0x0080, 0x0040}, {0x0040, 0x0020}, {0x0020, 0x0010},
	{0x0010, 0x0008}, {0x0008, 0x0004}, {0x0004, 0x0002}, {0x0002, 0x0001},
	{0x0001, 0x1000},
}

// ConnectedRanks scores how connected a rank mask is by walking the 13
// adjacent-rank windows from the top. A window with both ranks present extends
// the current run, and so does a window holding only its low rank when the
// window before held only its high rank (a one-rank gap). A window with
// neither rank breaks the run. The result is the longest run seen.
func ConnectedRanks(rankMask uint16) int {
	const (
		none = iota
		highOnly
		lowOnly
		both
	)
	count, best, prev := 0, 0, none
	for _, w := range connectWindows {
		hasHigh, hasLow := rankMask&w.high != 0, rankMask&w.low != 0
		state := none
		switch {
		case hasHigh && hasLow:
			count++
			state = both
		case hasHigh:
			state = highOnly
		case hasLow:
			if prev == highOnly {
				count++
			}
			state = lowOnly
		default:
			count = 0
		}
		prev = state
		best = max(best, count)
	}
	return best
}

// MaxSuitCount returns the number of cards in the mask's most common suit.
func MaxSuitCount(m poker.Mask) int {
	best := 0
	for suit := range uint8(4) {
		best = max(best, bits.OnesCount16(m.SuitMask(suit)))
	}
	return best
}

// AnalyzeBoardTexture analyzes how coordinated/dangerous a board is
func AnalyzeBoardTexture(board poker.Mask) BoardTexture {
	if board.CountCards() < 3 {
		return Dry
	}

	var wetness int

	flushInfo := AnalyzeFlushPotential(board)
	switch {
	case flushInfo.IsMonotone, flushInfo.MaxSuitCount >= 4:
		wetness += 4
	case flushInfo.MaxSuitCount == 3:
		wetness += 3
	case flushInfo.MaxSuitCount == 2:
		wetness += 1
	}

	straightInfo := AnalyzeStraightPotential(board)
	switch {
	case straightInfo.ConnectedCards >= 4:
		wetness += 4
	case straightInfo.ConnectedCards == 3:
		wetness += 3
	case straightInfo.ConnectedCards == 2:
		wetness += 1
	}

	if countBoardPairs(board) >= 1 {
		wetness += 1
	}
	if countHighCards(board) >= 3 {
		wetness += 1
	}

	switch {
	case wetness <= 0:
		return Dry
	case wetness <= 3:
		return SemiWet
	case wetness <= 5:
		return Wet
	default:
		return VeryWet
	}
}

// AnalyzeFlushPotential reports suit concentration on the board. Ties for the
// dominant suit go to the suit holding the higher card.
func AnalyzeFlushPotential(board poker.Mask) FlushInfo {
	var maxCount, bestRank, nonZeroSuits int
	var dominantSuit *uint8

	for suit := int(poker.Spades); suit >= int(poker.Clubs); suit-- {
		lane := board.SuitMask(uint8(suit))
		count := bits.OnesCount16(lane)
		if count == 0 {
			continue
		}
		nonZeroSuits++

		highest := bits.Len16(lane) - 1
		if count > maxCount || (count == maxCount && highest > bestRank) {
			maxCount, bestRank = count, highest
			suitCopy := uint8(suit)
			dominantSuit = &suitCopy
		}
	}

	cardCount := board.CountCards()
	return FlushInfo{
		MaxSuitCount: maxCount,
		DominantSuit: dominantSuit,
		IsMonotone:   nonZeroSuits == 1 && cardCount >= 3,
		IsRainbow:    nonZeroSuits == cardCount && cardCount >= 3,
	}
}

// AnalyzeStraightPotential analyzes straight potential using the board's rank mask
func AnalyzeStraightPotential(board poker.Mask) StraightInfo {
	rankMask := board.RankMask()
	if rankMask == 0 {
		return StraightInfo{}
	}

	hasAce := rankMask&(1<<poker.Ace) != 0
	lowest := bits.TrailingZeros16(rankMask)
	highest := bits.Len16(rankMask) - 1

	return StraightInfo{
		ConnectedCards: longestRun(rankMask),
		Gaps:           highest - lowest + 1 - bits.OnesCount16(rankMask),
		HasAce:         hasAce,
		BroadwayCards:  bits.OnesCount16(rankMask & 0x1F00),
		Connectedness:  ConnectedRanks(rankMask),
	}
}

// longestRun returns the longest sequence of consecutive ranks. With two or
// more wheel ranks present the ace also plays below the deuce, so A-2-3 is a
// run of three while A-2 alone is not a run.
func longestRun(rankMask uint16) int {
	extended := uint32(rankMask) << 1
	if rankMask&(1<<poker.Ace) != 0 && bits.OnesCount16(rankMask&0xF) >= 2 {
		extended |= 1
	}
	run := 0
	for extended != 0 {
		extended &= extended >> 1
		run++
	}
	return run
}

// countBoardPairs counts ranks that appear at least twice on the board
func countBoardPairs(board poker.Mask) int {
	s0, s1, s2, s3 := board.SuitMask(poker.Clubs), board.SuitMask(poker.Diamonds),
		board.SuitMask(poker.Hearts), board.SuitMask(poker.Spades)
	paired := (s0 & s1) | (s0 & s2) | (s0 & s3) | (s1 & s2) | (s1 & s3) | (s2 & s3)
	return bits.OnesCount16(paired)
}

// countHighCards counts high cards (T, J, Q, K, A) on the board
func countHighCards(board poker.Mask) int {
	highCardCount := 0
	for suit := range uint8(4) {
		highCardCount += bits.OnesCount16(board.SuitMask(suit) & 0x1F00) // Bits 8-12 (T-A)
	}
	return highCardCount
}
