package classification

import (
	"fmt"
	"math/bits"

	"github.com/lox/holdemeval/poker"
)

// DrawType represents the types of draws a hand can have
type DrawType int

const (
	FlushDraw DrawType = iota
	NutFlushDraw
	OpenEndedStraightDraw
	Gutshot
	DoubleGutshot
	ComboDraw // Multiple draws
	BackdoorFlush
	BackdoorStraight
	Overcards
	NoDraw
)

func (dt DrawType) String() string {
	switch dt {
	case FlushDraw:
		return "flush draw"
	case NutFlushDraw:
		return "nut flush draw"
	case OpenEndedStraightDraw:
		return "open-ended straight draw"
	case Gutshot:
		return "gutshot"
	case DoubleGutshot:
		return "double gutshot"
	case ComboDraw:
		return "combo draw"
	case BackdoorFlush:
		return "backdoor flush"
	case BackdoorStraight:
		return "backdoor straight"
	case Overcards:
		return "overcards"
	case NoDraw:
		return "no draw"
	default:
		return "unknown"
	}
}

// StraightDrawCount returns how many undealt cards lift mask to a straight or
// better. It returns 0 when mask already holds a straight or better.
func StraightDrawCount(mask, dead poker.Mask) (int, error) {
	return drawCountMask(mask, dead, poker.Straight)
}

// StraightDrawCountVsBoard counts the cards that lift pocket plus board to a
// straight or better, only where the same card leaves the board alone in a
// lower category.
func StraightDrawCountVsBoard(pocket, board, dead poker.Mask) (int, error) {
	return drawCountVsBoard(pocket, board, dead, poker.Straight)
}

// FlushDrawCount returns how many undealt cards lift mask to a flush or better.
func FlushDrawCount(mask, dead poker.Mask) (int, error) {
	return drawCountMask(mask, dead, poker.Flush)
}

// FlushDrawCountVsBoard mirrors StraightDrawCountVsBoard for flushes.
func FlushDrawCountVsBoard(pocket, board, dead poker.Mask) (int, error) {
	return drawCountVsBoard(pocket, board, dead, poker.Flush)
}

// IsStraightDraw reports whether any undealt card makes a straight or better.
func IsStraightDraw(mask, dead poker.Mask) (bool, error) {
	n, err := StraightDrawCount(mask, dead)
	return n > 0, err
}

// IsStraightDrawVsBoard is IsStraightDraw with the board filter applied.
func IsStraightDrawVsBoard(pocket, board, dead poker.Mask) (bool, error) {
	n, err := StraightDrawCountVsBoard(pocket, board, dead)
	return n > 0, err
}

// IsFlushDraw reports whether any undealt card makes a flush or better.
func IsFlushDraw(mask, dead poker.Mask) (bool, error) {
	n, err := FlushDrawCount(mask, dead)
	return n > 0, err
}

// IsFlushDrawVsBoard is IsFlushDraw with the board filter applied.
func IsFlushDrawVsBoard(pocket, board, dead poker.Mask) (bool, error) {
	n, err := FlushDrawCountVsBoard(pocket, board, dead)
	return n > 0, err
}

// IsOpenEndedStraightDraw reports whether mask has more than four raw straight
// outs, ignoring dead cards, and at least one live out once they are removed.
// Raw outs are the cards whose rank completes a straight, so flush cards do
// not turn a gutshot into an open-ended draw.
func IsOpenEndedStraightDraw(mask, dead poker.Mask) (bool, error) {
	raw, live, err := straightOutsRawAndLive(mask, dead)
	return raw > 4 && live > 0, err
}

// IsOpenEndedStraightDrawVsBoard applies the open-ended test to pocket plus
// board, counting live outs with the board filter.
func IsOpenEndedStraightDrawVsBoard(pocket, board, dead poker.Mask) (bool, error) {
	raw, live, err := straightOutsRawAndLiveVsBoard(pocket, board, dead)
	return raw > 4 && live > 0, err
}

// IsGutShotStraightDraw reports whether mask has one to four raw straight
// outs and at least one of them is live.
func IsGutShotStraightDraw(mask, dead poker.Mask) (bool, error) {
	raw, live, err := straightOutsRawAndLive(mask, dead)
	return raw <= 4 && live > 0, err
}

// IsGutShotStraightDrawVsBoard applies the gutshot test to pocket plus board.
func IsGutShotStraightDrawVsBoard(pocket, board, dead poker.Mask) (bool, error) {
	raw, live, err := straightOutsRawAndLiveVsBoard(pocket, board, dead)
	return raw <= 4 && live > 0, err
}

// IsBackdoorFlushDraw reports whether a flop leaves the player three cards of
// one suit, at least one from the pocket, with two more of that suit still
// live for the turn and river.
func IsBackdoorFlushDraw(pocket, board, dead poker.Mask) (bool, error) {
	if err := validatePocketBoard(pocket, board, dead); err != nil {
		return false, err
	}
	if board.CountCards() != 3 {
		return false, nil
	}
	mask := pocket | board
	for suit := range uint8(4) {
		if bits.OnesCount16(mask.SuitMask(suit)) != 3 || pocket.SuitMask(suit) == 0 {
			continue
		}
		live := poker.RankMask &^ (mask | dead).SuitMask(suit)
		if bits.OnesCount16(live) >= 2 {
			return true, nil
		}
	}
	return false, nil
}

// DrawCount counts the cards that move the player exactly into target, only
// where the same card leaves the board alone in a lower category. Hands
// already at or above target have no outs.
func DrawCount(player, board, dead poker.Mask, target poker.HandType) (int, error) {
	if target > poker.StraightFlush {
		return 0, fmt.Errorf("%w: %d", ErrInvalidHandType, target)
	}
	if err := validatePocketBoard(player, board, dead); err != nil {
		return 0, err
	}
	mask := player | board
	if poker.EvaluateTypeUnchecked(mask) >= target {
		return 0, nil
	}
	count := 0
	for c := range undealt(mask | dead) {
		newType := poker.EvaluateTypeUnchecked(mask | c)
		if newType == target && newType > poker.EvaluateTypeUnchecked(board|c) {
			count++
		}
	}
	return count, nil
}

func drawCountMask(mask, dead poker.Mask, target poker.HandType) (int, error) {
	if err := validateDrawMask(mask, dead); err != nil {
		return 0, err
	}
	return rawDrawOuts(mask, dead, target).CountCards(), nil
}

func drawCountVsBoard(pocket, board, dead poker.Mask, target poker.HandType) (int, error) {
	if err := validatePocketBoard(pocket, board, dead); err != nil {
		return 0, err
	}
	return boardDrawOuts(pocket, board, dead, target).CountCards(), nil
}

func straightOutsRawAndLive(mask, dead poker.Mask) (int, int, error) {
	if err := validateDrawMask(mask, dead); err != nil {
		return 0, 0, err
	}
	raw := straightRankOuts(mask).CountCards()
	live := rawDrawOuts(mask, dead, poker.Straight).CountCards()
	return raw, live, nil
}

func straightOutsRawAndLiveVsBoard(pocket, board, dead poker.Mask) (int, int, error) {
	if err := validatePocketBoard(pocket, board, dead); err != nil {
		return 0, 0, err
	}
	raw := straightRankOuts(pocket | board).CountCards()
	live := boardDrawOuts(pocket, board, dead, poker.Straight).CountCards()
	return raw, live, nil
}

// straightRankOuts returns the undealt cards, dead or not, whose rank
// completes a straight in mask. Hands already at a straight or better have
// none.
func straightRankOuts(mask poker.Mask) poker.Mask {
	if poker.EvaluateTypeUnchecked(mask) >= poker.Straight {
		return 0
	}
	ranks := mask.RankMask()
	var outs poker.Mask
	for c := range undealt(mask) {
		if poker.StraightHigh(ranks|c.RankMask()) > 0 {
			outs |= c
		}
	}
	return outs
}

// rawDrawOuts returns the undealt cards that lift mask to target or better.
func rawDrawOuts(mask, dead poker.Mask, target poker.HandType) poker.Mask {
	if poker.EvaluateTypeUnchecked(mask) >= target {
		return 0
	}
	var outs poker.Mask
	for c := range undealt(mask | dead) {
		if poker.EvaluateTypeUnchecked(mask|c) >= target {
			outs |= c
		}
	}
	return outs
}

// boardDrawOuts is rawDrawOuts for pocket plus board, keeping only cards that
// leave the board alone in a lower category than the player.
func boardDrawOuts(pocket, board, dead poker.Mask, target poker.HandType) poker.Mask {
	mask := pocket | board
	if poker.EvaluateTypeUnchecked(mask) >= target {
		return 0
	}
	var outs poker.Mask
	for c := range undealt(mask | dead) {
		newType := poker.EvaluateTypeUnchecked(mask | c)
		if newType >= target && newType > poker.EvaluateTypeUnchecked(board|c) {
			outs |= c
		}
	}
	return outs
}

// DrawInfo contains information about draws in a hand
type DrawInfo struct {
	Draws   []DrawType
	Outs    int
	NutOuts int
}

// HasStrongDraw returns true if the hand has a strong draw
func (d DrawInfo) HasStrongDraw() bool {
	for _, draw := range d.Draws {
		switch draw {
		case FlushDraw, NutFlushDraw, OpenEndedStraightDraw, DoubleGutshot, ComboDraw:
			return true
		}
	}
	return false
}

// HasWeakDraw returns true if the hand has a weak draw
func (d DrawInfo) HasWeakDraw() bool {
	for _, draw := range d.Draws {
		switch draw {
		case Gutshot, BackdoorFlush, BackdoorStraight, Overcards:
			return true
		}
	}
	return false
}

// IsComboDraw returns true if the hand has multiple draws with many outs
func (d DrawInfo) IsComboDraw() bool {
	return len(d.Draws) >= 2 && d.Outs >= 12
}

// DetectDraws summarises the draws a pocket holds on a flop or turn. Invalid
// input and complete boards report NoDraw.
func DetectDraws(holeCards, board poker.Mask) DrawInfo {
	noDraw := DrawInfo{Draws: []DrawType{NoDraw}}
	if validatePocketBoard(holeCards, board, 0) != nil {
		return noDraw
	}

	var draws []DrawType
	var outsMask poker.Mask // Bitmask of all outs to avoid double-counting
	var nutOutsMask poker.Mask

	flushInfo := detectFlushDraw(holeCards, board)
	if flushInfo.HasFlushDraw {
		if flushInfo.IsNutFlushDraw {
			draws = append(draws, NutFlushDraw)
			nutOutsMask |= flushInfo.OutsMask
		} else {
			draws = append(draws, FlushDraw)
		}
		outsMask |= flushInfo.OutsMask
	}

	straightInfo := detectStraightDraws(holeCards, board)
	switch {
	case straightInfo.HasOESD:
		draws = append(draws, OpenEndedStraightDraw)
	case straightInfo.HasDoubleGutshot:
		draws = append(draws, DoubleGutshot)
	case straightInfo.HasGutshot:
		draws = append(draws, Gutshot)
	}
	outsMask |= straightInfo.OutsMask

	if board.CountCards() == 3 {
		if ok, _ := IsBackdoorFlushDraw(holeCards, board, 0); ok && !flushInfo.HasFlushDraw {
			draws = append(draws, BackdoorFlush)
		}
		if straightInfo.OutsMask == 0 && detectBackdoorStraight(holeCards, board) {
			draws = append(draws, BackdoorStraight)
		}
	}

	// Overcards only matter without a stronger draw.
	if !flushInfo.HasFlushDraw && !straightInfo.HasOESD {
		overcards := detectOvercards(holeCards, board, holeCards|board)
		if overcards.HasOvercards {
			draws = append(draws, Overcards)
			outsMask |= overcards.OutsMask
		}
	}

	totalOuts := outsMask.CountCards()
	if len(draws) >= 2 && totalOuts >= 12 {
		draws = append(draws, ComboDraw)
	}
	if len(draws) == 0 {
		return noDraw
	}

	return DrawInfo{
		Draws:   draws,
		Outs:    totalOuts,
		NutOuts: nutOutsMask.CountCards(),
	}
}

type flushDrawInfo struct {
	HasFlushDraw   bool
	IsNutFlushDraw bool
	Suit           uint8
	OutsMask       poker.Mask
}

type straightDrawInfo struct {
	HasOESD          bool
	HasGutshot       bool
	HasDoubleGutshot bool
	OutsMask         poker.Mask
}

type overcardsInfo struct {
	HasOvercards bool
	OutsMask     poker.Mask
}

func detectFlushDraw(holeCards, board poker.Mask) flushDrawInfo {
	outs := boardDrawOuts(holeCards, board, 0, poker.Flush)
	if outs == 0 {
		return flushDrawInfo{}
	}
	mask := holeCards | board
	for suit := range uint8(4) {
		if outs.SuitMask(suit) == 0 || bits.OnesCount16(mask.SuitMask(suit)) < 4 {
			continue
		}
		// The nut draw holds the best card of the suit the board does not show.
		missing := poker.RankMask &^ board.SuitMask(suit)
		nutRank := uint8(bits.Len16(missing) - 1)
		return flushDrawInfo{
			HasFlushDraw:   true,
			IsNutFlushDraw: holeCards.HasCard(poker.NewCard(nutRank, suit)),
			Suit:           suit,
			OutsMask:       outs,
		}
	}
	return flushDrawInfo{}
}

// detectStraightDraws works on ranks: an out rank completes a straight for
// pocket plus board but not for the board alone.
func detectStraightDraws(holeCards, board poker.Mask) straightDrawInfo {
	ranks := (holeCards | board).RankMask()
	boardRanks := board.RankMask()
	if poker.StraightHigh(ranks) > 0 {
		return straightDrawInfo{}
	}

	var outRanks uint16
	for rank := range uint8(13) {
		bit := uint16(1) << rank
		if ranks&bit != 0 {
			continue
		}
		if poker.StraightHigh(ranks|bit) > 0 && poker.StraightHigh(boardRanks|bit) == 0 {
			outRanks |= bit
		}
	}

	var info straightDrawInfo
	used := holeCards | board
	for rank := range uint8(13) {
		if outRanks&(1<<rank) == 0 {
			continue
		}
		for suit := range uint8(4) {
			if card := poker.NewCard(rank, suit); !used.HasCard(card) {
				info.OutsMask.AddCard(card)
			}
		}
	}

	switch n := bits.OnesCount16(outRanks); {
	case n >= 2 && longestRun(ranks) >= 4:
		info.HasOESD = true
	case n >= 2:
		info.HasDoubleGutshot = true
	case n == 1:
		info.HasGutshot = true
	}
	return info
}

// detectBackdoorStraight reports three ranks of some five-rank straight
// window, at least one from the pocket, so runner-runner completes it.
func detectBackdoorStraight(holeCards, board poker.Mask) bool {
	ranks := (holeCards | board).RankMask()
	holeRanks := holeCards.RankMask()
	// Windows 2-6 through T-A, then the wheel.
	for low := range uint8(9) {
		window := uint16(0x1F) << low
		if bits.OnesCount16(ranks&window) >= 3 && holeRanks&window != 0 {
			return true
		}
	}
	const wheel = 0x100F
	return bits.OnesCount16(ranks&wheel) >= 3 && holeRanks&wheel != 0
}

func detectOvercards(holeCards, board, usedCards poker.Mask) overcardsInfo {
	highestBoardRank := bits.Len16(board.RankMask()) - 1

	var outsMask poker.Mask
	holeRankMask := holeCards.RankMask()
	for rank := highestBoardRank + 1; rank <= int(poker.Ace); rank++ {
		if holeRankMask&(1<<rank) == 0 {
			continue
		}
		for suit := range uint8(4) {
			if card := poker.NewCard(uint8(rank), suit); !usedCards.HasCard(card) {
				outsMask.AddCard(card)
			}
		}
	}

	return overcardsInfo{
		HasOvercards: outsMask != 0,
		OutsMask:     outsMask,
	}
}
