package analysis

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"github.com/lox/holdemeval/poker"
)

// ErrEmptyRange is returned when no pocket in a range can be dealt.
var ErrEmptyRange = errors.New("range has no available hands")

// Range is a set of starting-hand classes, such as an opponent's assumed
// holdings. Membership is per class, so "AKs" holds all four suited combos.
type Range struct {
	classes [poker.NumPocketHands169]bool
}

// NewRange creates a new empty range.
func NewRange() *Range {
	return &Range{}
}

// ParseRange creates a range from standard poker notation.
// Examples: "AA,KK", "AKs,AKo", "TT+", "A5s-A2s", "KTs+", "22-66"
func ParseRange(notation string) (*Range, error) {
	r := NewRange()

	// Split by commas to get individual range parts
	for part := range strings.SplitSeq(notation, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if err := r.addRangePart(part); err != nil {
			return nil, fmt.Errorf("invalid range part %q: %w", part, err)
		}
	}

	return r, nil
}

// Add puts a class into the range.
func (r *Range) Add(class poker.PocketHand169) {
	if int(class) < poker.NumPocketHands169 {
		r.classes[class] = true
	}
}

// addRangePart adds a single range notation part to the range.
func (r *Range) addRangePart(part string) error {
	// Check for range patterns like "TT+" or "A5s-A2s" or "22-66"
	if strings.Contains(part, "+") {
		return r.addPlusRange(part)
	}
	if strings.Contains(part, "-") {
		return r.addDashRange(part)
	}

	// Single hand notation
	high, low, suited, offsuit, err := parseHandNotation(part)
	if err != nil {
		return err
	}
	r.addCombos(high, low, suited, offsuit)
	return nil
}

// parseHandNotation reads "AA", "AK", "AKs" or "AKo" into its ranks and the
// suitedness it allows. A bare unpaired hand allows both.
func parseHandNotation(notation string) (high, low uint8, suited, offsuit bool, err error) {
	if len(notation) < 2 || len(notation) > 3 {
		return 0, 0, false, false, fmt.Errorf("invalid notation length: %s", notation)
	}

	high, ok1 := parseRank(notation[0])
	low, ok2 := parseRank(notation[1])
	if !ok1 || !ok2 {
		return 0, 0, false, false, fmt.Errorf("invalid rank in: %s", notation)
	}
	if low > high {
		high, low = low, high
	}

	// Pocket pair
	if high == low {
		if len(notation) == 3 {
			return 0, 0, false, false, fmt.Errorf("pocket pairs cannot have suited/offsuit modifier: %s", notation)
		}
		return high, low, false, true, nil
	}

	if len(notation) == 2 {
		return high, low, true, true, nil
	}

	switch notation[2] {
	case 's':
		return high, low, true, false, nil
	case 'o':
		return high, low, false, true, nil
	default:
		return 0, 0, false, false, fmt.Errorf("invalid modifier: %c", notation[2])
	}
}

// addPlusRange handles notations like "TT+" (all pairs TT and higher)
func (r *Range) addPlusRange(notation string) error {
	base, rest, _ := strings.Cut(notation, "+")
	if rest != "" {
		return fmt.Errorf("unexpected text after +: %s", notation)
	}

	high, low, suited, offsuit, err := parseHandNotation(base)
	if err != nil {
		return err
	}

	// Handle pocket pairs like "TT+"
	if high == low {
		for rank := high; rank <= poker.Ace; rank++ {
			r.addCombos(rank, rank, false, true)
		}
		return nil
	}

	// For hands like "KTs+", increment the lower card up to one below the higher
	for rank := low; rank < high; rank++ {
		r.addCombos(high, rank, suited, offsuit)
	}
	return nil
}

// addDashRange handles notations like "22-66" or "A5s-A2s"
func (r *Range) addDashRange(notation string) error {
	start, end, _ := strings.Cut(notation, "-")
	startHigh, startLow, suited, offsuit, err := parseHandNotation(strings.TrimSpace(start))
	if err != nil {
		return err
	}
	endHigh, endLow, _, _, err := parseHandNotation(strings.TrimSpace(end))
	if err != nil {
		return err
	}

	// Handle pocket pair ranges like "22-66"
	if startHigh == startLow && endHigh == endLow {
		for rank := min(startHigh, endHigh); rank <= max(startHigh, endHigh); rank++ {
			r.addCombos(rank, rank, false, true)
		}
		return nil
	}

	// Handle suited/offsuit ranges like "A5s-A2s"
	if startHigh == endHigh && startHigh != startLow && endHigh != endLow {
		for rank := min(startLow, endLow); rank <= max(startLow, endLow); rank++ {
			r.addCombos(startHigh, rank, suited, offsuit)
		}
		return nil
	}

	return fmt.Errorf("unsupported range format: %s", notation)
}

func (r *Range) addCombos(high, low uint8, suited, offsuit bool) {
	if suited && high != low {
		r.Add(poker.NewPocketHand169(high, low, true))
	}
	if offsuit {
		r.Add(poker.NewPocketHand169(high, low, false))
	}
}

// Contains checks if a two-card pocket falls in one of the range's classes
func (r *Range) Contains(pocket poker.Mask) bool {
	class, err := poker.PocketHand169Type(pocket)
	return err == nil && r.classes[class]
}

// ContainsCards checks if hole cards are in the range
func (r *Range) ContainsCards(c1, c2 poker.Card) bool {
	return r.Contains(poker.NewMask(c1, c2))
}

// Classes returns the range's classes in starting-hand order.
func (r *Range) Classes() []poker.PocketHand169 {
	var classes []poker.PocketHand169
	for i, ok := range r.classes {
		if ok {
			classes = append(classes, poker.PocketHand169(i))
		}
	}
	return classes
}

// Size returns the number of hand combinations in the range
func (r *Range) Size() int {
	size := 0
	for _, class := range r.Classes() {
		size += len(class.Masks())
	}
	return size
}

// Hands returns every concrete pocket in the range, sorted by mask value.
func (r *Range) Hands() []poker.Mask {
	var hands []poker.Mask
	for _, class := range r.Classes() {
		hands = append(hands, class.Masks()...)
	}
	slices.Sort(hands)
	return hands
}

// String renders the range as a comma separated list of classes.
func (r *Range) String() string {
	classes := r.Classes()
	parts := make([]string, len(classes))
	for i, class := range classes {
		parts[i] = class.String()
	}
	return strings.Join(parts, ",")
}

// parseRank converts a rank character to its 0-based rank (2 is 0, A is 12)
func parseRank(c byte) (uint8, bool) {
	i := strings.IndexByte("23456789TJQKA", c)
	if i < 0 {
		return 0, false
	}
	return uint8(i), true
}

// EquityVsRange is Equity with every opponent's pocket drawn uniformly from
// the combos of r that do not collide with cards already out. Opponents are
// dealt before the board is completed. A trial in which some opponent has no
// combo left is skipped.
func (e *Estimator) EquityVsRange(pocket, board, dead poker.Mask, r *Range, numOpponents int, d time.Duration) (EquityResult, error) {
	if err := validateEquity(pocket, board, dead, numOpponents); err != nil {
		return EquityResult{}, err
	}

	known := pocket | board | dead
	var candidates []poker.Mask
	for _, h := range r.Hands() {
		if h&known == 0 {
			candidates = append(candidates, h)
		}
	}
	if len(candidates) == 0 {
		return EquityResult{}, fmt.Errorf("%w: %s", ErrEmptyRange, r)
	}

	ticks, err := e.trials(board, pocket|dead, board.CountCards(), d)
	if err != nil {
		return EquityResult{}, err
	}

	start := e.clock.Now()
	need := 5 - board.CountCards()
	opps := make([]poker.Mask, numOpponents)
	scratch := make([]poker.Mask, 0, len(candidates))

	var result EquityResult
	for range ticks {
		used, ok := known, true
		for i := range opps {
			scratch = scratch[:0]
			for _, h := range candidates {
				if h&used == 0 {
					scratch = append(scratch, h)
				}
			}
			if len(scratch) == 0 {
				ok = false
				break
			}
			opps[i] = scratch[e.intN(len(scratch))]
			used |= opps[i]
		}
		if !ok {
			continue
		}

		b := board | e.sampler.NewDeck(used).Deal(need)
		switch outcome(poker.EvaluateUnchecked(pocket|b), b, opps) {
		case 1:
			result.Wins++
		case 0.5:
			result.Ties++
		}
		result.TotalSimulations++
	}
	e.logRun("EquityVsRange", int(result.TotalSimulations), start)
	return result, nil
}

func (e *Estimator) intN(n int) int {
	if e.rng != nil {
		return e.rng.IntN(n)
	}
	return rand.IntN(n)
}
