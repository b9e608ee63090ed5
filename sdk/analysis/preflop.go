package analysis

//go:generate go run ../../cmd/gen-preflop --output=preflop_odds_gen.go

import (
	"context"
	"fmt"
	"go/format"
	"math"
	"math/bits"
	"slices"
	"sort"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/lox/holdemeval/poker"
)

// PreflopOdds returns the exact heads-up odds of a starting-hand class against
// one random opponent from the compiled-in table. Unknown classes return zero odds.
func PreflopOdds(class poker.PocketHand169) HandOdds {
	if int(class) >= poker.NumPocketHands169 {
		return HandOdds{}
	}
	return HandOdds{
		Player:   preflopPlayerOdds[class],
		Opponent: preflopOpponentOdds[class],
	}
}

// PreflopEquity returns the heads-up equity of a starting-hand class.
func PreflopEquity(class poker.PocketHand169) float64 {
	return PreflopOdds(class).PlayerWin()
}

// GeneratePreflopOdds computes the exact heads-up odds of every starting-hand
// class against one random opponent. Every five-card board is visited once:
// boards are split by their lowest card and up to workers chunks run at once.
// progress, if set, is called as each chunk finishes with the boards done so
// far and the total, possibly from several goroutines.
func GeneratePreflopOdds(ctx context.Context, workers int, progress func(done, total int64)) ([]HandOdds, error) {
	const chunks = 52 - boardSize + 1

	total := poker.HandsCount(0, 0, boardSize)
	heroes := representativeCards()
	tallies := make([]*preflopTally, chunks)
	var done atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))

	for first := range chunks {
		g.Go(func() error {
			lowest := poker.Mask(1) << first
			boards, err := poker.Hands(lowest, lowest-1, boardSize)
			if err != nil {
				return err
			}

			tally := &preflopTally{heroes: &heroes}
			var n int64
			for board := range boards {
				if n%4096 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				tally.addBoard(board)
				n++
			}
			tallies[first] = tally

			if progress != nil {
				progress(done.Add(n), total)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var sum preflopTally
	for _, t := range tallies {
		sum.merge(t)
	}
	return sum.odds(), nil
}

const boardSize = 5

// representativeCards returns the two card indices of each class's
// representative pocket.
func representativeCards() [poker.NumPocketHands169][2]int {
	var cards [poker.NumPocketHands169][2]int
	for i := range poker.NumPocketHands169 {
		m := uint64(poker.PocketHand169(i).Representative())
		cards[i][0] = bits.TrailingZeros64(m)
		cards[i][1] = 63 - bits.LeadingZeros64(m)
	}
	return cards
}

// preflopTally counts showdowns in half-pot units so split pots stay whole
// and the sums do not depend on the order boards are visited.
type preflopTally struct {
	player    [poker.NumPocketHands169][poker.NumHandTypes]uint64
	opponent  [poker.NumPocketHands169][poker.NumHandTypes]uint64
	showdowns [poker.NumPocketHands169]uint64

	heroes *[poker.NumPocketHands169][2]int

	// Per-board scratch: index of each deck card among the undealt cards,
	// the value of every undealt pocket, and those values sorted.
	pos    [52]int
	values [52 - boardSize][52 - boardSize]poker.HandValue
	sorted []poker.HandValue
}

// addBoard scores every class representative that misses board against each
// opponent pocket left in the deck. Each undealt pocket is evaluated once and
// shared by all classes.
func (t *preflopTally) addBoard(board poker.Mask) {
	var rest [52 - boardSize]int
	k := 0
	for i := range 52 {
		if board&(poker.Mask(1)<<i) != 0 {
			t.pos[i] = -1
			continue
		}
		t.pos[i] = k
		rest[k] = i
		k++
	}

	t.sorted = t.sorted[:0]
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			v := poker.EvaluateUnchecked(board | poker.Mask(1)<<rest[i] | poker.Mask(1)<<rest[j])
			t.values[i][j], t.values[j][i] = v, v
			t.sorted = append(t.sorted, v)
		}
	}
	slices.Sort(t.sorted)

	// typeStart[h] is the index of the first sorted value of type h or above.
	var typeStart [poker.NumHandTypes + 1]int
	for h := range poker.NumHandTypes {
		typeStart[h] = sort.Search(len(t.sorted), func(i int) bool { return int(t.sorted[i].Type()) >= h })
	}
	typeStart[poker.NumHandTypes] = len(t.sorted)

	for class, cards := range t.heroes {
		a, b := t.pos[cards[0]], t.pos[cards[1]]
		if a < 0 || b < 0 {
			continue
		}
		t.addHero(class, a, b, k, &typeStart)
	}
}

func (t *preflopTally) addHero(class, a, b, undealt int, typeStart *[poker.NumHandTypes + 1]int) {
	v := t.values[a][b]
	ht := v.Type()

	below := sort.Search(len(t.sorted), func(i int) bool { return t.sorted[i] >= v })
	through := sort.Search(len(t.sorted), func(i int) bool { return t.sorted[i] > v })
	equal := through - below - 1 // less the hero's own pocket

	var above [poker.NumHandTypes]int
	above[ht] = typeStart[ht+1] - through
	for h := ht + 1; h < poker.NumHandTypes; h++ {
		above[h] = typeStart[h+1] - typeStart[h]
	}

	// Opponent pockets holding one of the hero's cards cannot be dealt.
	for _, card := range [2]int{a, b} {
		for x := range undealt {
			if x == a || x == b {
				continue
			}
			switch w := t.values[card][x]; {
			case w < v:
				below--
			case w == v:
				equal--
			default:
				above[w.Type()]--
			}
		}
	}

	t.player[class][ht] += uint64(2*below + equal)
	t.opponent[class][ht] += uint64(equal)
	showdowns := below + equal
	for h := ht; h < poker.NumHandTypes; h++ {
		t.opponent[class][h] += uint64(2 * above[h])
		showdowns += above[h]
	}
	t.showdowns[class] += uint64(showdowns)
}

func (t *preflopTally) merge(other *preflopTally) {
	for c := range poker.NumPocketHands169 {
		for h := range poker.NumHandTypes {
			t.player[c][h] += other.player[c][h]
			t.opponent[c][h] += other.opponent[c][h]
		}
		t.showdowns[c] += other.showdowns[c]
	}
}

func (t *preflopTally) odds() []HandOdds {
	odds := make([]HandOdds, poker.NumPocketHands169)
	for c := range odds {
		if t.showdowns[c] == 0 {
			continue
		}
		units := float64(2 * t.showdowns[c])
		for h := range poker.NumHandTypes {
			odds[c].Player[h] = float64(t.player[c][h]) / units
			odds[c].Opponent[h] = float64(t.opponent[c][h]) / units
		}
	}
	return odds
}

// GenerateGoCode renders odds, indexed by starting-hand class, as gofmt'd Go
// source for the compiled-in preflop table.
func GenerateGoCode(odds []HandOdds, generator string) ([]byte, error) {
	if len(odds) != poker.NumPocketHands169 {
		return nil, fmt.Errorf("want odds for %d classes, got %d", poker.NumPocketHands169, len(odds))
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "// Code generated by %s; DO NOT EDIT.\n\n", generator)
	sb.WriteString("package analysis\n\n")
	sb.WriteString("import \"github.com/lox/holdemeval/poker\"\n\n")

	writeTable := func(name, doc string, pick func(HandOdds) [poker.NumHandTypes]float64) {
		fmt.Fprintf(&sb, "// %s %s\n", name, doc)
		fmt.Fprintf(&sb, "var %s = [poker.NumPocketHands169][poker.NumHandTypes]float64{\n", name)
		for i, o := range odds {
			row := pick(o)
			cells := make([]string, len(row))
			for j, v := range row {
				cells[j] = formatOdds(v)
			}
			fmt.Fprintf(&sb, "\t// %s\n\t{%s},\n", poker.PocketHand169(i), strings.Join(cells, ", "))
		}
		sb.WriteString("}\n")
	}

	writeTable("preflopPlayerOdds", "holds, per starting hand, the chance the player wins with each hand type.",
		func(o HandOdds) [poker.NumHandTypes]float64 { return o.Player })
	sb.WriteString("\n")
	writeTable("preflopOpponentOdds", "holds, per starting hand, the chance the opponent wins with each hand type.",
		func(o HandOdds) [poker.NumHandTypes]float64 { return o.Opponent })

	return format.Source([]byte(sb.String()))
}

func formatOdds(v float64) string {
	v = math.Round(v*1e6) / 1e6
	if v == 0 {
		return "0"
	}
	return fmt.Sprintf("%.6f", v)
}
