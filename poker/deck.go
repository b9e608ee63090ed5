package poker

import (
	"fmt"
	"iter"
	"math/rand/v2"
	"time"

	"github.com/coder/quartz"
)

// Deck holds the cards still available for dealing. Dealing is a partial
// Fisher-Yates shuffle, so Reset makes every card available again without
// rebuilding the deck.
type Deck struct {
	cards [52]Mask // Fixed size array; only cards[:size] are live
	size  int
	next  int
	rng   *rand.Rand // Random source for deterministic shuffling
}

// NewDeck creates a deck of every card not in excluded.
func NewDeck(rng *rand.Rand, excluded Mask) *Deck {
	d := &Deck{rng: rng}
	for _, c := range undealtCards(excluded) {
		d.cards[d.size] = c
		d.size++
	}
	return d
}

// Deal draws n cards not dealt since the last Reset. It returns 0 if fewer
// than n cards remain.
func (d *Deck) Deal(n int) Mask {
	if n < 0 || d.next+n > d.size {
		return 0
	}
	var m Mask
	for i := d.next; i < d.next+n; i++ {
		j := i + d.intN(d.size-i)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
		m |= d.cards[i]
	}
	d.next += n
	return m
}

// Reset returns all dealt cards to the deck.
func (d *Deck) Reset() {
	d.next = 0
}

// CardsRemaining returns the number of cards left in the deck.
func (d *Deck) CardsRemaining() int {
	return d.size - d.next
}

func (d *Deck) intN(n int) int {
	if d.rng != nil {
		return d.rng.IntN(n)
	}
	return rand.IntN(n)
}

// Sampler draws random hands with an injected random source and clock.
type Sampler struct {
	rng   *rand.Rand
	clock quartz.Clock
}

// NewSampler creates a sampler. A nil rng falls back to the global source and
// a nil clock to the real clock.
func NewSampler(rng *rand.Rand, clock quartz.Clock) *Sampler {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Sampler{rng: rng, clock: clock}
}

// Rand returns the sampler's random source (nil when using the global one).
func (s *Sampler) Rand() *rand.Rand {
	return s.rng
}

// Clock returns the clock used for deadline checks.
func (s *Sampler) Clock() quartz.Clock {
	return s.clock
}

// NewDeck creates a deck of every card not in excluded, sharing the sampler's
// random source.
func (s *Sampler) NewDeck(excluded Mask) *Deck {
	return NewDeck(s.rng, excluded)
}

// RandomHand draws a uniformly random n-card mask disjoint from dead.
func (s *Sampler) RandomHand(dead Mask, n int) (Mask, error) {
	if dead&^fullDeck != 0 {
		return 0, fmt.Errorf("%w: bits set above the 52-card deck", ErrInvalidCardCount)
	}
	if avail := 52 - dead.CountCards(); n < 0 || n > avail {
		return 0, fmt.Errorf("%w: cannot draw %d cards from %d", ErrWrongCardinality, n, avail)
	}
	return s.NewDeck(dead).Deal(n), nil
}

// RandomHands yields random n-card completions of board, avoiding dead, until
// d has elapsed. The clock is checked once before each sample, so a sample
// already handed out is never interrupted. d must be positive.
func (s *Sampler) RandomHands(board, dead Mask, n int, d time.Duration) (iter.Seq[Mask], error) {
	if d <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDuration, d)
	}
	deck, k, err := s.completionDeck(board, dead, n)
	if err != nil {
		return nil, err
	}
	return func(yield func(Mask) bool) {
		start := s.clock.Now()
		for s.clock.Since(start) < d {
			deck.Reset()
			if !yield(board | deck.Deal(k)) {
				return
			}
		}
	}, nil
}

// RandomHandsN yields exactly count random n-card completions of board.
func (s *Sampler) RandomHandsN(board, dead Mask, n, count int) (iter.Seq[Mask], error) {
	deck, k, err := s.completionDeck(board, dead, n)
	if err != nil {
		return nil, err
	}
	return func(yield func(Mask) bool) {
		for range count {
			deck.Reset()
			if !yield(board | deck.Deal(k)) {
				return
			}
		}
	}, nil
}

func (s *Sampler) completionDeck(board, dead Mask, n int) (*Deck, int, error) {
	if err := ValidateDisjoint(board, dead); err != nil {
		return nil, 0, err
	}
	if (board|dead)&^fullDeck != 0 {
		return nil, 0, fmt.Errorf("%w: bits set above the 52-card deck", ErrInvalidCardCount)
	}
	k := n - board.CountCards()
	if avail := 52 - (board | dead).CountCards(); k < 0 || k > avail {
		return nil, 0, fmt.Errorf("%w: cannot complete a %d-card board to %d cards from %d",
			ErrWrongCardinality, board.CountCards(), n, avail)
	}
	return s.NewDeck(board | dead), k, nil
}
