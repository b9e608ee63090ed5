package poker

import (
	"fmt"
	"iter"
	"math/bits"
	"strings"
)

// Card represents a single card as one set bit in a uint64.
// Layout: [13 spades][13 hearts][13 diamonds][13 clubs], deuce at the low
// bit of each lane and ace at bit 12.
type Card uint64

// Mask is a set of cards, one bit per card. Only the low 52 bits are used.
type Mask uint64

// Suit constants
const (
	Clubs    uint8 = 0
	Diamonds uint8 = 1
	Hearts   uint8 = 2
	Spades   uint8 = 3
)

// Rank constants (0-12 for 2-A)
const (
	Two   uint8 = 0
	Three uint8 = 1
	Four  uint8 = 2
	Five  uint8 = 3
	Six   uint8 = 4
	Seven uint8 = 5
	Eight uint8 = 6
	Nine  uint8 = 7
	Ten   uint8 = 8
	Jack  uint8 = 9
	Queen uint8 = 10
	King  uint8 = 11
	Ace   uint8 = 12
)

// Bit offsets for each suit lane.
const (
	ClubsOffset    = 0
	DiamondsOffset = 13
	HeartsOffset   = 26
	SpadesOffset   = 39
	RankMask       = 0x1FFF // 13 bits for ranks
)

const (
	rankChars = "23456789TJQKA"
	suitChars = "cdhs"

	fullDeck Mask = 1<<52 - 1
)

// NewCard creates a card from rank (0-12) and suit (0-3).
func NewCard(rank, suit uint8) Card {
	return Card(1) << (suit*13 + rank)
}

// BitPosition returns which bit this card occupies (0-51), or 255 for the zero card.
func (c Card) BitPosition() uint8 {
	if c == 0 {
		return 255
	}
	return uint8(bits.TrailingZeros64(uint64(c)))
}

// Rank returns the rank of the card (0-12).
func (c Card) Rank() uint8 {
	pos := c.BitPosition()
	if pos == 255 {
		return 255
	}
	return pos % 13
}

// Suit returns the suit of the card (0-3).
func (c Card) Suit() uint8 {
	pos := c.BitPosition()
	if pos == 255 {
		return 255
	}
	return pos / 13
}

// String returns the two character form, e.g. "As".
func (c Card) String() string {
	rank, suit := c.Rank(), c.Suit()
	if rank > 12 || suit > 3 {
		return "??"
	}
	return string(rankChars[rank]) + string(suitChars[suit])
}

// ParseCard parses a two character token like "As" or "Td".
// Rank and suit letters are accepted in either case.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCardFormat, s)
	}

	rank, ok := parseRank(s[0])
	if !ok {
		return 0, fmt.Errorf("%w: invalid rank %q in %q", ErrInvalidCardFormat, s[0], s)
	}

	var suit uint8
	switch s[1] {
	case 'c', 'C':
		suit = Clubs
	case 'd', 'D':
		suit = Diamonds
	case 'h', 'H':
		suit = Hearts
	case 's', 'S':
		suit = Spades
	default:
		return 0, fmt.Errorf("%w: invalid suit %q in %q", ErrInvalidCardFormat, s[1], s)
	}

	return NewCard(rank, suit), nil
}

func parseRank(ch byte) (uint8, bool) {
	switch ch {
	case '2', '3', '4', '5', '6', '7', '8', '9':
		return ch - '2', true
	case 'T', 't':
		return Ten, true
	case 'J', 'j':
		return Jack, true
	case 'Q', 'q':
		return Queen, true
	case 'K', 'k':
		return King, true
	case 'A', 'a':
		return Ace, true
	}
	return 0, false
}

// ParseHand parses pocket and board strings into one mask and returns the
// mask with its card count. Tokens may be separated by whitespace or run
// together in pairs ("JdJh"). A card appearing twice anywhere is an error.
func ParseHand(pocket, board string) (Mask, int, error) {
	var mask Mask
	for _, s := range []string{pocket, board} {
		for field := range strings.FieldsSeq(s) {
			if len(field)%2 != 0 {
				return 0, 0, fmt.Errorf("%w: %q", ErrInvalidCardFormat, field)
			}
			for i := 0; i < len(field); i += 2 {
				card, err := ParseCard(field[i : i+2])
				if err != nil {
					return 0, 0, err
				}
				if mask.HasCard(card) {
					return 0, 0, fmt.Errorf("%w: %s", ErrDuplicateCard, card)
				}
				mask.AddCard(card)
			}
		}
	}
	return mask, mask.CountCards(), nil
}

// MustParseHand is ParseHand for literals known to be valid; it panics on error.
func MustParseHand(pocket, board string) Mask {
	mask, _, err := ParseHand(pocket, board)
	if err != nil {
		panic(err)
	}
	return mask
}

// ValidateHand reports whether ParseHand would accept the strings.
func ValidateHand(pocket, board string) bool {
	_, _, err := ParseHand(pocket, board)
	return err == nil
}

// NewMask creates a mask from multiple cards.
func NewMask(cards ...Card) Mask {
	var m Mask
	for _, c := range cards {
		m |= Mask(c)
	}
	return m
}

// AddCard adds a card to the mask.
func (m *Mask) AddCard(c Card) {
	*m |= Mask(c)
}

// HasCard checks if the mask contains a specific card.
func (m Mask) HasCard(c Card) bool {
	return m&Mask(c) != 0
}

// CountCards returns the number of cards in the mask.
func (m Mask) CountCards() int {
	return bits.OnesCount64(uint64(m))
}

// SuitMask returns the 13-bit rank lane of one suit.
func (m Mask) SuitMask(suit uint8) uint16 {
	return uint16((m >> (suit * 13)) & RankMask)
}

// RankMask returns the union of all four suit lanes.
func (m Mask) RankMask() uint16 {
	return m.SuitMask(Clubs) | m.SuitMask(Diamonds) | m.SuitMask(Hearts) | m.SuitMask(Spades)
}

// String returns the cards in MaskToString order.
func (m Mask) String() string {
	return MaskToString(m)
}

// BitCount returns the number of cards in the mask.
func BitCount(m Mask) int {
	return m.CountCards()
}

// CardMask returns the 13-bit rank lane of one suit.
func CardMask(m Mask, suit uint8) uint16 {
	return m.SuitMask(suit)
}

// Cards yields one token per card, spades first, then hearts, diamonds and
// clubs, aces down to deuces within each suit.
func Cards(m Mask) iter.Seq[string] {
	return func(yield func(string) bool) {
		for suit := int(Spades); suit >= int(Clubs); suit-- {
			lane := m.SuitMask(uint8(suit))
			for lane != 0 {
				rank := uint8(bits.Len16(lane) - 1)
				lane &^= 1 << rank
				if !yield(NewCard(rank, uint8(suit)).String()) {
					return
				}
			}
		}
	}
}

// MaskToString formats a mask as space separated card tokens; ParseHand
// reverses it exactly.
func MaskToString(m Mask) string {
	var sb strings.Builder
	for token := range Cards(m) {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(token)
	}
	return sb.String()
}
