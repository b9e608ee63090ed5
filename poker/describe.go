package poker

import "fmt"

var (
	rankNames   = [13]string{"Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King", "Ace"}
	rankPlurals = [13]string{"Twos", "Threes", "Fours", "Fives", "Sixes", "Sevens", "Eights", "Nines", "Tens", "Jacks", "Queens", "Kings", "Aces"}
)

// RankName returns the English name of a rank, e.g. "Queen".
func RankName(rank uint8) string {
	if rank > Ace {
		return "Unknown"
	}
	return rankNames[rank]
}

// Describe returns a human-readable description such as "Straight, Ace high"
// or "Two pair, Kings and Queens with a Five for a kicker".
func (v HandValue) Describe() string {
	top, second, third := v.TopCard(), v.SecondCard(), v.ThirdCard()
	switch v.Type() {
	case HighCard:
		return fmt.Sprintf("High card: %s", rankNames[top])
	case Pair:
		return fmt.Sprintf("One pair, %s", rankPlurals[top])
	case TwoPair:
		return fmt.Sprintf("Two pair, %s and %s with a %s for a kicker",
			rankPlurals[top], rankPlurals[second], rankNames[third])
	case ThreeOfAKind:
		return fmt.Sprintf("Three of a kind, %s", rankPlurals[top])
	case Straight:
		return fmt.Sprintf("A straight, %s high", rankNames[top])
	case Flush:
		return fmt.Sprintf("A flush, %s high", rankNames[top])
	case FullHouse:
		return fmt.Sprintf("A fullhouse, %s and %s", rankPlurals[top], rankPlurals[second])
	case FourOfAKind:
		return fmt.Sprintf("Four of a kind, %s", rankPlurals[top])
	case StraightFlush:
		if top == Ace {
			return "A royal flush"
		}
		return fmt.Sprintf("A straight flush, %s high", rankNames[top])
	}
	return "Unknown"
}

// DescriptionFromMask evaluates a 1-7 card mask and describes the result.
func DescriptionFromMask(m Mask) (string, error) {
	v, err := Evaluate(m)
	if err != nil {
		return "", err
	}
	return v.Describe(), nil
}

// DescriptionFromHand parses pocket and board strings and describes the best hand.
func DescriptionFromHand(pocket, board string) (string, error) {
	m, _, err := ParseHand(pocket, board)
	if err != nil {
		return "", err
	}
	return DescriptionFromMask(m)
}
