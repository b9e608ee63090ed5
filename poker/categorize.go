package poker

// HoleCardCategory represents the strength category of hole cards
type HoleCardCategory string

const (
	CategoryPremium HoleCardCategory = "Premium"
	CategoryStrong  HoleCardCategory = "Strong"
	CategoryMedium  HoleCardCategory = "Medium"
	CategoryWeak    HoleCardCategory = "Weak"
	CategoryTrash   HoleCardCategory = "Trash"
	CategoryUnknown HoleCardCategory = "Unknown"
)

// Categorize buckets a starting-hand class.
// Categories: Premium (JJ+, AK), Strong (TT, AQ/AJ), Medium (77-99, suited broadway),
// Weak (small pairs, suited connectors and one-gappers), Trash (everything else).
func Categorize(p PocketHand169) HoleCardCategory {
	if p >= NumPocketHands169 {
		return CategoryUnknown
	}
	high, low := p.HighRank(), p.LowRank()

	if p.IsPair() {
		switch {
		case high >= Jack:
			return CategoryPremium
		case high == Ten:
			return CategoryStrong
		case high >= Seven:
			return CategoryMedium
		default:
			return CategoryWeak
		}
	}

	switch {
	case high == Ace && low == King:
		return CategoryPremium
	case high == Ace && (low == Queen || low == Jack):
		return CategoryStrong
	case p.IsSuited() && low >= Ten:
		return CategoryMedium
	case p.IsSuited() && high-low <= 2:
		return CategoryWeak
	}
	return CategoryTrash
}

// CategorizeHoleCards categorizes a two-card pocket mask.
func CategorizeHoleCards(pocket Mask) HoleCardCategory {
	p, err := PocketHand169Type(pocket)
	if err != nil {
		return CategoryUnknown
	}
	return Categorize(p)
}

// CategorizeHoleCardsFromStrings categorizes hole cards from string representations.
func CategorizeHoleCardsFromStrings(cards []string) string {
	if len(cards) != 2 {
		return string(CategoryUnknown)
	}
	pocket, _, err := ParseHand(cards[0]+cards[1], "")
	if err != nil {
		return string(CategoryUnknown)
	}
	return string(CategorizeHoleCards(pocket))
}
