package poker

import (
	"errors"
	"math/bits"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardCreation(t *testing.T) {
	t.Parallel()
	aceSpades := NewCard(Ace, Spades)
	if aceSpades.Rank() != Ace {
		t.Errorf("Expected rank Ace, got %d", aceSpades.Rank())
	}
	if aceSpades.Suit() != Spades {
		t.Errorf("Expected suit Spades, got %d", aceSpades.Suit())
	}
	if aceSpades.String() != "As" {
		t.Errorf("Expected 'As', got %s", aceSpades.String())
	}
	if aceSpades.BitPosition() != SpadesOffset+12 {
		t.Errorf("Expected bit %d, got %d", SpadesOffset+12, aceSpades.BitPosition())
	}

	twoClubs := NewCard(Two, Clubs)
	if twoClubs.String() != "2c" {
		t.Errorf("Expected '2c', got %s", twoClubs.String())
	}
	if twoClubs != 1 {
		t.Errorf("Expected the deuce of clubs at bit 0, got %#x", uint64(twoClubs))
	}
}

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		wantCard Card
		wantErr  bool
	}{
		{name: "ace of spades", input: "As", wantCard: NewCard(12, 3)},
		{name: "two of hearts", input: "2h", wantCard: NewCard(0, 2)},
		{name: "king of diamonds", input: "Kd", wantCard: NewCard(11, 1)},
		{name: "ten of clubs", input: "Tc", wantCard: NewCard(8, 0)},
		{name: "nine of spades", input: "9s", wantCard: NewCard(7, 3)},
		{name: "lower case rank", input: "qh", wantCard: NewCard(Queen, Hearts)},
		{name: "upper case suit", input: "JD", wantCard: NewCard(Jack, Diamonds)},
		{name: "invalid rank", input: "Xs", wantErr: true},
		{name: "invalid suit", input: "Ax", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
		{name: "too short", input: "A", wantErr: true},
		{name: "too long", input: "Asd", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			card, err := ParseCard(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidCardFormat)
				return
			}
			require.NoError(t, err)
			if card != tc.wantCard {
				t.Errorf("ParseCard(%q) = %v, want %v", tc.input, card, tc.wantCard)
			}
		})
	}
}

func TestAll52Cards(t *testing.T) {
	t.Parallel()
	cards := make(map[string]bool)

	for suit := range uint8(4) {
		for rank := range uint8(13) {
			card := NewCard(rank, suit)
			str := card.String()

			if cards[str] {
				t.Errorf("Duplicate card: %s", str)
			}
			cards[str] = true

			parsed, err := ParseCard(str)
			if err != nil {
				t.Errorf("Failed to parse %s: %v", str, err)
			}
			if parsed != card {
				t.Errorf("Round-trip failed for %s", str)
			}
		}
	}

	if len(cards) != 52 {
		t.Errorf("Expected 52 unique cards, got %d", len(cards))
	}
}

func TestParseHand(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		pocket    string
		board     string
		wantCount int
		wantStr   string
		wantErr   error
	}{
		{name: "space separated", pocket: "As Kh", wantCount: 2, wantStr: "As Kh"},
		{name: "concatenated", pocket: "JdJh", wantCount: 2, wantStr: "Jh Jd"},
		{name: "pocket and board", pocket: "9d Td", board: "7s 8c Qh", wantCount: 5, wantStr: "7s Qh Td 9d 8c"},
		{name: "mixed separators", pocket: "2c3c", board: " 4c  5c6c ", wantCount: 5, wantStr: "6c 5c 4c 3c 2c"},
		{name: "empty", wantCount: 0, wantStr: ""},
		{name: "duplicate in pocket", pocket: "AsAs", wantErr: ErrDuplicateCard},
		{name: "duplicate across board", pocket: "As Kd", board: "Qh As", wantErr: ErrDuplicateCard},
		{name: "odd token", pocket: "AsK", wantErr: ErrInvalidCardFormat},
		{name: "bad rank", pocket: "1s 2s", wantErr: ErrInvalidCardFormat},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			mask, count, err := ParseHand(tc.pocket, tc.board)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.False(t, ValidateHand(tc.pocket, tc.board))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantCount, count)
			assert.Equal(t, tc.wantStr, MaskToString(mask))
			assert.True(t, ValidateHand(tc.pocket, tc.board))
		})
	}
}

func TestValidateHand(t *testing.T) {
	t.Parallel()
	valid := [][2]string{
		{"As Ks", ""},
		{"JdJh", ""},
		{"2d 3c", "Ad 5d 4c"},
		{"TdTh", "Jc3d3h 7h 9s"},
		{"8c 9c Tc Jc Qc", ""},
	}
	for _, v := range valid {
		assert.True(t, ValidateHand(v[0], v[1]), "%q %q", v[0], v[1])
	}

	invalid := [][2]string{
		{"Xc Yx", ""},
		{"AA", ""},
		{"5s5c", "1h 3"},
		{"KcKc", ""},
		{"AcAd", "AcAdAcAd"},
	}
	for _, v := range invalid {
		assert.False(t, ValidateHand(v[0], v[1]), "%q %q", v[0], v[1])
	}
}

func TestMaskOperations(t *testing.T) {
	t.Parallel()
	aceSpades, _ := ParseCard("As")
	kingHearts, _ := ParseCard("Kh")
	queenDiamonds, _ := ParseCard("Qd")

	hand := NewMask(aceSpades, kingHearts)

	if !hand.HasCard(aceSpades) {
		t.Error("Hand should contain Ace of Spades")
	}
	if !hand.HasCard(kingHearts) {
		t.Error("Hand should contain King of Hearts")
	}
	if hand.HasCard(queenDiamonds) {
		t.Error("Hand should not contain Queen of Diamonds")
	}
	if hand.CountCards() != 2 {
		t.Errorf("Hand should have 2 cards, got %d", hand.CountCards())
	}

	hand.AddCard(queenDiamonds)
	if !hand.HasCard(queenDiamonds) {
		t.Error("Hand should now contain Queen of Diamonds")
	}
	if BitCount(hand) != 3 {
		t.Errorf("Hand should have 3 cards, got %d", BitCount(hand))
	}
}

func TestCardBitset(t *testing.T) {
	t.Parallel()
	aceSpades, _ := ParseCard("As")
	aceHearts, _ := ParseCard("Ah")
	twoClubs, _ := ParseCard("2c")

	if bits.OnesCount64(uint64(aceSpades)) != 1 {
		t.Error("Card should be a single bit")
	}
	if aceSpades&aceHearts != 0 || aceSpades&twoClubs != 0 || aceHearts&twoClubs != 0 {
		t.Error("Different cards should not share bits")
	}

	combined := Mask(aceSpades) | Mask(aceHearts) | Mask(twoClubs)
	if combined.CountCards() != 3 {
		t.Errorf("Combined hand should have 3 cards, got %d", combined.CountCards())
	}
}

func TestCardMask(t *testing.T) {
	t.Parallel()
	var cards []Card
	for rank := range uint8(13) {
		cards = append(cards, NewCard(rank, Spades))
	}
	hand := NewMask(cards...) | MustParseHand("Ah 5h", "")

	if got := CardMask(hand, Spades); got != 0x1FFF {
		t.Errorf("Expected all spades, got mask %016b", got)
	}
	if got := CardMask(hand, Hearts); got != 1<<Ace|1<<Five {
		t.Errorf("Expected A and 5 of hearts, got mask %016b", got)
	}
	if hand.SuitMask(Clubs) != 0 || hand.SuitMask(Diamonds) != 0 {
		t.Error("Clubs and diamonds should be empty")
	}
	if hand.RankMask() != 0x1FFF {
		t.Errorf("Expected every rank, got %016b", hand.RankMask())
	}
}

func TestCardsOrder(t *testing.T) {
	t.Parallel()
	mask := MustParseHand("2c Ad", "Kh 3s As Tc")

	got := slices.Collect(Cards(mask))
	assert.Equal(t, []string{"As", "3s", "Kh", "Ad", "Tc", "2c"}, got)
	assert.Equal(t, "As 3s Kh Ad Tc 2c", mask.String())

	// Stopping early is honoured.
	var first []string
	for c := range Cards(mask) {
		first = append(first, c)
		if len(first) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"As", "3s"}, first)
}

func TestValidators(t *testing.T) {
	t.Parallel()
	pocket := MustParseHand("As Ks", "")
	board := MustParseHand("Qs Ts 2c", "")

	require.NoError(t, ValidatePocket(pocket))
	require.ErrorIs(t, ValidatePocket(board), ErrWrongCardinality)

	require.NoError(t, ValidateBoard(board, 3, 4))
	require.ErrorIs(t, ValidateBoard(board, 0, 5), ErrWrongCardinality)

	require.NoError(t, ValidateDisjoint(pocket, board, 0))
	err := ValidateDisjoint(pocket, board, MustParseHand("Ks", ""))
	require.ErrorIs(t, err, ErrOverlappingMasks)
	assert.Contains(t, err.Error(), "Ks")
}

func TestEvaluateRejectsBadMasks(t *testing.T) {
	t.Parallel()
	_, err := Evaluate(0)
	require.ErrorIs(t, err, ErrInvalidCardCount)

	_, err = Evaluate(MustParseHand("As Ks Qs Js Ts 9s 8s", "7s"))
	require.ErrorIs(t, err, ErrInvalidCardCount)

	_, err = EvaluateType(Mask(1) << 60)
	require.True(t, errors.Is(err, ErrInvalidCardCount))
}

func BenchmarkCardString(b *testing.B) {
	card := NewCard(Ace, Spades)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = card.String()
	}
}

func BenchmarkParseCard(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = ParseCard("As")
	}
}

func BenchmarkParseHand(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _, _ = ParseHand("As Kh", "Qd Jc Ts")
	}
}
