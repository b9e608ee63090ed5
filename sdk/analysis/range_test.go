package analysis

import (
	"slices"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdemeval/internal/randutil"
	"github.com/lox/holdemeval/poker"
)

func TestParseRange(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		notation string
		wantSize int
		wantErr  bool
	}{
		{
			name:     "pocket aces",
			notation: "AA",
			wantSize: 6, // 6 combinations
		},
		{
			name:     "ace king suited",
			notation: "AKs",
			wantSize: 4, // 4 suited combinations
		},
		{
			name:     "ace king offsuit",
			notation: "AKo",
			wantSize: 12, // 12 offsuit combinations
		},
		{
			name:     "ace king any",
			notation: "AK",
			wantSize: 16, // 4 suited + 12 offsuit
		},
		{
			name:     "multiple hands",
			notation: "AA,KK,AKs",
			wantSize: 16, // 6 + 6 + 4
		},
		{
			name:     "pocket pairs range",
			notation: "TT+",
			wantSize: 30, // TT,JJ,QQ,KK,AA = 5 * 6
		},
		{
			name:     "suited range plus",
			notation: "ATs+",
			wantSize: 16, // AT,AJ,AQ,AK suited = 4 * 4
		},
		{
			name:     "offsuit range plus",
			notation: "KJo+",
			wantSize: 24, // KJ,KQ offsuit = 2 * 12
		},
		{
			name:     "dash range pairs",
			notation: "22-55",
			wantSize: 24, // 22,33,44,55 = 4 * 6
		},
		{
			name:     "dash range suited",
			notation: "A5s-A2s",
			wantSize: 16, // A5s,A4s,A3s,A2s = 4 * 4
		},
		{
			name:     "complex range",
			notation: "TT+,AJs+,KQs",
			wantSize: 46, // 30 + 12 + 4
		},
		{
			name:     "overlapping parts count once",
			notation: "AA,QQ+",
			wantSize: 18,
		},
		{
			name:     "whitespace and empty parts",
			notation: " AA , ,KK ",
			wantSize: 12,
		},
		{
			name:     "invalid notation",
			notation: "XX",
			wantErr:  true,
		},
		{
			name:     "invalid modifier",
			notation: "AKx",
			wantErr:  true,
		},
		{
			name:     "pocket pair with modifier",
			notation: "AAs",
			wantErr:  true,
		},
		{
			name:     "text after plus",
			notation: "TT+9",
			wantErr:  true,
		},
		{
			name:     "mixed dash range",
			notation: "AKs-QJs",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ParseRange(tt.notation)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseRange() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && r.Size() != tt.wantSize {
				t.Errorf("ParseRange() size = %v, want %v", r.Size(), tt.wantSize)
			}
		})
	}
}

func TestRangeContains(t *testing.T) {
	t.Parallel()
	r, err := ParseRange("AA,KK,AKs")
	require.NoError(t, err)

	tests := []struct {
		pocket string
		want   bool
	}{
		{"Ah As", true},  // AA
		{"Kh Kd", true},  // KK
		{"Ah Kh", true},  // AKs
		{"Kc Ac", true},  // AKs, either order
		{"Ah Kd", false}, // AKo not in range
		{"Qh Qd", false}, // QQ not in range
		{"Ah", false},
	}

	for _, tt := range tests {
		if got := r.Contains(cards(tt.pocket)); got != tt.want {
			t.Errorf("Contains(%s) = %v, want %v", tt.pocket, got, tt.want)
		}
	}
}

func TestRangeContainsCards(t *testing.T) {
	t.Parallel()
	r, err := ParseRange("AA,KK,AKs")
	require.NoError(t, err)

	aceHearts := poker.NewCard(poker.Ace, poker.Hearts)
	aceSpades := poker.NewCard(poker.Ace, poker.Spades)
	kingHearts := poker.NewCard(poker.King, poker.Hearts)
	kingDiamonds := poker.NewCard(poker.King, poker.Diamonds)
	queenHearts := poker.NewCard(poker.Queen, poker.Hearts)

	tests := []struct {
		card1 poker.Card
		card2 poker.Card
		want  bool
	}{
		{aceHearts, aceSpades, true},      // AA
		{kingHearts, kingDiamonds, true},  // KK
		{aceHearts, kingHearts, true},     // AKs
		{aceHearts, kingDiamonds, false},  // AKo not in range
		{queenHearts, queenHearts, false}, // one card
	}

	for _, tt := range tests {
		if got := r.ContainsCards(tt.card1, tt.card2); got != tt.want {
			t.Errorf("ContainsCards(%v,%v) = %v, want %v", tt.card1, tt.card2, got, tt.want)
		}
	}
}

func TestRangeDashNotation(t *testing.T) {
	t.Parallel()
	r1, err := ParseRange("44-22")
	require.NoError(t, err)
	assert.Equal(t, 18, r1.Size())

	r2, err := ParseRange("K9s-K6s")
	require.NoError(t, err)
	assert.Equal(t, 16, r2.Size())

	r3, err := ParseRange("A5o-A2o")
	require.NoError(t, err)
	assert.Equal(t, 48, r3.Size())
}

func TestRangePlusNotation(t *testing.T) {
	t.Parallel()
	r1, err := ParseRange("JJ+")
	require.NoError(t, err)
	assert.Equal(t, 24, r1.Size())

	r2, err := ParseRange("K9s+")
	require.NoError(t, err)
	assert.Equal(t, 16, r2.Size())
	assert.Equal(t, "KQs,KJs,KTs,K9s", r2.String())

	r3, err := ParseRange("AT+")
	require.NoError(t, err)
	assert.Equal(t, 64, r3.Size())
}

func TestRangeHands(t *testing.T) {
	t.Parallel()
	r, err := ParseRange("AA")
	require.NoError(t, err)

	hands := r.Hands()
	require.Len(t, hands, 6)
	for _, hand := range hands {
		require.Equal(t, 2, hand.CountCards())
		assert.Equal(t, uint16(1)<<poker.Ace, hand.RankMask(), "hand %s", hand)
	}
	assert.True(t, slices.IsSorted(hands))

	empty := NewRange()
	assert.Zero(t, empty.Size())
	assert.Empty(t, empty.Hands())
	assert.Empty(t, empty.String())

	empty.Add(class(t, "72o"))
	empty.Add(poker.NumPocketHands169)
	assert.Equal(t, []poker.PocketHand169{class(t, "72o")}, empty.Classes())
}

func TestEquityVsRange(t *testing.T) {
	t.Parallel()
	e := NewEstimator(
		WithRand(randutil.New(21)),
		WithClock(quartz.NewMock(t)),
		WithMaxTrials(20000),
	)

	kings, err := ParseRange("KK")
	require.NoError(t, err)

	result, err := e.EquityVsRange(cards("As Ad"), cards("2c 7h 9d"), 0, kings, 1, time.Hour)
	require.NoError(t, err)
	assert.EqualValues(t, 20000, result.TotalSimulations)
	assert.InDelta(t, 0.916, result.Equity(), 0.02)

	// Only two disjoint pairs of aces remain, so three opponents can never
	// all be dealt from the range and every trial is skipped.
	aces, err := ParseRange("AA")
	require.NoError(t, err)
	skipped, err := e.EquityVsRange(cards("Ks Kd"), cards("2c 7h 9d"), 0, aces, 3, time.Hour)
	require.NoError(t, err)
	assert.Zero(t, skipped.TotalSimulations)

	_, err = e.EquityVsRange(cards("Ks Kd"), cards("Ac Ah 9d"), cards("As"), aces, 1, time.Hour)
	require.ErrorIs(t, err, ErrEmptyRange)

	_, err = e.EquityVsRange(cards("Ks Kd"), cards("Ac Ah"), 0, aces, 1, time.Hour)
	require.ErrorIs(t, err, poker.ErrWrongCardinality)
}
