package analysis

import (
	"math"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdemeval/internal/randutil"
	"github.com/lox/holdemeval/poker"
)

func cards(s string) poker.Mask {
	return poker.MustParseHand(s, "")
}

func TestEquityResult(t *testing.T) {
	t.Parallel()
	result := EquityResult{
		Wins:             300,
		Ties:             50,
		TotalSimulations: 1000,
	}

	t.Run("WinRate", func(t *testing.T) {
		expected := 0.3
		actual := result.WinRate()
		if math.Abs(actual-expected) > 0.001 {
			t.Errorf("WinRate() = %v, want %v", actual, expected)
		}
	})

	t.Run("TieRate", func(t *testing.T) {
		expected := 0.05
		actual := result.TieRate()
		if math.Abs(actual-expected) > 0.001 {
			t.Errorf("TieRate() = %v, want %v", actual, expected)
		}
	})

	t.Run("LossRate", func(t *testing.T) {
		expected := 0.65 // (1000 - 300 - 50) / 1000
		actual := result.LossRate()
		if math.Abs(actual-expected) > 0.001 {
			t.Errorf("LossRate() = %v, want %v", actual, expected)
		}
	})

	t.Run("Equity", func(t *testing.T) {
		expected := 0.325 // (300 + 50*0.5) / 1000
		actual := result.Equity()
		if math.Abs(actual-expected) > 0.001 {
			t.Errorf("Equity() = %v, want %v", actual, expected)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		var empty EquityResult
		assert.Zero(t, empty.WinRate())
		assert.Zero(t, empty.TieRate())
		assert.Zero(t, empty.LossRate())
		assert.Zero(t, empty.Equity())
		lower, upper := empty.ConfidenceInterval()
		assert.Zero(t, lower)
		assert.Zero(t, upper)
	})
}

func TestConfidenceInterval(t *testing.T) {
	t.Parallel()
	result := EquityResult{
		Wins:             500,
		Ties:             0,
		TotalSimulations: 10000,
	}

	lower, upper := result.ConfidenceInterval()

	equity := result.Equity()
	if math.Abs(equity-0.05) > 0.001 {
		t.Errorf("Equity = %v, expected 0.05", equity)
	}

	if lower < 0.035 || lower > 0.055 {
		t.Errorf("Lower CI = %v, expected around 0.04-0.05", lower)
	}

	if upper < 0.045 || upper > 0.065 {
		t.Errorf("Upper CI = %v, expected around 0.05-0.06", upper)
	}

	if lower >= upper {
		t.Errorf("Lower CI (%v) should be less than upper CI (%v)", lower, upper)
	}
}

func TestCalculateEquity(t *testing.T) {
	t.Parallel()

	t.Run("pocket aces vs random", func(t *testing.T) {
		result, err := CalculateEquity("As Ad", "2c 7h Kd", 1, 1000, randutil.New(42))
		require.NoError(t, err)

		if equity := result.Equity(); equity < 0.8 {
			t.Errorf("AA equity = %v, expected > 0.8", equity)
		}
		if result.TotalSimulations != 1000 {
			t.Errorf("TotalSimulations = %v, want 1000", result.TotalSimulations)
		}
	})

	t.Run("weak hand vs random", func(t *testing.T) {
		result, err := CalculateEquity("2c 3h", "Ac Kh Qd", 1, 1000, randutil.New(42))
		require.NoError(t, err)

		if equity := result.Equity(); equity > 0.4 {
			t.Errorf("23o equity = %v, expected < 0.4", equity)
		}
	})

	t.Run("same seed same result", func(t *testing.T) {
		a, err := CalculateEquity("Jh Th", "9h 8c 2d", 3, 500, randutil.New(7))
		require.NoError(t, err)
		b, err := CalculateEquity("Jh Th", "9h 8c 2d", 3, 500, randutil.New(7))
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("insufficient cards", func(t *testing.T) {
		_, err := CalculateEquity("As Ad", "2c 7h Kd", 30, 100, randutil.New(1))
		require.ErrorIs(t, err, ErrInvalidOpponents)
	})

	t.Run("bad input", func(t *testing.T) {
		_, err := CalculateEquity("As", "", 1, 100, randutil.New(1))
		require.ErrorIs(t, err, poker.ErrWrongCardinality)

		_, err = CalculateEquity("As Xx", "", 1, 100, randutil.New(1))
		require.ErrorIs(t, err, poker.ErrInvalidCardFormat)

		_, err = CalculateEquity("As Ad", "As 7h Kd", 1, 100, randutil.New(1))
		require.Error(t, err)
	})
}

func TestEstimatorEquity(t *testing.T) {
	t.Parallel()
	e := NewEstimator(
		WithRand(randutil.New(42)),
		WithClock(quartz.NewMock(t)),
		WithMaxTrials(20000),
	)

	result, err := e.Equity(cards("As Ad"), cards("2c 7h Kd"), 0, 1, time.Hour)
	require.NoError(t, err)
	assert.EqualValues(t, 20000, result.TotalSimulations)
	assert.InDelta(t, 0.887, result.Equity(), 0.02)

	// More opponents can only hurt.
	multi, err := e.Equity(cards("As Ad"), cards("2c 7h Kd"), 0, 4, time.Hour)
	require.NoError(t, err)
	assert.Less(t, multi.Equity(), result.Equity())

	// Dead cards are never dealt: with every other ace and king dead the
	// board can only pair below the aces.
	dead := cards("Ac Ah Ks Kh Kc")
	withDead, err := e.Equity(cards("As Ad"), cards("2c 7h 3d"), dead, 1, time.Hour)
	require.NoError(t, err)
	assert.Greater(t, withDead.Equity(), 0.75)
}

func TestEstimatorWinOdds(t *testing.T) {
	t.Parallel()
	e := NewEstimator(
		WithRand(randutil.New(3)),
		WithClock(quartz.NewMock(t)),
		WithMaxTrials(20000),
	)

	// A made royal flush cannot lose.
	got, err := e.WinOdds(cards("As Ks"), cards("Qs Js Ts"), 0, 3, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	got, err = e.WinOdds(cards("As Ad"), 0, 0, 1, time.Hour)
	require.NoError(t, err)
	assert.InDelta(t, PreflopEquity(0), got, 0.02)
}

func TestEquityValidation(t *testing.T) {
	t.Parallel()
	e := NewEstimator(WithClock(quartz.NewMock(t)), WithMaxTrials(10))

	tests := []struct {
		name      string
		pocket    poker.Mask
		board     poker.Mask
		dead      poker.Mask
		opponents int
		want      error
	}{
		{"one card pocket", cards("As"), 0, 0, 1, poker.ErrWrongCardinality},
		{"two card board", cards("As Ad"), cards("2c 3c"), 0, 1, poker.ErrWrongCardinality},
		{"six card board", cards("As Ad"), cards("2c 3c 4c 5c 6c 7c"), 0, 1, poker.ErrWrongCardinality},
		{"pocket on board", cards("As Ad"), cards("As 3c 4c"), 0, 1, poker.ErrOverlappingMasks},
		{"dead pocket", cards("As Ad"), 0, cards("Ad"), 1, poker.ErrOverlappingMasks},
		{"no opponents", cards("As Ad"), 0, 0, 0, ErrInvalidOpponents},
		{"too many opponents", cards("As Ad"), 0, 0, 24, ErrInvalidOpponents},
		{"bits above the deck", cards("As Ad"), 0, 1 << 60, 1, poker.ErrInvalidCardCount},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.Equity(tc.pocket, tc.board, tc.dead, tc.opponents, time.Hour)
			assert.ErrorIs(t, err, tc.want)
			_, err = e.HandWinOdds(tc.pocket, tc.board, tc.dead, tc.opponents, time.Hour)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	// 22 opponents and a full board use 49 of the 50 cards left.
	_, err := e.Equity(cards("As Ad"), 0, 0, 22, time.Hour)
	require.NoError(t, err)
}

func BenchmarkEquity(b *testing.B) {
	e := NewEstimator(WithRand(randutil.New(1)), WithMaxTrials(1000))
	pocket, board := cards("As Kd"), cards("Qh Jc 2s")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = e.Equity(pocket, board, 0, 3, time.Hour)
	}
}

func BenchmarkCalculateEquity(b *testing.B) {
	rng := randutil.New(1)
	for i := 0; i < b.N; i++ {
		_, _ = CalculateEquity("As Kd", "Qh Jc 2s", 1, 1000, rng)
	}
}
