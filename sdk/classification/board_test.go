package classification

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/holdemeval/poker"
)

func TestBoardTexture(t *testing.T) {
	tests := []struct {
		name     string
		board    string
		expected BoardTexture
	}{
		{
			name:     "dry board",
			board:    "As 7h 2c",
			expected: Dry,
		},
		{
			name:     "semi wet board",
			board:    "Kh Qh 7c",
			expected: SemiWet,
		},
		{
			name:     "wet board",
			board:    "9h 8h 7s",
			expected: Wet,
		},
		{
			name:     "very wet board",
			board:    "Th 9h 8h",
			expected: VeryWet,
		},
		{
			name:     "paired board",
			board:    "As Ah 7c",
			expected: SemiWet, // Pair adds wetness
		},
		{
			name:     "rainbow dry",
			board:    "As 7h 2c 9d",
			expected: Dry,
		},
		{
			name:     "preflop",
			board:    "As Kh",
			expected: Dry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AnalyzeBoardTexture(cards(tt.board))
			if result != tt.expected {
				t.Errorf("AnalyzeBoardTexture(%v) = %v, want %v", tt.board, result, tt.expected)
			}
		})
	}
}

func TestBoardTextureString(t *testing.T) {
	tests := []struct {
		texture  BoardTexture
		expected string
	}{
		{Dry, "dry"},
		{SemiWet, "semi-wet"},
		{Wet, "wet"},
		{VeryWet, "very wet"},
		{BoardTexture(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := tt.texture.String()
			if result != tt.expected {
				t.Errorf("BoardTexture.String() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestAnalyzeFlushPotential(t *testing.T) {
	spades := poker.Spades
	hearts := poker.Hearts
	tests := []struct {
		name     string
		board    string
		expected FlushInfo
	}{
		{
			name:  "no flush draw",
			board: "As 7h 2c",
			expected: FlushInfo{
				MaxSuitCount: 1,
				DominantSuit: &spades,
				IsMonotone:   false,
				IsRainbow:    true,
			},
		},
		{
			name:  "two suited",
			board: "As 7s 2c",
			expected: FlushInfo{
				MaxSuitCount: 2,
				DominantSuit: &spades,
				IsMonotone:   false,
				IsRainbow:    false,
			},
		},
		{
			name:  "monotone flop",
			board: "As 7s 2s",
			expected: FlushInfo{
				MaxSuitCount: 3,
				DominantSuit: &spades,
				IsMonotone:   true,
				IsRainbow:    false,
			},
		},
		{
			name:  "tie goes to the higher card",
			board: "Ah 7h 2s 9s",
			expected: FlushInfo{
				MaxSuitCount: 2,
				DominantSuit: &hearts,
				IsMonotone:   false,
				IsRainbow:    false,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AnalyzeFlushPotential(cards(tt.board))

			if result.MaxSuitCount != tt.expected.MaxSuitCount {
				t.Errorf("MaxSuitCount = %v, want %v", result.MaxSuitCount, tt.expected.MaxSuitCount)
			}

			if result.IsMonotone != tt.expected.IsMonotone {
				t.Errorf("IsMonotone = %v, want %v", result.IsMonotone, tt.expected.IsMonotone)
			}

			if result.IsRainbow != tt.expected.IsRainbow {
				t.Errorf("IsRainbow = %v, want %v", result.IsRainbow, tt.expected.IsRainbow)
			}

			if assert.NotNil(t, result.DominantSuit) {
				assert.Equal(t, *tt.expected.DominantSuit, *result.DominantSuit)
			}
		})
	}
}

func TestAnalyzeStraightPotential(t *testing.T) {
	tests := []struct {
		name     string
		board    string
		expected StraightInfo
	}{
		{
			name:  "disconnected",
			board: "As 7h 2c",
			expected: StraightInfo{
				ConnectedCards: 1,
				Gaps:           10, // Large gaps between A, 7, 2
				HasAce:         true,
				BroadwayCards:  1, // Just the ace
				Connectedness:  1,
			},
		},
		{
			name:  "connected straight draw",
			board: "9h 8s 7c",
			expected: StraightInfo{
				ConnectedCards: 3,
				Gaps:           0,
				HasAce:         false,
				BroadwayCards:  0,
				Connectedness:  2,
			},
		},
		{
			name:  "broadway draw",
			board: "Kh Qs Jc",
			expected: StraightInfo{
				ConnectedCards: 3,
				Gaps:           0,
				HasAce:         false,
				BroadwayCards:  3,
				Connectedness:  2,
			},
		},
		{
			name:  "wheel draw",
			board: "As 2h 3d",
			expected: StraightInfo{
				ConnectedCards: 3,
				Gaps:           10,
				HasAce:         true,
				BroadwayCards:  1,
				Connectedness:  2,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AnalyzeStraightPotential(cards(tt.board))
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConnectedRanks(t *testing.T) {
	t.Parallel()
	tests := []struct {
		cards string
		want  int
	}{
		{"9c Ts 7d 3c", 2},
		{"2c 7d Qh", 0},
		{"9h 8s 7c", 2},
		{"As Kh Qd", 2},
		{"As 2h 3d", 2},
		{"As Kh", 1},
		{"As 2c", 1},
		{"9h 7c", 1},
		{"9h 7c 5d", 2},
		{"Jh Tc 8d", 2},
		{"8d 9c", 1},
		{"Ah Kh Qh Jh Th", 4},
	}

	for _, tc := range tests {
		t.Run(tc.cards, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ConnectedRanks(cards(tc.cards).RankMask()))
		})
	}
}

func TestLongestRun(t *testing.T) {
	t.Parallel()
	tests := []struct {
		cards string
		want  int
	}{
		{"As 2c", 1},
		{"As 2c 3d", 3},
		{"As Kc Qd", 3},
		{"5s 4c 3d 2h As", 5},
		{"9s 7c", 1},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, longestRun(cards(tc.cards).RankMask()), tc.cards)
	}
}

func TestHelperFunctions(t *testing.T) {
	t.Run("countBoardPairs", func(t *testing.T) {
		tests := []struct {
			board    string
			expected int
		}{
			{"As 7h 2c", 0},
			{"As Ah 2c", 1},
			{"As Ah 2c 2d", 2},
			{"As Ah Ac 2d", 1},
		}

		for _, tt := range tests {
			result := countBoardPairs(cards(tt.board))
			if result != tt.expected {
				t.Errorf("countBoardPairs(%v) = %v, want %v", tt.board, result, tt.expected)
			}
		}
	})

	t.Run("countHighCards", func(t *testing.T) {
		assert.Equal(t, 3, countHighCards(cards("As Kh Tc 2d")))
		assert.Equal(t, 0, countHighCards(cards("9s 8h 2c")))
	})

	t.Run("MaxSuitCount", func(t *testing.T) {
		assert.Equal(t, 3, MaxSuitCount(cards("As Ks 2s 4h")))
		assert.Equal(t, 0, MaxSuitCount(0))
	})
}
