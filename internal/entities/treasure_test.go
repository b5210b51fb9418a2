package entities_test

import (
	"testing"

	"github.com/KirkDiggler/delve-engine/internal/entities"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestTreasureResult_TotalGold(t *testing.T) {
	tests := []struct {
		name     string
		treasure entities.TreasureResult
		expected int
	}{
		{
			name:     "empty",
			treasure: entities.TreasureResult{},
			expected: 0,
		},
		{
			name:     "gold only",
			treasure: entities.TreasureResult{Gold: 120},
			expected: 120,
		},
		{
			name:     "copper floors away",
			treasure: entities.TreasureResult{Copper: 99},
			expected: 0,
		},
		{
			name:     "mixed coins",
			treasure: entities.TreasureResult{Copper: 150, Silver: 30, Electrum: 2, Gold: 10, Platinum: 1},
			expected: 1 + 3 + 1 + 10 + 5,
		},
		{
			name:     "gems and jewelry add face value",
			treasure: entities.TreasureResult{Gems: []int{50, 100}, Jewelry: []int{700}},
			expected: 850,
		},
		{
			name:     "magic has no coin value",
			treasure: entities.TreasureResult{MagicItems: []string{"potion of healing"}},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.treasure.TotalGold())
		})
	}
}

// TestTreasureResult_TotalGoldNonNegative pins the invariant that any
// generated haul values out at zero or more gold.
func TestTreasureResult_TotalGoldNonNegative(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		tr := entities.TreasureResult{
			Copper:   rapid.IntRange(0, 10000).Draw(rt, "copper"),
			Silver:   rapid.IntRange(0, 5000).Draw(rt, "silver"),
			Electrum: rapid.IntRange(0, 1000).Draw(rt, "electrum"),
			Gold:     rapid.IntRange(0, 5000).Draw(rt, "gold"),
			Platinum: rapid.IntRange(0, 500).Draw(rt, "platinum"),
			Gems:     rapid.SliceOfN(rapid.IntRange(10, 1000), 0, 8).Draw(rt, "gems"),
		}
		assert.GreaterOrEqual(rt, tr.TotalGold(), 0)
	})
}

func TestTreasureResult_Empty(t *testing.T) {
	tr := &entities.TreasureResult{}
	assert.True(t, tr.Empty())
	assert.Equal(t, "nothing of value", tr.String())

	tr.Silver = 5
	assert.False(t, tr.Empty())
}

func TestTreasureResult_String(t *testing.T) {
	tr := &entities.TreasureResult{
		Gold:       200,
		Gems:       []int{50},
		MagicItems: []string{"scroll of protection"},
	}

	s := tr.String()
	assert.Contains(t, s, "200 gp")
	assert.Contains(t, s, "1 gems")
	assert.Contains(t, s, "scroll of protection")
}
