package dice_test

import (
	"fmt"
	"testing"

	"github.com/KirkDiggler/delve-engine/internal/dice"
	mockdice "github.com/KirkDiggler/delve-engine/internal/dice/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestParseFormula(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    dice.Formula
		wantErr bool
	}{
		{
			name:  "basic",
			input: "2d6",
			want:  dice.Formula{Raw: "2d6", Count: 2, Sides: 6, Multiplier: 1},
		},
		{
			name:  "count omitted",
			input: "d20",
			want:  dice.Formula{Raw: "d20", Count: 1, Sides: 20, Multiplier: 1},
		},
		{
			name:  "positive modifier",
			input: "1d8+1",
			want:  dice.Formula{Raw: "1d8+1", Count: 1, Sides: 8, Modifier: 1, Multiplier: 1},
		},
		{
			name:  "negative modifier",
			input: "1d4-1",
			want:  dice.Formula{Raw: "1d4-1", Count: 1, Sides: 4, Modifier: -1, Multiplier: 1},
		},
		{
			name:  "multiplier",
			input: "1d6*10",
			want:  dice.Formula{Raw: "1d6*10", Count: 1, Sides: 6, Multiplier: 10},
		},
		{
			name:  "flat value",
			input: "25",
			want:  dice.Formula{Raw: "25", Modifier: 25},
		},
		{
			name:  "empty is zero",
			input: "",
			want:  dice.Formula{},
		},
		{
			name:    "zero count",
			input:   "0d6",
			wantErr: true,
		},
		{
			name:    "one-sided die",
			input:   "2d1",
			wantErr: true,
		},
		{
			name:    "garbage",
			input:   "xd6",
			wantErr: true,
		},
		{
			name:    "negative flat",
			input:   "-5",
			wantErr: true,
		},
		{
			name:    "zero multiplier",
			input:   "1d6*0",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dice.ParseFormula(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormula_Roll(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{3, 4})

	f := dice.MustFormula("2d6+2")
	total, err := f.Roll(roller)
	require.NoError(t, err)
	assert.Equal(t, 9, total)
}

func TestFormula_RollMultiplier(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{4})

	f := dice.MustFormula("1d6*10")
	total, err := f.Roll(roller)
	require.NoError(t, err)
	assert.Equal(t, 40, total)
}

func TestFormula_RollFlat(t *testing.T) {
	roller := mockdice.NewManualMockRoller()

	f := dice.MustFormula("25")
	total, err := f.Roll(roller)
	require.NoError(t, err)
	assert.Equal(t, 25, total)
	assert.Equal(t, 0, roller.Remaining(), "flat values consume no dice")
}

func TestFormula_ZeroValue(t *testing.T) {
	var f dice.Formula
	assert.True(t, f.IsZero())

	roller := mockdice.NewManualMockRoller()
	total, err := f.Roll(roller)
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}

func TestMustFormula_Panics(t *testing.T) {
	assert.Panics(t, func() {
		dice.MustFormula("not dice")
	})
}

// TestParseFormula_RoundTrip verifies String() output reparses to the same
// formula for arbitrary well-formed inputs.
func TestParseFormula_RoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		count := rapid.IntRange(1, 20).Draw(rt, "count")
		sides := rapid.IntRange(2, 100).Draw(rt, "sides")
		modifier := rapid.IntRange(-10, 10).Draw(rt, "modifier")

		expr := fmt.Sprintf("%dd%d", count, sides)
		if modifier != 0 {
			expr = fmt.Sprintf("%s%+d", expr, modifier)
		}

		f, err := dice.ParseFormula(expr)
		require.NoError(rt, err)

		again, err := dice.ParseFormula(f.String())
		require.NoError(rt, err)
		assert.Equal(rt, f, again, "parse(String()) must round-trip")
	})
}

// TestFormula_RollBounds verifies rolled totals stay within [Count+Modifier,
// Max()] scaled by the multiplier for arbitrary formulas.
func TestFormula_RollBounds(t *testing.T) {
	roller := dice.NewRandomRoller(7)

	rapid.Check(t, func(rt *rapid.T) {
		count := rapid.IntRange(1, 10).Draw(rt, "count")
		sides := rapid.IntRange(2, 20).Draw(rt, "sides")
		mult := rapid.IntRange(1, 10).Draw(rt, "mult")

		f := dice.Formula{Count: count, Sides: sides, Multiplier: mult}

		total, err := f.Roll(roller)
		require.NoError(rt, err)
		assert.GreaterOrEqual(rt, total, count*mult)
		assert.LessOrEqual(rt, total, f.Max())
	})
}
