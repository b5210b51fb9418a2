package rulebook_test

import (
	"testing"

	"github.com/KirkDiggler/delve-engine/internal/rulebook"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestXPForHitDice(t *testing.T) {
	tests := []struct {
		name     string
		hd       float64
		expected int
	}{
		{name: "no hit dice", hd: 0, expected: 0},
		{name: "under one", hd: 0.5, expected: 5},
		{name: "one", hd: 1, expected: 10},
		{name: "one and change floors", hd: 1.5, expected: 10},
		{name: "four", hd: 4, expected: 75},
		{name: "nine", hd: 9, expected: 900},
		{name: "twenty", hd: 20, expected: 15000},
		{name: "past the table clamps", hd: 36, expected: 15000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, rulebook.XPForHitDice(tt.hd))
		})
	}
}

// TestXPForHitDice_Monotone verifies tougher monsters are never worth
// less than weaker ones.
func TestXPForHitDice_Monotone(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := rapid.Float64Range(0, 30).Draw(rt, "a")
		b := rapid.Float64Range(0, 30).Draw(rt, "b")
		if a > b {
			a, b = b, a
		}
		assert.LessOrEqual(rt, rulebook.XPForHitDice(a), rulebook.XPForHitDice(b))
	})
}

func TestXPMultiplier(t *testing.T) {
	tests := []struct {
		name     string
		special  string
		expected int
	}{
		{name: "nothing special", special: "", expected: 1},
		{name: "one marker", special: "poison*", expected: 2},
		{name: "two markers", special: "breath weapon**", expected: 4},
		{name: "keyword without marker", special: "casts spells", expected: 2},
		{name: "breath keyword", special: "fiery breath", expected: 2},
		{name: "plain text", special: "keen nose", expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, rulebook.XPMultiplier(tt.special))
		})
	}
}
