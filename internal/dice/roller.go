package dice

import (
	"fmt"
	"strings"
)

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// Roller provides an interface for rolling dice
// This allows us to inject different implementations for testing
type Roller interface {
	// Roll rolls a number of dice with the given sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)

	// RollDie rolls a single die and returns the face value
	RollDie(sides int) (int, error)

	// Percent rolls percentile dice, returning 1-100
	Percent() (int, error)
}

// RollResult holds the outcome of a dice roll
type RollResult struct {
	Total    int   `json:"total"`
	Rolls    []int `json:"rolls"`
	Bonus    int   `json:"bonus"`
	Count    int   `json:"count"`
	Sides    int   `json:"sides"`
	RawTotal int   `json:"raw_total"`
	IsCrit   bool  `json:"is_crit,omitempty"`
	IsFumble bool  `json:"is_fumble,omitempty"`
}

// String renders the roll like "2d6+3: [4 5] = 12"
func (r *RollResult) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%dd%d", r.Count, r.Sides)
	if r.Bonus != 0 {
		fmt.Fprintf(&sb, "%+d", r.Bonus)
	}
	fmt.Fprintf(&sb, ": %v = %d", r.Rolls, r.Total)
	return sb.String()
}
