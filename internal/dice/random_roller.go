package dice

import (
	"errors"
	"math/rand"
	"sync"
	"time"
)

// randomRoller implements Roller with a seeded PRNG. A fixed seed gives a
// reproducible roll sequence, which is how sessions replay deterministically.
type randomRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomRoller creates a random dice roller. Seed 0 seeds from the clock.
func NewRandomRoller(seed int64) Roller {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &randomRoller{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, errors.New("invalid dice count")
	}
	if sides < 2 {
		return nil, errors.New("invalid dice size")
	}

	rolls := make([]int, count)
	rawTotal := 0

	r.mu.Lock()
	for i := 0; i < count; i++ {
		roll := r.rng.Intn(sides) + 1
		rolls[i] = roll
		rawTotal += roll
	}
	r.mu.Unlock()

	result := &RollResult{
		Total:    rawTotal + bonus,
		Rolls:    rolls,
		Bonus:    bonus,
		Count:    count,
		Sides:    sides,
		RawTotal: rawTotal,
	}

	// Check for crit/fumble on d20
	if count == 1 && sides == 20 {
		result.IsCrit = rolls[0] == 20
		result.IsFumble = rolls[0] == 1
	}

	return result, nil
}

// RollDie implements Roller.RollDie
func (r *randomRoller) RollDie(sides int) (int, error) {
	result, err := r.Roll(1, sides, 0)
	if err != nil {
		return 0, err
	}
	return result.Rolls[0], nil
}

// Percent implements Roller.Percent
func (r *randomRoller) Percent() (int, error) {
	return r.RollDie(100)
}
