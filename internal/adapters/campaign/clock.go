// Package campaign provides the campaign-side collaborators the delve
// service writes back to: the party roster, the treasury ledger, the
// experience tally, and the calendar. A campaign manager would normally
// stand behind these; here they keep honest local state so the engine
// can run a full expedition loop on its own.
package campaign

import (
	"context"
	"fmt"
	"sync"

	dlverr "github.com/KirkDiggler/delve-engine/internal/errors"
)

// Calendar granularity: ten-minute dungeon turns, six to the hour.
const (
	TurnsPerHour = 6
	TurnsPerDay  = TurnsPerHour * 24
	DaysPerMonth = 28
)

// monthNames follows the Mystaran year, twelve months of four weeks
var monthNames = [...]string{
	"Nuwmont", "Vatermont", "Thaumont", "Flaurmont",
	"Yarthmont", "Klarmont", "Felmont", "Fyrmont",
	"Ambyrmont", "Sviftmont", "Eirmont", "Kaldmont",
}

// Clock tracks campaign time as a running count of dungeon turns laid
// over a 336-day year
type Clock struct {
	mu    sync.Mutex
	turns int64
	year  int
}

// NewClock creates a campaign clock starting at dawn on 1 Nuwmont of
// the given year
func NewClock(year int) *Clock {
	return &Clock{year: year}
}

// Advance moves the campaign forward by whole dungeon turns
func (c *Clock) Advance(ctx context.Context, turns int) error {
	if turns < 0 {
		return dlverr.InvalidArgumentf("cannot advance time by %d turns", turns)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.turns += int64(turns)
	return nil
}

// Turns reports the total dungeon turns elapsed since the clock started
func (c *Clock) Turns() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.turns
}

// Date renders the campaign date, e.g. "12 Nuwmont, 1000 AC"
func (c *Clock) Date() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	days := int(c.turns / TurnsPerDay)
	year := c.year + days/(DaysPerMonth*len(monthNames))
	dayOfYear := days % (DaysPerMonth * len(monthNames))
	month := monthNames[dayOfYear/DaysPerMonth]
	day := dayOfYear%DaysPerMonth + 1

	return fmt.Sprintf("%d %s, %d AC", day, month, year)
}

// TimeOfDay renders the hour within the current day, e.g. "14:30"
func (c *Clock) TimeOfDay() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	turnOfDay := int(c.turns % TurnsPerDay)
	hour := turnOfDay / TurnsPerHour
	minute := (turnOfDay % TurnsPerHour) * 10
	return fmt.Sprintf("%02d:%02d", hour, minute)
}
