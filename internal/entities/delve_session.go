package entities

import (
	"fmt"
	"time"
)

// SessionState represents the current state of a delve session
type SessionState string

const (
	SessionStateIdle      SessionState = "idle"      // free to explore, search, rest, or head back
	SessionStateObstacle  SessionState = "obstacle"  // an obstacle blocks the way
	SessionStateEncounter SessionState = "encounter" // monsters engaged
	SessionStateSurprise  SessionState = "surprise"  // monsters surprised, party chooses first
	SessionStateLoot      SessionState = "loot"      // a defeated encounter awaits looting
	SessionStateReturning SessionState = "returning" // mid-return, interrupted on the way up
)

// LogKind categorizes session log entries
type LogKind string

const (
	LogRoom     LogKind = "room"
	LogObstacle LogKind = "obstacle"
	LogCombat   LogKind = "combat"
	LogTreasure LogKind = "treasure"
	LogTravel   LogKind = "travel"
	LogResource LogKind = "resource"
	LogSystem   LogKind = "system"
)

// LogEntry is one line of the session narrative
type LogEntry struct {
	Turn    int     `json:"turn"`
	Kind    LogKind `json:"kind"`
	Message string  `json:"message"`
}

// MaxLogEntries bounds the session log; the oldest entries drop first
const MaxLogEntries = 200

// TurnsPerLightUnit is how many 10-minute turns one torch burns
const TurnsPerLightUnit = 6

// TurnsPerMeal is how often dungeon time costs a ration
const TurnsPerMeal = 24

// Lighting represents how well the party can see
type Lighting string

const (
	LightingBright Lighting = "bright"
	LightingDim    Lighting = "dim"
	LightingDark   Lighting = "dark"
)

// DungeonSession is the full serializable state of one delve
type DungeonSession struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	State           SessionState    `json:"state"`
	Depth           int             `json:"depth"`
	LairMode        bool            `json:"lair_mode,omitempty"` // placed encounters guard their full hoard
	Turn            int             `json:"turn"`
	LightRemaining  int             `json:"light_remaining"` // turns left on the burning torch
	LightUnits      int             `json:"light_units"`     // unlit spares
	Rations         int             `json:"rations"`
	RoomsExplored   int             `json:"rooms_explored"`
	LootCarried     int             `json:"loot_carried"` // gold-equivalent value
	PendingReturn   bool            `json:"pending_return,omitempty"`
	ReturnTurnsLeft int             `json:"return_turns_left,omitempty"`
	MonstersAlerted bool            `json:"monsters_alerted,omitempty"`
	SearchedRoom    bool            `json:"searched_room,omitempty"`
	Obstacle        *ObstacleState  `json:"obstacle,omitempty"`
	Encounter       *EncounterState `json:"encounter,omitempty"`
	Log             []LogEntry      `json:"log"`
	Seed            int64           `json:"seed,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	LastActive      time.Time       `json:"last_active"`
}

// IsIdle checks if the session is free for idle actions
func (s *DungeonSession) IsIdle() bool {
	return s.State == SessionStateIdle
}

// InCombat checks if an encounter is being fought
func (s *DungeonSession) InCombat() bool {
	return s.State == SessionStateEncounter
}

// Lighting derives how much the party can see from the burning torch
func (s *DungeonSession) Lighting() Lighting {
	switch {
	case s.LightRemaining > 2:
		return LightingBright
	case s.LightRemaining > 0:
		return LightingDim
	default:
		return LightingDark
	}
}

// InDarkness checks if the party has no burning light at all
func (s *DungeonSession) InDarkness() bool {
	return s.LightRemaining <= 0 && s.LightUnits <= 0
}

// AppendLog adds a formatted entry, dropping the oldest past the bound
func (s *DungeonSession) AppendLog(kind LogKind, format string, args ...any) {
	entry := LogEntry{
		Turn:    s.Turn,
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
	s.Log = append(s.Log, entry)
	if len(s.Log) > MaxLogEntries {
		s.Log = s.Log[len(s.Log)-MaxLogEntries:]
	}
}

// RecentLog returns up to n newest entries, oldest first
func (s *DungeonSession) RecentLog(n int) []LogEntry {
	if n <= 0 || len(s.Log) == 0 {
		return nil
	}
	if n > len(s.Log) {
		n = len(s.Log)
	}
	return s.Log[len(s.Log)-n:]
}
