package rulebook

import (
	"github.com/KirkDiggler/delve-engine/internal/dice"
	"github.com/KirkDiggler/delve-engine/internal/entities"
)

// ObstacleDefinition is the catalog entry for one obstacle. Parameters
// are data; the resolver dispatches on Category.
type ObstacleDefinition struct {
	ID          entities.ObstacleID
	Category    entities.ObstacleCategory
	Name        string
	Description string

	TurnCost        int // turns to resolve by force
	CarefulTurnCost int // turns to resolve carefully

	// Doors
	ForceTarget  int // 1d6 + best strength modifier must reach this
	Locked       bool
	Secret       bool
	AlertsOnFail bool

	// Traps
	Save         entities.SaveKind
	Damage       dice.Formula
	NegateOnSave bool // a made save takes no damage instead of half

	// Hazards
	DexCheck      bool // each member checks dexterity to get across
	RopeBonus     int  // effective score bonus when crossing carefully
	CarefulDamage dice.Formula
	LightRisk     int // x-in-6 to ruin a light unit when rushing through
	CollapseRisk  int // x-in-6 to bring the roof down when digging fast
}

var obstacleCatalog = map[entities.ObstacleID]ObstacleDefinition{
	entities.ObstacleStuckDoor: {
		ID:           entities.ObstacleStuckDoor,
		Category:     entities.ObstacleCategoryDoor,
		Name:         "stuck door",
		Description:  "A warped oak door, swollen shut in its frame.",
		TurnCost:     1,
		CarefulTurnCost: 2,
		ForceTarget:  5,
		AlertsOnFail: true,
	},
	entities.ObstacleLockedDoor: {
		ID:           entities.ObstacleLockedDoor,
		Category:     entities.ObstacleCategoryDoor,
		Name:         "locked door",
		Description:  "An iron-banded door with a heavy, rust-frozen lock.",
		TurnCost:     1,
		CarefulTurnCost: 2,
		ForceTarget:  5,
		Locked:       true,
		AlertsOnFail: true,
	},
	entities.ObstacleSecretDoor: {
		ID:          entities.ObstacleSecretDoor,
		Category:    entities.ObstacleCategoryDoor,
		Name:        "secret door",
		Description: "A seam in the stonework hides a counterweighted panel.",
		TurnCost:    1,
		CarefulTurnCost: 1,
	},
	entities.ObstaclePitTrap: {
		ID:           entities.ObstaclePitTrap,
		Category:     entities.ObstacleCategoryTrap,
		Name:         "pit trap",
		Description:  "The flagstones ahead sit on a pivot over a dug pit.",
		TurnCost:     1,
		CarefulTurnCost: 1,
		Save:         entities.SaveParalysis,
		Damage:       dice.MustFormula("1d6"),
		NegateOnSave: true,
	},
	entities.ObstacleDartTrap: {
		ID:          entities.ObstacleDartTrap,
		Category:    entities.ObstacleCategoryTrap,
		Name:        "dart trap",
		Description: "Hair-fine holes pock the wall beside a tripwire.",
		TurnCost:    1,
		CarefulTurnCost: 1,
		Save:        entities.SaveWands,
		Damage:      dice.MustFormula("1d4"),
	},
	entities.ObstaclePoisonNeedle: {
		ID:           entities.ObstaclePoisonNeedle,
		Category:     entities.ObstacleCategoryTrap,
		Name:         "poison needle",
		Description:  "A needle waits behind the latch plate, dark with venom.",
		TurnCost:     1,
		CarefulTurnCost: 1,
		Save:         entities.SavePoison,
		Damage:       dice.MustFormula("2d4"),
		NegateOnSave: true,
	},
	entities.ObstacleChasm: {
		ID:            entities.ObstacleChasm,
		Category:      entities.ObstacleCategoryHazard,
		Name:          "chasm",
		Description:   "The floor drops away into a black crack twenty feet wide.",
		TurnCost:      2,
		CarefulTurnCost: 3,
		DexCheck:      true,
		RopeBonus:     4,
		Damage:        dice.MustFormula("2d6"),
		CarefulDamage: dice.MustFormula("1d6"),
	},
	entities.ObstacleSlipperyLedge: {
		ID:            entities.ObstacleSlipperyLedge,
		Category:      entities.ObstacleCategoryHazard,
		Name:          "slippery ledge",
		Description:   "A slime-slick shelf of rock skirts a sinkhole.",
		TurnCost:      1,
		CarefulTurnCost: 2,
		DexCheck:      true,
		RopeBonus:     2,
		Damage:        dice.MustFormula("1d6"),
		CarefulDamage: dice.MustFormula("1d4"),
	},
	entities.ObstacleFloodedPassage: {
		ID:          entities.ObstacleFloodedPassage,
		Category:    entities.ObstacleCategoryHazard,
		Name:        "flooded passage",
		Description: "Cold water stands chest-deep down the corridor.",
		TurnCost:    1,
		CarefulTurnCost: 3,
		LightRisk:   2,
	},
	entities.ObstacleCollapsedTunnel: {
		ID:           entities.ObstacleCollapsedTunnel,
		Category:     entities.ObstacleCategoryHazard,
		Name:         "collapsed tunnel",
		Description:  "Fallen rubble chokes the passage almost to the ceiling.",
		TurnCost:     1,
		CarefulTurnCost: 4,
		CollapseRisk: 2,
		Damage:       dice.MustFormula("1d6"),
	},
}

// ObstacleCategoryBands maps a d% roll to the obstacle category drawn
var ObstacleCategoryBands = struct {
	TrapMax int
	DoorMax int
}{
	TrapMax: 40,
	DoorMax: 70,
}

// ObstacleCategoryFor resolves a d% roll against the category bands
func ObstacleCategoryFor(roll int) entities.ObstacleCategory {
	switch {
	case roll <= ObstacleCategoryBands.TrapMax:
		return entities.ObstacleCategoryTrap
	case roll <= ObstacleCategoryBands.DoorMax:
		return entities.ObstacleCategoryDoor
	default:
		return entities.ObstacleCategoryHazard
	}
}

// Obstacle looks up a catalog obstacle by ID
func Obstacle(id entities.ObstacleID) (ObstacleDefinition, bool) {
	def, ok := obstacleCatalog[id]
	return def, ok
}

// ObstaclesByCategory returns the catalog entries of one category in a
// stable order
func ObstaclesByCategory(cat entities.ObstacleCategory) []ObstacleDefinition {
	order := []entities.ObstacleID{
		entities.ObstacleStuckDoor,
		entities.ObstacleLockedDoor,
		entities.ObstacleSecretDoor,
		entities.ObstaclePitTrap,
		entities.ObstacleDartTrap,
		entities.ObstaclePoisonNeedle,
		entities.ObstacleChasm,
		entities.ObstacleSlipperyLedge,
		entities.ObstacleFloodedPassage,
		entities.ObstacleCollapsedTunnel,
	}

	var out []ObstacleDefinition
	for _, id := range order {
		if def := obstacleCatalog[id]; def.Category == cat {
			out = append(out, def)
		}
	}
	return out
}
