package testutils

import (
	"github.com/KirkDiggler/delve-engine/internal/dice"
	"github.com/KirkDiggler/delve-engine/internal/entities"
)

// CreateTestSession creates an idle session with fresh supplies
func CreateTestSession(id, name string) *entities.DungeonSession {
	return &entities.DungeonSession{
		ID:             id,
		Name:           name,
		State:          entities.SessionStateIdle,
		Depth:          1,
		LightRemaining: entities.TurnsPerLightUnit,
		LightUnits:     2,
		Rations:        3,
	}
}

// CreateTestEncounter creates a goblin band with the given pool
func CreateTestEncounter(quantity, poolHP int) *entities.EncounterState {
	return &entities.EncounterState{
		MonsterID:     entities.MonsterGoblin,
		Name:          "Goblin",
		Quantity:      quantity,
		HitDice:       1,
		ArmorClass:    6,
		Damage:        dice.MustFormula("1d6"),
		MoraleScore:   7,
		MaxPoolHP:     poolHP,
		PoolHP:        poolHP,
		Disposition:   entities.DispositionHostile,
		DistanceYards: 20,
		TreasureType:  entities.TreasureTypeC,
		Round:         1,
	}
}

// CreateTestObstacle creates an unresolved stuck door
func CreateTestObstacle() *entities.ObstacleState {
	return &entities.ObstacleState{
		ID:       entities.ObstacleStuckDoor,
		Category: entities.ObstacleCategoryDoor,
		Name:     "stuck door",
		Outcome:  entities.OutcomePending,
	}
}
