// Package rulebook holds the static rule tables and catalogs the engine
// plays by. Everything here is data; the services roll against it.
package rulebook

import (
	"github.com/KirkDiggler/delve-engine/internal/dice"
	"github.com/KirkDiggler/delve-engine/internal/entities"
)

// RoomContent is what a freshly explored room holds
type RoomContent string

const (
	RoomEmpty     RoomContent = "empty"
	RoomObstacle  RoomContent = "obstacle"
	RoomEncounter RoomContent = "encounter"
)

// RoomContentBands maps a d% roll to room content. Rolls at or under
// EmptyMax are empty, at or under ObstacleMax are obstacles, the rest
// are encounters.
var RoomContentBands = struct {
	EmptyMax    int
	ObstacleMax int
}{
	EmptyMax:    70,
	ObstacleMax: 90,
}

// RoomContentFor resolves a d% roll against the content bands
func RoomContentFor(roll int) RoomContent {
	switch {
	case roll <= RoomContentBands.EmptyMax:
		return RoomEmpty
	case roll <= RoomContentBands.ObstacleMax:
		return RoomObstacle
	default:
		return RoomEncounter
	}
}

// SurpriseChance is the x-in-6 chance either side is surprised
const SurpriseChance = 2

// WanderingChance is the x-in-6 chance a wandering group shows up
const WanderingChance = 1

// SearchFindChance is the x-in-6 chance a careful search turns something up
const SearchFindChance = 2

// SurpriseDistance is rolled when either side is caught off guard; the
// result halves for a party that was surprised alone.
var SurpriseDistance = dice.MustFormula("1d4*10")

// EncounterDistance gives the distance formula in yards for a placed
// encounter under each lighting condition.
var EncounterDistance = map[entities.Lighting]dice.Formula{
	entities.LightingBright: dice.MustFormula("2d6*10"),
	entities.LightingDim:    dice.MustFormula("1d6*10"),
	entities.LightingDark:   dice.MustFormula("1d4*10"),
}

// WanderingDistance is the closer-ranged table wandering groups use
var WanderingDistance = map[entities.Lighting]dice.Formula{
	entities.LightingBright: dice.MustFormula("1d6*10"),
	entities.LightingDim:    dice.MustFormula("1d4*10"),
	entities.LightingDark:   dice.MustFormula("1d2*10"),
}

// ReactionThresholds maps the 2d6 reaction roll onto the 5-point scale.
// Rolls at or under each bound land in that disposition.
var ReactionThresholds = struct {
	HostileMax    int
	AggressiveMax int
	CautiousMax   int
	NeutralMax    int
}{
	HostileMax:    2,
	AggressiveMax: 5,
	CautiousMax:   8,
	NeutralMax:    11,
}

// ReactionFor resolves a 2d6 roll (with any adjustment applied) against
// the reaction thresholds
func ReactionFor(roll int) entities.Disposition {
	switch {
	case roll <= ReactionThresholds.HostileMax:
		return entities.DispositionHostile
	case roll <= ReactionThresholds.AggressiveMax:
		return entities.DispositionAggressive
	case roll <= ReactionThresholds.CautiousMax:
		return entities.DispositionCautious
	case roll <= ReactionThresholds.NeutralMax:
		return entities.DispositionNeutral
	default:
		return entities.DispositionFriendly
	}
}

// Morale rule constants. The adjusted score flees without a roll at or
// under AutoFlee; a raw score at or over NeverFlee ignores morale checks.
const (
	MoraleAutoFlee       = 2
	MoraleNeverFlee      = 12
	MoraleHalfPenalty    = 1
	MoraleQuarterPenalty = 2
)

// MonsterAttackThreshold is the d20 roll a monster needs against armor
// class 0, banded by hit dice
func MonsterAttackThreshold(hd float64) int {
	switch {
	case hd < 2:
		return 19
	case hd < 3:
		return 18
	case hd < 4:
		return 17
	case hd < 5:
		return 16
	case hd < 6:
		return 15
	case hd < 7:
		return 14
	case hd < 8:
		return 13
	case hd < 9:
		return 12
	case hd < 11:
		return 11
	case hd < 13:
		return 10
	default:
		return 9
	}
}

// SaveTarget is the d20 target for each saving throw category
func SaveTarget(kind entities.SaveKind) int {
	switch kind {
	case entities.SavePoison:
		return 12
	case entities.SaveWands:
		return 13
	case entities.SaveParalysis:
		return 14
	case entities.SaveBreath:
		return 15
	case entities.SaveSpells:
		return 16
	default:
		return 14
	}
}

// HitsThreshold applies the shared to-hit rule: a natural 20 always
// hits, a natural 1 never does, otherwise the roll must reach the
// attacker's threshold less the defender's armor class.
func HitsThreshold(natural, threshold, armorClass int) bool {
	if natural == 20 {
		return true
	}
	if natural == 1 {
		return false
	}
	return natural >= threshold-armorClass
}

// AbilityCheckPasses applies the roll-under ability check rule: a
// natural 1 always passes, a natural 20 always fails, otherwise the
// roll must not exceed the effective score.
func AbilityCheckPasses(natural, score int) bool {
	if natural == 1 {
		return true
	}
	if natural == 20 {
		return false
	}
	return natural <= score
}
