package entities

import (
	"math"

	"github.com/KirkDiggler/delve-engine/internal/dice"
)

// MonsterID identifies a catalog monster
type MonsterID string

const (
	MonsterGiantRat     MonsterID = "giant_rat"
	MonsterKobold       MonsterID = "kobold"
	MonsterGoblin       MonsterID = "goblin"
	MonsterSkeleton     MonsterID = "skeleton"
	MonsterOrc          MonsterID = "orc"
	MonsterZombie       MonsterID = "zombie"
	MonsterHobgoblin    MonsterID = "hobgoblin"
	MonsterGnoll        MonsterID = "gnoll"
	MonsterGhoul        MonsterID = "ghoul"
	MonsterBugbear      MonsterID = "bugbear"
	MonsterGiantSpider  MonsterID = "giant_spider"
	MonsterWight        MonsterID = "wight"
	MonsterOgre         MonsterID = "ogre"
	MonsterWraith       MonsterID = "wraith"
	MonsterOwlbear      MonsterID = "owlbear"
	MonsterMinotaur     MonsterID = "minotaur"
	MonsterTroll        MonsterID = "troll"
	MonsterGargoyle     MonsterID = "gargoyle"
	MonsterWyvern       MonsterID = "wyvern"
	MonsterHillGiant    MonsterID = "hill_giant"
	MonsterYoungDragon  MonsterID = "young_dragon"
)

// Disposition is the 5-point reaction scale
type Disposition string

const (
	DispositionHostile    Disposition = "hostile"
	DispositionAggressive Disposition = "aggressive"
	DispositionCautious   Disposition = "cautious"
	DispositionNeutral    Disposition = "neutral"
	DispositionFriendly   Disposition = "friendly"
)

// MoraleTrigger names the one-shot events that can force a morale check
type MoraleTrigger string

const (
	MoraleFirstBlood  MoraleTrigger = "first_blood"  // pool first takes damage
	MoraleFirstDeath  MoraleTrigger = "first_death"  // one round's damage reaches one monster's worth
	MoraleQuarterPool MoraleTrigger = "quarter_pool" // pool at or below 25%
	MoraleHalfPool    MoraleTrigger = "half_pool"    // pool at or below 50%
)

// MoraleTriggerOrder is the priority in which triggers are evaluated
var MoraleTriggerOrder = []MoraleTrigger{
	MoraleFirstBlood,
	MoraleFirstDeath,
	MoraleQuarterPool,
	MoraleHalfPool,
}

// CombatAction is what the party does with its combat round
type CombatAction string

const (
	ActionFight  CombatAction = "fight"
	ActionFlee   CombatAction = "flee"
	ActionParley CombatAction = "parley"
	ActionSpell  CombatAction = "spell"
)

// SurpriseAction is the party's choice when monsters are surprised
type SurpriseAction string

const (
	SurpriseEvade  SurpriseAction = "evade"
	SurpriseAmbush SurpriseAction = "ambush"
	SurpriseReveal SurpriseAction = "reveal"
)

// EncounterState is a live encounter. Monster hit points are pooled;
// the number of monsters still fighting derives from the pool.
type EncounterState struct {
	MonsterID         MonsterID              `json:"monster_id"`
	Name              string                 `json:"name"`
	Quantity          int                    `json:"quantity"`
	HitDice           float64                `json:"hit_dice"`
	ArmorClass        int                    `json:"armor_class"`
	Damage            dice.Formula           `json:"damage"`
	MoraleScore       int                    `json:"morale"`
	MaxPoolHP         int                    `json:"max_pool_hp"`
	PoolHP            int                    `json:"pool_hp"`
	Disposition       Disposition            `json:"disposition"`
	DistanceYards     int                    `json:"distance_yards"`
	PartySurprised    bool                   `json:"party_surprised,omitempty"`
	MonstersSurprised bool                   `json:"monsters_surprised,omitempty"`
	Wandering         bool                   `json:"wandering,omitempty"`
	Lair              bool                   `json:"lair,omitempty"`
	TreasureType      TreasureType           `json:"treasure_type,omitempty"`
	Special           string                 `json:"special,omitempty"`
	Round             int                    `json:"round"`
	MoraleFired       map[MoraleTrigger]bool `json:"morale_fired,omitempty"`
	ParleyAttempts    int                    `json:"parley_attempts,omitempty"`
}

// AvgMonsterHP is the hit points one monster of the group represents
func (e *EncounterState) AvgMonsterHP() int {
	if e.Quantity <= 0 {
		return 1
	}
	avg := int(math.Round(float64(e.MaxPoolHP) / float64(e.Quantity)))
	if avg < 1 {
		avg = 1
	}
	return avg
}

// ActiveMonsters is how many monsters still fight, derived from the pool.
// Never below 1 while the pool is positive, never above Quantity.
func (e *EncounterState) ActiveMonsters() int {
	if e.PoolHP <= 0 {
		return 0
	}
	active := int(math.Ceil(float64(e.PoolHP) / float64(e.AvgMonsterHP())))
	if active < 1 {
		active = 1
	}
	if active > e.Quantity {
		active = e.Quantity
	}
	return active
}

// ApplyPoolDamage reduces the pool, clamping at zero
func (e *EncounterState) ApplyPoolDamage(amount int) {
	if amount <= 0 {
		return
	}
	e.PoolHP -= amount
	if e.PoolHP < 0 {
		e.PoolHP = 0
	}
}

// DamageTaken is the cumulative damage the group has absorbed
func (e *EncounterState) DamageTaken() int {
	return e.MaxPoolHP - e.PoolHP
}

// Defeated checks if the whole group is down
func (e *EncounterState) Defeated() bool {
	return e.PoolHP <= 0
}

// PoolFraction is the remaining share of the group's hit points
func (e *EncounterState) PoolFraction() float64 {
	if e.MaxPoolHP <= 0 {
		return 0
	}
	return float64(e.PoolHP) / float64(e.MaxPoolHP)
}

// FiredTrigger checks whether a morale trigger already went off
func (e *EncounterState) FiredTrigger(t MoraleTrigger) bool {
	return e.MoraleFired[t]
}

// MarkTrigger records a morale trigger as spent
func (e *EncounterState) MarkTrigger(t MoraleTrigger) {
	if e.MoraleFired == nil {
		e.MoraleFired = make(map[MoraleTrigger]bool)
	}
	e.MoraleFired[t] = true
}
