package rulebook

import (
	"github.com/KirkDiggler/delve-engine/internal/dice"
	"github.com/KirkDiggler/delve-engine/internal/entities"
)

// MonsterDefinition is the catalog stat block for one monster kind.
// Special ability markers ("*") on the Special tag double the XP award
// per marker.
type MonsterDefinition struct {
	ID              entities.MonsterID
	Name            string
	HitDice         float64
	ArmorClass      int
	Damage          dice.Formula
	MoraleScore     int
	NumberAppearing dice.Formula
	TreasureType    entities.TreasureType
	Special         string
}

var monsterCatalog = map[entities.MonsterID]MonsterDefinition{
	entities.MonsterGiantRat: {
		ID:              entities.MonsterGiantRat,
		Name:            "Giant Rat",
		HitDice:         0.5,
		ArmorClass:      7,
		Damage:          dice.MustFormula("1d3"),
		MoraleScore:     8,
		NumberAppearing: dice.MustFormula("3d6"),
		TreasureType:    entities.TreasureTypeL,
	},
	entities.MonsterKobold: {
		ID:              entities.MonsterKobold,
		Name:            "Kobold",
		HitDice:         0.5,
		ArmorClass:      7,
		Damage:          dice.MustFormula("1d4"),
		MoraleScore:     6,
		NumberAppearing: dice.MustFormula("4d4"),
		TreasureType:    entities.TreasureTypeJ,
	},
	entities.MonsterGoblin: {
		ID:              entities.MonsterGoblin,
		Name:            "Goblin",
		HitDice:         1,
		ArmorClass:      6,
		Damage:          dice.MustFormula("1d6"),
		MoraleScore:     7,
		NumberAppearing: dice.MustFormula("2d4"),
		TreasureType:    entities.TreasureTypeC,
	},
	entities.MonsterSkeleton: {
		ID:              entities.MonsterSkeleton,
		Name:            "Skeleton",
		HitDice:         1,
		ArmorClass:      7,
		Damage:          dice.MustFormula("1d6"),
		MoraleScore:     12,
		NumberAppearing: dice.MustFormula("3d4"),
	},
	entities.MonsterOrc: {
		ID:              entities.MonsterOrc,
		Name:            "Orc",
		HitDice:         1,
		ArmorClass:      6,
		Damage:          dice.MustFormula("1d8"),
		MoraleScore:     8,
		NumberAppearing: dice.MustFormula("2d4"),
		TreasureType:    entities.TreasureTypeD,
	},
	entities.MonsterZombie: {
		ID:              entities.MonsterZombie,
		Name:            "Zombie",
		HitDice:         2,
		ArmorClass:      8,
		Damage:          dice.MustFormula("1d8"),
		MoraleScore:     12,
		NumberAppearing: dice.MustFormula("2d4"),
	},
	entities.MonsterHobgoblin: {
		ID:              entities.MonsterHobgoblin,
		Name:            "Hobgoblin",
		HitDice:         1.5,
		ArmorClass:      6,
		Damage:          dice.MustFormula("1d8"),
		MoraleScore:     8,
		NumberAppearing: dice.MustFormula("1d6"),
		TreasureType:    entities.TreasureTypeD,
	},
	entities.MonsterGnoll: {
		ID:              entities.MonsterGnoll,
		Name:            "Gnoll",
		HitDice:         2,
		ArmorClass:      5,
		Damage:          dice.MustFormula("2d4"),
		MoraleScore:     8,
		NumberAppearing: dice.MustFormula("1d6"),
		TreasureType:    entities.TreasureTypeD,
	},
	entities.MonsterGhoul: {
		ID:              entities.MonsterGhoul,
		Name:            "Ghoul",
		HitDice:         2,
		ArmorClass:      6,
		Damage:          dice.MustFormula("1d4"),
		MoraleScore:     9,
		NumberAppearing: dice.MustFormula("1d6"),
		TreasureType:    entities.TreasureTypeB,
		Special:         "paralysis*",
	},
	entities.MonsterBugbear: {
		ID:              entities.MonsterBugbear,
		Name:            "Bugbear",
		HitDice:         3,
		ArmorClass:      5,
		Damage:          dice.MustFormula("2d4"),
		MoraleScore:     9,
		NumberAppearing: dice.MustFormula("1d4"),
		TreasureType:    entities.TreasureTypeB,
	},
	entities.MonsterGiantSpider: {
		ID:              entities.MonsterGiantSpider,
		Name:            "Giant Spider",
		HitDice:         3,
		ArmorClass:      6,
		Damage:          dice.MustFormula("1d8"),
		MoraleScore:     8,
		NumberAppearing: dice.MustFormula("1d3"),
		TreasureType:    entities.TreasureTypeC,
		Special:         "poison*",
	},
	entities.MonsterWight: {
		ID:              entities.MonsterWight,
		Name:            "Wight",
		HitDice:         3,
		ArmorClass:      5,
		Damage:          dice.MustFormula("1d6"),
		MoraleScore:     12,
		NumberAppearing: dice.MustFormula("1d4"),
		TreasureType:    entities.TreasureTypeB,
		Special:         "energy drain*",
	},
	entities.MonsterOgre: {
		ID:              entities.MonsterOgre,
		Name:            "Ogre",
		HitDice:         4,
		ArmorClass:      5,
		Damage:          dice.MustFormula("1d10"),
		MoraleScore:     10,
		NumberAppearing: dice.MustFormula("1d4"),
		TreasureType:    entities.TreasureTypeC,
	},
	entities.MonsterGargoyle: {
		ID:              entities.MonsterGargoyle,
		Name:            "Gargoyle",
		HitDice:         4,
		ArmorClass:      5,
		Damage:          dice.MustFormula("1d6"),
		MoraleScore:     11,
		NumberAppearing: dice.MustFormula("1d4"),
		TreasureType:    entities.TreasureTypeC,
		Special:         "immune to normal weapons*",
	},
	entities.MonsterWraith: {
		ID:              entities.MonsterWraith,
		Name:            "Wraith",
		HitDice:         4,
		ArmorClass:      3,
		Damage:          dice.MustFormula("1d6"),
		MoraleScore:     12,
		NumberAppearing: dice.MustFormula("1d3"),
		TreasureType:    entities.TreasureTypeE,
		Special:         "energy drain*",
	},
	entities.MonsterOwlbear: {
		ID:              entities.MonsterOwlbear,
		Name:            "Owlbear",
		HitDice:         5,
		ArmorClass:      5,
		Damage:          dice.MustFormula("1d8"),
		MoraleScore:     9,
		NumberAppearing: dice.MustFormula("1d2"),
		TreasureType:    entities.TreasureTypeC,
	},
	entities.MonsterMinotaur: {
		ID:              entities.MonsterMinotaur,
		Name:            "Minotaur",
		HitDice:         6,
		ArmorClass:      6,
		Damage:          dice.MustFormula("1d10"),
		MoraleScore:     11,
		NumberAppearing: dice.MustFormula("1d2"),
		TreasureType:    entities.TreasureTypeC,
	},
	entities.MonsterTroll: {
		ID:              entities.MonsterTroll,
		Name:            "Troll",
		HitDice:         6,
		ArmorClass:      4,
		Damage:          dice.MustFormula("1d10"),
		MoraleScore:     10,
		NumberAppearing: dice.MustFormula("1d2"),
		TreasureType:    entities.TreasureTypeD,
		Special:         "regeneration*",
	},
	entities.MonsterWyvern: {
		ID:              entities.MonsterWyvern,
		Name:            "Wyvern",
		HitDice:         7,
		ArmorClass:      3,
		Damage:          dice.MustFormula("2d8"),
		MoraleScore:     9,
		NumberAppearing: dice.MustFormula("1d2"),
		TreasureType:    entities.TreasureTypeE,
		Special:         "poison sting*",
	},
	entities.MonsterHillGiant: {
		ID:              entities.MonsterHillGiant,
		Name:            "Hill Giant",
		HitDice:         8,
		ArmorClass:      4,
		Damage:          dice.MustFormula("2d8"),
		MoraleScore:     8,
		NumberAppearing: dice.MustFormula("1d2"),
		TreasureType:    entities.TreasureTypeE,
	},
	entities.MonsterYoungDragon: {
		ID:              entities.MonsterYoungDragon,
		Name:            "Young Dragon",
		HitDice:         9,
		ArmorClass:      2,
		Damage:          dice.MustFormula("2d10"),
		MoraleScore:     9,
		NumberAppearing: dice.MustFormula("1"),
		TreasureType:    entities.TreasureTypeH,
		Special:         "breath weapon**",
	},
}

// depthBands lists which monsters roam each dungeon level. Deeper
// requests clamp to the last band.
var depthBands = [][]entities.MonsterID{
	{
		entities.MonsterGiantRat,
		entities.MonsterKobold,
		entities.MonsterGoblin,
		entities.MonsterSkeleton,
	},
	{
		entities.MonsterGoblin,
		entities.MonsterSkeleton,
		entities.MonsterOrc,
		entities.MonsterZombie,
		entities.MonsterHobgoblin,
		entities.MonsterGnoll,
	},
	{
		entities.MonsterOrc,
		entities.MonsterGnoll,
		entities.MonsterGhoul,
		entities.MonsterBugbear,
		entities.MonsterGiantSpider,
		entities.MonsterWight,
	},
	{
		entities.MonsterGhoul,
		entities.MonsterBugbear,
		entities.MonsterOgre,
		entities.MonsterGargoyle,
		entities.MonsterWraith,
		entities.MonsterOwlbear,
	},
	{
		entities.MonsterOgre,
		entities.MonsterOwlbear,
		entities.MonsterMinotaur,
		entities.MonsterTroll,
		entities.MonsterWyvern,
	},
	{
		entities.MonsterTroll,
		entities.MonsterWyvern,
		entities.MonsterHillGiant,
		entities.MonsterYoungDragon,
	},
}

// Monster looks up a catalog monster by ID
func Monster(id entities.MonsterID) (MonsterDefinition, bool) {
	def, ok := monsterCatalog[id]
	return def, ok
}

// MonstersForDepth returns the monsters eligible at a dungeon depth.
// Depth 1 is the shallowest; anything past the deepest band uses the
// deepest band.
func MonstersForDepth(depth int) []MonsterDefinition {
	if depth < 1 {
		depth = 1
	}
	if depth > len(depthBands) {
		depth = len(depthBands)
	}

	band := depthBands[depth-1]
	out := make([]MonsterDefinition, 0, len(band))
	for _, id := range band {
		out = append(out, monsterCatalog[id])
	}
	return out
}
