package rulebook

import (
	"github.com/KirkDiggler/delve-engine/internal/dice"
	"github.com/KirkDiggler/delve-engine/internal/entities"
)

// TreasureSlot is one line of a treasure table: a percent chance and
// the amount formula rolled when the chance comes up.
type TreasureSlot struct {
	Chance  int
	Formula dice.Formula
}

// TreasureTable is the full table for one letter-coded treasure type.
// Coin slots roll coin counts; Gems, Jewelry and Magic roll item counts.
type TreasureTable struct {
	Type     entities.TreasureType
	Copper   TreasureSlot
	Silver   TreasureSlot
	Electrum TreasureSlot
	Gold     TreasureSlot
	Platinum TreasureSlot
	Gems     TreasureSlot
	Jewelry  TreasureSlot
	Magic    TreasureSlot
}

var treasureTables = map[entities.TreasureType]TreasureTable{
	entities.TreasureTypeA: {
		Type:     entities.TreasureTypeA,
		Copper:   TreasureSlot{Chance: 25, Formula: dice.MustFormula("1d6*1000")},
		Silver:   TreasureSlot{Chance: 30, Formula: dice.MustFormula("1d6*1000")},
		Electrum: TreasureSlot{Chance: 20, Formula: dice.MustFormula("1d4*1000")},
		Gold:     TreasureSlot{Chance: 35, Formula: dice.MustFormula("2d6*1000")},
		Platinum: TreasureSlot{Chance: 25, Formula: dice.MustFormula("1d2*100")},
		Gems:     TreasureSlot{Chance: 50, Formula: dice.MustFormula("6d6")},
		Jewelry:  TreasureSlot{Chance: 50, Formula: dice.MustFormula("6d6")},
		Magic:    TreasureSlot{Chance: 30, Formula: dice.MustFormula("3")},
	},
	entities.TreasureTypeB: {
		Type:     entities.TreasureTypeB,
		Copper:   TreasureSlot{Chance: 50, Formula: dice.MustFormula("1d8*1000")},
		Silver:   TreasureSlot{Chance: 25, Formula: dice.MustFormula("1d6*1000")},
		Electrum: TreasureSlot{Chance: 25, Formula: dice.MustFormula("1d4*1000")},
		Gold:     TreasureSlot{Chance: 25, Formula: dice.MustFormula("1d3*1000")},
		Gems:     TreasureSlot{Chance: 25, Formula: dice.MustFormula("1d6")},
		Jewelry:  TreasureSlot{Chance: 25, Formula: dice.MustFormula("1d6")},
		Magic:    TreasureSlot{Chance: 10, Formula: dice.MustFormula("1")},
	},
	entities.TreasureTypeC: {
		Type:     entities.TreasureTypeC,
		Copper:   TreasureSlot{Chance: 20, Formula: dice.MustFormula("1d12*1000")},
		Silver:   TreasureSlot{Chance: 30, Formula: dice.MustFormula("1d4*1000")},
		Electrum: TreasureSlot{Chance: 10, Formula: dice.MustFormula("1d4*1000")},
		Gems:     TreasureSlot{Chance: 25, Formula: dice.MustFormula("1d4")},
		Jewelry:  TreasureSlot{Chance: 25, Formula: dice.MustFormula("1d4")},
		Magic:    TreasureSlot{Chance: 10, Formula: dice.MustFormula("2")},
	},
	entities.TreasureTypeD: {
		Type:    entities.TreasureTypeD,
		Copper:  TreasureSlot{Chance: 10, Formula: dice.MustFormula("1d8*1000")},
		Silver:  TreasureSlot{Chance: 15, Formula: dice.MustFormula("1d12*1000")},
		Gold:    TreasureSlot{Chance: 60, Formula: dice.MustFormula("1d6*1000")},
		Gems:    TreasureSlot{Chance: 30, Formula: dice.MustFormula("1d8")},
		Jewelry: TreasureSlot{Chance: 30, Formula: dice.MustFormula("1d8")},
		Magic:   TreasureSlot{Chance: 15, Formula: dice.MustFormula("2")},
	},
	entities.TreasureTypeE: {
		Type:     entities.TreasureTypeE,
		Copper:   TreasureSlot{Chance: 5, Formula: dice.MustFormula("1d10*1000")},
		Silver:   TreasureSlot{Chance: 30, Formula: dice.MustFormula("1d12*1000")},
		Electrum: TreasureSlot{Chance: 25, Formula: dice.MustFormula("1d4*1000")},
		Gold:     TreasureSlot{Chance: 25, Formula: dice.MustFormula("1d8*1000")},
		Gems:     TreasureSlot{Chance: 10, Formula: dice.MustFormula("1d10")},
		Jewelry:  TreasureSlot{Chance: 10, Formula: dice.MustFormula("1d10")},
		Magic:    TreasureSlot{Chance: 25, Formula: dice.MustFormula("3")},
	},
	entities.TreasureTypeF: {
		Type:     entities.TreasureTypeF,
		Silver:   TreasureSlot{Chance: 10, Formula: dice.MustFormula("2d10*1000")},
		Electrum: TreasureSlot{Chance: 20, Formula: dice.MustFormula("1d8*1000")},
		Gold:     TreasureSlot{Chance: 45, Formula: dice.MustFormula("1d12*1000")},
		Platinum: TreasureSlot{Chance: 30, Formula: dice.MustFormula("1d3*100")},
		Gems:     TreasureSlot{Chance: 20, Formula: dice.MustFormula("2d12")},
		Jewelry:  TreasureSlot{Chance: 10, Formula: dice.MustFormula("1d12")},
		Magic:    TreasureSlot{Chance: 30, Formula: dice.MustFormula("3")},
	},
	entities.TreasureTypeG: {
		Type:     entities.TreasureTypeG,
		Gold:     TreasureSlot{Chance: 50, Formula: dice.MustFormula("1d4*5000")},
		Platinum: TreasureSlot{Chance: 50, Formula: dice.MustFormula("1d6*100")},
		Gems:     TreasureSlot{Chance: 25, Formula: dice.MustFormula("3d6")},
		Jewelry:  TreasureSlot{Chance: 25, Formula: dice.MustFormula("1d10")},
		Magic:    TreasureSlot{Chance: 35, Formula: dice.MustFormula("4")},
	},
	entities.TreasureTypeH: {
		Type:     entities.TreasureTypeH,
		Copper:   TreasureSlot{Chance: 25, Formula: dice.MustFormula("3d8*1000")},
		Silver:   TreasureSlot{Chance: 40, Formula: dice.MustFormula("1d100*100")},
		Electrum: TreasureSlot{Chance: 40, Formula: dice.MustFormula("1d4*1000")},
		Gold:     TreasureSlot{Chance: 55, Formula: dice.MustFormula("2d8*1000")},
		Platinum: TreasureSlot{Chance: 25, Formula: dice.MustFormula("1d4*100")},
		Gems:     TreasureSlot{Chance: 50, Formula: dice.MustFormula("2d10")},
		Jewelry:  TreasureSlot{Chance: 50, Formula: dice.MustFormula("1d10")},
		Magic:    TreasureSlot{Chance: 15, Formula: dice.MustFormula("4")},
	},
	entities.TreasureTypeJ: {
		Type:   entities.TreasureTypeJ,
		Copper: TreasureSlot{Chance: 25, Formula: dice.MustFormula("1d4")},
		Silver: TreasureSlot{Chance: 10, Formula: dice.MustFormula("1d3")},
	},
	entities.TreasureTypeL: {
		Type: entities.TreasureTypeL,
		Gems: TreasureSlot{Chance: 50, Formula: dice.MustFormula("1d4")},
	},
}

// Treasure looks up the table for a treasure type
func Treasure(t entities.TreasureType) (TreasureTable, bool) {
	table, ok := treasureTables[t]
	return table, ok
}

// PocketChange is rolled when looting a group with no treasure type
var PocketChange = TreasureTable{
	Copper: TreasureSlot{Chance: 50, Formula: dice.MustFormula("2d6")},
	Silver: TreasureSlot{Chance: 25, Formula: dice.MustFormula("1d6")},
}

// GemValueFor maps a d% roll to a single gem's value in gold
func GemValueFor(roll int) int {
	switch {
	case roll <= 20:
		return 10
	case roll <= 45:
		return 50
	case roll <= 75:
		return 100
	case roll <= 95:
		return 500
	default:
		return 1000
	}
}

// JewelryValue is the worth formula for one piece of jewelry, in gold
var JewelryValue = dice.MustFormula("3d6*100")

// MagicItemNames is the opaque list magic slots draw from
var MagicItemNames = []string{
	"potion of healing",
	"potion of invisibility",
	"potion of levitation",
	"potion of giant strength",
	"scroll of protection from undead",
	"scroll of ward against lycanthropes",
	"sword +1",
	"dagger +1",
	"war hammer +1",
	"shield +1",
	"chain mail +1",
	"ring of protection +1",
	"ring of water walking",
	"wand of enemy detection",
	"rod of cancellation",
	"bag of holding",
}
