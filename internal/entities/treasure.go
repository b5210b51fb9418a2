package entities

import (
	"fmt"
	"strings"
)

// TreasureType is the letter-coded treasure class a monster guards
type TreasureType string

const (
	TreasureNone  TreasureType = ""
	TreasureTypeA TreasureType = "A"
	TreasureTypeB TreasureType = "B"
	TreasureTypeC TreasureType = "C"
	TreasureTypeD TreasureType = "D"
	TreasureTypeE TreasureType = "E"
	TreasureTypeF TreasureType = "F"
	TreasureTypeG TreasureType = "G"
	TreasureTypeH TreasureType = "H"
	TreasureTypeJ TreasureType = "J"
	TreasureTypeL TreasureType = "L"
)

// TreasureResult is generated treasure. Gem and jewelry entries are
// individual values in gold pieces; magic item names are opaque.
type TreasureResult struct {
	Copper     int      `json:"copper,omitempty"`
	Silver     int      `json:"silver,omitempty"`
	Electrum   int      `json:"electrum,omitempty"`
	Gold       int      `json:"gold,omitempty"`
	Platinum   int      `json:"platinum,omitempty"`
	Gems       []int    `json:"gems,omitempty"`
	Jewelry    []int    `json:"jewelry,omitempty"`
	MagicItems []string `json:"magic_items,omitempty"`
}

// TotalGold converts everything to whole gold pieces, flooring the
// fractional coin remainder. Magic items carry no coin value.
func (t *TreasureResult) TotalGold() int {
	coins := t.Copper + t.Silver*10 + t.Electrum*50 + t.Gold*100 + t.Platinum*500
	total := coins / 100
	for _, v := range t.Gems {
		total += v
	}
	for _, v := range t.Jewelry {
		total += v
	}
	return total
}

// Empty checks if nothing at all was generated
func (t *TreasureResult) Empty() bool {
	return t.Copper == 0 && t.Silver == 0 && t.Electrum == 0 &&
		t.Gold == 0 && t.Platinum == 0 &&
		len(t.Gems) == 0 && len(t.Jewelry) == 0 && len(t.MagicItems) == 0
}

// String itemizes the haul for log lines
func (t *TreasureResult) String() string {
	if t.Empty() {
		return "nothing of value"
	}

	var parts []string
	appendCoin := func(n int, name string) {
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, name))
		}
	}
	appendCoin(t.Copper, "cp")
	appendCoin(t.Silver, "sp")
	appendCoin(t.Electrum, "ep")
	appendCoin(t.Gold, "gp")
	appendCoin(t.Platinum, "pp")
	if n := len(t.Gems); n > 0 {
		parts = append(parts, fmt.Sprintf("%d gems", n))
	}
	if n := len(t.Jewelry); n > 0 {
		parts = append(parts, fmt.Sprintf("%d jewelry pieces", n))
	}
	parts = append(parts, t.MagicItems...)

	return strings.Join(parts, ", ")
}
