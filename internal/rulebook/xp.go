package rulebook

import "strings"

// xpByHitDice is the base award per monster, indexed by whole hit dice.
// Values past the end clamp to the last entry.
var xpByHitDice = []int{
	0,     // 0 HD
	10,    // 1
	20,    // 2
	35,    // 3
	75,    // 4
	175,   // 5
	275,   // 6
	450,   // 7
	650,   // 8
	900,   // 9
	1000,  // 10
	1100,  // 11
	1250,  // 12
	1350,  // 13
	1500,  // 14
	1800,  // 15
	2500,  // 16
	4000,  // 17
	6000,  // 18
	9000,  // 19
	15000, // 20
}

// xpSubOneHitDie is the award for monsters under a full hit die
const xpSubOneHitDie = 5

// specialKeywords flag abilities worth a flat doubling when the special
// tag carries no asterisk markers
var specialKeywords = []string{"magic", "spell", "breath"}

// XPForHitDice returns the base award for one monster of the given hit
// dice, before special-ability multipliers
func XPForHitDice(hd float64) int {
	if hd <= 0 {
		return 0
	}
	if hd < 1 {
		return xpSubOneHitDie
	}

	idx := int(hd)
	if idx >= len(xpByHitDice) {
		idx = len(xpByHitDice) - 1
	}
	return xpByHitDice[idx]
}

// XPMultiplier derives the special-ability multiplier from a special
// tag: x2 per "*" marker, or a flat x2 for known keywords without one.
func XPMultiplier(special string) int {
	if special == "" {
		return 1
	}

	if stars := strings.Count(special, "*"); stars > 0 {
		mult := 1
		for i := 0; i < stars; i++ {
			mult *= 2
		}
		return mult
	}

	lowered := strings.ToLower(special)
	for _, kw := range specialKeywords {
		if strings.Contains(lowered, kw) {
			return 2
		}
	}
	return 1
}
