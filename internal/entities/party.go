package entities

// AbilityScores are the six classic scores
type AbilityScores struct {
	Strength     int `json:"strength"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Charisma     int `json:"charisma"`
}

// AbilityModifier maps a score to its adjustment (3 is -3, 18 is +3)
func AbilityModifier(score int) int {
	switch {
	case score <= 3:
		return -3
	case score <= 5:
		return -2
	case score <= 8:
		return -1
	case score <= 12:
		return 0
	case score <= 15:
		return 1
	case score <= 17:
		return 2
	default:
		return 3
	}
}

// Member is one adventurer as the roster reports them. The engine never
// mutates a member; damage and expenditure go back through the roster.
type Member struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Level           int           `json:"level"`
	MaxHP           int           `json:"max_hp"`
	CurrentHP       int           `json:"current_hp"`
	ArmorClass      int           `json:"armor_class"`
	AttackThreshold int           `json:"attack_threshold"` // d20 roll needed to hit armor class 0
	DamageDie       int           `json:"damage_die"`       // weapon die sides
	Abilities       AbilityScores `json:"abilities"`
	TrapSkill       int           `json:"trap_skill"` // percent
	LockSkill       int           `json:"lock_skill"` // percent
	SpellSlots      int           `json:"spell_slots"`
}

// Alive checks if the member is still on their feet
func (m *Member) Alive() bool {
	return m.CurrentHP > 0
}

// WeaponDie returns the member's damage die, defaulting to a d6
func (m *Member) WeaponDie() int {
	if m.DamageDie < 2 {
		return 6
	}
	return m.DamageDie
}

// MemberDamage reports damage dealt to one member, for roster writeback
type MemberDamage struct {
	MemberID string `json:"member_id"`
	Amount   int    `json:"amount"`
}

// PartySnapshot is the roster's view of the party at one moment
type PartySnapshot struct {
	Members []*Member `json:"members"`
}

// Living returns the members still standing
func (p *PartySnapshot) Living() []*Member {
	var out []*Member
	for _, m := range p.Members {
		if m.Alive() {
			out = append(out, m)
		}
	}
	return out
}

// LivingIDs returns the IDs of members still standing
func (p *PartySnapshot) LivingIDs() []string {
	var out []string
	for _, m := range p.Living() {
		out = append(out, m.ID)
	}
	return out
}

// Wiped checks if nobody is left standing
func (p *PartySnapshot) Wiped() bool {
	return len(p.Living()) == 0
}

// BestStrengthModifier is the best strength adjustment among the living
func (p *PartySnapshot) BestStrengthModifier() int {
	best := -3
	for _, m := range p.Living() {
		if mod := AbilityModifier(m.Abilities.Strength); mod > best {
			best = mod
		}
	}
	return best
}

// BestTrapMember is the living member with the highest trap-removal skill
func (p *PartySnapshot) BestTrapMember() *Member {
	var best *Member
	for _, m := range p.Living() {
		if best == nil || m.TrapSkill > best.TrapSkill {
			best = m
		}
	}
	return best
}

// BestLockMember is the living member with the highest lock-picking skill
func (p *PartySnapshot) BestLockMember() *Member {
	var best *Member
	for _, m := range p.Living() {
		if best == nil || m.LockSkill > best.LockSkill {
			best = m
		}
	}
	return best
}

// Find returns the member with the given ID, or nil
func (p *PartySnapshot) Find(id string) *Member {
	for _, m := range p.Members {
		if m.ID == id {
			return m
		}
	}
	return nil
}
