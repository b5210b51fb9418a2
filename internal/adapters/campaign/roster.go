package campaign

import (
	"context"
	"sync"

	"github.com/KirkDiggler/delve-engine/internal/entities"
	dlverr "github.com/KirkDiggler/delve-engine/internal/errors"
)

// Encumbrance bands in carried gold. Up to the light load the party
// moves freely; past the max load it cannot move at all.
const (
	LightLoadGold = 400
	HeavyLoadGold = 800
	MaxLoadGold   = 1600
)

// Roster owns the party between and during delves. The engine only ever
// sees snapshots; damage, spell slots, and experience come back through
// the writeback methods.
type Roster struct {
	mu       sync.Mutex
	members  []*entities.Member
	xp       map[string]int
	maxSlots map[string]int
}

// NewRoster creates a roster over the given members
func NewRoster(members []*entities.Member) *Roster {
	maxSlots := make(map[string]int, len(members))
	for _, m := range members {
		maxSlots[m.ID] = m.SpellSlots
	}
	return &Roster{
		members:  members,
		xp:       make(map[string]int),
		maxSlots: maxSlots,
	}
}

// DefaultParty is the classic four: fighter, cleric, thief, magic-user
func DefaultParty() []*entities.Member {
	return []*entities.Member{
		{
			ID: "torvald", Name: "Torvald", Level: 2,
			MaxHP: 12, CurrentHP: 12, ArmorClass: 4,
			AttackThreshold: 19, DamageDie: 8,
			Abilities: entities.AbilityScores{
				Strength: 16, Intelligence: 9, Wisdom: 10,
				Dexterity: 9, Constitution: 13, Charisma: 11,
			},
		},
		{
			ID: "yseult", Name: "Yseult", Level: 2,
			MaxHP: 9, CurrentHP: 9, ArmorClass: 5,
			AttackThreshold: 19, DamageDie: 6,
			Abilities: entities.AbilityScores{
				Strength: 12, Intelligence: 10, Wisdom: 16,
				Dexterity: 10, Constitution: 12, Charisma: 13,
			},
		},
		{
			ID: "pip", Name: "Pip", Level: 2,
			MaxHP: 7, CurrentHP: 7, ArmorClass: 7,
			AttackThreshold: 19, DamageDie: 6,
			TrapSkill: 35, LockSkill: 40,
			Abilities: entities.AbilityScores{
				Strength: 9, Intelligence: 12, Wisdom: 9,
				Dexterity: 16, Constitution: 11, Charisma: 12,
			},
		},
		{
			ID: "wren", Name: "Wren", Level: 2,
			MaxHP: 5, CurrentHP: 5, ArmorClass: 9,
			AttackThreshold: 19, DamageDie: 4,
			SpellSlots: 2,
			Abilities: entities.AbilityScores{
				Strength: 8, Intelligence: 16, Wisdom: 12,
				Dexterity: 12, Constitution: 10, Charisma: 10,
			},
		},
	}
}

// Snapshot returns the party as it stands right now. The copy is deep;
// the engine can scribble on it freely.
func (r *Roster) Snapshot(ctx context.Context) (*entities.PartySnapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*entities.Member, len(r.members))
	for i, m := range r.members {
		clone := *m
		out[i] = &clone
	}
	return &entities.PartySnapshot{Members: out}, nil
}

// ApplyDamage records damage against one member, flooring at zero
func (r *Roster) ApplyDamage(ctx context.Context, memberID string, damage int) error {
	if damage < 0 {
		return dlverr.InvalidArgumentf("damage cannot be negative, got %d", damage)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	member := r.find(memberID)
	if member == nil {
		return dlverr.NotFoundf("no member %q on the roster", memberID)
	}

	member.CurrentHP -= damage
	if member.CurrentHP < 0 {
		member.CurrentHP = 0
	}
	return nil
}

// SpendSpellSlot burns one of a member's spell slots
func (r *Roster) SpendSpellSlot(ctx context.Context, memberID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	member := r.find(memberID)
	if member == nil {
		return dlverr.NotFoundf("no member %q on the roster", memberID)
	}
	if member.SpellSlots <= 0 {
		return dlverr.InvalidArgumentf("%s has no spell slots left", member.Name)
	}

	member.SpellSlots--
	return nil
}

// MovementMultiplier maps carried gold onto the encumbrance bands
func (r *Roster) MovementMultiplier(ctx context.Context, carriedGold int) (float64, error) {
	switch {
	case carriedGold <= LightLoadGold:
		return 1.0, nil
	case carriedGold <= HeavyLoadGold:
		return 2.0 / 3.0, nil
	case carriedGold <= MaxLoadGold:
		return 0.5, nil
	default:
		return 0, nil
	}
}

// Award credits experience to each named member
func (r *Roster) Award(ctx context.Context, perMember int, memberIDs []string) error {
	if perMember <= 0 {
		return dlverr.InvalidArgumentf("award must be positive, got %d", perMember)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range memberIDs {
		if r.find(id) == nil {
			return dlverr.NotFoundf("no member %q on the roster", id)
		}
		r.xp[id] += perMember
	}
	return nil
}

// Experience reports a member's accumulated experience
func (r *Roster) Experience(memberID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.xp[memberID]
}

// RestParty restores everyone to full hit points and spell slots, for
// the night at the inn between delves
func (r *Roster) RestParty(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range r.members {
		m.CurrentHP = m.MaxHP
		m.SpellSlots = r.maxSlots[m.ID]
	}
	return nil
}

// find must be called with the lock held
func (r *Roster) find(memberID string) *entities.Member {
	for _, m := range r.members {
		if m.ID == memberID {
			return m
		}
	}
	return nil
}
