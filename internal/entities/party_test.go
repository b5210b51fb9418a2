package entities_test

import (
	"testing"

	"github.com/KirkDiggler/delve-engine/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbilityModifier(t *testing.T) {
	tests := []struct {
		score    int
		expected int
	}{
		{score: 3, expected: -3},
		{score: 5, expected: -2},
		{score: 8, expected: -1},
		{score: 9, expected: 0},
		{score: 12, expected: 0},
		{score: 13, expected: 1},
		{score: 16, expected: 2},
		{score: 18, expected: 3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, entities.AbilityModifier(tt.score),
			"score %d", tt.score)
	}
}

func testParty() *entities.PartySnapshot {
	return &entities.PartySnapshot{
		Members: []*entities.Member{
			{
				ID: "m1", Name: "Aldwin", CurrentHP: 8, MaxHP: 8,
				Abilities: entities.AbilityScores{Strength: 16, Dexterity: 11},
				TrapSkill: 10, LockSkill: 5,
			},
			{
				ID: "m2", Name: "Sariel", CurrentHP: 0, MaxHP: 6,
				Abilities: entities.AbilityScores{Strength: 18, Dexterity: 14},
				TrapSkill: 20, LockSkill: 15,
			},
			{
				ID: "m3", Name: "Piper", CurrentHP: 4, MaxHP: 4,
				Abilities: entities.AbilityScores{Strength: 9, Dexterity: 17},
				TrapSkill: 35, LockSkill: 40,
			},
		},
	}
}

func TestPartySnapshot_Living(t *testing.T) {
	party := testParty()

	living := party.Living()
	require.Len(t, living, 2)
	assert.Equal(t, "m1", living[0].ID)
	assert.Equal(t, "m3", living[1].ID)
	assert.Equal(t, []string{"m1", "m3"}, party.LivingIDs())
	assert.False(t, party.Wiped())
}

func TestPartySnapshot_Wiped(t *testing.T) {
	party := testParty()
	for _, m := range party.Members {
		m.CurrentHP = 0
	}
	assert.True(t, party.Wiped())
}

func TestPartySnapshot_BestStrengthModifier(t *testing.T) {
	party := testParty()
	// Sariel has 18 strength but is down; Aldwin's 16 counts.
	assert.Equal(t, 2, party.BestStrengthModifier())
}

func TestPartySnapshot_BestSkillMembers(t *testing.T) {
	party := testParty()

	trap := party.BestTrapMember()
	require.NotNil(t, trap)
	assert.Equal(t, "m3", trap.ID)

	lock := party.BestLockMember()
	require.NotNil(t, lock)
	assert.Equal(t, "m3", lock.ID)
}

func TestMember_WeaponDie(t *testing.T) {
	m := &entities.Member{}
	assert.Equal(t, 6, m.WeaponDie(), "defaults to d6")

	m.DamageDie = 8
	assert.Equal(t, 8, m.WeaponDie())
}

func TestPartySnapshot_Find(t *testing.T) {
	party := testParty()
	assert.Equal(t, "Sariel", party.Find("m2").Name)
	assert.Nil(t, party.Find("nobody"))
}
