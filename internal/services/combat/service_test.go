package combat_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/delve-engine/internal/dice"
	mockdice "github.com/KirkDiggler/delve-engine/internal/dice/mock"
	"github.com/KirkDiggler/delve-engine/internal/entities"
	dlverr "github.com/KirkDiggler/delve-engine/internal/errors"
	"github.com/KirkDiggler/delve-engine/internal/services/combat"
)

func newTestService() (combat.Service, *mockdice.ManualMockRoller) {
	roller := mockdice.NewManualMockRoller()
	svc := combat.NewService(&combat.ServiceConfig{Roller: roller})
	return svc, roller
}

// goblins builds a live goblin group: HD 1, AC 6, 1d6 claws, morale 7.
func goblins(qty, pool int) *entities.EncounterState {
	return &entities.EncounterState{
		MonsterID:     entities.MonsterGoblin,
		Name:          "Goblin",
		Quantity:      qty,
		HitDice:       1,
		ArmorClass:    6,
		Damage:        dice.MustFormula("1d6"),
		MoraleScore:   7,
		MaxPoolHP:     pool,
		PoolHP:        pool,
		Disposition:   entities.DispositionAggressive,
		DistanceYards: 30,
		TreasureType:  entities.TreasureTypeC,
	}
}

func combatSession(enc *entities.EncounterState) *entities.DungeonSession {
	return &entities.DungeonSession{
		ID:             "delve-1",
		State:          entities.SessionStateEncounter,
		Depth:          1,
		LightRemaining: entities.TurnsPerLightUnit,
		Encounter:      enc,
	}
}

func testParty() *entities.PartySnapshot {
	return &entities.PartySnapshot{
		Members: []*entities.Member{
			{ID: "brynn", Name: "Brynn", MaxHP: 8, CurrentHP: 8, ArmorClass: 7,
				AttackThreshold: 19, DamageDie: 8},
			{ID: "marek", Name: "Marek", MaxHP: 6, CurrentHP: 6, ArmorClass: 5,
				AttackThreshold: 19, DamageDie: 6, SpellSlots: 1},
		},
	}
}

func TestRound_PartyFirstVictory(t *testing.T) {
	svc, roller := newTestService()
	ses := combatSession(goblins(1, 5))

	// Party wins initiative 4-2; Brynn hits (15 vs 19 - AC 6) for 5 and
	// empties the pool, so Marek never swings and neither do the goblins.
	roller.SetRolls([]int{4, 2, 15, 5})

	result, err := svc.Round(context.Background(), ses, testParty(), entities.ActionFight)
	require.NoError(t, err)

	assert.True(t, result.Victory)
	assert.Equal(t, 5, result.PoolDamage)
	assert.Empty(t, result.MemberDamage)
	assert.Equal(t, 1, result.Round)
	assert.Equal(t, entities.SessionStateLoot, ses.State)
	require.NotNil(t, ses.Encounter, "the fallen group waits to be looted")
	assert.True(t, ses.Encounter.Defeated())
	assert.Equal(t, 0, roller.Remaining())
}

func TestRound_OneBigHitFiresEveryTrigger(t *testing.T) {
	svc, roller := newTestService()
	ses := combatSession(goblins(2, 9))

	// Brynn's 8-point hit drops the pool to 1: first blood, a monster's
	// worth in one round, and both pool thresholds all trigger at once.
	// The first-blood check holds (5 vs adjusted 7-2=5), the first-death
	// check breaks (6 > 5), and the remaining two never roll.
	roller.SetRolls([]int{5, 3, 15, 8, 2, 3, 2, 4, 2})

	result, err := svc.Round(context.Background(), ses, testParty(), entities.ActionFight)
	require.NoError(t, err)

	assert.True(t, result.MonstersFled)
	assert.False(t, result.Victory)
	assert.Empty(t, result.MemberDamage, "they broke before their phase")
	assert.Nil(t, ses.Encounter)
	assert.Equal(t, entities.SessionStateIdle, ses.State)
	assert.Equal(t, 0, roller.Remaining())
}

func TestRound_MoraleTriggersFireOnlyOnce(t *testing.T) {
	svc, roller := newTestService()
	enc := goblins(2, 9)
	ses := combatSession(enc)
	party := testParty()

	// Round one: the big hit burns all four triggers but every check
	// holds, then the lone standing goblin misses Brynn.
	roller.SetRolls([]int{5, 3, 15, 8, 2, 2, 2, 1, 2, 2, 1, 1, 1, 1, 10})

	result, err := svc.Round(context.Background(), ses, party, entities.ActionFight)
	require.NoError(t, err)
	assert.False(t, result.MonstersFled)
	for _, trigger := range entities.MoraleTriggerOrder {
		assert.True(t, enc.FiredTrigger(trigger), "trigger %s should be spent", trigger)
	}
	assert.Equal(t, 0, roller.Remaining())

	// Round two: both members miss, so no new damage and no unfired
	// triggers; not a single 2d6 is consumed before the goblin's hit.
	roller.SetRolls([]int{4, 2, 3, 4, 2, 18, 3})

	result, err = svc.Round(context.Background(), ses, party, entities.ActionFight)
	require.NoError(t, err)
	assert.False(t, result.MonstersFled)
	require.Len(t, result.MemberDamage, 1)
	assert.Equal(t, "marek", result.MemberDamage[0].MemberID)
	assert.Equal(t, 3, result.MemberDamage[0].Amount)
	assert.Equal(t, 2, result.Round)
	assert.Equal(t, 0, roller.Remaining())
}

func TestRound_MonstersFirstDownedMembersSkip(t *testing.T) {
	svc, roller := newTestService()
	ses := combatSession(goblins(4, 18))

	// Monsters win initiative and two of four swings land on Brynn,
	// dropping him mid-phase; the last two goblins can only go after
	// Marek. Brynn, down, never attacks back. Marek's 6-point hit is a
	// monster's worth, and the first-blood check breaks them (11 > 7).
	roller.SetRolls([]int{2, 5, 1, 19, 4, 1, 14, 5, 1, 3, 1, 20, 2, 17, 6, 6, 5})

	result, err := svc.Round(context.Background(), ses, testParty(), entities.ActionFight)
	require.NoError(t, err)

	require.Len(t, result.MemberDamage, 3)
	assert.Equal(t, entities.MemberDamage{MemberID: "brynn", Amount: 4}, result.MemberDamage[0])
	assert.Equal(t, entities.MemberDamage{MemberID: "brynn", Amount: 5}, result.MemberDamage[1])
	assert.Equal(t, entities.MemberDamage{MemberID: "marek", Amount: 2}, result.MemberDamage[2])
	assert.Equal(t, 6, result.PoolDamage)
	assert.True(t, result.MonstersFled)
	assert.Equal(t, 0, roller.Remaining())
}

func TestRound_SimultaneousMutualRuin(t *testing.T) {
	svc, roller := newTestService()
	ses := combatSession(goblins(1, 5))
	solo := &entities.PartySnapshot{Members: []*entities.Member{
		{ID: "brynn", Name: "Brynn", MaxHP: 8, CurrentHP: 4, ArmorClass: 7,
			AttackThreshold: 19, DamageDie: 8},
	}}

	// Tied initiative: Brynn empties the pool, but the goblin was still
	// up when the round began and guts him right back. Nobody is left to
	// claim a victory.
	roller.SetRolls([]int{3, 3, 18, 5, 1, 16, 4})

	result, err := svc.Round(context.Background(), ses, solo, entities.ActionFight)
	require.NoError(t, err)

	assert.True(t, result.PartyDown)
	assert.False(t, result.Victory)
	assert.Nil(t, ses.Encounter)
	assert.Equal(t, entities.SessionStateIdle, ses.State)
	assert.Equal(t, 0, roller.Remaining())
}

func TestRound_FleeEscapesWhenPursuitBreaks(t *testing.T) {
	svc, roller := newTestService()
	ses := combatSession(goblins(4, 18))

	// All four parting swings miss, then the pursuit morale check rolls
	// 9 over their 7: they let the party go.
	roller.SetRolls([]int{1, 5, 2, 4, 1, 3, 2, 2, 5, 4})

	result, err := svc.Round(context.Background(), ses, testParty(), entities.ActionFlee)
	require.NoError(t, err)

	assert.True(t, result.PartyEscaped)
	assert.Empty(t, result.MemberDamage)
	assert.Equal(t, 0, result.PoolDamage, "nobody swings on the way out")
	assert.Nil(t, ses.Encounter)
	assert.Equal(t, entities.SessionStateIdle, ses.State)
}

func TestRound_FleeFailsWhenTheyHold(t *testing.T) {
	svc, roller := newTestService()
	ses := combatSession(goblins(4, 18))

	// Pursuit check holds (5 <= 7): the chase is on and the encounter
	// carries into another round.
	roller.SetRolls([]int{1, 5, 2, 4, 1, 3, 2, 2, 2, 3})

	result, err := svc.Round(context.Background(), ses, testParty(), entities.ActionFlee)
	require.NoError(t, err)

	assert.False(t, result.PartyEscaped)
	require.NotNil(t, ses.Encounter)
	assert.Equal(t, entities.SessionStateEncounter, ses.State)
	assert.Equal(t, 1, ses.Encounter.Round)
}

func TestRound_FleeFromHighMoraleNeverRolls(t *testing.T) {
	svc, roller := newTestService()
	enc := goblins(2, 9)
	enc.MoraleScore = 12
	ses := combatSession(enc)

	// Two swings miss; a morale-12 group pursues without a roll.
	roller.SetRolls([]int{1, 4, 2, 3})

	result, err := svc.Round(context.Background(), ses, testParty(), entities.ActionFlee)
	require.NoError(t, err)

	assert.False(t, result.PartyEscaped)
	assert.Equal(t, entities.SessionStateEncounter, ses.State)
	assert.Equal(t, 0, roller.Remaining(), "morale 12 consumes no dice")
}

func TestRound_ParleyPeacefulClears(t *testing.T) {
	svc, roller := newTestService()
	ses := combatSession(goblins(4, 18))

	// 2d6 lands on 10: neutral enough to stand down.
	roller.SetRolls([]int{5, 5})

	result, err := svc.Round(context.Background(), ses, testParty(), entities.ActionParley)
	require.NoError(t, err)

	assert.True(t, result.Parleyed)
	assert.Nil(t, ses.Encounter)
	assert.Equal(t, entities.SessionStateIdle, ses.State)
}

func TestRound_ParleyRebuffedCostsASwing(t *testing.T) {
	svc, roller := newTestService()
	enc := goblins(4, 18)
	ses := combatSession(enc)

	// Snake eyes: hostile. All four free swings miss, but the overture
	// is spent and the fight goes on.
	roller.SetRolls([]int{1, 1, 1, 5, 2, 4, 1, 3, 2, 2})

	result, err := svc.Round(context.Background(), ses, testParty(), entities.ActionParley)
	require.NoError(t, err)

	assert.False(t, result.Parleyed)
	assert.Equal(t, entities.DispositionHostile, enc.Disposition)
	assert.Equal(t, 1, enc.ParleyAttempts)
	assert.Equal(t, entities.SessionStateEncounter, ses.State)
}

func TestRound_ParleyBonusAccrues(t *testing.T) {
	svc, roller := newTestService()
	enc := goblins(4, 18)
	enc.ParleyAttempts = 2
	ses := combatSession(enc)

	// Two overtures already made: 7 on the dice plus 2 reaches neutral.
	roller.SetRolls([]int{4, 3})

	result, err := svc.Round(context.Background(), ses, testParty(), entities.ActionParley)
	require.NoError(t, err)
	assert.True(t, result.Parleyed)
}

func TestRound_SpellBoltsAutoHit(t *testing.T) {
	svc, roller := newTestService()
	ses := combatSession(goblins(4, 18))

	// Only Marek holds a slot; his 1d6+1 bolt lands for 5 without an
	// attack roll. Both morale checks hold, then three goblins miss.
	roller.SetRolls([]int{6, 1, 4, 2, 1, 1, 1, 1, 2, 2, 3, 1, 4})

	result, err := svc.Round(context.Background(), ses, testParty(), entities.ActionSpell)
	require.NoError(t, err)

	assert.Equal(t, []string{"marek"}, result.SpellCasters)
	assert.Equal(t, 5, result.PoolDamage)
	assert.Equal(t, 13, ses.Encounter.PoolHP)
	assert.Equal(t, 0, roller.Remaining())
}

func TestSurpriseRound_Evade(t *testing.T) {
	svc, roller := newTestService()
	ses := combatSession(goblins(4, 18))
	ses.State = entities.SessionStateSurprise

	result, err := svc.SurpriseRound(context.Background(), ses, testParty(), entities.SurpriseEvade)
	require.NoError(t, err)

	assert.True(t, result.PartyEscaped)
	assert.Nil(t, ses.Encounter)
	assert.Equal(t, entities.SessionStateIdle, ses.State)
	assert.Equal(t, 0, roller.Remaining())
}

func TestSurpriseRound_AmbushToVictory(t *testing.T) {
	svc, roller := newTestService()
	ses := combatSession(goblins(2, 9))
	ses.State = entities.SessionStateSurprise

	// Free round: Brynn hits for 8, Marek finishes the last point. No
	// answer comes back.
	roller.SetRolls([]int{15, 8, 14, 2})

	result, err := svc.SurpriseRound(context.Background(), ses, testParty(), entities.SurpriseAmbush)
	require.NoError(t, err)

	assert.True(t, result.Victory)
	assert.Empty(t, result.MemberDamage)
	assert.Equal(t, entities.SessionStateLoot, ses.State)
	require.NotNil(t, ses.Encounter)
}

func TestSurpriseRound_AmbushSurvivorsStand(t *testing.T) {
	svc, roller := newTestService()
	ses := combatSession(goblins(4, 18))
	ses.State = entities.SessionStateSurprise

	roller.SetRolls([]int{15, 5, 2})

	result, err := svc.SurpriseRound(context.Background(), ses, testParty(), entities.SurpriseAmbush)
	require.NoError(t, err)

	assert.False(t, result.Victory)
	assert.Equal(t, entities.SessionStateEncounter, ses.State)
	assert.Equal(t, 13, ses.Encounter.PoolHP)
}

func TestSurpriseRound_Reveal(t *testing.T) {
	svc, roller := newTestService()
	ses := combatSession(goblins(4, 18))
	ses.State = entities.SessionStateSurprise

	// Revealing at +1: 10+1 is neutral, and everyone lowers their
	// weapons.
	roller.SetRolls([]int{5, 5})

	result, err := svc.SurpriseRound(context.Background(), ses, testParty(), entities.SurpriseReveal)
	require.NoError(t, err)
	assert.True(t, result.Parleyed)
	assert.Equal(t, entities.SessionStateIdle, ses.State)
}

func TestSurpriseRound_RevealGoesBad(t *testing.T) {
	svc, roller := newTestService()
	enc := goblins(4, 18)
	ses := combatSession(enc)
	ses.State = entities.SessionStateSurprise

	// 5+1 is only cautious: the standoff becomes a fight.
	roller.SetRolls([]int{2, 3})

	result, err := svc.SurpriseRound(context.Background(), ses, testParty(), entities.SurpriseReveal)
	require.NoError(t, err)
	assert.False(t, result.Parleyed)
	assert.Equal(t, entities.SessionStateEncounter, ses.State)
	assert.Equal(t, entities.DispositionCautious, enc.Disposition)
}

func TestRound_NoOpOutsideEncounter(t *testing.T) {
	svc, roller := newTestService()

	ses := &entities.DungeonSession{State: entities.SessionStateIdle}
	result, err := svc.Round(context.Background(), ses, testParty(), entities.ActionFight)
	require.NoError(t, err)
	assert.True(t, result.NoOp)

	ses = combatSession(goblins(1, 5))
	result, err = svc.Round(context.Background(), ses, testParty(), entities.CombatAction("dance"))
	require.NoError(t, err)
	assert.True(t, result.NoOp)

	result, err = svc.SurpriseRound(context.Background(), ses, testParty(), entities.SurpriseAmbush)
	require.NoError(t, err)
	assert.True(t, result.NoOp, "no surprise round outside the surprise state")

	assert.Equal(t, 0, roller.Remaining())
}

func TestRound_Validation(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Round(context.Background(), nil, testParty(), entities.ActionFight)
	assert.True(t, dlverr.IsInvalidArgument(err))

	_, err = svc.SurpriseRound(context.Background(), combatSession(goblins(1, 5)), nil, entities.SurpriseEvade)
	assert.True(t, dlverr.IsInvalidArgument(err))
}

func TestNewServicePanicsWithoutRoller(t *testing.T) {
	assert.Panics(t, func() {
		combat.NewService(&combat.ServiceConfig{})
	})
}
