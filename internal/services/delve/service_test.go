package delve_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/delve-engine/internal/dice"
	mockdice "github.com/KirkDiggler/delve-engine/internal/dice/mock"
	"github.com/KirkDiggler/delve-engine/internal/entities"
	dlverr "github.com/KirkDiggler/delve-engine/internal/errors"
	"github.com/KirkDiggler/delve-engine/internal/repositories/sessions"
	"github.com/KirkDiggler/delve-engine/internal/services/combat"
	"github.com/KirkDiggler/delve-engine/internal/services/delve"
	mockdelve "github.com/KirkDiggler/delve-engine/internal/services/delve/mock"
	"github.com/KirkDiggler/delve-engine/internal/services/escape"
	"github.com/KirkDiggler/delve-engine/internal/services/obstacle"
	"github.com/KirkDiggler/delve-engine/internal/services/room"
	"github.com/KirkDiggler/delve-engine/internal/services/treasure"
)

type fixture struct {
	svc    delve.Service
	roller *mockdice.ManualMockRoller
	repo   sessions.Repository
	roster *mockdelve.MockRoster
	clock  *mockdelve.MockClock
	ledger *mockdelve.MockLedger
	xp     *mockdelve.MockXPSink
}

// newFixture wires the real sub-services over a scripted roller, with
// mocked campaign collaborators and in-memory storage.
func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	roller := mockdice.NewManualMockRoller()

	f := &fixture{
		roller: roller,
		repo:   sessions.NewInMemoryRepository(),
		roster: mockdelve.NewMockRoster(ctrl),
		clock:  mockdelve.NewMockClock(ctrl),
		ledger: mockdelve.NewMockLedger(ctrl),
		xp:     mockdelve.NewMockXPSink(ctrl),
	}
	f.svc = delve.NewService(&delve.ServiceConfig{
		Repository: f.repo,
		Rooms:      room.NewService(&room.ServiceConfig{Roller: roller}),
		Obstacles:  obstacle.NewService(&obstacle.ServiceConfig{Roller: roller}),
		Combat:     combat.NewService(&combat.ServiceConfig{Roller: roller}),
		Treasure:   treasure.NewService(&treasure.ServiceConfig{Roller: roller}),
		Escape:     escape.NewService(&escape.ServiceConfig{Roller: roller}),
		Roller:     roller,
		Roster:     f.roster,
		Clock:      f.clock,
		Ledger:     f.ledger,
		XP:         f.xp,
	})
	return f
}

func testParty() *entities.PartySnapshot {
	return &entities.PartySnapshot{
		Members: []*entities.Member{
			{ID: "brynn", Name: "Brynn", MaxHP: 8, CurrentHP: 8, ArmorClass: 7,
				AttackThreshold: 19, DamageDie: 8,
				Abilities: entities.AbilityScores{Strength: 16, Dexterity: 9}},
			{ID: "marek", Name: "Marek", MaxHP: 6, CurrentHP: 6, ArmorClass: 5,
				AttackThreshold: 19, DamageDie: 6, SpellSlots: 1,
				TrapSkill: 45, LockSkill: 35,
				Abilities: entities.AbilityScores{Strength: 9, Dexterity: 14}},
		},
	}
}

func (f *fixture) expectParty() {
	f.roster.EXPECT().Snapshot(gomock.Any()).Return(testParty(), nil).AnyTimes()
}

func (f *fixture) seed(t *testing.T, mutate func(*entities.DungeonSession)) *entities.DungeonSession {
	ses := &entities.DungeonSession{
		ID:             "delve-1",
		Name:           "Test delve",
		State:          entities.SessionStateIdle,
		Depth:          1,
		LightRemaining: 6,
		LightUnits:     2,
		Rations:        3,
	}
	if mutate != nil {
		mutate(ses)
	}
	require.NoError(t, f.repo.Create(context.Background(), ses))
	return ses
}

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

func TestStartSession(t *testing.T) {
	f := newFixture(t)

	ses, err := f.svc.StartSession(context.Background(), &delve.StartSessionInput{
		Name:       "First descent",
		Depth:      2,
		LairMode:   true,
		LightUnits: 3,
		Rations:    5,
		Seed:       42,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, ses.ID)
	assert.Equal(t, entities.SessionStateIdle, ses.State)
	assert.Equal(t, 2, ses.Depth)
	assert.True(t, ses.LairMode)
	assert.Equal(t, 0, ses.Turn)
	assert.Equal(t, entities.TurnsPerLightUnit, ses.LightRemaining)
	assert.Equal(t, 3, ses.LightUnits)
	assert.Equal(t, 5, ses.Rations)
	assert.Equal(t, int64(42), ses.Seed)
	assert.Len(t, ses.Log, 2)

	stored, err := f.repo.Get(context.Background(), ses.ID)
	require.NoError(t, err)
	assert.Equal(t, ses.ID, stored.ID)
}

func TestStartSession_Validation(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.StartSession(context.Background(), nil)
	assert.True(t, dlverr.IsInvalidArgument(err))

	_, err = f.svc.StartSession(context.Background(), &delve.StartSessionInput{Depth: 0})
	assert.True(t, dlverr.IsInvalidArgument(err))
}

func TestExplore_EmptyRoomAdvancesOneTurn(t *testing.T) {
	f := newFixture(t)
	f.seed(t, nil)
	f.expectParty()
	f.roster.EXPECT().MovementMultiplier(gomock.Any(), 0).Return(1.0, nil)
	f.clock.EXPECT().Advance(gomock.Any(), 1).Return(nil)

	// Room roll of 50 lands in the empty band.
	f.roller.SetRolls([]int{50})

	ses, err := f.svc.Explore(context.Background(), "delve-1")
	require.NoError(t, err)

	assert.Equal(t, entities.SessionStateIdle, ses.State)
	assert.Equal(t, 1, ses.Turn)
	assert.Equal(t, 1, ses.RoomsExplored)
	assert.Equal(t, 5, ses.LightRemaining)
	assert.Equal(t, 0, f.roller.Remaining())

	stored, err := f.repo.Get(context.Background(), "delve-1")
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Turn, "the turn advance must be persisted")
}

func TestExplore_EvenTurnWanderingCheckConverts(t *testing.T) {
	f := newFixture(t)
	f.seed(t, func(ses *entities.DungeonSession) { ses.Turn = 1 })
	f.expectParty()
	f.roster.EXPECT().MovementMultiplier(gomock.Any(), 0).Return(1.0, nil)
	f.clock.EXPECT().Advance(gomock.Any(), 1).Return(nil)

	// Turn 2 is even: the check comes up 1, the room itself is empty,
	// then a wandering goblin pair closes to 20 yards and eyes the party
	// warily.
	f.roller.SetRolls([]int{1, 50, 3, 1, 1, 5, 6, 2, 4, 4})

	ses, err := f.svc.Explore(context.Background(), "delve-1")
	require.NoError(t, err)

	assert.Equal(t, entities.SessionStateEncounter, ses.State)
	require.NotNil(t, ses.Encounter)
	assert.Equal(t, entities.MonsterGoblin, ses.Encounter.MonsterID)
	assert.True(t, ses.Encounter.Wandering)
	assert.False(t, ses.Encounter.Lair)
	assert.Equal(t, 20, ses.Encounter.DistanceYards)
	assert.Equal(t, 0, f.roller.Remaining())
}

func TestExplore_OverloadedPartyRefuses(t *testing.T) {
	f := newFixture(t)
	f.seed(t, func(ses *entities.DungeonSession) { ses.LootCarried = 2000 })
	f.expectParty()
	f.roster.EXPECT().MovementMultiplier(gomock.Any(), 2000).Return(0.0, nil)

	ses, err := f.svc.Explore(context.Background(), "delve-1")
	require.NoError(t, err)

	assert.Equal(t, 0, ses.Turn, "no time passes on a refusal")
	assert.Equal(t, 0, ses.RoomsExplored)
	last := ses.Log[len(ses.Log)-1]
	assert.Contains(t, last.Message, "too loaded down")

	// Dumping coin brings the party back under weight.
	ses, err = f.svc.DropLoot(context.Background(), "delve-1", 1500)
	require.NoError(t, err)
	assert.Equal(t, 500, ses.LootCarried)

	f.roster.EXPECT().MovementMultiplier(gomock.Any(), 500).Return(1.0, nil)
	f.clock.EXPECT().Advance(gomock.Any(), 1).Return(nil)
	f.roller.SetRolls([]int{50})

	ses, err = f.svc.Explore(context.Background(), "delve-1")
	require.NoError(t, err)
	assert.Equal(t, 1, ses.Turn)
}

func TestSearch_FindsACacheOncePerRoom(t *testing.T) {
	f := newFixture(t)
	f.seed(t, nil)
	f.expectParty()
	f.clock.EXPECT().Advance(gomock.Any(), 1).Return(nil)

	// The d6 comes up 2 (a find), the follow-up picks the cache, and
	// 2d6 x10 values it at 70 gold.
	f.roller.SetRolls([]int{2, 2, 3, 4})

	ses, err := f.svc.Search(context.Background(), "delve-1")
	require.NoError(t, err)

	assert.Equal(t, 70, ses.LootCarried)
	assert.True(t, ses.SearchedRoom)
	assert.Equal(t, 1, ses.Turn)
	assert.Equal(t, 0, f.roller.Remaining())

	// The same room gives nothing twice; no time, no dice.
	ses, err = f.svc.Search(context.Background(), "delve-1")
	require.NoError(t, err)
	assert.Equal(t, 1, ses.Turn)
	assert.Equal(t, 70, ses.LootCarried)
}

func TestRest_ConsumesARation(t *testing.T) {
	f := newFixture(t)
	f.seed(t, nil)
	f.expectParty()
	f.clock.EXPECT().Advance(gomock.Any(), 1).Return(nil)

	ses, err := f.svc.Rest(context.Background(), "delve-1")
	require.NoError(t, err)

	assert.Equal(t, 2, ses.Rations)
	assert.Equal(t, 1, ses.Turn)
	last := ses.Log[len(ses.Log)-1]
	assert.Equal(t, entities.LogResource, last.Kind)
}

func TestResolveObstacle_ForcedDoorCostsATurn(t *testing.T) {
	f := newFixture(t)
	f.seed(t, func(ses *entities.DungeonSession) {
		ses.State = entities.SessionStateObstacle
		ses.Obstacle = &entities.ObstacleState{
			ID:       entities.ObstacleStuckDoor,
			Category: entities.ObstacleCategoryDoor,
			Name:     "stuck door",
			Outcome:  entities.OutcomePending,
		}
	})
	f.expectParty()
	f.clock.EXPECT().Advance(gomock.Any(), 1).Return(nil)

	// Brynn's +2 strength turns a 4 into a 6: the door gives.
	f.roller.SetRolls([]int{4})

	ses, err := f.svc.ResolveObstacle(context.Background(), "delve-1", entities.StrategyForce)
	require.NoError(t, err)

	assert.Equal(t, entities.SessionStateIdle, ses.State)
	assert.Nil(t, ses.Obstacle)
	assert.Equal(t, 1, ses.Turn)
}

func TestResolveObstacle_SprungTrapWritesDamageBack(t *testing.T) {
	f := newFixture(t)
	f.seed(t, func(ses *entities.DungeonSession) {
		ses.State = entities.SessionStateObstacle
		ses.Obstacle = &entities.ObstacleState{
			ID:       entities.ObstaclePitTrap,
			Category: entities.ObstacleCategoryTrap,
			Name:     "pit trap",
			Outcome:  entities.OutcomePending,
		}
	})
	f.expectParty()
	f.roster.EXPECT().ApplyDamage(gomock.Any(), "brynn", 4).Return(nil)
	f.clock.EXPECT().Advance(gomock.Any(), 1).Return(nil)

	// Rushing springs the pit under Brynn: 4 damage, failed save.
	f.roller.SetRolls([]int{1, 4, 3})

	ses, err := f.svc.ResolveObstacle(context.Background(), "delve-1", entities.StrategyForce)
	require.NoError(t, err)

	assert.Equal(t, entities.SessionStateIdle, ses.State)
	assert.Equal(t, 1, ses.Turn)
	assert.Equal(t, 0, f.roller.Remaining())
}

func TestActThenLoot_AwardsXPExactlyOnce(t *testing.T) {
	f := newFixture(t)
	f.seed(t, func(ses *entities.DungeonSession) {
		ses.State = entities.SessionStateEncounter
		ses.Encounter = goblins(2, 9)
	})
	f.expectParty()
	f.clock.EXPECT().Advance(gomock.Any(), 1).Return(nil).Times(2)
	f.roster.EXPECT().ApplyDamage(gomock.Any(), "marek", 3).Return(nil)

	// Goblins win initiative and one claws Marek for 3; the party
	// answers with 6 and 3 and empties the pool.
	f.roller.SetRolls([]int{2, 5, 2, 16, 3, 1, 5, 15, 6, 14, 3})

	ses, err := f.svc.Act(context.Background(), "delve-1", entities.ActionFight)
	require.NoError(t, err)

	assert.Equal(t, entities.SessionStateLoot, ses.State)
	require.NotNil(t, ses.Encounter, "the bodies wait to be looted")
	assert.True(t, ses.Encounter.Defeated())
	assert.Equal(t, 1, ses.Turn)
	assert.Equal(t, 0, f.roller.Remaining())

	// Looting a carried type C gets copper only, and pays the XP out
	// here, not at the kill.
	f.xp.EXPECT().Award(gomock.Any(), 10, []string{"brynn", "marek"}).Return(nil)
	f.roller.SetRolls([]int{15, 7, 95, 90})

	ses, err = f.svc.Loot(context.Background(), "delve-1")
	require.NoError(t, err)

	assert.Equal(t, entities.SessionStateIdle, ses.State)
	assert.Nil(t, ses.Encounter)
	assert.Equal(t, 70, ses.LootCarried)
	assert.Equal(t, 2, ses.Turn)
	assert.Equal(t, 0, f.roller.Remaining())
}

func TestActSpell_SpendsTheSlot(t *testing.T) {
	f := newFixture(t)
	f.seed(t, func(ses *entities.DungeonSession) {
		ses.State = entities.SessionStateEncounter
		ses.Encounter = goblins(4, 18)
	})
	f.expectParty()
	f.roster.EXPECT().SpendSpellSlot(gomock.Any(), "marek").Return(nil)
	f.clock.EXPECT().Advance(gomock.Any(), 1).Return(nil)

	// Marek's bolt lands for 5; both morale checks hold and all three
	// goblin swings miss.
	f.roller.SetRolls([]int{6, 1, 4, 2, 1, 1, 1, 1, 2, 2, 3, 1, 4})

	ses, err := f.svc.Act(context.Background(), "delve-1", entities.ActionSpell)
	require.NoError(t, err)

	assert.Equal(t, entities.SessionStateEncounter, ses.State)
	assert.Equal(t, 13, ses.Encounter.PoolHP)
	assert.Equal(t, 0, f.roller.Remaining())
}

func TestSurpriseAct_Evade(t *testing.T) {
	f := newFixture(t)
	f.seed(t, func(ses *entities.DungeonSession) {
		ses.State = entities.SessionStateSurprise
		enc := goblins(2, 9)
		enc.MonstersSurprised = true
		ses.Encounter = enc
	})
	f.expectParty()
	f.clock.EXPECT().Advance(gomock.Any(), 1).Return(nil)

	ses, err := f.svc.SurpriseAct(context.Background(), "delve-1", entities.SurpriseEvade)
	require.NoError(t, err)

	assert.Equal(t, entities.SessionStateIdle, ses.State)
	assert.Nil(t, ses.Encounter)
	assert.Equal(t, 1, ses.Turn)
}

func TestAttemptReturn_CleanTripBanksEverything(t *testing.T) {
	f := newFixture(t)
	f.seed(t, func(ses *entities.DungeonSession) {
		ses.Depth = 2
		ses.LootCarried = 300
		ses.Turn = 10
		ses.RoomsExplored = 5
	})
	f.expectParty()
	f.roster.EXPECT().MovementMultiplier(gomock.Any(), 300).Return(1.0, nil)
	f.clock.EXPECT().Advance(gomock.Any(), 6).Return(nil)
	f.ledger.EXPECT().Deposit(gomock.Any(), 300, "delve: Test delve").Return(nil)

	// Three wandering checks, none come up 1.
	f.roller.SetRolls([]int{2, 6, 5})

	ses, err := f.svc.AttemptReturn(context.Background(), "delve-1")
	require.NoError(t, err)

	assert.Equal(t, entities.SessionStateIdle, ses.State)
	assert.Equal(t, 0, ses.LootCarried)
	assert.Equal(t, 0, ses.Turn)
	assert.False(t, ses.PendingReturn)
	assert.Equal(t, 0, f.roller.Remaining())
}

func TestAttemptReturn_InterruptedThenContinued(t *testing.T) {
	f := newFixture(t)
	f.seed(t, func(ses *entities.DungeonSession) {
		ses.Depth = 2
		ses.LootCarried = 100
	})
	f.expectParty()
	f.roster.EXPECT().MovementMultiplier(gomock.Any(), 100).Return(1.0, nil)
	f.clock.EXPECT().Advance(gomock.Any(), 3).Return(nil).Times(2)
	f.clock.EXPECT().Advance(gomock.Any(), 1).Return(nil)

	// The second check comes up 1: two goblins block the stair three
	// turns up, 30 yards off and wary.
	f.roller.SetRolls([]int{3, 1, 1, 1, 1, 5, 6, 3, 3, 3})

	ses, err := f.svc.AttemptReturn(context.Background(), "delve-1")
	require.NoError(t, err)

	assert.Equal(t, entities.SessionStateEncounter, ses.State)
	assert.True(t, ses.PendingReturn)
	assert.Equal(t, 3, ses.ReturnTurnsLeft)
	assert.Equal(t, 3, ses.Turn)
	require.NotNil(t, ses.Encounter)
	assert.True(t, ses.Encounter.Wandering)

	// The party bolts and the goblins let them go; with the return
	// pending, the session settles into returning rather than idle.
	f.roller.SetRolls([]int{1, 5, 2, 4, 6, 4})

	ses, err = f.svc.Act(context.Background(), "delve-1", entities.ActionFlee)
	require.NoError(t, err)
	assert.Equal(t, entities.SessionStateReturning, ses.State)

	f.ledger.EXPECT().Deposit(gomock.Any(), 100, "delve: Test delve").Return(nil)

	ses, err = f.svc.ContinueReturn(context.Background(), "delve-1")
	require.NoError(t, err)

	assert.Equal(t, entities.SessionStateIdle, ses.State)
	assert.Equal(t, 0, ses.Turn)
	assert.Equal(t, 0, ses.LootCarried)
	assert.False(t, ses.PendingReturn)
	assert.Equal(t, 0, ses.ReturnTurnsLeft)
	assert.Equal(t, 0, f.roller.Remaining())
}

func TestAttemptReturn_OverloadedRefusalThenDrop(t *testing.T) {
	f := newFixture(t)
	f.seed(t, func(ses *entities.DungeonSession) {
		ses.Depth = 2
		ses.LootCarried = 2000
	})
	f.expectParty()
	f.roster.EXPECT().MovementMultiplier(gomock.Any(), 2000).Return(0.0, nil)

	ses, err := f.svc.AttemptReturn(context.Background(), "delve-1")
	require.NoError(t, err)

	assert.Equal(t, entities.SessionStateIdle, ses.State, "a refusal is not an error")
	assert.Equal(t, 2000, ses.LootCarried)
	last := ses.Log[len(ses.Log)-1]
	assert.Contains(t, last.Message, "cannot haul")

	ses, err = f.svc.DropLoot(context.Background(), "delve-1", 1600)
	require.NoError(t, err)
	assert.Equal(t, 400, ses.LootCarried)

	f.roster.EXPECT().MovementMultiplier(gomock.Any(), 400).Return(1.0, nil)
	f.clock.EXPECT().Advance(gomock.Any(), 6).Return(nil)
	f.ledger.EXPECT().Deposit(gomock.Any(), 400, "delve: Test delve").Return(nil)
	f.roller.SetRolls([]int{2, 2, 6})

	ses, err = f.svc.AttemptReturn(context.Background(), "delve-1")
	require.NoError(t, err)
	assert.Equal(t, 0, ses.LootCarried)
}

func TestGetSession_RoundTripsCombatState(t *testing.T) {
	f := newFixture(t)
	f.seed(t, func(ses *entities.DungeonSession) {
		ses.State = entities.SessionStateEncounter
		enc := goblins(4, 18)
		enc.PoolHP = 7
		enc.Round = 2
		enc.ParleyAttempts = 1
		enc.MarkTrigger(entities.MoraleFirstBlood)
		enc.MarkTrigger(entities.MoraleHalfPool)
		ses.Encounter = enc
	})

	ses, err := f.svc.GetSession(context.Background(), "delve-1")
	require.NoError(t, err)

	require.NotNil(t, ses.Encounter)
	assert.Equal(t, 7, ses.Encounter.PoolHP)
	assert.Equal(t, 2, ses.Encounter.Round)
	assert.Equal(t, 1, ses.Encounter.ParleyAttempts)
	assert.True(t, ses.Encounter.FiredTrigger(entities.MoraleFirstBlood))
	assert.True(t, ses.Encounter.FiredTrigger(entities.MoraleHalfPool))
	assert.False(t, ses.Encounter.FiredTrigger(entities.MoraleFirstDeath))
}

func TestAvailableActions(t *testing.T) {
	f := newFixture(t)
	f.seed(t, func(ses *entities.DungeonSession) {
		ses.LootCarried = 50
	})

	actions, err := f.svc.AvailableActions(context.Background(), "delve-1")
	require.NoError(t, err)

	var commands []string
	for _, a := range actions {
		commands = append(commands, a.Command)
	}
	assert.Equal(t, []string{"explore", "rest", "return", "search", "drop"}, commands)
}

func TestAvailableActions_Encounter(t *testing.T) {
	f := newFixture(t)
	f.seed(t, func(ses *entities.DungeonSession) {
		ses.State = entities.SessionStateEncounter
		ses.Encounter = goblins(2, 9)
	})

	actions, err := f.svc.AvailableActions(context.Background(), "delve-1")
	require.NoError(t, err)

	var commands []string
	for _, a := range actions {
		commands = append(commands, a.Command)
	}
	assert.Equal(t, []string{"fight", "spell", "flee", "parley"}, commands)
}

func TestWrongStateActionsAreNoOps(t *testing.T) {
	f := newFixture(t)
	f.seed(t, func(ses *entities.DungeonSession) {
		ses.LootCarried = 120
	})
	f.expectParty()

	// Nothing to fight, loot, or continue from idle; nothing rolls,
	// nothing logs, nothing persists.
	ses, err := f.svc.Act(context.Background(), "delve-1", entities.ActionFight)
	require.NoError(t, err)
	assert.Equal(t, entities.SessionStateIdle, ses.State)
	assert.Equal(t, 0, ses.Turn)
	assert.Empty(t, ses.Log)

	ses, err = f.svc.Loot(context.Background(), "delve-1")
	require.NoError(t, err)
	assert.Empty(t, ses.Log)

	ses, err = f.svc.ContinueReturn(context.Background(), "delve-1")
	require.NoError(t, err)
	assert.Empty(t, ses.Log)

	// A non-positive drop changes nothing either.
	ses, err = f.svc.DropLoot(context.Background(), "delve-1", -5)
	require.NoError(t, err)
	assert.Equal(t, 120, ses.LootCarried)
	assert.Empty(t, ses.Log)
}

func TestExplore_MidEncounterIsANoOp(t *testing.T) {
	f := newFixture(t)
	f.seed(t, func(ses *entities.DungeonSession) {
		ses.State = entities.SessionStateEncounter
		ses.Encounter = goblins(2, 9)
	})
	f.expectParty()

	ses, err := f.svc.Explore(context.Background(), "delve-1")
	require.NoError(t, err)
	assert.Equal(t, entities.SessionStateEncounter, ses.State)
	assert.Equal(t, 0, ses.RoomsExplored)
	assert.Empty(t, ses.Log)
}

func TestExplore_LightRunsOut(t *testing.T) {
	f := newFixture(t)
	f.seed(t, func(ses *entities.DungeonSession) {
		ses.LightRemaining = 1
		ses.LightUnits = 0
	})
	f.expectParty()
	f.roster.EXPECT().MovementMultiplier(gomock.Any(), 0).Return(1.0, nil)
	f.clock.EXPECT().Advance(gomock.Any(), 1).Return(nil)

	f.roller.SetRolls([]int{50})

	ses, err := f.svc.Explore(context.Background(), "delve-1")
	require.NoError(t, err)

	assert.Equal(t, entities.LightingDark, ses.Lighting())
	assert.True(t, ses.InDarkness())

	var guttered, groping bool
	for _, entry := range ses.Log {
		if entry.Kind == entities.LogResource {
			if entry.Message == "The last torch gutters out. Darkness presses in." {
				guttered = true
			}
			if entry.Message == "The party gropes forward in pitch blackness." {
				groping = true
			}
		}
	}
	assert.True(t, guttered)
	assert.True(t, groping)
}

func TestExplore_MealAtTwentyFourTurns(t *testing.T) {
	f := newFixture(t)
	f.seed(t, func(ses *entities.DungeonSession) {
		ses.Turn = 23
		ses.Rations = 1
	})
	f.expectParty()
	f.roster.EXPECT().MovementMultiplier(gomock.Any(), 0).Return(1.0, nil)
	f.clock.EXPECT().Advance(gomock.Any(), 1).Return(nil)

	// Turn 24: a meal comes due and the even-turn check stays quiet.
	f.roller.SetRolls([]int{4, 50})

	ses, err := f.svc.Explore(context.Background(), "delve-1")
	require.NoError(t, err)

	assert.Equal(t, 0, ses.Rations)
	assert.Equal(t, 24, ses.Turn)
	assert.Equal(t, 0, f.roller.Remaining())
}

func TestExplore_AlertedMonstersForceAnExtraCheck(t *testing.T) {
	f := newFixture(t)
	f.seed(t, func(ses *entities.DungeonSession) {
		ses.MonstersAlerted = true
	})
	f.expectParty()
	f.roster.EXPECT().MovementMultiplier(gomock.Any(), 0).Return(1.0, nil)
	f.clock.EXPECT().Advance(gomock.Any(), 1).Return(nil)

	// Turn 1 is odd, so the only check is the alerted one; it misses
	// and the flag clears.
	f.roller.SetRolls([]int{4, 50})

	ses, err := f.svc.Explore(context.Background(), "delve-1")
	require.NoError(t, err)

	assert.False(t, ses.MonstersAlerted)
	assert.Equal(t, entities.SessionStateIdle, ses.State)
	assert.Equal(t, 0, f.roller.Remaining())
}

func TestExplore_ClockFailureLeavesSessionUnpersisted(t *testing.T) {
	f := newFixture(t)
	f.seed(t, nil)
	f.expectParty()
	f.roster.EXPECT().MovementMultiplier(gomock.Any(), 0).Return(1.0, nil)
	f.clock.EXPECT().Advance(gomock.Any(), 1).Return(errors.New("calendar wedged"))

	_, err := f.svc.Explore(context.Background(), "delve-1")
	require.Error(t, err)

	stored, getErr := f.repo.Get(context.Background(), "delve-1")
	require.NoError(t, getErr)
	assert.Equal(t, 0, stored.Turn)
	assert.Equal(t, 0, stored.RoomsExplored)
}

func TestEndSession(t *testing.T) {
	f := newFixture(t)
	f.seed(t, nil)

	require.NoError(t, f.svc.EndSession(context.Background(), "delve-1"))

	_, err := f.repo.Get(context.Background(), "delve-1")
	assert.True(t, dlverr.IsNotFound(err))
}
