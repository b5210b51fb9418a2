package delve

//go:generate mockgen -destination=mock/mock_service.go -package=mockdelve -source=service.go

import (
	"context"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/delve-engine/internal/dice"
	"github.com/KirkDiggler/delve-engine/internal/entities"
	dlverr "github.com/KirkDiggler/delve-engine/internal/errors"
	"github.com/KirkDiggler/delve-engine/internal/repositories/sessions"
	"github.com/KirkDiggler/delve-engine/internal/rulebook"
	"github.com/KirkDiggler/delve-engine/internal/services/combat"
	"github.com/KirkDiggler/delve-engine/internal/services/escape"
	"github.com/KirkDiggler/delve-engine/internal/services/obstacle"
	"github.com/KirkDiggler/delve-engine/internal/services/room"
	"github.com/KirkDiggler/delve-engine/internal/services/treasure"
	"github.com/KirkDiggler/delve-engine/internal/uuid"
)

// Service drives a delve session through its state machine. Every
// operation loads the session, applies the action, and persists the
// result in one place at the end. An action the current state does not
// support returns the session unchanged with no error; errors are for
// unknown sessions, bad creation input, and collaborator failures.
type Service interface {
	// StartSession creates a new delve at the given depth
	StartSession(ctx context.Context, input *StartSessionInput) (*entities.DungeonSession, error)

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, sessionID string) (*entities.DungeonSession, error)

	// ListActiveSessions retrieves every stored session still underway
	ListActiveSessions(ctx context.Context) ([]*entities.DungeonSession, error)

	// EndSession deletes a session for good
	EndSession(ctx context.Context, sessionID string) error

	// Explore pushes into a new room and resolves what is in it
	Explore(ctx context.Context, sessionID string) (*entities.DungeonSession, error)

	// Search combs the current room once for secrets or caches
	Search(ctx context.Context, sessionID string) (*entities.DungeonSession, error)

	// Rest takes a breather and eats a ration
	Rest(ctx context.Context, sessionID string) (*entities.DungeonSession, error)

	// ResolveObstacle applies a strategy to the obstacle in the way
	ResolveObstacle(ctx context.Context, sessionID string, strategy entities.Strategy) (*entities.DungeonSession, error)

	// Act fights one combat round with the chosen action
	Act(ctx context.Context, sessionID string, action entities.CombatAction) (*entities.DungeonSession, error)

	// SurpriseAct spends the party's free round over a surprised group
	SurpriseAct(ctx context.Context, sessionID string, action entities.SurpriseAction) (*entities.DungeonSession, error)

	// Loot strips a defeated encounter and awards the experience
	Loot(ctx context.Context, sessionID string) (*entities.DungeonSession, error)

	// DropLoot abandons carried gold to lighten the party
	DropLoot(ctx context.Context, sessionID string, gold int) (*entities.DungeonSession, error)

	// AttemptReturn starts the climb back to the surface
	AttemptReturn(ctx context.Context, sessionID string) (*entities.DungeonSession, error)

	// ContinueReturn finishes a return that an encounter interrupted
	ContinueReturn(ctx context.Context, sessionID string) (*entities.DungeonSession, error)

	// AvailableActions lists what the session can legally do right now
	AvailableActions(ctx context.Context, sessionID string) ([]ActionInfo, error)
}

// StartSessionInput holds the parameters for a new delve
type StartSessionInput struct {
	Name       string
	Depth      int
	LairMode   bool  // placed encounters guard their full hoard
	LightUnits int   // spare torches beyond the one already burning
	Rations    int
	Seed       int64 // recorded for reproducibility
}

// ActionInfo describes one legal action for UI affordances
type ActionInfo struct {
	Command     string
	Description string
}

// hiddenCache is the coin value of a stash found by searching
var hiddenCache = dice.MustFormula("2d6*10")

// service implements the Service interface
type service struct {
	repository sessions.Repository
	rooms      room.Service
	obstacles  obstacle.Service
	combat     combat.Service
	treasure   treasure.Service
	escape     escape.Service
	roller     dice.Roller
	roster     Roster
	clock      Clock
	ledger     Ledger
	xp         XPSink
	uuid       uuid.Generator
	logger     *zap.Logger
	random     *rand.Rand
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    sessions.Repository // Required
	Rooms         room.Service        // Required
	Obstacles     obstacle.Service    // Required
	Combat        combat.Service      // Required
	Treasure      treasure.Service    // Required
	Escape        escape.Service      // Required
	Roller        dice.Roller         // Required
	Roster        Roster              // Required
	Clock         Clock               // Required
	Ledger        Ledger              // Required
	XP            XPSink              // Required
	UUIDGenerator uuid.Generator      // Optional
	Logger        *zap.Logger         // Optional
}

// NewService creates a new delve service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("session repository is required")
	}
	if cfg.Rooms == nil {
		panic("room service is required")
	}
	if cfg.Obstacles == nil {
		panic("obstacle service is required")
	}
	if cfg.Combat == nil {
		panic("combat service is required")
	}
	if cfg.Treasure == nil {
		panic("treasure service is required")
	}
	if cfg.Escape == nil {
		panic("escape service is required")
	}
	if cfg.Roller == nil {
		panic("dice roller is required")
	}
	if cfg.Roster == nil {
		panic("roster is required")
	}
	if cfg.Clock == nil {
		panic("clock is required")
	}
	if cfg.Ledger == nil {
		panic("ledger is required")
	}
	if cfg.XP == nil {
		panic("xp sink is required")
	}

	gen := cfg.UUIDGenerator
	if gen == nil {
		gen = uuid.NewPrefixed("delve")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		repository: cfg.Repository,
		rooms:      cfg.Rooms,
		obstacles:  cfg.Obstacles,
		combat:     cfg.Combat,
		treasure:   cfg.Treasure,
		escape:     cfg.Escape,
		roller:     cfg.Roller,
		roster:     cfg.Roster,
		clock:      cfg.Clock,
		ledger:     cfg.Ledger,
		xp:         cfg.XP,
		uuid:       gen,
		logger:     logger,
		random:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// StartSession creates a new delve at the given depth
func (s *service) StartSession(ctx context.Context, input *StartSessionInput) (*entities.DungeonSession, error) {
	if input == nil {
		return nil, dlverr.InvalidArgument("input cannot be nil")
	}
	if input.Depth < 1 {
		return nil, dlverr.InvalidArgumentf("depth must be at least 1, got %d", input.Depth)
	}

	name := input.Name
	if name == "" {
		name = "Unnamed delve"
	}

	now := time.Now().UTC()
	ses := &entities.DungeonSession{
		ID:             s.uuid.New(),
		Name:           name,
		State:          entities.SessionStateIdle,
		Depth:          input.Depth,
		LairMode:       input.LairMode,
		LightRemaining: entities.TurnsPerLightUnit,
		LightUnits:     input.LightUnits,
		Rations:        input.Rations,
		Seed:           input.Seed,
		CreatedAt:      now,
		LastActive:     now,
	}
	ses.AppendLog(entities.LogTravel, "The party descends to depth %d of the Underhalls.", input.Depth)
	ses.AppendLog(entities.LogResource, "One torch burning, %d spare. %d rations packed.", ses.LightUnits, ses.Rations)

	if err := s.repository.Create(ctx, ses); err != nil {
		return nil, err
	}

	s.logger.Info("delve started",
		zap.String("session_id", ses.ID),
		zap.Int("depth", ses.Depth),
		zap.Bool("lair_mode", ses.LairMode))
	return ses, nil
}

// GetSession retrieves a session by ID
func (s *service) GetSession(ctx context.Context, sessionID string) (*entities.DungeonSession, error) {
	if sessionID == "" {
		return nil, dlverr.InvalidArgument("session ID cannot be empty")
	}
	return s.repository.Get(ctx, sessionID)
}

// ListActiveSessions retrieves every stored session still underway
func (s *service) ListActiveSessions(ctx context.Context) ([]*entities.DungeonSession, error) {
	return s.repository.ListActive(ctx)
}

// EndSession deletes a session for good
func (s *service) EndSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return dlverr.InvalidArgument("session ID cannot be empty")
	}
	if err := s.repository.Delete(ctx, sessionID); err != nil {
		return err
	}
	s.logger.Info("delve ended", zap.String("session_id", sessionID))
	return nil
}

// Explore pushes into a new room and resolves what is in it
func (s *service) Explore(ctx context.Context, sessionID string) (*entities.DungeonSession, error) {
	ses, party, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !ses.IsIdle() {
		return ses, nil
	}

	multiplier, err := s.roster.MovementMultiplier(ctx, ses.LootCarried)
	if err != nil {
		return nil, err
	}
	if multiplier <= 0 {
		ses.AppendLog(entities.LogTravel, "The party is too loaded down to move another step.")
		return s.finish(ctx, ses)
	}

	wandering, err := s.advanceTurns(ctx, ses, 1, true)
	if err != nil {
		return nil, err
	}
	if ses.Lighting() == entities.LightingDark {
		ses.AppendLog(entities.LogResource, "The party gropes forward in pitch blackness.")
	}

	result, err := s.rooms.ResolveRoom(ctx, ses, party)
	if err != nil {
		return nil, err
	}
	if err := s.applyDamage(ctx, result.MemberDamage); err != nil {
		return nil, err
	}

	if err := s.resolveWandering(ctx, ses, party, wandering); err != nil {
		return nil, err
	}
	return s.finish(ctx, ses)
}

// Search combs the current room once for secrets or caches
func (s *service) Search(ctx context.Context, sessionID string) (*entities.DungeonSession, error) {
	ses, party, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !ses.IsIdle() || ses.SearchedRoom {
		return ses, nil
	}

	ses.SearchedRoom = true
	wandering, err := s.advanceTurns(ctx, ses, 1, true)
	if err != nil {
		return nil, err
	}

	found, err := s.roller.RollDie(6)
	if err != nil {
		return nil, err
	}
	if found <= rulebook.SearchFindChance {
		kind, err := s.roller.RollDie(2)
		if err != nil {
			return nil, err
		}
		if kind == 1 {
			ses.AppendLog(entities.LogRoom, "Tapping along the wall turns up a seam: a hidden passage, already ajar.")
		} else {
			gold, err := hiddenCache.Roll(s.roller)
			if err != nil {
				return nil, err
			}
			ses.LootCarried += gold
			finds := rulebook.SearchFindFlavors()
			ses.AppendLog(entities.LogRoom, "%s", finds[s.random.Intn(len(finds))])
			ses.AppendLog(entities.LogTreasure, "Inside, coin and oddments worth %d gold.", gold)
		}
	} else {
		flavors := rulebook.SearchNothingFlavors()
		ses.AppendLog(entities.LogRoom, "%s", flavors[s.random.Intn(len(flavors))])
	}

	if err := s.resolveWandering(ctx, ses, party, wandering); err != nil {
		return nil, err
	}
	return s.finish(ctx, ses)
}

// Rest takes a breather and eats a ration
func (s *service) Rest(ctx context.Context, sessionID string) (*entities.DungeonSession, error) {
	ses, party, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !ses.IsIdle() {
		return ses, nil
	}

	wandering, err := s.advanceTurns(ctx, ses, 1, true)
	if err != nil {
		return nil, err
	}

	lines := rulebook.RestFlavors()
	ses.AppendLog(entities.LogResource, "%s", lines[s.random.Intn(len(lines))])
	if ses.Rations > 0 {
		ses.Rations--
		ses.AppendLog(entities.LogResource, "The party shares a meal. %d rations left.", ses.Rations)
	} else {
		ses.AppendLog(entities.LogResource, "The party rests on empty stomachs.")
	}

	if err := s.resolveWandering(ctx, ses, party, wandering); err != nil {
		return nil, err
	}
	return s.finish(ctx, ses)
}

// ResolveObstacle applies a strategy to the obstacle in the way
func (s *service) ResolveObstacle(ctx context.Context, sessionID string, strategy entities.Strategy) (*entities.DungeonSession, error) {
	ses, party, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	result, err := s.obstacles.Resolve(ctx, ses, party, strategy)
	if err != nil {
		return nil, err
	}
	if result.NoOp {
		return ses, nil
	}

	if err := s.applyDamage(ctx, result.MemberDamage); err != nil {
		return nil, err
	}

	wandering, err := s.advanceTurns(ctx, ses, result.TurnCost, true)
	if err != nil {
		return nil, err
	}
	if err := s.resolveWandering(ctx, ses, party, wandering); err != nil {
		return nil, err
	}
	return s.finish(ctx, ses)
}

// Act fights one combat round with the chosen action
func (s *service) Act(ctx context.Context, sessionID string, action entities.CombatAction) (*entities.DungeonSession, error) {
	ses, party, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	result, err := s.combat.Round(ctx, ses, party, action)
	if err != nil {
		return nil, err
	}
	if result.NoOp {
		return ses, nil
	}

	if err := s.applyDamage(ctx, result.MemberDamage); err != nil {
		return nil, err
	}
	for _, memberID := range result.SpellCasters {
		if err := s.roster.SpendSpellSlot(ctx, memberID); err != nil {
			return nil, err
		}
	}

	if _, err := s.advanceTurns(ctx, ses, 1, false); err != nil {
		return nil, err
	}
	return s.finish(ctx, ses)
}

// SurpriseAct spends the party's free round over a surprised group
func (s *service) SurpriseAct(ctx context.Context, sessionID string, action entities.SurpriseAction) (*entities.DungeonSession, error) {
	ses, party, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	result, err := s.combat.SurpriseRound(ctx, ses, party, action)
	if err != nil {
		return nil, err
	}
	if result.NoOp {
		return ses, nil
	}

	if _, err := s.advanceTurns(ctx, ses, 1, false); err != nil {
		return nil, err
	}
	return s.finish(ctx, ses)
}

// Loot strips a defeated encounter and awards the experience
func (s *service) Loot(ctx context.Context, sessionID string) (*entities.DungeonSession, error) {
	ses, party, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if ses.State != entities.SessionStateLoot {
		return ses, nil
	}
	enc := ses.Encounter
	if enc == nil {
		return nil, dlverr.Internal("loot state without a defeated encounter")
	}

	haul, err := s.treasure.GenerateTreasure(ctx, enc.TreasureType, enc.Lair)
	if err != nil {
		return nil, err
	}
	gold := haul.TotalGold()
	ses.LootCarried += gold
	ses.AppendLog(entities.LogTreasure, "Picking over the dead %s: %s.", enc.Name, haul.String())
	if gold > 0 {
		ses.AppendLog(entities.LogTreasure, "Worth %d gold all told; the party now hauls %d.", gold, ses.LootCarried)
	}

	living := party.LivingIDs()
	share := s.treasure.DivideXP(s.treasure.XPForEncounter(enc), len(living))
	if share > 0 {
		if err := s.xp.Award(ctx, share, living); err != nil {
			return nil, err
		}
		ses.AppendLog(entities.LogSystem, "Each survivor pockets %d experience.", share)
	}

	ses.Encounter = nil
	ses.State = entities.SessionStateIdle

	if _, err := s.advanceTurns(ctx, ses, 1, false); err != nil {
		return nil, err
	}
	return s.finish(ctx, ses)
}

// DropLoot abandons carried gold to lighten the party
func (s *service) DropLoot(ctx context.Context, sessionID string, gold int) (*entities.DungeonSession, error) {
	ses, err := s.repository.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if ses.State != entities.SessionStateIdle && ses.State != entities.SessionStateReturning {
		return ses, nil
	}
	if gold <= 0 || ses.LootCarried == 0 {
		return ses, nil
	}

	if gold > ses.LootCarried {
		gold = ses.LootCarried
	}
	ses.LootCarried -= gold
	ses.AppendLog(entities.LogTreasure, "The party abandons %d gold to lighten the load; %d still carried.", gold, ses.LootCarried)

	return s.finish(ctx, ses)
}

// AttemptReturn starts the climb back to the surface
func (s *service) AttemptReturn(ctx context.Context, sessionID string) (*entities.DungeonSession, error) {
	ses, party, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !ses.IsIdle() {
		return ses, nil
	}

	multiplier, err := s.roster.MovementMultiplier(ctx, ses.LootCarried)
	if err != nil {
		return nil, err
	}

	plan, err := s.escape.PlanReturn(ses.Depth, multiplier)
	if err != nil {
		if dlverr.IsInvalidArgument(err) && multiplier <= 0 {
			ses.AppendLog(entities.LogTravel, "The party cannot haul this much another step. Something has to be left behind.")
			return s.finish(ctx, ses)
		}
		return nil, err
	}

	checks, err := s.escape.RollChecks(ctx, plan)
	if err != nil {
		return nil, err
	}

	if _, err := s.advanceTurns(ctx, ses, checks.TurnsTraveled, false); err != nil {
		return nil, err
	}

	if checks.Interrupted {
		ses.PendingReturn = true
		ses.ReturnTurnsLeft = checks.TurnsRemaining
		ses.AppendLog(entities.LogTravel, "Halfway up, something moves in the dark ahead.")
		build, err := s.rooms.BuildEncounter(ctx, ses, party, room.BuildOptions{Wandering: true})
		if err != nil {
			return nil, err
		}
		if err := s.applyDamage(ctx, build.MemberDamage); err != nil {
			return nil, err
		}
		return s.finish(ctx, ses)
	}

	if err := s.surface(ctx, ses); err != nil {
		return nil, err
	}
	return s.finish(ctx, ses)
}

// ContinueReturn finishes a return that an encounter interrupted
func (s *service) ContinueReturn(ctx context.Context, sessionID string) (*entities.DungeonSession, error) {
	ses, err := s.repository.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if ses.State != entities.SessionStateReturning {
		return ses, nil
	}

	if _, err := s.advanceTurns(ctx, ses, ses.ReturnTurnsLeft, false); err != nil {
		return nil, err
	}
	ses.State = entities.SessionStateIdle

	if err := s.surface(ctx, ses); err != nil {
		return nil, err
	}
	return s.finish(ctx, ses)
}

// surface banks the haul and closes out the trip counters
func (s *service) surface(ctx context.Context, ses *entities.DungeonSession) error {
	if ses.LootCarried > 0 {
		memo := "delve: " + ses.Name
		if err := s.ledger.Deposit(ctx, ses.LootCarried, memo); err != nil {
			return err
		}
	}
	ses.AppendLog(entities.LogTravel, "Daylight. The party surfaces with %d gold after %d rooms and %d turns below.",
		ses.LootCarried, ses.RoomsExplored, ses.Turn)

	s.logger.Info("party surfaced",
		zap.String("session_id", ses.ID),
		zap.Int("gold", ses.LootCarried),
		zap.Int("rooms", ses.RoomsExplored),
		zap.Int("turns", ses.Turn))

	ses.LootCarried = 0
	ses.Turn = 0
	ses.PendingReturn = false
	ses.ReturnTurnsLeft = 0
	ses.SearchedRoom = false
	ses.MonstersAlerted = false
	return nil
}

// AvailableActions lists what the session can legally do right now
func (s *service) AvailableActions(ctx context.Context, sessionID string) ([]ActionInfo, error) {
	ses, err := s.repository.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	switch ses.State {
	case entities.SessionStateIdle:
		actions := []ActionInfo{
			{Command: "explore", Description: "push on into the next room"},
			{Command: "rest", Description: "take a breather and eat"},
			{Command: "return", Description: "head back to the surface"},
		}
		if !ses.SearchedRoom {
			actions = append(actions, ActionInfo{Command: "search", Description: "comb the room for secrets"})
		}
		if ses.LootCarried > 0 {
			actions = append(actions, ActionInfo{Command: "drop", Description: "abandon some gold"})
		}
		return actions, nil

	case entities.SessionStateObstacle:
		name := "obstacle"
		if ses.Obstacle != nil {
			name = ses.Obstacle.Name
		}
		return []ActionInfo{
			{Command: "force", Description: "muscle through the " + name},
			{Command: "careful", Description: "work the " + name + " slowly"},
			{Command: "avoid", Description: "back off and go around"},
		}, nil

	case entities.SessionStateEncounter:
		return []ActionInfo{
			{Command: "fight", Description: "weapons out"},
			{Command: "spell", Description: "let the casters loose"},
			{Command: "flee", Description: "run for it"},
			{Command: "parley", Description: "try words instead"},
		}, nil

	case entities.SessionStateSurprise:
		return []ActionInfo{
			{Command: "ambush", Description: "fall on them unseen"},
			{Command: "evade", Description: "slip away quietly"},
			{Command: "reveal", Description: "step out with open hands"},
		}, nil

	case entities.SessionStateLoot:
		return []ActionInfo{
			{Command: "loot", Description: "strip the fallen"},
		}, nil

	case entities.SessionStateReturning:
		actions := []ActionInfo{
			{Command: "continue", Description: "press on toward the surface"},
		}
		if ses.LootCarried > 0 {
			actions = append(actions, ActionInfo{Command: "drop", Description: "abandon some gold"})
		}
		return actions, nil

	default:
		return nil, dlverr.Internalf("unknown session state %q", ses.State)
	}
}

// load fetches the session and a fresh party snapshot. Snapshot reads
// happen before any mutation so collaborator failures leave the engine
// untouched.
func (s *service) load(ctx context.Context, sessionID string) (*entities.DungeonSession, *entities.PartySnapshot, error) {
	if sessionID == "" {
		return nil, nil, dlverr.InvalidArgument("session ID cannot be empty")
	}

	ses, err := s.repository.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	party, err := s.roster.Snapshot(ctx)
	if err != nil {
		return nil, nil, err
	}
	return ses, party, nil
}

// advanceTurns moves dungeon time forward: campaign clock, torch burn,
// the 24-turn meal, and (when enabled) the even-turn wandering check.
// Returns whether a wandering encounter is due.
func (s *service) advanceTurns(ctx context.Context, ses *entities.DungeonSession, turns int, checkWandering bool) (bool, error) {
	if turns <= 0 {
		return false, nil
	}
	if err := s.clock.Advance(ctx, turns); err != nil {
		return false, err
	}

	wandering := false
	if checkWandering && ses.MonstersAlerted {
		// The racket from last turn draws one extra check right away.
		ses.MonstersAlerted = false
		hit, err := s.wanderingCheck()
		if err != nil {
			return false, err
		}
		wandering = hit
	}

	for i := 0; i < turns; i++ {
		ses.Turn++
		s.burnLight(ses)
		if ses.Turn%entities.TurnsPerMeal == 0 {
			s.eatRation(ses)
		}
		if checkWandering && !wandering && ses.Turn%2 == 0 {
			hit, err := s.wanderingCheck()
			if err != nil {
				return false, err
			}
			wandering = hit
		}
	}
	return wandering, nil
}

func (s *service) wanderingCheck() (bool, error) {
	roll, err := s.roller.RollDie(6)
	if err != nil {
		return false, err
	}
	return roll <= rulebook.WanderingChance, nil
}

// resolveWandering builds the due wandering encounter, but only if the
// action left the session idle; a room's own trouble takes precedence.
func (s *service) resolveWandering(ctx context.Context, ses *entities.DungeonSession, party *entities.PartySnapshot, due bool) error {
	if !due || !ses.IsIdle() {
		return nil
	}

	ses.AppendLog(entities.LogCombat, "Footsteps echo up the corridor. Something found the party.")
	build, err := s.rooms.BuildEncounter(ctx, ses, party, room.BuildOptions{Wandering: true})
	if err != nil {
		return err
	}
	return s.applyDamage(ctx, build.MemberDamage)
}

// burnLight ticks the burning torch down one turn, lighting a spare the
// moment it dies
func (s *service) burnLight(ses *entities.DungeonSession) {
	if ses.LightRemaining <= 0 {
		return
	}
	ses.LightRemaining--
	if ses.LightRemaining > 0 {
		return
	}

	if ses.LightUnits > 0 {
		ses.LightUnits--
		ses.LightRemaining = entities.TurnsPerLightUnit
		ses.AppendLog(entities.LogResource, "A fresh torch sputters to life. %d spare left.", ses.LightUnits)
	} else {
		ses.AppendLog(entities.LogResource, "The last torch gutters out. Darkness presses in.")
	}
}

func (s *service) eatRation(ses *entities.DungeonSession) {
	if ses.Rations > 0 {
		ses.Rations--
		ses.AppendLog(entities.LogResource, "The party eats on the move. %d rations left.", ses.Rations)
	} else {
		ses.AppendLog(entities.LogResource, "Stomachs growl; the food ran out.")
	}
}

// applyDamage writes combat hits back to the roster, one member at a
// time
func (s *service) applyDamage(ctx context.Context, hits []entities.MemberDamage) error {
	for _, hit := range hits {
		if err := s.roster.ApplyDamage(ctx, hit.MemberID, hit.Amount); err != nil {
			return err
		}
	}
	return nil
}

// finish is the single persist point: the idle-with-pending-return
// conversion happens here, then the session is stored and returned.
func (s *service) finish(ctx context.Context, ses *entities.DungeonSession) (*entities.DungeonSession, error) {
	if ses.State == entities.SessionStateIdle && ses.PendingReturn {
		ses.State = entities.SessionStateReturning
		ses.AppendLog(entities.LogTravel, "The way up is clear again; the party can press on when ready.")
	}

	if err := s.repository.Update(ctx, ses); err != nil {
		return nil, err
	}
	return ses, nil
}
