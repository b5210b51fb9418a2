package room

//go:generate mockgen -destination=mock/mock_service.go -package=mockroom -source=service.go

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/KirkDiggler/delve-engine/internal/dice"
	"github.com/KirkDiggler/delve-engine/internal/entities"
	dlverr "github.com/KirkDiggler/delve-engine/internal/errors"
	"github.com/KirkDiggler/delve-engine/internal/rulebook"
)

// hpPerHitDie is the average of a d8 hit die, used to pool monster HP
const hpPerHitDie = 4.5

// Service resolves freshly explored rooms and builds encounters
type Service interface {
	// ResolveRoom rolls the content of a new room and moves the session
	// into whatever state the content demands
	ResolveRoom(ctx context.Context, ses *entities.DungeonSession, party *entities.PartySnapshot) (*RoomResult, error)

	// BuildEncounter rolls up a monster group and places it in the
	// session. Wandering groups use the closer distance table and never
	// guard a lair.
	BuildEncounter(ctx context.Context, ses *entities.DungeonSession, party *entities.PartySnapshot, opts BuildOptions) (*BuildResult, error)
}

// BuildOptions selects the encounter variant
type BuildOptions struct {
	Wandering bool
	Lair      bool
}

// RoomResult reports what exploring a room turned up
type RoomResult struct {
	Content      rulebook.RoomContent
	Obstacle     *entities.ObstacleState
	Encounter    *entities.EncounterState
	MemberDamage []entities.MemberDamage // uncontested-round hits, for roster writeback
	Cleared      bool                    // the encounter ended peacefully on the spot
}

// BuildResult reports a freshly built encounter
type BuildResult struct {
	Encounter    *entities.EncounterState
	MemberDamage []entities.MemberDamage
	Cleared      bool
}

// service implements the Service interface
type service struct {
	roller dice.Roller
	random *rand.Rand
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Roller dice.Roller // Required
}

// NewService creates a new room service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Roller == nil {
		panic("dice roller is required")
	}

	return &service{
		roller: cfg.Roller,
		random: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ResolveRoom rolls the content of a new room and moves the session
// into whatever state the content demands
func (s *service) ResolveRoom(ctx context.Context, ses *entities.DungeonSession, party *entities.PartySnapshot) (*RoomResult, error) {
	if ses == nil {
		return nil, dlverr.InvalidArgument("session cannot be nil")
	}
	if party == nil {
		return nil, dlverr.InvalidArgument("party cannot be nil")
	}

	roll, err := s.roller.Percent()
	if err != nil {
		return nil, err
	}

	ses.RoomsExplored++
	ses.SearchedRoom = false

	switch rulebook.RoomContentFor(roll) {
	case rulebook.RoomEmpty:
		flavors := rulebook.EmptyRoomFlavors()
		ses.AppendLog(entities.LogRoom, "%s", flavors[s.random.Intn(len(flavors))])
		return &RoomResult{Content: rulebook.RoomEmpty}, nil

	case rulebook.RoomObstacle:
		obstacle, def, err := s.pickObstacle()
		if err != nil {
			return nil, err
		}
		ses.Obstacle = obstacle
		ses.State = entities.SessionStateObstacle
		ses.AppendLog(entities.LogObstacle, "%s", def.Description)
		return &RoomResult{Content: rulebook.RoomObstacle, Obstacle: obstacle}, nil

	default:
		build, err := s.BuildEncounter(ctx, ses, party, BuildOptions{Lair: ses.LairMode})
		if err != nil {
			return nil, err
		}
		return &RoomResult{
			Content:      rulebook.RoomEncounter,
			Encounter:    build.Encounter,
			MemberDamage: build.MemberDamage,
			Cleared:      build.Cleared,
		}, nil
	}
}

// pickObstacle draws one obstacle from the catalog: d% for the
// category band, then a uniform pick within it
func (s *service) pickObstacle() (*entities.ObstacleState, rulebook.ObstacleDefinition, error) {
	roll, err := s.roller.Percent()
	if err != nil {
		return nil, rulebook.ObstacleDefinition{}, err
	}

	defs := rulebook.ObstaclesByCategory(rulebook.ObstacleCategoryFor(roll))
	pick, err := s.roller.RollDie(len(defs))
	if err != nil {
		return nil, rulebook.ObstacleDefinition{}, err
	}

	def := defs[pick-1]
	state := &entities.ObstacleState{
		ID:       def.ID,
		Category: def.Category,
		Name:     def.Name,
		Outcome:  entities.OutcomePending,
	}
	return state, def, nil
}

// BuildEncounter rolls up a monster group and places it in the session.
// Roll order: monster pick, quantity, party surprise, monster surprise,
// distance, reaction.
func (s *service) BuildEncounter(ctx context.Context, ses *entities.DungeonSession, party *entities.PartySnapshot, opts BuildOptions) (*BuildResult, error) {
	if ses == nil {
		return nil, dlverr.InvalidArgument("session cannot be nil")
	}
	if party == nil {
		return nil, dlverr.InvalidArgument("party cannot be nil")
	}

	candidates := rulebook.MonstersForDepth(ses.Depth)
	pick, err := s.roller.RollDie(len(candidates))
	if err != nil {
		return nil, err
	}
	def := candidates[pick-1]

	qty, err := def.NumberAppearing.Roll(s.roller)
	if err != nil {
		return nil, err
	}
	if qty < 1 {
		qty = 1
	}

	pool := int(math.Round(def.HitDice * hpPerHitDie * float64(qty)))
	if pool < 1 {
		pool = 1
	}

	partySurprised, err := s.rollSurprise()
	if err != nil {
		return nil, err
	}
	monstersSurprised, err := s.rollSurprise()
	if err != nil {
		return nil, err
	}

	distance, err := s.rollDistance(ses, opts, partySurprised, monstersSurprised)
	if err != nil {
		return nil, err
	}

	reaction, err := s.roller.Roll(2, 6, 0)
	if err != nil {
		return nil, err
	}
	disposition := rulebook.ReactionFor(reaction.Total)

	enc := &entities.EncounterState{
		MonsterID:         def.ID,
		Name:              def.Name,
		Quantity:          qty,
		HitDice:           def.HitDice,
		ArmorClass:        def.ArmorClass,
		Damage:            def.Damage,
		MoraleScore:       def.MoraleScore,
		MaxPoolHP:         pool,
		PoolHP:            pool,
		Disposition:       disposition,
		DistanceYards:     distance,
		PartySurprised:    partySurprised,
		MonstersSurprised: monstersSurprised,
		Wandering:         opts.Wandering,
		Lair:              opts.Lair && !opts.Wandering,
		TreasureType:      def.TreasureType,
		Special:           def.Special,
	}

	openers := rulebook.EncounterOpeners()
	ses.AppendLog(entities.LogCombat, "%s", openers[s.random.Intn(len(openers))])
	ses.AppendLog(entities.LogCombat, "%s ×%d, %d yards off.", def.Name, qty, distance)

	result := &BuildResult{Encounter: enc}

	switch {
	case disposition == entities.DispositionFriendly:
		ses.AppendLog(entities.LogCombat, "The %s make no move to fight; greetings pass and everyone keeps their distance.", def.Name)
		ses.State = entities.SessionStateIdle
		result.Cleared = true

	case monstersSurprised && !partySurprised:
		ses.Encounter = enc
		ses.State = entities.SessionStateSurprise
		ses.AppendLog(entities.LogCombat, "They haven't noticed the party.")

	case partySurprised && !monstersSurprised && hostile(disposition):
		ses.AppendLog(entities.LogCombat, "They're on the party before anyone can react!")
		damage, err := s.uncontestedRound(ses, enc, party)
		if err != nil {
			return nil, err
		}
		result.MemberDamage = damage
		ses.Encounter = enc
		ses.State = entities.SessionStateEncounter

	default:
		ses.Encounter = enc
		ses.State = entities.SessionStateEncounter
	}

	return result, nil
}

func hostile(d entities.Disposition) bool {
	return d == entities.DispositionHostile || d == entities.DispositionAggressive
}

func (s *service) rollSurprise() (bool, error) {
	roll, err := s.roller.RollDie(6)
	if err != nil {
		return false, err
	}
	return roll <= rulebook.SurpriseChance, nil
}

// rollDistance picks the distance in yards. Surprise overrides the
// lighting tables; a party surprised alone meets the monsters at half
// the rolled distance.
func (s *service) rollDistance(ses *entities.DungeonSession, opts BuildOptions, partySurprised, monstersSurprised bool) (int, error) {
	if partySurprised || monstersSurprised {
		yards, err := rulebook.SurpriseDistance.Roll(s.roller)
		if err != nil {
			return 0, err
		}
		if partySurprised && !monstersSurprised {
			yards /= 2
		}
		return yards, nil
	}

	table := rulebook.EncounterDistance
	if opts.Wandering {
		table = rulebook.WanderingDistance
	}
	return table[ses.Lighting()].Roll(s.roller)
}

// uncontestedRound gives the monsters one free attack phase against a
// surprised party. Hits are reported for roster writeback, never applied
// to the snapshot.
func (s *service) uncontestedRound(ses *entities.DungeonSession, enc *entities.EncounterState, party *entities.PartySnapshot) ([]entities.MemberDamage, error) {
	effective := make(map[string]int)
	for _, m := range party.Members {
		effective[m.ID] = m.CurrentHP
	}

	threshold := rulebook.MonsterAttackThreshold(enc.HitDice)
	var out []entities.MemberDamage
	for i := 0; i < enc.ActiveMonsters(); i++ {
		var targets []*entities.Member
		for _, m := range party.Members {
			if effective[m.ID] > 0 {
				targets = append(targets, m)
			}
		}
		if len(targets) == 0 {
			break
		}

		pick, err := s.roller.RollDie(len(targets))
		if err != nil {
			return nil, err
		}
		target := targets[pick-1]

		natural, err := s.roller.RollDie(20)
		if err != nil {
			return nil, err
		}
		if !rulebook.HitsThreshold(natural, threshold, target.ArmorClass) {
			continue
		}

		damage, err := enc.Damage.Roll(s.roller)
		if err != nil {
			return nil, err
		}
		if damage < 1 {
			damage = 1
		}
		effective[target.ID] -= damage
		out = append(out, entities.MemberDamage{MemberID: target.ID, Amount: damage})
		ses.AppendLog(entities.LogCombat, "%s is hit for %d.", target.Name, damage)
	}
	return out, nil
}
