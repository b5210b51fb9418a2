package obstacle

//go:generate mockgen -destination=mock/mock_service.go -package=mockobstacle -source=service.go

import (
	"context"

	"github.com/KirkDiggler/delve-engine/internal/dice"
	"github.com/KirkDiggler/delve-engine/internal/entities"
	dlverr "github.com/KirkDiggler/delve-engine/internal/errors"
	"github.com/KirkDiggler/delve-engine/internal/rulebook"
)

// Service resolves the obstacle blocking the party
type Service interface {
	// Resolve applies one strategy to the live obstacle. Calls outside
	// the obstacle state, or with an unknown strategy, are silent no-ops.
	Resolve(ctx context.Context, ses *entities.DungeonSession, party *entities.PartySnapshot, strategy entities.Strategy) (*Result, error)
}

// Result reports one resolution attempt
type Result struct {
	Outcome        entities.ObstacleOutcome
	Resolved       bool
	TurnCost       int
	MemberDamage   []entities.MemberDamage // for roster writeback
	LightUnitsLost int
	Alerted        bool
	NoOp           bool
}

// service implements the Service interface
type service struct {
	roller dice.Roller
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Roller dice.Roller // Required
}

// NewService creates a new obstacle service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Roller == nil {
		panic("dice roller is required")
	}

	return &service{roller: cfg.Roller}
}

// Resolve applies one strategy to the live obstacle
func (s *service) Resolve(ctx context.Context, ses *entities.DungeonSession, party *entities.PartySnapshot, strategy entities.Strategy) (*Result, error) {
	if ses == nil {
		return nil, dlverr.InvalidArgument("session cannot be nil")
	}
	if party == nil {
		return nil, dlverr.InvalidArgument("party cannot be nil")
	}

	if ses.State != entities.SessionStateObstacle || ses.Obstacle == nil || ses.Obstacle.Resolved {
		return &Result{NoOp: true}, nil
	}

	switch strategy {
	case entities.StrategyForce, entities.StrategyCareful, entities.StrategyAvoid:
	default:
		return &Result{NoOp: true}, nil
	}

	def, ok := rulebook.Obstacle(ses.Obstacle.ID)
	if !ok {
		return nil, dlverr.Internalf("unknown obstacle %q", ses.Obstacle.ID)
	}

	if strategy == entities.StrategyAvoid {
		ses.AppendLog(entities.LogObstacle, "The party backs away from the %s and picks another way around.", def.Name)
		return s.finish(ses, &Result{}, entities.OutcomeAvoided, def.TurnCost), nil
	}

	switch def.Category {
	case entities.ObstacleCategoryDoor:
		return s.resolveDoor(ses, party, def, strategy)
	case entities.ObstacleCategoryTrap:
		return s.resolveTrap(ses, party, def, strategy)
	default:
		return s.resolveHazard(ses, party, def, strategy)
	}
}

// finish marks the obstacle resolved and clears it off the session
func (s *service) finish(ses *entities.DungeonSession, result *Result, outcome entities.ObstacleOutcome, turnCost int) *Result {
	ses.Obstacle.Resolved = true
	ses.Obstacle.Outcome = outcome
	ses.Obstacle = nil
	ses.State = entities.SessionStateIdle

	result.Outcome = outcome
	result.Resolved = true
	result.TurnCost = maxTurns(1, turnCost)
	return result
}

func (s *service) resolveDoor(ses *entities.DungeonSession, party *entities.PartySnapshot, def rulebook.ObstacleDefinition, strategy entities.Strategy) (*Result, error) {
	if def.Secret {
		// A found secret door just needs its counterweight tripped.
		ses.Obstacle.Attempts++
		ses.AppendLog(entities.LogObstacle, "The hidden panel pivots aside.")
		cost := def.TurnCost
		if strategy == entities.StrategyCareful {
			cost = def.CarefulTurnCost
		}
		return s.finish(ses, &Result{}, entities.OutcomeCrossed, cost), nil
	}

	if def.Locked && strategy == entities.StrategyCareful {
		return s.pickLock(ses, party, def)
	}

	// Stuck doors, and locked doors being broken down, come down to
	// shoulders: 1d6 + best strength modifier against the force target,
	// a natural 6 always opening.
	ses.Obstacle.Attempts++
	cost := def.TurnCost
	if strategy == entities.StrategyCareful {
		cost = def.CarefulTurnCost
	}

	roll, err := s.roller.RollDie(6)
	if err != nil {
		return nil, err
	}
	opened := roll == 6 || roll+party.BestStrengthModifier() >= def.ForceTarget

	result := &Result{}

	// Battering a locked door is loud whether or not it gives.
	if def.Locked && strategy == entities.StrategyForce {
		result.Alerted = true
	}

	if opened {
		ses.AppendLog(entities.LogObstacle, "The %s gives way with a crack.", def.Name)
		if result.Alerted {
			ses.MonstersAlerted = true
			ses.AppendLog(entities.LogObstacle, "The noise rolls down the corridors.")
		}
		return s.finish(ses, result, entities.OutcomeForced, cost), nil
	}

	ses.AppendLog(entities.LogObstacle, "The %s holds fast.", def.Name)
	if def.AlertsOnFail && strategy == entities.StrategyForce {
		result.Alerted = true
	}
	if result.Alerted {
		ses.MonstersAlerted = true
		ses.AppendLog(entities.LogObstacle, "The noise rolls down the corridors.")
	}
	result.TurnCost = maxTurns(1, cost)
	result.Outcome = entities.OutcomePending
	return result, nil
}

// pickLock is the one careful attempt a locked door allows
func (s *service) pickLock(ses *entities.DungeonSession, party *entities.PartySnapshot, def rulebook.ObstacleDefinition) (*Result, error) {
	if ses.Obstacle.CarefulSpent {
		return &Result{NoOp: true}, nil
	}

	member := party.BestLockMember()
	if member == nil {
		return &Result{NoOp: true}, nil
	}

	ses.Obstacle.Attempts++
	roll, err := s.roller.Percent()
	if err != nil {
		return nil, err
	}

	if roll <= member.LockSkill {
		ses.AppendLog(entities.LogObstacle, "%s works the lock open.", member.Name)
		return s.finish(ses, &Result{}, entities.OutcomePicked, def.CarefulTurnCost), nil
	}

	ses.Obstacle.CarefulSpent = true
	ses.AppendLog(entities.LogObstacle, "%s gives up on the lock; it will not be picked.", member.Name)
	return &Result{
		Outcome:  entities.OutcomePending,
		TurnCost: maxTurns(1, def.CarefulTurnCost),
	}, nil
}

func (s *service) resolveTrap(ses *entities.DungeonSession, party *entities.PartySnapshot, def rulebook.ObstacleDefinition, strategy entities.Strategy) (*Result, error) {
	if strategy == entities.StrategyCareful {
		member := party.BestTrapMember()
		if member == nil {
			return &Result{NoOp: true}, nil
		}

		ses.Obstacle.Attempts++
		roll, err := s.roller.Percent()
		if err != nil {
			return nil, err
		}
		if roll <= member.TrapSkill {
			ses.AppendLog(entities.LogObstacle, "%s picks the %s apart.", member.Name, def.Name)
			return s.finish(ses, &Result{}, entities.OutcomeDisarmed, def.CarefulTurnCost), nil
		}

		ses.AppendLog(entities.LogObstacle, "%s's hand slips.", member.Name)
		return s.springTrap(ses, def, member, def.CarefulTurnCost)
	}

	// Forcing through springs it on whoever is in front.
	living := party.Living()
	if len(living) == 0 {
		return &Result{NoOp: true}, nil
	}
	ses.Obstacle.Attempts++
	pick, err := s.roller.RollDie(len(living))
	if err != nil {
		return nil, err
	}
	return s.springTrap(ses, def, living[pick-1], def.TurnCost)
}

// springTrap rolls trap damage against one member with a saving throw
func (s *service) springTrap(ses *entities.DungeonSession, def rulebook.ObstacleDefinition, member *entities.Member, turnCost int) (*Result, error) {
	damage, err := def.Damage.Roll(s.roller)
	if err != nil {
		return nil, err
	}

	save, err := s.roller.RollDie(20)
	if err != nil {
		return nil, err
	}
	if save >= rulebook.SaveTarget(def.Save) {
		if def.NegateOnSave {
			damage = 0
		} else {
			damage /= 2
		}
	}

	result := &Result{}
	if damage > 0 {
		result.MemberDamage = []entities.MemberDamage{{MemberID: member.ID, Amount: damage}}
		ses.AppendLog(entities.LogObstacle, "The %s catches %s for %d.", def.Name, member.Name, damage)
	} else {
		ses.AppendLog(entities.LogObstacle, "%s springs the %s but comes away unhurt.", member.Name, def.Name)
	}
	return s.finish(ses, result, entities.OutcomeTriggered, turnCost), nil
}

func (s *service) resolveHazard(ses *entities.DungeonSession, party *entities.PartySnapshot, def rulebook.ObstacleDefinition, strategy entities.Strategy) (*Result, error) {
	ses.Obstacle.Attempts++
	careful := strategy == entities.StrategyCareful
	cost := def.TurnCost
	if careful {
		cost = def.CarefulTurnCost
	}

	result := &Result{}

	switch {
	case def.DexCheck:
		// Everyone crosses; the clumsy pay for it.
		damageFormula := def.Damage
		if careful && !def.CarefulDamage.IsZero() {
			damageFormula = def.CarefulDamage
		}
		for _, member := range party.Living() {
			natural, err := s.roller.RollDie(20)
			if err != nil {
				return nil, err
			}
			score := member.Abilities.Dexterity
			if careful {
				score += def.RopeBonus
			}
			if rulebook.AbilityCheckPasses(natural, score) {
				continue
			}

			damage, err := damageFormula.Roll(s.roller)
			if err != nil {
				return nil, err
			}
			if damage > 0 {
				result.MemberDamage = append(result.MemberDamage, entities.MemberDamage{MemberID: member.ID, Amount: damage})
				ses.AppendLog(entities.LogObstacle, "%s slips crossing the %s and takes %d.", member.Name, def.Name, damage)
			}
		}
		ses.AppendLog(entities.LogObstacle, "The party gets across the %s.", def.Name)

	case def.LightRisk > 0:
		if !careful {
			lost := 0
			for i := 0; i < ses.LightUnits; i++ {
				roll, err := s.roller.RollDie(6)
				if err != nil {
					return nil, err
				}
				if roll <= def.LightRisk {
					lost++
				}
			}
			if lost > 0 {
				ses.LightUnits -= lost
				result.LightUnitsLost = lost
				ses.AppendLog(entities.LogObstacle, "The water ruins %d of the party's torches.", lost)
			}
		}
		ses.AppendLog(entities.LogObstacle, "The party wades the %s.", def.Name)

	case def.CollapseRisk > 0:
		if !careful {
			roll, err := s.roller.RollDie(6)
			if err != nil {
				return nil, err
			}
			if roll <= def.CollapseRisk {
				living := party.Living()
				if len(living) > 0 {
					pick, err := s.roller.RollDie(len(living))
					if err != nil {
						return nil, err
					}
					member := living[pick-1]
					damage, err := def.Damage.Roll(s.roller)
					if err != nil {
						return nil, err
					}
					if damage > 0 {
						result.MemberDamage = append(result.MemberDamage, entities.MemberDamage{MemberID: member.ID, Amount: damage})
						ses.AppendLog(entities.LogObstacle, "Rubble comes down on %s for %d.", member.Name, damage)
					}
				}
			}
		}
		ses.AppendLog(entities.LogObstacle, "The party digs through the %s.", def.Name)
	}

	return s.finish(ses, result, entities.OutcomeCrossed, cost), nil
}

func maxTurns(floor, cost int) int {
	if cost < floor {
		return floor
	}
	return cost
}
