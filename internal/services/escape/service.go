package escape

//go:generate mockgen -destination=mock/mock_service.go -package=mockescape -source=service.go

import (
	"context"
	"math"

	"github.com/KirkDiggler/delve-engine/internal/dice"
	dlverr "github.com/KirkDiggler/delve-engine/internal/errors"
)

// Service plans the climb back to the surface and rolls the wandering
// checks the trip provokes
type Service interface {
	// PlanReturn sizes the trip out from depth and the party's movement
	// multiplier. A multiplier of zero means the party cannot move at
	// all and is an invalid argument.
	PlanReturn(depth int, movementMultiplier float64) (*ReturnPlan, error)

	// RollChecks rolls the plan's wandering checks in one batch. The
	// first 1-in-6 success interrupts the return at the halfway point
	// and the remaining checks are not rolled.
	RollChecks(ctx context.Context, plan *ReturnPlan) (*ReturnResult, error)
}

// ReturnPlan is one sized-up trip to the surface
type ReturnPlan struct {
	Depth       int
	Multiplier  float64
	BaseTurns   int
	TravelTurns int
	Checks      int
}

// ReturnResult is how the trip went
type ReturnResult struct {
	Interrupted    bool
	TurnsTraveled  int // turns covered before the interruption, or the whole trip
	TurnsRemaining int // what is left to walk after an interruption
}

// service implements the Service interface
type service struct {
	roller dice.Roller
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Roller dice.Roller // Required
}

// NewService creates a new escape service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Roller == nil {
		panic("dice roller is required")
	}

	return &service{roller: cfg.Roller}
}

const turnsPerDepthLevel = 3

// PlanReturn sizes the trip out from depth and encumbrance
func (s *service) PlanReturn(depth int, movementMultiplier float64) (*ReturnPlan, error) {
	if depth < 1 {
		return nil, dlverr.InvalidArgumentf("depth must be at least 1, got %d", depth)
	}
	if movementMultiplier <= 0 {
		return nil, dlverr.InvalidArgument("the party cannot move under that much weight")
	}

	base := depth * turnsPerDepthLevel
	travel := ceilDiv(base, movementMultiplier)

	return &ReturnPlan{
		Depth:       depth,
		Multiplier:  movementMultiplier,
		BaseTurns:   base,
		TravelTurns: travel,
		Checks:      (travel + 1) / 2,
	}, nil
}

// RollChecks rolls the plan's wandering checks in one batch
func (s *service) RollChecks(ctx context.Context, plan *ReturnPlan) (*ReturnResult, error) {
	if plan == nil {
		return nil, dlverr.InvalidArgument("plan cannot be nil")
	}

	for i := 0; i < plan.Checks; i++ {
		roll, err := s.roller.RollDie(6)
		if err != nil {
			return nil, err
		}
		if roll == 1 {
			traveled := (plan.TravelTurns + 1) / 2
			return &ReturnResult{
				Interrupted:    true,
				TurnsTraveled:  traveled,
				TurnsRemaining: plan.TravelTurns - traveled,
			}, nil
		}
	}

	return &ReturnResult{TurnsTraveled: plan.TravelTurns}, nil
}

// ceilDiv divides turns by the multiplier, rounding up. The epsilon
// keeps the 2/3 band from creeping over the next integer.
func ceilDiv(turns int, multiplier float64) int {
	return int(math.Ceil(float64(turns)/multiplier - 1e-9))
}
