package treasure

//go:generate mockgen -destination=mock/mock_service.go -package=mocktreasure -source=service.go

import (
	"context"
	"math"

	"github.com/KirkDiggler/delve-engine/internal/dice"
	"github.com/KirkDiggler/delve-engine/internal/entities"
	dlverr "github.com/KirkDiggler/delve-engine/internal/errors"
	"github.com/KirkDiggler/delve-engine/internal/rulebook"
)

// Service generates treasure hauls and computes experience awards
type Service interface {
	// GenerateTreasure rolls the table for a treasure type. A lair haul
	// rolls every slot; carried treasure rolls only the coin slots.
	GenerateTreasure(ctx context.Context, t entities.TreasureType, lair bool) (*entities.TreasureResult, error)

	// XPForEncounter values a defeated group from its hit dice, special
	// abilities and headcount.
	XPForEncounter(enc *entities.EncounterState) int

	// DivideXP splits a total evenly among living members, flooring the
	// share. Nobody living means nobody collects.
	DivideXP(total, living int) int
}

// service implements the Service interface
type service struct {
	roller dice.Roller
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Roller dice.Roller // Required
}

// NewService creates a new treasure service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Roller == nil {
		panic("dice roller is required")
	}

	return &service{roller: cfg.Roller}
}

// GenerateTreasure rolls the table for a treasure type
func (s *service) GenerateTreasure(ctx context.Context, t entities.TreasureType, lair bool) (*entities.TreasureResult, error) {
	table, ok := rulebook.Treasure(t)
	if !ok {
		if t != entities.TreasureNone {
			return nil, dlverr.InvalidArgumentf("unknown treasure type %q", t)
		}
		// Nothing hoarded, but pockets are pockets.
		table = rulebook.PocketChange
	}

	result := &entities.TreasureResult{}

	coinSlots := []struct {
		slot rulebook.TreasureSlot
		out  *int
	}{
		{table.Copper, &result.Copper},
		{table.Silver, &result.Silver},
		{table.Electrum, &result.Electrum},
		{table.Gold, &result.Gold},
		{table.Platinum, &result.Platinum},
	}
	for _, c := range coinSlots {
		amount, err := s.rollSlot(c.slot)
		if err != nil {
			return nil, err
		}
		*c.out = amount
	}

	if !lair {
		return result, nil
	}

	gemCount, err := s.rollSlot(table.Gems)
	if err != nil {
		return nil, err
	}
	for i := 0; i < gemCount; i++ {
		pct, err := s.roller.Percent()
		if err != nil {
			return nil, err
		}
		result.Gems = append(result.Gems, rulebook.GemValueFor(pct))
	}

	jewelryCount, err := s.rollSlot(table.Jewelry)
	if err != nil {
		return nil, err
	}
	for i := 0; i < jewelryCount; i++ {
		value, err := rulebook.JewelryValue.Roll(s.roller)
		if err != nil {
			return nil, err
		}
		result.Jewelry = append(result.Jewelry, value)
	}

	magicCount, err := s.rollSlot(table.Magic)
	if err != nil {
		return nil, err
	}
	for i := 0; i < magicCount; i++ {
		pick, err := s.roller.RollDie(len(rulebook.MagicItemNames))
		if err != nil {
			return nil, err
		}
		result.MagicItems = append(result.MagicItems, rulebook.MagicItemNames[pick-1])
	}

	return result, nil
}

// rollSlot rolls one table line: the percent chance first, the amount
// formula only on success. Empty slots consume no dice.
func (s *service) rollSlot(slot rulebook.TreasureSlot) (int, error) {
	if slot.Chance <= 0 {
		return 0, nil
	}

	pct, err := s.roller.Percent()
	if err != nil {
		return 0, err
	}
	if pct > slot.Chance {
		return 0, nil
	}

	amount, err := slot.Formula.Roll(s.roller)
	if err != nil {
		return 0, err
	}
	if amount < 0 {
		amount = 0
	}
	return amount, nil
}

// XPForEncounter values a defeated group
func (s *service) XPForEncounter(enc *entities.EncounterState) int {
	if enc == nil || enc.Quantity <= 0 {
		return 0
	}

	base := rulebook.XPForHitDice(enc.HitDice)
	total := base * rulebook.XPMultiplier(enc.Special) * enc.Quantity
	if total < 1 {
		total = 1
	}
	return total
}

// DivideXP splits a total evenly among living members
func (s *service) DivideXP(total, living int) int {
	if living <= 0 || total <= 0 {
		return 0
	}
	return int(math.Floor(float64(total) / float64(living)))
}
