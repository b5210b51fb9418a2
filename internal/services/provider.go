package services

import (
	"go.uber.org/zap"

	"github.com/KirkDiggler/delve-engine/internal/adapters/campaign"
	"github.com/KirkDiggler/delve-engine/internal/dice"
	"github.com/KirkDiggler/delve-engine/internal/repositories/sessions"
	combatService "github.com/KirkDiggler/delve-engine/internal/services/combat"
	delveService "github.com/KirkDiggler/delve-engine/internal/services/delve"
	escapeService "github.com/KirkDiggler/delve-engine/internal/services/escape"
	obstacleService "github.com/KirkDiggler/delve-engine/internal/services/obstacle"
	roomService "github.com/KirkDiggler/delve-engine/internal/services/room"
	treasureService "github.com/KirkDiggler/delve-engine/internal/services/treasure"
)

// Provider holds all service instances
type Provider struct {
	DelveService    delveService.Service
	RoomService     roomService.Service
	ObstacleService obstacleService.Service
	CombatService   combatService.Service
	TreasureService treasureService.Service
	EscapeService   escapeService.Service
	Roller          dice.Roller
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	SessionRepository sessions.Repository // Optional - defaults to in-memory
	Roller            dice.Roller         // Optional - defaults to a seeded random roller
	Seed              int64               // Used when Roller is nil; zero seeds from the clock
	Roster            delveService.Roster // Optional - defaults to the stock campaign party
	Clock             delveService.Clock  // Optional - defaults to a campaign clock at 1000 AC
	Ledger            delveService.Ledger // Optional - defaults to a fresh campaign ledger
	XP                delveService.XPSink // Optional - defaults to the roster when it takes awards
	Logger            *zap.Logger         // Optional
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repository if none provided
	sessionRepo := cfg.SessionRepository
	if sessionRepo == nil {
		sessionRepo = sessions.NewInMemoryRepository()
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller(cfg.Seed)
	}

	roster := cfg.Roster
	if roster == nil {
		roster = campaign.NewRoster(campaign.DefaultParty())
	}

	clock := cfg.Clock
	if clock == nil {
		clock = campaign.NewClock(1000)
	}

	ledger := cfg.Ledger
	if ledger == nil {
		ledger = campaign.NewLedger()
	}

	xp := cfg.XP
	if xp == nil {
		sink, ok := roster.(delveService.XPSink)
		if !ok {
			panic("xp sink is required when the roster cannot take awards")
		}
		xp = sink
	}

	// Every resolver shares one roller so a seeded run stays reproducible
	roomSvc := roomService.NewService(&roomService.ServiceConfig{Roller: roller})
	obstacleSvc := obstacleService.NewService(&obstacleService.ServiceConfig{Roller: roller})
	combatSvc := combatService.NewService(&combatService.ServiceConfig{Roller: roller})
	treasureSvc := treasureService.NewService(&treasureService.ServiceConfig{Roller: roller})
	escapeSvc := escapeService.NewService(&escapeService.ServiceConfig{Roller: roller})

	delveSvc := delveService.NewService(&delveService.ServiceConfig{
		Repository: sessionRepo,
		Rooms:      roomSvc,
		Obstacles:  obstacleSvc,
		Combat:     combatSvc,
		Treasure:   treasureSvc,
		Escape:     escapeSvc,
		Roller:     roller,
		Roster:     roster,
		Clock:      clock,
		Ledger:     ledger,
		XP:         xp,
		Logger:     cfg.Logger,
	})

	return &Provider{
		DelveService:    delveSvc,
		RoomService:     roomSvc,
		ObstacleService: obstacleSvc,
		CombatService:   combatSvc,
		TreasureService: treasureSvc,
		EscapeService:   escapeSvc,
		Roller:          roller,
	}
}
