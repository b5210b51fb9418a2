package delve

//go:generate mockgen -destination=mock/mock_collaborators.go -package=mockdelve -source=collaborators.go

import (
	"context"

	"github.com/KirkDiggler/delve-engine/internal/entities"
)

// Roster is the campaign's view of the party. The engine reads a
// snapshot before acting and writes damage and expenditure back through
// it; it never owns member state.
type Roster interface {
	// Snapshot returns the party as it stands right now
	Snapshot(ctx context.Context) (*entities.PartySnapshot, error)

	// ApplyDamage records damage against one member
	ApplyDamage(ctx context.Context, memberID string, damage int) error

	// SpendSpellSlot burns one of a member's spell slots
	SpendSpellSlot(ctx context.Context, memberID string) error

	// MovementMultiplier maps carried gold weight to a speed factor in
	// {0, 0.5, 2/3, 1}; zero means the party cannot move
	MovementMultiplier(ctx context.Context, carriedGold int) (float64, error)
}

// Clock advances campaign time, in ten-minute dungeon turns
type Clock interface {
	Advance(ctx context.Context, turns int) error
}

// Ledger banks recovered loot once the party surfaces
type Ledger interface {
	Deposit(ctx context.Context, gold int, memo string) error
}

// XPSink receives per-member experience awards
type XPSink interface {
	Award(ctx context.Context, perMember int, memberIDs []string) error
}
