package sessions

//go:generate mockgen -destination=mock/mock_repository.go -package=mocksessions -source=repository.go

import (
	"context"

	"github.com/KirkDiggler/delve-engine/internal/entities"
)

// Repository defines the interface for dungeon session storage
type Repository interface {
	// Create stores a new session. Returns an ALREADY_EXISTS error if a
	// session with the same ID is already stored.
	Create(ctx context.Context, session *entities.DungeonSession) error

	// Get retrieves a session by ID. Returns a NOT_FOUND error if no
	// session with that ID exists.
	Get(ctx context.Context, id string) (*entities.DungeonSession, error)

	// Update overwrites an existing session. Returns a NOT_FOUND error
	// if the session was never created.
	Update(ctx context.Context, session *entities.DungeonSession) error

	// Delete removes a session and drops it from the active index.
	Delete(ctx context.Context, id string) error

	// ListActive retrieves all stored sessions that have not been ended.
	ListActive(ctx context.Context) ([]*entities.DungeonSession, error)
}
