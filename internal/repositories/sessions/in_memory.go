package sessions

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/KirkDiggler/delve-engine/internal/entities"
	dlverr "github.com/KirkDiggler/delve-engine/internal/errors"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]*entities.DungeonSession
}

// NewInMemoryRepository creates a new in-memory session repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		sessions: make(map[string]*entities.DungeonSession),
	}
}

// cloneSession deep copies a session through JSON so callers cannot
// mutate stored state through shared slices and maps.
func cloneSession(session *entities.DungeonSession) (*entities.DungeonSession, error) {
	data, err := json.Marshal(session)
	if err != nil {
		return nil, dlverr.Wrapf(err, "failed to clone session %s", session.ID)
	}

	var clone entities.DungeonSession
	if err := json.Unmarshal(data, &clone); err != nil {
		return nil, dlverr.Wrapf(err, "failed to clone session %s", session.ID)
	}

	return &clone, nil
}

// Create stores a new session
func (r *inMemoryRepository) Create(ctx context.Context, session *entities.DungeonSession) error {
	if session == nil {
		return dlverr.InvalidArgument("session cannot be nil")
	}
	if session.ID == "" {
		return dlverr.InvalidArgument("session ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[session.ID]; exists {
		return dlverr.Newf(dlverr.CodeAlreadyExists, "session %s already exists", session.ID)
	}

	clone, err := cloneSession(session)
	if err != nil {
		return err
	}
	r.sessions[session.ID] = clone

	return nil
}

// Get retrieves a session by ID
func (r *inMemoryRepository) Get(ctx context.Context, id string) (*entities.DungeonSession, error) {
	if id == "" {
		return nil, dlverr.InvalidArgument("session ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	session, exists := r.sessions[id]
	if !exists {
		return nil, dlverr.NotFoundf("session %s not found", id).
			WithMeta("session_id", id)
	}

	return cloneSession(session)
}

// Update overwrites an existing session
func (r *inMemoryRepository) Update(ctx context.Context, session *entities.DungeonSession) error {
	if session == nil {
		return dlverr.InvalidArgument("session cannot be nil")
	}
	if session.ID == "" {
		return dlverr.InvalidArgument("session ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[session.ID]; !exists {
		return dlverr.NotFoundf("session %s not found", session.ID).
			WithMeta("session_id", session.ID)
	}

	clone, err := cloneSession(session)
	if err != nil {
		return err
	}
	r.sessions[session.ID] = clone

	return nil
}

// Delete removes a session
func (r *inMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dlverr.InvalidArgument("session ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)

	return nil
}

// ListActive retrieves all stored sessions
func (r *inMemoryRepository) ListActive(ctx context.Context) ([]*entities.DungeonSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sessions := make([]*entities.DungeonSession, 0, len(r.sessions))
	for _, session := range r.sessions {
		clone, err := cloneSession(session)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, clone)
	}

	return sessions, nil
}
