package sessions

import (
	"context"
	"encoding/json"

	"github.com/KirkDiggler/delve-engine/internal/entities"
	dlverr "github.com/KirkDiggler/delve-engine/internal/errors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const (
	// Key patterns
	sessionKeyPrefix  = "delve:session:"
	activeSessionsKey = "delve:sessions:active"
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client       redis.UniversalClient
	TimeProvider TimeProvider
}

// redisRepository implements Repository using Redis
type redisRepository struct {
	client       redis.UniversalClient
	timeProvider TimeProvider
}

// NewRedisRepository creates a new Redis-backed session repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("redis client is required")
	}

	timeProvider := cfg.TimeProvider
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}

	return &redisRepository{
		client:       cfg.Client,
		timeProvider: timeProvider,
	}
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

// Create stores a new session
func (r *redisRepository) Create(ctx context.Context, session *entities.DungeonSession) error {
	if session == nil {
		return dlverr.InvalidArgument("session cannot be nil")
	}
	if session.ID == "" {
		return dlverr.InvalidArgument("session ID cannot be empty")
	}

	exists, err := r.client.Exists(ctx, sessionKey(session.ID)).Result()
	if err != nil {
		return dlverr.WrapWithCode(err, dlverr.CodeUnavailable, "failed to check for existing session")
	}
	if exists > 0 {
		return dlverr.Newf(dlverr.CodeAlreadyExists, "session %s already exists", session.ID)
	}

	now := r.timeProvider.Now()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = now
	}
	session.LastActive = now

	return r.write(ctx, session)
}

// Get retrieves a session by ID
func (r *redisRepository) Get(ctx context.Context, id string) (*entities.DungeonSession, error) {
	if id == "" {
		return nil, dlverr.InvalidArgument("session ID cannot be empty")
	}

	data, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, dlverr.NotFoundf("session %s not found", id).
				WithMeta("session_id", id)
		}
		return nil, dlverr.WrapWithCode(err, dlverr.CodeUnavailable, "failed to get session from Redis")
	}

	var session entities.DungeonSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, dlverr.Wrapf(err, "failed to unmarshal session %s", id)
	}

	return &session, nil
}

// Update overwrites an existing session
func (r *redisRepository) Update(ctx context.Context, session *entities.DungeonSession) error {
	if session == nil {
		return dlverr.InvalidArgument("session cannot be nil")
	}
	if session.ID == "" {
		return dlverr.InvalidArgument("session ID cannot be empty")
	}

	exists, err := r.client.Exists(ctx, sessionKey(session.ID)).Result()
	if err != nil {
		return dlverr.WrapWithCode(err, dlverr.CodeUnavailable, "failed to check for existing session")
	}
	if exists == 0 {
		return dlverr.NotFoundf("session %s not found", session.ID).
			WithMeta("session_id", session.ID)
	}

	session.LastActive = r.timeProvider.Now()

	return r.write(ctx, session)
}

// Delete removes a session and drops it from the active index
func (r *redisRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dlverr.InvalidArgument("session ID cannot be empty")
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, sessionKey(id))
	pipe.SRem(ctx, activeSessionsKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return dlverr.WrapWithCode(err, dlverr.CodeUnavailable, "failed to delete session from Redis")
	}

	return nil
}

// ListActive retrieves all stored sessions that have not been ended
func (r *redisRepository) ListActive(ctx context.Context) ([]*entities.DungeonSession, error) {
	ids, err := r.client.SMembers(ctx, activeSessionsKey).Result()
	if err != nil {
		return nil, dlverr.WrapWithCode(err, dlverr.CodeUnavailable, "failed to list active sessions")
	}

	sessions := make([]*entities.DungeonSession, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			session, err := r.Get(ctx, id)
			if err != nil {
				return dlverr.Wrapf(err, "failed to get session %s", id)
			}
			sessions[i] = session
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return sessions, nil
}

// write serializes the session and stores it with its active-set entry
func (r *redisRepository) write(ctx context.Context, session *entities.DungeonSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return dlverr.Wrapf(err, "failed to marshal session %s", session.ID)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, sessionKey(session.ID), string(data), 0)
	pipe.SAdd(ctx, activeSessionsKey, session.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return dlverr.WrapWithCode(err, dlverr.CodeUnavailable, "failed to write session to Redis")
	}

	return nil
}
