package tokens

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/critfall/dmscreen/internal/errors"
	"github.com/critfall/dmscreen/internal/pkg/clock"
	redisclient "github.com/critfall/dmscreen/internal/redis"
)

const (
	// Key pattern: session_token:{profile}
	tokenKeyPrefix = "session_token:"
	defaultTTL     = 24 * time.Hour

	errProfileEmpty = "profile cannot be empty"
	errTokenEmpty   = "token cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for session tokens
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Save persists a token for the profile, replacing any previous one
func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Profile == "" {
		return nil, errors.InvalidArgument(errProfileEmpty)
	}
	if input.Token == "" {
		return nil, errors.InvalidArgument(errTokenEmpty)
	}

	now := r.clock.Now()
	ttl := input.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	session := &Session{
		Profile:   input.Profile,
		Token:     input.Token,
		SavedAt:   now,
		ExpiresAt: now.Add(ttl),
	}

	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal session")
	}

	key := r.buildKey(input.Profile)
	if err := r.client.Set(ctx, key, sessionJSON, ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store session in Redis")
	}

	return &SaveOutput{Session: session}, nil
}

// Load retrieves the persisted token; NotFound when none exists
func (r *redisRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if input.Profile == "" {
		return nil, errors.InvalidArgument(errProfileEmpty)
	}

	key := r.buildKey(input.Profile)
	sessionJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no persisted session for profile %q", input.Profile)
		}
		return nil, errors.Wrapf(err, "failed to load session from Redis")
	}

	var session Session
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal session")
	}

	// Redis TTL usually handles expiry; the stamp guards against saves
	// made with a longer key TTL than the session's own.
	if !session.ExpiresAt.IsZero() && r.clock.Now().After(session.ExpiresAt) {
		return nil, errors.NotFoundf("persisted session for profile %q has expired", input.Profile)
	}

	return &LoadOutput{Session: &session}, nil
}

// Clear removes the persisted token
func (r *redisRepository) Clear(ctx context.Context, input ClearInput) (*ClearOutput, error) {
	if input.Profile == "" {
		return nil, errors.InvalidArgument(errProfileEmpty)
	}

	key := r.buildKey(input.Profile)
	deleted, err := r.client.Del(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to clear session in Redis")
	}

	return &ClearOutput{Cleared: deleted > 0}, nil
}

func (r *redisRepository) buildKey(profile string) string {
	return tokenKeyPrefix + profile
}
