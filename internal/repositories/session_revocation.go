package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/activity-calendar/internal/logger"
)

// SessionRevocationMemoryRepository remembers logged out session ids until they expire.
type SessionRevocationMemoryRepository struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

func NewSessionRevocationMemoryRepository() *SessionRevocationMemoryRepository {
	return &SessionRevocationMemoryRepository{
		revoked: make(map[string]time.Time),
		now:     time.Now,
	}
}

// Revoke marks id as revoked until the given time.
func (r *SessionRevocationMemoryRepository) Revoke(ctx context.Context, id string, until time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for k, exp := range r.revoked {
		if !exp.After(now) {
			delete(r.revoked, k)
		}
	}
	if until.After(now) {
		r.revoked[id] = until
	}
	return nil
}

func (r *SessionRevocationMemoryRepository) IsRevoked(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	exp, ok := r.revoked[id]
	return ok && exp.After(r.now()), nil
}

// SessionRevocationRedisRepository stores revoked session ids in Redis with a TTL
// matching the remaining token lifetime.
type SessionRevocationRedisRepository struct {
	client *redis.Client
}

func NewSessionRevocationRedisRepository(client *redis.Client) *SessionRevocationRedisRepository {
	return &SessionRevocationRedisRepository{client: client}
}

func sessionRevocationKey(id string) string {
	return "session_revoked:" + id
}

func (r *SessionRevocationRedisRepository) Revoke(ctx context.Context, id string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}

	key := sessionRevocationKey(id)
	err := r.client.Set(ctx, key, "1", ttl).Err()

	logger.Log.Debugw(
		"key", key,
		"ttl", ttl,
		"error", err,
	)

	if err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

func (r *SessionRevocationRedisRepository) IsRevoked(ctx context.Context, id string) (bool, error) {
	key := sessionRevocationKey(id)
	n, err := r.client.Exists(ctx, key).Result()

	logger.Log.Debugw(
		"key", key,
		"result", n,
		"error", err,
	)

	if err != nil {
		return false, fmt.Errorf("check session revocation: %w", err)
	}
	return n > 0, nil
}
