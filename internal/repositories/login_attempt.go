package repositories

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/activity-calendar/internal/logger"
)

// LoginAttemptMemoryRepository keeps consecutive login failures per username
// in process memory. Counts are lost on restart.
type LoginAttemptMemoryRepository struct {
	mu       sync.Mutex
	failures map[string]int
}

func NewLoginAttemptMemoryRepository() *LoginAttemptMemoryRepository {
	return &LoginAttemptMemoryRepository{failures: make(map[string]int)}
}

func (r *LoginAttemptMemoryRepository) Get(ctx context.Context, username string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.failures[username], nil
}

func (r *LoginAttemptMemoryRepository) Increment(ctx context.Context, username string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures[username]++
	return r.failures[username], nil
}

func (r *LoginAttemptMemoryRepository) Reset(ctx context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.failures, username)
	return nil
}

// LoginAttemptRedisRepository shares the failure counters between instances through Redis.
type LoginAttemptRedisRepository struct {
	client *redis.Client
}

func NewLoginAttemptRedisRepository(client *redis.Client) *LoginAttemptRedisRepository {
	return &LoginAttemptRedisRepository{client: client}
}

func loginAttemptKey(username string) string {
	return "login_failures:" + username
}

func (r *LoginAttemptRedisRepository) Get(ctx context.Context, username string) (int, error) {
	key := loginAttemptKey(username)
	n, err := r.client.Get(ctx, key).Int()

	logger.Log.Debugw(
		"key", key,
		"result", n,
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get login failures: %w", err)
	}
	return n, nil
}

func (r *LoginAttemptRedisRepository) Increment(ctx context.Context, username string) (int, error) {
	key := loginAttemptKey(username)
	n, err := r.client.Incr(ctx, key).Result()

	logger.Log.Debugw(
		"key", key,
		"result", n,
		"error", err,
	)

	if err != nil {
		return 0, fmt.Errorf("increment login failures: %w", err)
	}
	return int(n), nil
}

func (r *LoginAttemptRedisRepository) Reset(ctx context.Context, username string) error {
	key := loginAttemptKey(username)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Debugw(
		"key", key,
		"result", "deleted",
		"error", err,
	)

	if err != nil {
		return fmt.Errorf("reset login failures: %w", err)
	}
	return nil
}
