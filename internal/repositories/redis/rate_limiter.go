package redis

import (
	"context"
	"fmt"
	"strconv"

	"github.com/carespace/carespace-api/internal/config"
	"github.com/carespace/carespace-api/internal/pkg/clock"
	"github.com/redis/go-redis/v9"
)

// RateLimiter is a sliding-window limiter backed by one sorted set per key.
// Scores are unix seconds, members nanosecond timestamps so that attempts
// within the same second stay distinct.
type RateLimiter struct {
	client *redis.Client
	config config.RateConfig
	prefix string
	clock  clock.Clock
}

func NewRateLimiter(client *redis.Client, cfg config.RateConfig, prefix string, clk clock.Clock) *RateLimiter {
	return &RateLimiter{client: client, config: cfg, prefix: prefix, clock: clk}
}

// NewClient connects to redis and verifies the connection.
func NewClient(ctx context.Context, cfg config.RedisConnect) (*redis.Client, error) {

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test the connection to make sure Redis is reachable
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}

// Allow records an attempt for key and returns isAllowed, attempts left and
// seconds to wait before the next attempt is accepted. Rejected attempts are
// removed again so that retrying does not extend the window.
func (r *RateLimiter) Allow(ctx context.Context, key string) (bool, int, int, error) {

	redisKey := fmt.Sprintf("%s:%s", r.prefix, key)

	current := r.clock.Now()
	now := current.Unix()

	// only attempts after this point are counted
	windowStart := now - int64(r.config.WindowSize.Seconds())

	pipe := r.client.Pipeline()

	pipe.ZRemRangeByScore(ctx, redisKey, "0", strconv.FormatInt(windowStart, 10))

	member := strconv.FormatInt(current.UnixNano(), 10)

	pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(now), Member: member})

	count := pipe.ZCard(ctx, redisKey)

	pipe.Expire(ctx, redisKey, r.config.WindowSize)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, 0, fmt.Errorf("rate limit pipeline: %w", err)
	}

	attempts := count.Val()

	if attempts > r.config.MaxAttempts {
		rejectPipe := r.client.Pipeline()

		rejectPipe.ZRem(ctx, redisKey, member)
		oldestCmd := rejectPipe.ZRangeWithScores(ctx, redisKey, 0, 0)

		if _, err := rejectPipe.Exec(ctx); err != nil {
			return false, 0, 0, fmt.Errorf("discarding rejected attempt: %w", err)
		}

		oldest := oldestCmd.Val()

		retryAfter := int64(r.config.WindowSize.Seconds())
		if len(oldest) > 0 {
			retryAfter -= now - int64(oldest[0].Score)
		}

		return false, 0, int(max(retryAfter, 1)), nil
	}

	return true, int(r.config.MaxAttempts - attempts), 0, nil
}
