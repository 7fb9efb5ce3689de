package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// WeeklyEntry is a cached weekly score.
type WeeklyEntry struct {
	Score       float64 `json:"score"`
	DaysCounted int     `json:"days_counted"`
	StoredAt    int64   `json:"stored_at"`
}

// WeeklyCache keeps computed weekly scores per user and as-of date.
//
// Entries are keyed by the user's current version. InvalidateUser bumps the
// version, so readers must take the version before reading the database and
// store under that same version: an entry computed from data older than the
// last invalidation is then never served.
type WeeklyCache interface {
	UserVersion(ctx context.Context, userRef string) (int64, error)
	GetWeekly(ctx context.Context, userRef, asOf string, version int64) (*WeeklyEntry, bool, error)
	StoreWeekly(ctx context.Context, userRef, asOf string, version int64, entry WeeklyEntry) error
	InvalidateUser(ctx context.Context, userRef string) error
}

type RedisClient struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisClient(ctx context.Context, redisURL string, ttl time.Duration) (*RedisClient, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	// Test connection
	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{
		client: client,
		ttl:    ttl,
	}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

func weeklyKey(userRef, asOf string, version int64) string {
	return fmt.Sprintf("weekly:%s:v%d:%s", userRef, version, asOf)
}

func versionKey(userRef string) string {
	return "weekly_version:" + userRef
}

// UserVersion returns 0 for a user that was never invalidated.
func (r *RedisClient) UserVersion(ctx context.Context, userRef string) (int64, error) {
	version, err := r.client.Get(ctx, versionKey(userRef)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get weekly score version from Redis: %w", err)
	}
	return version, nil
}

func (r *RedisClient) StoreWeekly(ctx context.Context, userRef, asOf string, version int64, entry WeeklyEntry) error {
	entry.StoredAt = time.Now().Unix()

	jsonData, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal weekly score: %w", err)
	}

	if err := r.client.Set(ctx, weeklyKey(userRef, asOf, version), jsonData, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store weekly score in Redis: %w", err)
	}
	return nil
}

func (r *RedisClient) GetWeekly(ctx context.Context, userRef, asOf string, version int64) (*WeeklyEntry, bool, error) {
	data, err := r.client.Get(ctx, weeklyKey(userRef, asOf, version)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil // Key doesn't exist
		}
		return nil, false, fmt.Errorf("failed to get weekly score from Redis: %w", err)
	}

	var entry WeeklyEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal weekly score: %w", err)
	}
	return &entry, true, nil
}

// InvalidateUser orphans every cached weekly score of the user, since a new
// daily score can fall inside any of their windows. Orphaned entries expire
// with their TTL.
func (r *RedisClient) InvalidateUser(ctx context.Context, userRef string) error {
	if err := r.client.Incr(ctx, versionKey(userRef)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate weekly scores: %w", err)
	}
	return nil
}

// GetStatus reports connection pool statistics.
func (r *RedisClient) GetStatus(ctx context.Context) (map[string]interface{}, error) {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	stats := r.client.PoolStats()

	return map[string]interface{}{
		"connected":    true,
		"hits":         stats.Hits,
		"misses":       stats.Misses,
		"active_conns": stats.TotalConns,
	}, nil
}

// NoopCache is used when no Redis is configured.
type NoopCache struct{}

func (NoopCache) UserVersion(context.Context, string) (int64, error) { return 0, nil }

func (NoopCache) GetWeekly(context.Context, string, string, int64) (*WeeklyEntry, bool, error) {
	return nil, false, nil
}

func (NoopCache) StoreWeekly(context.Context, string, string, int64, WeeklyEntry) error { return nil }

func (NoopCache) InvalidateUser(context.Context, string) error { return nil }
