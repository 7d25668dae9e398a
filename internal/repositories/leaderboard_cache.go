package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/minigame-scores/internal/logger"
	"github.com/sbilibin2017/minigame-scores/internal/models"
)

const leaderboardCacheKey = "leaderboard:top100"

// LeaderboardCacheRepository caches the top-N leaderboard in Redis
type LeaderboardCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for the cached leaderboard
}

// NewLeaderboardCacheRepository creates a new repository instance with a TTL
func NewLeaderboardCacheRepository(client *redis.Client, expiration time.Duration) *LeaderboardCacheRepository {
	return &LeaderboardCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get returns the cached leaderboard, or nil on a cache miss.
func (r *LeaderboardCacheRepository) Get(ctx context.Context) ([]models.LeaderboardEntry, error) {
	val, err := r.client.Get(ctx, leaderboardCacheKey).Result()

	logger.Log.Infow("cache read",
		"key", leaderboardCacheKey,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var entries []models.LeaderboardEntry
	if err := json.Unmarshal([]byte(val), &entries); err != nil {
		logger.Log.Errorw("failed to decode cached leaderboard", "key", leaderboardCacheKey, "error", err)
		return nil, err
	}

	return entries, nil
}

// Set stores the leaderboard in the cache with the configured expiration.
func (r *LeaderboardCacheRepository) Set(ctx context.Context, entries []models.LeaderboardEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, leaderboardCacheKey, data, r.exp).Err()

	logger.Log.Infow("cache write",
		"key", leaderboardCacheKey,
		"entries", len(entries),
		"error", err,
	)

	return err
}

// Invalidate drops the cached leaderboard. Called after every score submission.
func (r *LeaderboardCacheRepository) Invalidate(ctx context.Context) error {
	err := r.client.Del(ctx, leaderboardCacheKey).Err()

	logger.Log.Infow("cache invalidate",
		"key", leaderboardCacheKey,
		"error", err,
	)

	return err
}
