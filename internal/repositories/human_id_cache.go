package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/expertise-hunt/internal/logger"
)

// ErrCacheMiss is returned when a key is absent from the cache.
var ErrCacheMiss = errors.New("cache miss")

// HumanIDCacheRepository caches human id -> account id lookups in Redis
type HumanIDCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration for cached entries
}

func NewHumanIDCacheRepository(client *redis.Client, expiration time.Duration) *HumanIDCacheRepository {
	return &HumanIDCacheRepository{client: client, exp: expiration}
}

func humanIDKey(humanID string) string {
	return fmt.Sprintf("human_id:%s", humanID)
}

// Get returns the cached account id for humanID, or ErrCacheMiss.
func (r *HumanIDCacheRepository) Get(ctx context.Context, humanID string) (uuid.UUID, error) {
	key := humanIDKey(humanID)

	val, err := r.client.Get(ctx, key).Result()
	logger.Log.Infow("key", key, "value", val, "error", err)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, ErrCacheMiss
		}
		return uuid.Nil, err
	}

	accountID, err := uuid.Parse(val)
	if err != nil {
		// A corrupt entry is dropped and treated as a miss.
		delErr := r.client.Del(ctx, key).Err()
		logger.Log.Warnw("dropped corrupt cache entry", "key", key, "value", val, "error", delErr)
		return uuid.Nil, ErrCacheMiss
	}
	return accountID, nil
}

func (r *HumanIDCacheRepository) Set(ctx context.Context, humanID string, accountID uuid.UUID) error {
	key := humanIDKey(humanID)
	err := r.client.Set(ctx, key, accountID.String(), r.exp).Err()
	logger.Log.Infow("key", key, "value", accountID, "error", err)
	return err
}

func (r *HumanIDCacheRepository) Delete(ctx context.Context, humanID string) error {
	key := humanIDKey(humanID)
	err := r.client.Del(ctx, key).Err()
	logger.Log.Infow("key", key, "result", "deleted", "error", err)
	return err
}
