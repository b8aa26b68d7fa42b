package services

import (
	"context"
	"errors"
	"math/rand/v2"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/sbilibin2017/expertise-hunt/internal/logger"
	"github.com/sbilibin2017/expertise-hunt/internal/repositories"
)

const (
	minHumanID = 100000
	maxHumanID = 999999

	// DefaultMaxAllocationAttempts bounds collision retries in Allocate.
	DefaultMaxAllocationAttempts = 10
)

// HumanIDStore persists the human id -> account mapping.
type HumanIDStore interface {
	Exists(ctx context.Context, humanID string) (bool, error)                 // Reports whether the id is taken
	Save(ctx context.Context, humanID string, accountID uuid.UUID) error      // Claims the id, ErrConflict when taken
	Resolve(ctx context.Context, humanID string) (uuid.UUID, error)           // Returns the owning account
	DeleteByAccount(ctx context.Context, accountID uuid.UUID) (string, error) // Releases the account's id
}

// HumanIDCache caches human id lookups.
type HumanIDCache interface {
	Get(ctx context.Context, humanID string) (uuid.UUID, error)         // Returns ErrCacheMiss when absent
	Set(ctx context.Context, humanID string, accountID uuid.UUID) error // Stores a lookup
	Delete(ctx context.Context, humanID string) error                   // Evicts a lookup
}

// HumanIDAllocator hands out unique 6-digit ids and resolves them back to accounts.
type HumanIDAllocator struct {
	store       HumanIDStore
	cache       HumanIDCache
	maxAttempts int

	mu  sync.Mutex
	rng *rand.Rand
}

// AllocatorOpt configures a HumanIDAllocator.
type AllocatorOpt func(*HumanIDAllocator)

// WithRandSource makes draws deterministic.
func WithRandSource(src rand.Source) AllocatorOpt {
	return func(a *HumanIDAllocator) { a.rng = rand.New(src) }
}

// WithCache enables read-through caching of Resolve.
func WithCache(cache HumanIDCache) AllocatorOpt {
	return func(a *HumanIDAllocator) { a.cache = cache }
}

// NewHumanIDAllocator creates an allocator. maxAttempts <= 0 selects
// DefaultMaxAllocationAttempts.
func NewHumanIDAllocator(store HumanIDStore, maxAttempts int, opts ...AllocatorOpt) *HumanIDAllocator {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAllocationAttempts
	}
	a := &HumanIDAllocator{store: store, maxAttempts: maxAttempts}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *HumanIDAllocator) draw() string {
	span := maxHumanID - minHumanID + 1
	if a.rng == nil {
		return strconv.Itoa(minHumanID + rand.IntN(span))
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return strconv.Itoa(minHumanID + a.rng.IntN(span))
}

// Allocate claims a free human id for accountID. Only collisions are retried;
// store failures are returned at once. Callers run it inside the transaction
// that creates the account.
func (a *HumanIDAllocator) Allocate(ctx context.Context, accountID uuid.UUID) (string, error) {
	for attempt := 1; attempt <= a.maxAttempts; attempt++ {
		candidate := a.draw()

		taken, err := a.store.Exists(ctx, candidate)
		if err != nil {
			logger.Log.Errorw("failed to check human id", "human_id", candidate, "error", err)
			return "", storeError("check human id", err)
		}
		if taken {
			logger.Log.Infow("human id collision", "human_id", candidate, "attempt", attempt)
			continue
		}

		err = a.store.Save(ctx, candidate, accountID)
		if errors.Is(err, repositories.ErrConflict) {
			logger.Log.Infow("human id claimed concurrently", "human_id", candidate, "attempt", attempt)
			continue
		}
		if err != nil {
			logger.Log.Errorw("failed to save human id", "human_id", candidate, "error", err)
			return "", storeError("save human id", err)
		}
		return candidate, nil
	}

	logger.Log.Errorw("human id allocation exhausted", "account_id", accountID, "attempts", a.maxAttempts)
	return "", ErrAllocationExhausted
}

// Resolve returns the account owning humanID, or ErrInvalidTarget. The cache
// is only an optimisation: its failures fall back to the store.
func (a *HumanIDAllocator) Resolve(ctx context.Context, humanID string) (uuid.UUID, error) {
	if a.cache != nil {
		accountID, err := a.cache.Get(ctx, humanID)
		if err == nil {
			return accountID, nil
		}
		if !errors.Is(err, repositories.ErrCacheMiss) {
			logger.Log.Warnw("human id cache unavailable", "human_id", humanID, "error", err)
		}
	}

	accountID, err := a.store.Resolve(ctx, humanID)
	if errors.Is(err, repositories.ErrNotFound) {
		return uuid.Nil, ErrInvalidTarget
	}
	if err != nil {
		return uuid.Nil, storeError("resolve human id", err)
	}

	if a.cache != nil {
		if err := a.cache.Set(ctx, humanID, accountID); err != nil {
			logger.Log.Warnw("failed to cache human id", "human_id", humanID, "error", err)
		}
	}
	return accountID, nil
}

// Release frees the account's human id and returns it, or "" if it had none.
func (a *HumanIDAllocator) Release(ctx context.Context, accountID uuid.UUID) (string, error) {
	humanID, err := a.store.DeleteByAccount(ctx, accountID)
	if errors.Is(err, repositories.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", storeError("release human id", err)
	}
	return humanID, nil
}

// Evict drops humanID from the cache. Run it after the release has committed.
func (a *HumanIDAllocator) Evict(ctx context.Context, humanID string) {
	if a.cache == nil || humanID == "" {
		return
	}
	if err := a.cache.Delete(ctx, humanID); err != nil {
		logger.Log.Warnw("failed to evict human id", "human_id", humanID, "error", err)
	}
}
