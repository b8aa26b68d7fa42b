// Package services implements account, friend-graph, profile and game logic
// on top of the repositories.
package services

import (
	"bytes"
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"
	"github.com/sbilibin2017/expertise-hunt/internal/logger"
	"github.com/sbilibin2017/expertise-hunt/internal/models"
	"github.com/sbilibin2017/expertise-hunt/internal/repositories"
	"golang.org/x/sync/errgroup"
)

// lookupLimit bounds concurrent account lookups when building lists.
const lookupLimit = 8

// TxRunner runs fn inside one transaction; nested calls join the outer one.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// IdentityProvider reports the authenticated caller.
type IdentityProvider interface {
	CurrentIdentity(ctx context.Context) (uuid.UUID, bool)
}

// AccountReader defines read-only operations for accounts.
type AccountReader interface {
	GetByID(ctx context.Context, accountID uuid.UUID) (*models.AccountDB, error) // Returns ErrNotFound when missing
	GetByEmail(ctx context.Context, email string) (*models.AccountDB, error)     // Returns ErrNotFound when missing
}

// FriendCountWriter is the only way friend counts change.
type FriendCountWriter interface {
	AdjustFriendCount(ctx context.Context, accountID uuid.UUID, delta int) (int, error) // Adds delta, floored at zero
}

// EventWriter appends friend-graph events to the outbox.
type EventWriter interface {
	Save(ctx context.Context, events ...models.Event) error
}

// currentIdentity returns the caller or ErrNotAuthenticated.
func currentIdentity(ctx context.Context, p IdentityProvider) (uuid.UUID, error) {
	id, ok := p.CurrentIdentity(ctx)
	if !ok {
		return uuid.Nil, ErrNotAuthenticated
	}
	return id, nil
}

// adjustCounts applies delta to each account in ascending id order, so that
// concurrent transactions always lock account rows in the same order.
func adjustCounts(ctx context.Context, w FriendCountWriter, delta int, accountIDs ...uuid.UUID) error {
	ids := append([]uuid.UUID(nil), accountIDs...)
	sort.Slice(ids, func(i, j int) bool { return bytes.Compare(ids[i][:], ids[j][:]) < 0 })

	for _, id := range ids {
		if _, err := w.AdjustFriendCount(ctx, id, delta); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrAccountNotFound
			}
			return storeError("adjust friend count", err)
		}
	}
	return nil
}

// loadSummaries fetches the accounts concurrently. The result is aligned with
// ids; accounts that no longer exist are left nil.
func loadSummaries(ctx context.Context, r AccountReader, ids []uuid.UUID) ([]*models.AccountSummary, error) {
	out := make([]*models.AccountSummary, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(lookupLimit)
	for i, id := range ids {
		g.Go(func() error {
			acc, err := r.GetByID(gctx, id)
			if errors.Is(err, repositories.ErrNotFound) {
				logger.Log.Warnw("account vanished during lookup", "account_id", id)
				return nil
			}
			if err != nil {
				return storeError("load account", err)
			}
			s := acc.Summary()
			out[i] = &s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
