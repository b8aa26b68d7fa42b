// Package identity carries the authenticated account through a request context.
package identity

import (
	"context"

	"github.com/google/uuid"
)

type contextKey struct{}

var accountKey = contextKey{}

// WithAccountID returns a copy of ctx that carries accountID as the caller.
func WithAccountID(ctx context.Context, accountID uuid.UUID) context.Context {
	return context.WithValue(ctx, accountKey, accountID)
}

// AccountIDFromContext returns the caller stored by WithAccountID.
func AccountIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(accountKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// ContextProvider reports the caller placed in the context by the auth middleware.
type ContextProvider struct{}

func NewContextProvider() *ContextProvider {
	return &ContextProvider{}
}

// CurrentIdentity returns the authenticated account, if any.
func (p *ContextProvider) CurrentIdentity(ctx context.Context) (uuid.UUID, bool) {
	return AccountIDFromContext(ctx)
}
