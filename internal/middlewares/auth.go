package middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/expertise-hunt/internal/identity"
	"github.com/sbilibin2017/expertise-hunt/internal/jwt"
	"github.com/sbilibin2017/expertise-hunt/internal/logger"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) // Extracts the bearer token
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)   // Validates the token and returns its claims
}

// AuthMiddleware rejects requests without a valid bearer token and stores the
// token's account in the request context.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx = identity.WithAccountID(ctx, claims.AccountID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
