package handlers

import (
	"context"
	"net/http"
)

// AccountDeleter deletes the caller's account.
type AccountDeleter interface {
	DeleteAccount(ctx context.Context) error
}

// NewDeleteAccountHandler returns an HTTP handler that deletes the caller's
// account together with its friendships, requests, user id and image.
// @Summary Delete account
// @Tags auth
// @Success 204 "Account deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Account not found"
// @Router /account [delete]
// @Security BearerAuth
func NewDeleteAccountHandler(svc AccountDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.DeleteAccount(r.Context()); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
