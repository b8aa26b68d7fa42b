// Package handlers exposes the services over HTTP.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sbilibin2017/expertise-hunt/internal/logger"
	"github.com/sbilibin2017/expertise-hunt/internal/repositories"
	"github.com/sbilibin2017/expertise-hunt/internal/services"
)

var validate = validator.New()

var errInvalidBody = errors.New("invalid request body")

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

type errorMapping struct {
	err    error
	status int
}

// Checked in order: a store failure joined with a more specific kind reports
// the specific kind.
var errorStatuses = []errorMapping{
	{services.ErrNotAuthenticated, http.StatusUnauthorized},
	{services.ErrInvalidCredentials, http.StatusUnauthorized},
	{services.ErrInvalidTarget, http.StatusBadRequest},
	{services.ErrInvalidGuess, http.StatusBadRequest},
	{services.ErrInvalidImage, http.StatusBadRequest},
	{services.ErrInvalidUsername, http.StatusBadRequest},
	{services.ErrInvalidAnswer, http.StatusBadRequest},
	{services.ErrInvalidCategory, http.StatusBadRequest},
	{services.ErrAlreadyFriends, http.StatusConflict},
	{services.ErrDuplicateRequest, http.StatusConflict},
	{services.ErrInvalidState, http.StatusConflict},
	{services.ErrEmailTaken, http.StatusConflict},
	{services.ErrAlreadyGuessed, http.StatusConflict},
	{services.ErrAlreadyAnswered, http.StatusConflict},
	{services.ErrRequestNotFound, http.StatusNotFound},
	{services.ErrRelationNotFound, http.StatusNotFound},
	{services.ErrAccountNotFound, http.StatusNotFound},
	{services.ErrPlayerNotFound, http.StatusNotFound},
	{services.ErrImageNotFound, http.StatusNotFound},
	{services.ErrQuestionNotFound, http.StatusNotFound},
	{services.ErrAllocationExhausted, http.StatusServiceUnavailable},
	{services.ErrTransientStore, http.StatusServiceUnavailable},
}

// writeError maps a service error to its status code. Unknown errors,
// malformed records included, are internal errors and their details stay in
// the log.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	for _, m := range errorStatuses {
		if errors.Is(err, m.err) {
			if m.status >= http.StatusInternalServerError {
				logger.Log.Errorw("request failed", "path", r.URL.Path, "error", err)
			}
			writeJSON(w, m.status, ErrorResponse{Error: m.err.Error()})
			return
		}
	}

	if errors.Is(err, repositories.ErrMalformedRecord) {
		logger.Log.Errorw("malformed record", "path", r.URL.Path, "error", err)
	} else {
		logger.Log.Errorw("internal server error", "path", r.URL.Path, "error", err)
	}
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

// decodeJSON reads the body into v and validates it.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errInvalidBody
	}
	if err := validate.Struct(v); err != nil {
		return errInvalidBody
	}
	return nil
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msg})
}

// uuidParam parses a UUID path parameter.
func uuidParam(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
