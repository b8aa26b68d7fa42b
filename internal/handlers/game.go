package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/expertise-hunt/internal/models"
)

// PlayerLister lists the player catalog.
type PlayerLister interface {
	ListPlayers(ctx context.Context) ([]models.PlayerDB, error)
}

// Guesser scores market-value guesses.
type Guesser interface {
	Guess(ctx context.Context, playerID uuid.UUID, guess float64) (*models.GuessResult, error)
}

// PlayersResponse represents the player catalog
// swagger:model PlayersResponse
type PlayersResponse struct {
	Players []models.PlayerDB `json:"players"`
}

// GuessRequest represents the JSON body for a guess
// swagger:model GuessRequest
type GuessRequest struct {
	// Player to guess
	// required: true
	PlayerID uuid.UUID `json:"player_id" validate:"required"`

	// Guessed market value in millions of euros
	// required: true
	// default: 120
	Guess *float64 `json:"guess" validate:"required"`
}

// NewListPlayersHandler returns an HTTP handler listing the player catalog.
// Market values are not included.
// @Summary List players
// @Tags game
// @Produce json
// @Success 200 {object} handlers.PlayersResponse "Players"
// @Router /game/players [get]
// @Security BearerAuth
func NewListPlayersHandler(svc PlayerLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := svc.ListPlayers(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		if players == nil {
			players = []models.PlayerDB{}
		}
		writeJSON(w, http.StatusOK, PlayersResponse{Players: players})
	}
}

// NewGuessHandler returns an HTTP handler scoring a guess.
// @Summary Guess a market value
// @Tags game
// @Accept json
// @Produce json
// @Param request body handlers.GuessRequest true "Guess"
// @Success 200 {object} models.GuessResult "Score"
// @Failure 400 {object} handlers.ErrorResponse "Invalid guess"
// @Failure 404 {object} handlers.ErrorResponse "Player not found"
// @Failure 409 {object} handlers.ErrorResponse "Player already guessed"
// @Router /game/guess [post]
// @Security BearerAuth
func NewGuessHandler(svc Guesser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GuessRequest
		if err := decodeJSON(r, &req); err != nil {
			writeBadRequest(w, err.Error())
			return
		}

		result, err := svc.Guess(r.Context(), req.PlayerID, *req.Guess)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}
