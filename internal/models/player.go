package models

import (
	"time"

	"github.com/google/uuid"
)

// PlayerDB represents a football player in the guessing-game catalog.
type PlayerDB struct {
	PlayerID    uuid.UUID `json:"player_id" db:"player_id" validate:"required"`
	Name        string    `json:"name" db:"name" validate:"required"`
	Team        string    `json:"team" db:"team"`
	Nationality string    `json:"nationality" db:"nationality"`
	Age         int       `json:"age" db:"age" validate:"gte=0"`
	MarketValue float64   `json:"-" db:"market_value" validate:"gt=0"` // Millions of euros; hidden until guessed
	ImageRef    *string   `json:"image_ref,omitempty" db:"image_ref"`
}

// GuessDB records the single scored guess an account made on a player.
type GuessDB struct {
	AccountID uuid.UUID `db:"account_id"`
	PlayerID  uuid.UUID `db:"player_id"`
	Guess     float64   `db:"guess"`
	Score     int       `db:"score"`
	CreatedAt time.Time `db:"created_at"`
}

// GuessResult is the outcome of one guess.
type GuessResult struct {
	PlayerID     uuid.UUID `json:"player_id"`
	Guess        float64   `json:"guess"`
	MarketValue  float64   `json:"market_value"`
	PercentError float64   `json:"percent_error"`
	Score        int       `json:"score"`
	TotalScore   int       `json:"total_score"`
}
