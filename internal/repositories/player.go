package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/expertise-hunt/internal/models"
)

// PlayerRepository reads the guessing-game player catalog.
type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID uuid.UUID) (*models.PlayerDB, error) {
	const query = `
		SELECT player_id, name, team, nationality, age, market_value, image_ref
		FROM players
		WHERE player_id = $1
	`
	var p models.PlayerDB
	err := r.db.GetContext(ctx, &p, query, playerID)
	logQuery(query, []any{playerID}, p.Name, err)
	if err != nil {
		return nil, translate(err)
	}
	if err := validateRecord(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns the whole catalog ordered by name.
func (r *PlayerRepository) List(ctx context.Context) ([]models.PlayerDB, error) {
	const query = `
		SELECT player_id, name, team, nationality, age, market_value, image_ref
		FROM players
		ORDER BY name
	`
	var players []models.PlayerDB
	err := r.db.SelectContext(ctx, &players, query)
	logQuery(query, nil, len(players), err)
	if err != nil {
		return nil, err
	}
	for i := range players {
		if err := validateRecord(&players[i]); err != nil {
			return nil, err
		}
	}
	return players, nil
}
