package services

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/expertise-hunt/internal/logger"
	"github.com/sbilibin2017/expertise-hunt/internal/models"
	"github.com/sbilibin2017/expertise-hunt/internal/repositories"
	"github.com/sbilibin2017/expertise-hunt/internal/scoring"
)

// PlayerReader reads the player catalog.
type PlayerReader interface {
	GetByID(ctx context.Context, playerID uuid.UUID) (*models.PlayerDB, error)
	List(ctx context.Context) ([]models.PlayerDB, error)
}

// ScoreWriter credits game points to an account.
type ScoreWriter interface {
	AddScore(ctx context.Context, accountID uuid.UUID, points int) (int, error)
}

// GuessWriter records scored guesses.
type GuessWriter interface {
	Create(ctx context.Context, g *models.GuessDB) error // Returns ErrConflict when the player was already guessed
}

// GameService runs the market-value guessing game.
type GameService struct {
	tx       TxRunner
	identity IdentityProvider
	players  PlayerReader
	guesses  GuessWriter
	scores   ScoreWriter
}

func NewGameService(tx TxRunner, identity IdentityProvider, players PlayerReader, guesses GuessWriter, scores ScoreWriter) *GameService {
	return &GameService{tx: tx, identity: identity, players: players, guesses: guesses, scores: scores}
}

// ListPlayers returns the catalog. Market values stay hidden in the JSON view.
func (s *GameService) ListPlayers(ctx context.Context) ([]models.PlayerDB, error) {
	if _, err := currentIdentity(ctx, s.identity); err != nil {
		return nil, err
	}
	players, err := s.players.List(ctx)
	if err != nil {
		return nil, storeError("list players", err)
	}
	return players, nil
}

// Guess scores the caller's guess of a player's market value and adds the
// points to the caller's total. Each player can be guessed once per account;
// a repeat returns ErrAlreadyGuessed and credits nothing.
func (s *GameService) Guess(ctx context.Context, playerID uuid.UUID, guess float64) (*models.GuessResult, error) {
	me, err := currentIdentity(ctx, s.identity)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(guess) || math.IsInf(guess, 0) {
		return nil, ErrInvalidGuess
	}

	player, err := s.players.GetByID(ctx, playerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, storeError("load player", err)
	}

	pct, err := scoring.PercentError(player.MarketValue, guess)
	if err != nil {
		return nil, err
	}
	points, err := scoring.Score(player.MarketValue, guess)
	if err != nil {
		return nil, err
	}

	var total int
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		err := s.guesses.Create(ctx, &models.GuessDB{
			AccountID: me,
			PlayerID:  playerID,
			Guess:     guess,
			Score:     points,
			CreatedAt: time.Now().UTC(),
		})
		switch {
		case errors.Is(err, repositories.ErrConflict):
			return ErrAlreadyGuessed
		case errors.Is(err, repositories.ErrNotFound):
			return ErrAccountNotFound
		case err != nil:
			return storeError("record guess", err)
		}

		total, err = creditScore(ctx, s.scores, me, points)
		return err
	})
	if err != nil {
		logger.Log.Errorw("failed to score guess", "account_id", me, "player_id", playerID, "error", err)
		return nil, classify("score guess", err)
	}

	return &models.GuessResult{
		PlayerID:     playerID,
		Guess:        guess,
		MarketValue:  player.MarketValue,
		PercentError: pct,
		Score:        points,
		TotalScore:   total,
	}, nil
}

// creditScore adds points to the account's total and returns the new total.
func creditScore(ctx context.Context, w ScoreWriter, accountID uuid.UUID, points int) (int, error) {
	total, err := w.AddScore(ctx, accountID, points)
	if errors.Is(err, repositories.ErrNotFound) {
		return 0, ErrAccountNotFound
	}
	if err != nil {
		return 0, storeError("add score", err)
	}
	return total, nil
}
