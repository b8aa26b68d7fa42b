package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/expertise-hunt/internal/models"
)

// GuessRepository keeps the one scored guess per account and player.
type GuessRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewGuessRepository(db *sqlx.DB, txGetter TxGetter) *GuessRepository {
	return &GuessRepository{db: db, txGetter: txGetter}
}

// Create records g, or returns ErrConflict when the account already guessed
// this player.
func (r *GuessRepository) Create(ctx context.Context, g *models.GuessDB) error {
	query := `
		INSERT INTO guesses (account_id, player_id, guess, score, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (account_id, player_id) DO NOTHING
	`
	return insertOnce(ctx, executor(ctx, r.db, r.txGetter), query,
		g.AccountID, g.PlayerID, g.Guess, g.Score, g.CreatedAt)
}

// QuizAnswerRepository keeps the one scored answer per account and question.
type QuizAnswerRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewQuizAnswerRepository(db *sqlx.DB, txGetter TxGetter) *QuizAnswerRepository {
	return &QuizAnswerRepository{db: db, txGetter: txGetter}
}

// Create records a, or returns ErrConflict when the question was already
// answered by the account.
func (r *QuizAnswerRepository) Create(ctx context.Context, a *models.QuizAnswerDB) error {
	query := `
		INSERT INTO quiz_answers (account_id, question_id, answer, correct, score, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (account_id, question_id) DO NOTHING
	`
	return insertOnce(ctx, executor(ctx, r.db, r.txGetter), query,
		a.AccountID, a.QuestionID, a.Answer, a.Correct, a.Score, a.CreatedAt)
}

// insertOnce runs an ON CONFLICT DO NOTHING insert and reports a skipped row
// as ErrConflict.
func insertOnce(ctx context.Context, exec sqlx.ExtContext, query string, args ...any) error {
	affected, err := execAffected(ctx, exec, query, args...)
	if err != nil {
		return translate(err)
	}
	if affected == 0 {
		return ErrConflict
	}
	return nil
}
