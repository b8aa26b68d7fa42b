package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// HumanIDRepository stores the mapping between 6-digit public ids and accounts.
type HumanIDRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewHumanIDRepository(db *sqlx.DB, txGetter TxGetter) *HumanIDRepository {
	return &HumanIDRepository{db: db, txGetter: txGetter}
}

// Exists reports whether humanID is already taken.
func (r *HumanIDRepository) Exists(ctx context.Context, humanID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM human_ids WHERE human_id = $1)`
	var exists bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &exists, query, humanID)
	logQuery(query, []any{humanID}, exists, err)
	return exists, err
}

// Save claims humanID for accountID. A human id taken concurrently returns
// ErrConflict without aborting the surrounding transaction.
func (r *HumanIDRepository) Save(ctx context.Context, humanID string, accountID uuid.UUID) error {
	query := `
		INSERT INTO human_ids (human_id, account_id)
		VALUES ($1, $2)
		ON CONFLICT (human_id) DO NOTHING
	`
	affected, err := execAffected(ctx, executor(ctx, r.db, r.txGetter), query, humanID, accountID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrConflict
	}
	return nil
}

// Resolve returns the account owning humanID, or ErrNotFound.
func (r *HumanIDRepository) Resolve(ctx context.Context, humanID string) (uuid.UUID, error) {
	query := `SELECT account_id FROM human_ids WHERE human_id = $1`
	var accountID uuid.UUID
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &accountID, query, humanID)
	logQuery(query, []any{humanID}, accountID, err)
	return accountID, translate(err)
}

// DeleteByAccount releases the account's human id and returns it.
func (r *HumanIDRepository) DeleteByAccount(ctx context.Context, accountID uuid.UUID) (string, error) {
	query := `DELETE FROM human_ids WHERE account_id = $1 RETURNING human_id`
	var humanID string
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &humanID, query, accountID)
	logQuery(query, []any{accountID}, humanID, err)
	return humanID, translate(err)
}
