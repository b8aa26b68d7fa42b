package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/expertise-hunt/internal/models"
)

const accountSelect = `
	SELECT a.account_id, h.human_id, a.email, a.username, a.password_hash,
		a.friend_count, a.score, a.profile_image_ref, a.created_at, a.updated_at
	FROM accounts a
	LEFT JOIN human_ids h ON h.account_id = a.account_id
`

// AccountReadRepository handles account read operations
type AccountReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewAccountReadRepository(db *sqlx.DB, txGetter TxGetter) *AccountReadRepository {
	return &AccountReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the account with its human id, or ErrNotFound.
func (r *AccountReadRepository) GetByID(ctx context.Context, accountID uuid.UUID) (*models.AccountDB, error) {
	return r.getOne(ctx, accountSelect+` WHERE a.account_id = $1`, accountID)
}

// GetByEmail returns the account registered with email, or ErrNotFound.
func (r *AccountReadRepository) GetByEmail(ctx context.Context, email string) (*models.AccountDB, error) {
	return r.getOne(ctx, accountSelect+` WHERE a.email = $1`, email)
}

func (r *AccountReadRepository) getOne(ctx context.Context, query string, arg any) (*models.AccountDB, error) {
	var account models.AccountDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &account, query, arg)
	logQuery(query, []any{arg}, account.AccountID, err)
	if err != nil {
		return nil, translate(err)
	}
	if err := validateRecord(&account); err != nil {
		return nil, err
	}
	return &account, nil
}

// AccountWriteRepository handles account write operations
type AccountWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewAccountWriteRepository(db *sqlx.DB, txGetter TxGetter) *AccountWriteRepository {
	return &AccountWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a new account. A taken email yields ErrConflict.
func (r *AccountWriteRepository) Create(ctx context.Context, account *models.AccountDB) error {
	query := `
		INSERT INTO accounts (account_id, email, username, password_hash, friend_count, score, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 0, 0, $5, $5)
	`
	args := []any{account.AccountID, account.Email, account.Username, account.PasswordHash, account.CreatedAt}
	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	logQuery(query, args[:3], account.AccountID, err)
	return translate(err)
}

// AdjustFriendCount adds delta to the account's friend count, never going
// below zero, and returns the new value.
func (r *AccountWriteRepository) AdjustFriendCount(ctx context.Context, accountID uuid.UUID, delta int) (int, error) {
	query := `
		UPDATE accounts
		SET friend_count = GREATEST(friend_count + $2, 0), updated_at = NOW()
		WHERE account_id = $1
		RETURNING friend_count
	`
	var count int
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &count, query, accountID, delta)
	logQuery(query, []any{accountID, delta}, count, err)
	return count, translate(err)
}

// AddScore adds points to the account's score and returns the new total.
func (r *AccountWriteRepository) AddScore(ctx context.Context, accountID uuid.UUID, points int) (int, error) {
	query := `
		UPDATE accounts
		SET score = score + $2, updated_at = NOW()
		WHERE account_id = $1
		RETURNING score
	`
	var total int
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &total, query, accountID, points)
	logQuery(query, []any{accountID, points}, total, err)
	return total, translate(err)
}

func (r *AccountWriteRepository) UpdateUsername(ctx context.Context, accountID uuid.UUID, username string) error {
	query := `UPDATE accounts SET username = $2, updated_at = NOW() WHERE account_id = $1`
	return execOne(ctx, executor(ctx, r.db, r.txGetter), query, accountID, username)
}

// UpdateProfileImageRef sets the image reference; nil clears it.
func (r *AccountWriteRepository) UpdateProfileImageRef(ctx context.Context, accountID uuid.UUID, ref *string) error {
	query := `UPDATE accounts SET profile_image_ref = $2, updated_at = NOW() WHERE account_id = $1`
	return execOne(ctx, executor(ctx, r.db, r.txGetter), query, accountID, ref)
}

func (r *AccountWriteRepository) Delete(ctx context.Context, accountID uuid.UUID) error {
	query := `DELETE FROM accounts WHERE account_id = $1`
	return execOne(ctx, executor(ctx, r.db, r.txGetter), query, accountID)
}
