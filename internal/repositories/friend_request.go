package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/expertise-hunt/internal/models"
)

const friendRequestColumns = `request_id, requester_id, target_id, status, created_at, updated_at`

// FriendRequestReadRepository handles friend request read operations
type FriendRequestReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewFriendRequestReadRepository(db *sqlx.DB, txGetter TxGetter) *FriendRequestReadRepository {
	return &FriendRequestReadRepository{db: db, txGetter: txGetter}
}

// GetByIDForUpdate loads a request and locks its row until the surrounding
// transaction ends.
func (r *FriendRequestReadRepository) GetByIDForUpdate(ctx context.Context, requestID uuid.UUID) (*models.FriendRequestDB, error) {
	query := `SELECT ` + friendRequestColumns + ` FROM friend_requests WHERE request_id = $1 FOR UPDATE`

	var req models.FriendRequestDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &req, query, requestID)
	logQuery(query, []any{requestID}, req.Status, err)
	if err != nil {
		return nil, translate(err)
	}
	if err := validateRecord(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// ListBetween returns every request between the two accounts in either
// direction, locking the rows.
func (r *FriendRequestReadRepository) ListBetween(ctx context.Context, a, b uuid.UUID) ([]models.FriendRequestDB, error) {
	query := `
		SELECT ` + friendRequestColumns + `
		FROM friend_requests
		WHERE (requester_id = $1 AND target_id = $2) OR (requester_id = $2 AND target_id = $1)
		ORDER BY created_at
		FOR UPDATE
	`
	return r.list(ctx, query, a, b)
}

// ListAccepted returns the accepted requests involving the account.
func (r *FriendRequestReadRepository) ListAccepted(ctx context.Context, accountID uuid.UUID) ([]models.FriendRequestDB, error) {
	query := `
		SELECT ` + friendRequestColumns + `
		FROM friend_requests
		WHERE status = 'accepted' AND (requester_id = $1 OR target_id = $1)
		ORDER BY updated_at, created_at
	`
	return r.list(ctx, query, accountID)
}

// ListPendingIncoming returns pending requests targeting the account, oldest first.
func (r *FriendRequestReadRepository) ListPendingIncoming(ctx context.Context, accountID uuid.UUID) ([]models.FriendRequestDB, error) {
	query := `
		SELECT ` + friendRequestColumns + `
		FROM friend_requests
		WHERE status = 'pending' AND target_id = $1
		ORDER BY created_at
	`
	return r.list(ctx, query, accountID)
}

// ListPendingOutgoing returns pending requests sent by the account, oldest first.
func (r *FriendRequestReadRepository) ListPendingOutgoing(ctx context.Context, accountID uuid.UUID) ([]models.FriendRequestDB, error) {
	query := `
		SELECT ` + friendRequestColumns + `
		FROM friend_requests
		WHERE status = 'pending' AND requester_id = $1
		ORDER BY created_at
	`
	return r.list(ctx, query, accountID)
}

// ListByAccountForUpdate returns and locks every request involving the account.
func (r *FriendRequestReadRepository) ListByAccountForUpdate(ctx context.Context, accountID uuid.UUID) ([]models.FriendRequestDB, error) {
	query := `
		SELECT ` + friendRequestColumns + `
		FROM friend_requests
		WHERE requester_id = $1 OR target_id = $1
		ORDER BY created_at
		FOR UPDATE
	`
	return r.list(ctx, query, accountID)
}

func (r *FriendRequestReadRepository) list(ctx context.Context, query string, args ...any) ([]models.FriendRequestDB, error) {
	var reqs []models.FriendRequestDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &reqs, query, args...)
	logQuery(query, args, len(reqs), err)
	if err != nil {
		return nil, err
	}
	for i := range reqs {
		if err := validateRecord(&reqs[i]); err != nil {
			return nil, err
		}
	}
	return reqs, nil
}

// FriendRequestWriteRepository handles friend request write operations
type FriendRequestWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewFriendRequestWriteRepository(db *sqlx.DB, txGetter TxGetter) *FriendRequestWriteRepository {
	return &FriendRequestWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a pending request. An open request or friendship between
// the same pair yields ErrConflict.
func (r *FriendRequestWriteRepository) Create(ctx context.Context, req *models.FriendRequestDB) error {
	query := `
		INSERT INTO friend_requests (request_id, requester_id, target_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	args := []any{req.RequestID, req.RequesterID, req.TargetID, string(req.Status), req.CreatedAt}
	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	logQuery(query, args, req.RequestID, err)
	return translate(err)
}

// UpdateStatus moves a pending request to status. Requests that are no
// longer pending are left untouched and yield ErrNotFound.
func (r *FriendRequestWriteRepository) UpdateStatus(ctx context.Context, requestID uuid.UUID, status models.FriendRequestStatus, updatedAt time.Time) error {
	query := `
		UPDATE friend_requests
		SET status = $2, updated_at = $3
		WHERE request_id = $1 AND status = 'pending'
	`
	return execOne(ctx, executor(ctx, r.db, r.txGetter), query, requestID, string(status), updatedAt)
}

func (r *FriendRequestWriteRepository) Delete(ctx context.Context, requestID uuid.UUID) error {
	query := `DELETE FROM friend_requests WHERE request_id = $1`
	return execOne(ctx, executor(ctx, r.db, r.txGetter), query, requestID)
}

// DeleteByAccount removes every request involving the account.
func (r *FriendRequestWriteRepository) DeleteByAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	query := `DELETE FROM friend_requests WHERE requester_id = $1 OR target_id = $1`
	return execAffected(ctx, executor(ctx, r.db, r.txGetter), query, accountID)
}
