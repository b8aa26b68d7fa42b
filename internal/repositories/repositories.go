// Package repositories implements Postgres and Redis storage for accounts,
// human ids, friend requests, profile images, players and the event outbox.
package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/expertise-hunt/internal/logger"
)

var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when a write violates a uniqueness constraint.
	ErrConflict = errors.New("record conflict")

	// ErrMalformedRecord is returned when a scanned row fails validation.
	ErrMalformedRecord = errors.New("malformed record")
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

var validate = validator.New()

// TxGetter returns the transaction bound to ctx, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

// executor picks the transaction from ctx when present, otherwise the pool.
func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	var exec sqlx.ExtContext = db
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			exec = tx
		}
	}
	return exec
}

func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

// execAffected runs a statement and returns the number of rows it touched.
func execAffected(ctx context.Context, exec sqlx.ExtContext, query string, args ...any) (int64, error) {
	res, err := exec.ExecContext(ctx, query, args...)
	var affected int64
	if err == nil {
		affected, err = res.RowsAffected()
	}
	logQuery(query, args, affected, err)
	return affected, err
}

// execOne runs a statement that must touch exactly one row.
func execOne(ctx context.Context, exec sqlx.ExtContext, query string, args ...any) error {
	affected, err := execAffected(ctx, exec, query, args...)
	if err != nil {
		return translate(err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// translate maps driver errors onto the package sentinels.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return fmt.Errorf("%w: %s", ErrConflict, pgErr.ConstraintName)
		case foreignKeyViolationCode:
			// The referenced row, usually an account, is gone.
			return fmt.Errorf("%w: %s", ErrNotFound, pgErr.ConstraintName)
		}
	}
	return err
}

func validateRecord(record any) error {
	if err := validate.Struct(record); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	return nil
}
