package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/expertise-hunt/internal/models"
)

// OutboxRepository stores friend-graph events until the relay publishes them.
type OutboxRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewOutboxRepository(db *sqlx.DB, txGetter TxGetter) *OutboxRepository {
	return &OutboxRepository{db: db, txGetter: txGetter}
}

// Save appends events to the outbox. Callers pass a ctx carrying the
// transaction of the change the events describe.
func (r *OutboxRepository) Save(ctx context.Context, events ...models.Event) error {
	query := `
		INSERT INTO outbox (event_id, event_type, recipient_id, payload, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	exec := executor(ctx, r.db, r.txGetter)
	for _, e := range events {
		payload, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("encode event %s: %w", e.EventID, err)
		}
		_, err = exec.ExecContext(ctx, query, e.EventID, string(e.Type), e.RecipientID, string(payload), e.CreatedAt)
		logQuery(query, []any{e.EventID, e.Type, e.RecipientID}, e.EventID, err)
		if err != nil {
			return err
		}
	}
	return nil
}

// FetchBatch returns up to limit of the oldest events, locking them so that
// concurrent relays skip rows already being published.
func (r *OutboxRepository) FetchBatch(ctx context.Context, limit int) ([]models.Event, error) {
	query := `
		SELECT event_id, payload
		FROM outbox
		ORDER BY created_at
		LIMIT $1
		FOR UPDATE SKIP LOCKED
	`
	var rows []struct {
		EventID uuid.UUID `db:"event_id"`
		Payload []byte    `db:"payload"`
	}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &rows, query, limit)
	logQuery(query, []any{limit}, len(rows), err)
	if err != nil {
		return nil, err
	}

	events := make([]models.Event, 0, len(rows))
	for _, row := range rows {
		var e models.Event
		if err := json.Unmarshal(row.Payload, &e); err != nil {
			return nil, fmt.Errorf("%w: outbox event %s: %v", ErrMalformedRecord, row.EventID, err)
		}
		events = append(events, e)
	}
	return events, nil
}

// Delete removes published events.
func (r *OutboxRepository) Delete(ctx context.Context, eventIDs ...uuid.UUID) error {
	query := `DELETE FROM outbox WHERE event_id = $1`
	exec := executor(ctx, r.db, r.txGetter)
	for _, id := range eventIDs {
		if _, err := execAffected(ctx, exec, query, id); err != nil {
			return err
		}
	}
	return nil
}
