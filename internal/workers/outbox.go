// Package workers holds background loops started by the server.
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/expertise-hunt/internal/logger"
	"github.com/sbilibin2017/expertise-hunt/internal/models"
	"github.com/segmentio/kafka-go"
)

const (
	DefaultPollInterval = time.Second
	DefaultBatchSize    = 100
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// TxRunner runs fn in one transaction.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// OutboxStore reads and removes pending events.
type OutboxStore interface {
	FetchBatch(ctx context.Context, limit int) ([]models.Event, error) // Locks up to limit of the oldest events
	Delete(ctx context.Context, eventIDs ...uuid.UUID) error           // Removes published events
}

// Notifier wakes up live subscribers of an account.
type Notifier interface {
	Publish(ctx context.Context, accountID uuid.UUID, eventType models.EventType) error
}

// OutboxRelay publishes outbox events to Kafka and notifies their recipients.
// An event leaves the outbox only after Kafka accepted it, so delivery is at
// least once. Recipients are notified as soon as an event is fetched, so live
// subscribers keep up while Kafka is unavailable.
type OutboxRelay struct {
	tx       TxRunner
	store    OutboxStore
	writer   KafkaWriter
	notifier Notifier
	interval time.Duration
	batch    int

	mu       sync.Mutex
	notified map[uuid.UUID]struct{} // fetched and notified, not yet published
}

// Option configures an OutboxRelay.
type Option func(*OutboxRelay)

// WithPollInterval sets how often the outbox is polled.
func WithPollInterval(d time.Duration) Option {
	return func(r *OutboxRelay) {
		if d > 0 {
			r.interval = d
		}
	}
}

// WithBatchSize sets how many events one poll publishes at most.
func WithBatchSize(n int) Option {
	return func(r *OutboxRelay) {
		if n > 0 {
			r.batch = n
		}
	}
}

func NewOutboxRelay(tx TxRunner, store OutboxStore, writer KafkaWriter, notifier Notifier, opts ...Option) *OutboxRelay {
	r := &OutboxRelay{
		tx:       tx,
		store:    store,
		writer:   writer,
		notifier: notifier,
		interval: DefaultPollInterval,
		batch:    DefaultBatchSize,
		notified: make(map[uuid.UUID]struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run polls the outbox until ctx is cancelled. Failed batches stay in the
// outbox and are retried on the next tick.
func (r *OutboxRelay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	logger.Log.Infow("outbox relay started", "interval", r.interval, "batch_size", r.batch)
	for {
		select {
		case <-ctx.Done():
			logger.Log.Info("outbox relay stopped")
			return
		case <-ticker.C:
			for {
				n, err := r.RelayOnce(ctx)
				if err != nil {
					if ctx.Err() == nil {
						logger.Log.Errorw("failed to relay outbox batch", "error", err)
					}
					break
				}
				if n < r.batch {
					break
				}
			}
		}
	}
}

// RelayOnce publishes one batch and returns how many events it published.
func (r *OutboxRelay) RelayOnce(ctx context.Context) (int, error) {
	var fetched []models.Event
	err := r.tx.WithinTx(ctx, func(ctx context.Context) error {
		events, err := r.store.FetchBatch(ctx, r.batch)
		if err != nil {
			return fmt.Errorf("fetch outbox batch: %w", err)
		}
		if len(events) == 0 {
			return nil
		}
		fetched = events

		msgs := make([]kafka.Message, 0, len(events))
		ids := make([]uuid.UUID, 0, len(events))
		for _, e := range events {
			value, err := json.Marshal(e)
			if err != nil {
				return fmt.Errorf("encode event %s: %w", e.EventID, err)
			}
			msgs = append(msgs, kafka.Message{
				Key:   []byte(e.EventID.String()),
				Value: value,
				Time:  e.CreatedAt,
			})
			ids = append(ids, e.EventID)
		}

		if err := r.writer.WriteMessages(ctx, msgs...); err != nil {
			return fmt.Errorf("publish %d events: %w", len(msgs), err)
		}
		if err := r.store.Delete(ctx, ids...); err != nil {
			return fmt.Errorf("delete published events: %w", err)
		}
		return nil
	})

	// The rows are committed whether or not Kafka took them, so subscribers
	// are woken up either way. Each event is notified once.
	r.notify(ctx, fetched, err == nil)
	if err != nil {
		return 0, err
	}

	if len(fetched) > 0 {
		logger.Log.Infow("outbox events published", "count", len(fetched))
	}
	return len(fetched), nil
}

// notify publishes a notification for every event not notified before.
// Notifications only wake subscribers up; they re-read the store, so a lost
// one is repaired by the next event.
func (r *OutboxRelay) notify(ctx context.Context, events []models.Event, published bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Events fetched here but published by another relay would stay forever.
	if len(r.notified) > 10*r.batch {
		r.notified = make(map[uuid.UUID]struct{})
	}

	for _, e := range events {
		if _, done := r.notified[e.EventID]; !done {
			if err := r.notifier.Publish(ctx, e.RecipientID, e.Type); err != nil {
				logger.Log.Warnw("failed to notify recipient", "event_id", e.EventID, "recipient_id", e.RecipientID, "error", err)
			}
		}
		if published {
			delete(r.notified, e.EventID)
		} else {
			r.notified[e.EventID] = struct{}{}
		}
	}
}
