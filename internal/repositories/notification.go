package repositories

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/expertise-hunt/internal/logger"
	"github.com/sbilibin2017/expertise-hunt/internal/models"
)

// RequestNotificationRepository publishes and subscribes to per-account
// friend request notifications over Redis pub/sub.
type RequestNotificationRepository struct {
	client *redis.Client
}

func NewRequestNotificationRepository(client *redis.Client) *RequestNotificationRepository {
	return &RequestNotificationRepository{client: client}
}

func requestChannel(accountID uuid.UUID) string {
	return fmt.Sprintf("friend_requests:%s", accountID)
}

// Publish notifies subscribers of accountID that an event of eventType happened.
func (r *RequestNotificationRepository) Publish(ctx context.Context, accountID uuid.UUID, eventType models.EventType) error {
	channel := requestChannel(accountID)
	receivers, err := r.client.Publish(ctx, channel, string(eventType)).Result()
	logger.Log.Infow("channel", channel, "message", eventType, "result", receivers, "error", err)
	return err
}

// Subscribe opens a notification stream for accountID. The subscription is
// confirmed before Subscribe returns, so no later publish is missed.
func (r *RequestNotificationRepository) Subscribe(ctx context.Context, accountID uuid.UUID) (models.NotificationStream, error) {
	channel := requestChannel(accountID)
	pubsub := r.client.Subscribe(ctx, channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		logger.Log.Errorw("subscribe failed", "channel", channel, "error", err)
		return nil, err
	}

	s := &notificationStream{
		pubsub: pubsub,
		out:    make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	go s.forward(pubsub.Channel())
	return s, nil
}

type notificationStream struct {
	pubsub *redis.PubSub
	out    chan struct{}
	done   chan struct{}
	once   sync.Once
}

// forward coalesces bursts of messages: a pending signal absorbs later ones.
func (s *notificationStream) forward(in <-chan *redis.Message) {
	defer close(s.out)
	for {
		select {
		case <-s.done:
			return
		case _, ok := <-in:
			if !ok {
				return
			}
			select {
			case s.out <- struct{}{}:
			default:
			}
		}
	}
}

func (s *notificationStream) Notifications() <-chan struct{} {
	return s.out
}

func (s *notificationStream) Close() error {
	var err error
	s.once.Do(func() {
		close(s.done)
		err = s.pubsub.Close()
	})
	return err
}
