package services

import (
	"context"
	"sync"

	"github.com/sbilibin2017/expertise-hunt/internal/logger"
	"github.com/sbilibin2017/expertise-hunt/internal/models"
)

// Subscription is a live view of a list of friend requests. Updates delivers
// the full list each time it may have changed and is closed when the
// subscription ends.
type Subscription struct {
	updates chan []models.FriendRequest
	stream  models.NotificationStream
	fetch   func(ctx context.Context) ([]models.FriendRequest, error)
	cancel  context.CancelFunc
	done    chan struct{}

	mu  sync.Mutex
	err error

	closeOnce sync.Once
}

// NewSubscription starts delivering initial, then the result of fetch after
// every notification on stream. The subscription owns stream.
func NewSubscription(
	ctx context.Context,
	stream models.NotificationStream,
	initial []models.FriendRequest,
	fetch func(ctx context.Context) ([]models.FriendRequest, error),
) *Subscription {
	ctx, cancel := context.WithCancel(ctx)
	sub := &Subscription{
		updates: make(chan []models.FriendRequest, 1),
		stream:  stream,
		fetch:   fetch,
		cancel:  cancel,
		done:    make(chan struct{}),
	}
	sub.updates <- initial
	go sub.run(ctx)
	return sub
}

func (s *Subscription) run(ctx context.Context) {
	defer close(s.done)
	defer close(s.updates)
	defer func() {
		if err := s.stream.Close(); err != nil {
			logger.Log.Warnw("failed to close notification stream", "error", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-s.stream.Notifications():
			if !ok {
				s.setErr(ErrTransientStore)
				return
			}
			list, err := s.fetch(ctx)
			if err != nil {
				if ctx.Err() == nil {
					s.setErr(err)
				}
				return
			}
			select {
			case s.updates <- list:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (s *Subscription) setErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Updates returns the channel of request lists.
func (s *Subscription) Updates() <-chan []models.FriendRequest {
	return s.updates
}

// Err reports why the subscription ended on its own. It stays nil while the
// subscription runs and when it was ended by Close.
func (s *Subscription) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Close stops the subscription and releases the notification stream. It is
// safe to call more than once.
func (s *Subscription) Close() error {
	s.closeOnce.Do(func() {
		s.cancel()
		<-s.done
	})
	return nil
}
