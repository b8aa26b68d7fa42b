package services

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/expertise-hunt/internal/logger"
	"github.com/sbilibin2017/expertise-hunt/internal/models"
	"github.com/sbilibin2017/expertise-hunt/internal/repositories"
)

var humanIDPattern = regexp.MustCompile(`^[0-9]{6}$`)

// HumanIDResolver maps a public 6-digit id to an account.
type HumanIDResolver interface {
	Resolve(ctx context.Context, humanID string) (uuid.UUID, error) // Returns ErrInvalidTarget when unknown
	Evict(ctx context.Context, humanID string)                      // Drops a cached mapping
}

// FriendRequestReader defines read operations for friend requests.
type FriendRequestReader interface {
	GetByIDForUpdate(ctx context.Context, requestID uuid.UUID) (*models.FriendRequestDB, error) // Loads and locks one request
	ListBetween(ctx context.Context, a, b uuid.UUID) ([]models.FriendRequestDB, error)          // Requests between a pair, either direction
	ListAccepted(ctx context.Context, accountID uuid.UUID) ([]models.FriendRequestDB, error)    // Friendships of an account
	ListPendingIncoming(ctx context.Context, accountID uuid.UUID) ([]models.FriendRequestDB, error)
	ListPendingOutgoing(ctx context.Context, accountID uuid.UUID) ([]models.FriendRequestDB, error)
}

// FriendRequestWriter defines write operations for friend requests.
type FriendRequestWriter interface {
	Create(ctx context.Context, req *models.FriendRequestDB) error                                                       // Inserts a pending request
	UpdateStatus(ctx context.Context, requestID uuid.UUID, status models.FriendRequestStatus, updatedAt time.Time) error // Moves a pending request on
	Delete(ctx context.Context, requestID uuid.UUID) error                                                               // Removes a request or friendship
}

// NotificationSubscriber opens per-account change streams.
type NotificationSubscriber interface {
	Subscribe(ctx context.Context, accountID uuid.UUID) (models.NotificationStream, error)
}

// FriendService runs the friend request workflow. Every mutation, together
// with its friend count updates and outbox events, commits in one transaction.
type FriendService struct {
	tx            TxRunner
	identity      IdentityProvider
	resolver      HumanIDResolver
	accounts      AccountReader
	counts        FriendCountWriter
	requestReader FriendRequestReader
	requestWriter FriendRequestWriter
	events        EventWriter
	subscriber    NotificationSubscriber
}

// NewFriendService creates a new FriendService.
func NewFriendService(
	tx TxRunner,
	identity IdentityProvider,
	resolver HumanIDResolver,
	accounts AccountReader,
	counts FriendCountWriter,
	requestReader FriendRequestReader,
	requestWriter FriendRequestWriter,
	events EventWriter,
	subscriber NotificationSubscriber,
) *FriendService {
	return &FriendService{
		tx:            tx,
		identity:      identity,
		resolver:      resolver,
		accounts:      accounts,
		counts:        counts,
		requestReader: requestReader,
		requestWriter: requestWriter,
		events:        events,
		subscriber:    subscriber,
	}
}

// SendRequest creates a pending request from the caller to the account
// owning toHumanID.
func (s *FriendService) SendRequest(ctx context.Context, toHumanID string) (uuid.UUID, error) {
	from, err := currentIdentity(ctx, s.identity)
	if err != nil {
		return uuid.Nil, err
	}
	if !humanIDPattern.MatchString(toHumanID) {
		return uuid.Nil, ErrInvalidTarget
	}

	var requestID uuid.UUID
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		target, err := s.resolveTarget(ctx, toHumanID)
		if err != nil {
			return err
		}
		if target == from {
			return ErrInvalidTarget
		}

		existing, err := s.requestReader.ListBetween(ctx, from, target)
		if err != nil {
			return storeError("list requests between accounts", err)
		}
		for _, r := range existing {
			switch r.Status {
			case models.StatusAccepted:
				return ErrAlreadyFriends
			case models.StatusPending:
				return ErrDuplicateRequest
			}
		}

		req := &models.FriendRequestDB{
			RequestID:   uuid.New(),
			RequesterID: from,
			TargetID:    target,
			Status:      models.StatusPending,
			CreatedAt:   time.Now().UTC(),
		}
		if err := s.requestWriter.Create(ctx, req); err != nil {
			// A concurrent request for the same pair won the unique index.
			if errors.Is(err, repositories.ErrConflict) {
				return ErrDuplicateRequest
			}
			// The caller's account was deleted while its token is still valid.
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrAccountNotFound
			}
			return storeError("create friend request", err)
		}

		if err := s.events.Save(ctx, models.NewEvent(models.EventRequestSent, from, target, &req.RequestID)); err != nil {
			return storeError("save event", err)
		}
		requestID = req.RequestID
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to send friend request", "from", from, "to_human_id", toHumanID, "error", err)
		return uuid.Nil, classify("send friend request", err)
	}
	return requestID, nil
}

// resolveTarget maps humanID to the account that holds it now. A mapping
// whose account is gone or carries another id came from a stale cache entry;
// it is evicted and resolved once more.
func (s *FriendService) resolveTarget(ctx context.Context, humanID string) (uuid.UUID, error) {
	for attempt := 1; attempt <= 2; attempt++ {
		target, err := s.resolver.Resolve(ctx, humanID)
		if err != nil {
			return uuid.Nil, err
		}

		acc, err := s.accounts.GetByID(ctx, target)
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return uuid.Nil, storeError("load target account", err)
		}
		if err == nil && acc.HumanID != nil && *acc.HumanID == humanID {
			return target, nil
		}

		logger.Log.Warnw("stale human id mapping", "human_id", humanID, "account_id", target, "attempt", attempt)
		s.resolver.Evict(ctx, humanID)
	}
	return uuid.Nil, ErrInvalidTarget
}

// lockTargetRequest loads and locks a pending request addressed to the caller.
func (s *FriendService) lockTargetRequest(ctx context.Context, me, requestID uuid.UUID) (*models.FriendRequestDB, error) {
	req, err := s.requestReader.GetByIDForUpdate(ctx, requestID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, storeError("load friend request", err)
	}
	if !req.Involves(me) {
		return nil, ErrRequestNotFound
	}
	if req.RequesterID == me {
		return nil, ErrInvalidTarget
	}
	if req.Status != models.StatusPending {
		return nil, ErrInvalidState
	}
	return req, nil
}

// setStatus moves a locked pending request to status.
func (s *FriendService) setStatus(ctx context.Context, requestID uuid.UUID, status models.FriendRequestStatus) error {
	err := s.requestWriter.UpdateStatus(ctx, requestID, status, time.Now().UTC())
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrInvalidState
	}
	if err != nil {
		return storeError("update friend request", err)
	}
	return nil
}

// AcceptRequest accepts a pending request addressed to the caller and adds
// one to both friend counts.
func (s *FriendService) AcceptRequest(ctx context.Context, requestID uuid.UUID) error {
	me, err := currentIdentity(ctx, s.identity)
	if err != nil {
		return err
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		req, err := s.lockTargetRequest(ctx, me, requestID)
		if err != nil {
			return err
		}
		if err := s.setStatus(ctx, requestID, models.StatusAccepted); err != nil {
			return err
		}
		if err := adjustCounts(ctx, s.counts, 1, req.RequesterID, req.TargetID); err != nil {
			return err
		}
		if err := s.events.Save(ctx, models.NewEvent(models.EventRequestAccepted, me, req.RequesterID, &requestID)); err != nil {
			return storeError("save event", err)
		}
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to accept friend request", "account_id", me, "request_id", requestID, "error", err)
		return classify("accept friend request", err)
	}
	return nil
}

// RejectRequest rejects a pending request addressed to the caller. Rejecting
// a request that is no longer pending returns ErrInvalidState.
func (s *FriendService) RejectRequest(ctx context.Context, requestID uuid.UUID) error {
	me, err := currentIdentity(ctx, s.identity)
	if err != nil {
		return err
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		req, err := s.lockTargetRequest(ctx, me, requestID)
		if err != nil {
			return err
		}
		if err := s.setStatus(ctx, requestID, models.StatusRejected); err != nil {
			return err
		}
		if err := s.events.Save(ctx, models.NewEvent(models.EventRequestRejected, me, req.RequesterID, &requestID)); err != nil {
			return storeError("save event", err)
		}
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to reject friend request", "account_id", me, "request_id", requestID, "error", err)
		return classify("reject friend request", err)
	}
	return nil
}

// CancelRequest withdraws a pending request the caller sent.
func (s *FriendService) CancelRequest(ctx context.Context, requestID uuid.UUID) error {
	me, err := currentIdentity(ctx, s.identity)
	if err != nil {
		return err
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		req, err := s.requestReader.GetByIDForUpdate(ctx, requestID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrRequestNotFound
			}
			return storeError("load friend request", err)
		}
		if req.RequesterID != me {
			return ErrRequestNotFound
		}
		if req.Status != models.StatusPending {
			return ErrInvalidState
		}
		if err := s.requestWriter.Delete(ctx, requestID); err != nil {
			return storeError("delete friend request", err)
		}
		if err := s.events.Save(ctx, models.NewEvent(models.EventRequestCancelled, me, req.TargetID, &requestID)); err != nil {
			return storeError("save event", err)
		}
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to cancel friend request", "account_id", me, "request_id", requestID, "error", err)
		return classify("cancel friend request", err)
	}
	return nil
}

// RemoveFriendship ends the caller's friendship with friendID and takes one
// off both friend counts.
func (s *FriendService) RemoveFriendship(ctx context.Context, friendID uuid.UUID) error {
	me, err := currentIdentity(ctx, s.identity)
	if err != nil {
		return err
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		between, err := s.requestReader.ListBetween(ctx, me, friendID)
		if err != nil {
			return storeError("list requests between accounts", err)
		}

		var friendship *models.FriendRequestDB
		for i := range between {
			if between[i].Status == models.StatusAccepted {
				friendship = &between[i]
				break
			}
		}
		if friendship == nil {
			return ErrRelationNotFound
		}

		if err := s.requestWriter.Delete(ctx, friendship.RequestID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrRelationNotFound
			}
			return storeError("delete friendship", err)
		}
		if err := adjustCounts(ctx, s.counts, -1, me, friendID); err != nil {
			return err
		}
		if err := s.events.Save(ctx, models.NewEvent(models.EventFriendshipRemoved, me, friendID, &friendship.RequestID)); err != nil {
			return storeError("save event", err)
		}
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to remove friendship", "account_id", me, "friend_id", friendID, "error", err)
		return classify("remove friendship", err)
	}
	return nil
}

// ListFriends returns the accounts that share an accepted friendship with accountID.
func (s *FriendService) ListFriends(ctx context.Context, accountID uuid.UUID) ([]models.AccountSummary, error) {
	if _, err := currentIdentity(ctx, s.identity); err != nil {
		return nil, err
	}

	accepted, err := s.requestReader.ListAccepted(ctx, accountID)
	if err != nil {
		return nil, storeError("list friendships", err)
	}

	ids := make([]uuid.UUID, len(accepted))
	for i := range accepted {
		ids[i] = accepted[i].Counterpart(accountID)
	}
	summaries, err := loadSummaries(ctx, s.accounts, ids)
	if err != nil {
		return nil, err
	}

	friends := make([]models.AccountSummary, 0, len(summaries))
	for _, summary := range summaries {
		if summary != nil {
			friends = append(friends, *summary)
		}
	}
	return friends, nil
}

// ListPendingIncoming returns pending requests addressed to the caller,
// each with the requester's profile.
func (s *FriendService) ListPendingIncoming(ctx context.Context) ([]models.FriendRequest, error) {
	me, err := currentIdentity(ctx, s.identity)
	if err != nil {
		return nil, err
	}
	return s.pendingIncoming(ctx, me)
}

func (s *FriendService) pendingIncoming(ctx context.Context, me uuid.UUID) ([]models.FriendRequest, error) {
	pending, err := s.requestReader.ListPendingIncoming(ctx, me)
	if err != nil {
		return nil, storeError("list incoming requests", err)
	}

	ids := make([]uuid.UUID, len(pending))
	for i := range pending {
		ids[i] = pending[i].RequesterID
	}
	summaries, err := loadSummaries(ctx, s.accounts, ids)
	if err != nil {
		return nil, err
	}

	out := make([]models.FriendRequest, len(pending))
	for i := range pending {
		out[i] = pending[i].View()
		out[i].Requester = summaries[i]
	}
	return out, nil
}

// ListPendingOutgoing returns pending requests the caller sent, each with
// the target's profile.
func (s *FriendService) ListPendingOutgoing(ctx context.Context) ([]models.FriendRequest, error) {
	me, err := currentIdentity(ctx, s.identity)
	if err != nil {
		return nil, err
	}

	pending, err := s.requestReader.ListPendingOutgoing(ctx, me)
	if err != nil {
		return nil, storeError("list outgoing requests", err)
	}

	ids := make([]uuid.UUID, len(pending))
	for i := range pending {
		ids[i] = pending[i].TargetID
	}
	summaries, err := loadSummaries(ctx, s.accounts, ids)
	if err != nil {
		return nil, err
	}

	out := make([]models.FriendRequest, len(pending))
	for i := range pending {
		out[i] = pending[i].View()
		out[i].Target = summaries[i]
	}
	return out, nil
}

// SubscribePendingIncoming streams the caller's pending incoming requests:
// the current list first, then a fresh list after every change. The caller
// must Close the subscription.
func (s *FriendService) SubscribePendingIncoming(ctx context.Context) (*Subscription, error) {
	me, err := currentIdentity(ctx, s.identity)
	if err != nil {
		return nil, err
	}

	// Subscribe before the first read so no change slips in between.
	stream, err := s.subscriber.Subscribe(ctx, me)
	if err != nil {
		return nil, storeError("subscribe to requests", err)
	}

	initial, err := s.pendingIncoming(ctx, me)
	if err != nil {
		_ = stream.Close()
		return nil, err
	}

	return NewSubscription(ctx, stream, initial, func(ctx context.Context) ([]models.FriendRequest, error) {
		return s.pendingIncoming(ctx, me)
	}), nil
}
