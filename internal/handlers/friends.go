package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/expertise-hunt/internal/models"
)

// FriendRequestSender sends friend requests by human id.
type FriendRequestSender interface {
	SendRequest(ctx context.Context, toHumanID string) (uuid.UUID, error)
}

// FriendRequestResolver answers or withdraws pending requests.
type FriendRequestResolver interface {
	AcceptRequest(ctx context.Context, requestID uuid.UUID) error // Target accepts
	RejectRequest(ctx context.Context, requestID uuid.UUID) error // Target declines
	CancelRequest(ctx context.Context, requestID uuid.UUID) error // Requester withdraws
}

// PendingRequestLister lists the caller's pending requests.
type PendingRequestLister interface {
	ListPendingIncoming(ctx context.Context) ([]models.FriendRequest, error)
	ListPendingOutgoing(ctx context.Context) ([]models.FriendRequest, error)
}

// FriendManager reads and removes friendships.
type FriendManager interface {
	ListFriends(ctx context.Context, accountID uuid.UUID) ([]models.AccountSummary, error)
	RemoveFriendship(ctx context.Context, friendID uuid.UUID) error
}

// SendFriendRequest represents the JSON body for a friend request
// swagger:model SendFriendRequest
type SendFriendRequest struct {
	// 6-digit user id of the target
	// required: true
	// default: 123456
	UserID string `json:"user_id" validate:"required,len=6,numeric"`
}

// SendFriendRequestResponse represents a created friend request
// swagger:model SendFriendRequestResponse
type SendFriendRequestResponse struct {
	// ID of the new request
	RequestID uuid.UUID `json:"request_id"`
}

// FriendRequestsResponse represents a list of friend requests
// swagger:model FriendRequestsResponse
type FriendRequestsResponse struct {
	Requests []models.FriendRequest `json:"requests"`
}

// FriendsResponse represents a list of friends
// swagger:model FriendsResponse
type FriendsResponse struct {
	Friends []models.AccountSummary `json:"friends"`
}

// NewSendFriendRequestHandler returns an HTTP handler for sending a friend request.
// @Summary Send friend request
// @Tags friends
// @Accept json
// @Produce json
// @Param request body handlers.SendFriendRequest true "Target user id"
// @Success 201 {object} handlers.SendFriendRequestResponse "Request sent"
// @Failure 400 {object} handlers.ErrorResponse "Invalid target"
// @Failure 409 {object} handlers.ErrorResponse "Already friends or request pending"
// @Router /friends/requests [post]
// @Security BearerAuth
func NewSendFriendRequestHandler(svc FriendRequestSender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SendFriendRequest
		if err := decodeJSON(r, &req); err != nil {
			writeBadRequest(w, err.Error())
			return
		}

		requestID, err := svc.SendRequest(r.Context(), req.UserID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, SendFriendRequestResponse{RequestID: requestID})
	}
}

func resolveRequest(action func(ctx context.Context, requestID uuid.UUID) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID, ok := uuidParam(r, "requestID")
		if !ok {
			writeBadRequest(w, "invalid request id")
			return
		}
		if err := action(r.Context(), requestID); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// NewAcceptFriendRequestHandler returns an HTTP handler for accepting a request.
// @Summary Accept friend request
// @Tags friends
// @Param requestID path string true "Request ID"
// @Success 204 "Accepted"
// @Failure 404 {object} handlers.ErrorResponse "Request not found"
// @Failure 409 {object} handlers.ErrorResponse "Request is not pending"
// @Router /friends/requests/{requestID}/accept [post]
// @Security BearerAuth
func NewAcceptFriendRequestHandler(svc FriendRequestResolver) http.HandlerFunc {
	return resolveRequest(svc.AcceptRequest)
}

// NewRejectFriendRequestHandler returns an HTTP handler for rejecting a request.
// @Summary Reject friend request
// @Tags friends
// @Param requestID path string true "Request ID"
// @Success 204 "Rejected"
// @Failure 404 {object} handlers.ErrorResponse "Request not found"
// @Failure 409 {object} handlers.ErrorResponse "Request is not pending"
// @Router /friends/requests/{requestID}/reject [post]
// @Security BearerAuth
func NewRejectFriendRequestHandler(svc FriendRequestResolver) http.HandlerFunc {
	return resolveRequest(svc.RejectRequest)
}

// NewCancelFriendRequestHandler returns an HTTP handler for withdrawing a request.
// @Summary Cancel friend request
// @Tags friends
// @Param requestID path string true "Request ID"
// @Success 204 "Cancelled"
// @Failure 404 {object} handlers.ErrorResponse "Request not found"
// @Router /friends/requests/{requestID} [delete]
// @Security BearerAuth
func NewCancelFriendRequestHandler(svc FriendRequestResolver) http.HandlerFunc {
	return resolveRequest(svc.CancelRequest)
}

// NewListIncomingRequestsHandler returns an HTTP handler listing pending
// requests sent to the caller.
// @Summary List incoming requests
// @Tags friends
// @Produce json
// @Success 200 {object} handlers.FriendRequestsResponse "Pending incoming requests"
// @Router /friends/requests/incoming [get]
// @Security BearerAuth
func NewListIncomingRequestsHandler(svc PendingRequestLister) http.HandlerFunc {
	return listRequests(svc.ListPendingIncoming)
}

// NewListOutgoingRequestsHandler returns an HTTP handler listing pending
// requests the caller sent.
// @Summary List outgoing requests
// @Tags friends
// @Produce json
// @Success 200 {object} handlers.FriendRequestsResponse "Pending outgoing requests"
// @Router /friends/requests/outgoing [get]
// @Security BearerAuth
func NewListOutgoingRequestsHandler(svc PendingRequestLister) http.HandlerFunc {
	return listRequests(svc.ListPendingOutgoing)
}

func listRequests(list func(ctx context.Context) ([]models.FriendRequest, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requests, err := list(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		if requests == nil {
			requests = []models.FriendRequest{}
		}
		writeJSON(w, http.StatusOK, FriendRequestsResponse{Requests: requests})
	}
}

// NewListFriendsHandler returns an HTTP handler listing an account's friends.
// @Summary List friends
// @Tags friends
// @Produce json
// @Param accountID path string true "Account ID"
// @Success 200 {object} handlers.FriendsResponse "Friends"
// @Failure 400 {object} handlers.ErrorResponse "Invalid account id"
// @Router /friends/{accountID} [get]
// @Security BearerAuth
func NewListFriendsHandler(svc FriendManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := uuidParam(r, "accountID")
		if !ok {
			writeBadRequest(w, "invalid account id")
			return
		}

		friends, err := svc.ListFriends(r.Context(), accountID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if friends == nil {
			friends = []models.AccountSummary{}
		}
		writeJSON(w, http.StatusOK, FriendsResponse{Friends: friends})
	}
}

// NewRemoveFriendHandler returns an HTTP handler ending a friendship.
// @Summary Remove friend
// @Tags friends
// @Param accountID path string true "Friend's account ID"
// @Success 204 "Removed"
// @Failure 404 {object} handlers.ErrorResponse "Friendship not found"
// @Router /friends/{accountID} [delete]
// @Security BearerAuth
func NewRemoveFriendHandler(svc FriendManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		friendID, ok := uuidParam(r, "accountID")
		if !ok {
			writeBadRequest(w, "invalid account id")
			return
		}
		if err := svc.RemoveFriendship(r.Context(), friendID); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
