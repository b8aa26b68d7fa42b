package models

import (
	"time"

	"github.com/google/uuid"
)

// FriendRequestStatus defines the lifecycle state of a friend request.
type FriendRequestStatus string

const (
	// StatusPending means the request was sent and awaits the target's answer.
	StatusPending FriendRequestStatus = "pending"

	// StatusAccepted means the target accepted; the record now represents the friendship.
	StatusAccepted FriendRequestStatus = "accepted"

	// StatusRejected is terminal. A rejected record does not block a new request.
	StatusRejected FriendRequestStatus = "rejected"
)

// FriendRequestDB represents a friend_requests row in the database
type FriendRequestDB struct {
	RequestID   uuid.UUID           `json:"request_id" db:"request_id" validate:"required"`                         // Unique request identifier
	RequesterID uuid.UUID           `json:"requester_id" db:"requester_id" validate:"required"`                     // Account that sent the request
	TargetID    uuid.UUID           `json:"target_id" db:"target_id" validate:"required"`                           // Account the request was sent to
	Status      FriendRequestStatus `json:"status" db:"status" validate:"required,oneof=pending accepted rejected"` // Lifecycle state
	CreatedAt   time.Time           `json:"created_at" db:"created_at" validate:"required"`                         // When the request was sent
	UpdatedAt   *time.Time          `json:"updated_at,omitempty" db:"updated_at"`                                   // Set on every status transition
}

// Involves reports whether accountID is one side of the request.
func (r *FriendRequestDB) Involves(accountID uuid.UUID) bool {
	return r.RequesterID == accountID || r.TargetID == accountID
}

// Counterpart returns the other side of the request relative to accountID.
func (r *FriendRequestDB) Counterpart(accountID uuid.UUID) uuid.UUID {
	if r.RequesterID == accountID {
		return r.TargetID
	}
	return r.RequesterID
}

// FriendRequest is a request as returned to clients, optionally enriched with
// the profile of the account on the other side.
type FriendRequest struct {
	RequestID   uuid.UUID           `json:"request_id"`
	RequesterID uuid.UUID           `json:"requester_id"`
	TargetID    uuid.UUID           `json:"target_id"`
	Status      FriendRequestStatus `json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   *time.Time          `json:"updated_at,omitempty"`
	Requester   *AccountSummary     `json:"requester,omitempty"`
	Target      *AccountSummary     `json:"target,omitempty"`
}

// View converts a database row into its client view.
func (r *FriendRequestDB) View() FriendRequest {
	return FriendRequest{
		RequestID:   r.RequestID,
		RequesterID: r.RequesterID,
		TargetID:    r.TargetID,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
