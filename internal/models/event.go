package models

import (
	"time"

	"github.com/google/uuid"
)

// EventType names a change in the friend graph.
type EventType string

const (
	EventRequestSent       EventType = "friend_request.sent"
	EventRequestAccepted   EventType = "friend_request.accepted"
	EventRequestRejected   EventType = "friend_request.rejected"
	EventRequestCancelled  EventType = "friend_request.cancelled"
	EventFriendshipRemoved EventType = "friendship.removed"
	EventAccountDeleted    EventType = "account.deleted"
)

// Event is a friend-graph change written to the outbox in the same transaction
// as the change itself and later published to Kafka and the recipient's channel.
type Event struct {
	EventID     uuid.UUID  `json:"event_id" db:"event_id"`         // Unique event identifier, also the Kafka key
	Type        EventType  `json:"type" db:"event_type"`           // What happened
	ActorID     uuid.UUID  `json:"actor_id" db:"actor_id"`         // Account that caused the change
	RecipientID uuid.UUID  `json:"recipient_id" db:"recipient_id"` // Account that should be notified
	RequestID   *uuid.UUID `json:"request_id,omitempty" db:"request_id"`
	Timestamp   int64      `json:"timestamp" db:"-"` // Unix seconds
	CreatedAt   time.Time  `json:"-" db:"created_at"`
}

// NewEvent builds an event stamped with a fresh id and the current time.
func NewEvent(eventType EventType, actorID, recipientID uuid.UUID, requestID *uuid.UUID) Event {
	now := time.Now().UTC()
	return Event{
		EventID:     uuid.New(),
		Type:        eventType,
		ActorID:     actorID,
		RecipientID: recipientID,
		RequestID:   requestID,
		Timestamp:   now.Unix(),
		CreatedAt:   now,
	}
}
