package models

import (
	"time"

	"github.com/google/uuid"
)

// AccountDB represents an account row in the database
type AccountDB struct {
	AccountID       uuid.UUID `json:"account_id" db:"account_id" validate:"required"`    // Primary key
	HumanID         *string   `json:"human_id" db:"human_id" validate:"omitempty,len=6"` // Public 6-digit lookup id (joined from human_ids)
	Email           string    `json:"email" db:"email" validate:"required"`              // Unique email
	Username        string    `json:"username" db:"username" validate:"max=50"`          // Display name, may be empty
	PasswordHash    string    `json:"-" db:"password_hash"`                              // bcrypt hash
	FriendCount     int       `json:"friend_count" db:"friend_count" validate:"gte=0"`   // Cached number of accepted friendships
	Score           int       `json:"score" db:"score"`                                  // Accumulated game score
	ProfileImageRef *string   `json:"profile_image_ref" db:"profile_image_ref"`          // Reference to the stored profile image
	CreatedAt       time.Time `json:"created_at" db:"created_at" validate:"required"`    // Creation timestamp, immutable
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`                        // Last update timestamp
}

// AccountSummary is the public view of an account shown in friend lists and profiles.
type AccountSummary struct {
	AccountID       uuid.UUID `json:"account_id"`
	HumanID         string    `json:"user_id"`
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	FriendCount     int       `json:"friend_count"`
	Score           int       `json:"score"`
	ProfileImageRef *string   `json:"profile_image_ref,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// Summary converts a database row into its public view.
func (a *AccountDB) Summary() AccountSummary {
	s := AccountSummary{
		AccountID:       a.AccountID,
		Username:        a.Username,
		Email:           a.Email,
		FriendCount:     a.FriendCount,
		Score:           a.Score,
		ProfileImageRef: a.ProfileImageRef,
		CreatedAt:       a.CreatedAt,
	}
	if a.HumanID != nil {
		s.HumanID = *a.HumanID
	}
	return s
}
