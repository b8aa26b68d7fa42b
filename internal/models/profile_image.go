package models

import (
	"time"

	"github.com/google/uuid"
)

// ProfileImageDB represents a stored profile image, one per account.
type ProfileImageDB struct {
	AccountID   uuid.UUID `db:"account_id" validate:"required"`
	ImageRef    string    `db:"image_ref" validate:"required"`
	ContentType string    `db:"content_type" validate:"required,oneof=image/jpeg image/png"`
	Data        []byte    `db:"data" validate:"required"`
	UpdatedAt   time.Time `db:"updated_at"`
}
