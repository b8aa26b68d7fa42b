package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sbilibin2017/expertise-hunt/internal/logger"
	"github.com/sbilibin2017/expertise-hunt/internal/models"
	"github.com/sbilibin2017/expertise-hunt/internal/repositories"
)

// MaxImageSize is the largest accepted profile image.
const MaxImageSize = 5 << 20

var imageExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
}

// ProfileWriter updates profile fields of an account.
type ProfileWriter interface {
	UpdateUsername(ctx context.Context, accountID uuid.UUID, username string) error
	UpdateProfileImageRef(ctx context.Context, accountID uuid.UUID, ref *string) error
}

// ProfileImageStore stores profile images.
type ProfileImageStore interface {
	Save(ctx context.Context, img *models.ProfileImageDB) error                   // Inserts or replaces the image
	Get(ctx context.Context, accountID uuid.UUID) (*models.ProfileImageDB, error) // Returns ErrNotFound when missing
}

// ProfileService reads and edits account profiles.
type ProfileService struct {
	tx       TxRunner
	identity IdentityProvider
	reader   AccountReader
	writer   ProfileWriter
	images   ProfileImageStore
}

func NewProfileService(tx TxRunner, identity IdentityProvider, reader AccountReader, writer ProfileWriter, images ProfileImageStore) *ProfileService {
	return &ProfileService{tx: tx, identity: identity, reader: reader, writer: writer, images: images}
}

// GetProfile returns the public profile of accountID.
func (s *ProfileService) GetProfile(ctx context.Context, accountID uuid.UUID) (*models.AccountSummary, error) {
	if _, err := currentIdentity(ctx, s.identity); err != nil {
		return nil, err
	}
	return s.summary(ctx, accountID)
}

func (s *ProfileService) summary(ctx context.Context, accountID uuid.UUID) (*models.AccountSummary, error) {
	account, err := s.reader.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, storeError("load account", err)
	}
	summary := account.Summary()
	return &summary, nil
}

// UpdateUsername sets the caller's display name.
func (s *ProfileService) UpdateUsername(ctx context.Context, username string) (*models.AccountSummary, error) {
	me, err := currentIdentity(ctx, s.identity)
	if err != nil {
		return nil, err
	}

	username = strings.TrimSpace(username)
	if n := utf8.RuneCountInString(username); n == 0 || n > maxUsernameLength {
		return nil, ErrInvalidUsername
	}

	if err := s.writer.UpdateUsername(ctx, me, username); err != nil {
		logger.Log.Errorw("failed to update username", "account_id", me, "error", err)
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, storeError("update username", err)
	}
	return s.summary(ctx, me)
}

// UploadProfileImage replaces the caller's profile image and returns its new
// reference. The content type is sniffed from data.
func (s *ProfileService) UploadProfileImage(ctx context.Context, data []byte) (string, error) {
	me, err := currentIdentity(ctx, s.identity)
	if err != nil {
		return "", err
	}

	if len(data) == 0 || len(data) > MaxImageSize {
		return "", ErrInvalidImage
	}
	contentType := http.DetectContentType(data)
	ext, ok := imageExtensions[contentType]
	if !ok {
		return "", ErrInvalidImage
	}

	ref := fmt.Sprintf("profile_images/%s/%s.%s", me, uuid.New(), ext)
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.writer.UpdateProfileImageRef(ctx, me, &ref); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrAccountNotFound
			}
			return storeError("update image reference", err)
		}
		img := &models.ProfileImageDB{
			AccountID:   me,
			ImageRef:    ref,
			ContentType: contentType,
			Data:        data,
			UpdatedAt:   time.Now().UTC(),
		}
		if err := s.images.Save(ctx, img); err != nil {
			return storeError("save image", err)
		}
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to upload profile image", "account_id", me, "error", err)
		return "", classify("upload profile image", err)
	}
	return ref, nil
}

// GetProfileImage returns the stored image of accountID.
func (s *ProfileService) GetProfileImage(ctx context.Context, accountID uuid.UUID) (*models.ProfileImageDB, error) {
	if _, err := currentIdentity(ctx, s.identity); err != nil {
		return nil, err
	}

	img, err := s.images.Get(ctx, accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrImageNotFound
		}
		return nil, storeError("load image", err)
	}
	return img, nil
}
