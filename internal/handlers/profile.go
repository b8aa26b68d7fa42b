package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/sbilibin2017/expertise-hunt/internal/models"
	"github.com/sbilibin2017/expertise-hunt/internal/services"
)

// ProfileGetter returns public profiles.
type ProfileGetter interface {
	GetProfile(ctx context.Context, accountID uuid.UUID) (*models.AccountSummary, error)
}

// UsernameUpdater changes the caller's display name.
type UsernameUpdater interface {
	UpdateUsername(ctx context.Context, username string) (*models.AccountSummary, error)
}

// ProfileImageUploader replaces the caller's profile image.
type ProfileImageUploader interface {
	UploadProfileImage(ctx context.Context, data []byte) (string, error)
}

// ProfileImageGetter returns stored profile images.
type ProfileImageGetter interface {
	GetProfileImage(ctx context.Context, accountID uuid.UUID) (*models.ProfileImageDB, error)
}

// UpdateUsernameRequest represents the JSON body for a username change
// swagger:model UpdateUsernameRequest
type UpdateUsernameRequest struct {
	// New display name
	// required: true
	// default: striker9
	Username string `json:"username" validate:"required"`
}

// UploadImageResponse represents a successful image upload
// swagger:model UploadImageResponse
type UploadImageResponse struct {
	// Reference of the stored image
	ImageRef string `json:"image_ref"`
}

// NewGetProfileHandler returns an HTTP handler for reading a profile.
// @Summary Get profile
// @Tags profile
// @Produce json
// @Param accountID path string true "Account ID"
// @Success 200 {object} models.AccountSummary "Profile"
// @Failure 400 {object} handlers.ErrorResponse "Invalid account id"
// @Failure 404 {object} handlers.ErrorResponse "Account not found"
// @Router /profile/{accountID} [get]
// @Security BearerAuth
func NewGetProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := uuidParam(r, "accountID")
		if !ok {
			writeBadRequest(w, "invalid account id")
			return
		}

		profile, err := svc.GetProfile(r.Context(), accountID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, profile)
	}
}

// NewUpdateUsernameHandler returns an HTTP handler for changing the username.
// @Summary Update username
// @Tags profile
// @Accept json
// @Produce json
// @Param request body handlers.UpdateUsernameRequest true "New username"
// @Success 200 {object} models.AccountSummary "Updated profile"
// @Failure 400 {object} handlers.ErrorResponse "Invalid username"
// @Router /profile/username [patch]
// @Security BearerAuth
func NewUpdateUsernameHandler(svc UsernameUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateUsernameRequest
		if err := decodeJSON(r, &req); err != nil {
			writeBadRequest(w, err.Error())
			return
		}

		profile, err := svc.UpdateUsername(r.Context(), req.Username)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, profile)
	}
}

// NewUploadProfileImageHandler returns an HTTP handler that stores the raw
// request body as the caller's profile image.
// @Summary Upload profile image
// @Description Accepts a raw JPEG or PNG body of at most 5 MiB. The format is detected from the content.
// @Tags profile
// @Accept image/jpeg,image/png
// @Produce json
// @Success 200 {object} handlers.UploadImageResponse "Image stored"
// @Failure 400 {object} handlers.ErrorResponse "Invalid image"
// @Router /profile/image [put]
// @Security BearerAuth
func NewUploadProfileImageHandler(svc ProfileImageUploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, services.MaxImageSize))
		if err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				writeError(w, r, services.ErrInvalidImage)
				return
			}
			writeBadRequest(w, err.Error())
			return
		}

		ref, err := svc.UploadProfileImage(r.Context(), data)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, UploadImageResponse{ImageRef: ref})
	}
}

// NewGetProfileImageHandler returns an HTTP handler serving a profile image.
// @Summary Get profile image
// @Tags profile
// @Produce image/jpeg,image/png
// @Param accountID path string true "Account ID"
// @Success 200 {file} binary "Image"
// @Failure 404 {object} handlers.ErrorResponse "Image not found"
// @Router /profile/{accountID}/image [get]
// @Security BearerAuth
func NewGetProfileImageHandler(svc ProfileImageGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := uuidParam(r, "accountID")
		if !ok {
			writeBadRequest(w, "invalid account id")
			return
		}

		img, err := svc.GetProfileImage(r.Context(), accountID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", img.ContentType)
		w.Header().Set("Content-Length", strconv.Itoa(len(img.Data)))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(img.Data)
	}
}
