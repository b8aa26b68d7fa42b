package services

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sbilibin2017/expertise-hunt/internal/logger"
	"github.com/sbilibin2017/expertise-hunt/internal/models"
	"github.com/sbilibin2017/expertise-hunt/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

const maxUsernameLength = 50

// AccountWriter defines write operations used by account lifecycle.
type AccountWriter interface {
	Create(ctx context.Context, account *models.AccountDB) error                        // Inserts an account, ErrConflict on taken email
	AdjustFriendCount(ctx context.Context, accountID uuid.UUID, delta int) (int, error) // Adds delta, floored at zero
	Delete(ctx context.Context, accountID uuid.UUID) error                              // Removes the account row
}

// AccountRequests lists and removes every request an account takes part in.
type AccountRequests interface {
	ListByAccountForUpdate(ctx context.Context, accountID uuid.UUID) ([]models.FriendRequestDB, error)
	DeleteByAccount(ctx context.Context, accountID uuid.UUID) (int64, error)
}

// ImageDeleter removes an account's profile image.
type ImageDeleter interface {
	Delete(ctx context.Context, accountID uuid.UUID) error
}

// HumanIDManager allocates and releases human ids.
type HumanIDManager interface {
	Allocate(ctx context.Context, accountID uuid.UUID) (string, error) // Claims a free id, retrying collisions only
	Release(ctx context.Context, accountID uuid.UUID) (string, error)  // Frees the account's id
	Evict(ctx context.Context, humanID string)                         // Drops a cached lookup
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, accountID uuid.UUID) (string, error)
}

// AuthService handles registration, login and account deletion.
type AuthService struct {
	tx       TxRunner
	identity IdentityProvider
	reader   AccountReader
	writer   AccountWriter
	humanIDs HumanIDManager
	requests AccountRequests
	images   ImageDeleter
	events   EventWriter
	jwt      JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	tx TxRunner,
	identity IdentityProvider,
	reader AccountReader,
	writer AccountWriter,
	humanIDs HumanIDManager,
	requests AccountRequests,
	images ImageDeleter,
	events EventWriter,
	jwt JWTGenerator,
) *AuthService {
	return &AuthService{
		tx:       tx,
		identity: identity,
		reader:   reader,
		writer:   writer,
		humanIDs: humanIDs,
		requests: requests,
		images:   images,
		events:   events,
		jwt:      jwt,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account with a fresh human id. The account and its id
// are written in one transaction.
func (svc *AuthService) Register(ctx context.Context, email, password, username string) (*models.AccountSummary, error) {
	email = normalizeEmail(email)
	if _, err := mail.ParseAddress(email); err != nil || password == "" {
		return nil, ErrInvalidCredentials
	}
	username = strings.TrimSpace(username)
	if utf8.RuneCountInString(username) > maxUsernameLength {
		return nil, ErrInvalidUsername
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	account := &models.AccountDB{
		AccountID:    uuid.New(),
		Email:        email,
		Username:     username,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now().UTC(),
	}

	err = svc.tx.WithinTx(ctx, func(ctx context.Context) error {
		_, err := svc.reader.GetByEmail(ctx, email)
		if err == nil {
			return ErrEmailTaken
		}
		if !errors.Is(err, repositories.ErrNotFound) {
			return storeError("check email", err)
		}

		if err := svc.writer.Create(ctx, account); err != nil {
			if errors.Is(err, repositories.ErrConflict) {
				return ErrEmailTaken
			}
			return storeError("create account", err)
		}

		humanID, err := svc.humanIDs.Allocate(ctx, account.AccountID)
		if err != nil {
			return err
		}
		account.HumanID = &humanID
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to register account", "email", email, "error", err)
		return nil, classify("register account", err)
	}

	summary := account.Summary()
	return &summary, nil
}

// Login authenticates an account and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)

	account, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.Log.Errorw("account does not exist", "email", email)
			return "", ErrInvalidCredentials
		}
		logger.Log.Errorw("failed to get account", "err", err)
		return "", storeError("get account", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, account.AccountID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// DeleteAccount tears down the caller's account in one transaction: every
// friend loses one from their count, all requests involving the account are
// removed, and the human id, profile image and account row are deleted.
func (svc *AuthService) DeleteAccount(ctx context.Context) error {
	me, err := currentIdentity(ctx, svc.identity)
	if err != nil {
		return err
	}

	var releasedID string
	err = svc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := svc.reader.GetByID(ctx, me); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrAccountNotFound
			}
			return storeError("load account", err)
		}

		related, err := svc.requests.ListByAccountForUpdate(ctx, me)
		if err != nil {
			return storeError("list account requests", err)
		}

		var friends []uuid.UUID
		notified := make(map[uuid.UUID]bool)
		var events []models.Event
		for i := range related {
			other := related[i].Counterpart(me)
			if related[i].Status == models.StatusAccepted {
				friends = append(friends, other)
			}
			if related[i].Status != models.StatusRejected && !notified[other] {
				notified[other] = true
				events = append(events, models.NewEvent(models.EventAccountDeleted, me, other, nil))
			}
		}

		if err := adjustCounts(ctx, svc.writer, -1, friends...); err != nil {
			return err
		}
		if _, err := svc.requests.DeleteByAccount(ctx, me); err != nil {
			return storeError("delete account requests", err)
		}
		if releasedID, err = svc.humanIDs.Release(ctx, me); err != nil {
			return err
		}
		if err := svc.images.Delete(ctx, me); err != nil {
			return storeError("delete profile image", err)
		}
		if err := svc.writer.Delete(ctx, me); err != nil {
			return storeError("delete account", err)
		}
		if len(events) > 0 {
			if err := svc.events.Save(ctx, events...); err != nil {
				return storeError("save events", err)
			}
		}
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to delete account", "account_id", me, "error", err)
		return classify("delete account", err)
	}

	svc.humanIDs.Evict(ctx, releasedID)
	return nil
}
