package services

import (
	"errors"
	"fmt"

	"github.com/sbilibin2017/expertise-hunt/internal/repositories"
)

var (
	ErrNotAuthenticated    = errors.New("not authenticated")
	ErrInvalidTarget       = errors.New("invalid target")
	ErrAlreadyFriends      = errors.New("already friends")
	ErrDuplicateRequest    = errors.New("friend request already pending")
	ErrRequestNotFound     = errors.New("friend request not found")
	ErrInvalidState        = errors.New("friend request is not pending")
	ErrRelationNotFound    = errors.New("friendship not found")
	ErrAllocationExhausted = errors.New("human id allocation exhausted")

	// ErrTransientStore marks a backend failure. It is returned joined with the
	// original cause and never retried here.
	ErrTransientStore = errors.New("store unavailable")

	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountNotFound    = errors.New("account not found")
	ErrPlayerNotFound     = errors.New("player not found")
	ErrInvalidGuess       = errors.New("guess must be a finite number")
	ErrImageNotFound      = errors.New("profile image not found")
	ErrInvalidImage       = errors.New("profile image must be a JPEG or PNG of at most 5 MiB")
	ErrInvalidUsername    = errors.New("username must be 1 to 50 characters")
	ErrAlreadyGuessed     = errors.New("player already guessed")

	ErrQuestionNotFound = errors.New("question not found")
	ErrInvalidAnswer    = errors.New("answer is not one of the options")
	ErrInvalidCategory  = errors.New("invalid question category")
	ErrAlreadyAnswered  = errors.New("question already answered")
)

var kinds = []error{
	ErrNotAuthenticated, ErrInvalidTarget, ErrAlreadyFriends, ErrDuplicateRequest,
	ErrRequestNotFound, ErrInvalidState, ErrRelationNotFound, ErrAllocationExhausted,
	ErrTransientStore, ErrEmailTaken, ErrInvalidCredentials, ErrAccountNotFound,
	ErrPlayerNotFound, ErrInvalidGuess, ErrImageNotFound, ErrInvalidImage, ErrInvalidUsername,
	ErrAlreadyGuessed, ErrQuestionNotFound, ErrInvalidAnswer, ErrInvalidCategory, ErrAlreadyAnswered,
	repositories.ErrMalformedRecord,
}

// storeError classifies an error coming from a repository. Malformed rows keep
// their own kind; everything else is a transient store failure.
func storeError(op string, err error) error {
	if errors.Is(err, repositories.ErrMalformedRecord) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrTransientStore, err)
}

// classify leaves already classified errors untouched and treats the rest,
// such as begin or commit failures, as store failures.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	for _, kind := range kinds {
		if errors.Is(err, kind) {
			return err
		}
	}
	return storeError(op, err)
}
