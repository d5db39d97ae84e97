package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openjournal/blogd/internal/blog/domain"
	"github.com/openjournal/blogd/internal/blog/store"
	"github.com/openjournal/blogd/pkg/cryptox"
	"github.com/openjournal/blogd/pkg/idx"
)

var (
	ErrUsernameTaken      = errors.New("username_taken")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrMissingCredentials = errors.New("missing_credentials")
)

// UserService owns user records and the password invariant: every write path
// that sets a password hashes it here first, so the store never sees a
// plaintext value.
type UserService struct {
	Store store.Store
}

// Register creates a new user with a hashed password. Returns
// ErrUsernameTaken when the name is already in use; the uniqueness check is
// the store's constraint, so two concurrent registrations cannot both win.
func (s *UserService) Register(ctx context.Context, username, password string) (domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return domain.User{}, ErrMissingCredentials
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	u := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrUsernameTaken
		}
		return domain.User{}, err
	}

	// Re-read so the caller sees the store-assigned timestamps.
	return s.Store.Users().GetUserByID(ctx, u.ID)
}

// Authenticate checks a username/password pair. Unknown usernames and wrong
// passwords both come back as ErrInvalidCredentials so callers cannot probe
// which of the two was wrong.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		return domain.User{}, ErrInvalidCredentials
	}
	return u, nil
}

// SetPassword rehashes and stores a new password for an existing user. This
// is the only update path for the password field and it runs through the
// hash function like every other write.
func (s *UserService) SetPassword(ctx context.Context, userID, password string) error {
	if password == "" {
		return ErrMissingCredentials
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.Store.Users().UpdatePasswordHash(ctx, userID, hash)
}

// GetByID fetches a user by id.
func (s *UserService) GetByID(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}
