package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/aussiebroadwan/taskboard/internal/todo/domain"
	"github.com/aussiebroadwan/taskboard/internal/todo/store"
	"github.com/aussiebroadwan/taskboard/pkg/idx"
)

// PasswordHasher is the one-way hashing capability. The registry never looks
// inside the hash string.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(encoded, password string) (bool, error)
}

// UserService registers users and checks their credentials.
type UserService struct {
	Store  store.Store
	IDs    idx.Generator
	Hasher PasswordHasher
}

// CreateUser registers username with a hashed password and returns the new
// user id. Username uniqueness is decided by the store's constraint, so
// concurrent signups for one name yield exactly one success.
func (s *UserService) CreateUser(ctx context.Context, username, password string) (uint64, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return 0, domain.ErrEmptyCredentials
	}
	if strings.IndexFunc(username, unicode.IsSpace) >= 0 {
		return 0, domain.ErrUsernameHasSpace
	}

	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	u := domain.User{
		ID:           s.IDs.Next(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return 0, s.insertConflict(ctx, u)
		}
		return 0, fmt.Errorf("create user: %w", err)
	}

	return u.ID, nil
}

// insertConflict tells a taken username apart from an id collision, which
// means the generator was seeded below existing data.
func (s *UserService) insertConflict(ctx context.Context, u domain.User) error {
	if ok, err := s.HasUsername(ctx, u.Username); err != nil {
		return err
	} else if ok {
		return domain.ErrUsernameTaken
	}
	return fmt.Errorf("create user: id %d already in use: %w", u.ID, store.ErrAlreadyExists)
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, id uint64) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, id)
	if err != nil {
		return domain.User{}, mapUserErr(err)
	}
	return u, nil
}

// GetIDByUsername resolves a username to its user id.
func (s *UserService) GetIDByUsername(ctx context.Context, username string) (uint64, error) {
	u, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		return 0, mapUserErr(err)
	}
	return u.ID, nil
}

// HasUserID reports whether a user with this id exists.
func (s *UserService) HasUserID(ctx context.Context, id uint64) (bool, error) {
	return exists(s.GetUserByID(ctx, id))
}

// HasUsername reports whether username is registered.
func (s *UserService) HasUsername(ctx context.Context, username string) (bool, error) {
	return exists(s.GetIDByUsername(ctx, username))
}

// VerifyPassword checks plaintext against the user's stored hash. A wrong
// password is (false, nil).
func (s *UserService) VerifyPassword(ctx context.Context, userID uint64, plaintext string) (bool, error) {
	u, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return false, err
	}

	ok, err := s.Hasher.Verify(u.PasswordHash, plaintext)
	if err != nil {
		return false, fmt.Errorf("verify password: %w", err)
	}
	return ok, nil
}

func mapUserErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return domain.ErrUserNotFound
	}
	return fmt.Errorf("load user: %w", err)
}

// exists folds a lookup result into a boolean, treating any not-found kind
// as false.
func exists[T any](_ T, err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, domain.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}
