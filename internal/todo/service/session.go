package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/todo/domain"
	"github.com/aussiebroadwan/taskboard/internal/todo/store"
	"github.com/aussiebroadwan/taskboard/pkg/idx"
)

// SessionService opens and closes login sessions.
type SessionService struct {
	Store store.Store
	IDs   idx.Generator

	// TTL bounds a session's lifetime. Zero means sessions live until they
	// are deleted.
	TTL time.Duration

	// Now defaults to time.Now.
	Now func() time.Time
}

func (s *SessionService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// CreateSession opens a session for an existing user.
func (s *SessionService) CreateSession(ctx context.Context, userID uint64) (uint64, error) {
	if _, err := s.Store.Users().GetUserByID(ctx, userID); err != nil {
		return 0, mapUserErr(err)
	}

	now := s.now()
	sess := domain.Session{ID: s.IDs.Next(), UserID: userID, CreatedAt: now}
	if s.TTL > 0 {
		exp := now.Add(s.TTL)
		sess.ExpiresAt = &exp
	}

	if err := s.Store.Sessions().CreateSession(ctx, sess); err != nil {
		return 0, fmt.Errorf("create session: %w", err)
	}
	return sess.ID, nil
}

// GetSessionByID returns a live session. Expired sessions are reported as
// missing.
func (s *SessionService) GetSessionByID(ctx context.Context, id uint64) (domain.Session, error) {
	sess, err := s.Store.Sessions().GetSessionByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Session{}, domain.ErrSessionNotFound
		}
		return domain.Session{}, fmt.Errorf("load session: %w", err)
	}

	if sess.Expired(s.now()) {
		return domain.Session{}, domain.ErrSessionNotFound
	}
	return sess, nil
}

// HasSession reports whether a live session with this id exists.
func (s *SessionService) HasSession(ctx context.Context, id uint64) (bool, error) {
	return exists(s.GetSessionByID(ctx, id))
}

// DeleteSession removes a live session and reports whether a record was
// deleted. An expired session is removed too but still reported as missing.
func (s *SessionService) DeleteSession(ctx context.Context, id uint64) (bool, error) {
	if _, err := s.GetSessionByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			if _, derr := s.Store.Sessions().DeleteSession(ctx, id); derr != nil {
				return false, fmt.Errorf("delete session: %w", derr)
			}
		}
		return false, err
	}

	deleted, err := s.Store.Sessions().DeleteSession(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete session: %w", err)
	}
	return deleted, nil
}

// DeleteExpired purges sessions past their expiry and returns how many were
// removed. The app calls it once at startup; nothing runs it periodically.
func (s *SessionService) DeleteExpired(ctx context.Context) (int64, error) {
	n, err := s.Store.Sessions().DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return n, nil
}
