package domain_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/todo/domain"
	"github.com/stretchr/testify/require"
)

func TestSessionExpired(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	past, future := now.Add(-time.Second), now.Add(time.Second)

	require.False(t, domain.Session{}.Expired(now))
	require.False(t, domain.Session{ExpiresAt: &future}.Expired(now))
	require.True(t, domain.Session{ExpiresAt: &past}.Expired(now))
	require.True(t, domain.Session{ExpiresAt: &now}.Expired(now))
}
