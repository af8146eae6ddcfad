package service

import (
	"context"
	"strings"
	"testing"

	"github.com/aussiebroadwan/taskboard/internal/todo/store"
	"github.com/aussiebroadwan/taskboard/internal/todo/store/drivers/sqlite"
	"github.com/aussiebroadwan/taskboard/pkg/idx"
	"github.com/stretchr/testify/require"
)

// plainHasher keeps tests fast; argon2 is covered in pkg/cryptox.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "plain$" + password, nil }

func (plainHasher) Verify(encoded, password string) (bool, error) {
	stored, ok := strings.CutPrefix(encoded, "plain$")
	if !ok {
		return false, errMalformed
	}
	return stored == password, nil
}

type testErr string

func (e testErr) Error() string { return string(e) }

const errMalformed = testErr("malformed hash")

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations(context.Background()))
	return s
}

// services wires every registry to one store with sequences starting at 0.
type services struct {
	store    store.Store
	users    *UserService
	sessions *SessionService
	todos    *TodoService
	tasks    *TaskService
}

func newServices(t *testing.T) services {
	t.Helper()

	s := newTestStore(t)
	return services{
		store:    s,
		users:    &UserService{Store: s, IDs: idx.NewSequence(0), Hasher: plainHasher{}},
		sessions: &SessionService{Store: s, IDs: idx.NewSequence(0)},
		todos:    &TodoService{Store: s, IDs: idx.NewSequence(0)},
		tasks:    &TaskService{Store: s, IDs: idx.NewSequence(0)},
	}
}
