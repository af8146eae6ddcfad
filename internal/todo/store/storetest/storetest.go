// Package storetest holds the behaviour every store driver must share. Each
// driver's tests call Run with a factory returning a fresh, migrated store.
package storetest

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/todo/domain"
	"github.com/aussiebroadwan/taskboard/internal/todo/store"
	"github.com/stretchr/testify/require"
)

// Factory returns an empty store with migrations applied.
type Factory func(t *testing.T) store.Store

// Run executes the shared driver suite.
func Run(t *testing.T, newStore Factory) {
	t.Helper()

	t.Run("Users", func(t *testing.T) { testUsers(t, newStore(t)) })
	t.Run("Sessions", func(t *testing.T) { testSessions(t, newStore(t)) })
	t.Run("Todos", func(t *testing.T) { testTodos(t, newStore(t)) })
	t.Run("Tasks", func(t *testing.T) { testTasks(t, newStore(t)) })
	t.Run("ConcurrentDuplicateInsert", func(t *testing.T) { testConcurrentDuplicates(t, newStore(t)) })
}

var epoch = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

func testUsers(t *testing.T, s store.Store) {
	ctx := context.Background()
	users := s.Users()

	_, err := users.MaxID(ctx)
	require.ErrorIs(t, err, store.ErrNotFound)

	alice := domain.User{ID: 3, Username: "alice", PasswordHash: "hash-a", CreatedAt: epoch}
	require.NoError(t, users.CreateUser(ctx, alice))

	got, err := users.GetUserByID(ctx, 3)
	require.NoError(t, err)
	require.Equal(t, "alice", got.Username)
	require.Equal(t, "hash-a", got.PasswordHash)
	require.True(t, epoch.Equal(got.CreatedAt))

	got, err = users.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, uint64(3), got.ID)

	// Same username, new id.
	err = users.CreateUser(ctx, domain.User{ID: 4, Username: "alice", PasswordHash: "x", CreatedAt: epoch})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	// Same id, new username.
	err = users.CreateUser(ctx, domain.User{ID: 3, Username: "bob", PasswordHash: "x", CreatedAt: epoch})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	_, err = users.GetUserByID(ctx, 99)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = users.GetUserByUsername(ctx, "nobody")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, users.CreateUser(ctx, domain.User{ID: 1 << 62, Username: "big", PasswordHash: "x", CreatedAt: epoch}))
	maxID, err := users.MaxID(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(1<<62), maxID)
}

func testSessions(t *testing.T, s store.Store) {
	ctx := context.Background()
	sessions := s.Sessions()

	expiry := epoch.Add(time.Hour)
	require.NoError(t, sessions.CreateSession(ctx, domain.Session{ID: 0, UserID: 1, CreatedAt: epoch}))
	require.NoError(t, sessions.CreateSession(ctx, domain.Session{ID: 1, UserID: 1, CreatedAt: epoch, ExpiresAt: &expiry}))
	require.ErrorIs(t, sessions.CreateSession(ctx, domain.Session{ID: 1, UserID: 2, CreatedAt: epoch}), store.ErrAlreadyExists)

	got, err := sessions.GetSessionByID(ctx, 0)
	require.NoError(t, err)
	require.Equal(t, uint64(1), got.UserID)
	require.Nil(t, got.ExpiresAt)

	got, err = sessions.GetSessionByID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, got.ExpiresAt)
	require.True(t, expiry.Equal(*got.ExpiresAt))

	n, err := sessions.DeleteExpired(ctx, expiry.Add(-time.Second))
	require.NoError(t, err)
	require.Zero(t, n)

	n, err = sessions.DeleteExpired(ctx, expiry)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	_, err = sessions.GetSessionByID(ctx, 1)
	require.ErrorIs(t, err, store.ErrNotFound)

	deleted, err := sessions.DeleteSession(ctx, 0)
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = sessions.DeleteSession(ctx, 0)
	require.NoError(t, err)
	require.False(t, deleted)
}

func testTodos(t *testing.T, s store.Store) {
	ctx := context.Background()
	todos := s.Todos()

	require.NoError(t, todos.CreateTodo(ctx, domain.Todo{ID: 2, UserID: 1, Title: "Work", CreatedAt: epoch}))
	require.NoError(t, todos.CreateTodo(ctx, domain.Todo{ID: 1, UserID: 1, Title: "Groceries", CreatedAt: epoch}))
	require.NoError(t, todos.CreateTodo(ctx, domain.Todo{ID: 3, UserID: 2, Title: "Groceries", CreatedAt: epoch}))

	err := todos.CreateTodo(ctx, domain.Todo{ID: 4, UserID: 1, Title: "Groceries", CreatedAt: epoch})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	list, err := todos.ListTodos(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, uint64(1), list[0].ID)
	require.Equal(t, uint64(2), list[1].ID)

	empty, err := todos.ListTodos(ctx, 42)
	require.NoError(t, err)
	require.NotNil(t, empty)
	require.Empty(t, empty)

	got, err := todos.GetTodoByTitle(ctx, 2, "Groceries")
	require.NoError(t, err)
	require.Equal(t, uint64(3), got.ID)

	// Owned by user 2, invisible to user 1.
	_, err = todos.GetTodoByID(ctx, 1, 3)
	require.ErrorIs(t, err, store.ErrNotFound)
	deleted, err := todos.DeleteTodo(ctx, 1, 3)
	require.NoError(t, err)
	require.False(t, deleted)

	deleted, err = todos.DeleteTodo(ctx, 2, 3)
	require.NoError(t, err)
	require.True(t, deleted)

	maxID, err := todos.MaxID(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(2), maxID)
}

func testTasks(t *testing.T, s store.Store) {
	ctx := context.Background()
	tasks := s.Tasks()

	mk := func(id, user, todo uint64, desc string, prio float64) domain.Task {
		return domain.Task{ID: id, UserID: user, TodoID: todo, Description: desc, Priority: prio, CreatedAt: epoch}
	}

	require.NoError(t, tasks.CreateTask(ctx, mk(0, 1, 10, "Buy milk", 0)))
	require.NoError(t, tasks.CreateTask(ctx, mk(1, 1, 10, "Buy eggs", 2.5)))
	require.NoError(t, tasks.CreateTask(ctx, mk(2, 1, 11, "Buy milk", 1)))
	require.NoError(t, tasks.CreateTask(ctx, mk(3, 2, 10, "Buy milk", 1)))

	require.ErrorIs(t, tasks.CreateTask(ctx, mk(4, 1, 10, "Buy milk", 0)), store.ErrAlreadyExists)

	all, err := tasks.ListTasks(ctx, 1, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)

	todoID := uint64(10)
	scoped, err := tasks.ListTasks(ctx, 1, &todoID)
	require.NoError(t, err)
	require.Len(t, scoped, 2)
	require.Equal(t, "Buy milk", scoped[0].Description)
	require.Equal(t, 2.5, scoped[1].Priority)
	require.False(t, scoped[0].Done)

	got, err := tasks.GetTaskByDescription(ctx, 1, 11, "Buy milk")
	require.NoError(t, err)
	require.Equal(t, uint64(2), got.ID)

	_, err = tasks.GetTaskByID(ctx, 1, 11, 0)
	require.ErrorIs(t, err, store.ErrNotFound)

	modified, err := tasks.ToggleDone(ctx, 1, 10, 0)
	require.NoError(t, err)
	require.True(t, modified)
	got, err = tasks.GetTaskByID(ctx, 1, 10, 0)
	require.NoError(t, err)
	require.True(t, got.Done)

	modified, err = tasks.ToggleDone(ctx, 1, 10, 0)
	require.NoError(t, err)
	require.True(t, modified)
	got, err = tasks.GetTaskByID(ctx, 1, 10, 0)
	require.NoError(t, err)
	require.False(t, got.Done)

	modified, err = tasks.ToggleDone(ctx, 2, 10, 0)
	require.NoError(t, err)
	require.False(t, modified)

	deleted, err := tasks.DeleteTask(ctx, 1, 11, 2)
	require.NoError(t, err)
	require.True(t, deleted)
	deleted, err = tasks.DeleteTask(ctx, 1, 11, 2)
	require.NoError(t, err)
	require.False(t, deleted)

	n, err := tasks.DeleteByTodo(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, int64(2), n)

	remaining, err := tasks.ListTasks(ctx, 2, nil)
	require.NoError(t, err)
	require.Len(t, remaining, 1)

	maxID, err := tasks.MaxID(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(3), maxID)
}

func testConcurrentDuplicates(t *testing.T, s store.Store) {
	ctx := context.Background()

	t.Run("username", func(t *testing.T) {
		raceInserts(t, func(i int) error {
			return s.Users().CreateUser(ctx, domain.User{
				ID:           uint64(100 + i), // #nosec G115
				Username:     "racer",
				PasswordHash: "x",
				CreatedAt:    epoch,
			})
		})
	})

	t.Run("todo title", func(t *testing.T) {
		raceInserts(t, func(i int) error {
			return s.Todos().CreateTodo(ctx, domain.Todo{
				ID:        uint64(200 + i), // #nosec G115
				UserID:    1,
				Title:     "same title",
				CreatedAt: epoch,
			})
		})
	})

	t.Run("task description", func(t *testing.T) {
		raceInserts(t, func(i int) error {
			return s.Tasks().CreateTask(ctx, domain.Task{
				ID:          uint64(300 + i), // #nosec G115
				UserID:      1,
				TodoID:      200,
				Description: "same description",
				CreatedAt:   epoch,
			})
		})
	})
}

// raceInserts runs insert from several goroutines at once, each with its own
// id but the same unique value, and expects exactly one winner.
func raceInserts(t *testing.T, insert func(i int) error) {
	t.Helper()

	const workers = 8
	errs := make([]error, workers)
	start := make(chan struct{})

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			errs[i] = insert(i)
		}()
	}
	close(start)
	wg.Wait()

	var ok, conflicts int
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		require.ErrorIs(t, err, store.ErrAlreadyExists)
		conflicts++
	}
	require.Equal(t, 1, ok)
	require.Equal(t, workers-1, conflicts)
}
