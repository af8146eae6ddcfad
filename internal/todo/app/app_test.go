package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/taskboard/internal/todo/store"
	"github.com/aussiebroadwan/taskboard/pkg/idx"
	"github.com/aussiebroadwan/taskboard/pkg/todosdk"
)

func testConfig(t *testing.T, dir string) Config {
	t.Helper()

	cfg := validConfig()
	cfg.Log.Level = "error"
	cfg.IDs.Strategy = "sequence"
	cfg.Store.SQLite.File = filepath.Join(dir, "todo.db")
	cfg.Auth.PepperFile = filepath.Join(dir, "pepper")
	cfg.Auth.SessionKeyFile = filepath.Join(dir, "session.key")
	cfg.Auth.SessionTTL = time.Hour
	return cfg
}

func serve(t *testing.T, cfg Config) (*Application, *httptest.Server) {
	t.Helper()

	application, err := New(cfg)
	require.NoError(t, err)

	srv := httptest.NewServer(application.Handler())
	t.Cleanup(srv.Close)
	return application, srv
}

// A restart keeps the data, the session key and the id sequences.
func TestApplicationRestart(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(t, dir)

	first, srv := serve(t, cfg)
	client, err := todosdk.NewSDKClient(srv.URL)
	require.NoError(t, err)

	require.NoError(t, client.Signup(t.Context(), "alice", "pw123"))
	require.NoError(t, client.Login(t.Context(), "alice", "pw123"))
	todo, err := client.CreateTodo(t.Context(), "Groceries")
	require.NoError(t, err)
	require.Equal(t, uint64(0), todo.TodoID)

	srv.Close()
	require.NoError(t, first.Shutdown())

	second, srv2 := serve(t, cfg)
	t.Cleanup(func() { _ = second.Shutdown() })
	client.BaseURL = srv2.URL

	// The cookie jar is keyed by host, which is the same loopback address.
	todos, err := client.ListTodos(t.Context(), "")
	require.NoError(t, err)
	require.Len(t, todos, 1)

	next, err := client.CreateTodo(t.Context(), "Chores")
	require.NoError(t, err)
	require.Equal(t, uint64(1), next.TodoID)

	health, err := client.GetReadiness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
}

func TestApplicationRejectsBadStore(t *testing.T) {
	cfg := testConfig(t, t.TempDir())
	cfg.Store.SQLite.File = filepath.Join(t.TempDir(), "missing", "dir", "todo.db")

	_, err := New(cfg)
	require.Error(t, err)
}

func TestApplicationEphemeralKey(t *testing.T) {
	cfg := testConfig(t, t.TempDir())
	cfg.Auth.SessionKeyFile = ""
	cfg.IDs.Strategy = "clock"

	application, srv := serve(t, cfg)
	t.Cleanup(func() { _ = application.Shutdown() })

	resp, err := http.Get(srv.URL + "/livez")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestNewGenerator(t *testing.T) {
	t.Parallel()

	maxID := func(id uint64, err error) func(context.Context) (uint64, error) {
		return func(context.Context) (uint64, error) { return id, err }
	}

	gen, err := newGenerator(t.Context(), idx.StrategySequence, maxID(0, store.ErrNotFound))
	require.NoError(t, err)
	require.Equal(t, uint64(0), gen.Next())

	gen, err = newGenerator(t.Context(), idx.StrategySequence, maxID(41, nil))
	require.NoError(t, err)
	require.Equal(t, uint64(42), gen.Next())

	boom := errors.New("boom")
	_, err = newGenerator(t.Context(), idx.StrategySequence, maxID(0, boom))
	require.ErrorIs(t, err, boom)

	gen, err = newGenerator(t.Context(), idx.StrategyClock, maxID(0, boom))
	require.NoError(t, err)
	require.NotZero(t, gen.Next())
}
