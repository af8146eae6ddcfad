package http_test

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	todohttp "github.com/aussiebroadwan/taskboard/internal/todo/http"
	"github.com/aussiebroadwan/taskboard/internal/todo/service"
	"github.com/aussiebroadwan/taskboard/internal/todo/store/drivers/sqlite"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/idx"
	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
	"github.com/aussiebroadwan/taskboard/pkg/todosdk"
)

const testIssuer = "taskboard-test"

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "plain$" + password, nil }

func (plainHasher) Verify(encoded, password string) (bool, error) {
	return encoded == "plain$"+password, nil
}

type harness struct {
	URL    string
	router *todohttp.Router
	key    ed25519.PrivateKey
}

// newHarness serves a fully wired router over an in-memory store. Every id
// generator starts at 0 and rate limiting is off unless configure enables it.
func newHarness(t *testing.T, configure ...func(*todohttp.Router)) *harness {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations(context.Background()))

	_, key, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	signer, err := jwtx.NewSignerEdDSA(key)
	require.NoError(t, err)
	verifier := jwtx.NewVerifierEdDSA(signer.PublicKey(), testIssuer, 0)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := todohttp.NewRouter(signer, verifier, "test", st, logger)
	r.Issuer = testIssuer
	r.AuthLimit = httpx.RateLimitConfig{}
	r.UserService = &service.UserService{Store: st, IDs: idx.NewSequence(0), Hasher: plainHasher{}}
	r.SessionService = &service.SessionService{Store: st, IDs: idx.NewSequence(0)}
	r.TodoService = &service.TodoService{Store: st, IDs: idx.NewSequence(0)}
	r.TaskService = &service.TaskService{Store: st, IDs: idx.NewSequence(0)}
	for _, fn := range configure {
		fn(r)
	}
	r.ApplyRoutes()

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return &harness{URL: srv.URL, router: r, key: key}
}

// client returns a fresh SDK client; each one holds its own session cookie.
func (h *harness) client(t *testing.T) *todosdk.SDKClient {
	t.Helper()

	c, err := todosdk.NewSDKClient(h.URL)
	require.NoError(t, err)
	return c
}

// loggedIn signs up and logs in username with a fixed password.
func (h *harness) loggedIn(t *testing.T, username string) *todosdk.SDKClient {
	t.Helper()

	c := h.client(t)
	require.NoError(t, c.Signup(t.Context(), username, "pw123"))
	require.NoError(t, c.Login(t.Context(), username, "pw123"))
	return c
}

// sessionCookie returns the cookie value the client's jar holds.
func (h *harness) sessionCookie(t *testing.T, c *todosdk.SDKClient) string {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, h.URL, nil)
	require.NoError(t, err)
	for _, ck := range c.HTTPClient.Jar.Cookies(req.URL) {
		if ck.Name == todosdk.SessionCookie {
			return ck.Value
		}
	}
	t.Fatal("no session cookie")
	return ""
}

type rawResponse struct {
	status  int
	message string
	header  http.Header
}

// do sends a raw request with an optional session cookie and decodes the
// message body, if there is one.
func (h *harness) do(t *testing.T, method, path, body, cookie string) rawResponse {
	t.Helper()

	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(t.Context(), method, h.URL+path, rdr)
	require.NoError(t, err)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: todosdk.SessionCookie, Value: cookie})
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var msg todosdk.MessageResponse
	_ = json.NewDecoder(resp.Body).Decode(&msg)
	return rawResponse{status: resp.StatusCode, message: msg.Message, header: resp.Header}
}

func requireAPIError(t *testing.T, err error, status int, message string) {
	t.Helper()

	var apiErr *todosdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, message, apiErr.Message)
}

func ptr[T any](v T) *T { return &v }
