package todo_test

import (
	"net/http"
	"testing"
)

// TestRateLimitLogin verifies /login is throttled with production defaults
// of 5 requests a minute per IP.
func TestRateLimitLogin(t *testing.T) {
	baseURL, cleanup := setupTodoContainer(t, map[string]string{
		"TODO_AUTH_RATE_LIMIT_REQUESTS": "5",
		"TODO_AUTH_RATE_LIMIT_BURST":    "5",
	})
	defer cleanup()

	client := newClient(t, baseURL)

	for i := range 5 {
		err := client.Login(t.Context(), "nobody", testPassword)
		assertStatus(t, err, http.StatusNotFound, "")
		t.Logf("request %d rejected as unknown user", i+1)
	}

	err := client.Login(t.Context(), "nobody", testPassword)
	assertStatus(t, err, http.StatusTooManyRequests, "")
}
