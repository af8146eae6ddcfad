package todosdk

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// SDKClient talks to a taskboard server as a single user.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a client with its own cookie jar.
func NewSDKClient(baseURL string) (*SDKClient, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
			Jar:     jar,
		},
	}, nil
}

// Signup registers a new user.
func (c *SDKClient) Signup(ctx context.Context, username, password string) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "/signup", Credentials{Username: username, Password: password})
	if err != nil {
		return err
	}

	var msg MessageResponse
	return decodeJSON(resp, &msg, http.StatusCreated)
}

// Login opens a session; the session cookie is stored in the client's jar.
func (c *SDKClient) Login(ctx context.Context, username, password string) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "/login", Credentials{Username: username, Password: password})
	if err != nil {
		return err
	}

	var msg MessageResponse
	return decodeJSON(resp, &msg, http.StatusCreated)
}

// Logout closes the current session.
func (c *SDKClient) Logout(ctx context.Context) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "/logout", nil)
	if err != nil {
		return err
	}

	var msg MessageResponse
	return decodeJSON(resp, &msg, http.StatusOK)
}
