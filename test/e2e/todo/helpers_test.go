package todo_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/aussiebroadwan/taskboard/pkg/todosdk"
)

/*
 * Common constants and helper functions for todo service end-to-end tests.
 * This includes container setup, account setup, and assertions.
 */

const (
	testImageName = "taskboard-todo-test:latest"

	testPassword = "Passw0rd!"
)

// TestMain builds the Docker image once before all tests and removes it
// after they complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Todo Service Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Todo Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/todo/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // the image might not exist
}

// setupTodoContainer starts the todo service in a container and returns the
// base URL. Extra env entries override the defaults.
func setupTodoContainer(t *testing.T, extraEnv map[string]string) (string, func()) {
	t.Helper()
	ctx := context.Background()

	env := map[string]string{
		"TODO_ENV":                      "test",
		"TODO_LOG_LEVEL":                "info",
		"TODO_LOG_FORMAT":               "json",
		"TODO_IDS_STRATEGY":             "sequence",
		"TODO_AUTH_COOKIE_SECURE":       "false",
		"TODO_AUTH_RATE_LIMIT_REQUESTS": "1000",
		"TODO_AUTH_RATE_LIMIT_BURST":    "1000",
	}
	for k, v := range extraEnv {
		env[k] = v
	}

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env:          env,
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// newClient returns an SDK client with its own cookie jar.
func newClient(t *testing.T, baseURL string) *todosdk.SDKClient {
	t.Helper()

	client, err := todosdk.NewSDKClient(baseURL)
	require.NoError(t, err)
	return client
}

// signupAndLogin registers username and leaves the client holding a session.
func signupAndLogin(t *testing.T, baseURL, username string) *todosdk.SDKClient {
	t.Helper()

	client := newClient(t, baseURL)
	require.NoError(t, client.Signup(t.Context(), username, testPassword), "signup should succeed")
	require.NoError(t, client.Login(t.Context(), username, testPassword), "login should succeed")
	return client
}

// assertStatus checks that err is an APIError carrying the given status.
func assertStatus(t *testing.T, err error, status int, msg string) {
	t.Helper()

	var apiErr *todosdk.APIError
	require.True(t, errors.As(err, &apiErr), "expected APIError, got %v", err)
	require.Equal(t, status, apiErr.StatusCode)
	if msg != "" {
		require.Equal(t, msg, apiErr.Message)
	}
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health *todosdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}
