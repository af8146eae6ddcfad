package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv(ConfigFileEnv, "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, 10*time.Second, cfg.Server.ShutdownGracePeriod)
	require.Equal(t, "sqlite", cfg.Store.Driver)
	require.Equal(t, "todo.db", cfg.Store.SQLite.File)
	require.Equal(t, "clock", cfg.IDs.Strategy)
	require.Equal(t, time.Duration(0), cfg.Auth.SessionTTL)
	require.True(t, cfg.Auth.CookieSecure)
	require.Equal(t, 5, cfg.Auth.RateLimit.Requests)
	require.Equal(t, time.Minute, cfg.Auth.RateLimit.Window)
	require.Equal(t, 5, cfg.Auth.RateLimit.Burst)
	require.Empty(t, cfg.Auth.RateLimit.TrustedProxies)
}

func TestLoadConfigLayers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
env: staging
log:
  level: debug
store:
  driver: mongo
  mongo:
    uri: mongodb://db:27017
    database: tasks
auth:
  session_ttl: 24h
  cookie_secure: false
`), 0o600))

	t.Setenv(ConfigFileEnv, path)
	t.Setenv("TODO_LOG_LEVEL", "warn")
	t.Setenv("TODO_SERVER_SHUTDOWN_GRACE_PERIOD", "3s")
	t.Setenv("TODO_AUTH_RATE_LIMIT_BURST", "9")
	t.Setenv("TODO_IDS_STRATEGY", "sequence")
	t.Setenv("TODO_AUTH_RATE_LIMIT_TRUSTED_PROXIES", "10.0.0.0/8,127.0.0.1")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "staging", cfg.Env)
	require.Equal(t, "warn", cfg.Log.Level, "env overrides file")
	require.Equal(t, "json", cfg.Log.Format, "default survives")
	require.Equal(t, "mongo", cfg.Store.Driver)
	require.Equal(t, MongoConfig{URI: "mongodb://db:27017", Database: "tasks"}, cfg.Store.Mongo)
	require.Equal(t, 24*time.Hour, cfg.Auth.SessionTTL)
	require.False(t, cfg.Auth.CookieSecure)
	require.Equal(t, 3*time.Second, cfg.Server.ShutdownGracePeriod)
	require.Equal(t, 9, cfg.Auth.RateLimit.Burst)
	require.Equal(t, "sequence", cfg.IDs.Strategy)
	require.Equal(t, []string{"10.0.0.0/8", "127.0.0.1"}, cfg.Auth.RateLimit.TrustedProxies)
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv(ConfigFileEnv, filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	t.Setenv(ConfigFileEnv, "")
	t.Setenv("TODO_STORE_DRIVER", "postgres")
	t.Setenv("TODO_LOG_FORMAT", "xml")

	_, err := LoadConfig()
	require.ErrorContains(t, err, "store.driver")
	require.ErrorContains(t, err, "log.format")
}

func validConfig() Config {
	return Config{
		Env:    "test",
		Log:    LogConfig{Level: "info", Format: "json"},
		Server: ServerConfig{Port: 8080, ShutdownGracePeriod: time.Second},
		Store:  StoreConfig{Driver: "sqlite", SQLite: SQLiteConfig{File: "todo.db"}},
		IDs:    IDsConfig{Strategy: "clock"},
		Auth:   AuthConfig{Issuer: "taskboard", PepperFile: "pepper"},
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"port", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"grace", func(c *Config) { c.Server.ShutdownGracePeriod = 0 }, "server.shutdown_grace_period"},
		{"level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"sqlite file", func(c *Config) { c.Store.SQLite.File = " " }, "store.sqlite.file"},
		{"mongo uri", func(c *Config) { c.Store.Driver = "mongo"; c.Store.Mongo.Database = "x" }, "store.mongo.uri"},
		{"strategy", func(c *Config) { c.IDs.Strategy = "uuid" }, "ids.strategy"},
		{"issuer", func(c *Config) { c.Auth.Issuer = "" }, "auth.issuer"},
		{"ttl", func(c *Config) { c.Auth.SessionTTL = -time.Second }, "auth.session_ttl"},
		{"trusted proxies", func(c *Config) { c.Auth.RateLimit.TrustedProxies = []string{"not-an-ip"} }, "auth.rate_limit.trusted_proxies"},
		{"rate limit", func(c *Config) { c.Auth.RateLimit = RateLimitConfig{Requests: 3} }, "auth.rate_limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}
