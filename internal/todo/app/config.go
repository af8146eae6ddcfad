package app

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/idx"
)

const (
	envPrefix = "TODO_"

	// ConfigFileEnv names an optional YAML file layered between the defaults
	// and the environment.
	ConfigFileEnv = envPrefix + "CONFIG_FILE"
)

type Config struct {
	Env    string       `koanf:"env"`
	Log    LogConfig    `koanf:"log"`
	Server ServerConfig `koanf:"server"`
	Store  StoreConfig  `koanf:"store"`
	IDs    IDsConfig    `koanf:"ids"`
	Auth   AuthConfig   `koanf:"auth"`
}

type LogConfig struct {
	Level  string `koanf:"level"`  // debug, info, warn, error
	Format string `koanf:"format"` // json, text
}

type ServerConfig struct {
	Port                int           `koanf:"port"`
	ShutdownGracePeriod time.Duration `koanf:"shutdown_grace_period"`
}

type StoreConfig struct {
	Driver string       `koanf:"driver"` // sqlite, mongo
	SQLite SQLiteConfig `koanf:"sqlite"`
	Mongo  MongoConfig  `koanf:"mongo"`
}

type SQLiteConfig struct {
	File string `koanf:"file"`
}

type MongoConfig struct {
	URI      string `koanf:"uri"`
	Database string `koanf:"database"`
}

type IDsConfig struct {
	Strategy string `koanf:"strategy"` // clock, sequence
}

type AuthConfig struct {
	Issuer         string          `koanf:"issuer"`
	PepperFile     string          `koanf:"pepper_file"`
	SessionKeyFile string          `koanf:"session_key_file"` // empty: ephemeral key
	SessionTTL     time.Duration   `koanf:"session_ttl"`      // 0: sessions never expire
	CookieSecure   bool            `koanf:"cookie_secure"`
	RateLimit      RateLimitConfig `koanf:"rate_limit"`
}

// RateLimitConfig throttles /signup and /login per client IP. Zero requests
// disables it. Forwarding headers are read only from TrustedProxies (CIDRs
// or addresses); otherwise the client is the TCP peer.
type RateLimitConfig struct {
	Requests       int           `koanf:"requests"`
	Window         time.Duration `koanf:"window"`
	Burst          int           `koanf:"burst"`
	TrustedProxies []string      `koanf:"trusted_proxies"`
}

func defaults() map[string]any {
	return map[string]any{
		"env": "dev",

		"log.level":  "info",
		"log.format": "json",

		"server.port":                  8080,
		"server.shutdown_grace_period": "10s",

		"store.driver":         "sqlite",
		"store.sqlite.file":    "todo.db",
		"store.mongo.uri":      "mongodb://localhost:27017",
		"store.mongo.database": "todo",

		"ids.strategy": string(idx.StrategyClock),

		"auth.issuer":              "taskboard",
		"auth.pepper_file":         "pepper",
		"auth.session_key_file":    "session.key",
		"auth.session_ttl":         "0s",
		"auth.cookie_secure":       true,
		"auth.rate_limit.requests": 5,
		"auth.rate_limit.window":   "1m",
		"auth.rate_limit.burst":    5,

		"auth.rate_limit.trusted_proxies": []string{},
	}
}

// LoadConfig layers defaults, the YAML file named by TODO_CONFIG_FILE (if
// set) and TODO_* environment variables, then validates the result.
//
//	TODO_STORE_DRIVER            -> store.driver
//	TODO_STORE_SQLITE_FILE       -> store.sqlite.file
//	TODO_AUTH_SESSION_TTL        -> auth.session_ttl
//	TODO_AUTH_RATE_LIMIT_BURST   -> auth.rate_limit.burst
func LoadConfig() (Config, error) {
	k := koanf.New(".")

	for key, val := range defaults() {
		if err := k.Set(key, val); err != nil {
			return Config{}, fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	if path := os.Getenv(ConfigFileEnv); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	// Match env vars against known keys so underscores inside a key name
	// (session_ttl) are not read as nesting.
	envLookup := buildEnvLookup(k.Keys())
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			if key == ConfigFileEnv {
				return "", nil
			}
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
			if koanfKey, ok := envLookup[key]; ok {
				if _, isList := listKeys[koanfKey]; isList {
					return koanfKey, strings.Split(value, ",")
				}
				return koanfKey, value
			}
			return strings.ReplaceAll(key, "_", "."), value
		},
	}), nil); err != nil {
		return Config{}, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// listKeys are comma separated when they come from the environment.
var listKeys = map[string]struct{}{
	"auth.rate_limit.trusted_proxies": {},
}

func buildEnvLookup(keys []string) map[string]string {
	lookup := make(map[string]string, len(keys))
	for _, key := range keys {
		lookup[strings.ReplaceAll(key, ".", "_")] = key
	}
	return lookup
}

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Log.validate(),
		c.Server.validate(),
		c.Store.validate(),
		c.IDs.validate(),
		c.Auth.validate(),
	)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ShutdownGracePeriod <= 0 {
		errs = append(errs, errors.New("server.shutdown_grace_period must be positive"))
	}

	return errors.Join(errs...)
}

func (s *StoreConfig) validate() error {
	switch s.Driver {
	case "sqlite":
		if strings.TrimSpace(s.SQLite.File) == "" {
			return errors.New("store.sqlite.file must not be empty")
		}
	case "mongo":
		var errs []error
		if s.Mongo.URI == "" {
			errs = append(errs, errors.New("store.mongo.uri must not be empty"))
		}
		if s.Mongo.Database == "" {
			errs = append(errs, errors.New("store.mongo.database must not be empty"))
		}
		return errors.Join(errs...)
	default:
		return fmt.Errorf("store.driver must be one of: sqlite, mongo; got %q", s.Driver)
	}
	return nil
}

func (i *IDsConfig) validate() error {
	if _, err := idx.ParseStrategy(i.Strategy); err != nil {
		return fmt.Errorf("ids.strategy: %w", err)
	}
	return nil
}

func (a *AuthConfig) validate() error {
	var errs []error

	if a.Issuer == "" {
		errs = append(errs, errors.New("auth.issuer must not be empty"))
	}
	if a.PepperFile == "" {
		errs = append(errs, errors.New("auth.pepper_file must not be empty"))
	}
	if a.SessionTTL < 0 {
		errs = append(errs, errors.New("auth.session_ttl must not be negative"))
	}
	if a.RateLimit.Requests > 0 && (a.RateLimit.Window <= 0 || a.RateLimit.Burst <= 0) {
		errs = append(errs, errors.New("auth.rate_limit.window and auth.rate_limit.burst must be positive when requests is set"))
	}
	if _, err := httpx.ParseTrustedProxies(a.RateLimit.TrustedProxies); err != nil {
		errs = append(errs, fmt.Errorf("auth.rate_limit.trusted_proxies: %w", err))
	}

	return errors.Join(errs...)
}
