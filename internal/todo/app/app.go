package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/taskboard/internal/todo/http"
	"github.com/aussiebroadwan/taskboard/internal/todo/service"
	"github.com/aussiebroadwan/taskboard/internal/todo/store"
	"github.com/aussiebroadwan/taskboard/internal/todo/store/drivers/mongo"
	"github.com/aussiebroadwan/taskboard/internal/todo/store/drivers/sqlite"
	"github.com/aussiebroadwan/taskboard/pkg/cryptox"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/idx"
	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"

	startupTimeout = 30 * time.Second
)

// Application wires the store, registries and HTTP server together.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       store.Store
	signer   *jwtx.EdDSASigner
	verifier *jwtx.EdDSAVerifier

	userService    *service.UserService
	sessionService *service.SessionService
	todoService    *service.TodoService
	taskService    *service.TaskService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "todo-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.Log.Level,
			Format:  cfg.Log.Format,
		}),
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	if err := app.initStore(ctx); err != nil {
		return nil, err
	}

	signer, verifier, err := InitSessionKeys(cfg.Auth, app.logger)
	if err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.signer, app.verifier = signer, verifier

	if err := app.initServices(ctx); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	if err := app.initHTTP(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	return app, nil
}

// Handler exposes the router, mainly for in-process tests.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("todo service starting", "port", app.cfg.Server.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down todo service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.Server.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing store", "error", err)
		return err
	}

	app.logger.Info("todo service stopped")
	return nil
}

// initStore opens the configured driver and applies its migrations.
func (app *Application) initStore(ctx context.Context) error {
	var (
		db  store.Store
		err error
	)

	switch app.cfg.Store.Driver {
	case "mongo":
		db, err = mongo.NewStore(ctx, app.cfg.Store.Mongo.URI, app.cfg.Store.Mongo.Database)
	default:
		dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", app.cfg.Store.SQLite.File)
		db, err = sqlite.NewStore(dsn)
	}
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", app.cfg.Store.Driver, err)
	}
	app.db = db

	if err := db.ApplyMigrations(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply store migrations: %w", err)
	}

	app.logger.Info("store ready", "driver", app.cfg.Store.Driver)
	return nil
}

// initServices builds the registries, each with its own id generator.
func (app *Application) initServices(ctx context.Context) error {
	pepper, err := cryptox.LoadOrCreatePepper(app.cfg.Auth.PepperFile)
	if err != nil {
		return fmt.Errorf("failed to load pepper: %w", err)
	}

	strategy, err := idx.ParseStrategy(app.cfg.IDs.Strategy)
	if err != nil {
		return err
	}

	gens := make(map[string]idx.Generator, 4)
	for name, maxID := range map[string]func(context.Context) (uint64, error){
		"users":    app.db.Users().MaxID,
		"sessions": app.db.Sessions().MaxID,
		"todos":    app.db.Todos().MaxID,
		"tasks":    app.db.Tasks().MaxID,
	} {
		gen, err := newGenerator(ctx, strategy, maxID)
		if err != nil {
			return fmt.Errorf("failed to seed %s ids: %w", name, err)
		}
		gens[name] = gen
	}

	app.userService = &service.UserService{
		Store:  app.db,
		IDs:    gens["users"],
		Hasher: cryptox.NewArgon2Hasher(pepper),
	}
	app.sessionService = &service.SessionService{
		Store: app.db,
		IDs:   gens["sessions"],
		TTL:   app.cfg.Auth.SessionTTL,
	}
	app.todoService = &service.TodoService{Store: app.db, IDs: gens["todos"]}
	app.taskService = &service.TaskService{Store: app.db, IDs: gens["tasks"]}

	if app.cfg.Auth.SessionTTL > 0 {
		n, err := app.sessionService.DeleteExpired(ctx)
		if err != nil {
			return err
		}
		app.logger.Info("expired sessions purged", "count", n)
	}

	app.logger.Info("registries ready", "id_strategy", strategy)
	return nil
}

// newGenerator returns a clock generator, or a sequence that resumes after
// the largest stored id.
func newGenerator(ctx context.Context, strategy idx.Strategy, maxID func(context.Context) (uint64, error)) (idx.Generator, error) {
	if strategy == idx.StrategyClock {
		return idx.NewClock(), nil
	}

	last, err := maxID(ctx)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return idx.NewSequence(0), nil
	case err != nil:
		return nil, err
	}
	return idx.NewSequence(last + 1), nil
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() error {
	trusted, err := httpx.ParseTrustedProxies(app.cfg.Auth.RateLimit.TrustedProxies)
	if err != nil {
		return err
	}

	router := httpapi.NewRouter(app.signer, app.verifier, BuildVersion, app.db, app.logger)

	router.UserService = app.userService
	router.SessionService = app.sessionService
	router.TodoService = app.todoService
	router.TaskService = app.taskService
	router.Issuer = app.cfg.Auth.Issuer
	router.CookieSecure = app.cfg.Auth.CookieSecure
	router.AuthLimit = httpx.RateLimitConfig{
		RequestsPerWindow: app.cfg.Auth.RateLimit.Requests,
		Window:            app.cfg.Auth.RateLimit.Window,
		Burst:             app.cfg.Auth.RateLimit.Burst,
		TrustedProxies:    trusted,
	}
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
	return nil
}
