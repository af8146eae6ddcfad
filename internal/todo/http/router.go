package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/aussiebroadwan/taskboard/api/todo" // Swagger docs
	"github.com/aussiebroadwan/taskboard/internal/todo/service"
	"github.com/aussiebroadwan/taskboard/internal/todo/store"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux chi.Router

	signer       jwtx.Signer
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	UserService    *service.UserService
	SessionService *service.SessionService
	TodoService    *service.TodoService
	TaskService    *service.TaskService

	// Issuer is the iss claim of session tokens.
	Issuer string
	// CookieSecure marks the session cookie Secure. Leave it off only for
	// plain-HTTP development.
	CookieSecure bool
	// AuthLimit throttles /signup and /login per client IP.
	AuthLimit httpx.RateLimitConfig
}

func NewRouter(
	signer jwtx.Signer,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          chi.NewRouter(),
		signer:       signer,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		store:        st,
		AuthLimit:    httpx.StrictLimit,
	}

	r.Mux.Use(slogx.HTTPMiddleware(r.logger), httpx.Recover)
	r.Mux.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httpx.WriteMessage(w, http.StatusNotFound, msgNotFound)
	})
	r.Mux.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		httpx.WriteMessage(w, http.StatusMethodNotAllowed, msgMethodNotAllow)
	})

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerTodos()
	r.registerSystem()

	r.Mux.Get("/swagger/*", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler.
//
//	@title			Taskboard API
//	@version		0.1.0
//	@description	Multi-tenant todo lists. Every todo and task is scoped to the user of the session cookie.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/taskboard
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
//
//	@securityDefinitions.apikey	SessionCookie
//	@in							cookie
//	@name						sessionId
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.Mux.ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		UserService:    r.UserService,
		SessionService: r.SessionService,
		Signer:         r.signer,
		Issuer:         r.Issuer,
		CookieSecure:   r.CookieSecure,
	}

	// Signup and login share one per-IP budget.
	limited := r.Mux.With(httpx.RateLimitByIP(r.AuthLimit))
	limited.Post("/signup", h.HandleSignup)
	limited.Post("/login", h.HandleLogin)

	r.Mux.With(r.requireSession).Post("/logout", h.HandleLogout)
}

func (r *Router) registerTodos() {
	todos := &TodoHandler{TodoService: r.TodoService, TaskService: r.TaskService}
	tasks := &TaskHandler{TaskService: r.TaskService}

	r.Mux.Route("/todos", func(rt chi.Router) {
		rt.Use(r.requireSession)
		rt.Get("/", todos.HandleList)
		rt.Post("/", todos.HandleCreate)

		rt.Route("/{todoId}", func(rt chi.Router) {
			rt.Use(r.requireTodo)
			rt.Get("/", todos.HandleGet)
			rt.Delete("/", todos.HandleDelete)
			rt.Post("/tasks", tasks.HandleCreate)

			rt.With(r.requireTask).Patch("/tasks/{taskId}", tasks.HandleToggle)
			rt.With(r.requireTask).Delete("/tasks/{taskId}", tasks.HandleDelete)
		})
	})
}

func (r *Router) registerSystem() {
	r.Mux.Get("/livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Get("/readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.signer))
}
