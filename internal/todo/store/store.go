package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/todo/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface implemented by the sqlite and
// mongo drivers. Each sub-repository maps to one logical collection. Every
// read and write on todos and tasks is filtered by the owning user, so a
// record owned by someone else behaves exactly like a missing one.
//
// Uniqueness (usernames, todo titles per user, task descriptions per todo)
// is enforced by the driver's constraints and reported as ErrAlreadyExists.
type Store interface {
	Users() Users
	Sessions() Sessions
	Todos() Todos
	Tasks() Tasks

	ApplyMigrations(ctx context.Context) error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error

	// Close releases the underlying connection pool.
	Close() error
}

type Users interface {
	// CreateUser inserts u; ErrAlreadyExists if the id or username is taken.
	CreateUser(ctx context.Context, u domain.User) error

	GetUserByID(ctx context.Context, id uint64) (domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// MaxID returns the largest user id, or ErrNotFound when empty.
	MaxID(ctx context.Context) (uint64, error)
}

type Sessions interface {
	CreateSession(ctx context.Context, s domain.Session) error
	GetSessionByID(ctx context.Context, id uint64) (domain.Session, error)

	// DeleteSession reports whether a record was removed.
	DeleteSession(ctx context.Context, id uint64) (bool, error)

	// DeleteExpired removes sessions whose expiry is at or before now.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)

	MaxID(ctx context.Context) (uint64, error)
}

type Todos interface {
	CreateTodo(ctx context.Context, t domain.Todo) error

	// ListTodos returns the user's todos in ascending id order.
	ListTodos(ctx context.Context, userID uint64) ([]domain.Todo, error)

	GetTodoByID(ctx context.Context, userID, todoID uint64) (domain.Todo, error)
	GetTodoByTitle(ctx context.Context, userID uint64, title string) (domain.Todo, error)

	// DeleteTodo reports whether a record was removed.
	DeleteTodo(ctx context.Context, userID, todoID uint64) (bool, error)

	MaxID(ctx context.Context) (uint64, error)
}

type Tasks interface {
	CreateTask(ctx context.Context, t domain.Task) error

	// ListTasks returns the user's tasks in ascending id order, restricted to
	// one todo when todoID is non-nil.
	ListTasks(ctx context.Context, userID uint64, todoID *uint64) ([]domain.Task, error)

	GetTaskByID(ctx context.Context, userID, todoID, taskID uint64) (domain.Task, error)
	GetTaskByDescription(ctx context.Context, userID, todoID uint64, description string) (domain.Task, error)

	// ToggleDone flips the done flag in a single write and reports whether a
	// record was modified.
	ToggleDone(ctx context.Context, userID, todoID, taskID uint64) (bool, error)

	// DeleteTask reports whether a record was removed.
	DeleteTask(ctx context.Context, userID, todoID, taskID uint64) (bool, error)

	// DeleteByTodo removes every task under the todo and returns the count.
	DeleteByTodo(ctx context.Context, userID, todoID uint64) (int64, error)

	MaxID(ctx context.Context) (uint64, error)
}
