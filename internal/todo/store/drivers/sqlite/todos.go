package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aussiebroadwan/taskboard/internal/todo/domain"
)

type todosRepo struct {
	db *sql.DB
}

const todoColumns = `id, user_id, title, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTodo(row rowScanner) (domain.Todo, error) {
	var (
		t                     domain.Todo
		id, userID, createdAt int64
	)
	if err := row.Scan(&id, &userID, &t.Title, &createdAt); err != nil {
		return domain.Todo{}, err
	}
	t.ID = uint64(id)         // #nosec G115
	t.UserID = uint64(userID) // #nosec G115
	t.CreatedAt = fromMillis(createdAt)
	return t, nil
}

func (r *todosRepo) CreateTodo(ctx context.Context, t domain.Todo) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO todos (`+todoColumns+`) VALUES (?, ?, ?, ?)`,
		toDB(t.ID), toDB(t.UserID), t.Title, toMillis(t.CreatedAt),
	)
	return mapInsert(err)
}

func (r *todosRepo) ListTodos(ctx context.Context, userID uint64) ([]domain.Todo, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+todoColumns+` FROM todos WHERE user_id = ? ORDER BY id`, toDB(userID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	todos := []domain.Todo{}
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, fmt.Errorf("sqlite: scan todo: %w", err)
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

func (r *todosRepo) GetTodoByID(ctx context.Context, userID, todoID uint64) (domain.Todo, error) {
	t, err := scanTodo(r.db.QueryRowContext(ctx,
		`SELECT `+todoColumns+` FROM todos WHERE user_id = ? AND id = ?`, toDB(userID), toDB(todoID)))
	return t, mapNotFound(err)
}

func (r *todosRepo) GetTodoByTitle(ctx context.Context, userID uint64, title string) (domain.Todo, error) {
	t, err := scanTodo(r.db.QueryRowContext(ctx,
		`SELECT `+todoColumns+` FROM todos WHERE user_id = ? AND title = ?`, toDB(userID), title))
	return t, mapNotFound(err)
}

func (r *todosRepo) DeleteTodo(ctx context.Context, userID, todoID uint64) (bool, error) {
	n, err := affected(r.db.ExecContext(ctx,
		`DELETE FROM todos WHERE user_id = ? AND id = ?`, toDB(userID), toDB(todoID)))
	return n == 1, err
}

func (r *todosRepo) MaxID(ctx context.Context) (uint64, error) {
	return maxID(ctx, r.db, `SELECT MAX(id) FROM todos`)
}
