package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aussiebroadwan/taskboard/internal/todo/domain"
)

type tasksRepo struct {
	db *sql.DB
}

const taskColumns = `id, user_id, todo_id, description, done, priority, created_at`

func scanTask(row rowScanner) (domain.Task, error) {
	var (
		t                             domain.Task
		id, userID, todoID, createdAt int64
	)
	if err := row.Scan(&id, &userID, &todoID, &t.Description, &t.Done, &t.Priority, &createdAt); err != nil {
		return domain.Task{}, err
	}
	t.ID = uint64(id)         // #nosec G115
	t.UserID = uint64(userID) // #nosec G115
	t.TodoID = uint64(todoID) // #nosec G115
	t.CreatedAt = fromMillis(createdAt)
	return t, nil
}

func (r *tasksRepo) CreateTask(ctx context.Context, t domain.Task) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (`+taskColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		toDB(t.ID), toDB(t.UserID), toDB(t.TodoID), t.Description, t.Done, t.Priority, toMillis(t.CreatedAt),
	)
	return mapInsert(err)
}

func (r *tasksRepo) ListTasks(ctx context.Context, userID uint64, todoID *uint64) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = ?`
	args := []any{toDB(userID)}
	if todoID != nil {
		query += ` AND todo_id = ?`
		args = append(args, toDB(*todoID))
	}
	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("sqlite: scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *tasksRepo) GetTaskByID(ctx context.Context, userID, todoID, taskID uint64) (domain.Task, error) {
	t, err := scanTask(r.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE user_id = ? AND todo_id = ? AND id = ?`,
		toDB(userID), toDB(todoID), toDB(taskID)))
	return t, mapNotFound(err)
}

func (r *tasksRepo) GetTaskByDescription(ctx context.Context, userID, todoID uint64, description string) (domain.Task, error) {
	t, err := scanTask(r.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE user_id = ? AND todo_id = ? AND description = ?`,
		toDB(userID), toDB(todoID), description))
	return t, mapNotFound(err)
}

func (r *tasksRepo) ToggleDone(ctx context.Context, userID, todoID, taskID uint64) (bool, error) {
	n, err := affected(r.db.ExecContext(ctx,
		`UPDATE tasks SET done = NOT done WHERE user_id = ? AND todo_id = ? AND id = ?`,
		toDB(userID), toDB(todoID), toDB(taskID)))
	return n == 1, err
}

func (r *tasksRepo) DeleteTask(ctx context.Context, userID, todoID, taskID uint64) (bool, error) {
	n, err := affected(r.db.ExecContext(ctx,
		`DELETE FROM tasks WHERE user_id = ? AND todo_id = ? AND id = ?`,
		toDB(userID), toDB(todoID), toDB(taskID)))
	return n == 1, err
}

func (r *tasksRepo) DeleteByTodo(ctx context.Context, userID, todoID uint64) (int64, error) {
	return affected(r.db.ExecContext(ctx,
		`DELETE FROM tasks WHERE user_id = ? AND todo_id = ?`, toDB(userID), toDB(todoID)))
}

func (r *tasksRepo) MaxID(ctx context.Context) (uint64, error) {
	return maxID(ctx, r.db, `SELECT MAX(id) FROM tasks`)
}
