package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/taskboard/internal/todo/domain"
)

type usersRepo struct {
	db *sql.DB
}

const userColumns = `id, username, password_hash, created_at`

func scanUser(row *sql.Row) (domain.User, error) {
	var (
		u         domain.User
		id        int64
		createdAt int64
	)
	if err := row.Scan(&id, &u.Username, &u.PasswordHash, &createdAt); err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.ID = uint64(id) // #nosec G115
	u.CreatedAt = fromMillis(createdAt)
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?)`,
		toDB(u.ID), u.Username, u.PasswordHash, toMillis(u.CreatedAt),
	)
	return mapInsert(err)
}

func (r *usersRepo) GetUserByID(ctx context.Context, id uint64) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, toDB(id)))
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = ?`, username))
}

func (r *usersRepo) MaxID(ctx context.Context) (uint64, error) {
	return maxID(ctx, r.db, `SELECT MAX(id) FROM users`)
}
