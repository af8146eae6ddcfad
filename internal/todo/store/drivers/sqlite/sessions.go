package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/todo/domain"
)

type sessionsRepo struct {
	db *sql.DB
}

func (r *sessionsRepo) CreateSession(ctx context.Context, s domain.Session) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (id, user_id, created_at, expires_at) VALUES (?, ?, ?, ?)`,
		toDB(s.ID), toDB(s.UserID), toMillis(s.CreatedAt), toNullMillis(s.ExpiresAt),
	)
	return mapInsert(err)
}

func (r *sessionsRepo) GetSessionByID(ctx context.Context, id uint64) (domain.Session, error) {
	var (
		sid, userID, createdAt int64
		expiresAt              sql.NullInt64
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, created_at, expires_at FROM sessions WHERE id = ?`, toDB(id),
	).Scan(&sid, &userID, &createdAt, &expiresAt)
	if err != nil {
		return domain.Session{}, mapNotFound(err)
	}

	return domain.Session{
		ID:        uint64(sid),    // #nosec G115
		UserID:    uint64(userID), // #nosec G115
		CreatedAt: fromMillis(createdAt),
		ExpiresAt: fromNullMillis(expiresAt),
	}, nil
}

func (r *sessionsRepo) DeleteSession(ctx context.Context, id uint64) (bool, error) {
	n, err := affected(r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, toDB(id)))
	return n > 0, err
}

func (r *sessionsRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	return affected(r.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE expires_at IS NOT NULL AND expires_at <= ?`, toMillis(now)))
}

func (r *sessionsRepo) MaxID(ctx context.Context) (uint64, error) {
	return maxID(ctx, r.db, `SELECT MAX(id) FROM sessions`)
}
