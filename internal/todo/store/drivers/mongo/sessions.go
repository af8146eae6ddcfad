package mongo

import (
	"context"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/todo/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type sessionDoc struct {
	ID        int64      `bson:"_id"`
	UserID    int64      `bson:"user_id"`
	CreatedAt time.Time  `bson:"created_at"`
	ExpiresAt *time.Time `bson:"expires_at,omitempty"`
}

func (d sessionDoc) toDomain() domain.Session {
	s := domain.Session{
		ID:        fromDB(d.ID),
		UserID:    fromDB(d.UserID),
		CreatedAt: d.CreatedAt.UTC(),
	}
	if d.ExpiresAt != nil {
		exp := d.ExpiresAt.UTC()
		s.ExpiresAt = &exp
	}
	return s
}

type sessionsRepo struct {
	c *mongo.Collection
}

func (r *sessionsRepo) CreateSession(ctx context.Context, s domain.Session) error {
	doc := sessionDoc{
		ID:        toDB(s.ID),
		UserID:    toDB(s.UserID),
		CreatedAt: s.CreatedAt.UTC(),
	}
	if s.ExpiresAt != nil {
		exp := s.ExpiresAt.UTC()
		doc.ExpiresAt = &exp
	}

	_, err := r.c.InsertOne(ctx, doc)
	return mapInsert(err)
}

func (r *sessionsRepo) GetSessionByID(ctx context.Context, id uint64) (domain.Session, error) {
	var doc sessionDoc
	if err := r.c.FindOne(ctx, bson.D{{Key: "_id", Value: toDB(id)}}).Decode(&doc); err != nil {
		return domain.Session{}, mapNotFound(err)
	}
	return doc.toDomain(), nil
}

func (r *sessionsRepo) DeleteSession(ctx context.Context, id uint64) (bool, error) {
	res, err := r.c.DeleteOne(ctx, bson.D{{Key: "_id", Value: toDB(id)}})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *sessionsRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.c.DeleteMany(ctx, bson.D{{Key: "expires_at", Value: bson.D{{Key: "$lte", Value: now.UTC()}}}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *sessionsRepo) MaxID(ctx context.Context) (uint64, error) {
	return maxID(ctx, r.c)
}
