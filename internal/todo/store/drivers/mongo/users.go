package mongo

import (
	"context"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/todo/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type userDoc struct {
	ID           int64     `bson:"_id"`
	Username     string    `bson:"username"`
	PasswordHash string    `bson:"password_hash"`
	CreatedAt    time.Time `bson:"created_at"`
}

func (d userDoc) toDomain() domain.User {
	return domain.User{
		ID:           fromDB(d.ID),
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt.UTC(),
	}
}

type usersRepo struct {
	c *mongo.Collection
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.c.InsertOne(ctx, userDoc{
		ID:           toDB(u.ID),
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt.UTC(),
	})
	return mapInsert(err)
}

func (r *usersRepo) findOne(ctx context.Context, filter bson.D) (domain.User, error) {
	var doc userDoc
	if err := r.c.FindOne(ctx, filter).Decode(&doc); err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return doc.toDomain(), nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id uint64) (domain.User, error) {
	return r.findOne(ctx, bson.D{{Key: "_id", Value: toDB(id)}})
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.findOne(ctx, bson.D{{Key: "username", Value: username}})
}

func (r *usersRepo) MaxID(ctx context.Context) (uint64, error) {
	return maxID(ctx, r.c)
}
