package mongo

import (
	"context"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/todo/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type todoDoc struct {
	ID        int64     `bson:"_id"`
	UserID    int64     `bson:"user_id"`
	Title     string    `bson:"title"`
	CreatedAt time.Time `bson:"created_at"`
}

func (d todoDoc) toDomain() domain.Todo {
	return domain.Todo{
		ID:        fromDB(d.ID),
		UserID:    fromDB(d.UserID),
		Title:     d.Title,
		CreatedAt: d.CreatedAt.UTC(),
	}
}

type todosRepo struct {
	c *mongo.Collection
}

func todoFilter(userID, todoID uint64) bson.D {
	return bson.D{{Key: "user_id", Value: toDB(userID)}, {Key: "_id", Value: toDB(todoID)}}
}

func (r *todosRepo) CreateTodo(ctx context.Context, t domain.Todo) error {
	_, err := r.c.InsertOne(ctx, todoDoc{
		ID:        toDB(t.ID),
		UserID:    toDB(t.UserID),
		Title:     t.Title,
		CreatedAt: t.CreatedAt.UTC(),
	})
	return mapInsert(err)
}

func (r *todosRepo) ListTodos(ctx context.Context, userID uint64) ([]domain.Todo, error) {
	cur, err := r.c.Find(ctx,
		bson.D{{Key: "user_id", Value: toDB(userID)}},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	return decodeAll(ctx, cur, todoDoc.toDomain)
}

func (r *todosRepo) findOne(ctx context.Context, filter bson.D) (domain.Todo, error) {
	var doc todoDoc
	if err := r.c.FindOne(ctx, filter).Decode(&doc); err != nil {
		return domain.Todo{}, mapNotFound(err)
	}
	return doc.toDomain(), nil
}

func (r *todosRepo) GetTodoByID(ctx context.Context, userID, todoID uint64) (domain.Todo, error) {
	return r.findOne(ctx, todoFilter(userID, todoID))
}

func (r *todosRepo) GetTodoByTitle(ctx context.Context, userID uint64, title string) (domain.Todo, error) {
	return r.findOne(ctx, bson.D{{Key: "user_id", Value: toDB(userID)}, {Key: "title", Value: title}})
}

func (r *todosRepo) DeleteTodo(ctx context.Context, userID, todoID uint64) (bool, error) {
	res, err := r.c.DeleteOne(ctx, todoFilter(userID, todoID))
	if err != nil {
		return false, err
	}
	return res.DeletedCount == 1, nil
}

func (r *todosRepo) MaxID(ctx context.Context) (uint64, error) {
	return maxID(ctx, r.c)
}
