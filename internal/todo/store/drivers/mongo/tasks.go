package mongo

import (
	"context"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/todo/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type taskDoc struct {
	ID          int64     `bson:"_id"`
	UserID      int64     `bson:"user_id"`
	TodoID      int64     `bson:"todo_id"`
	Description string    `bson:"description"`
	Done        bool      `bson:"done"`
	Priority    float64   `bson:"priority"`
	CreatedAt   time.Time `bson:"created_at"`
}

func (d taskDoc) toDomain() domain.Task {
	return domain.Task{
		ID:          fromDB(d.ID),
		UserID:      fromDB(d.UserID),
		TodoID:      fromDB(d.TodoID),
		Description: d.Description,
		Done:        d.Done,
		Priority:    d.Priority,
		CreatedAt:   d.CreatedAt.UTC(),
	}
}

type tasksRepo struct {
	c *mongo.Collection
}

func taskFilter(userID, todoID, taskID uint64) bson.D {
	return bson.D{
		{Key: "user_id", Value: toDB(userID)},
		{Key: "todo_id", Value: toDB(todoID)},
		{Key: "_id", Value: toDB(taskID)},
	}
}

// toggleDone flips done server side so concurrent toggles never lose an
// update.
var toggleDone = mongo.Pipeline{
	{{Key: "$set", Value: bson.D{{Key: "done", Value: bson.D{{Key: "$not", Value: bson.A{"$done"}}}}}}},
}

func (r *tasksRepo) CreateTask(ctx context.Context, t domain.Task) error {
	_, err := r.c.InsertOne(ctx, taskDoc{
		ID:          toDB(t.ID),
		UserID:      toDB(t.UserID),
		TodoID:      toDB(t.TodoID),
		Description: t.Description,
		Done:        t.Done,
		Priority:    t.Priority,
		CreatedAt:   t.CreatedAt.UTC(),
	})
	return mapInsert(err)
}

func (r *tasksRepo) ListTasks(ctx context.Context, userID uint64, todoID *uint64) ([]domain.Task, error) {
	filter := bson.D{{Key: "user_id", Value: toDB(userID)}}
	if todoID != nil {
		filter = append(filter, bson.E{Key: "todo_id", Value: toDB(*todoID)})
	}

	cur, err := r.c.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	return decodeAll(ctx, cur, taskDoc.toDomain)
}

func (r *tasksRepo) findOne(ctx context.Context, filter bson.D) (domain.Task, error) {
	var doc taskDoc
	if err := r.c.FindOne(ctx, filter).Decode(&doc); err != nil {
		return domain.Task{}, mapNotFound(err)
	}
	return doc.toDomain(), nil
}

func (r *tasksRepo) GetTaskByID(ctx context.Context, userID, todoID, taskID uint64) (domain.Task, error) {
	return r.findOne(ctx, taskFilter(userID, todoID, taskID))
}

func (r *tasksRepo) GetTaskByDescription(ctx context.Context, userID, todoID uint64, description string) (domain.Task, error) {
	return r.findOne(ctx, bson.D{
		{Key: "user_id", Value: toDB(userID)},
		{Key: "todo_id", Value: toDB(todoID)},
		{Key: "description", Value: description},
	})
}

func (r *tasksRepo) ToggleDone(ctx context.Context, userID, todoID, taskID uint64) (bool, error) {
	res, err := r.c.UpdateOne(ctx, taskFilter(userID, todoID, taskID), toggleDone)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}

func (r *tasksRepo) DeleteTask(ctx context.Context, userID, todoID, taskID uint64) (bool, error) {
	res, err := r.c.DeleteOne(ctx, taskFilter(userID, todoID, taskID))
	if err != nil {
		return false, err
	}
	return res.DeletedCount == 1, nil
}

func (r *tasksRepo) DeleteByTodo(ctx context.Context, userID, todoID uint64) (int64, error) {
	res, err := r.c.DeleteMany(ctx, bson.D{
		{Key: "user_id", Value: toDB(userID)},
		{Key: "todo_id", Value: toDB(todoID)},
	})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *tasksRepo) MaxID(ctx context.Context) (uint64, error) {
	return maxID(ctx, r.c)
}
