package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// indexes is the Mongo counterpart of the SQLite schema: the unique ones
// carry the username, todo title and task description invariants.
var indexes = map[string][]mongo.IndexModel{
	usersCollection: {
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetName("uniq_username").SetUnique(true),
		},
	},
	sessionsCollection: {
		{
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetName("idx_expires_at").SetSparse(true),
		},
	},
	todosCollection: {
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "title", Value: 1}},
			Options: options.Index().SetName("uniq_user_title").SetUnique(true),
		},
	},
	tasksCollection: {
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "todo_id", Value: 1}, {Key: "description", Value: 1}},
			Options: options.Index().SetName("uniq_user_todo_description").SetUnique(true),
		},
	},
}

// ApplyMigrations creates the collections' indexes. CreateMany is a no-op
// for indexes that already exist with the same definition.
func (s *Store) ApplyMigrations(ctx context.Context) error {
	for name, models := range indexes {
		if _, err := s.db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("mongo: create %s indexes: %w", name, err)
		}
	}
	return nil
}
