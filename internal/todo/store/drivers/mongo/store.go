package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/todo/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	usersCollection    = "users"
	sessionsCollection = "sessions"
	todosCollection    = "todos"
	tasksCollection    = "tasks"
)

// disconnectTimeout bounds Close, which has no caller context.
const disconnectTimeout = 10 * time.Second

type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

var _ store.Store = (*Store)(nil)

// NewStore connects to uri and uses the named database. The client's own
// pool and retry settings apply; the store adds none.
func NewStore(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo: connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo: ping: %w", err)
	}

	return &Store{client: client, db: client.Database(database)}, nil
}

func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// Ping verifies the primary is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *Store) Users() store.Users       { return &usersRepo{c: s.db.Collection(usersCollection)} }
func (s *Store) Sessions() store.Sessions { return &sessionsRepo{c: s.db.Collection(sessionsCollection)} }
func (s *Store) Todos() store.Todos       { return &todosRepo{c: s.db.Collection(todosCollection)} }
func (s *Store) Tasks() store.Tasks       { return &tasksRepo{c: s.db.Collection(tasksCollection)} }

func mapNotFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return store.ErrNotFound
	}
	return err
}

func mapInsert(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return store.ErrAlreadyExists
	}
	return err
}

// ids are kept below 2^63 so they round-trip through BSON int64.
func toDB(id uint64) int64 { return int64(id) } // #nosec G115

func fromDB(id int64) uint64 { return uint64(id) } // #nosec G115

// maxID reads the highest _id in c.
func maxID(ctx context.Context, c *mongo.Collection) (uint64, error) {
	opts := options.FindOne().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetProjection(bson.D{{Key: "_id", Value: 1}})

	var doc struct {
		ID int64 `bson:"_id"`
	}
	if err := c.FindOne(ctx, bson.D{}, opts).Decode(&doc); err != nil {
		return 0, mapNotFound(err)
	}
	return fromDB(doc.ID), nil
}

// decodeAll drains cur into a non-nil slice, converting each document.
func decodeAll[D any, T any](ctx context.Context, cur *mongo.Cursor, conv func(D) T) ([]T, error) {
	defer cur.Close(ctx)

	out := []T{}
	for cur.Next(ctx) {
		var doc D
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("mongo: decode: %w", err)
		}
		out = append(out, conv(doc))
	}
	return out, cur.Err()
}
