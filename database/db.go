package database

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names, one per entity, singular by convention.
const (
	collectionClient   = "client"
	collectionEmployee = "employee"
	collectionProject  = "project"
	collectionTask     = "task"
	collectionInvoice  = "invoice"
)

// Store is the MongoDB-backed document store shared by all handlers. A
// Store from Disconnected carries no connection and fails every operation
// with ErrUnavailable instead of crashing.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

func Connect(ctx context.Context, uri, name string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logrus.WithField("database", name).Info("Database connection established")
	return &Store{client: client, db: client.Database(name)}, nil
}

// Disconnected returns a Store without a backing connection, for running
// the API when DATABASE_URL is not set.
func Disconnected() *Store {
	return &Store{}
}

// Available reports whether the store has a configured connection.
func (s *Store) Available() bool {
	return s.db != nil
}

func (s *Store) Close() {
	if s.client == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.client.Disconnect(ctx); err != nil {
		logrus.WithError(err).Warn("Failed to close database connection")
		return
	}
	logrus.Info("Database connection closed")
}

// Collections returns the names of the collections present in the
// database. The diagnostic endpoint renders the error case inline rather
// than failing the request.
func (s *Store) Collections(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}

	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return names, nil
}

// insertOne persists one validated record into the named collection and
// returns the store-assigned identifier.
func (s *Store) insertOne(ctx context.Context, collection string, record any) (primitive.ObjectID, error) {
	if s.db == nil {
		return primitive.NilObjectID, ErrUnavailable
	}

	res, err := s.db.Collection(collection).InsertOne(ctx, record)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert into %s: %w", collection, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected identifier type %T from %s insert", res.InsertedID, collection)
	}
	return oid, nil
}

// findAll returns every record in the collection matching the filter, in
// natural storage order. An empty filter matches everything. No
// pagination, no sort, no limit.
func (s *Store) findAll(ctx context.Context, collection string, filter bson.M) ([]bson.M, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}

	cursor, err := s.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	records := []bson.M{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode %s records: %w", collection, err)
	}
	return records, nil
}
