package database

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"slate/models"
)

// MemStore is an in-memory stand-in for Store used by handler tests. It
// implements the five repositories and the diagnostic surface, keeping
// records in insertion order per collection. Set Unavailable to exercise
// the not-configured paths, CollectionsErr to exercise the diagnostic
// error rendering.
type MemStore struct {
	mu             sync.Mutex
	records        map[string][]bson.M
	Unavailable    bool
	CollectionsErr error
}

func NewMemStore() *MemStore {
	return &MemStore{records: map[string][]bson.M{}}
}

// add persists a record the way the real store would: through its bson
// tags, with a fresh ObjectID under _id.
func (m *MemStore) add(collection string, record any) (string, error) {
	if m.Unavailable {
		return "", ErrUnavailable
	}

	raw, err := bson.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s record: %w", collection, err)
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return "", fmt.Errorf("failed to unmarshal %s record: %w", collection, err)
	}

	oid := primitive.NewObjectID()
	doc["_id"] = oid

	m.mu.Lock()
	m.records[collection] = append(m.records[collection], doc)
	m.mu.Unlock()

	return oid.Hex(), nil
}

func (m *MemStore) list(collection string, filter bson.M) ([]bson.M, error) {
	if m.Unavailable {
		return nil, ErrUnavailable
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	out := []bson.M{}
	for _, doc := range m.records[collection] {
		matched := true
		for key, want := range filter {
			if doc[key] != want {
				matched = false
				break
			}
		}
		if matched {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (m *MemStore) CreateClient(_ context.Context, client *models.Client) (string, error) {
	return m.add(collectionClient, client)
}

func (m *MemStore) ListClients(_ context.Context) ([]bson.M, error) {
	return m.list(collectionClient, bson.M{})
}

func (m *MemStore) CreateEmployee(_ context.Context, employee *models.Employee) (string, error) {
	return m.add(collectionEmployee, employee)
}

func (m *MemStore) ListEmployees(_ context.Context) ([]bson.M, error) {
	return m.list(collectionEmployee, bson.M{})
}

func (m *MemStore) CreateProject(_ context.Context, project *models.Project) (string, error) {
	return m.add(collectionProject, project)
}

func (m *MemStore) ListProjects(_ context.Context) ([]bson.M, error) {
	return m.list(collectionProject, bson.M{})
}

func (m *MemStore) CreateTask(_ context.Context, task *models.Task) (string, error) {
	return m.add(collectionTask, task)
}

func (m *MemStore) ListTasks(_ context.Context, filter TaskFilter) ([]bson.M, error) {
	return m.list(collectionTask, filter.document())
}

func (m *MemStore) CreateInvoice(_ context.Context, invoice *models.Invoice) (string, error) {
	return m.add(collectionInvoice, invoice)
}

func (m *MemStore) ListInvoices(_ context.Context, filter InvoiceFilter) ([]bson.M, error) {
	return m.list(collectionInvoice, filter.document())
}

func (m *MemStore) Available() bool {
	return !m.Unavailable
}

// Collections returns the names of the non-empty collections, sorted for
// stable assertions.
func (m *MemStore) Collections(_ context.Context) ([]string, error) {
	if m.Unavailable {
		return nil, ErrUnavailable
	}
	if m.CollectionsErr != nil {
		return nil, m.CollectionsErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	names := []string{}
	for name, docs := range m.records {
		if len(docs) > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// SetupTestStore connects to the MongoDB instance named by TEST_MONGO_URI
// and skips the test when it is not set. Integration tests run against a
// dedicated slate_test database.
func SetupTestStore(t *testing.T) *Store {
	t.Helper()

	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TEST_MONGO_URI not set, skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := Connect(ctx, uri, "slate_test")
	require.NoError(t, err)

	t.Cleanup(store.Close)
	return store
}

// CleanupTestStore drops every entity collection for a fresh test state.
func CleanupTestStore(t *testing.T, store *Store) {
	t.Helper()

	ctx := context.Background()
	for _, name := range []string{collectionClient, collectionEmployee, collectionProject, collectionTask, collectionInvoice} {
		require.NoError(t, store.db.Collection(name).Drop(ctx))
	}
}
