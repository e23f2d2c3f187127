package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"slate/models"
)

// TaskRepository is the persistence surface for tasks. Listing accepts an
// equality filter on the owning project.
type TaskRepository interface {
	CreateTask(ctx context.Context, task *models.Task) (string, error)
	ListTasks(ctx context.Context, filter TaskFilter) ([]bson.M, error)
}

func (s *Store) CreateTask(ctx context.Context, task *models.Task) (string, error) {
	oid, err := s.insertOne(ctx, collectionTask, task)
	if err != nil {
		return "", err
	}
	return oid.Hex(), nil
}

func (s *Store) ListTasks(ctx context.Context, filter TaskFilter) ([]bson.M, error) {
	return s.findAll(ctx, collectionTask, filter.document())
}
