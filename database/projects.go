package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"slate/models"
)

// ProjectRepository is the persistence surface for projects.
type ProjectRepository interface {
	CreateProject(ctx context.Context, project *models.Project) (string, error)
	ListProjects(ctx context.Context) ([]bson.M, error)
}

func (s *Store) CreateProject(ctx context.Context, project *models.Project) (string, error) {
	oid, err := s.insertOne(ctx, collectionProject, project)
	if err != nil {
		return "", err
	}
	return oid.Hex(), nil
}

func (s *Store) ListProjects(ctx context.Context) ([]bson.M, error) {
	return s.findAll(ctx, collectionProject, bson.M{})
}
