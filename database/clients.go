package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"slate/models"
)

// ClientRepository is the persistence surface for clients: insert one
// validated record, or fetch every record as raw documents.
type ClientRepository interface {
	CreateClient(ctx context.Context, client *models.Client) (string, error)
	ListClients(ctx context.Context) ([]bson.M, error)
}

func (s *Store) CreateClient(ctx context.Context, client *models.Client) (string, error) {
	oid, err := s.insertOne(ctx, collectionClient, client)
	if err != nil {
		return "", err
	}
	return oid.Hex(), nil
}

func (s *Store) ListClients(ctx context.Context) ([]bson.M, error) {
	return s.findAll(ctx, collectionClient, bson.M{})
}
