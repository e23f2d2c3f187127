package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"slate/models"
)

// EmployeeRepository is the persistence surface for employees.
type EmployeeRepository interface {
	CreateEmployee(ctx context.Context, employee *models.Employee) (string, error)
	ListEmployees(ctx context.Context) ([]bson.M, error)
}

func (s *Store) CreateEmployee(ctx context.Context, employee *models.Employee) (string, error) {
	oid, err := s.insertOne(ctx, collectionEmployee, employee)
	if err != nil {
		return "", err
	}
	return oid.Hex(), nil
}

func (s *Store) ListEmployees(ctx context.Context) ([]bson.M, error) {
	return s.findAll(ctx, collectionEmployee, bson.M{})
}
