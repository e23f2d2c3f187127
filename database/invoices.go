package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"slate/models"
)

// InvoiceRepository is the persistence surface for invoices. Listing
// accepts equality filters on client and project, combined as an AND.
type InvoiceRepository interface {
	CreateInvoice(ctx context.Context, invoice *models.Invoice) (string, error)
	ListInvoices(ctx context.Context, filter InvoiceFilter) ([]bson.M, error)
}

func (s *Store) CreateInvoice(ctx context.Context, invoice *models.Invoice) (string, error) {
	oid, err := s.insertOne(ctx, collectionInvoice, invoice)
	if err != nil {
		return "", err
	}
	return oid.Hex(), nil
}

func (s *Store) ListInvoices(ctx context.Context, filter InvoiceFilter) ([]bson.M, error) {
	return s.findAll(ctx, collectionInvoice, filter.document())
}
