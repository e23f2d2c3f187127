package database

import "go.mongodb.org/mongo-driver/bson"

// TaskFilter narrows a task listing to one project. The zero value
// matches every task.
type TaskFilter struct {
	ProjectID string
}

func (f TaskFilter) document() bson.M {
	filter := bson.M{}
	if f.ProjectID != "" {
		filter["project_id"] = f.ProjectID
	}
	return filter
}

// InvoiceFilter narrows an invoice listing by client and/or project. Both
// conditions apply when both are set.
type InvoiceFilter struct {
	ClientID  string
	ProjectID string
}

func (f InvoiceFilter) document() bson.M {
	filter := bson.M{}
	if f.ClientID != "" {
		filter["client_id"] = f.ClientID
	}
	if f.ProjectID != "" {
		filter["project_id"] = f.ProjectID
	}
	return filter
}
