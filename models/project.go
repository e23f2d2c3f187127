package models

import "time"

// ProjectStatus follows a production through its pipeline stages.
type ProjectStatus string

const (
	ProjectStatusPlanning   ProjectStatus = "planning"
	ProjectStatusPre        ProjectStatus = "pre"
	ProjectStatusProduction ProjectStatus = "production"
	ProjectStatusPost       ProjectStatus = "post"
	ProjectStatusDelivered  ProjectStatus = "delivered"
	ProjectStatusArchived   ProjectStatus = "archived"
)

// Project is one production engagement, usually for a client. Members
// holds the employee ids assigned to the project.
type Project struct {
	Name        string        `json:"name" bson:"name" binding:"required"`
	ClientID    *string       `json:"client_id" bson:"client_id"`
	Description *string       `json:"description" bson:"description"`
	Status      ProjectStatus `json:"status" bson:"status" binding:"omitempty,oneof=planning pre production post delivered archived"`
	StartDate   *time.Time    `json:"start_date" bson:"start_date"`
	DueDate     *time.Time    `json:"due_date" bson:"due_date"`
	Budget      *float64      `json:"budget" bson:"budget" binding:"omitempty,gte=0"`
	Tags        []string      `json:"tags" bson:"tags"`
	Members     []string      `json:"members" bson:"members"`
}

// SetDefaults fills unset optional fields with their declared defaults.
func (p *Project) SetDefaults() {
	if p.Status == "" {
		p.Status = ProjectStatusPlanning
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.Members == nil {
		p.Members = []string{}
	}
}
