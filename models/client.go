package models

// ClientStatus is the lifecycle state of a client relationship.
type ClientStatus string

const (
	ClientStatusLead     ClientStatus = "lead"
	ClientStatusActive   ClientStatus = "active"
	ClientStatusInactive ClientStatus = "inactive"
)

// Client is an organization or person the studio produces work for.
// Projects and invoices reference clients by id; the reference is stored
// by value and never enforced across collections.
type Client struct {
	Name        string       `json:"name" bson:"name" binding:"required"`
	ContactName *string      `json:"contact_name" bson:"contact_name"`
	Email       *string      `json:"email" bson:"email" binding:"omitempty,email"`
	Phone       *string      `json:"phone" bson:"phone"`
	Website     *string      `json:"website" bson:"website"`
	Industry    *string      `json:"industry" bson:"industry"`
	Notes       *string      `json:"notes" bson:"notes"`
	Address     *string      `json:"address" bson:"address"`
	Status      ClientStatus `json:"status" bson:"status" binding:"omitempty,oneof=lead active inactive"`
}

// SetDefaults fills unset optional fields with their declared defaults.
func (c *Client) SetDefaults() {
	if c.Status == "" {
		c.Status = ClientStatusActive
	}
}
