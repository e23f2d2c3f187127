package models

// EmployeeRole is the production role an employee fills.
type EmployeeRole string

const (
	RoleProducer EmployeeRole = "producer"
	RoleEditor   EmployeeRole = "editor"
	RoleDesigner EmployeeRole = "designer"
	RolePM       EmployeeRole = "pm"
	RoleFinance  EmployeeRole = "finance"
	RoleOther    EmployeeRole = "other"
)

// EmployeeAvailability tracks whether an employee can take on work.
type EmployeeAvailability string

const (
	AvailabilityAvailable EmployeeAvailability = "available"
	AvailabilityBusy      EmployeeAvailability = "busy"
	AvailabilityOOO       EmployeeAvailability = "ooo"
)

type Employee struct {
	Name         string               `json:"name" bson:"name" binding:"required"`
	Email        string               `json:"email" bson:"email" binding:"required,email"`
	Role         EmployeeRole         `json:"role" bson:"role" binding:"omitempty,oneof=producer editor designer pm finance other"`
	RateHour     *float64             `json:"rate_hour" bson:"rate_hour" binding:"omitempty,gte=0"`
	Skills       []string             `json:"skills" bson:"skills"`
	Availability EmployeeAvailability `json:"availability" bson:"availability" binding:"omitempty,oneof=available busy ooo"`
	Active       *bool                `json:"active" bson:"active"`
}

// SetDefaults fills unset optional fields with their declared defaults.
// Active defaults to true, which is why it is a pointer: a bare bool could
// not tell an explicit false from an absent field.
func (e *Employee) SetDefaults() {
	if e.Role == "" {
		e.Role = RoleOther
	}
	if e.Availability == "" {
		e.Availability = AvailabilityAvailable
	}
	if e.Skills == nil {
		e.Skills = []string{}
	}
	if e.Active == nil {
		active := true
		e.Active = &active
	}
}
