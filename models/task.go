package models

import "time"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusReview     TaskStatus = "review"
	TaskStatusDone       TaskStatus = "done"
)

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityUrgent TaskPriority = "urgent"
)

// Task is a unit of work inside a project, optionally assigned to an
// employee.
type Task struct {
	ProjectID     string       `json:"project_id" bson:"project_id" binding:"required"`
	Title         string       `json:"title" bson:"title" binding:"required"`
	Description   *string      `json:"description" bson:"description"`
	AssigneeID    *string      `json:"assignee_id" bson:"assignee_id"`
	Status        TaskStatus   `json:"status" bson:"status" binding:"omitempty,oneof=todo in_progress review done"`
	Priority      TaskPriority `json:"priority" bson:"priority" binding:"omitempty,oneof=low medium high urgent"`
	DueDate       *time.Time   `json:"due_date" bson:"due_date"`
	EstimateHours *float64     `json:"estimate_hours" bson:"estimate_hours" binding:"omitempty,gte=0"`
	Labels        []string     `json:"labels" bson:"labels"`
}

// SetDefaults fills unset optional fields with their declared defaults.
func (t *Task) SetDefaults() {
	if t.Status == "" {
		t.Status = TaskStatusTodo
	}
	if t.Priority == "" {
		t.Priority = TaskPriorityMedium
	}
	if t.Labels == nil {
		t.Labels = []string{}
	}
}
