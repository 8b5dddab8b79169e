package model

import "gorm.io/gorm"

// Task statuses and priorities.
const (
	TaskTodo       = "TODO"
	TaskInProgress = "IN_PROGRESS"
	TaskDone       = "DONE"

	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"
)

type Task struct {
	gorm.Model
	ProfileID   uint   `json:"profile_id" gorm:"index;not null"` // assignee
	AssignedBy  uint   `json:"assigned_by"`                      // admin/HR profile ID
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"` // YYYY-MM-DD
	Priority    string `json:"priority" gorm:"default:MEDIUM"`
	Status      string `json:"status" gorm:"default:TODO"`

	Profile *Profile `json:"profile,omitempty" gorm:"foreignKey:ProfileID"`
}
