package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Goal statuses.
const (
	GoalActive    = "ACTIVE"
	GoalCompleted = "COMPLETED"
	GoalAbandoned = "ABANDONED"
)

type Goal struct {
	gorm.Model
	ProfileID   uint           `json:"profile_id" gorm:"index;not null"`
	CreatedBy   uint           `json:"created_by"` // profile ID (self or admin/HR)
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	TargetDate  string         `json:"target_date"` // YYYY-MM-DD
	Progress    int            `json:"progress" gorm:"default:0"`
	Status      string         `json:"status" gorm:"default:ACTIVE"`
	Milestones  datatypes.JSON `json:"milestones"`

	Profile *Profile     `json:"profile,omitempty" gorm:"foreignKey:ProfileID"`
	Updates []GoalUpdate `json:"updates,omitempty" gorm:"foreignKey:GoalID"`
}

// GoalUpdate is the progress journal: one row per reported progress change.
type GoalUpdate struct {
	gorm.Model
	GoalID    uint   `json:"goal_id" gorm:"index;not null"`
	ProfileID uint   `json:"profile_id"`
	Progress  int    `json:"progress"`
	Note      string `json:"note"`
}
