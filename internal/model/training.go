package model

import "gorm.io/gorm"

// Training enrollment statuses.
const (
	EnrollmentEnrolled  = "ENROLLED"
	EnrollmentCompleted = "COMPLETED"
	EnrollmentDropped   = "DROPPED"
)

type TrainingSession struct {
	gorm.Model
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description"`
	Trainer     string `json:"trainer"`
	Category    string `json:"category"`
	StartDate   string `json:"start_date"` // YYYY-MM-DD
	EndDate     string `json:"end_date"`   // YYYY-MM-DD
	Capacity    int    `json:"capacity"`
	Location    string `json:"location"`

	Enrollments []TrainingEnrollment `json:"enrollments,omitempty" gorm:"foreignKey:TrainingSessionID"`
}

type TrainingEnrollment struct {
	gorm.Model
	TrainingSessionID uint     `json:"training_session_id" gorm:"uniqueIndex:idx_enrollment_session_profile;not null"`
	ProfileID         uint     `json:"profile_id" gorm:"uniqueIndex:idx_enrollment_session_profile;not null"`
	Status            string   `json:"status" gorm:"default:ENROLLED"`
	Score             *float64 `json:"score"`

	TrainingSession *TrainingSession `json:"training_session,omitempty" gorm:"foreignKey:TrainingSessionID"`
	Profile         *Profile         `json:"profile,omitempty" gorm:"foreignKey:ProfileID"`
}
