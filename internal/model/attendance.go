package model

import (
	"time"

	"gorm.io/gorm"
)

// Attendance record statuses.
const (
	AttendanceCheckedIn = "CHECKED_IN"
	AttendanceCompleted = "COMPLETED"
)

// AttendanceRecord is one row per profile per calendar day. It is created at
// check-in and updated exactly once at check-out; the unique index on
// (profile_id, work_date) is the final guard against a double check-in racing
// in from another session.
type AttendanceRecord struct {
	gorm.Model
	ProfileID       uint       `json:"profile_id" gorm:"uniqueIndex:idx_attendance_profile_date;not null"`
	WorkDate        string     `json:"work_date" gorm:"uniqueIndex:idx_attendance_profile_date;not null"` // YYYY-MM-DD
	CheckInTime     time.Time  `json:"check_in_time" gorm:"not null"`
	CheckOutTime    *time.Time `json:"check_out_time"`
	CheckInAddress  string     `json:"check_in_address"`
	CheckOutAddress string     `json:"check_out_address"`
	TotalHours      float64    `json:"total_hours"`
	Status          string     `json:"status" gorm:"default:CHECKED_IN"`
	TimesheetDone   bool       `json:"timesheet_completed" gorm:"column:timesheet_completed;default:false"`

	Profile *Profile `json:"profile,omitempty" gorm:"foreignKey:ProfileID"`
}
