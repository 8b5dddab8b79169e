package model

import "gorm.io/gorm"

// MaxTimesheetSlots is the cap on entries captured per workday.
const MaxTimesheetSlots = 10

// Timesheet is the per-day container created at check-out, keyed like the
// attendance record it belongs to.
type Timesheet struct {
	gorm.Model
	ProfileID          uint   `json:"profile_id" gorm:"uniqueIndex:idx_timesheet_profile_date;not null"`
	WorkDate           string `json:"work_date" gorm:"uniqueIndex:idx_timesheet_profile_date;not null"` // YYYY-MM-DD
	AttendanceRecordID uint   `json:"attendance_record_id"`

	Entries []TimesheetEntry `json:"entries,omitempty" gorm:"foreignKey:TimesheetID"`
}

// TimesheetEntry is one captured time range of the day. Only slots with both
// times filled are ever persisted; SlotNo keeps the submitted order.
type TimesheetEntry struct {
	gorm.Model
	TimesheetID uint    `json:"timesheet_id" gorm:"index;not null"`
	SlotNo      int     `json:"slot_no"`
	FromTime    string  `json:"from_time"` // HH:MM
	ToTime      string  `json:"to_time"`   // HH:MM
	Description string  `json:"description"`
	Hours       float64 `json:"hours"`
}
