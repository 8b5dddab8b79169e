package model

import "gorm.io/gorm"

// Leave request statuses.
const (
	LeavePending   = "PENDING"
	LeaveApproved  = "APPROVED"
	LeaveRejected  = "REJECTED"
	LeaveCancelled = "CANCELLED"
)

// Leave types. UNPAID days feed the loss-of-pay count during payslip
// generation.
const (
	LeaveCasual = "CASUAL"
	LeaveSick   = "SICK"
	LeaveEarned = "EARNED"
	LeaveUnpaid = "UNPAID"
)

type LeaveRequest struct {
	gorm.Model
	ProfileID  uint   `json:"profile_id" gorm:"index;not null"`
	LeaveType  string `json:"leave_type"` // CASUAL, SICK, EARNED, UNPAID
	FromDate   string `json:"from_date"`  // YYYY-MM-DD
	ToDate     string `json:"to_date"`    // YYYY-MM-DD
	TotalDays  int    `json:"total_days"`
	Reason     string `json:"reason"`
	Status     string `json:"status" gorm:"default:PENDING"`
	ReviewedBy *uint  `json:"reviewed_by"` // profile ID of the admin/HR decider
	ReviewNote string `json:"review_note"`

	Profile *Profile `json:"profile,omitempty" gorm:"foreignKey:ProfileID"`
}
