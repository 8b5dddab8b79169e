package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Payslip statuses.
const (
	PayslipGenerated = "GENERATED"
	PayslipPaid      = "PAID"
)

// SalaryStructure holds the monthly figures a payslip is computed from.
// One per profile, maintained by admin/HR.
type SalaryStructure struct {
	gorm.Model
	ProfileID  uint    `json:"profile_id" gorm:"uniqueIndex;not null"`
	Basic      float64 `json:"basic"`
	HRA        float64 `json:"hra"`
	Allowances float64 `json:"allowances"`
	Deductions float64 `json:"deductions"`

	Profile *Profile `json:"profile,omitempty" gorm:"foreignKey:ProfileID"`
}

// Payslip is one generated month of pay for a profile. Reference is a random
// unguessable identifier printed on the slip; Breakdown keeps the component
// amounts as JSON for rendering.
type Payslip struct {
	gorm.Model
	ProfileID       uint           `json:"profile_id" gorm:"uniqueIndex:idx_payslip_profile_period;not null"`
	Month           string         `json:"month" gorm:"uniqueIndex:idx_payslip_profile_period;not null"` // "01".."12"
	Year            string         `json:"year" gorm:"uniqueIndex:idx_payslip_profile_period;not null"`  // "2026"
	Reference       string         `json:"reference" gorm:"uniqueIndex;not null"`
	BasicPay        float64        `json:"basic_pay"`
	TotalAllowances float64        `json:"total_allowances"`
	TotalDeductions float64        `json:"total_deductions"`
	LOPDays         int            `json:"lop_days"` // loss-of-pay days from approved unpaid leave
	NetPay          float64        `json:"net_pay"`
	Breakdown       datatypes.JSON `json:"breakdown"`
	Status          string         `json:"status" gorm:"default:GENERATED"`

	Profile *Profile `json:"profile,omitempty" gorm:"foreignKey:ProfileID"`
}
