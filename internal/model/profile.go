package model

import "gorm.io/gorm"

// Role names used across the authorization layer. Stored as plain strings on
// the profile row; the policy rules live in internal/authz.
const (
	RoleAdmin    = "admin"
	RoleHR       = "hr"
	RoleEmployee = "employee"
)

// Profile is the employee/HR/admin identity record, distinct from the User
// login identity.
type Profile struct {
	gorm.Model
	UserID       uint   `json:"user_id" gorm:"uniqueIndex;not null"`
	FullName     string `json:"full_name" gorm:"not null"`
	Role         string `json:"role" gorm:"not null;default:employee"`
	EmployeeCode string `json:"employee_code" gorm:"uniqueIndex;not null"`
	Department   string `json:"department"`
	Position     string `json:"position"`
	Phone        string `json:"phone"`
	JoinDate     string `json:"join_date"` // YYYY-MM-DD

	User        User                 `json:"-" gorm:"foreignKey:UserID"`
	Attendance  []AttendanceRecord   `json:"attendance,omitempty" gorm:"foreignKey:ProfileID"`
	Leaves      []LeaveRequest       `json:"leaves,omitempty" gorm:"foreignKey:ProfileID"`
	Tasks       []Task               `json:"tasks,omitempty" gorm:"foreignKey:ProfileID"`
	Goals       []Goal               `json:"goals,omitempty" gorm:"foreignKey:ProfileID"`
	Enrollments []TrainingEnrollment `json:"enrollments,omitempty" gorm:"foreignKey:ProfileID"`
}

// IsPrivileged reports whether the profile may act on other employees' data.
func (p *Profile) IsPrivileged() bool {
	return p.Role == RoleAdmin || p.Role == RoleHR
}
