// Package authz centralizes the role-and-ownership rules that were
// row-level-security policies in the hosted database: employees reach their
// own rows, admin and HR reach everyone's, and approval/management actions
// are admin/HR only. Handlers consult these predicates instead of encoding
// role checks inline.
package authz

import (
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/model"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/session"
)

func privileged(s *session.Session) bool {
	return s != nil && (s.Role == model.RoleAdmin || s.Role == model.RoleHR)
}

func owner(s *session.Session, profileID uint) bool {
	return s != nil && s.ProfileID == profileID
}

// CanReadOwned is the owner-or-admin-or-HR read pattern shared by attendance
// records, timesheets, leave history, payslips and goals.
func CanReadOwned(s *session.Session, profileID uint) bool {
	return owner(s, profileID) || privileged(s)
}

// CanWriteOwned covers rows an employee edits for themselves (pending leave
// requests, own goal progress) and admin/HR override.
func CanWriteOwned(s *session.Session, profileID uint) bool {
	return owner(s, profileID) || privileged(s)
}

// CanCheckAttendance: the daily cycle is strictly the owner's. Admin and HR
// read records, but nobody checks in or out on another profile's behalf.
func CanCheckAttendance(s *session.Session, profileID uint) bool {
	return owner(s, profileID)
}

// CanDecideLeave: admin/HR only, and never on the decider's own request.
func CanDecideLeave(s *session.Session, requestOwner uint) bool {
	return privileged(s) && !owner(s, requestOwner)
}

// CanAssignTask / CanManagePayroll / CanManageTraining / CanManageUsers:
// management surfaces, admin/HR only.
func CanAssignTask(s *session.Session) bool { return privileged(s) }

func CanManagePayroll(s *session.Session) bool { return privileged(s) }

func CanManageTraining(s *session.Session) bool { return privileged(s) }

// CanManageUsers: privileged user creation and deactivation stays with admin.
func CanManageUsers(s *session.Session) bool {
	return s != nil && s.Role == model.RoleAdmin
}

// CanUpdateTaskStatus: the assignee moves their own task; admin/HR may too.
func CanUpdateTaskStatus(s *session.Session, assignee uint) bool {
	return owner(s, assignee) || privileged(s)
}
