package authz

import (
	"testing"

	"github.com/janarthanan-HTGE/HRMS-Dev/internal/model"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/session"
)

func sess(role string, profileID uint) *session.Session {
	return &session.Session{ID: "t", ProfileID: profileID, Role: role}
}

func TestCanReadOwned_OwnerOrPrivileged(t *testing.T) {
	cases := []struct {
		name    string
		session *session.Session
		owner   uint
		want    bool
	}{
		{"owner reads own", sess(model.RoleEmployee, 4), 4, true},
		{"employee blocked from others", sess(model.RoleEmployee, 4), 5, false},
		{"hr reads anyone", sess(model.RoleHR, 9), 5, true},
		{"admin reads anyone", sess(model.RoleAdmin, 9), 5, true},
		{"nil session blocked", nil, 5, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanReadOwned(tc.session, tc.owner); got != tc.want {
				t.Fatalf("CanReadOwned = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCanCheckAttendance_OnlyOwner(t *testing.T) {
	if !CanCheckAttendance(sess(model.RoleEmployee, 4), 4) {
		t.Fatal("owner must be able to run their own cycle")
	}
	if CanCheckAttendance(sess(model.RoleAdmin, 9), 4) {
		t.Fatal("admin must not check in for someone else")
	}
}

func TestCanDecideLeave_PrivilegedButNeverOwnRequest(t *testing.T) {
	if !CanDecideLeave(sess(model.RoleHR, 2), 7) {
		t.Fatal("hr should decide employee requests")
	}
	if CanDecideLeave(sess(model.RoleHR, 2), 2) {
		t.Fatal("deciders must not approve their own request")
	}
	if CanDecideLeave(sess(model.RoleEmployee, 3), 7) {
		t.Fatal("employees must not decide leave")
	}
}

func TestCanManageUsers_AdminOnly(t *testing.T) {
	if !CanManageUsers(sess(model.RoleAdmin, 1)) {
		t.Fatal("admin should manage users")
	}
	if CanManageUsers(sess(model.RoleHR, 2)) {
		t.Fatal("hr must not manage users")
	}
	if CanManageUsers(sess(model.RoleEmployee, 3)) {
		t.Fatal("employee must not manage users")
	}
}

func TestCanUpdateTaskStatus(t *testing.T) {
	if !CanUpdateTaskStatus(sess(model.RoleEmployee, 4), 4) {
		t.Fatal("assignee should update own task")
	}
	if CanUpdateTaskStatus(sess(model.RoleEmployee, 4), 5) {
		t.Fatal("other employees must not update the task")
	}
	if !CanUpdateTaskStatus(sess(model.RoleHR, 9), 5) {
		t.Fatal("hr should update any task")
	}
}
