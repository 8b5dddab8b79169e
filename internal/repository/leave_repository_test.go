package repository

import (
	"testing"

	"github.com/janarthanan-HTGE/HRMS-Dev/internal/model"
)

func seedLeave(t *testing.T, repo LeaveRepository, profileID uint, leaveType, status, fromDate string, days int) {
	t.Helper()
	err := repo.Create(&model.LeaveRequest{
		ProfileID: profileID,
		LeaveType: leaveType,
		FromDate:  fromDate,
		ToDate:    fromDate,
		TotalDays: days,
		Status:    status,
	})
	if err != nil {
		t.Fatalf("seed leave: %v", err)
	}
}

func TestApprovedUnpaidDays_CountsOnlyApprovedUnpaidInMonth(t *testing.T) {
	db := openTestDB(t)
	repo := NewLeaveRepository(db)

	seedLeave(t, repo, 1, model.LeaveUnpaid, model.LeaveApproved, "2026-08-05", 2)
	seedLeave(t, repo, 1, model.LeaveUnpaid, model.LeaveApproved, "2026-08-20", 1)
	seedLeave(t, repo, 1, model.LeaveUnpaid, model.LeavePending, "2026-08-25", 3)  // not approved
	seedLeave(t, repo, 1, model.LeaveCasual, model.LeaveApproved, "2026-08-11", 5) // paid type
	seedLeave(t, repo, 1, model.LeaveUnpaid, model.LeaveApproved, "2026-07-30", 4) // other month
	seedLeave(t, repo, 2, model.LeaveUnpaid, model.LeaveApproved, "2026-08-12", 9) // other profile

	days, err := repo.ApprovedUnpaidDays(1, "08", "2026")
	if err != nil {
		t.Fatalf("ApprovedUnpaidDays: %v", err)
	}
	if days != 3 {
		t.Fatalf("days = %d, want 3", days)
	}
}

func TestLeavePendingQueue(t *testing.T) {
	db := openTestDB(t)
	repo := NewLeaveRepository(db)

	seedLeave(t, repo, 1, model.LeaveCasual, model.LeavePending, "2026-08-05", 1)
	seedLeave(t, repo, 2, model.LeaveSick, model.LeavePending, "2026-08-06", 2)
	seedLeave(t, repo, 3, model.LeaveCasual, model.LeaveApproved, "2026-08-07", 1)

	pending, err := repo.GetPending()
	if err != nil {
		t.Fatalf("GetPending: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("pending = %d, want 2", len(pending))
	}

	count, err := repo.CountPending()
	if err != nil {
		t.Fatalf("CountPending: %v", err)
	}
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}
}
