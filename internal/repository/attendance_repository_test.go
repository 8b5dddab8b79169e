package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/janarthanan-HTGE/HRMS-Dev/config"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newRecord(profileID uint, date string) *model.AttendanceRecord {
	return &model.AttendanceRecord{
		ProfileID:   profileID,
		WorkDate:    date,
		CheckInTime: time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC),
		Status:      model.AttendanceCheckedIn,
	}
}

// The unique index on (profile_id, work_date) is the final guard against two
// sessions checking in concurrently.
func TestAttendanceUniquePerProfileAndDate(t *testing.T) {
	db := openTestDB(t)
	repo := NewAttendanceRepository(db)

	if err := repo.Create(newRecord(1, "2026-08-26")); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if err := repo.Create(newRecord(1, "2026-08-26")); err == nil {
		t.Fatal("duplicate insert must fail")
	}

	// A different day and a different profile are both fine.
	if err := repo.Create(newRecord(1, "2026-08-27")); err != nil {
		t.Fatalf("next day insert: %v", err)
	}
	if err := repo.Create(newRecord(2, "2026-08-26")); err != nil {
		t.Fatalf("other profile insert: %v", err)
	}
}

func TestCompleteCheckout_PersistsAllOrNothing(t *testing.T) {
	db := openTestDB(t)
	repo := NewAttendanceRepository(db)

	record := newRecord(1, "2026-08-26")
	if err := repo.Create(record); err != nil {
		t.Fatalf("insert: %v", err)
	}

	out := record.CheckInTime.Add(8 * time.Hour)
	record.CheckOutTime = &out
	record.TotalHours = 8
	record.Status = model.AttendanceCompleted
	record.TimesheetDone = true

	sheet := &model.Timesheet{ProfileID: 1, WorkDate: "2026-08-26"}
	entries := []model.TimesheetEntry{
		{SlotNo: 1, FromTime: "09:00", ToTime: "13:00", Hours: 4},
		{SlotNo: 2, FromTime: "14:00", ToTime: "18:00", Hours: 4},
	}
	if err := repo.CompleteCheckout(record, sheet, entries); err != nil {
		t.Fatalf("CompleteCheckout: %v", err)
	}

	got, err := repo.GetByDate(1, "2026-08-26")
	if err != nil {
		t.Fatalf("GetByDate: %v", err)
	}
	if got.Status != model.AttendanceCompleted {
		t.Fatalf("Status = %s", got.Status)
	}

	var persisted []model.TimesheetEntry
	db.Where("timesheet_id = ?", sheet.ID).Order("slot_no asc").Find(&persisted)
	if len(persisted) != 2 {
		t.Fatalf("entries = %d, want 2", len(persisted))
	}
	if sheet.AttendanceRecordID != record.ID {
		t.Fatalf("timesheet not linked to attendance record")
	}
}

// A second timesheet for the same (profile, date) violates its unique index,
// and the transaction must roll the attendance update back with it.
func TestCompleteCheckout_RollsBackOnFailure(t *testing.T) {
	db := openTestDB(t)
	repo := NewAttendanceRepository(db)

	if err := db.Create(&model.Timesheet{ProfileID: 1, WorkDate: "2026-08-26"}).Error; err != nil {
		t.Fatalf("seed conflicting timesheet: %v", err)
	}

	record := newRecord(1, "2026-08-26")
	if err := repo.Create(record); err != nil {
		t.Fatalf("insert: %v", err)
	}

	out := record.CheckInTime.Add(8 * time.Hour)
	record.CheckOutTime = &out
	record.Status = model.AttendanceCompleted

	err := repo.CompleteCheckout(record, &model.Timesheet{ProfileID: 1, WorkDate: "2026-08-26"},
		[]model.TimesheetEntry{{SlotNo: 1, FromTime: "09:00", ToTime: "17:00", Hours: 8}})
	if err == nil {
		t.Fatal("expected the timesheet insert to fail")
	}

	got, getErr := repo.GetByDate(1, "2026-08-26")
	if getErr != nil {
		t.Fatalf("GetByDate: %v", getErr)
	}
	if got.Status != model.AttendanceCheckedIn {
		t.Fatalf("Status = %s, want %s after rollback", got.Status, model.AttendanceCheckedIn)
	}
}

func TestGetByMonth(t *testing.T) {
	db := openTestDB(t)
	repo := NewAttendanceRepository(db)

	for _, date := range []string{"2026-08-03", "2026-08-10", "2026-09-01"} {
		if err := repo.Create(newRecord(1, date)); err != nil {
			t.Fatalf("insert %s: %v", date, err)
		}
	}

	records, err := repo.GetByMonth(1, "08", "2026")
	if err != nil {
		t.Fatalf("GetByMonth: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	if records[0].WorkDate != "2026-08-03" {
		t.Fatalf("order wrong, first = %s", records[0].WorkDate)
	}
}
