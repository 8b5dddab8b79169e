package attendance

import (
	"fmt"
	"testing"
	"time"

	"github.com/janarthanan-HTGE/HRMS-Dev/config"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/model"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/repository"

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

// newTestTracker pins the clock to a fixed instant in UTC.
func newTestTracker(t *testing.T, db *gorm.DB, at time.Time) *Tracker {
	t.Helper()
	tr := NewTracker(repository.NewAttendanceRepository(db), time.UTC)
	tr.now = func() time.Time { return at }
	return tr
}

func setClock(tr *Tracker, at time.Time) {
	tr.now = func() time.Time { return at }
}

var checkInAt = time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC)

func TestCheckIn_CreatesTodayRecord(t *testing.T) {
	db := openTestDB(t)
	tr := newTestTracker(t, db, checkInAt)

	record, err := tr.CheckIn(1, "10.0.0.5")
	if err != nil {
		t.Fatalf("CheckIn: %v", err)
	}
	if record.WorkDate != "2026-08-26" {
		t.Fatalf("WorkDate = %s, want 2026-08-26", record.WorkDate)
	}
	if record.Status != model.AttendanceCheckedIn {
		t.Fatalf("Status = %s, want %s", record.Status, model.AttendanceCheckedIn)
	}
	if record.CheckInAddress != "10.0.0.5" {
		t.Fatalf("CheckInAddress = %s", record.CheckInAddress)
	}

	view, err := tr.Status(1)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if view.State != StateCheckedIn {
		t.Fatalf("State = %s, want %s", view.State, StateCheckedIn)
	}
}

func TestCheckIn_SecondAttemptRejected(t *testing.T) {
	db := openTestDB(t)
	tr := newTestTracker(t, db, checkInAt)

	if _, err := tr.CheckIn(1, "10.0.0.5"); err != nil {
		t.Fatalf("first CheckIn: %v", err)
	}
	if _, err := tr.CheckIn(1, "10.0.0.6"); err != ErrAlreadyCheckedIn {
		t.Fatalf("second CheckIn err = %v, want ErrAlreadyCheckedIn", err)
	}

	// State is unchanged by the failed attempt.
	view, _ := tr.Status(1)
	if view.State != StateCheckedIn {
		t.Fatalf("State = %s, want %s", view.State, StateCheckedIn)
	}
}

func TestCheckIn_RowFromAnotherSessionRejected(t *testing.T) {
	db := openTestDB(t)
	tr := newTestTracker(t, db, checkInAt)

	// Another session already inserted today's row; the tracker has never
	// seen this profile but must still refuse.
	record := model.AttendanceRecord{
		ProfileID:   1,
		WorkDate:    "2026-08-26",
		CheckInTime: checkInAt,
		Status:      model.AttendanceCheckedIn,
	}
	if err := db.Create(&record).Error; err != nil {
		t.Fatalf("seed record: %v", err)
	}

	if _, err := tr.CheckIn(1, "10.0.0.5"); err != ErrAlreadyCheckedIn {
		t.Fatalf("err = %v, want ErrAlreadyCheckedIn", err)
	}
}

func TestSubmitCheckOut_RejectsWithoutCompleteEntry(t *testing.T) {
	db := openTestDB(t)
	tr := newTestTracker(t, db, checkInAt)

	if _, err := tr.CheckIn(1, "10.0.0.5"); err != nil {
		t.Fatalf("CheckIn: %v", err)
	}

	entries := []EntryInput{
		{FromTime: "09:00", Description: "missing to"},
		{ToTime: "12:00", Description: "missing from"},
		{Description: "empty"},
	}
	if _, err := tr.SubmitCheckOut(1, "10.0.0.5", entries); err != ErrNoCompleteEntry {
		t.Fatalf("err = %v, want ErrNoCompleteEntry", err)
	}

	// Still checked in, nothing written.
	view, _ := tr.Status(1)
	if view.State != StateCheckedIn {
		t.Fatalf("State = %s, want %s", view.State, StateCheckedIn)
	}
	var sheets int64
	db.Model(&model.Timesheet{}).Count(&sheets)
	if sheets != 0 {
		t.Fatalf("timesheets = %d, want 0", sheets)
	}
}

func TestSubmitCheckOut_ComputesTotalHours(t *testing.T) {
	db := openTestDB(t)
	tr := newTestTracker(t, db, checkInAt)

	if _, err := tr.CheckIn(1, "10.0.0.5"); err != nil {
		t.Fatalf("CheckIn: %v", err)
	}

	// Check out at 17:30 the same day.
	setClock(tr, time.Date(2026, 8, 26, 17, 30, 0, 0, time.UTC))
	record, err := tr.SubmitCheckOut(1, "10.0.0.9", []EntryInput{
		{FromTime: "09:00", ToTime: "13:00", Description: "feature work"},
		{FromTime: "14:00", ToTime: "17:30", Description: "reviews"},
		{FromTime: "18:00", Description: "half-filled, skipped"},
	})
	if err != nil {
		t.Fatalf("SubmitCheckOut: %v", err)
	}

	if got := record.TotalHours; got < 8.49 || got > 8.51 {
		t.Fatalf("TotalHours = %v, want ~8.5", got)
	}
	if record.Status != model.AttendanceCompleted {
		t.Fatalf("Status = %s, want %s", record.Status, model.AttendanceCompleted)
	}
	if record.CheckOutAddress != "10.0.0.9" {
		t.Fatalf("CheckOutAddress = %s", record.CheckOutAddress)
	}

	// Only the two complete slots are persisted, in order.
	var entries []model.TimesheetEntry
	db.Order("slot_no asc").Find(&entries)
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].Hours != 4.0 {
		t.Fatalf("slot 1 hours = %v, want 4.0", entries[0].Hours)
	}
	if entries[1].Hours != 3.5 {
		t.Fatalf("slot 2 hours = %v, want 3.5", entries[1].Hours)
	}
}

func TestSubmitCheckOut_BlocksFurtherCheckIn(t *testing.T) {
	db := openTestDB(t)
	tr := newTestTracker(t, db, checkInAt)

	if _, err := tr.CheckIn(1, "a"); err != nil {
		t.Fatalf("CheckIn: %v", err)
	}
	setClock(tr, checkInAt.Add(8*time.Hour))
	if _, err := tr.SubmitCheckOut(1, "a", []EntryInput{{FromTime: "09:00", ToTime: "17:00"}}); err != nil {
		t.Fatalf("SubmitCheckOut: %v", err)
	}

	view, _ := tr.Status(1)
	if view.State != StateCompletedToday {
		t.Fatalf("State = %s, want %s", view.State, StateCompletedToday)
	}
	if _, err := tr.CheckIn(1, "a"); err != ErrAlreadyCompleted {
		t.Fatalf("CheckIn after completion err = %v, want ErrAlreadyCompleted", err)
	}
	if _, err := tr.SubmitCheckOut(1, "a", []EntryInput{{FromTime: "09:00", ToTime: "17:00"}}); err != ErrAlreadyCompleted {
		t.Fatalf("second checkout err = %v, want ErrAlreadyCompleted", err)
	}
}

func TestSubmitCheckOut_TooManyEntries(t *testing.T) {
	db := openTestDB(t)
	tr := newTestTracker(t, db, checkInAt)

	entries := make([]EntryInput, model.MaxTimesheetSlots+1)
	for i := range entries {
		entries[i] = EntryInput{FromTime: "09:00", ToTime: "10:00"}
	}
	if _, err := tr.SubmitCheckOut(1, "a", entries); err != ErrTooManyEntries {
		t.Fatalf("err = %v, want ErrTooManyEntries", err)
	}
}

func TestMidnightReset_NewDayStartsNotCheckedIn(t *testing.T) {
	db := openTestDB(t)
	tr := newTestTracker(t, db, checkInAt)

	if _, err := tr.CheckIn(1, "a"); err != nil {
		t.Fatalf("CheckIn: %v", err)
	}
	setClock(tr, checkInAt.Add(8*time.Hour))
	if _, err := tr.SubmitCheckOut(1, "a", []EntryInput{{FromTime: "09:00", ToTime: "17:00"}}); err != nil {
		t.Fatalf("SubmitCheckOut: %v", err)
	}

	// The scheduler fires at local midnight; the clock is now the next day.
	nextDay := time.Date(2026, 8, 27, 0, 0, 1, 0, time.UTC)
	setClock(tr, nextDay)
	tr.ResetDay(nextDay)

	view, err := tr.Status(1)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if view.State != StateNotCheckedIn {
		t.Fatalf("State = %s, want %s after rollover", view.State, StateNotCheckedIn)
	}
	if _, err := tr.CheckIn(1, "a"); err != nil {
		t.Fatalf("CheckIn on the new day: %v", err)
	}
}

// A completed day is refused at check-in from the cache alone; the backing
// rows are gone, so only ResetDay can lift the refusal.
func TestResetDay_ClearsDenyingCache(t *testing.T) {
	db := openTestDB(t)
	tr := newTestTracker(t, db, checkInAt)

	if _, err := tr.CheckIn(1, "a"); err != nil {
		t.Fatalf("CheckIn: %v", err)
	}
	setClock(tr, checkInAt.Add(8*time.Hour))
	if _, err := tr.SubmitCheckOut(1, "a", []EntryInput{{FromTime: "09:00", ToTime: "17:00"}}); err != nil {
		t.Fatalf("SubmitCheckOut: %v", err)
	}

	db.Unscoped().Where("profile_id = ?", 1).Delete(&model.AttendanceRecord{})
	db.Unscoped().Where("profile_id = ?", 1).Delete(&model.Timesheet{})

	if _, err := tr.CheckIn(1, "a"); err != ErrAlreadyCompleted {
		t.Fatalf("CheckIn with cached completion err = %v, want ErrAlreadyCompleted", err)
	}
	if _, err := tr.Form(1); err != ErrAlreadyCompleted {
		t.Fatalf("Form with cached completion err = %v, want ErrAlreadyCompleted", err)
	}

	tr.ResetDay(checkInAt)
	if _, err := tr.CheckIn(1, "b"); err != nil {
		t.Fatalf("CheckIn after ResetDay: %v", err)
	}
}

func TestStatus_ResyncsExternalCheckout(t *testing.T) {
	db := openTestDB(t)
	tr := newTestTracker(t, db, checkInAt)

	record, err := tr.CheckIn(1, "a")
	if err != nil {
		t.Fatalf("CheckIn: %v", err)
	}

	// Another session completes the day directly in the store.
	out := checkInAt.Add(7 * time.Hour)
	db.Model(&model.AttendanceRecord{}).Where("id = ?", record.ID).Updates(map[string]interface{}{
		"check_out_time": out,
		"total_hours":    7.0,
		"status":         model.AttendanceCompleted,
	})

	view, err := tr.Status(1)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if view.State != StateCompletedToday {
		t.Fatalf("State = %s, want %s after external checkout", view.State, StateCompletedToday)
	}
	if view.ElapsedHours != 7.0 {
		t.Fatalf("ElapsedHours = %v, want stored 7.0", view.ElapsedHours)
	}
}

func TestStatus_LiveElapsedWhileCheckedIn(t *testing.T) {
	db := openTestDB(t)
	tr := newTestTracker(t, db, checkInAt)

	if _, err := tr.CheckIn(1, "a"); err != nil {
		t.Fatalf("CheckIn: %v", err)
	}
	setClock(tr, checkInAt.Add(90*time.Minute))

	view, _ := tr.Status(1)
	if view.ElapsedHours < 1.49 || view.ElapsedHours > 1.51 {
		t.Fatalf("ElapsedHours = %v, want ~1.5", view.ElapsedHours)
	}
}

func TestEntryHours(t *testing.T) {
	cases := []struct {
		from, to string
		want     float64
		ok       bool
	}{
		{"09:00", "17:30", 8.5, true},
		{"22:00", "02:00", 4.0, true}, // crosses midnight
		{"13:15", "13:45", 0.5, true},
		{"bad", "17:00", 0, false},
		{"09:00", "", 0, false},
	}
	for _, tc := range cases {
		got, ok := entryHours(tc.from, tc.to)
		if ok != tc.ok {
			t.Fatalf("entryHours(%q, %q) ok = %v, want %v", tc.from, tc.to, ok, tc.ok)
		}
		if ok && (got < tc.want-0.001 || got > tc.want+0.001) {
			t.Fatalf("entryHours(%q, %q) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}
