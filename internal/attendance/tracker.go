// Package attendance implements the daily check-in/check-out cycle: one
// attendance record per profile per calendar day, a timesheet captured at
// check-out, and a per-day state cache that rolls over at local midnight.
package attendance

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/janarthanan-HTGE/HRMS-Dev/internal/model"
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/repository"

	"gorm.io/gorm"
)

// Cycle states for a profile's day.
const (
	StateNotCheckedIn   = "NOT_CHECKED_IN"
	StateCheckedIn      = "CHECKED_IN"
	StateCompletedToday = "COMPLETED_TODAY"
)

var (
	ErrAlreadyCheckedIn = errors.New("already checked in today")
	ErrAlreadyCompleted = errors.New("attendance already completed today")
	ErrNotCheckedIn     = errors.New("not checked in today")
	ErrNoCompleteEntry  = errors.New("at least one entry needs both a from and a to time")
	ErrTooManyEntries   = errors.New("a timesheet holds at most 10 entries")
)

// EntryInput is one submitted capture slot. Slots missing either time are
// skipped, not persisted.
type EntryInput struct {
	FromTime    string `json:"from_time"` // HH:MM
	ToTime      string `json:"to_time"`   // HH:MM
	Description string `json:"description"`
}

// StatusView is the reconciled cycle state handed to the client: the stored
// record plus the live elapsed hours while checked in.
type StatusView struct {
	State        string                  `json:"state"`
	Record       *model.AttendanceRecord `json:"record,omitempty"`
	ElapsedHours float64                 `json:"elapsed_hours"`
}

// CheckoutForm is the capture template returned before check-out; it mutates
// nothing.
type CheckoutForm struct {
	CheckInTime  time.Time `json:"check_in_time"`
	ElapsedHours float64   `json:"elapsed_hours"`
	MaxSlots     int       `json:"max_slots"`
}

// Tracker mediates the daily cycle per profile. The in-memory state map
// short-circuits repeat mutation attempts for the cached day: a profile known
// to be CHECKED_IN or COMPLETED_TODAY is refused a second check-in without a
// round trip. The cache only ever denies, never grants — Status re-reads the
// backing record on every call and refreshes the entry, so a change made from
// another session converges on the next query (the focus-regain resync of the
// original client). The map is cleared at local midnight.
type Tracker struct {
	records repository.AttendanceRepository
	loc     *time.Location
	now     func() time.Time

	mu     sync.Mutex
	day    string
	states map[uint]string
}

func NewTracker(records repository.AttendanceRepository, loc *time.Location) *Tracker {
	if loc == nil {
		loc = time.Local
	}
	return &Tracker{
		records: records,
		loc:     loc,
		now:     time.Now,
		states:  make(map[uint]string),
	}
}

func (t *Tracker) today() string {
	return t.now().In(t.loc).Format("2006-01-02")
}

// ResetDay clears the cached day states. Wired to the midnight scheduler: a
// COMPLETED_TODAY profile is no longer refused at check-in once the cache is
// gone, and the next Status query finds no record for the new date.
func (t *Tracker) ResetDay(time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.day = ""
	t.states = make(map[uint]string)
}

func (t *Tracker) cacheState(profileID uint, state string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	today := t.today()
	if t.day != today {
		t.day = today
		t.states = make(map[uint]string)
	}
	t.states[profileID] = state
}

// cachedState returns the profile's state when the cache still covers today.
func (t *Tracker) cachedState(profileID uint) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.day != t.today() {
		return "", false
	}
	state, ok := t.states[profileID]
	return state, ok
}

// Status re-queries today's record and derives the cycle state from it. The
// elapsed figure is live (now − check-in) while checked in and the stored
// total once completed.
func (t *Tracker) Status(profileID uint) (*StatusView, error) {
	record, err := t.records.GetByDate(profileID, t.today())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			t.cacheState(profileID, StateNotCheckedIn)
			return &StatusView{State: StateNotCheckedIn}, nil
		}
		return nil, err
	}

	view := &StatusView{Record: record}
	if record.Status == model.AttendanceCompleted {
		view.State = StateCompletedToday
		view.ElapsedHours = record.TotalHours
	} else {
		view.State = StateCheckedIn
		view.ElapsedHours = t.now().Sub(record.CheckInTime).Hours()
	}
	t.cacheState(profileID, view.State)
	return view, nil
}

// CheckIn creates today's record with the current timestamp and the caller's
// network address. An existing record for today — open or completed — rejects
// the attempt with no state change. A duplicate racing in from another
// session loses against the unique index on (profile_id, work_date) and is
// surfaced as the same conflict.
func (t *Tracker) CheckIn(profileID uint, address string) (*model.AttendanceRecord, error) {
	now := t.now().In(t.loc)

	// A cached CHECKED_IN or COMPLETED_TODAY refuses the attempt without a
	// round trip. NOT_CHECKED_IN never grants; the record is re-read below.
	switch state, _ := t.cachedState(profileID); state {
	case StateCheckedIn:
		return nil, ErrAlreadyCheckedIn
	case StateCompletedToday:
		return nil, ErrAlreadyCompleted
	}

	existing, err := t.records.GetByDate(profileID, t.today())
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		if existing.Status == model.AttendanceCompleted {
			return nil, ErrAlreadyCompleted
		}
		return nil, ErrAlreadyCheckedIn
	}

	record := &model.AttendanceRecord{
		ProfileID:      profileID,
		WorkDate:       now.Format("2006-01-02"),
		CheckInTime:    now,
		CheckInAddress: address,
		Status:         model.AttendanceCheckedIn,
	}
	if err := t.records.Create(record); err != nil {
		if isDuplicateErr(err) {
			return nil, ErrAlreadyCheckedIn
		}
		return nil, err
	}

	t.cacheState(profileID, StateCheckedIn)
	return record, nil
}

// Form returns the capture template for check-out without mutating anything.
func (t *Tracker) Form(profileID uint) (*CheckoutForm, error) {
	if state, _ := t.cachedState(profileID); state == StateCompletedToday {
		return nil, ErrAlreadyCompleted
	}

	record, err := t.records.GetByDate(profileID, t.today())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotCheckedIn
		}
		return nil, err
	}
	if record.Status == model.AttendanceCompleted {
		return nil, ErrAlreadyCompleted
	}
	return &CheckoutForm{
		CheckInTime:  record.CheckInTime,
		ElapsedHours: t.now().Sub(record.CheckInTime).Hours(),
		MaxSlots:     model.MaxTimesheetSlots,
	}, nil
}

// SubmitCheckOut closes today's record: it stamps the check-out time and
// address, stores now − check-in as total hours, and persists the timesheet
// with the fully-filled entries. All writes run in one transaction, so a
// partial failure rolls back and the profile stays CHECKED_IN.
func (t *Tracker) SubmitCheckOut(profileID uint, address string, entries []EntryInput) (*model.AttendanceRecord, error) {
	if len(entries) > model.MaxTimesheetSlots {
		return nil, ErrTooManyEntries
	}

	// Validation before any write: at least one slot with both times.
	rows := buildEntries(entries)
	if len(rows) == 0 {
		return nil, ErrNoCompleteEntry
	}

	if state, _ := t.cachedState(profileID); state == StateCompletedToday {
		return nil, ErrAlreadyCompleted
	}

	record, err := t.records.GetByDate(profileID, t.today())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotCheckedIn
		}
		return nil, err
	}
	if record.Status == model.AttendanceCompleted {
		return nil, ErrAlreadyCompleted
	}

	now := t.now().In(t.loc)
	record.CheckOutTime = &now
	record.CheckOutAddress = address
	record.TotalHours = now.Sub(record.CheckInTime).Hours()
	record.Status = model.AttendanceCompleted
	record.TimesheetDone = true

	sheet := &model.Timesheet{ProfileID: profileID, WorkDate: record.WorkDate}
	if err := t.records.CompleteCheckout(record, sheet, rows); err != nil {
		return nil, err
	}

	t.cacheState(profileID, StateCompletedToday)
	return record, nil
}

// buildEntries keeps only the slots with both times filled, numbering them in
// submitted order and computing each slot's hours.
func buildEntries(entries []EntryInput) []model.TimesheetEntry {
	var rows []model.TimesheetEntry
	for _, e := range entries {
		if e.FromTime == "" || e.ToTime == "" {
			continue
		}
		hours, ok := entryHours(e.FromTime, e.ToTime)
		if !ok {
			continue
		}
		rows = append(rows, model.TimesheetEntry{
			SlotNo:      len(rows) + 1,
			FromTime:    e.FromTime,
			ToTime:      e.ToTime,
			Description: e.Description,
			Hours:       hours,
		})
	}
	return rows
}

// entryHours computes to − from in fractional hours. A to at or before from
// means the range crosses midnight, so a day is added; the result is clamped
// at zero.
func entryHours(from, to string) (float64, bool) {
	start, err := time.Parse("15:04", from)
	if err != nil {
		return 0, false
	}
	end, err := time.Parse("15:04", to)
	if err != nil {
		return 0, false
	}

	hours := end.Sub(start).Hours()
	if end.Sub(start) <= 0 {
		hours += 24
	}
	if hours < 0 {
		hours = 0
	}
	return hours, true
}

// isDuplicateErr matches the driver-specific unique violation messages
// (postgres, mysql and sqlite spell them differently).
func isDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
