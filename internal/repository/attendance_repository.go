package repository

import (
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/model"

	"gorm.io/gorm"
)

type AttendanceRepository interface {
	Create(record *model.AttendanceRecord) error
	GetByDate(profileID uint, date string) (*model.AttendanceRecord, error)
	GetByMonth(profileID uint, month string, year string) ([]model.AttendanceRecord, error)
	ListByDate(date string) ([]model.AttendanceRecord, error)
	ListByMonth(month string, year string) ([]model.AttendanceRecord, error)
	CountByDateAndStatus(date string, status string) (int64, error)
	CompleteCheckout(record *model.AttendanceRecord, sheet *model.Timesheet, entries []model.TimesheetEntry) error
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db}
}

func (r *attendanceRepository) Create(record *model.AttendanceRecord) error {
	return r.db.Create(record).Error
}

func (r *attendanceRepository) GetByDate(profileID uint, date string) (*model.AttendanceRecord, error) {
	var record model.AttendanceRecord
	err := r.db.Where("profile_id = ? AND work_date = ?", profileID, date).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *attendanceRepository) GetByMonth(profileID uint, month string, year string) ([]model.AttendanceRecord, error) {
	var records []model.AttendanceRecord
	err := r.db.Where("profile_id = ? AND work_date LIKE ?", profileID, year+"-"+month+"-%").
		Order("work_date asc").Find(&records).Error
	return records, err
}

func (r *attendanceRepository) ListByDate(date string) ([]model.AttendanceRecord, error) {
	var records []model.AttendanceRecord
	err := r.db.Preload("Profile").Where("work_date = ?", date).Find(&records).Error
	return records, err
}

func (r *attendanceRepository) ListByMonth(month string, year string) ([]model.AttendanceRecord, error) {
	var records []model.AttendanceRecord
	err := r.db.Preload("Profile").Where("work_date LIKE ?", year+"-"+month+"-%").
		Order("profile_id asc, work_date asc").Find(&records).Error
	return records, err
}

func (r *attendanceRepository) CountByDateAndStatus(date string, status string) (int64, error) {
	var count int64
	err := r.db.Model(&model.AttendanceRecord{}).
		Where("work_date = ? AND status = ?", date, status).Count(&count).Error
	return count, err
}

// CompleteCheckout persists the check-out in one transaction: the attendance
// update, the day's timesheet and its entries land together or not at all, so
// a partial failure can never leave the record closed without a timesheet.
func (r *attendanceRepository) CompleteCheckout(record *model.AttendanceRecord, sheet *model.Timesheet, entries []model.TimesheetEntry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(record).Error; err != nil {
			return err
		}
		sheet.AttendanceRecordID = record.ID
		if err := tx.Create(sheet).Error; err != nil {
			return err
		}
		for i := range entries {
			entries[i].TimesheetID = sheet.ID
		}
		return tx.Create(&entries).Error
	})
}
