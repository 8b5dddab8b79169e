package repository

import (
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/model"

	"gorm.io/gorm"
)

type TimesheetRepository interface {
	GetByDate(profileID uint, date string) (*model.Timesheet, error)
	GetByMonth(profileID uint, month string, year string) ([]model.Timesheet, error)
}

type timesheetRepository struct {
	db *gorm.DB
}

func NewTimesheetRepository(db *gorm.DB) TimesheetRepository {
	return &timesheetRepository{db}
}

func (r *timesheetRepository) GetByDate(profileID uint, date string) (*model.Timesheet, error) {
	var sheet model.Timesheet
	err := r.db.Preload("Entries", func(db *gorm.DB) *gorm.DB {
		return db.Order("slot_no asc")
	}).Where("profile_id = ? AND work_date = ?", profileID, date).First(&sheet).Error
	if err != nil {
		return nil, err
	}
	return &sheet, nil
}

func (r *timesheetRepository) GetByMonth(profileID uint, month string, year string) ([]model.Timesheet, error) {
	var sheets []model.Timesheet
	err := r.db.Preload("Entries").
		Where("profile_id = ? AND work_date LIKE ?", profileID, year+"-"+month+"-%").
		Order("work_date asc").Find(&sheets).Error
	return sheets, err
}
