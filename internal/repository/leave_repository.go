package repository

import (
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/model"

	"gorm.io/gorm"
)

type LeaveRepository interface {
	Create(leave *model.LeaveRequest) error
	GetByID(id uint) (*model.LeaveRequest, error)
	Update(leave *model.LeaveRequest) error
	Delete(id uint) error
	GetByProfile(profileID uint) ([]model.LeaveRequest, error)
	GetPending() ([]model.LeaveRequest, error)
	CountPending() (int64, error)
	CountByProfileAndStatus(profileID uint, status string) (int64, error)
	ApprovedUnpaidDays(profileID uint, month string, year string) (int, error)
}

type leaveRepository struct {
	db *gorm.DB
}

func NewLeaveRepository(db *gorm.DB) LeaveRepository {
	return &leaveRepository{db}
}

func (r *leaveRepository) Create(leave *model.LeaveRequest) error {
	return r.db.Create(leave).Error
}

func (r *leaveRepository) GetByID(id uint) (*model.LeaveRequest, error) {
	var leave model.LeaveRequest
	err := r.db.Preload("Profile").First(&leave, id).Error
	if err != nil {
		return nil, err
	}
	return &leave, nil
}

func (r *leaveRepository) Update(leave *model.LeaveRequest) error {
	return r.db.Save(leave).Error
}

func (r *leaveRepository) Delete(id uint) error {
	return r.db.Delete(&model.LeaveRequest{}, id).Error
}

func (r *leaveRepository) GetByProfile(profileID uint) ([]model.LeaveRequest, error) {
	var leaves []model.LeaveRequest
	err := r.db.Where("profile_id = ?", profileID).Order("created_at desc").Find(&leaves).Error
	return leaves, err
}

func (r *leaveRepository) GetPending() ([]model.LeaveRequest, error) {
	var leaves []model.LeaveRequest
	err := r.db.Preload("Profile").Where("status = ?", model.LeavePending).
		Order("created_at asc").Find(&leaves).Error
	return leaves, err
}

func (r *leaveRepository) CountPending() (int64, error) {
	var count int64
	err := r.db.Model(&model.LeaveRequest{}).Where("status = ?", model.LeavePending).Count(&count).Error
	return count, err
}

func (r *leaveRepository) CountByProfileAndStatus(profileID uint, status string) (int64, error) {
	var count int64
	err := r.db.Model(&model.LeaveRequest{}).
		Where("profile_id = ? AND status = ?", profileID, status).Count(&count).Error
	return count, err
}

// ApprovedUnpaidDays sums the approved UNPAID leave days starting inside the
// given month; payroll generation charges them as loss-of-pay.
func (r *leaveRepository) ApprovedUnpaidDays(profileID uint, month string, year string) (int, error) {
	var total int64
	err := r.db.Model(&model.LeaveRequest{}).
		Where("profile_id = ? AND leave_type = ? AND status = ? AND from_date LIKE ?",
			profileID, model.LeaveUnpaid, model.LeaveApproved, year+"-"+month+"-%").
		Select("COALESCE(SUM(total_days), 0)").Scan(&total).Error
	return int(total), err
}
