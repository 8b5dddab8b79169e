package repository

import (
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PayrollRepository interface {
	UpsertStructure(structure *model.SalaryStructure) error
	GetStructure(profileID uint) (*model.SalaryStructure, error)
	GetAllStructures() ([]model.SalaryStructure, error)
	CreatePayslip(payslip *model.Payslip) error
	GetPayslipByID(id uint) (*model.Payslip, error)
	GetPayslips(month string, year string) ([]model.Payslip, error)
	GetPayslipsByProfileYear(profileID uint, year string) ([]model.Payslip, error)
	HasPayslip(profileID uint, month string, year string) (bool, error)
	MarkPaid(id uint) error
	SumNetPay(month string, year string) (float64, error)
}

type payrollRepository struct {
	db *gorm.DB
}

func NewPayrollRepository(db *gorm.DB) PayrollRepository {
	return &payrollRepository{db}
}

// UpsertStructure inserts or replaces the single salary structure per profile.
func (r *payrollRepository) UpsertStructure(structure *model.SalaryStructure) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "profile_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"basic", "hra", "allowances", "deductions", "updated_at"}),
	}).Create(structure).Error
}

func (r *payrollRepository) GetStructure(profileID uint) (*model.SalaryStructure, error) {
	var structure model.SalaryStructure
	err := r.db.Where("profile_id = ?", profileID).First(&structure).Error
	if err != nil {
		return nil, err
	}
	return &structure, nil
}

func (r *payrollRepository) GetAllStructures() ([]model.SalaryStructure, error) {
	var structures []model.SalaryStructure
	err := r.db.Preload("Profile").Find(&structures).Error
	return structures, err
}

func (r *payrollRepository) CreatePayslip(payslip *model.Payslip) error {
	return r.db.Create(payslip).Error
}

func (r *payrollRepository) GetPayslipByID(id uint) (*model.Payslip, error) {
	var payslip model.Payslip
	err := r.db.Preload("Profile").First(&payslip, id).Error
	if err != nil {
		return nil, err
	}
	return &payslip, nil
}

func (r *payrollRepository) GetPayslips(month string, year string) ([]model.Payslip, error) {
	var payslips []model.Payslip
	err := r.db.Preload("Profile").Where("month = ? AND year = ?", month, year).Find(&payslips).Error
	return payslips, err
}

func (r *payrollRepository) GetPayslipsByProfileYear(profileID uint, year string) ([]model.Payslip, error) {
	var payslips []model.Payslip
	err := r.db.Where("profile_id = ? AND year = ?", profileID, year).
		Order("month asc").Find(&payslips).Error
	return payslips, err
}

func (r *payrollRepository) HasPayslip(profileID uint, month string, year string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Payslip{}).
		Where("profile_id = ? AND month = ? AND year = ?", profileID, month, year).Count(&count).Error
	return count > 0, err
}

func (r *payrollRepository) MarkPaid(id uint) error {
	return r.db.Model(&model.Payslip{}).Where("id = ?", id).Update("status", model.PayslipPaid).Error
}

func (r *payrollRepository) SumNetPay(month string, year string) (float64, error) {
	var total float64
	err := r.db.Model(&model.Payslip{}).
		Where("month = ? AND year = ?", month, year).
		Select("COALESCE(SUM(net_pay), 0)").Scan(&total).Error
	return total, err
}
