package repository

import (
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/model"

	"gorm.io/gorm"
)

// GoalSummary is the admin aggregate over the goal table.
type GoalSummary struct {
	Active          int64   `json:"active"`
	Completed       int64   `json:"completed"`
	Abandoned       int64   `json:"abandoned"`
	AverageProgress float64 `json:"average_progress"`
}

type GoalRepository interface {
	Create(goal *model.Goal) error
	GetByID(id uint) (*model.Goal, error)
	Update(goal *model.Goal) error
	Delete(id uint) error
	GetByProfile(profileID uint) ([]model.Goal, error)
	GetAll() ([]model.Goal, error)
	AddUpdate(update *model.GoalUpdate) error
	AverageProgress(profileID uint) (float64, error)
	GetSummary() (*GoalSummary, error)
}

type goalRepository struct {
	db *gorm.DB
}

func NewGoalRepository(db *gorm.DB) GoalRepository {
	return &goalRepository{db}
}

func (r *goalRepository) Create(goal *model.Goal) error {
	return r.db.Create(goal).Error
}

func (r *goalRepository) GetByID(id uint) (*model.Goal, error) {
	var goal model.Goal
	err := r.db.Preload("Updates").First(&goal, id).Error
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *goalRepository) Update(goal *model.Goal) error {
	return r.db.Save(goal).Error
}

func (r *goalRepository) Delete(id uint) error {
	return r.db.Delete(&model.Goal{}, id).Error
}

func (r *goalRepository) GetByProfile(profileID uint) ([]model.Goal, error) {
	var goals []model.Goal
	err := r.db.Where("profile_id = ?", profileID).Order("target_date asc").Find(&goals).Error
	return goals, err
}

func (r *goalRepository) GetAll() ([]model.Goal, error) {
	var goals []model.Goal
	err := r.db.Preload("Profile").Order("target_date asc").Find(&goals).Error
	return goals, err
}

func (r *goalRepository) AddUpdate(update *model.GoalUpdate) error {
	return r.db.Create(update).Error
}

// AverageProgress over a profile's active goals; 0 when none exist.
func (r *goalRepository) AverageProgress(profileID uint) (float64, error) {
	var avg float64
	err := r.db.Model(&model.Goal{}).
		Where("profile_id = ? AND status = ?", profileID, model.GoalActive).
		Select("COALESCE(AVG(progress), 0)").Scan(&avg).Error
	return avg, err
}

func (r *goalRepository) GetSummary() (*GoalSummary, error) {
	var summary GoalSummary
	err := r.db.Model(&model.Goal{}).
		Select(`COUNT(CASE WHEN status = 'ACTIVE' THEN 1 END) as active,
			COUNT(CASE WHEN status = 'COMPLETED' THEN 1 END) as completed,
			COUNT(CASE WHEN status = 'ABANDONED' THEN 1 END) as abandoned,
			COALESCE(AVG(CASE WHEN status = 'ACTIVE' THEN progress END), 0) as average_progress`).
		Scan(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}
