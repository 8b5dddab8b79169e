package repository

import (
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/model"

	"gorm.io/gorm"
)

type TaskRepository interface {
	Create(task *model.Task) error
	GetByID(id uint) (*model.Task, error)
	Update(task *model.Task) error
	Delete(id uint) error
	GetByProfile(profileID uint) ([]model.Task, error)
	GetAll() ([]model.Task, error)
	CountOpenByProfile(profileID uint) (int64, error)
}

type taskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db}
}

func (r *taskRepository) Create(task *model.Task) error {
	return r.db.Create(task).Error
}

func (r *taskRepository) GetByID(id uint) (*model.Task, error) {
	var task model.Task
	err := r.db.First(&task, id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) Update(task *model.Task) error {
	return r.db.Save(task).Error
}

func (r *taskRepository) Delete(id uint) error {
	return r.db.Delete(&model.Task{}, id).Error
}

func (r *taskRepository) GetByProfile(profileID uint) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.Where("profile_id = ?", profileID).Order("due_date asc").Find(&tasks).Error
	return tasks, err
}

func (r *taskRepository) GetAll() ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.Preload("Profile").Order("due_date asc").Find(&tasks).Error
	return tasks, err
}

func (r *taskRepository) CountOpenByProfile(profileID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Task{}).
		Where("profile_id = ? AND status <> ?", profileID, model.TaskDone).Count(&count).Error
	return count, err
}
