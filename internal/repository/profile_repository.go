package repository

import (
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/model"

	"gorm.io/gorm"
)

type ProfileRepository interface {
	FindByID(id uint) (*model.Profile, error)
	FindByUserID(userID uint) (*model.Profile, error)
	GetAll() ([]model.Profile, error)
	GetByRole(role string) ([]model.Profile, error)
	Update(profile *model.Profile) error
	CountByRole(role string) (int64, error)
	Count() (int64, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db}
}

func (r *profileRepository) FindByID(id uint) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.Preload("User").First(&profile, id).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindByUserID(userID uint) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) GetAll() ([]model.Profile, error) {
	var profiles []model.Profile
	err := r.db.Preload("User").Order("full_name asc").Find(&profiles).Error
	return profiles, err
}

func (r *profileRepository) GetByRole(role string) ([]model.Profile, error) {
	var profiles []model.Profile
	err := r.db.Where("role = ?", role).Order("full_name asc").Find(&profiles).Error
	return profiles, err
}

func (r *profileRepository) Update(profile *model.Profile) error {
	return r.db.Save(profile).Error
}

func (r *profileRepository) CountByRole(role string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Profile{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

func (r *profileRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Profile{}).Count(&count).Error
	return count, err
}
