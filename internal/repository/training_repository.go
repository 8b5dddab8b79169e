package repository

import (
	"github.com/janarthanan-HTGE/HRMS-Dev/internal/model"

	"gorm.io/gorm"
)

// TrainingSummary is one row of the admin aggregate: enrollment and
// completion counts per session.
type TrainingSummary struct {
	TrainingSessionID uint   `json:"training_session_id"`
	Title             string `json:"title"`
	Enrolled          int64  `json:"enrolled"`
	Completed         int64  `json:"completed"`
	Capacity          int    `json:"capacity"`
}

type TrainingRepository interface {
	CreateSession(session *model.TrainingSession) error
	GetSessionByID(id uint) (*model.TrainingSession, error)
	UpdateSession(session *model.TrainingSession) error
	DeleteSession(id uint) error
	GetAllSessions() ([]model.TrainingSession, error)
	Enroll(enrollment *model.TrainingEnrollment) error
	GetEnrollmentByID(id uint) (*model.TrainingEnrollment, error)
	UpdateEnrollment(enrollment *model.TrainingEnrollment) error
	GetEnrollmentsByProfile(profileID uint) ([]model.TrainingEnrollment, error)
	CountEnrollments(sessionID uint) (int64, error)
	GetSummary() ([]TrainingSummary, error)
}

type trainingRepository struct {
	db *gorm.DB
}

func NewTrainingRepository(db *gorm.DB) TrainingRepository {
	return &trainingRepository{db}
}

func (r *trainingRepository) CreateSession(session *model.TrainingSession) error {
	return r.db.Create(session).Error
}

func (r *trainingRepository) GetSessionByID(id uint) (*model.TrainingSession, error) {
	var session model.TrainingSession
	err := r.db.First(&session, id).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *trainingRepository) UpdateSession(session *model.TrainingSession) error {
	return r.db.Save(session).Error
}

func (r *trainingRepository) DeleteSession(id uint) error {
	return r.db.Delete(&model.TrainingSession{}, id).Error
}

func (r *trainingRepository) GetAllSessions() ([]model.TrainingSession, error) {
	var sessions []model.TrainingSession
	err := r.db.Order("start_date asc").Find(&sessions).Error
	return sessions, err
}

func (r *trainingRepository) Enroll(enrollment *model.TrainingEnrollment) error {
	return r.db.Create(enrollment).Error
}

func (r *trainingRepository) GetEnrollmentByID(id uint) (*model.TrainingEnrollment, error) {
	var enrollment model.TrainingEnrollment
	err := r.db.Preload("TrainingSession").First(&enrollment, id).Error
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *trainingRepository) UpdateEnrollment(enrollment *model.TrainingEnrollment) error {
	return r.db.Save(enrollment).Error
}

func (r *trainingRepository) GetEnrollmentsByProfile(profileID uint) ([]model.TrainingEnrollment, error) {
	var enrollments []model.TrainingEnrollment
	err := r.db.Preload("TrainingSession").
		Where("profile_id = ?", profileID).Find(&enrollments).Error
	return enrollments, err
}

func (r *trainingRepository) CountEnrollments(sessionID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.TrainingEnrollment{}).
		Where("training_session_id = ? AND status <> ?", sessionID, model.EnrollmentDropped).
		Count(&count).Error
	return count, err
}

// GetSummary aggregates per-session enrollment and completion counts for the
// admin training dashboard.
func (r *trainingRepository) GetSummary() ([]TrainingSummary, error) {
	var rows []TrainingSummary
	err := r.db.Model(&model.TrainingSession{}).
		Select(`training_sessions.id as training_session_id,
			training_sessions.title,
			training_sessions.capacity,
			COUNT(CASE WHEN training_enrollments.status <> 'DROPPED' THEN 1 END) as enrolled,
			COUNT(CASE WHEN training_enrollments.status = 'COMPLETED' THEN 1 END) as completed`).
		Joins("LEFT JOIN training_enrollments ON training_enrollments.training_session_id = training_sessions.id AND training_enrollments.deleted_at IS NULL").
		Where("training_sessions.deleted_at IS NULL").
		Group("training_sessions.id, training_sessions.title, training_sessions.capacity").
		Scan(&rows).Error
	return rows, err
}
