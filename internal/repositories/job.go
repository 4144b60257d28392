package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"careerpilot/career-assistant/internal/models"
)

type JobRepository interface {
	Create(job *models.Job) error
	FindAll(limit int) ([]models.Job, error)
	FindByID(id uuid.UUID) (*models.Job, error)
	FindByIDs(ids []uuid.UUID) ([]models.Job, error)
	Count() (int64, error)
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

// Create implements JobRepository.
func (r *jobRepository) Create(job *models.Job) error {
	if err := r.db.Create(job).Error; err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

// FindAll implements JobRepository.
func (r *jobRepository) FindAll(limit int) ([]models.Job, error) {
	var jobs []models.Job
	query := r.db.Order("posted_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

// FindByID implements JobRepository.
func (r *jobRepository) FindByID(id uuid.UUID) (*models.Job, error) {
	var job models.Job
	if err := r.db.Where("id = ?", id).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}
	return &job, nil
}

// FindByIDs implements JobRepository.
func (r *jobRepository) FindByIDs(ids []uuid.UUID) ([]models.Job, error) {
	var jobs []models.Job
	if err := r.db.Where("id IN ?", ids).Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to find jobs: %w", err)
	}
	return jobs, nil
}

// Count implements JobRepository.
func (r *jobRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Job{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count jobs: %w", err)
	}
	return count, nil
}
