package repositories

import (
	"fmt"

	"portfolio/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMExperienceRepository is a GORM implementation of ExperienceRepository.
type GORMExperienceRepository struct {
	db *gorm.DB
}

// NewGORMExperienceRepository creates a new instance of GORMExperienceRepository.
func NewGORMExperienceRepository(db *gorm.DB) *GORMExperienceRepository {
	return &GORMExperienceRepository{
		db: db,
	}
}

// GetAll retrieves every entry by display order, most recent start first on ties.
func (r *GORMExperienceRepository) GetAll() ([]models.Experience, error) {
	var exps []models.Experience
	if err := r.db.Order("display_order asc, start_date desc").Find(&exps).Error; err != nil {
		return nil, fmt.Errorf("failed to get all experiences: %w", err)
	}
	return exps, nil
}

// GetByID retrieves a single experience entry by its ID.
func (r *GORMExperienceRepository) GetByID(id string) (*models.Experience, error) {
	var exp models.Experience
	if err := r.db.First(&exp, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("experience with ID %s %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get experience by ID %s: %w", id, err)
	}
	return &exp, nil
}

// Create creates a new experience entry in the database.
func (r *GORMExperienceRepository) Create(exp *models.Experience) error {
	if exp.ID == "" {
		exp.ID = uuid.New().String()
	}
	if err := r.db.Create(exp).Error; err != nil {
		return fmt.Errorf("failed to create experience: %w", err)
	}
	return nil
}

// Update updates an existing experience entry in the database.
func (r *GORMExperienceRepository) Update(exp *models.Experience) error {
	res := r.db.Save(exp)
	if res.Error != nil {
		return fmt.Errorf("failed to update experience: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("experience with ID %s %w", exp.ID, ErrNotFound)
	}
	return nil
}

// Delete deletes an experience entry by its ID.
func (r *GORMExperienceRepository) Delete(id string) error {
	res := r.db.Delete(&models.Experience{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete experience: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("experience with ID %s %w", id, ErrNotFound)
	}
	return nil
}

// Count returns the number of experience entries.
func (r *GORMExperienceRepository) Count() (int64, error) {
	var n int64
	if err := r.db.Model(&models.Experience{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count experiences: %w", err)
	}
	return n, nil
}
