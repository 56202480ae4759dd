package repositories

import "portfolio/internal/models"

// ExperienceRepository defines the interface for experience data access.
type ExperienceRepository interface {
	GetAll() ([]models.Experience, error)
	GetByID(id string) (*models.Experience, error)
	Create(exp *models.Experience) error
	Update(exp *models.Experience) error
	Delete(id string) error
	Count() (int64, error)
}
