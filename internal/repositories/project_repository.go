package repositories

import "portfolio/internal/models"

// ProjectRepository defines the interface for project data access.
// Every read preloads the project's technologies.
type ProjectRepository interface {
	GetAll() ([]models.Project, error)
	GetFeatured() ([]models.Project, error)
	GetByID(id string) (*models.Project, error)
	// GetByIDs returns the projects that exist among ids, in display order.
	GetByIDs(ids []string) ([]models.Project, error)
	Create(project *models.Project) error
	Update(project *models.Project) error
	Delete(id string) error
	Count() (int64, error)
}
