package repositories

import (
	"fmt"

	"portfolio/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const projectOrder = "display_order asc, created_at desc"

// GORMProjectRepository is a GORM implementation of ProjectRepository.
type GORMProjectRepository struct {
	db *gorm.DB
}

// NewGORMProjectRepository creates a new instance of GORMProjectRepository.
func NewGORMProjectRepository(db *gorm.DB) *GORMProjectRepository {
	return &GORMProjectRepository{
		db: db,
	}
}

// GetAll retrieves all projects sorted by display order, newest first on ties.
func (r *GORMProjectRepository) GetAll() ([]models.Project, error) {
	var projects []models.Project
	if err := r.withTechnologies().Order(projectOrder).Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("failed to get all projects: %w", err)
	}
	return projects, nil
}

// GetFeatured retrieves the projects flagged as featured.
func (r *GORMProjectRepository) GetFeatured() ([]models.Project, error) {
	var projects []models.Project
	if err := r.withTechnologies().Where("is_featured = ?", true).Order(projectOrder).Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("failed to get featured projects: %w", err)
	}
	return projects, nil
}

// GetByID retrieves a single project by its ID.
func (r *GORMProjectRepository) GetByID(id string) (*models.Project, error) {
	var project models.Project
	if err := r.withTechnologies().First(&project, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("project with ID %s %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get project by ID %s: %w", id, err)
	}
	return &project, nil
}

// GetByIDs retrieves every existing project whose ID is in ids.
func (r *GORMProjectRepository) GetByIDs(ids []string) ([]models.Project, error) {
	projects := []models.Project{}
	if len(ids) == 0 {
		return projects, nil
	}
	if err := r.withTechnologies().Where("id IN ?", ids).Order(projectOrder).Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("failed to get projects by IDs: %w", err)
	}
	return projects, nil
}

// Create creates a new project and links its technologies.
func (r *GORMProjectRepository) Create(project *models.Project) error {
	if project.ID == "" {
		project.ID = uuid.New().String()
	}
	// Skills are linked, never upserted, from here.
	if err := r.db.Omit("Technologies.*").Create(project).Error; err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// Update saves the project's columns and replaces its technologies.
func (r *GORMProjectRepository) Update(project *models.Project) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Omit(clause.Associations).Save(project)
		if res.Error != nil {
			return fmt.Errorf("failed to update project: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("project with ID %s %w", project.ID, ErrNotFound)
		}
		if err := tx.Model(project).Association("Technologies").Replace(project.Technologies); err != nil {
			return fmt.Errorf("failed to replace technologies: %w", err)
		}
		return nil
	})
}

// Delete removes a project together with its join rows.
func (r *GORMProjectRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, table := range []string{"project_technologies", "homepage_featured_projects"} {
			if err := tx.Exec("DELETE FROM "+table+" WHERE project_id = ?", id).Error; err != nil {
				return fmt.Errorf("failed to clear %s references: %w", table, err)
			}
		}
		res := tx.Delete(&models.Project{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete project: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("project with ID %s %w", id, ErrNotFound)
		}
		return nil
	})
}

// Count returns the number of projects.
func (r *GORMProjectRepository) Count() (int64, error) {
	var n int64
	if err := r.db.Model(&models.Project{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count projects: %w", err)
	}
	return n, nil
}

func (r *GORMProjectRepository) withTechnologies() *gorm.DB {
	return r.db.Preload("Technologies", func(db *gorm.DB) *gorm.DB {
		return db.Order(skillOrder)
	})
}
