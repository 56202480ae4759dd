package repositories

import (
	"fmt"

	"portfolio/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// HomepageRepository defines the interface for the single landing page document.
type HomepageRepository interface {
	// Get returns the homepage with its user, skills and featured projects loaded.
	Get() (*models.Homepage, error)
	// Save writes the homepage and replaces its skill and project references.
	Save(hp *models.Homepage) error
	Count() (int64, error)
}

// GORMHomepageRepository is a GORM implementation of HomepageRepository.
type GORMHomepageRepository struct {
	db *gorm.DB
}

// NewGORMHomepageRepository creates a new instance of GORMHomepageRepository.
func NewGORMHomepageRepository(db *gorm.DB) *GORMHomepageRepository {
	return &GORMHomepageRepository{db: db}
}

func (r *GORMHomepageRepository) Get() (*models.Homepage, error) {
	var hp models.Homepage
	err := r.db.
		Preload("User").
		Preload("User.FeaturedSkills", func(db *gorm.DB) *gorm.DB { return db.Order(skillOrder) }).
		Preload("Skills", func(db *gorm.DB) *gorm.DB { return db.Order(skillOrder) }).
		Preload("FeaturedProjects", func(db *gorm.DB) *gorm.DB { return db.Order(projectOrder) }).
		Order("created_at asc").
		First(&hp).Error
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("homepage %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get homepage: %w", err)
	}
	return &hp, nil
}

func (r *GORMHomepageRepository) Save(hp *models.Homepage) error {
	if hp.ID == "" {
		hp.ID = uuid.New().String()
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(hp).Error; err != nil {
			return fmt.Errorf("failed to save homepage: %w", err)
		}
		if err := tx.Model(hp).Association("Skills").Replace(hp.Skills); err != nil {
			return fmt.Errorf("failed to replace homepage skills: %w", err)
		}
		if err := tx.Model(hp).Association("FeaturedProjects").Replace(hp.FeaturedProjects); err != nil {
			return fmt.Errorf("failed to replace homepage projects: %w", err)
		}
		return nil
	})
}

func (r *GORMHomepageRepository) Count() (int64, error) {
	var n int64
	if err := r.db.Model(&models.Homepage{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count homepages: %w", err)
	}
	return n, nil
}
