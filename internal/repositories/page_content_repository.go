package repositories

import (
	"fmt"

	"portfolio/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PageContentRepository defines the interface for page content storage.
type PageContentRepository interface {
	GetByPageName(pageName string) (*models.PageContent, error)
	// Save inserts the page or, when one with the same name exists, updates it.
	Save(page *models.PageContent) error
	Count() (int64, error)
}

// GORMPageContentRepository is a GORM implementation of PageContentRepository.
type GORMPageContentRepository struct {
	db *gorm.DB
}

// NewGORMPageContentRepository creates a new instance of GORMPageContentRepository.
func NewGORMPageContentRepository(db *gorm.DB) *GORMPageContentRepository {
	return &GORMPageContentRepository{db: db}
}

func (r *GORMPageContentRepository) GetByPageName(pageName string) (*models.PageContent, error) {
	var page models.PageContent
	if err := r.db.First(&page, "page_name = ?", pageName).Error; err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("page %s %w", pageName, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get page %s: %w", pageName, err)
	}
	return &page, nil
}

func (r *GORMPageContentRepository) Save(page *models.PageContent) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.PageContent
		err := tx.Select("id", "created_at").First(&existing, "page_name = ?", page.PageName).Error
		switch {
		case err == nil:
			page.ID = existing.ID
			page.CreatedAt = existing.CreatedAt
		case isNotFound(err):
			if page.ID == "" {
				page.ID = uuid.New().String()
			}
		default:
			return fmt.Errorf("failed to look up page %s: %w", page.PageName, err)
		}

		if err := tx.Save(page).Error; err != nil {
			if isDuplicate(err) {
				return fmt.Errorf("page %s already exists: %w", page.PageName, ErrDuplicate)
			}
			return fmt.Errorf("failed to save page %s: %w", page.PageName, err)
		}
		return nil
	})
}

func (r *GORMPageContentRepository) Count() (int64, error) {
	var n int64
	if err := r.db.Model(&models.PageContent{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count pages: %w", err)
	}
	return n, nil
}
