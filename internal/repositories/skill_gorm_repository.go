package repositories

import (
	"fmt"

	"portfolio/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const skillOrder = "display_order asc, name asc"

// GORMSkillRepository is a GORM implementation of SkillRepository.
type GORMSkillRepository struct {
	db *gorm.DB
}

// NewGORMSkillRepository creates a new instance of GORMSkillRepository.
func NewGORMSkillRepository(db *gorm.DB) *GORMSkillRepository {
	return &GORMSkillRepository{
		db: db,
	}
}

// GetAll retrieves all skills sorted by display order and name.
func (r *GORMSkillRepository) GetAll() ([]models.Skill, error) {
	var skills []models.Skill
	if err := r.db.Order(skillOrder).Find(&skills).Error; err != nil {
		return nil, fmt.Errorf("failed to get all skills: %w", err)
	}
	return skills, nil
}

// GetByID retrieves a single skill by its ID.
func (r *GORMSkillRepository) GetByID(id string) (*models.Skill, error) {
	var skill models.Skill
	if err := r.db.First(&skill, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("skill with ID %s %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get skill by ID %s: %w", id, err)
	}
	return &skill, nil
}

// GetByName retrieves a single skill by its unique name.
func (r *GORMSkillRepository) GetByName(name string) (*models.Skill, error) {
	var skill models.Skill
	if err := r.db.First(&skill, "name = ?", name).Error; err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("skill named %s %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get skill by name %s: %w", name, err)
	}
	return &skill, nil
}

// GetByIDs retrieves every existing skill whose ID is in ids.
func (r *GORMSkillRepository) GetByIDs(ids []string) ([]models.Skill, error) {
	skills := []models.Skill{}
	if len(ids) == 0 {
		return skills, nil
	}
	if err := r.db.Where("id IN ?", ids).Order(skillOrder).Find(&skills).Error; err != nil {
		return nil, fmt.Errorf("failed to get skills by IDs: %w", err)
	}
	return skills, nil
}

// Create creates a new skill in the database.
func (r *GORMSkillRepository) Create(skill *models.Skill) error {
	if skill.ID == "" {
		skill.ID = uuid.New().String()
	}
	if err := r.db.Create(skill).Error; err != nil {
		if isDuplicate(err) {
			return fmt.Errorf("skill named %s already exists: %w", skill.Name, ErrDuplicate)
		}
		return fmt.Errorf("failed to create skill: %w", err)
	}
	return nil
}

// Update updates an existing skill in the database.
func (r *GORMSkillRepository) Update(skill *models.Skill) error {
	res := r.db.Save(skill)
	if res.Error != nil {
		if isDuplicate(res.Error) {
			return fmt.Errorf("skill named %s already exists: %w", skill.Name, ErrDuplicate)
		}
		return fmt.Errorf("failed to update skill: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("skill with ID %s %w", skill.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a skill and every reference to it from projects, profiles
// and the homepage.
func (r *GORMSkillRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, table := range []string{"project_technologies", "user_featured_skills", "homepage_skills"} {
			if err := tx.Exec("DELETE FROM "+table+" WHERE skill_id = ?", id).Error; err != nil {
				return fmt.Errorf("failed to clear %s references: %w", table, err)
			}
		}
		res := tx.Delete(&models.Skill{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete skill: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("skill with ID %s %w", id, ErrNotFound)
		}
		return nil
	})
}

// Count returns the number of skills.
func (r *GORMSkillRepository) Count() (int64, error) {
	var n int64
	if err := r.db.Model(&models.Skill{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count skills: %w", err)
	}
	return n, nil
}
