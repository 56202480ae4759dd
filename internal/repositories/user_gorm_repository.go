package repositories

import (
	"fmt"

	"portfolio/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create creates a new user in the database.
func (r *GORMUserRepository) Create(user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if err := r.db.Omit("FeaturedSkills.*").Create(user).Error; err != nil {
		if isDuplicate(err) {
			return fmt.Errorf("user with email %s already exists: %w", user.Email, ErrDuplicate)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByID retrieves a user and their featured skills by ID.
func (r *GORMUserRepository) GetByID(id string) (*models.User, error) {
	var user models.User
	if err := r.withSkills().First(&user, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("user with ID %s %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by ID %s: %w", id, err)
	}
	return &user, nil
}

// GetByEmail retrieves a user by their email from the database.
func (r *GORMUserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("user with email %s %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by email %s: %w", email, err)
	}
	return &user, nil
}

// GetOwner retrieves the first account ever created.
func (r *GORMUserRepository) GetOwner() (*models.User, error) {
	var user models.User
	if err := r.withSkills().Order("created_at asc").First(&user).Error; err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("owner user %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get owner user: %w", err)
	}
	return &user, nil
}

// Update saves the user's columns and replaces their featured skills.
func (r *GORMUserRepository) Update(user *models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Omit(clause.Associations).Save(user)
		if res.Error != nil {
			if isDuplicate(res.Error) {
				return fmt.Errorf("user with email %s already exists: %w", user.Email, ErrDuplicate)
			}
			return fmt.Errorf("failed to update user: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("user with ID %s %w", user.ID, ErrNotFound)
		}
		if err := tx.Model(user).Association("FeaturedSkills").Replace(user.FeaturedSkills); err != nil {
			return fmt.Errorf("failed to replace featured skills: %w", err)
		}
		return nil
	})
}

// Count returns the number of accounts.
func (r *GORMUserRepository) Count() (int64, error) {
	var n int64
	if err := r.db.Model(&models.User{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}

func (r *GORMUserRepository) withSkills() *gorm.DB {
	return r.db.Preload("FeaturedSkills", func(db *gorm.DB) *gorm.DB {
		return db.Order("display_order asc, name asc")
	})
}
