package repositories

import "portfolio/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	// GetOwner returns the oldest account, whose profile is the portfolio.
	GetOwner() (*models.User, error)
	Update(user *models.User) error
	Count() (int64, error)
}
