package repositories

import (
	"fmt"

	"portfolio/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MessageRepository defines the interface for contact message storage.
// Messages are append-only.
type MessageRepository interface {
	Create(msg *models.Message) error
	GetAll() ([]models.Message, error)
	GetByID(id string) (*models.Message, error)
	Count() (int64, error)
}

// GORMMessageRepository is a GORM implementation of MessageRepository.
type GORMMessageRepository struct {
	db *gorm.DB
}

// NewGORMMessageRepository creates a new instance of GORMMessageRepository.
func NewGORMMessageRepository(db *gorm.DB) *GORMMessageRepository {
	return &GORMMessageRepository{db: db}
}

func (r *GORMMessageRepository) Create(msg *models.Message) error {
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	if err := r.db.Create(msg).Error; err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

// GetAll returns messages newest first.
func (r *GORMMessageRepository) GetAll() ([]models.Message, error) {
	var msgs []models.Message
	if err := r.db.Order("created_at desc").Find(&msgs).Error; err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}
	return msgs, nil
}

func (r *GORMMessageRepository) GetByID(id string) (*models.Message, error) {
	var msg models.Message
	if err := r.db.First(&msg, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("message with ID %s %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get message by ID %s: %w", id, err)
	}
	return &msg, nil
}

func (r *GORMMessageRepository) Count() (int64, error) {
	var n int64
	if err := r.db.Model(&models.Message{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}
	return n, nil
}
