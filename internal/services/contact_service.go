package services

import (
	"errors"
	"strings"

	"portfolio/internal/apperrors"
	"portfolio/internal/logger"
	"portfolio/internal/models"
	"portfolio/internal/repositories"
	"portfolio/internal/validation"
	"portfolio/pkg/rabbitmq"
)

// MessagePublisher announces stored contact messages. *rabbitmq.Client
// implements it.
type MessagePublisher interface {
	PublishMessageCreated(event rabbitmq.MessageEvent) error
}

// ContactInput is the payload of the contact form.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ContactService stores contact-form submissions.
type ContactService struct {
	repo      repositories.MessageRepository
	publisher MessagePublisher
}

// NewContactService creates a new ContactService. publisher may be nil.
func NewContactService(repo repositories.MessageRepository, publisher MessagePublisher) *ContactService {
	return &ContactService{
		repo:      repo,
		publisher: publisher,
	}
}

// Submit validates and stores a message, then publishes a best-effort event.
func (s *ContactService) Submit(input ContactInput) (*models.Message, error) {
	msg := &models.Message{
		Name:    strings.TrimSpace(input.Name),
		Email:   strings.ToLower(strings.TrimSpace(input.Email)),
		Message: strings.TrimSpace(input.Message),
	}
	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		return nil, apperrors.BadRequest("All fields are required.")
	}

	if err := validation.Validate(msg); err != nil {
		return nil, err
	}

	if err := s.repo.Create(msg); err != nil {
		return nil, apperrors.Internal(err)
	}

	if s.publisher != nil {
		event := rabbitmq.MessageEvent{
			Type:      rabbitmq.EventMessageCreated,
			MessageID: msg.ID,
			Name:      msg.Name,
			Email:     msg.Email,
			Message:   msg.Message,
			CreatedAt: msg.CreatedAt,
		}
		if err := s.publisher.PublishMessageCreated(event); err != nil {
			logger.Warn("failed to publish message event", "message_id", msg.ID, "error", err)
		}
	}

	logger.Info("contact message stored", "message_id", msg.ID)
	return msg, nil
}

// List returns every stored message, newest first.
func (s *ContactService) List() ([]models.Message, error) {
	msgs, err := s.repo.GetAll()
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return msgs, nil
}

// Get returns one stored message.
func (s *ContactService) Get(id string) (*models.Message, error) {
	msg, err := s.repo.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err, "Message not found")
	}
	return msg, nil
}

// notFoundOr maps repositories.ErrNotFound to a 404 and anything else to a 500.
func notFoundOr(err error, message string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return apperrors.NotFound(message)
	}
	return apperrors.Internal(err)
}
