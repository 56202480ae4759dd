package services

import (
	"errors"
	"strings"

	"portfolio/internal/apperrors"
	"portfolio/internal/cache"
	"portfolio/internal/models"
	"portfolio/internal/repositories"
	"portfolio/internal/validation"
)

// SkillInput is the create/update payload of a skill. Absent fields keep
// their stored value on update.
type SkillInput struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	IconURL  string `json:"iconUrl"`
	Level    string `json:"level"`
	Order    *int   `json:"order"`
}

// SkillService handles business logic related to skills.
type SkillService struct {
	repo  repositories.SkillRepository
	cache *cache.Cache
}

// NewSkillService creates a new SkillService.
func NewSkillService(repo repositories.SkillRepository, c *cache.Cache) *SkillService {
	return &SkillService{
		repo:  repo,
		cache: c,
	}
}

// List returns every skill by display order and name.
func (s *SkillService) List() ([]models.Skill, error) {
	skills, err := cache.Load(s.cache, cache.KeySkills, s.repo.GetAll)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return skills, nil
}

// Get returns a single skill.
func (s *SkillService) Get(id string) (*models.Skill, error) {
	skill, err := s.repo.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err, "Skill not found")
	}
	return skill, nil
}

// Create validates and stores a new skill. Names are unique.
func (s *SkillService) Create(input SkillInput) (*models.Skill, error) {
	skill := &models.Skill{Order: models.DefaultOrder}
	applySkillInput(skill, input)

	if err := validation.Validate(skill); err != nil {
		return nil, err
	}
	if err := s.repo.Create(skill); err != nil {
		return nil, skillWriteError(err)
	}

	s.cache.Flush()
	return skill, nil
}

// Update merges input into the stored skill.
func (s *SkillService) Update(id string, input SkillInput) (*models.Skill, error) {
	skill, err := s.repo.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err, "Skill not found")
	}
	applySkillInput(skill, input)

	if err := validation.Validate(skill); err != nil {
		return nil, err
	}
	if err := s.repo.Update(skill); err != nil {
		return nil, skillWriteError(err)
	}

	s.cache.Flush()
	return skill, nil
}

// Delete removes a skill and its references.
func (s *SkillService) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return notFoundOr(err, "Skill not found")
	}
	s.cache.Flush()
	return nil
}

func applySkillInput(skill *models.Skill, input SkillInput) {
	if v := strings.TrimSpace(input.Name); v != "" {
		skill.Name = v
	}
	if v := strings.TrimSpace(input.Category); v != "" {
		skill.Category = v
	}
	if v := strings.TrimSpace(input.IconURL); v != "" {
		skill.IconURL = v
	}
	if v := strings.TrimSpace(input.Level); v != "" {
		skill.Level = v
	}
	if input.Order != nil {
		skill.Order = *input.Order
	}
}

func skillWriteError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrDuplicate):
		return apperrors.Conflict("A skill with this name already exists")
	case errors.Is(err, repositories.ErrNotFound):
		return apperrors.NotFound("Skill not found")
	default:
		return apperrors.Internal(err)
	}
}
