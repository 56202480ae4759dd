package services

import (
	"strings"
	"time"

	"portfolio/internal/apperrors"
	"portfolio/internal/cache"
	"portfolio/internal/models"
	"portfolio/internal/repositories"
	"portfolio/internal/validation"
)

// dateLayouts are the accepted forms of startDate and endDate.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// ExperienceInput is the create/update payload of an experience entry.
// An empty EndDate marks the entry as ongoing. A missing or null EndDate
// keeps the stored value on update.
type ExperienceInput struct {
	Type        string  `json:"type"`
	Title       string  `json:"title"`
	Company     string  `json:"company"`
	Institution string  `json:"institution"`
	Location    string  `json:"location"`
	StartDate   string  `json:"startDate"`
	EndDate     *string `json:"endDate"`
	Description string  `json:"description"`
	Order       *int    `json:"order"`
}

// ExperienceService handles business logic related to experience entries.
type ExperienceService struct {
	repo  repositories.ExperienceRepository
	cache *cache.Cache
}

// NewExperienceService creates a new ExperienceService.
func NewExperienceService(repo repositories.ExperienceRepository, c *cache.Cache) *ExperienceService {
	return &ExperienceService{
		repo:  repo,
		cache: c,
	}
}

// List returns every entry by display order, most recent first on ties.
func (s *ExperienceService) List() ([]models.Experience, error) {
	exps, err := cache.Load(s.cache, cache.KeyExperiences, s.repo.GetAll)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return exps, nil
}

// Get returns one entry.
func (s *ExperienceService) Get(id string) (*models.Experience, error) {
	exp, err := s.repo.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err, "Experience not found")
	}
	return exp, nil
}

// Create validates and stores a new entry.
func (s *ExperienceService) Create(input ExperienceInput) (*models.Experience, error) {
	exp := &models.Experience{Order: models.DefaultOrder}
	if err := applyExperienceInput(exp, input); err != nil {
		return nil, err
	}
	if err := validation.Validate(exp); err != nil {
		return nil, err
	}
	if err := s.repo.Create(exp); err != nil {
		return nil, apperrors.Internal(err)
	}

	s.cache.Flush()
	return exp, nil
}

// Update merges input into the stored entry and revalidates it.
func (s *ExperienceService) Update(id string, input ExperienceInput) (*models.Experience, error) {
	exp, err := s.repo.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err, "Experience not found")
	}
	if err := applyExperienceInput(exp, input); err != nil {
		return nil, err
	}
	if err := validation.Validate(exp); err != nil {
		return nil, err
	}
	if err := s.repo.Update(exp); err != nil {
		return nil, notFoundOr(err, "Experience not found")
	}

	s.cache.Flush()
	return exp, nil
}

// Delete removes an entry.
func (s *ExperienceService) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return notFoundOr(err, "Experience not found")
	}
	s.cache.Flush()
	return nil
}

func applyExperienceInput(exp *models.Experience, input ExperienceInput) error {
	fields := map[string]string{}

	if v := strings.TrimSpace(input.Type); v != "" {
		exp.Type = models.ExperienceType(strings.ToLower(v))
	}
	if v := strings.TrimSpace(input.Title); v != "" {
		exp.Title = v
	}
	if v := strings.TrimSpace(input.Company); v != "" {
		exp.Company = v
	}
	if v := strings.TrimSpace(input.Institution); v != "" {
		exp.Institution = v
	}
	if v := strings.TrimSpace(input.Location); v != "" {
		exp.Location = v
	}
	if v := strings.TrimSpace(input.Description); v != "" {
		exp.Description = v
	}
	if input.Order != nil {
		exp.Order = *input.Order
	}

	if v := strings.TrimSpace(input.StartDate); v != "" {
		start, ok := parseDate(v)
		if !ok {
			fields["startDate"] = "Must be a date in YYYY-MM-DD or RFC 3339 format"
		} else {
			exp.StartDate = start
		}
	}
	if input.EndDate != nil {
		if v := strings.TrimSpace(*input.EndDate); v == "" {
			exp.EndDate = nil
		} else if end, ok := parseDate(v); ok {
			exp.EndDate = &end
		} else {
			fields["endDate"] = "Must be a date in YYYY-MM-DD or RFC 3339 format"
		}
	}

	if len(fields) > 0 {
		return validation.NewErrors(fields)
	}
	return nil
}

func parseDate(v string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
