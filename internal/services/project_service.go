package services

import (
	"errors"
	"fmt"
	"strings"

	"portfolio/internal/apperrors"
	"portfolio/internal/cache"
	"portfolio/internal/logger"
	"portfolio/internal/models"
	"portfolio/internal/repositories"
	"portfolio/internal/validation"

	"github.com/google/uuid"
)

// Defaults for skills created on the fly from a technology name.
const (
	AutoSkillCategory = "Other"
	AutoSkillLevel    = models.LevelIntermediate
)

// ProjectInput is the create/update payload of a project. Older clients
// send summary, description, thumbnail, projectUrl and featured; those are
// accepted as aliases of the canonical fields.
type ProjectInput struct {
	Title            string   `json:"title"`
	ShortDescription string   `json:"shortDescription"`
	Summary          string   `json:"summary"`
	LongDescription  string   `json:"longDescription"`
	Description      string   `json:"description"`
	Technologies     []string `json:"technologies"`
	ImageURL         string   `json:"imageUrl"`
	Thumbnail        string   `json:"thumbnail"`
	LiveDemoURL      *string  `json:"liveDemoUrl"`
	ProjectURL       *string  `json:"projectUrl"`
	GithubURL        string   `json:"githubUrl"`
	Order            *int     `json:"order"`
	IsFeatured       *bool    `json:"isFeatured"`
	Featured         *bool    `json:"featured"`
}

// ProjectService handles business logic related to projects.
type ProjectService struct {
	repo      repositories.ProjectRepository
	skillRepo repositories.SkillRepository
	cache     *cache.Cache
}

// NewProjectService creates a new ProjectService.
func NewProjectService(repo repositories.ProjectRepository, skillRepo repositories.SkillRepository, c *cache.Cache) *ProjectService {
	return &ProjectService{
		repo:      repo,
		skillRepo: skillRepo,
		cache:     c,
	}
}

// List returns every project with its technologies.
func (s *ProjectService) List() ([]models.Project, error) {
	projects, err := cache.Load(s.cache, cache.KeyProjects, s.repo.GetAll)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return projects, nil
}

// Featured returns the projects flagged as featured.
func (s *ProjectService) Featured() ([]models.Project, error) {
	projects, err := cache.Load(s.cache, cache.KeyFeaturedProjects, s.repo.GetFeatured)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return projects, nil
}

// Get returns one project.
func (s *ProjectService) Get(id string) (*models.Project, error) {
	project, err := s.repo.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err, "Project not found")
	}
	return project, nil
}

// Create validates and stores a new project, resolving its technologies.
func (s *ProjectService) Create(input ProjectInput) (*models.Project, error) {
	project := &models.Project{Order: models.DefaultOrder}
	applyProjectInput(project, input)

	if err := validation.Validate(project); err != nil {
		return nil, err
	}

	techs, err := s.resolveTechnologies(input.Technologies)
	if err != nil {
		return nil, err
	}
	project.Technologies = techs

	if err := s.repo.Create(project); err != nil {
		return nil, apperrors.Internal(err)
	}

	s.cache.Flush()
	logger.Info("project created", "project_id", project.ID)
	return project, nil
}

// Update merges input into the stored project. Technologies are replaced
// only when the input carries them.
func (s *ProjectService) Update(id string, input ProjectInput) (*models.Project, error) {
	project, err := s.repo.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err, "Project not found")
	}
	applyProjectInput(project, input)

	if err := validation.Validate(project); err != nil {
		return nil, err
	}

	if input.Technologies != nil {
		techs, err := s.resolveTechnologies(input.Technologies)
		if err != nil {
			return nil, err
		}
		project.Technologies = techs
	}

	if err := s.repo.Update(project); err != nil {
		return nil, notFoundOr(err, "Project not found")
	}

	s.cache.Flush()
	return project, nil
}

// Delete removes a project.
func (s *ProjectService) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return notFoundOr(err, "Project not found")
	}
	s.cache.Flush()
	logger.Info("project deleted", "project_id", id)
	return nil
}

// resolveTechnologies turns a list of skill IDs or names into skills.
// Unknown IDs are dropped; unknown names become new skills.
func (s *ProjectService) resolveTechnologies(refs []string) ([]models.Skill, error) {
	skills := make([]models.Skill, 0, len(refs))
	seen := make(map[string]bool, len(refs))

	for _, ref := range uniqueIDs(refs) {
		skill, err := s.resolveTechnology(ref)
		if err != nil {
			return nil, err
		}
		if skill == nil || seen[skill.ID] {
			continue
		}
		seen[skill.ID] = true
		skills = append(skills, *skill)
	}
	return skills, nil
}

func (s *ProjectService) resolveTechnology(ref string) (*models.Skill, error) {
	if _, err := uuid.Parse(ref); err == nil {
		skill, err := s.skillRepo.GetByID(ref)
		if err == nil {
			return skill, nil
		}
		if errors.Is(err, repositories.ErrNotFound) {
			logger.Warn("dropping unknown technology id", "skill_id", ref)
			return nil, nil
		}
		return nil, apperrors.Internal(err)
	}

	skill, err := s.skillRepo.GetByName(ref)
	if err == nil {
		return skill, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.Internal(err)
	}

	skill = &models.Skill{
		Name:     ref,
		Category: AutoSkillCategory,
		Level:    AutoSkillLevel,
		Order:    models.DefaultOrder,
	}
	if err := validation.Validate(skill); err != nil {
		return nil, validation.NewErrors(map[string]string{
			"technologies": fmt.Sprintf("%q is not a valid skill name", ref),
		})
	}
	if err := s.skillRepo.Create(skill); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			// Created concurrently, use the stored one.
			return s.skillRepo.GetByName(ref)
		}
		return nil, apperrors.Internal(err)
	}
	logger.Info("skill created from technology name", "skill_id", skill.ID, "name", skill.Name)
	return skill, nil
}

func applyProjectInput(p *models.Project, in ProjectInput) {
	if v := firstNonEmpty(in.Title); v != "" {
		p.Title = v
	}
	if v := firstNonEmpty(in.ShortDescription, in.Summary); v != "" {
		p.ShortDescription = v
	}
	if v := firstNonEmpty(in.LongDescription, in.Description); v != "" {
		p.LongDescription = v
	}
	if v := firstNonEmpty(in.ImageURL, in.Thumbnail); v != "" {
		p.ImageURL = v
	}
	if v := firstNonEmpty(in.GithubURL); v != "" {
		p.GithubURL = v
	}
	switch {
	case in.LiveDemoURL != nil:
		p.LiveDemoURL = strings.TrimSpace(*in.LiveDemoURL)
	case in.ProjectURL != nil:
		p.LiveDemoURL = strings.TrimSpace(*in.ProjectURL)
	}
	if in.Order != nil {
		p.Order = *in.Order
	}
	switch {
	case in.IsFeatured != nil:
		p.IsFeatured = *in.IsFeatured
	case in.Featured != nil:
		p.IsFeatured = *in.Featured
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
