package services

import (
	"errors"
	"sort"
	"strings"

	"portfolio/internal/apperrors"
	"portfolio/internal/cache"
	"portfolio/internal/logger"
	"portfolio/internal/models"
	"portfolio/internal/repositories"
	"portfolio/internal/validation"

	"gorm.io/datatypes"
)

// HomepageProject is the trimmed project shape shown on the landing page.
type HomepageProject struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	LiveDemoURL string `json:"liveDemoUrl"`
	GithubURL   string `json:"githubUrl"`
}

// HomepageView is the aggregate served by GET /api/homepage.
type HomepageView struct {
	User             models.User       `json:"user"`
	Skills           []models.Skill    `json:"skills"`
	FeaturedProjects []HomepageProject `json:"featuredProjects"`
}

// ProfileInput is the owner profile payload. Name, title and bio are
// mandatory; the rest is only applied when present.
type ProfileInput struct {
	Name           string               `json:"name"`
	Title          string               `json:"title"`
	Bio            string               `json:"bio"`
	ProfilePicture *string              `json:"profilePicture"`
	SocialLinks    *[]models.SocialLink `json:"socialLinks"`
	FeaturedSkills *[]string            `json:"featuredSkills"`
}

// FeaturedInput replaces the landing page's skill and project selection.
type FeaturedInput struct {
	Skills           []string `json:"skills"`
	FeaturedProjects []string `json:"featuredProjects"`
}

// HomepageService assembles and edits the landing page.
type HomepageService struct {
	repo        repositories.HomepageRepository
	userRepo    repositories.UserRepository
	skillRepo   repositories.SkillRepository
	projectRepo repositories.ProjectRepository
	cache       *cache.Cache
}

// NewHomepageService creates a new HomepageService.
func NewHomepageService(
	repo repositories.HomepageRepository,
	userRepo repositories.UserRepository,
	skillRepo repositories.SkillRepository,
	projectRepo repositories.ProjectRepository,
	c *cache.Cache,
) *HomepageService {
	return &HomepageService{
		repo:        repo,
		userRepo:    userRepo,
		skillRepo:   skillRepo,
		projectRepo: projectRepo,
		cache:       c,
	}
}

// Get returns the landing page aggregate.
func (s *HomepageService) Get() (*HomepageView, error) {
	view, err := cache.Load(s.cache, cache.KeyHomepage, s.load)
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (s *HomepageService) load() (*HomepageView, error) {
	hp, err := s.repo.Get()
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.Warn("homepage requested before it was configured")
			return nil, apperrors.NotFound("Homepage not configured. Run the seeder.")
		}
		return nil, apperrors.Internal(err)
	}
	return buildHomepageView(hp), nil
}

func buildHomepageView(hp *models.Homepage) *HomepageView {
	view := &HomepageView{
		User:             hp.User,
		Skills:           hp.Skills,
		FeaturedProjects: make([]HomepageProject, 0, len(hp.FeaturedProjects)),
	}
	if view.Skills == nil {
		view.Skills = []models.Skill{}
	}
	for _, p := range hp.FeaturedProjects {
		view.FeaturedProjects = append(view.FeaturedProjects, HomepageProject{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.ShortDescription,
			ImageURL:    p.ImageURL,
			LiveDemoURL: p.LiveDemoURL,
			GithubURL:   p.GithubURL,
		})
	}
	return view
}

// UpdateProfile applies input to the owner account and makes sure the
// homepage points at it.
func (s *HomepageService) UpdateProfile(input ProfileInput) (*models.User, error) {
	var missing []string
	for field, value := range map[string]string{"bio": input.Bio, "name": input.Name, "title": input.Title} {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, apperrors.Validation("Missing required fields", missing...)
	}

	var featured []models.Skill
	if input.FeaturedSkills != nil {
		skills, invalid, err := s.lookupSkills(*input.FeaturedSkills)
		if err != nil {
			return nil, err
		}
		if len(invalid) > 0 {
			return nil, apperrors.Validation("Invalid skill IDs", invalid...)
		}
		featured = skills
	}

	owner, err := s.userRepo.GetOwner()
	if err != nil {
		return nil, notFoundOr(err, "No user account exists yet")
	}

	owner.Name = strings.TrimSpace(input.Name)
	owner.Title = strings.TrimSpace(input.Title)
	owner.Bio = strings.TrimSpace(input.Bio)
	if input.ProfilePicture != nil {
		owner.ProfilePicture = strings.TrimSpace(*input.ProfilePicture)
	}
	if input.SocialLinks != nil {
		owner.SocialLinks = datatypes.JSONSlice[models.SocialLink](*input.SocialLinks)
	}
	if input.FeaturedSkills != nil {
		owner.FeaturedSkills = featured
	}

	if err := validation.Validate(owner); err != nil {
		return nil, err
	}
	if err := s.userRepo.Update(owner); err != nil {
		return nil, apperrors.Internal(err)
	}

	if err := s.ensureHomepage(owner); err != nil {
		return nil, err
	}

	s.cache.Flush()
	logger.Info("owner profile updated", "user_id", owner.ID)
	return owner, nil
}

// SetFeatured replaces the skills and projects shown on the landing page.
// Every ID must exist.
func (s *HomepageService) SetFeatured(input FeaturedInput) (*HomepageView, error) {
	skills, invalidSkills, err := s.lookupSkills(input.Skills)
	if err != nil {
		return nil, err
	}
	projects, invalidProjects, err := s.lookupProjects(input.FeaturedProjects)
	if err != nil {
		return nil, err
	}
	if invalid := append(invalidSkills, invalidProjects...); len(invalid) > 0 {
		return nil, apperrors.Validation("Invalid skill or project IDs", invalid...)
	}

	hp, err := s.repo.Get()
	switch {
	case err == nil:
	case errors.Is(err, repositories.ErrNotFound):
		owner, err := s.userRepo.GetOwner()
		if err != nil {
			return nil, notFoundOr(err, "No user account exists yet")
		}
		hp = &models.Homepage{UserID: owner.ID}
	default:
		return nil, apperrors.Internal(err)
	}

	hp.Skills = skills
	hp.FeaturedProjects = projects
	if err := s.repo.Save(hp); err != nil {
		return nil, apperrors.Internal(err)
	}

	s.cache.Flush()
	return s.Get()
}

func (s *HomepageService) ensureHomepage(owner *models.User) error {
	hp, err := s.repo.Get()
	switch {
	case err == nil:
		if hp.UserID == owner.ID {
			return nil
		}
		hp.UserID = owner.ID
	case errors.Is(err, repositories.ErrNotFound):
		hp = &models.Homepage{UserID: owner.ID}
	default:
		return apperrors.Internal(err)
	}
	if err := s.repo.Save(hp); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

// lookupSkills loads the skills for ids and reports the ids that matched nothing.
func (s *HomepageService) lookupSkills(ids []string) ([]models.Skill, []string, error) {
	ids = uniqueIDs(ids)
	skills, err := s.skillRepo.GetByIDs(validIDs(ids))
	if err != nil {
		return nil, nil, apperrors.Internal(err)
	}
	found := make(map[string]bool, len(skills))
	for _, sk := range skills {
		found[sk.ID] = true
	}
	return skills, missingIDs(ids, found), nil
}

func (s *HomepageService) lookupProjects(ids []string) ([]models.Project, []string, error) {
	ids = uniqueIDs(ids)
	projects, err := s.projectRepo.GetByIDs(validIDs(ids))
	if err != nil {
		return nil, nil, apperrors.Internal(err)
	}
	found := make(map[string]bool, len(projects))
	for _, p := range projects {
		found[p.ID] = true
	}
	return projects, missingIDs(ids, found), nil
}
