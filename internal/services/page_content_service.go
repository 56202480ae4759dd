package services

import (
	"errors"
	"strings"

	"portfolio/internal/apperrors"
	"portfolio/internal/logger"
	"portfolio/internal/models"
	"portfolio/internal/repositories"
	"portfolio/internal/validation"

	"gorm.io/datatypes"
)

// PageContentInput is the upsert payload of a content page.
type PageContentInput struct {
	Title        string            `json:"title"`
	Introduction *string           `json:"introduction"`
	Sections     *[]models.Section `json:"sections"`
}

// PageContentService handles the editable static pages.
type PageContentService struct {
	repo repositories.PageContentRepository
}

// NewPageContentService creates a new PageContentService.
func NewPageContentService(repo repositories.PageContentRepository) *PageContentService {
	return &PageContentService{repo: repo}
}

// DefaultPageContent is what an unknown page starts out as.
func DefaultPageContent(pageName string) *models.PageContent {
	return &models.PageContent{
		PageName:     pageName,
		Title:        "Default Title",
		Introduction: "This is the default introduction paragraph for this page.",
		Sections: datatypes.JSONSlice[models.Section]{
			{SectionTitle: "Default Section", Text: "Content of the first default section."},
		},
	}
}

// Get returns the page, creating it with default content first if needed.
func (s *PageContentService) Get(pageName string) (*models.PageContent, error) {
	pageName, err := normalizePageName(pageName)
	if err != nil {
		return nil, err
	}

	page, err := s.repo.GetByPageName(pageName)
	if err == nil {
		return page, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.Internal(err)
	}

	page = DefaultPageContent(pageName)
	if err := s.repo.Save(page); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			// Created by a concurrent first read, use the stored one.
			return s.stored(pageName)
		}
		return nil, apperrors.Internal(err)
	}
	logger.Info("default page content created", "page", pageName)
	return page, nil
}

func (s *PageContentService) stored(pageName string) (*models.PageContent, error) {
	page, err := s.repo.GetByPageName(pageName)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return page, nil
}

// Upsert updates the page or creates it if it does not exist yet.
func (s *PageContentService) Upsert(pageName string, input PageContentInput) (*models.PageContent, error) {
	pageName, err := normalizePageName(pageName)
	if err != nil {
		return nil, err
	}

	page, err := s.repo.GetByPageName(pageName)
	switch {
	case err == nil:
	case errors.Is(err, repositories.ErrNotFound):
		page = &models.PageContent{PageName: pageName}
	default:
		return nil, apperrors.Internal(err)
	}

	if v := strings.TrimSpace(input.Title); v != "" {
		page.Title = v
	}
	if input.Introduction != nil {
		page.Introduction = strings.TrimSpace(*input.Introduction)
	}
	if input.Sections != nil {
		page.Sections = datatypes.JSONSlice[models.Section](*input.Sections)
	}

	if err := validation.Validate(page); err != nil {
		return nil, err
	}
	if err := s.repo.Save(page); err != nil {
		return nil, apperrors.Internal(err)
	}
	return page, nil
}

func normalizePageName(pageName string) (string, error) {
	pageName = strings.ToLower(strings.TrimSpace(pageName))
	if pageName == "" || strings.Trim(pageName, "abcdefghijklmnopqrstuvwxyz-") != "" {
		return "", validation.NewErrors(map[string]string{
			"pageName": "May contain only lowercase letters and hyphens",
		})
	}
	return pageName, nil
}
