package services_test

import (
	"fmt"
	"testing"

	"portfolio/internal/models"
	"portfolio/internal/repositories"
	"portfolio/internal/services"
	"portfolio/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPageContentService(t *testing.T) *services.PageContentService {
	return services.NewPageContentService(repositories.NewGORMPageContentRepository(openTestDB(t)))
}

func TestPageContentService_GetCreatesDefault(t *testing.T) {
	service := newPageContentService(t)

	page, err := service.Get("About")
	require.NoError(t, err)
	assert.Equal(t, "about", page.PageName)
	assert.Equal(t, services.DefaultPageContent("about").Title, page.Title)
	require.Len(t, page.Sections, 1)

	again, err := service.Get("about")
	require.NoError(t, err)
	assert.Equal(t, page.ID, again.ID)
}

func TestPageContentService_InvalidPageName(t *testing.T) {
	service := newPageContentService(t)

	_, err := service.Get("about_me")
	var verr *validation.Errors
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "pageName")
}

func TestPageContentService_UpsertCreatesThenUpdates(t *testing.T) {
	service := newPageContentService(t)

	intro := "Hello"
	page, err := service.Upsert("contact", services.PageContentInput{Title: "Contact", Introduction: &intro})
	require.NoError(t, err)
	assert.Equal(t, "Contact", page.Title)
	assert.Equal(t, "Hello", page.Introduction)

	sections := []models.Section{{SectionTitle: "Email", Text: "Write to me any time."}}
	updated, err := service.Upsert("contact", services.PageContentInput{Sections: &sections})
	require.NoError(t, err)
	assert.Equal(t, page.ID, updated.ID)
	assert.Equal(t, "Contact", updated.Title)
	assert.Equal(t, "Hello", updated.Introduction)
	require.Len(t, updated.Sections, 1)
}

func TestPageContentService_UpsertValidatesSections(t *testing.T) {
	service := newPageContentService(t)

	sections := []models.Section{{SectionTitle: "Gallery", Text: "Pictures", Image: "not a url"}}
	_, err := service.Upsert("gallery", services.PageContentInput{Title: "Gallery", Sections: &sections})
	var verr *validation.Errors
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "sections[0].image")

	_, err = service.Upsert("gallery", services.PageContentInput{})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "title")
}

func TestPageContentService_Get_ConcurrentDefaultCreation(t *testing.T) {
	repo := new(MockPageContentRepository)
	service := services.NewPageContentService(repo)
	stored := &models.PageContent{ID: "page-1", PageName: "about", Title: "About"}

	repo.On("GetByPageName", "about").Return(nil, wrappedNotFound()).Once()
	repo.On("Save", mock.AnythingOfType("*models.PageContent")).
		Return(fmt.Errorf("page about already exists: %w", repositories.ErrDuplicate)).Once()
	repo.On("GetByPageName", "about").Return(stored, nil).Once()

	page, err := service.Get("about")
	require.NoError(t, err)
	assert.Equal(t, "page-1", page.ID)
	repo.AssertExpectations(t)
}
