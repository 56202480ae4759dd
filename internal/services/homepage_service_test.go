package services_test

import (
	"net/http"
	"testing"

	"portfolio/internal/apperrors"
	"portfolio/internal/models"
	"portfolio/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const ownerID = "0f8d2a44-9c1b-4e0a-b7a5-5d2c6b8e1f00"

func newHomepageService() (*services.HomepageService, *MockHomepageRepository, *MockUserRepository, *MockSkillRepository, *MockProjectRepository) {
	hpRepo := new(MockHomepageRepository)
	userRepo := new(MockUserRepository)
	skillRepo := new(MockSkillRepository)
	projectRepo := new(MockProjectRepository)
	return services.NewHomepageService(hpRepo, userRepo, skillRepo, projectRepo, nil), hpRepo, userRepo, skillRepo, projectRepo
}

func TestHomepageService_Get(t *testing.T) {
	service, hpRepo, _, _, _ := newHomepageService()

	hpRepo.On("Get").Return(&models.Homepage{
		User: models.User{ID: ownerID, Name: "Ana"},
		FeaturedProjects: []models.Project{{
			ID:               "p-1",
			Title:            "Task Manager",
			ShortDescription: "Collaborative task tracking.",
			LongDescription:  "Not part of the landing page.",
			ImageURL:         "https://placehold.co/1.png",
			GithubURL:        "https://github.com/example/tasks",
		}},
	}, nil).Once()

	view, err := service.Get()
	require.NoError(t, err)

	assert.Equal(t, "Ana", view.User.Name)
	assert.Empty(t, view.Skills)
	require.Len(t, view.FeaturedProjects, 1)
	assert.Equal(t, "Collaborative task tracking.", view.FeaturedProjects[0].Description)
	hpRepo.AssertExpectations(t)
}

func TestHomepageService_Get_NotConfigured(t *testing.T) {
	service, hpRepo, _, _, _ := newHomepageService()
	hpRepo.On("Get").Return(nil, wrappedNotFound()).Once()

	_, err := service.Get()
	assertStatus(t, err, http.StatusNotFound)
}

func TestHomepageService_UpdateProfile_MissingFields(t *testing.T) {
	service, _, userRepo, _, _ := newHomepageService()

	_, err := service.UpdateProfile(services.ProfileInput{Name: "Ana"})

	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, []string{"bio", "title"}, appErr.Details)
	userRepo.AssertNotCalled(t, "GetOwner")
}

func TestHomepageService_UpdateProfile_InvalidSkillIDs(t *testing.T) {
	service, _, userRepo, skillRepo, _ := newHomepageService()

	unknown := "3c3c3c3c-0000-4000-8000-000000000009"
	skillRepo.On("GetByIDs", []string{goSkillID, unknown}).
		Return([]models.Skill{{ID: goSkillID, Name: "Go"}}, nil).Once()

	ids := []string{goSkillID, unknown, "not-a-uuid"}
	_, err := service.UpdateProfile(services.ProfileInput{
		Name:           "Ana",
		Title:          "Developer",
		Bio:            testBio,
		FeaturedSkills: &ids,
	})

	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.ElementsMatch(t, []string{unknown, "not-a-uuid"}, appErr.Details)
	userRepo.AssertNotCalled(t, "Update", mock.Anything)
	skillRepo.AssertExpectations(t)
}

func TestHomepageService_UpdateProfile_CreatesHomepage(t *testing.T) {
	service, hpRepo, userRepo, skillRepo, _ := newHomepageService()

	owner := &models.User{ID: ownerID, Name: "Old", Email: "owner@example.com", Role: models.RoleAdmin, Title: "Old", Bio: testBio}
	ids := []string{goSkillID}

	skillRepo.On("GetByIDs", ids).Return([]models.Skill{{ID: goSkillID, Name: "Go"}}, nil).Once()
	userRepo.On("GetOwner").Return(owner, nil).Once()
	userRepo.On("Update", owner).Return(nil).Once()
	hpRepo.On("Get").Return(nil, wrappedNotFound()).Once()
	hpRepo.On("Save", mock.MatchedBy(func(hp *models.Homepage) bool { return hp.UserID == ownerID })).Return(nil).Once()

	user, err := service.UpdateProfile(services.ProfileInput{
		Name:           "Ana Lopez",
		Title:          "Full-stack Developer",
		Bio:            testBio,
		FeaturedSkills: &ids,
	})
	require.NoError(t, err)

	assert.Equal(t, "Ana Lopez", user.Name)
	require.Len(t, user.FeaturedSkills, 1)
	assert.Equal(t, "Go", user.FeaturedSkills[0].Name)
	hpRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestHomepageService_SetFeatured_RejectsUnknownProject(t *testing.T) {
	service, hpRepo, _, skillRepo, projectRepo := newHomepageService()

	unknown := "4d4d4d4d-0000-4000-8000-000000000010"
	skillRepo.On("GetByIDs", []string{}).Return([]models.Skill{}, nil).Once()
	projectRepo.On("GetByIDs", []string{unknown}).Return([]models.Project{}, nil).Once()

	_, err := service.SetFeatured(services.FeaturedInput{FeaturedProjects: []string{unknown}})
	assertStatus(t, err, http.StatusBadRequest)
	hpRepo.AssertNotCalled(t, "Save", mock.Anything)
}
