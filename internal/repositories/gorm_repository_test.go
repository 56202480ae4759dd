package repositories_test

import (
	"testing"

	"portfolio/internal/database"
	"portfolio/internal/models"
	"portfolio/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenDSN("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared", gormlogger.Silent)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func createSkill(t *testing.T, repo *repositories.GORMSkillRepository, name string, order int) models.Skill {
	t.Helper()
	skill := models.Skill{Name: name, Category: "Backend", Level: models.LevelAdvanced, Order: order}
	require.NoError(t, repo.Create(&skill))
	return skill
}

func newProject(title string, order int, featured bool, techs ...models.Skill) *models.Project {
	return &models.Project{
		Title:            title,
		ShortDescription: "Short description of " + title,
		LongDescription:  "A much longer description of the project " + title + " with enough words to pass.",
		ImageURL:         "https://example.com/" + title + ".png",
		GithubURL:        "https://github.com/example/repo",
		Technologies:     techs,
		Order:            order,
		IsFeatured:       featured,
	}
}

func TestSkillRepository_CreateAssignsIDAndRejectsDuplicateName(t *testing.T) {
	repo := repositories.NewGORMSkillRepository(openDB(t))

	skill := createSkill(t, repo, "Go", 1)
	assert.NotEmpty(t, skill.ID)

	err := repo.Create(&models.Skill{Name: "Go", Category: "Backend", Level: models.LevelBasic})
	assert.ErrorIs(t, err, repositories.ErrDuplicate)
}

func TestSkillRepository_GetAllOrdersByOrderThenName(t *testing.T) {
	repo := repositories.NewGORMSkillRepository(openDB(t))
	createSkill(t, repo, "Rust", 2)
	createSkill(t, repo, "Go", 2)
	createSkill(t, repo, "SQL", 1)

	skills, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, skills, 3)
	assert.Equal(t, []string{"SQL", "Go", "Rust"}, []string{skills[0].Name, skills[1].Name, skills[2].Name})
}

func TestSkillRepository_GetByIDsIgnoresUnknown(t *testing.T) {
	repo := repositories.NewGORMSkillRepository(openDB(t))
	goSkill := createSkill(t, repo, "Go", 1)

	skills, err := repo.GetByIDs([]string{goSkill.ID, "6f1c2a4e-8b7d-4e3f-9a2b-1c0d9e8f7a6b"})
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, goSkill.ID, skills[0].ID)

	skills, err = repo.GetByIDs(nil)
	require.NoError(t, err)
	assert.NotNil(t, skills)
	assert.Empty(t, skills)
}

func TestProjectRepository_TechnologiesRoundTrip(t *testing.T) {
	db := openDB(t)
	skills := repositories.NewGORMSkillRepository(db)
	projects := repositories.NewGORMProjectRepository(db)

	goSkill := createSkill(t, skills, "Go", 1)
	sqlSkill := createSkill(t, skills, "SQL", 2)

	project := newProject("api", 1, true, goSkill, sqlSkill)
	require.NoError(t, projects.Create(project))

	got, err := projects.GetByID(project.ID)
	require.NoError(t, err)
	require.Len(t, got.Technologies, 2)
	assert.Equal(t, "Go", got.Technologies[0].Name)

	got.Technologies = []models.Skill{sqlSkill}
	require.NoError(t, projects.Update(got))

	got, err = projects.GetByID(project.ID)
	require.NoError(t, err)
	require.Len(t, got.Technologies, 1)
	assert.Equal(t, "SQL", got.Technologies[0].Name)

	// Linking never rewrites the skill rows.
	stored, err := skills.GetByID(goSkill.ID)
	require.NoError(t, err)
	assert.Equal(t, "Go", stored.Name)
}

func TestProjectRepository_FeaturedAndDelete(t *testing.T) {
	projects := repositories.NewGORMProjectRepository(openDB(t))
	featured := newProject("featured", 2, true)
	plain := newProject("plain", 1, false)
	require.NoError(t, projects.Create(featured))
	require.NoError(t, projects.Create(plain))

	list, err := projects.GetFeatured()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, featured.ID, list[0].ID)

	all, err := projects.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, plain.ID, all[0].ID)

	require.NoError(t, projects.Delete(plain.ID))
	assert.ErrorIs(t, projects.Delete(plain.ID), repositories.ErrNotFound)
	_, err = projects.GetByID(plain.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestSkillRepository_DeleteClearsReferences(t *testing.T) {
	db := openDB(t)
	skills := repositories.NewGORMSkillRepository(db)
	projects := repositories.NewGORMProjectRepository(db)

	goSkill := createSkill(t, skills, "Go", 1)
	project := newProject("api", 1, false, goSkill)
	require.NoError(t, projects.Create(project))

	require.NoError(t, skills.Delete(goSkill.ID))

	got, err := projects.GetByID(project.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Technologies)
	assert.ErrorIs(t, skills.Delete(goSkill.ID), repositories.ErrNotFound)
}

func TestPageContentRepository_SaveUpserts(t *testing.T) {
	repo := repositories.NewGORMPageContentRepository(openDB(t))

	first := &models.PageContent{PageName: "about", Title: "About"}
	require.NoError(t, repo.Save(first))

	second := &models.PageContent{
		PageName: "about",
		Title:    "About Me",
		Sections: datatypes.JSONSlice[models.Section]{{SectionTitle: "Story", Text: "Once upon a time"}},
	}
	require.NoError(t, repo.Save(second))
	assert.Equal(t, first.ID, second.ID)

	n, err := repo.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	got, err := repo.GetByPageName("about")
	require.NoError(t, err)
	assert.Equal(t, "About Me", got.Title)
	require.Len(t, got.Sections, 1)
	assert.Equal(t, "Story", got.Sections[0].SectionTitle)

	_, err = repo.GetByPageName("missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestUserRepository_OwnerAndFeaturedSkills(t *testing.T) {
	db := openDB(t)
	skills := repositories.NewGORMSkillRepository(db)
	users := repositories.NewGORMUserRepository(db)

	goSkill := createSkill(t, skills, "Go", 1)

	_, err := users.GetOwner()
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	owner := &models.User{Name: "Owner", Email: "owner@example.com", Password: "hash", Role: models.RoleAdmin}
	require.NoError(t, users.Create(owner))
	require.NoError(t, users.Create(&models.User{Name: "Editor", Email: "editor@example.com", Password: "hash", Role: models.RoleEditor}))

	err = users.Create(&models.User{Name: "Dup", Email: "owner@example.com", Password: "hash", Role: models.RoleEditor})
	assert.ErrorIs(t, err, repositories.ErrDuplicate)

	owner.FeaturedSkills = []models.Skill{goSkill}
	require.NoError(t, users.Update(owner))

	got, err := users.GetOwner()
	require.NoError(t, err)
	assert.Equal(t, owner.ID, got.ID)
	require.Len(t, got.FeaturedSkills, 1)
	assert.Equal(t, "Go", got.FeaturedSkills[0].Name)
}

func TestHomepageRepository_SaveAndGet(t *testing.T) {
	db := openDB(t)
	skills := repositories.NewGORMSkillRepository(db)
	users := repositories.NewGORMUserRepository(db)
	projects := repositories.NewGORMProjectRepository(db)
	homepages := repositories.NewGORMHomepageRepository(db)

	_, err := homepages.Get()
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	goSkill := createSkill(t, skills, "Go", 1)
	owner := &models.User{Name: "Owner", Email: "owner@example.com", Password: "hash", Role: models.RoleAdmin}
	require.NoError(t, users.Create(owner))
	project := newProject("api", 1, true)
	require.NoError(t, projects.Create(project))

	hp := &models.Homepage{
		UserID:           owner.ID,
		Skills:           []models.Skill{goSkill},
		FeaturedProjects: []models.Project{*project},
	}
	require.NoError(t, homepages.Save(hp))

	got, err := homepages.Get()
	require.NoError(t, err)
	assert.Equal(t, "Owner", got.User.Name)
	require.Len(t, got.Skills, 1)
	require.Len(t, got.FeaturedProjects, 1)

	got.FeaturedProjects = nil
	require.NoError(t, homepages.Save(got))

	got, err = homepages.Get()
	require.NoError(t, err)
	assert.Empty(t, got.FeaturedProjects)

	n, err := homepages.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}
