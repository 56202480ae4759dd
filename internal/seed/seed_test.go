package seed_test

import (
	"os"
	"testing"
	"time"

	"portfolio/internal/database"
	"portfolio/internal/logger"
	"portfolio/internal/models"
	"portfolio/internal/repositories"
	"portfolio/internal/seed"
	"portfolio/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	logger.Discard()
	os.Exit(m.Run())
}

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

func TestSeeder_Run_EmptyDatabase(t *testing.T) {
	db := openDB(t)

	res, err := seed.New(db).Run(false)
	require.NoError(t, err)
	assert.False(t, res.Skipped)
	assert.Equal(t, 17, res.Skills)
	assert.Equal(t, 3, res.Projects)
	assert.Equal(t, 4, res.Experiences)
	assert.Equal(t, 2, res.Pages)

	owner, err := repositories.NewGORMUserRepository(db).GetOwner()
	require.NoError(t, err)
	assert.Equal(t, seed.AdminEmail, owner.Email)
	assert.Equal(t, models.RoleAdmin, owner.Role)
	require.Len(t, owner.FeaturedSkills, 6)
	assert.Equal(t, "JavaScript", owner.FeaturedSkills[0].Name)

	hp, err := repositories.NewGORMHomepageRepository(db).Get()
	require.NoError(t, err)
	assert.Equal(t, owner.ID, hp.UserID)
	assert.Len(t, hp.Skills, 6)
	require.Len(t, hp.FeaturedProjects, 2)
	assert.Equal(t, "E-commerce Platform", hp.FeaturedProjects[0].Title)

	about, err := repositories.NewGORMPageContentRepository(db).GetByPageName("about")
	require.NoError(t, err)
	assert.Len(t, about.Sections, 2)
}

func TestSeeder_Run_AdminCanLogIn(t *testing.T) {
	db := openDB(t)
	_, err := seed.New(db).Run(false)
	require.NoError(t, err)

	auth := services.NewAuthService(repositories.NewGORMUserRepository(db), services.TokenConfig{
		AccessSecret:  "access-secret",
		AccessTTL:     time.Hour,
		RefreshSecret: "refresh-secret",
		RefreshTTL:    24 * time.Hour,
	})
	user, tokens, err := auth.Login(seed.AdminEmail, seed.AdminPassword)
	require.NoError(t, err)
	assert.Equal(t, seed.AdminEmail, user.Email)
	assert.NotEmpty(t, tokens.AccessToken)
}

func TestSeeder_Run_SkipsPopulatedDatabase(t *testing.T) {
	db := openDB(t)
	require.NoError(t, repositories.NewGORMSkillRepository(db).Create(&models.Skill{
		Name: "Go", Category: "Backend", Level: models.LevelExpert,
	}))

	res, err := seed.New(db).Run(false)
	require.NoError(t, err)
	assert.True(t, res.Skipped)

	n, err := repositories.NewGORMUserRepository(db).Count()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSeeder_Run_ForceReplacesContent(t *testing.T) {
	db := openDB(t)
	skills := repositories.NewGORMSkillRepository(db)
	require.NoError(t, skills.Create(&models.Skill{
		Name: "Go", Category: "Backend", Level: models.LevelExpert,
	}))

	res, err := seed.New(db).Run(true)
	require.NoError(t, err)
	assert.False(t, res.Skipped)

	_, err = skills.GetByName("Go")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	n, err := skills.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 17, n)

	// A second forced run must not trip over unique names.
	_, err = seed.New(db).Run(true)
	require.NoError(t, err)
}
