package validation_test

import (
	"errors"
	"testing"
	"time"

	"portfolio/internal/models"
	"portfolio/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *validation.Errors
	require.True(t, errors.As(err, &verr), "expected *validation.Errors, got %T: %v", err, err)
	return verr.Fields
}

func TestIsEmail(t *testing.T) {
	assert.True(t, validation.IsEmail("ana@example.com"))
	assert.True(t, validation.IsEmail("ana.lopez+jobs@mail.example.co"))
	assert.False(t, validation.IsEmail("foo@bar"))
	assert.False(t, validation.IsEmail("not an email"))
	assert.False(t, validation.IsEmail("@example.com"))
}

func TestIsWebURL(t *testing.T) {
	assert.True(t, validation.IsWebURL("https://github.com/example"))
	assert.True(t, validation.IsWebURL("http://example.com"))
	assert.False(t, validation.IsWebURL("ftp://example.com"))
	assert.False(t, validation.IsWebURL("https://localhost"))
	assert.False(t, validation.IsWebURL("example.com"))
}

func TestValidate_UsesJSONFieldNames(t *testing.T) {
	err := validation.Validate(&models.Skill{Name: "G", Level: "Guru"})
	fields := fieldErrors(t, err)

	assert.Equal(t, "Must be at least 2 characters long", fields["name"])
	assert.Equal(t, "This field is required", fields["category"])
	assert.Equal(t, "Must be one of: Basic, Intermediate, Advanced, Expert", fields["level"])
}

func TestValidate_NestedPaths(t *testing.T) {
	page := &models.PageContent{
		PageName: "About Me",
		Title:    "About",
		Sections: []models.Section{{SectionTitle: "Intro", Text: "Hi", Image: "not-a-url"}},
	}
	fields := fieldErrors(t, validation.Validate(page))

	assert.Contains(t, fields, "pageName")
	assert.Contains(t, fields, "sections[0].image")
}

func TestValidate_ExperienceRules(t *testing.T) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	before := start.AddDate(0, -1, 0)

	job := &models.Experience{Type: models.ExperienceJob, Title: "Engineer", StartDate: start, EndDate: &before}
	fields := fieldErrors(t, validation.Validate(job))
	assert.Equal(t, "Company is required for job experiences", fields["company"])
	assert.Equal(t, "End date must be on or after the start date", fields["endDate"])

	course := &models.Experience{Type: models.ExperienceEducation, Title: "BSc", StartDate: time.Now().Add(48 * time.Hour)}
	fields = fieldErrors(t, validation.Validate(course))
	assert.Contains(t, fields, "institution")
	assert.Contains(t, fields, "startDate")

	ongoing := &models.Experience{Type: models.ExperienceJob, Title: "Engineer", Company: "Acme", StartDate: start}
	assert.NoError(t, validation.Validate(ongoing))
}

func TestErrors_Details(t *testing.T) {
	err := validation.NewErrors(map[string]string{"title": "required", "bio": "too short"})

	assert.Equal(t, []string{"bio: too short", "title: required"}, err.Details())
	assert.Equal(t, "Validation failed: bio: too short; title: required", err.Error())
}
