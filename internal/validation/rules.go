package validation

import (
	"log"
	"regexp"
	"strings"
	"time"

	"portfolio/internal/models"

	"github.com/go-playground/validator/v10"
)

var (
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	webURLPattern   = regexp.MustCompile(`^https?://.+\..+$`)
	pageNamePattern = regexp.MustCompile(`^[a-z-]+$`)
)

func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("email_tld", matches(emailPattern))
	mustRegister("weburl", matches(webURLPattern))
	mustRegister("pagename", matches(pageNamePattern))

	v.RegisterStructValidation(experienceRules, models.Experience{})
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// IsEmail reports whether s is an address with a domain and TLD.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsWebURL reports whether s is an http(s) URL with a dotted host.
func IsWebURL(s string) bool {
	return webURLPattern.MatchString(s)
}

// experienceRules covers the cross-field constraints of an Experience entry.
func experienceRules(sl validator.StructLevel) {
	exp := sl.Current().Interface().(models.Experience)

	switch exp.Type {
	case models.ExperienceJob:
		if strings.TrimSpace(exp.Company) == "" {
			sl.ReportError(exp.Company, "company", "Company", "company_required", "")
		}
	case models.ExperienceEducation, models.ExperienceCertification:
		if strings.TrimSpace(exp.Institution) == "" {
			sl.ReportError(exp.Institution, "institution", "Institution", "institution_required", "")
		}
	}

	if exp.StartDate.After(time.Now()) {
		sl.ReportError(exp.StartDate, "startDate", "StartDate", "not_future", "")
	}
	if exp.EndDate != nil && exp.EndDate.Before(exp.StartDate) {
		sl.ReportError(exp.EndDate, "endDate", "EndDate", "after_start", "")
	}
}
