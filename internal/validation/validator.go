package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Errors is the field -> message map produced by a failed validation.
type Errors struct {
	Fields map[string]string
}

func (e *Errors) Error() string {
	return "Validation failed: " + strings.Join(e.Details(), "; ")
}

// Details returns "field: message" entries sorted by field name.
func (e *Errors) Details() []string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	details := make([]string, 0, len(keys))
	for _, k := range keys {
		details = append(details, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return details
}

// NewErrors builds an Errors value from a field map.
func NewErrors(fields map[string]string) *Errors {
	return &Errors{Fields: fields}
}

// Validator wraps go-playground/validator with portfolio specific rules and
// JSON field naming.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with every custom rule registered.
func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomRules(v)

	return &Validator{validate: v}
}

var std = New()

// Validate checks v against the shared validator.
func Validate(v interface{}) error {
	return std.Validate(v)
}

// Validate checks the struct and returns *Errors on rule violations.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		fields[fieldPath(fe)] = message(fe)
	}
	return &Errors{Fields: fields}
}

// fieldPath drops the root struct name so nested errors read like
// "socialLinks[0].url".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email_tld":
		return "Must be a valid email address"
	case "weburl":
		return "Must be a valid URL starting with http:// or https://"
	case "pagename":
		return "May contain only lowercase letters and hyphens"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("Must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "company_required":
		return "Company is required for job experiences"
	case "institution_required":
		return "Institution is required for education and certification experiences"
	case "not_future":
		return "Start date cannot be in the future"
	case "after_start":
		return "End date must be on or after the start date"
	default:
		return fmt.Sprintf("Invalid value (failed on '%s' tag)", fe.Tag())
	}
}
