// Package validation checks portfolio records before they reach storage.
// Every create, replace, update and seeded record goes through the same
// Validator, and only the first violated constraint is reported.
package validation

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/GoSim-25-26J-441/terminal-portfolio-backend/internal/portfolio/domain"
)

var yearMonthRe = regexp.MustCompile(`^\d{4}-\d{2}$`)

// Validator wraps a configured go-playground validator. It is safe for
// concurrent use.
type Validator struct {
	v *validator.Validate
}

// New builds a Validator with the portfolio-specific rules registered.
func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("httpurl", validateHTTPURL)
	_ = v.RegisterValidation("yearmonth", validateYearMonth)
	_ = v.RegisterValidation("nonul", validateNoNUL)

	return &Validator{v: v}
}

func validateHTTPURL(fl validator.FieldLevel) bool {
	u, err := url.Parse(fl.Field().String())
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func validateYearMonth(fl validator.FieldLevel) bool {
	return yearMonthRe.MatchString(fl.Field().String())
}

// validateNoNUL rejects NUL anywhere in a string, including keys and values
// nested inside free-form section content. PostgreSQL refuses NUL in TEXT
// and JSONB, so both stores must see it rejected up front.
func validateNoNUL(fl validator.FieldLevel) bool {
	return !containsNUL(fl.Field())
}

func containsNUL(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Interface, reflect.Ptr:
		if v.IsNil() {
			return false
		}
		return containsNUL(v.Elem())
	case reflect.String:
		return strings.ContainsRune(v.String(), 0)
	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			if containsNUL(iter.Key()) || containsNUL(iter.Value()) {
				return true
			}
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if containsNUL(v.Index(i)) {
				return true
			}
		}
	}
	return false
}

// Section validates a full section record.
func (val *Validator) Section(s *domain.Section) error {
	return val.check(s)
}

// SectionUpdate validates a partial section update.
func (val *Validator) SectionUpdate(u *domain.SectionUpdate) error {
	return val.check(u)
}

// Skill validates a skill.
func (val *Validator) Skill(s *domain.Skill) error {
	return val.check(s)
}

// Project validates a project.
func (val *Validator) Project(p *domain.Project) error {
	return val.check(p)
}

// Experience validates an experience entry and normalizes a nil
// technologies list to an empty one.
func (val *Validator) Experience(e *domain.Experience) error {
	if err := val.check(e); err != nil {
		return err
	}
	if e.Technologies == nil {
		e.Technologies = []string{}
	}
	return nil
}

func (val *Validator) check(rec interface{}) error {
	err := val.v.Struct(rec)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return toValidationError(verrs[0])
	}
	return &domain.ValidationError{Rule: "invalid", Message: err.Error()}
}

func toValidationError(fe validator.FieldError) *domain.ValidationError {
	return &domain.ValidationError{
		Field:   fe.Field(),
		Rule:    fe.Tag(),
		Message: describe(fe),
	}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "httpurl":
		return "must be a valid http(s) URL"
	case "yearmonth":
		return "must match YYYY-MM"
	case "nonul":
		return "must not contain NUL characters"
	case "min", "max":
		return describeBound(fe)
	default:
		return fmt.Sprintf("failed %q constraint", fe.Tag())
	}
}

func describeBound(fe validator.FieldError) string {
	word := "at least"
	if fe.Tag() == "max" {
		word = "at most"
	}

	switch fe.Kind() {
	case reflect.String:
		return fmt.Sprintf("must be %s %s characters", word, fe.Param())
	case reflect.Slice, reflect.Array:
		return fmt.Sprintf("must contain %s %s items", word, fe.Param())
	case reflect.Map:
		if fe.Tag() == "min" && fe.Param() == "1" {
			return "cannot be empty"
		}
		return fmt.Sprintf("must contain %s %s keys", word, fe.Param())
	default:
		return fmt.Sprintf("must be %s %s", word, fe.Param())
	}
}
