// Package validation wraps go-playground/validator with the field rules and
// human-readable messages used across the seminar API.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)
	phonePattern = regexp.MustCompile(`^[\d\s\-\(\)\+]+$`)
	zipPattern   = regexp.MustCompile(`^[A-Za-z\d\s-]+$`)
)

// FieldError describes one rejected field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is returned by Validator.Struct when one or more fields are rejected.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	return "validation failed: " + strings.Join(e.Messages(), "; ")
}

// Messages returns the per-field messages in struct field order.
func (e *Error) Messages() []string {
	out := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		out = append(out, f.Message)
	}
	return out
}

// Validator checks request structs tagged with `validate` rules.
// Field names in errors are the struct's json names; messages use the `label`
// tag, or `lenlabel` for min/max rules when set.
type Validator struct {
	v *validator.Validate
}

// New returns a Validator with the seminar_email, phone and zipcode rules registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	mustRegister(v, "seminar_email", emailPattern)
	mustRegister(v, "phone", phonePattern)
	mustRegister(v, "zipcode", zipPattern)
	return &Validator{v: v}
}

func mustRegister(v *validator.Validate, tag string, re *regexp.Regexp) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(fmt.Sprintf("validation: register %s: %v", tag, err))
	}
}

// Struct validates s and returns *Error on rule violations. Other errors
// (for example a non-struct argument) are returned unchanged.
func (val *Validator) Struct(s any) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	t := reflect.TypeOf(s)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	out := &Error{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fe.Field(),
			Message: message(fe, label(t, fe, fe.Tag())),
		})
	}
	return out
}

// label names the field in a message. Length rules prefer the `lenlabel`
// tag, so "Full name is required" can pair with "Name cannot exceed 50 characters".
func label(t reflect.Type, fe validator.FieldError, rule string) string {
	f, ok := t.FieldByName(fe.StructField())
	if !ok {
		return fe.Field()
	}
	if rule == "min" || rule == "max" {
		if l := f.Tag.Get("lenlabel"); l != "" {
			return l
		}
	}
	if l := f.Tag.Get("label"); l != "" {
		return l
	}
	return fe.Field()
}

func message(fe validator.FieldError, label string) string {
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s cannot exceed %s characters", label, fe.Param())
	case "seminar_email":
		return "Please enter a valid email"
	case "phone":
		return "Please enter a valid phone number"
	case "zipcode":
		return "Please enter a valid postal/zip code"
	case "url|startswith=/", "url":
		return fmt.Sprintf("%s must be a URL or a site path", label)
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}
