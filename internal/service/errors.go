package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/qlf-seminar/backend/internal/repository"
)

// ErrEmailTaken is returned when a registration reuses an email address.
var ErrEmailTaken = errors.New("email already registered")

// ErrReplyRequired is returned when a reply has no text.
var ErrReplyRequired = errors.New("reply is required")

// MissingFieldsError lists required input fields that were absent or blank.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// requireID rejects identifiers that cannot exist in the store, so lookups
// with a malformed id behave exactly like lookups with an unknown one.
func requireID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return repository.ErrNotFound
	}
	return nil
}

// missing returns the names of blank values, keeping the given order.
func missing(fields []namedValue) []string {
	var out []string
	for _, f := range fields {
		if f.value == "" {
			out = append(out, f.name)
		}
	}
	return out
}

type namedValue struct {
	name  string
	value string
}
