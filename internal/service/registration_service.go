package service

import (
	"context"

	"github.com/qlf-seminar/backend/internal/model"
)

// RegistrationInput is the registration form as submitted by an attendee.
type RegistrationInput struct {
	FullName    string `json:"fullName" label:"Full name" lenlabel:"Name" validate:"required,min=2,max=50"`
	Email       string `json:"email" label:"Email" validate:"required,seminar_email"`
	Phone       string `json:"phone" label:"Phone number" validate:"required,phone"`
	Institution string `json:"institution" label:"Institution"`
	Address     string `json:"address" label:"Address" validate:"required"`
	City        string `json:"city" label:"City" validate:"required"`
	State       string `json:"state" label:"State/Province" validate:"required"`
	ZipCode     string `json:"zipCode" label:"Postal/Zip code" validate:"required,zipcode"`
}

// RegistrationService handles seminar signups.
type RegistrationService interface {
	// Register normalises and validates in, rejects a reused email and stores
	// the registration. Errors: *MissingFieldsError, *validation.Error,
	// ErrEmailTaken, or a repository error.
	Register(ctx context.Context, in RegistrationInput) (*model.Registration, error)

	// List returns every registration, newest first.
	List(ctx context.Context) ([]*model.Registration, error)
}
