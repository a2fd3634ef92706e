package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/qlf-seminar/backend/internal/model"
	"github.com/qlf-seminar/backend/internal/repository"
	"github.com/qlf-seminar/backend/internal/validation"
)

type registrationServiceImpl struct {
	repo     repository.RegistrationRepository
	validate *validation.Validator
}

// NewRegistrationService creates a RegistrationService backed by the given repository.
func NewRegistrationService(repo repository.RegistrationRepository, v *validation.Validator) RegistrationService {
	return &registrationServiceImpl{repo: repo, validate: v}
}

func (in *RegistrationInput) normalize() {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	in.Institution = strings.TrimSpace(in.Institution)
	in.Address = strings.TrimSpace(in.Address)
	in.City = strings.TrimSpace(in.City)
	in.State = strings.TrimSpace(in.State)
	in.ZipCode = strings.TrimSpace(in.ZipCode)
}

func (in *RegistrationInput) missingFields() []string {
	return missing([]namedValue{
		{"fullName", in.FullName},
		{"email", in.Email},
		{"phone", in.Phone},
		{"address", in.Address},
		{"city", in.City},
		{"state", in.State},
		{"zipCode", in.ZipCode},
	})
}

func (s *registrationServiceImpl) Register(ctx context.Context, in RegistrationInput) (*model.Registration, error) {
	in.normalize()
	if names := in.missingFields(); len(names) > 0 {
		return nil, &MissingFieldsError{Fields: names}
	}
	if err := s.validate.Struct(&in); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByEmail(ctx, in.Email)
	switch {
	case err == nil && existing != nil:
		return nil, ErrEmailTaken
	case err != nil && !errors.Is(err, repository.ErrNotFound):
		return nil, fmt.Errorf("find registration by email: %w", err)
	}

	reg := &model.Registration{
		FullName:    in.FullName,
		Email:       in.Email,
		Phone:       in.Phone,
		Institution: in.Institution,
		Address:     in.Address,
		City:        in.City,
		State:       in.State,
		ZipCode:     in.ZipCode,
	}
	if err := s.repo.Create(ctx, reg); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create registration: %w", err)
	}
	return reg, nil
}

func (s *registrationServiceImpl) List(ctx context.Context) ([]*model.Registration, error) {
	list, err := s.repo.List(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return list, nil
}
