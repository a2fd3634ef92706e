package service

import (
	"context"

	"github.com/qlf-seminar/backend/internal/model"
)

// ContestantInput is the admin form for a contestant profile.
type ContestantInput struct {
	Name        string `json:"name" label:"Name" validate:"required,min=2,max=100"`
	Institution string `json:"institution" label:"Institution" validate:"required,max=200"`
	Research    string `json:"research" label:"Research topic" validate:"required,max=300"`
	ImageURL    string `json:"imageUrl" label:"Image" validate:"omitempty,url|startswith=/"`
}

// ContestantService manages the contestants shown on the public site.
type ContestantService interface {
	List(ctx context.Context) ([]*model.Contestant, error)
	Create(ctx context.Context, in ContestantInput) (*model.Contestant, error)
	Update(ctx context.Context, id string, in ContestantInput) (*model.Contestant, error)
	Delete(ctx context.Context, id string) error
}
