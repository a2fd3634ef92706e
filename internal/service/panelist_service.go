package service

import (
	"context"
	"io"

	"github.com/qlf-seminar/backend/internal/model"
)

// PanelistInput is the admin form for a panelist profile.
type PanelistInput struct {
	Title       string `json:"title" label:"Title" validate:"required,max=100"`
	Name        string `json:"name" label:"Name" validate:"required,min=2,max=100"`
	Description string `json:"description" label:"Description" validate:"max=500"`
	ImageURL    string `json:"imageUrl" label:"Image" validate:"omitempty,url|startswith=/"`
}

// Photo is an uploaded panelist photo. Ext includes the leading dot.
type Photo struct {
	Data        io.Reader
	ContentType string
	Ext         string
}

// PanelistService manages the panelists shown on the public site.
type PanelistService interface {
	List(ctx context.Context) ([]*model.Panelist, error)
	// Create stores the panelist; when photo is non-nil it is uploaded and
	// replaces in.ImageURL.
	Create(ctx context.Context, in PanelistInput, photo *Photo) (*model.Panelist, error)
	// Delete removes the panelist and any uploaded photo.
	Delete(ctx context.Context, id string) error
}
