package service

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/qlf-seminar/backend/internal/model"
	"github.com/qlf-seminar/backend/internal/repository"
	"github.com/qlf-seminar/backend/internal/storage"
	"github.com/qlf-seminar/backend/internal/validation"
)

type panelistService struct {
	repo     repository.PanelistRepository
	store    storage.Storage
	validate *validation.Validator
}

// NewPanelistService creates a PanelistService that keeps photos in store.
func NewPanelistService(repo repository.PanelistRepository, store storage.Storage, v *validation.Validator) PanelistService {
	return &panelistService{repo: repo, store: store, validate: v}
}

func (s *panelistService) List(ctx context.Context) ([]*model.Panelist, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list panelists: %w", err)
	}
	return list, nil
}

func (s *panelistService) Create(ctx context.Context, in PanelistInput, photo *Photo) (*model.Panelist, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.ImageURL = strings.TrimSpace(in.ImageURL)
	if err := s.validate.Struct(&in); err != nil {
		return nil, err
	}

	p := &model.Panelist{Title: in.Title, Name: in.Name, Description: in.Description, ImageURL: in.ImageURL}
	if photo != nil {
		key := path.Join("panelists", uuid.NewString()+photo.Ext)
		url, err := s.store.Save(ctx, key, photo.Data, photo.ContentType)
		if err != nil {
			return nil, fmt.Errorf("save panelist photo: %w", err)
		}
		p.ImageURL = url
		p.ImageKey = key
	}

	if err := s.repo.Create(ctx, p); err != nil {
		if p.ImageKey != "" {
			if derr := s.store.Delete(ctx, p.ImageKey); derr != nil {
				slog.Warn("orphaned panelist photo", "key", p.ImageKey, "error", derr)
			}
		}
		return nil, fmt.Errorf("create panelist: %w", err)
	}
	return p, nil
}

func (s *panelistService) Delete(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if p.ImageKey != "" {
		if err := s.store.Delete(ctx, p.ImageKey); err != nil {
			slog.Warn("panelist photo not removed", "panelist_id", id, "key", p.ImageKey, "error", err)
		}
	}
	return nil
}
