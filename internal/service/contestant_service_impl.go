package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/qlf-seminar/backend/internal/model"
	"github.com/qlf-seminar/backend/internal/repository"
	"github.com/qlf-seminar/backend/internal/validation"
)

type contestantService struct {
	repo     repository.ContestantRepository
	validate *validation.Validator
}

// NewContestantService creates a ContestantService.
func NewContestantService(repo repository.ContestantRepository, v *validation.Validator) ContestantService {
	return &contestantService{repo: repo, validate: v}
}

func (s *contestantService) check(in *ContestantInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Institution = strings.TrimSpace(in.Institution)
	in.Research = strings.TrimSpace(in.Research)
	in.ImageURL = strings.TrimSpace(in.ImageURL)
	return s.validate.Struct(in)
}

func (s *contestantService) List(ctx context.Context) ([]*model.Contestant, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contestants: %w", err)
	}
	return list, nil
}

func (s *contestantService) Create(ctx context.Context, in ContestantInput) (*model.Contestant, error) {
	if err := s.check(&in); err != nil {
		return nil, err
	}
	c := &model.Contestant{Name: in.Name, Institution: in.Institution, Research: in.Research, ImageURL: in.ImageURL}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create contestant: %w", err)
	}
	return c, nil
}

func (s *contestantService) Update(ctx context.Context, id string, in ContestantInput) (*model.Contestant, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	if err := s.check(&in); err != nil {
		return nil, err
	}
	c := &model.Contestant{ID: id, Name: in.Name, Institution: in.Institution, Research: in.Research, ImageURL: in.ImageURL}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *contestantService) Delete(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
