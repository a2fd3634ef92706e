package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/qlf-seminar/backend/internal/model"
	"github.com/qlf-seminar/backend/internal/repository"
	"github.com/qlf-seminar/backend/internal/validation"
)

// messageServiceImpl is the production implementation of MessageService.
type messageServiceImpl struct {
	repo     repository.MessageRepository
	validate *validation.Validator
}

// NewMessageService creates a MessageService backed by the given repository.
func NewMessageService(repo repository.MessageRepository, v *validation.Validator) MessageService {
	return &messageServiceImpl{repo: repo, validate: v}
}

func (s *messageServiceImpl) Submit(ctx context.Context, in MessageInput) (*model.Message, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Message = strings.TrimSpace(in.Message)

	if names := missing([]namedValue{
		{"name", in.Name},
		{"email", in.Email},
		{"message", in.Message},
	}); len(names) > 0 {
		return nil, &MissingFieldsError{Fields: names}
	}
	if err := s.validate.Struct(&in); err != nil {
		return nil, err
	}

	msg := &model.Message{Name: in.Name, Email: in.Email, Message: in.Message}
	if err := s.repo.Save(ctx, msg); err != nil {
		return nil, fmt.Errorf("save message: %w", err)
	}
	return msg, nil
}

func (s *messageServiceImpl) List(ctx context.Context, opts model.MessageListOptions) ([]*model.Message, error) {
	list, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return list, nil
}

func (s *messageServiceImpl) MarkRead(ctx context.Context, id string, read bool) (*model.Message, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return s.repo.SetRead(ctx, id, read)
}

func (s *messageServiceImpl) Reply(ctx context.Context, id, reply string) (*model.Message, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		// an unknown message is reported before the empty reply
		if _, err := s.repo.GetByID(ctx, id); err != nil {
			return nil, err
		}
		return nil, ErrReplyRequired
	}
	return s.repo.Reply(ctx, id, reply)
}

func (s *messageServiceImpl) Delete(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
