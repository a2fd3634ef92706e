package service

import (
	"context"

	"github.com/qlf-seminar/backend/internal/model"
)

// MessageInput is a contact-form submission.
type MessageInput struct {
	Name    string `json:"name" label:"Name" validate:"required"`
	Email   string `json:"email" label:"Email" validate:"required,seminar_email"`
	Message string `json:"message" label:"Message" validate:"required,max=5000"`
}

// MessageService defines the business logic for contact messages.
type MessageService interface {
	// Submit stores a new message as unread with no reply.
	Submit(ctx context.Context, in MessageInput) (*model.Message, error)

	// List returns messages newest first according to opts.
	List(ctx context.Context, opts model.MessageListOptions) ([]*model.Message, error)

	// MarkRead sets the read flag. Repeating the call is harmless.
	MarkRead(ctx context.Context, id string, read bool) (*model.Message, error)

	// Reply stores the admin's answer, stamps repliedAt and marks the message read.
	Reply(ctx context.Context, id, reply string) (*model.Message, error)

	Delete(ctx context.Context, id string) error
}
