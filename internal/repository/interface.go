package repository

import (
	"context"

	"github.com/qlf-seminar/backend/internal/model"
)

// DB checks that the database connection is alive.
type DB interface {
	Ping(ctx context.Context) error
}

// RegistrationRepository persists seminar registrations.
type RegistrationRepository interface {
	Create(ctx context.Context, reg *model.Registration) error
	FindByEmail(ctx context.Context, email string) (*model.Registration, error)
	// List returns registrations newest first; limit <= 0 means no limit.
	List(ctx context.Context, limit int) ([]*model.Registration, error)
	Count(ctx context.Context) (int, error)
}

// MessageRepository persists contact-form messages.
// It is defined here (in repository) to avoid an import cycle with service.
type MessageRepository interface {
	Save(ctx context.Context, msg *model.Message) error
	GetByID(ctx context.Context, id string) (*model.Message, error)
	List(ctx context.Context, opts model.MessageListOptions) ([]*model.Message, error)
	SetRead(ctx context.Context, id string, read bool) (*model.Message, error)
	Reply(ctx context.Context, id, reply string) (*model.Message, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (total, unread int, err error)
}

// ContestantRepository persists contestant profiles.
type ContestantRepository interface {
	Create(ctx context.Context, c *model.Contestant) error
	Update(ctx context.Context, c *model.Contestant) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*model.Contestant, error)
	Count(ctx context.Context) (int, error)
}

// PanelistRepository persists panelist profiles.
type PanelistRepository interface {
	Create(ctx context.Context, p *model.Panelist) error
	GetByID(ctx context.Context, id string) (*model.Panelist, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*model.Panelist, error)
	Count(ctx context.Context) (int, error)
}
