package handler

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/qlf-seminar/backend/internal/model"
	"github.com/qlf-seminar/backend/internal/service"
)

// ---------------------------------------------------------------------------
// Function-field mocks for the service interfaces
// ---------------------------------------------------------------------------

type mockRegistrationService struct {
	registerFunc func(ctx context.Context, in service.RegistrationInput) (*model.Registration, error)
	listFunc     func(ctx context.Context) ([]*model.Registration, error)
}

func (m *mockRegistrationService) Register(ctx context.Context, in service.RegistrationInput) (*model.Registration, error) {
	if m.registerFunc != nil {
		return m.registerFunc(ctx, in)
	}
	return &model.Registration{ID: "r1", FullName: in.FullName, Email: in.Email}, nil
}

func (m *mockRegistrationService) List(ctx context.Context) ([]*model.Registration, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

type mockMessageService struct {
	submitFunc   func(ctx context.Context, in service.MessageInput) (*model.Message, error)
	listFunc     func(ctx context.Context, opts model.MessageListOptions) ([]*model.Message, error)
	markReadFunc func(ctx context.Context, id string, read bool) (*model.Message, error)
	replyFunc    func(ctx context.Context, id, reply string) (*model.Message, error)
	deleteFunc   func(ctx context.Context, id string) error
}

func (m *mockMessageService) Submit(ctx context.Context, in service.MessageInput) (*model.Message, error) {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, in)
	}
	return &model.Message{ID: "m1", Name: in.Name, Email: in.Email, Message: in.Message}, nil
}

func (m *mockMessageService) List(ctx context.Context, opts model.MessageListOptions) ([]*model.Message, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}

func (m *mockMessageService) MarkRead(ctx context.Context, id string, read bool) (*model.Message, error) {
	if m.markReadFunc != nil {
		return m.markReadFunc(ctx, id, read)
	}
	return &model.Message{ID: id, Read: read}, nil
}

func (m *mockMessageService) Reply(ctx context.Context, id, reply string) (*model.Message, error) {
	if m.replyFunc != nil {
		return m.replyFunc(ctx, id, reply)
	}
	return &model.Message{ID: id, Read: true, Reply: &reply}, nil
}

func (m *mockMessageService) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

type mockContestantService struct {
	listFunc   func(ctx context.Context) ([]*model.Contestant, error)
	createFunc func(ctx context.Context, in service.ContestantInput) (*model.Contestant, error)
	updateFunc func(ctx context.Context, id string, in service.ContestantInput) (*model.Contestant, error)
	deleteFunc func(ctx context.Context, id string) error
}

func (m *mockContestantService) List(ctx context.Context) ([]*model.Contestant, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockContestantService) Create(ctx context.Context, in service.ContestantInput) (*model.Contestant, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, in)
	}
	return &model.Contestant{ID: "c1", Name: in.Name}, nil
}

func (m *mockContestantService) Update(ctx context.Context, id string, in service.ContestantInput) (*model.Contestant, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, in)
	}
	return &model.Contestant{ID: id, Name: in.Name}, nil
}

func (m *mockContestantService) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

type mockPanelistService struct {
	listFunc   func(ctx context.Context) ([]*model.Panelist, error)
	createFunc func(ctx context.Context, in service.PanelistInput, photo *service.Photo) (*model.Panelist, error)
	deleteFunc func(ctx context.Context, id string) error
}

func (m *mockPanelistService) List(ctx context.Context) ([]*model.Panelist, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockPanelistService) Create(ctx context.Context, in service.PanelistInput, photo *service.Photo) (*model.Panelist, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, in, photo)
	}
	return &model.Panelist{ID: "p1", Title: in.Title, Name: in.Name}, nil
}

func (m *mockPanelistService) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

type mockDashboardService struct {
	getFunc func(ctx context.Context) (*model.Dashboard, error)
}

func (m *mockDashboardService) Get(ctx context.Context) (*model.Dashboard, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx)
	}
	return &model.Dashboard{}, nil
}

// errorBody is an errorResponse whose details are a list of strings.
type errorBody struct {
	Error   string   `json:"error"`
	Details []string `json:"details"`
}

func decodeErrorBody(t *testing.T, body []byte) errorBody {
	t.Helper()
	var resp errorBody
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decode error body %q: %v", body, err)
	}
	return resp
}
