package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/qlf-seminar/backend/internal/model"
	"github.com/qlf-seminar/backend/internal/repository"
	"github.com/qlf-seminar/backend/internal/service"
)

const testMessageID = "6f1c7a52-3b0e-4d57-9a3e-0c9a3f0d2b11"

func messageRequest(method, target, body string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	r.SetPathValue("id", testMessageID)
	return r
}

// ---------------------------------------------------------------------------
// POST /api/messages
// ---------------------------------------------------------------------------

func TestMessageHandler_Submit_Success(t *testing.T) {
	var captured service.MessageInput
	mock := &mockMessageService{
		submitFunc: func(ctx context.Context, in service.MessageInput) (*model.Message, error) {
			captured = in
			return &model.Message{ID: testMessageID, Name: in.Name, Email: in.Email, Message: in.Message}, nil
		},
	}
	rec := httptest.NewRecorder()
	NewMessageHandler(mock).Submit(rec, messageRequest(http.MethodPost, "/api/messages",
		`{"name":"Alice","email":"alice@example.com","message":"Hello!"}`))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if captured.Name != "Alice" || captured.Email != "alice@example.com" || captured.Message != "Hello!" {
		t.Errorf("unexpected input %+v", captured)
	}

	var raw map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if raw["read"] != false {
		t.Errorf("expected read=false, got %v", raw["read"])
	}
	if v, ok := raw["reply"]; !ok || v != nil {
		t.Errorf("expected reply=null to be present, got %v (present=%v)", v, ok)
	}
}

func TestMessageHandler_Submit_MissingFields(t *testing.T) {
	mock := &mockMessageService{
		submitFunc: func(ctx context.Context, in service.MessageInput) (*model.Message, error) {
			return nil, &service.MissingFieldsError{Fields: []string{"name", "message"}}
		},
	}
	rec := httptest.NewRecorder()
	NewMessageHandler(mock).Submit(rec, messageRequest(http.MethodPost, "/api/messages", `{"email":"a@b.com"}`))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	resp := decodeErrorBody(t, rec.Body.Bytes())
	if resp.Error != "Name, email, and message are required" {
		t.Errorf("unexpected error %q", resp.Error)
	}
	if strings.Join(resp.Details, ",") != "name,message" {
		t.Errorf("unexpected details %v", resp.Details)
	}
}

func TestMessageHandler_Submit_InvalidJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	NewMessageHandler(&mockMessageService{}).Submit(rec, messageRequest(http.MethodPost, "/api/messages", "{bad json"))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid JSON, got %d", rec.Code)
	}
}

func TestMessageHandler_Submit_BodyTooLarge(t *testing.T) {
	body, _ := json.Marshal(map[string]string{
		"name": "A", "email": "a@b.com", "message": strings.Repeat("x", maxJSONBody),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/messages", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	NewMessageHandler(&mockMessageService{}).Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for oversized body, got %d", rec.Code)
	}
}

func TestMessageHandler_Submit_Unavailable(t *testing.T) {
	mock := &mockMessageService{
		submitFunc: func(ctx context.Context, in service.MessageInput) (*model.Message, error) {
			return nil, repository.ErrUnavailable
		},
	}
	rec := httptest.NewRecorder()
	NewMessageHandler(mock).Submit(rec, messageRequest(http.MethodPost, "/api/messages",
		`{"name":"A","email":"a@b.com","message":"m"}`))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// GET /api/messages
// ---------------------------------------------------------------------------

func TestMessageHandler_List_PassesStatus(t *testing.T) {
	var gotOpts model.MessageListOptions
	mock := &mockMessageService{
		listFunc: func(ctx context.Context, opts model.MessageListOptions) ([]*model.Message, error) {
			gotOpts = opts
			return []*model.Message{{ID: "1"}}, nil
		},
	}
	rec := httptest.NewRecorder()
	NewMessageHandler(mock).List(rec, httptest.NewRequest(http.MethodGet, "/api/messages?status=unread", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotOpts.Status != "unread" {
		t.Errorf("expected status=unread, got %q", gotOpts.Status)
	}
}

func TestMessageHandler_List_RejectsUnknownStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	NewMessageHandler(&mockMessageService{}).List(rec, httptest.NewRequest(http.MethodGet, "/api/messages?status=spam", nil))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestMessageHandler_List_EmptyIsArray(t *testing.T) {
	rec := httptest.NewRecorder()
	NewMessageHandler(&mockMessageService{}).List(rec, httptest.NewRequest(http.MethodGet, "/api/messages", nil))

	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("expected [], got %s", got)
	}
}

func TestMessageHandler_List_Failure(t *testing.T) {
	mock := &mockMessageService{
		listFunc: func(ctx context.Context, opts model.MessageListOptions) ([]*model.Message, error) {
			return nil, errors.New("query failed")
		},
	}
	rec := httptest.NewRecorder()
	NewMessageHandler(mock).List(rec, httptest.NewRequest(http.MethodGet, "/api/messages", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var resp errorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Error != "Failed to fetch messages" {
		t.Errorf("unexpected error %q", resp.Error)
	}
}

// ---------------------------------------------------------------------------
// PATCH /api/messages/{id}/read
// ---------------------------------------------------------------------------

func TestMessageHandler_MarkRead(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantRead bool
	}{
		{"explicit true", `{"read":true}`, true},
		{"explicit false", `{"read":false}`, false},
		{"field absent", `{}`, true},
		{"empty body", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID string
			var gotRead bool
			mock := &mockMessageService{
				markReadFunc: func(ctx context.Context, id string, read bool) (*model.Message, error) {
					gotID, gotRead = id, read
					return &model.Message{ID: id, Read: read}, nil
				},
			}
			rec := httptest.NewRecorder()
			NewMessageHandler(mock).MarkRead(rec, messageRequest(http.MethodPatch, "/api/messages/"+testMessageID+"/read", tt.body))

			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
			}
			if gotID != testMessageID || gotRead != tt.wantRead {
				t.Errorf("got id=%q read=%v", gotID, gotRead)
			}
		})
	}
}

func TestMessageHandler_MarkRead_NotFound(t *testing.T) {
	mock := &mockMessageService{
		markReadFunc: func(ctx context.Context, id string, read bool) (*model.Message, error) {
			return nil, repository.ErrNotFound
		},
	}
	rec := httptest.NewRecorder()
	NewMessageHandler(mock).MarkRead(rec, messageRequest(http.MethodPatch, "/api/messages/x/read", `{"read":true}`))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if resp := decodeErrorBody(t, rec.Body.Bytes()); resp.Error != "Message not found" {
		t.Errorf("unexpected error %q", resp.Error)
	}
}

// ---------------------------------------------------------------------------
// POST /api/messages/{id}/reply
// ---------------------------------------------------------------------------

func TestMessageHandler_Reply_Success(t *testing.T) {
	repliedAt := time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC)
	mock := &mockMessageService{
		replyFunc: func(ctx context.Context, id, reply string) (*model.Message, error) {
			return &model.Message{ID: id, Read: true, Reply: &reply, RepliedAt: &repliedAt}, nil
		},
	}
	rec := httptest.NewRecorder()
	NewMessageHandler(mock).Reply(rec, messageRequest(http.MethodPost, "/api/messages/"+testMessageID+"/reply", `{"reply":"Thanks!"}`))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var msg model.Message
	if err := json.NewDecoder(rec.Body).Decode(&msg); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !msg.Read || msg.Reply == nil || *msg.Reply != "Thanks!" || msg.RepliedAt == nil {
		t.Errorf("unexpected message %+v", msg)
	}
}

func TestMessageHandler_Reply_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"empty reply", service.ErrReplyRequired, http.StatusBadRequest},
		{"unknown id", repository.ErrNotFound, http.StatusNotFound},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockMessageService{
				replyFunc: func(ctx context.Context, id, reply string) (*model.Message, error) {
					return nil, tt.err
				},
			}
			rec := httptest.NewRecorder()
			NewMessageHandler(mock).Reply(rec, messageRequest(http.MethodPost, "/api/messages/x/reply", `{"reply":""}`))

			if rec.Code != tt.wantStatus {
				t.Errorf("expected %d, got %d", tt.wantStatus, rec.Code)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// DELETE /api/messages/{id}
// ---------------------------------------------------------------------------

func TestMessageHandler_Delete(t *testing.T) {
	var gotID string
	mock := &mockMessageService{
		deleteFunc: func(ctx context.Context, id string) error {
			gotID = id
			return nil
		},
	}
	rec := httptest.NewRecorder()
	NewMessageHandler(mock).Delete(rec, messageRequest(http.MethodDelete, "/api/messages/"+testMessageID, ""))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotID != testMessageID {
		t.Errorf("expected id %q, got %q", testMessageID, gotID)
	}
	var resp map[string]string
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if resp["message"] != "Message deleted successfully" {
		t.Errorf("unexpected body %v", resp)
	}
}

func TestMessageHandler_Delete_NotFound(t *testing.T) {
	mock := &mockMessageService{
		deleteFunc: func(ctx context.Context, id string) error {
			return repository.ErrNotFound
		},
	}
	rec := httptest.NewRecorder()
	NewMessageHandler(mock).Delete(rec, messageRequest(http.MethodDelete, "/api/messages/x", ""))

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
