package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/qlf-seminar/backend/internal/model"
	"github.com/qlf-seminar/backend/internal/service"
)

const msgMessageNotFound = "Message not found"

// MessageHandler handles contact form submission and the admin inbox.
type MessageHandler struct {
	messageService service.MessageService
}

// NewMessageHandler creates a MessageHandler with the given service.
func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// Submit handles POST /api/messages.
func (h *MessageHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var in service.MessageInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidJSON, nil)
		return
	}

	msg, err := h.messageService.Submit(r.Context(), in)
	var missing *service.MissingFieldsError
	if errors.As(err, &missing) {
		writeError(w, http.StatusBadRequest, "Name, email, and message are required", missing.Fields)
		return
	}
	if err != nil {
		writeFailure(w, r, err, msgMessageNotFound, "Failed to send message")
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}

// List handles GET /api/messages.
// Supports query param: status (all/unread/read).
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	switch status {
	case "", "all", "read", "unread":
	default:
		writeError(w, http.StatusBadRequest, "Invalid status filter", []string{"status must be all, read or unread"})
		return
	}

	messages, err := h.messageService.List(r.Context(), model.MessageListOptions{Status: status})
	if err != nil {
		writeFailure(w, r, err, msgMessageNotFound, "Failed to fetch messages")
		return
	}
	// Return [] not null for empty lists
	if messages == nil {
		messages = []*model.Message{}
	}
	writeJSON(w, http.StatusOK, messages)
}

type markReadRequest struct {
	Read *bool `json:"read"`
}

// MarkRead handles PATCH /api/messages/{id}/read.
// An empty body or a body without "read" marks the message read.
func (h *MessageHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	var req markReadRequest
	if err := decodeJSON(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, msgInvalidJSON, nil)
		return
	}
	read := true
	if req.Read != nil {
		read = *req.Read
	}

	msg, err := h.messageService.MarkRead(r.Context(), r.PathValue("id"), read)
	if err != nil {
		writeFailure(w, r, err, msgMessageNotFound, "Failed to update message")
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

type replyRequest struct {
	Reply string `json:"reply"`
}

// Reply handles POST /api/messages/{id}/reply.
func (h *MessageHandler) Reply(w http.ResponseWriter, r *http.Request) {
	var req replyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidJSON, nil)
		return
	}

	msg, err := h.messageService.Reply(r.Context(), r.PathValue("id"), req.Reply)
	if err != nil {
		writeFailure(w, r, err, msgMessageNotFound, "Failed to reply to message")
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

// Delete handles DELETE /api/messages/{id}.
func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.messageService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeFailure(w, r, err, msgMessageNotFound, "Failed to delete message")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Message deleted successfully"})
}
