package handler

import (
	"net/http"

	"github.com/qlf-seminar/backend/internal/model"
	"github.com/qlf-seminar/backend/internal/service"
)

const msgContestantNotFound = "Contestant not found"

// ContestantHandler serves the contestants page content.
type ContestantHandler struct {
	contestantService service.ContestantService
}

func NewContestantHandler(contestantService service.ContestantService) *ContestantHandler {
	return &ContestantHandler{contestantService: contestantService}
}

// List handles GET /api/contestants.
func (h *ContestantHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.contestantService.List(r.Context())
	if err != nil {
		writeFailure(w, r, err, msgContestantNotFound, "Failed to fetch contestants")
		return
	}
	if list == nil {
		list = []*model.Contestant{}
	}
	writeJSON(w, http.StatusOK, list)
}

// Create handles POST /api/contestants.
func (h *ContestantHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.ContestantInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidJSON, nil)
		return
	}
	c, err := h.contestantService.Create(r.Context(), in)
	if err != nil {
		writeFailure(w, r, err, msgContestantNotFound, "Failed to create contestant")
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// Update handles PUT /api/contestants/{id}.
func (h *ContestantHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in service.ContestantInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidJSON, nil)
		return
	}
	c, err := h.contestantService.Update(r.Context(), r.PathValue("id"), in)
	if err != nil {
		writeFailure(w, r, err, msgContestantNotFound, "Failed to update contestant")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// Delete handles DELETE /api/contestants/{id}.
func (h *ContestantHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.contestantService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeFailure(w, r, err, msgContestantNotFound, "Failed to delete contestant")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Contestant deleted successfully"})
}
