package handler

import (
	"bytes"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/qlf-seminar/backend/internal/model"
	"github.com/qlf-seminar/backend/internal/service"
)

const (
	maxImageSize       = 2 << 20 // 2 MB
	multipartOverhead  = 64 << 10
	msgPanelistMissing = "Panelist not found"
)

var allowedContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// PanelistHandler serves the panelists page content and photo uploads.
type PanelistHandler struct {
	panelistService service.PanelistService
}

func NewPanelistHandler(panelistService service.PanelistService) *PanelistHandler {
	return &PanelistHandler{panelistService: panelistService}
}

// List handles GET /api/panelists.
func (h *PanelistHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.panelistService.List(r.Context())
	if err != nil {
		writeFailure(w, r, err, msgPanelistMissing, "Failed to fetch panelists")
		return
	}
	if list == nil {
		list = []*model.Panelist{}
	}
	writeJSON(w, http.StatusOK, list)
}

// Create handles POST /api/panelists. The body is either JSON or a
// multipart form whose optional "image" part becomes the panelist photo.
func (h *PanelistHandler) Create(w http.ResponseWriter, r *http.Request) {
	var (
		in    service.PanelistInput
		photo *service.Photo
	)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		var msg string
		in, photo, msg = readPanelistForm(w, r)
		if msg != "" {
			writeError(w, http.StatusBadRequest, msg, nil)
			return
		}
	} else if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidJSON, nil)
		return
	}

	p, err := h.panelistService.Create(r.Context(), in, photo)
	if err != nil {
		writeFailure(w, r, err, msgPanelistMissing, "Failed to create panelist")
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// readPanelistForm parses the multipart form. A non-empty string is the
// client-facing reason the form was rejected.
func readPanelistForm(w http.ResponseWriter, r *http.Request) (service.PanelistInput, *service.Photo, string) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImageSize+multipartOverhead)
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return service.PanelistInput{}, nil, "Image must be 2 MB or smaller"
		}
		return service.PanelistInput{}, nil, "Invalid form data"
	}

	in := service.PanelistInput{
		Title:       r.FormValue("title"),
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		ImageURL:    r.FormValue("imageUrl"),
	}

	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return in, nil, ""
	}
	if err != nil {
		return in, nil, "Invalid form data"
	}
	defer file.Close()

	if header.Size > maxImageSize {
		return in, nil, "Image must be 2 MB or smaller"
	}
	data, err := io.ReadAll(io.LimitReader(file, maxImageSize+1))
	if err != nil || len(data) > maxImageSize {
		return in, nil, "Image must be 2 MB or smaller"
	}

	// Trust the bytes, not the client's declared type.
	ct := http.DetectContentType(data)
	ext, ok := allowedContentTypes[ct]
	if !ok {
		return in, nil, "Image must be a JPEG, PNG or WebP file"
	}
	return in, &service.Photo{Data: bytes.NewReader(data), ContentType: ct, Ext: ext}, ""
}

// Delete handles DELETE /api/panelists/{id}.
func (h *PanelistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.panelistService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeFailure(w, r, err, msgPanelistMissing, "Failed to delete panelist")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Panelist deleted successfully"})
}
