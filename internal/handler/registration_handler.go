package handler

import (
	"encoding/json"
	"net/http"

	"github.com/qlf-seminar/backend/internal/model"
	"github.com/qlf-seminar/backend/internal/service"
)

// RegistrationHandler handles seminar signups.
type RegistrationHandler struct {
	registrationService service.RegistrationService
}

// NewRegistrationHandler creates a RegistrationHandler with the given service.
func NewRegistrationHandler(registrationService service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registrationService: registrationService}
}

// textValue is a form field that arrives as a JSON string or number.
// Numbers keep their literal text, so a zip code of 01234 sent as a string
// stays intact while 12345 sent as a number becomes "12345".
type textValue string

func (v *textValue) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = textValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*v = textValue(n.String())
	return nil
}

// registerRequest is the POST /api/register body.
type registerRequest struct {
	FullName    string    `json:"fullName"`
	Email       string    `json:"email"`
	Phone       textValue `json:"phone"`
	Institution string    `json:"institution"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	ZipCode     textValue `json:"zipCode"`
}

func (req registerRequest) input() service.RegistrationInput {
	return service.RegistrationInput{
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       string(req.Phone),
		Institution: req.Institution,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		ZipCode:     string(req.ZipCode),
	}
}

type registerResponse struct {
	Message      string              `json:"message"`
	Registration *model.Registration `json:"registration"`
}

// Register handles POST /api/register.
func (h *RegistrationHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidJSON, nil)
		return
	}

	reg, err := h.registrationService.Register(r.Context(), req.input())
	if err != nil {
		writeFailure(w, r, err, "Registration not found", "Failed to create registration")
		return
	}

	writeJSON(w, http.StatusCreated, registerResponse{
		Message:      "Registration successful",
		Registration: reg,
	})
}

// List handles GET /api/registrations.
func (h *RegistrationHandler) List(w http.ResponseWriter, r *http.Request) {
	regs, err := h.registrationService.List(r.Context())
	if err != nil {
		writeFailure(w, r, err, "Registration not found", "Failed to fetch registrations")
		return
	}
	if regs == nil {
		regs = []*model.Registration{}
	}
	writeJSON(w, http.StatusOK, regs)
}
