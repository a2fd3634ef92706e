package handler

import (
	"net/http"

	"github.com/go-chi/cors"
	"github.com/qlf-seminar/backend/internal/repository"
)

// Handler serves the endpoints that only need the database handle
// (health checks) and owns the CORS policy.
type Handler struct {
	db         repository.DB
	corsOrigin string
}

func New(db repository.DB, corsOrigin string) *Handler {
	return &Handler{db: db, corsOrigin: corsOrigin}
}

// CORS restricts cross-origin access to the configured site origin.
func (h *Handler) CORS(next http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   []string{h.corsOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	})(next)
}
