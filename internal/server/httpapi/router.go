// Package httpapi exposes the backend services as a JSON API under /api.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrijs2005/alertaverde/internal/logging"
	"github.com/dmitrijs2005/alertaverde/internal/server/services"
)

// Handler groups the route handlers and their dependencies.
type Handler struct {
	users *services.UserService
	crops *services.CropService
	log   logging.Logger
}

// NewRouter wires middleware and routes. allowedOrigin goes verbatim into
// Access-Control-Allow-Origin.
func NewRouter(us *services.UserService, cs *services.CropService, log logging.Logger, allowedOrigin string) http.Handler {
	h := &Handler{users: us, crops: cs, log: log}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(RequestLogger(log))
	r.Use(CORS(allowedOrigin))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.handleHealth)
		r.Post("/register", h.handleRegister)
		r.Post("/login", h.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(RequireAuth(us, log))
			r.Get("/me", h.handleMe)
			r.Get("/crops", h.handleListCrops)
			r.Post("/crops", h.handleCreateCrop)
			r.Delete("/crops/{id}", h.handleDeleteCrop)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, log, http.StatusNotFound, messageResponse{Success: false, Message: "Endpoint not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, log, http.StatusMethodNotAllowed, messageResponse{Success: false, Message: "Method not allowed"})
	})

	return r
}
