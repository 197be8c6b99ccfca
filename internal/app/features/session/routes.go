// internal/app/features/session/routes.go
package session

import "github.com/go-chi/chi/v5"

// Routes mounts login and logout (typically under /api/auth/session).
// No sign-in middleware here; this is the route that creates sessions.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.HandleLogin)
	r.Delete("/", h.HandleLogout)

	return r
}
