// internal/app/features/members/routes.go
package members

import (
	"github.com/dalemusser/clubhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the roster and applicant endpoints
// (typically under /api/admin/members from bootstrap).
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)

	r.Get("/get-my-members", h.HandleGetMyMembers)
	r.Get("/get-applicants", h.HandleGetApplicants)
	r.Post("/reject", h.HandleReject)

	return r
}
