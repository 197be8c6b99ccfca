// internal/app/features/admins/routes.go
package admins

import (
	"github.com/dalemusser/clubhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the admin-management endpoints
// (typically under /api/admin/admins from bootstrap).
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)

	// Club-admin authorization happens inside the handlers: it depends
	// on the loaded club document, not on the session role.
	r.Post("/add-admin", h.HandleAddAdmin)
	r.Post("/delete-admin", h.HandleDeleteAdmin)

	return r
}
