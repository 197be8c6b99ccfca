// internal/app/features/clubs/routes.go
package clubs

import (
	"github.com/dalemusser/clubhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// The club endpoints are split across four mounts that mirror the
// public URL space. Authorization beyond sign-in happens inside the
// handlers: the /clubs and /superadmin/clubs operations check the
// caller's super-admin role themselves.

// AdminRoutes mounts the club-admin view (under /api/admin/clubs).
func AdminRoutes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)

	r.Get("/get-my-clubs", h.HandleGetMyClubs)

	return r
}

// UserRoutes mounts the member-facing endpoints (under /api/user/clubs).
func UserRoutes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)

	r.Post("/apply", h.HandleApply)
	r.Get("/get-all-clubs", h.HandleGetAllClubs)

	return r
}

// ListRoutes mounts the unabridged listing and the partial update
// (under /api/clubs).
func ListRoutes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)

	r.Get("/get-clubs", h.HandleGetClubs)
	r.Put("/modify-club", h.HandleModifyClub)

	return r
}

// SuperAdminRoutes mounts club creation and deletion
// (under /api/superadmin/clubs).
func SuperAdminRoutes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)

	r.Post("/create-club", h.HandleCreateClub)
	r.Delete("/delete-club", h.HandleDeleteClub)

	return r
}
