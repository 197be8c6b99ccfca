// internal/app/features/departments/routes.go
package departments

import (
	"github.com/dalemusser/clubhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the department-management endpoints
// (typically under /api/admin/departments from bootstrap).
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)

	r.Post("/create-department", h.HandleCreateDepartment)
	r.Post("/update-department", h.HandleUpdateDepartment)
	r.Post("/delete-department", h.HandleDeleteDepartment)

	return r
}
