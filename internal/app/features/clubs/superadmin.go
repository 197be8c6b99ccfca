// internal/app/features/clubs/superadmin.go
package clubs

import (
	"context"
	"net/http"

	"github.com/dalemusser/clubhub/internal/app/system/apiutil"
	"github.com/dalemusser/clubhub/internal/app/system/auth"
	"github.com/dalemusser/clubhub/internal/app/system/authz"
	"go.mongodb.org/mongo-driver/mongo"
)

// requireSuperAdmin loads the caller's user document and enforces the
// global role. A missing document and an insufficient role both come
// back as 403; nothing about account existence leaks to the caller.
// Returns false after writing the response when the gate fails.
func (h *Handler) requireSuperAdmin(ctx context.Context, w http.ResponseWriter, r *http.Request, failMsg string) bool {
	caller, _ := auth.CurrentUser(r)

	user, err := h.Users.GetByID(ctx, caller.UID)
	if err == mongo.ErrNoDocuments {
		apiutil.Error(w, http.StatusForbidden, "Forbidden")
		return false
	}
	if err != nil {
		h.ErrLog.Internal(w, r, err, "superadmin gate: load caller", failMsg)
		return false
	}
	if !authz.IsSuperAdmin(user) {
		apiutil.Error(w, http.StatusForbidden, "Forbidden")
		return false
	}
	return true
}
