// internal/app/features/clubs/list.go
package clubs

import (
	"context"
	"net/http"

	"github.com/dalemusser/clubhub/internal/app/system/apiutil"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"github.com/dalemusser/clubhub/internal/domain/models"
)

// HandleGetClubs returns every club in full, rosters included.
// Super-admin only.
//
// Route: GET /api/clubs/get-clubs
func (h *Handler) HandleGetClubs(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if !h.requireSuperAdmin(ctx, w, r, "Failed to fetch clubs") {
		return
	}

	clubs, err := h.Clubs.ListAll(ctx)
	if err != nil {
		h.ErrLog.Internal(w, r, err, "get-clubs: list", "Failed to fetch clubs")
		return
	}
	if clubs == nil {
		clubs = []models.Club{}
	}

	apiutil.JSON(w, http.StatusOK, clubs)
}
