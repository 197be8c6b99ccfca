// internal/app/features/clubs/directory.go
package clubs

import (
	"context"
	"net/http"

	"github.com/dalemusser/clubhub/internal/app/system/apiutil"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"github.com/dalemusser/clubhub/internal/domain/models"
)

// HandleGetAllClubs returns the public directory: every club reduced to
// id, name, departments, and creation time. Rosters stay hidden here.
//
// Route: GET /api/user/clubs/get-all-clubs
func (h *Handler) HandleGetAllClubs(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	summaries, err := h.Clubs.ListSummaries(ctx)
	if err != nil {
		h.ErrLog.Internal(w, r, err, "get-all-clubs: list", "Failed to fetch clubs")
		return
	}
	if summaries == nil {
		summaries = []models.ClubSummary{}
	}

	apiutil.JSON(w, http.StatusOK, summaries)
}
