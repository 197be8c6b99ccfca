// internal/app/features/members/roster.go
package members

import (
	"context"
	"net/http"

	"github.com/dalemusser/clubhub/internal/app/system/apiutil"
	"github.com/dalemusser/clubhub/internal/app/system/auth"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleGetMyMembers lists every user holding a membership record for
// the club. Full user documents go out, including each member's other
// club memberships.
//
// Route: GET /api/admin/members/get-my-members?clubId=...
//
// The gate is membership, not admin rights: any member of the club may
// read its roster.
func (h *Handler) HandleGetMyMembers(w http.ResponseWriter, r *http.Request) {
	clubID := query.Get(r, "clubId")
	if clubID == "" {
		apiutil.Error(w, http.StatusBadRequest, "Club ID is required")
		return
	}

	caller, _ := auth.CurrentUser(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user, err := h.Users.GetByID(ctx, caller.UID)
	if err == mongo.ErrNoDocuments {
		apiutil.Error(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		h.ErrLog.Internal(w, r, err, "get-my-members: load caller", "Internal Server Error")
		return
	}

	if !user.MemberOf(clubID) {
		apiutil.Error(w, http.StatusForbidden, "Access denied: You are not a member of this club")
		return
	}

	members, err := h.Users.ListByClubID(ctx, clubID)
	if err != nil {
		h.ErrLog.Internal(w, r, err, "get-my-members: list members", "Internal Server Error")
		return
	}
	if members == nil {
		members = []models.User{}
	}

	apiutil.JSON(w, http.StatusOK, members)
}
