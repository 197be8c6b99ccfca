// internal/app/features/clubs/myclubs.go
package clubs

import (
	"context"
	"net/http"

	"github.com/dalemusser/clubhub/internal/app/system/apiutil"
	"github.com/dalemusser/clubhub/internal/app/system/auth"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleGetMyClubs returns the full documents of every club the caller
// belongs to.
//
// Route: GET /api/admin/clubs/get-my-clubs
//
// Memberships pointing at deleted clubs are silently dropped from the
// result; the stale membership record itself is left in place.
func (h *Handler) HandleGetMyClubs(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.CurrentUser(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user, err := h.Users.GetByID(ctx, caller.UID)
	if err == mongo.ErrNoDocuments {
		apiutil.Error(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		h.ErrLog.Internal(w, r, err, "get-my-clubs: load caller", "Internal Server Error")
		return
	}

	ids := make([]primitive.ObjectID, 0, len(user.ClubIDs))
	for _, m := range user.ClubIDs {
		id, err := primitive.ObjectIDFromHex(m.ClubID)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	if len(ids) == 0 {
		apiutil.JSON(w, http.StatusOK, []models.Club{})
		return
	}

	clubs, err := h.Clubs.GetByIDs(ctx, ids)
	if err != nil {
		h.ErrLog.Internal(w, r, err, "get-my-clubs: load clubs", "Internal Server Error")
		return
	}

	// $in returns documents in arbitrary order; clients see clubs in the
	// order the memberships were recorded.
	byID := make(map[primitive.ObjectID]models.Club, len(clubs))
	for _, c := range clubs {
		byID[c.ID] = c
	}
	ordered := make([]models.Club, 0, len(clubs))
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			ordered = append(ordered, c)
		}
	}

	apiutil.JSON(w, http.StatusOK, ordered)
}
