// internal/app/features/clubs/delete.go
package clubs

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/clubhub/internal/app/system/apiutil"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type deleteClubRequest struct {
	ID string `json:"id"`
}

// HandleDeleteClub removes a club document. Super-admin only.
//
// Route: DELETE /api/superadmin/clubs/delete-club
//
// No cascade: users' membership records and pending applications that
// point at the club stay behind, and readers tolerate the dangling
// references.
func (h *Handler) HandleDeleteClub(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if !h.requireSuperAdmin(ctx, w, r, "Failed to delete club") {
		return
	}

	var req deleteClubRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		apiutil.Error(w, http.StatusBadRequest, "Club ID is required")
		return
	}

	clubID, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		apiutil.Error(w, http.StatusNotFound, "Club not found")
		return
	}

	if _, err := h.Clubs.GetByID(ctx, clubID); err == mongo.ErrNoDocuments {
		apiutil.Error(w, http.StatusNotFound, "Club not found")
		return
	} else if err != nil {
		h.ErrLog.Internal(w, r, err, "delete-club: load club", "Failed to delete club")
		return
	}

	if _, err := h.Clubs.Delete(ctx, clubID); err != nil {
		h.ErrLog.Internal(w, r, err, "delete-club: delete", "Failed to delete club")
		return
	}

	h.Log.Info("club deleted", zap.String("club_id", req.ID))

	apiutil.Message(w, http.StatusOK, "Club deleted successfully")
}
