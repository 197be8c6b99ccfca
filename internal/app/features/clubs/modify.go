// internal/app/features/clubs/modify.go
package clubs

import (
	"context"
	"encoding/json"
	"net/http"

	clubstore "github.com/dalemusser/clubhub/internal/app/store/clubs"
	"github.com/dalemusser/clubhub/internal/app/system/apiutil"
	"github.com/dalemusser/clubhub/internal/app/system/inputval"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type modifyClubRequest struct {
	ID          string    `json:"id"`
	Name        *string   `json:"name"`
	Departments *[]string `json:"departments"`
	AdminIDs    *[]string `json:"adminIds"`
	MemberIDs   *[]string `json:"memberIds"`
}

// HandleModifyClub overwrites the supplied club fields wholesale.
// Super-admin only.
//
// Route: PUT /api/clubs/modify-club
//
// Absent fields stay untouched, present fields replace the stored value
// entirely (an empty list clears a roster). Member documents are not
// updated to agree with a rewritten member_ids list.
func (h *Handler) HandleModifyClub(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if !h.requireSuperAdmin(ctx, w, r, "Failed to update club") {
		return
	}

	var req modifyClubRequest
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
		h.ErrLog.Internal(w, r, err, "modify-club: load club", "Failed to update club")
		return
	}

	// Names are sanitized on write, same as create-club.
	if req.Name != nil {
		clean := inputval.CleanName(*req.Name)
		req.Name = &clean
	}
	if req.Departments != nil {
		clean := inputval.CleanNames(*req.Departments)
		req.Departments = &clean
	}

	patch := clubstore.Patch{
		Name:        req.Name,
		Departments: req.Departments,
		AdminIDs:    req.AdminIDs,
		MemberIDs:   req.MemberIDs,
	}
	if err := h.Clubs.Update(ctx, clubID, patch); err != nil {
		h.ErrLog.Internal(w, r, err, "modify-club: update", "Failed to update club")
		return
	}

	h.Log.Info("club updated", zap.String("club_id", req.ID))

	apiutil.Message(w, http.StatusOK, "Club updated successfully")
}
