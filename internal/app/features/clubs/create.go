// internal/app/features/clubs/create.go
package clubs

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/clubhub/internal/app/system/apiutil"
	"github.com/dalemusser/clubhub/internal/app/system/inputval"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"go.uber.org/zap"
)

type createClubRequest struct {
	Name        string   `json:"name"`
	Departments []string `json:"departments"`
	AdminIDs    []string `json:"adminIds"`
	MemberIDs   []string `json:"memberIds"`
}

// HandleCreateClub creates a club with the caller-supplied rosters.
// Super-admin only.
//
// Route: POST /api/superadmin/clubs/create-club
//
// The three lists must be present but may be empty; no check that the
// admin emails or member ids resolve to existing users. Name and
// department strings are sanitized before storage.
func (h *Handler) HandleCreateClub(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if !h.requireSuperAdmin(ctx, w, r, "Failed to create club") {
		return
	}

	var req createClubRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil ||
		req.Name == "" || req.Departments == nil || req.AdminIDs == nil || req.MemberIDs == nil {
		apiutil.Error(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	club := models.Club{
		Name:        inputval.CleanName(req.Name),
		Departments: inputval.CleanNames(req.Departments),
		AdminIDs:    req.AdminIDs,
		MemberIDs:   req.MemberIDs,
	}

	created, err := h.Clubs.Insert(ctx, club)
	if err != nil {
		h.ErrLog.Internal(w, r, err, "create-club: insert", "Failed to create club")
		return
	}

	h.Log.Info("club created",
		zap.String("club_id", created.ID.Hex()),
		zap.String("name", created.Name))

	apiutil.Message(w, http.StatusCreated, "Club created successfully")
}
