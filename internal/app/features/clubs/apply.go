// internal/app/features/clubs/apply.go
package clubs

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/clubhub/internal/app/system/apiutil"
	"github.com/dalemusser/clubhub/internal/app/system/auth"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type applyRequest struct {
	ClubID     string `json:"clubId"`
	Department string `json:"department"`
}

// HandleApply files a pending application for the caller.
//
// Route: POST /api/user/clubs/apply
//
// The requested department is recorded as given, whether or not the club
// currently lists it. Duplicate detection is a pre-check query, not a
// unique index, so two simultaneous applies can both land.
func (h *Handler) HandleApply(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.CurrentUser(r)

	var req applyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ClubID == "" || req.Department == "" {
		apiutil.Error(w, http.StatusBadRequest, "Club ID and department are required")
		return
	}

	clubID, err := primitive.ObjectIDFromHex(req.ClubID)
	if err != nil {
		apiutil.Error(w, http.StatusNotFound, "Club not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := h.Clubs.GetByID(ctx, clubID); err == mongo.ErrNoDocuments {
		apiutil.Error(w, http.StatusNotFound, "Club not found")
		return
	} else if err != nil {
		h.ErrLog.Internal(w, r, err, "apply: load club", "Internal Server Error")
		return
	}

	user, err := h.Users.GetByID(ctx, caller.UID)
	if err == mongo.ErrNoDocuments {
		apiutil.Error(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		h.ErrLog.Internal(w, r, err, "apply: load caller", "Internal Server Error")
		return
	}

	exists, err := h.Apps.ExistsForUserClub(ctx, caller.UID, req.ClubID)
	if err != nil {
		h.ErrLog.Internal(w, r, err, "apply: duplicate pre-check", "Internal Server Error")
		return
	}
	if exists {
		apiutil.Error(w, http.StatusBadRequest, "Already applied to this club")
		return
	}

	name := user.Name
	if name == "" {
		name = "Unknown"
	}

	application := models.PendingApplication{
		UserID:     caller.UID,
		Email:      caller.Email,
		Name:       name,
		ClubID:     req.ClubID,
		Department: req.Department,
		Role:       models.RoleMember,
	}
	if _, err := h.Apps.Insert(ctx, application); err != nil {
		h.ErrLog.Internal(w, r, err, "apply: insert application", "Internal Server Error")
		return
	}

	h.Log.Info("application submitted",
		zap.String("club_id", req.ClubID),
		zap.String("user_id", caller.UID),
		zap.String("department", req.Department))

	apiutil.Message(w, http.StatusOK, "Application submitted successfully")
}
