// internal/app/features/members/reject.go
package members

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/clubhub/internal/app/system/apiutil"
	"github.com/dalemusser/clubhub/internal/app/system/auth"
	"github.com/dalemusser/clubhub/internal/app/system/authz"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type rejectRequest struct {
	ApplicantID string `json:"applicantId"`
}

// HandleReject discards a pending application. The user document is
// untouched; the applicant may apply again later.
//
// Route: POST /api/admin/members/reject
//
// The admin check runs against the club named in the application, so a
// rejection for an already-deleted club fails with 404 and the orphaned
// application stays behind.
func (h *Handler) HandleReject(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.CurrentUser(r)

	var req rejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ApplicantID == "" {
		apiutil.Error(w, http.StatusBadRequest, "Applicant ID is required")
		return
	}

	appID, err := primitive.ObjectIDFromHex(req.ApplicantID)
	if err != nil {
		apiutil.Error(w, http.StatusNotFound, "Applicant not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	application, err := h.Apps.GetByID(ctx, appID)
	if err == mongo.ErrNoDocuments {
		apiutil.Error(w, http.StatusNotFound, "Applicant not found")
		return
	}
	if err != nil {
		h.ErrLog.Internal(w, r, err, "reject: load application", "Internal Server Error")
		return
	}

	clubID, err := primitive.ObjectIDFromHex(application.ClubID)
	if err != nil {
		apiutil.Error(w, http.StatusNotFound, "Club not found")
		return
	}

	club, err := h.Clubs.GetByID(ctx, clubID)
	if err == mongo.ErrNoDocuments {
		apiutil.Error(w, http.StatusNotFound, "Club not found")
		return
	}
	if err != nil {
		h.ErrLog.Internal(w, r, err, "reject: load club", "Internal Server Error")
		return
	}

	if !authz.IsClubAdmin(club, caller.Email) {
		apiutil.Error(w, http.StatusForbidden, "Forbidden")
		return
	}

	if _, err := h.Apps.Delete(ctx, appID); err != nil {
		h.ErrLog.Internal(w, r, err, "reject: delete application", "Internal Server Error")
		return
	}

	h.Log.Info("applicant rejected",
		zap.String("application_id", req.ApplicantID),
		zap.String("club_id", application.ClubID),
		zap.String("applicant_id", application.UserID))

	apiutil.Message(w, http.StatusOK, "Applicant rejected")
}
