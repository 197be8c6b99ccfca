// internal/app/features/members/applicants.go
package members

import (
	"context"
	"net/http"

	"github.com/dalemusser/clubhub/internal/app/system/apiutil"
	"github.com/dalemusser/clubhub/internal/app/system/auth"
	"github.com/dalemusser/clubhub/internal/app/system/authz"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleGetApplicants lists the pending applications for a club.
// Admin-gated, unlike the roster read.
//
// Route: GET /api/admin/members/get-applicants?clubId=...
func (h *Handler) HandleGetApplicants(w http.ResponseWriter, r *http.Request) {
	clubID := query.Get(r, "clubId")
	if clubID == "" {
		apiutil.Error(w, http.StatusBadRequest, "Club ID is required")
		return
	}

	oid, err := primitive.ObjectIDFromHex(clubID)
	if err != nil {
		apiutil.Error(w, http.StatusNotFound, "Club not found")
		return
	}

	caller, _ := auth.CurrentUser(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	club, err := h.Clubs.GetByID(ctx, oid)
	if err == mongo.ErrNoDocuments {
		apiutil.Error(w, http.StatusNotFound, "Club not found")
		return
	}
	if err != nil {
		h.ErrLog.Internal(w, r, err, "get-applicants: load club", "Internal Server Error")
		return
	}

	if !authz.IsClubAdmin(club, caller.Email) {
		apiutil.Error(w, http.StatusForbidden, "Forbidden")
		return
	}

	applicants, err := h.Apps.ListByClub(ctx, clubID)
	if err != nil {
		h.ErrLog.Internal(w, r, err, "get-applicants: list applications", "Internal Server Error")
		return
	}
	if applicants == nil {
		applicants = []models.PendingApplication{}
	}

	apiutil.JSON(w, http.StatusOK, applicants)
}
