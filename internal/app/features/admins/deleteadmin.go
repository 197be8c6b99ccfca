// internal/app/features/admins/deleteadmin.go
package admins

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

type deleteAdminRequest struct {
	ClubID string `json:"clubId"`
	Email  string `json:"email"`
}

// HandleDeleteAdmin removes an email from a club's admin list.
//
// Route: POST /api/admin/admins/delete-admin
//
// Demotion does not undo promotion side effects: the user keeps the
// admin role and stays in member_ids. Admins may also remove themselves.
func (h *Handler) HandleDeleteAdmin(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.CurrentUser(r)

	var req deleteAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ClubID == "" || req.Email == "" {
		apiutil.Error(w, http.StatusBadRequest, "Club ID and email are required")
		return
	}

	clubID, err := primitive.ObjectIDFromHex(req.ClubID)
	if err != nil {
		apiutil.Error(w, http.StatusNotFound, "Club not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	club, err := h.Clubs.GetByID(ctx, clubID)
	if err == mongo.ErrNoDocuments {
		apiutil.Error(w, http.StatusNotFound, "Club not found")
		return
	}
	if err != nil {
		h.ErrLog.Internal(w, r, err, "delete-admin: load club", "Internal Server Error")
		return
	}

	if !authz.IsClubAdmin(club, caller.Email) {
		apiutil.Error(w, http.StatusForbidden, "Forbidden")
		return
	}

	if !club.HasAdmin(req.Email) {
		apiutil.Error(w, http.StatusBadRequest, "User is not an admin")
		return
	}

	remaining := make([]string, 0, len(club.AdminIDs))
	for _, a := range club.AdminIDs {
		if a != req.Email {
			remaining = append(remaining, a)
		}
	}

	if err := h.Clubs.SetAdminIDs(ctx, clubID, remaining); err != nil {
		h.ErrLog.Internal(w, r, err, "delete-admin: write admin_ids", "Internal Server Error")
		return
	}

	h.Log.Info("admin removed",
		zap.String("club_id", req.ClubID),
		zap.String("admin_email", req.Email))

	apiutil.Message(w, http.StatusOK, "Admin removed successfully")
}
