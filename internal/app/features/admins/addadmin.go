// internal/app/features/admins/addadmin.go
package admins

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/clubhub/internal/app/system/apiutil"
	"github.com/dalemusser/clubhub/internal/app/system/auth"
	"github.com/dalemusser/clubhub/internal/app/system/authz"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type addAdminRequest struct {
	ClubID string `json:"clubId"`
	Email  string `json:"email"`
}

// HandleAddAdmin promotes a user to club admin.
//
// Route: POST /api/admin/admins/add-admin
//
// Three independent writes, in this order: append the email to
// admin_ids, append the user's subject id to member_ids if missing, set
// the user's role to admin. Not atomic; a failure mid-sequence leaves
// earlier writes in place.
func (h *Handler) HandleAddAdmin(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.CurrentUser(r)

	var req addAdminRequest
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
		h.ErrLog.Internal(w, r, err, "add-admin: load club", "Internal Server Error")
		return
	}

	if !authz.IsClubAdmin(club, caller.Email) {
		apiutil.Error(w, http.StatusForbidden, "Forbidden")
		return
	}

	if club.HasAdmin(req.Email) {
		apiutil.Error(w, http.StatusBadRequest, "User is already an admin")
		return
	}

	target, err := h.Users.GetByEmail(ctx, req.Email)
	if err == mongo.ErrNoDocuments {
		apiutil.Error(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		h.ErrLog.Internal(w, r, err, "add-admin: load user", "Internal Server Error")
		return
	}

	if err := h.Clubs.SetAdminIDs(ctx, clubID, append(club.AdminIDs, req.Email)); err != nil {
		h.ErrLog.Internal(w, r, err, "add-admin: write admin_ids", "Internal Server Error")
		return
	}

	if !club.HasMember(target.ID) {
		if err := h.Clubs.SetMemberIDs(ctx, clubID, append(club.MemberIDs, target.ID)); err != nil {
			h.ErrLog.Internal(w, r, err, "add-admin: write member_ids", "Internal Server Error")
			return
		}
	}

	if err := h.Users.SetRole(ctx, target.ID, models.RoleAdmin); err != nil {
		h.ErrLog.Internal(w, r, err, "add-admin: write role", "Internal Server Error")
		return
	}

	h.Log.Info("admin added",
		zap.String("club_id", req.ClubID),
		zap.String("admin_email", req.Email))

	apiutil.Message(w, http.StatusOK, "Admin added successfully")
}
