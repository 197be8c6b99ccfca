// internal/app/features/departments/delete.go
package departments

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

type deleteDepartmentRequest struct {
	ClubID     string `json:"clubId"`
	Department string `json:"department"`
}

// HandleDeleteDepartment removes a department from a club and moves the
// affected members to the no-department sentinel.
//
// Route: POST /api/admin/departments/delete-department
//
// Members keep their club membership; only the department tag changes.
func (h *Handler) HandleDeleteDepartment(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.CurrentUser(r)

	var req deleteDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ClubID == "" || req.Department == "" {
		apiutil.Error(w, http.StatusBadRequest, "Club ID and department are required")
		return
	}

	clubID, err := primitive.ObjectIDFromHex(req.ClubID)
	if err != nil {
		apiutil.Error(w, http.StatusNotFound, "Club not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	club, err := h.Clubs.GetByID(ctx, clubID)
	if err == mongo.ErrNoDocuments {
		apiutil.Error(w, http.StatusNotFound, "Club not found")
		return
	}
	if err != nil {
		h.ErrLog.Internal(w, r, err, "delete-department: load club", "Internal Server Error")
		return
	}

	if !authz.IsClubAdmin(club, caller.Email) {
		apiutil.Error(w, http.StatusForbidden, "Forbidden")
		return
	}

	if !club.HasDepartment(req.Department) {
		apiutil.Error(w, http.StatusBadRequest, "Department not found")
		return
	}

	remaining := make([]string, 0, len(club.Departments))
	for _, dept := range club.Departments {
		if dept != req.Department {
			remaining = append(remaining, dept)
		}
	}

	if err := h.Clubs.SetDepartments(ctx, clubID, remaining); err != nil {
		h.ErrLog.Internal(w, r, err, "delete-department: write departments", "Internal Server Error")
		return
	}

	for _, memberID := range club.MemberIDs {
		if err := h.Users.RetagClubDepartment(ctx, memberID, req.ClubID, req.Department, models.NoDepartment); err != nil {
			h.ErrLog.Internal(w, r, err, "delete-department: retag member", "Internal Server Error")
			return
		}
	}

	h.Log.Info("department deleted",
		zap.String("club_id", req.ClubID),
		zap.String("department", req.Department))

	apiutil.Message(w, http.StatusOK, "Department deleted successfully")
}
