// internal/app/features/departments/update.go
package departments

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/clubhub/internal/app/system/apiutil"
	"github.com/dalemusser/clubhub/internal/app/system/auth"
	"github.com/dalemusser/clubhub/internal/app/system/authz"
	"github.com/dalemusser/clubhub/internal/app/system/inputval"
	"github.com/dalemusser/clubhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type updateDepartmentRequest struct {
	ClubID        string `json:"clubId"`
	OldDepartment string `json:"oldDepartment"`
	NewDepartment string `json:"newDepartment"`
}

// HandleUpdateDepartment renames a department in place and retags every
// member whose membership carried the old name.
//
// Route: POST /api/admin/departments/update-department
//
// The rename preserves the department's position in the list. The member
// fan-out runs one user at a time after the club write; a failure partway
// leaves earlier users retagged and later ones not.
func (h *Handler) HandleUpdateDepartment(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.CurrentUser(r)

	var req updateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ClubID == "" || req.OldDepartment == "" || req.NewDepartment == "" {
		apiutil.Error(w, http.StatusBadRequest, "Club ID, old department, and new department are required")
		return
	}

	// The replacement name is sanitized before the collision check so
	// comparison runs on the stored form. The old name is matched as
	// stored.
	req.NewDepartment = inputval.CleanName(req.NewDepartment)

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
		h.ErrLog.Internal(w, r, err, "update-department: load club", "Internal Server Error")
		return
	}

	if !authz.IsClubAdmin(club, caller.Email) {
		apiutil.Error(w, http.StatusForbidden, "Forbidden")
		return
	}

	if !club.HasDepartment(req.OldDepartment) {
		apiutil.Error(w, http.StatusBadRequest, "Old department not found")
		return
	}
	if club.HasDepartment(req.NewDepartment) {
		apiutil.Error(w, http.StatusBadRequest, "New department already exists")
		return
	}

	renamed := make([]string, len(club.Departments))
	for i, dept := range club.Departments {
		if dept == req.OldDepartment {
			renamed[i] = req.NewDepartment
		} else {
			renamed[i] = dept
		}
	}

	if err := h.Clubs.SetDepartments(ctx, clubID, renamed); err != nil {
		h.ErrLog.Internal(w, r, err, "update-department: write departments", "Internal Server Error")
		return
	}

	for _, memberID := range club.MemberIDs {
		if err := h.Users.RetagClubDepartment(ctx, memberID, req.ClubID, req.OldDepartment, req.NewDepartment); err != nil {
			h.ErrLog.Internal(w, r, err, "update-department: retag member", "Internal Server Error")
			return
		}
	}

	h.Log.Info("department renamed",
		zap.String("club_id", req.ClubID),
		zap.String("old_department", req.OldDepartment),
		zap.String("new_department", req.NewDepartment))

	apiutil.Message(w, http.StatusOK, "Department updated successfully")
}
