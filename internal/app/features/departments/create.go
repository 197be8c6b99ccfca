// internal/app/features/departments/create.go
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

type createDepartmentRequest struct {
	ClubID     string `json:"clubId"`
	Department string `json:"department"`
}

// HandleCreateDepartment appends a department to a club's list.
//
// Route: POST /api/admin/departments/create-department
//
// Department names are compared exactly; "Robotics" and "robotics" are
// distinct departments.
func (h *Handler) HandleCreateDepartment(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.CurrentUser(r)

	var req createDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ClubID == "" || req.Department == "" {
		apiutil.Error(w, http.StatusBadRequest, "Club ID and department are required")
		return
	}

	// Sanitize before the duplicate check so comparison runs on the
	// stored form.
	req.Department = inputval.CleanName(req.Department)

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
		h.ErrLog.Internal(w, r, err, "create-department: load club", "Internal Server Error")
		return
	}

	if !authz.IsClubAdmin(club, caller.Email) {
		apiutil.Error(w, http.StatusForbidden, "Forbidden")
		return
	}

	if club.HasDepartment(req.Department) {
		apiutil.Error(w, http.StatusBadRequest, "Department already exists")
		return
	}

	if err := h.Clubs.SetDepartments(ctx, clubID, append(club.Departments, req.Department)); err != nil {
		h.ErrLog.Internal(w, r, err, "create-department: write departments", "Internal Server Error")
		return
	}

	h.Log.Info("department created",
		zap.String("club_id", req.ClubID),
		zap.String("department", req.Department))

	apiutil.Message(w, http.StatusOK, "Department created successfully")
}
