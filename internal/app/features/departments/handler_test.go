package departments

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	uierrors "github.com/dalemusser/clubhub/internal/app/features/errors"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"github.com/dalemusser/clubhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	log := zap.NewNop()
	return NewHandler(db, uierrors.NewErrorLogger(log), log), testutil.NewFixtures(t, db)
}

func TestHandleCreateDepartment(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	admin := fx.CreateUser(ctx, models.User{Email: "admin@example.com", Role: models.RoleAdmin})
	club := fx.CreateClub(ctx, models.Club{
		Name:        "Robotics Club",
		Departments: []string{"software"},
		AdminIDs:    []string{admin.Email},
	})

	req := testutil.NewJSONRequest(t, http.MethodPost, "/create-department", map[string]string{
		"clubId":     club.ID.Hex(),
		"department": "hardware",
	})
	req = testutil.WithUser(req, admin)
	rec := httptest.NewRecorder()
	h.HandleCreateDepartment(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	if got := testutil.MessageBody(t, rec); got != "Department created successfully" {
		t.Errorf("message = %q", got)
	}

	updated, err := h.Clubs.GetByID(ctx, club.ID)
	if err != nil {
		t.Fatalf("reload club: %v", err)
	}
	want := []string{"software", "hardware"}
	if !reflect.DeepEqual(updated.Departments, want) {
		t.Errorf("departments = %v, want %v", updated.Departments, want)
	}
}

func TestHandleCreateDepartmentDuplicate(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	admin := fx.CreateUser(ctx, models.User{Email: "admin@example.com", Role: models.RoleAdmin})
	club := fx.CreateClub(ctx, models.Club{
		Name:        "Robotics Club",
		Departments: []string{"software"},
		AdminIDs:    []string{admin.Email},
	})

	req := testutil.NewJSONRequest(t, http.MethodPost, "/create-department", map[string]string{
		"clubId":     club.ID.Hex(),
		"department": "software",
	})
	req = testutil.WithUser(req, admin)
	rec := httptest.NewRecorder()
	h.HandleCreateDepartment(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if got := testutil.ErrorBody(t, rec); got != "Department already exists" {
		t.Errorf("error = %q", got)
	}
}

func TestHandleCreateDepartmentCaseSensitive(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	admin := fx.CreateUser(ctx, models.User{Email: "admin@example.com", Role: models.RoleAdmin})
	club := fx.CreateClub(ctx, models.Club{
		Name:        "Robotics Club",
		Departments: []string{"Robotics"},
		AdminIDs:    []string{admin.Email},
	})

	req := testutil.NewJSONRequest(t, http.MethodPost, "/create-department", map[string]string{
		"clubId":     club.ID.Hex(),
		"department": "robotics",
	})
	req = testutil.WithUser(req, admin)
	rec := httptest.NewRecorder()
	h.HandleCreateDepartment(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: names differing in case are distinct", rec.Code)
	}
}

func TestHandleCreateDepartmentSanitizesName(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	admin := fx.CreateUser(ctx, models.User{Email: "admin@example.com", Role: models.RoleAdmin})
	club := fx.CreateClub(ctx, models.Club{
		Name:        "Robotics Club",
		Departments: []string{"robotics"},
		AdminIDs:    []string{admin.Email},
	})

	// Markup is stripped before the duplicate check, so a tagged variant
	// of an existing name collides rather than slipping in alongside it.
	req := testutil.NewJSONRequest(t, http.MethodPost, "/create-department", map[string]string{
		"clubId":     club.ID.Hex(),
		"department": "<script>alert(1)</script>robotics",
	})
	req = testutil.WithUser(req, admin)
	rec := httptest.NewRecorder()
	h.HandleCreateDepartment(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (body %s)", rec.Code, rec.Body.String())
	}
	if got := testutil.ErrorBody(t, rec); got != "Department already exists" {
		t.Errorf("error = %q", got)
	}

	req = testutil.NewJSONRequest(t, http.MethodPost, "/create-department", map[string]string{
		"clubId":     club.ID.Hex(),
		"department": "<b>outreach</b>",
	})
	req = testutil.WithUser(req, admin)
	rec = httptest.NewRecorder()
	h.HandleCreateDepartment(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	updated, err := h.Clubs.GetByID(ctx, club.ID)
	if err != nil {
		t.Fatalf("reload club: %v", err)
	}
	want := []string{"robotics", "outreach"}
	if !reflect.DeepEqual(updated.Departments, want) {
		t.Errorf("departments = %v, want %v", updated.Departments, want)
	}
}

func TestHandleUpdateDepartment(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	admin := fx.CreateUser(ctx, models.User{Email: "admin@example.com", Role: models.RoleAdmin})
	club := fx.CreateClub(ctx, models.Club{
		Name:        "Robotics Club",
		Departments: []string{"software", "hardware", "outreach"},
		AdminIDs:    []string{admin.Email},
	})
	member := fx.CreateUser(ctx, models.User{
		Email: "member@example.com",
		ClubIDs: []models.ClubMembership{
			{ClubID: club.ID.Hex(), Department: "hardware"},
		},
	})
	bystander := fx.CreateUser(ctx, models.User{
		Email: "bystander@example.com",
		ClubIDs: []models.ClubMembership{
			{ClubID: club.ID.Hex(), Department: "software"},
		},
	})
	fx.DB().Collection("clubs").FindOneAndUpdate(ctx,
		bson.M{"_id": club.ID},
		bson.M{"$set": bson.M{"member_ids": []string{member.ID, bystander.ID}}})

	req := testutil.NewJSONRequest(t, http.MethodPost, "/update-department", map[string]string{
		"clubId":        club.ID.Hex(),
		"oldDepartment": "hardware",
		"newDepartment": "mechatronics",
	})
	req = testutil.WithUser(req, admin)
	rec := httptest.NewRecorder()
	h.HandleUpdateDepartment(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	if got := testutil.MessageBody(t, rec); got != "Department updated successfully" {
		t.Errorf("message = %q", got)
	}

	updated, err := h.Clubs.GetByID(ctx, club.ID)
	if err != nil {
		t.Fatalf("reload club: %v", err)
	}
	want := []string{"software", "mechatronics", "outreach"}
	if !reflect.DeepEqual(updated.Departments, want) {
		t.Errorf("departments = %v, want position-preserving rename to %v", updated.Departments, want)
	}

	retagged, err := h.Users.GetByID(ctx, member.ID)
	if err != nil {
		t.Fatalf("reload member: %v", err)
	}
	if got := retagged.ClubIDs[0].Department; got != "mechatronics" {
		t.Errorf("member department = %q, want mechatronics", got)
	}
	untouched, err := h.Users.GetByID(ctx, bystander.ID)
	if err != nil {
		t.Fatalf("reload bystander: %v", err)
	}
	if got := untouched.ClubIDs[0].Department; got != "software" {
		t.Errorf("bystander department = %q, want software", got)
	}
}

func TestHandleUpdateDepartmentSanitizesNewName(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	admin := fx.CreateUser(ctx, models.User{Email: "admin@example.com", Role: models.RoleAdmin})
	club := fx.CreateClub(ctx, models.Club{
		Name:        "Robotics Club",
		Departments: []string{"hardware"},
		AdminIDs:    []string{admin.Email},
	})
	member := fx.CreateUser(ctx, models.User{
		Email: "member@example.com",
		ClubIDs: []models.ClubMembership{
			{ClubID: club.ID.Hex(), Department: "hardware"},
		},
	})
	fx.DB().Collection("clubs").FindOneAndUpdate(ctx,
		bson.M{"_id": club.ID},
		bson.M{"$set": bson.M{"member_ids": []string{member.ID}}})

	req := testutil.NewJSONRequest(t, http.MethodPost, "/update-department", map[string]string{
		"clubId":        club.ID.Hex(),
		"oldDepartment": "hardware",
		"newDepartment": "<i>mechatronics</i>",
	})
	req = testutil.WithUser(req, admin)
	rec := httptest.NewRecorder()
	h.HandleUpdateDepartment(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}

	updated, err := h.Clubs.GetByID(ctx, club.ID)
	if err != nil {
		t.Fatalf("reload club: %v", err)
	}
	if !reflect.DeepEqual(updated.Departments, []string{"mechatronics"}) {
		t.Errorf("departments = %v, want markup stripped", updated.Departments)
	}

	// The fan-out retags members with the cleaned name too.
	retagged, err := h.Users.GetByID(ctx, member.ID)
	if err != nil {
		t.Fatalf("reload member: %v", err)
	}
	if got := retagged.ClubIDs[0].Department; got != "mechatronics" {
		t.Errorf("member department = %q, want mechatronics", got)
	}
}

func TestHandleUpdateDepartmentValidation(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	admin := fx.CreateUser(ctx, models.User{Email: "admin@example.com", Role: models.RoleAdmin})
	club := fx.CreateClub(ctx, models.Club{
		Name:        "Robotics Club",
		Departments: []string{"software", "hardware"},
		AdminIDs:    []string{admin.Email},
	})

	cases := []struct {
		name      string
		old, new  string
		wantError string
	}{
		{"old missing from club", "nonexistent", "fresh", "Old department not found"},
		{"new already present", "software", "hardware", "New department already exists"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := testutil.NewJSONRequest(t, http.MethodPost, "/update-department", map[string]string{
				"clubId":        club.ID.Hex(),
				"oldDepartment": tc.old,
				"newDepartment": tc.new,
			})
			req = testutil.WithUser(req, admin)
			rec := httptest.NewRecorder()
			h.HandleUpdateDepartment(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			if got := testutil.ErrorBody(t, rec); got != tc.wantError {
				t.Errorf("error = %q, want %q", got, tc.wantError)
			}
		})
	}
}

func TestHandleDeleteDepartment(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	admin := fx.CreateUser(ctx, models.User{Email: "a@x.com", Role: models.RoleAdmin})
	club := fx.CreateClub(ctx, models.Club{
		Name:        "c1",
		Departments: []string{"eng"},
		AdminIDs:    []string{admin.Email},
	})
	member := fx.CreateUser(ctx, models.User{
		Email: "u1@x.com",
		ClubIDs: []models.ClubMembership{
			{ClubID: club.ID.Hex(), Department: "eng"},
		},
	})
	fx.DB().Collection("clubs").FindOneAndUpdate(ctx,
		bson.M{"_id": club.ID},
		bson.M{"$set": bson.M{"member_ids": []string{member.ID}}})

	req := testutil.NewJSONRequest(t, http.MethodPost, "/delete-department", map[string]string{
		"clubId":     club.ID.Hex(),
		"department": "eng",
	})
	req = testutil.WithUser(req, admin)
	rec := httptest.NewRecorder()
	h.HandleDeleteDepartment(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	if got := testutil.MessageBody(t, rec); got != "Department deleted successfully" {
		t.Errorf("message = %q", got)
	}

	updated, err := h.Clubs.GetByID(ctx, club.ID)
	if err != nil {
		t.Fatalf("reload club: %v", err)
	}
	if len(updated.Departments) != 0 {
		t.Errorf("departments = %v, want empty", updated.Departments)
	}

	// Membership survives; only the department tag moves to the sentinel.
	retagged, err := h.Users.GetByID(ctx, member.ID)
	if err != nil {
		t.Fatalf("reload member: %v", err)
	}
	if len(retagged.ClubIDs) != 1 {
		t.Fatalf("clubIds = %v, want one membership", retagged.ClubIDs)
	}
	if got := retagged.ClubIDs[0].Department; got != models.NoDepartment {
		t.Errorf("member department = %q, want %q", got, models.NoDepartment)
	}
}

func TestHandleDeleteDepartmentNotFound(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	admin := fx.CreateUser(ctx, models.User{Email: "admin@example.com", Role: models.RoleAdmin})
	club := fx.CreateClub(ctx, models.Club{
		Name:     "Robotics Club",
		AdminIDs: []string{admin.Email},
	})

	req := testutil.NewJSONRequest(t, http.MethodPost, "/delete-department", map[string]string{
		"clubId":     club.ID.Hex(),
		"department": "ghost",
	})
	req = testutil.WithUser(req, admin)
	rec := httptest.NewRecorder()
	h.HandleDeleteDepartment(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if got := testutil.ErrorBody(t, rec); got != "Department not found" {
		t.Errorf("error = %q", got)
	}
}

func TestHandleDeleteDepartmentForbidden(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	outsider := fx.CreateUser(ctx, models.User{Email: "outsider@example.com"})
	club := fx.CreateClub(ctx, models.Club{
		Name:        "Robotics Club",
		Departments: []string{"software"},
		AdminIDs:    []string{"admin@example.com"},
	})

	req := testutil.NewJSONRequest(t, http.MethodPost, "/delete-department", map[string]string{
		"clubId":     club.ID.Hex(),
		"department": "software",
	})
	req = testutil.WithUser(req, outsider)
	rec := httptest.NewRecorder()
	h.HandleDeleteDepartment(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}
