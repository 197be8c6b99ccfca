package clubstore_test

import (
	"testing"

	clubstore "github.com/dalemusser/clubhub/internal/app/store/clubs"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"github.com/dalemusser/clubhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStore_Insert(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := clubstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Insert(ctx, models.Club{
		Name:        "Chess Club",
		Departments: []string{"openings"},
		AdminIDs:    []string{"admin@example.com"},
		MemberIDs:   []string{},
	})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}

	loaded, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if loaded.Name != "Chess Club" {
		t.Errorf("Name: got %q", loaded.Name)
	}
}

func TestStore_GetByID_Missing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := clubstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.GetByID(ctx, primitive.NewObjectID())
	if err != mongo.ErrNoDocuments {
		t.Errorf("err = %v, want mongo.ErrNoDocuments", err)
	}
}

func TestStore_GetByIDs_DropsMissing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := clubstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	a := fixtures.CreateClub(ctx, models.Club{Name: "A"})
	b := fixtures.CreateClub(ctx, models.Club{Name: "B"})

	clubs, err := store.GetByIDs(ctx, []primitive.ObjectID{a.ID, primitive.NewObjectID(), b.ID})
	if err != nil {
		t.Fatalf("GetByIDs failed: %v", err)
	}
	if len(clubs) != 2 {
		t.Errorf("got %d clubs, want 2 (missing id dropped silently)", len(clubs))
	}
}

func TestStore_ListSummaries(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := clubstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateClub(ctx, models.Club{
		Name:      "Chess Club",
		AdminIDs:  []string{"admin@example.com"},
		MemberIDs: []string{"m1"},
	})

	summaries, err := store.ListSummaries(ctx)
	if err != nil {
		t.Fatalf("ListSummaries failed: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("got %d summaries, want 1", len(summaries))
	}
	s := summaries[0]
	if s.Name != "Chess Club" || s.ID == primitive.NilObjectID || s.CreatedAt.IsZero() {
		t.Errorf("summary = %+v", s)
	}
}

func TestStore_Update_Partial(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := clubstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	club := fixtures.CreateClub(ctx, models.Club{
		Name:        "Chess Club",
		Departments: []string{"openings"},
		AdminIDs:    []string{"admin@example.com"},
	})

	newName := "Renamed"
	empty := []string{}
	err := store.Update(ctx, club.ID, clubstore.Patch{Name: &newName, AdminIDs: &empty})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	updated, err := store.GetByID(ctx, club.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if updated.Name != "Renamed" {
		t.Errorf("Name: got %q", updated.Name)
	}
	if len(updated.AdminIDs) != 0 {
		t.Errorf("AdminIDs: got %v, want cleared", updated.AdminIDs)
	}
	if len(updated.Departments) != 1 {
		t.Errorf("Departments changed: %v", updated.Departments)
	}
}

func TestStore_Update_EmptyPatchIsNoop(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := clubstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	club := fixtures.CreateClub(ctx, models.Club{Name: "Chess Club"})

	if err := store.Update(ctx, club.ID, clubstore.Patch{}); err != nil {
		t.Fatalf("empty patch should be a no-op: %v", err)
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := clubstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	club := fixtures.CreateClub(ctx, models.Club{Name: "Chess Club"})

	n, err := store.Delete(ctx, club.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if n != 1 {
		t.Errorf("deleted = %d, want 1", n)
	}

	n, err = store.Delete(ctx, club.ID)
	if err != nil {
		t.Fatalf("second Delete failed: %v", err)
	}
	if n != 0 {
		t.Errorf("deleted = %d, want 0", n)
	}
}
