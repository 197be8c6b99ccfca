package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/clubhub/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test documents.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// NewUID mints an identity-provider-style subject id.
func NewUID() string {
	return uuid.NewString()
}

// CreateClub inserts a club and returns it with its generated id.
func (f *Fixtures) CreateClub(ctx context.Context, club models.Club) models.Club {
	f.t.Helper()

	if club.ID.IsZero() {
		club.ID = primitive.NewObjectID()
	}
	if club.Departments == nil {
		club.Departments = []string{}
	}
	if club.AdminIDs == nil {
		club.AdminIDs = []string{}
	}
	if club.MemberIDs == nil {
		club.MemberIDs = []string{}
	}
	if club.CreatedAt.IsZero() {
		club.CreatedAt = time.Now().UTC()
	}

	if _, err := f.db.Collection("clubs").InsertOne(ctx, club); err != nil {
		f.t.Fatalf("failed to create test club: %v", err)
	}
	return club
}

// CreateUser inserts a user document. A zero ID gets a fresh subject id,
// an empty role defaults to member.
func (f *Fixtures) CreateUser(ctx context.Context, u models.User) models.User {
	f.t.Helper()

	if u.ID == "" {
		u.ID = NewUID()
	}
	if u.Role == "" {
		u.Role = models.RoleMember
	}
	if u.ClubIDs == nil {
		u.ClubIDs = []models.ClubMembership{}
	}
	if u.JoinedAt.IsZero() {
		u.JoinedAt = time.Now().UTC()
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return u
}

// CreateApplication inserts a pending application.
func (f *Fixtures) CreateApplication(ctx context.Context, app models.PendingApplication) models.PendingApplication {
	f.t.Helper()

	if app.ID.IsZero() {
		app.ID = primitive.NewObjectID()
	}
	if app.Role == "" {
		app.Role = models.RoleMember
	}
	if app.AppliedAt.IsZero() {
		app.AppliedAt = time.Now().UTC()
	}

	if _, err := f.db.Collection("temp_users").InsertOne(ctx, app); err != nil {
		f.t.Fatalf("failed to create test application: %v", err)
	}
	return app
}
