// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"time"

	"github.com/dalemusser/clubhub/internal/app/system/idtoken"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// GetByID loads a user by identity-provider subject id.
// Returns mongo.ErrNoDocuments when absent.
func (s *Store) GetByID(ctx context.Context, id string) (models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// GetByEmail looks up a user by exact email match. Admin promotion keys
// on email, and the comparison is case-sensitive like everything else.
func (s *Store) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// EnsureUser loads the user for a verified identity, creating the
// document on first login: role member, no memberships, JoinedAt now.
// Profile fields are stamped at creation and not refreshed afterwards.
func (s *Store) EnsureUser(ctx context.Context, id idtoken.Identity) (models.User, error) {
	u, err := s.GetByID(ctx, id.UID)
	if err == nil {
		return u, nil
	}
	if err != mongo.ErrNoDocuments {
		return models.User{}, err
	}

	u = models.User{
		ID:       id.UID,
		Email:    id.Email,
		Name:     id.Name,
		PhotoURL: id.Picture,
		Role:     models.RoleMember,
		ClubIDs:  []models.ClubMembership{},
		JoinedAt: time.Now().UTC(),
	}
	if _, err := s.c.InsertOne(ctx, u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// SetRole overwrites the user's role. Demotion is never performed by the
// API (removing an admin does not touch the role); promotion is.
func (s *Store) SetRole(ctx context.Context, id, role string) error {
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"role": role}})
	return err
}

// SetClubMemberships overwrites the user's membership records.
func (s *Store) SetClubMemberships(ctx context.Context, id string, clubIDs []models.ClubMembership) error {
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"club_ids": clubIDs}})
	return err
}

// RetagClubDepartment rewrites the user's membership entries matching
// (clubID, oldDept) to newDept, leaving every other entry untouched.
// One read plus one write; the department fan-out calls this per member.
// A user that no longer exists is skipped without error, matching the
// source system's fan-out loop.
func (s *Store) RetagClubDepartment(ctx context.Context, id, clubID, oldDept, newDept string) error {
	u, err := s.GetByID(ctx, id)
	if err == mongo.ErrNoDocuments {
		return nil
	}
	if err != nil {
		return err
	}

	changed := false
	for i, m := range u.ClubIDs {
		if m.ClubID == clubID && m.Department == oldDept {
			u.ClubIDs[i].Department = newDept
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.SetClubMemberships(ctx, id, u.ClubIDs)
}

// ListByClubID returns every user holding a membership record for the club.
func (s *Store) ListByClubID(ctx context.Context, clubID string) ([]models.User, error) {
	cur, err := s.c.Find(ctx, bson.M{"club_ids.club_id": clubID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
