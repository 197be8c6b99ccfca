// internal/app/store/applications/applicationstore.go
package applicationstore

import (
	"context"
	"time"

	"github.com/dalemusser/clubhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store wraps the temp_users collection of pending club applications.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("temp_users")}
}

// ExistsForUserClub reports whether an application for (userID, clubID)
// is already pending. This is a pre-check, not a constraint: two
// concurrent applies can both pass it. Accepted behavior.
func (s *Store) ExistsForUserClub(ctx context.Context, userID, clubID string) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{"user_id": userID, "club_id": clubID}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Insert stores a new application, assigning id and AppliedAt.
func (s *Store) Insert(ctx context.Context, app models.PendingApplication) (models.PendingApplication, error) {
	app.ID = primitive.NewObjectID()
	app.AppliedAt = time.Now().UTC()
	if _, err := s.c.InsertOne(ctx, app); err != nil {
		return models.PendingApplication{}, err
	}
	return app, nil
}

// GetByID loads one application. Returns mongo.ErrNoDocuments when absent.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.PendingApplication, error) {
	var app models.PendingApplication
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&app); err != nil {
		return models.PendingApplication{}, err
	}
	return app, nil
}

// Delete removes one application. Returns the deleted count (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// ListByClub returns every pending application for the club.
func (s *Store) ListByClub(ctx context.Context, clubID string) ([]models.PendingApplication, error) {
	cur, err := s.c.Find(ctx, bson.M{"club_id": clubID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var apps []models.PendingApplication
	if err := cur.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}
