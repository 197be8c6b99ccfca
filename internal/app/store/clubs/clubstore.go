// internal/app/store/clubs/clubstore.go
package clubstore

import (
	"context"
	"time"

	"github.com/dalemusser/clubhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store wraps the clubs collection.
//
// Deliberately thin: the admin/department mutations are read-modify-write
// sequences owned by the handlers, with no optimistic-concurrency token.
// A concurrent writer between a handler's read and its Set* call wins or
// loses wholesale (lost update). That is the source system's behavior and
// the compatibility contract preserves it.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("clubs")}
}

// GetByID loads one club. Returns mongo.ErrNoDocuments when absent.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Club, error) {
	var club models.Club
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&club); err != nil {
		return models.Club{}, err
	}
	return club, nil
}

// GetByIDs loads the clubs whose ids still resolve; missing ids are
// silently absent from the result (orphan tolerance for stale references).
func (s *Store) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Club, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cur, err := s.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var clubs []models.Club
	if err := cur.All(ctx, &clubs); err != nil {
		return nil, err
	}
	return clubs, nil
}

// ListAll returns every club in full. Super-admin listing only.
func (s *Store) ListAll(ctx context.Context) ([]models.Club, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var clubs []models.Club
	if err := cur.All(ctx, &clubs); err != nil {
		return nil, err
	}
	return clubs, nil
}

// ListSummaries returns the directory projection of every club.
func (s *Store) ListSummaries(ctx context.Context) ([]models.ClubSummary, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var clubs []models.ClubSummary
	if err := cur.All(ctx, &clubs); err != nil {
		return nil, err
	}
	return clubs, nil
}

// Insert creates a club, assigning the id and the immutable CreatedAt.
func (s *Store) Insert(ctx context.Context, club models.Club) (models.Club, error) {
	club.ID = primitive.NewObjectID()
	club.CreatedAt = time.Now().UTC()
	if _, err := s.c.InsertOne(ctx, club); err != nil {
		return models.Club{}, err
	}
	return club, nil
}

// Delete removes a club. Returns the number of documents deleted (0 or 1).
// No cascade: users' membership records and pending applications that
// reference the club are left behind.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Patch holds the partial-update fields of a club. Nil means "leave
// untouched"; a present-but-empty slice overwrites.
type Patch struct {
	Name        *string
	Departments *[]string
	AdminIDs    *[]string
	MemberIDs   *[]string
}

// Update applies only the fields present in the patch. CreatedAt is never
// touched.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, p Patch) error {
	set := bson.M{}
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.Departments != nil {
		set["departments"] = *p.Departments
	}
	if p.AdminIDs != nil {
		set["admin_ids"] = *p.AdminIDs
	}
	if p.MemberIDs != nil {
		set["member_ids"] = *p.MemberIDs
	}
	if len(set) == 0 {
		return nil
	}
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}

// SetAdminIDs overwrites the admin email list.
func (s *Store) SetAdminIDs(ctx context.Context, id primitive.ObjectID, adminIDs []string) error {
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{"admin_ids": adminIDs}})
	return err
}

// SetMemberIDs overwrites the member subject-id list.
func (s *Store) SetMemberIDs(ctx context.Context, id primitive.ObjectID, memberIDs []string) error {
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{"member_ids": memberIDs}})
	return err
}

// SetDepartments overwrites the department list.
func (s *Store) SetDepartments(ctx context.Context, id primitive.ObjectID, departments []string) error {
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{"departments": departments}})
	return err
}
