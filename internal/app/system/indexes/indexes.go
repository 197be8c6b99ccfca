// Package indexes reconciles the lookup indexes the API depends on.
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent:
CreateMany on an identical existing index is a no-op.

Deliberately absent: a unique index on temp_users (user_id, club_id).
The duplicate-application guard is a pre-check query, and turning it
into a constraint would change observable behavior under races.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureUsers(ctx, db); err != nil {
		problems = append(problems, "users: "+err.Error())
	}
	if err := ensureClubs(ctx, db); err != nil {
		problems = append(problems, "clubs: "+err.Error())
	}
	if err := ensureApplications(ctx, db); err != nil {
		problems = append(problems, "temp_users: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensureUsers(ctx context.Context, db *mongo.Database) error {
	// Email lookup backs add-admin; not unique (the id, not the email,
	// is the primary identity key).
	_, err := db.Collection("users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("email_lookup"),
		},
		{
			Keys:    bson.D{{Key: "club_ids.club_id", Value: 1}},
			Options: options.Index().SetName("club_membership"),
		},
	})
	return err
}

func ensureClubs(ctx context.Context, db *mongo.Database) error {
	// No uniqueness on name: the source system allows duplicate club names.
	_, err := db.Collection("clubs").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("created_desc"),
		},
	})
	return err
}

func ensureApplications(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("temp_users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "club_id", Value: 1}},
			Options: options.Index().SetName("by_club"),
		},
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "club_id", Value: 1}},
			Options: options.Index().SetName("by_user_club"),
		},
	})
	return err
}
