// internal/domain/models/application.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PendingApplication is a member's unresolved request to join a club and
// department. It snapshots the applicant's identity at application time;
// later profile changes do not propagate into it.
//
// At most one application per (user, club) should exist at a time. That
// rule is enforced by a pre-check query before insert, not by a unique
// index, so concurrent applies can race. Accepted behavior.
type PendingApplication struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     string             `bson:"user_id" json:"userId"`
	Email      string             `bson:"email" json:"email"`
	Name       string             `bson:"name" json:"name"`
	ClubID     string             `bson:"club_id" json:"clubId"`
	Department string             `bson:"department" json:"department"`
	Role       string             `bson:"role" json:"role"`
	AppliedAt  time.Time          `bson:"applied_at" json:"appliedAt"`
}
