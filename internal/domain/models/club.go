// internal/domain/models/club.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Club is the tenant entity: a named club with its departments and the
// people attached to it.
//
// NOTE:
//   - AdminIDs holds admin *emails*; MemberIDs holds user subject ids.
//     The asymmetry is inherited from the identity provider era of this
//     system and every authorization comparison depends on it, so it is
//     kept as-is.
//   - Departments is an ordered list of unique names (case-sensitive).
type Club struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Departments []string           `bson:"departments" json:"departments"`
	AdminIDs    []string           `bson:"admin_ids" json:"adminIds"`
	MemberIDs   []string           `bson:"member_ids" json:"memberIds"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
}

// ClubSummary is the projection returned to regular members browsing the
// club directory. Admin and member rosters are not exposed there.
type ClubSummary struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Departments []string           `bson:"departments" json:"departments"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
}

// HasDepartment reports whether the club currently carries the named
// department (exact, case-sensitive match).
func (c Club) HasDepartment(name string) bool {
	for _, d := range c.Departments {
		if d == name {
			return true
		}
	}
	return false
}

// HasAdmin reports whether the email is in the club's admin list.
func (c Club) HasAdmin(email string) bool {
	for _, a := range c.AdminIDs {
		if a == email {
			return true
		}
	}
	return false
}

// HasMember reports whether the subject id is in the club's member list.
func (c Club) HasMember(userID string) bool {
	for _, m := range c.MemberIDs {
		if m == userID {
			return true
		}
	}
	return false
}
