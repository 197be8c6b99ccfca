// internal/domain/models/user.go
package models

import "time"

// Roles a user document can carry. SuperAdmin has global rights over all
// clubs; Admin is per-club (membership of Club.AdminIDs decides which).
const (
	RoleMember     = "member"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// NoDepartment is the sentinel department tag written to a member's club
// record when the department they belonged to is deleted.
const NoDepartment = "no-department"

// ClubMembership is one entry of a user's club list: which club, and the
// department tag inside it (at most one per club at a time).
type ClubMembership struct {
	ClubID     string `bson:"club_id" json:"clubId"`
	Department string `bson:"department" json:"department"`
}

// User represents an account created on first successful login.
//
// The _id is the identity provider's subject id (an opaque string stable
// for the lifetime of the account), not a store-assigned ObjectID. Admin
// authorization, by contrast, is keyed by email - see Club.AdminIDs.
type User struct {
	ID       string           `bson:"_id" json:"id"`
	Email    string           `bson:"email" json:"email"`
	Name     string           `bson:"name" json:"name"`
	PhotoURL string           `bson:"photo_url,omitempty" json:"photoURL,omitempty"`
	Role     string           `bson:"role" json:"role"`
	ClubIDs  []ClubMembership `bson:"club_ids" json:"clubIds"`
	JoinedAt time.Time        `bson:"joined_at" json:"joinedAt"`
}

// MemberOf reports whether the user holds a membership record for the club.
func (u User) MemberOf(clubID string) bool {
	for _, m := range u.ClubIDs {
		if m.ClubID == clubID {
			return true
		}
	}
	return false
}
