// Package authz holds the authorization decisions for club-scoped and
// global operations.
//
// These are pure predicates over already-loaded documents: callers load
// the club (and, for the super-admin check, the caller's own user
// document) first, handle NotFound, and only then ask authz. The caller
// identity is passed in explicitly; nothing here reads request state.
package authz

import "github.com/dalemusser/clubhub/internal/domain/models"

// IsClubAdmin reports whether the caller may perform administrative
// actions on the club. Admin membership is keyed by the caller's *email*
// (Club.AdminIDs holds emails, not subject ids).
func IsClubAdmin(club models.Club, callerEmail string) bool {
	return callerEmail != "" && club.HasAdmin(callerEmail)
}

// IsSuperAdmin reports whether the user document carries the global
// super-admin role. The check runs against the caller's freshly loaded
// user document each request, so a revoked role takes effect immediately.
func IsSuperAdmin(u models.User) bool {
	return u.Role == models.RoleSuperAdmin
}

// IsClubMember reports whether the user holds a membership record for the
// club. Membership is keyed by subject id, unlike admin membership.
func IsClubMember(u models.User, clubID string) bool {
	return u.MemberOf(clubID)
}
