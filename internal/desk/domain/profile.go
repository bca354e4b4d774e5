package domain

import "strings"

// UserProfile is the cached summary of the authenticated user. It is
// derived, not authoritative: built once at login from the login response
// and/or the token claims, then read until the next login.
type UserProfile struct {
	ID          int64
	DisplayName string
	Email       string
	Role        Role

	// Enabled only matters for RoleStudent: a student account exists in a
	// disabled state between approval and the interview decision. Admins and
	// moderators are always treated as enabled.
	Enabled bool
}

// DisplayNameOf joins the platform's prenom/nom pair into one display name.
func DisplayNameOf(prenom, nom string) string {
	return strings.TrimSpace(strings.TrimSpace(prenom) + " " + strings.TrimSpace(nom))
}
