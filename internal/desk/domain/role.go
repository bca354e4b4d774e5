package domain

import "strings"

// Role is the closed set of access tags the client knows about. There is no
// hierarchy; each role's navigation block is enumerated independently.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleModerator Role = "MODERATOR"
	RoleStudent   Role = "STUDENT"
)

// roleAliases maps every accepted wire spelling to the canonical tag. The
// backend mixes English and French spellings depending on its build.
var roleAliases = map[string]Role{
	"ADMIN":      RoleAdmin,
	"MODERATOR":  RoleModerator,
	"MODERATEUR": RoleModerator,
	"STUDENT":    RoleStudent,
	"ETUDIANT":   RoleStudent,
}

// RoleSources carries the role-bearing fields a login payload may expose, in
// extraction priority order: a direct role string, a roles list, then a
// flattened authorities list.
type RoleSources struct {
	Role        string
	Roles       []string
	Authorities []string
}

// ResolveRole normalizes whatever role information a payload carried into
// one canonical tag. It never fails: absent, empty, or unrecognized values
// all resolve to RoleStudent. Falling back to the least-privileged tag is
// deliberate; an unknown-but-possibly-elevated role string must not unlock
// elevated navigation.
func ResolveRole(src RoleSources) Role {
	raw := src.Role
	if raw == "" && len(src.Roles) > 0 {
		raw = src.Roles[0]
	}
	if raw == "" && len(src.Authorities) > 0 {
		raw = src.Authorities[0]
	}

	role, ok := ParseRole(raw)
	if !ok {
		return RoleStudent
	}
	return role
}

// ParseRole maps a single raw role string to the closed set, reporting
// whether it was recognized. The "ROLE_" namespace prefix is stripped and
// matching is case-insensitive.
func ParseRole(raw string) (Role, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	normalized = strings.TrimPrefix(normalized, "ROLE_")

	role, ok := roleAliases[normalized]
	return role, ok
}
