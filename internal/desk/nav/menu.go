// Package nav owns the role-keyed navigation menu. The menu is a fixed
// declaration: each role's block is listed once, in on-screen order, and
// every role shares the universal trailing logout entry.
package nav

import "github.com/itbsclubs/clubdesk/internal/desk/domain"

// Entry is a single navigation item: where it goes, what it is called, and
// which icon the front end renders next to it.
type Entry struct {
	Path  string
	Label string
	Icon  string
}

// Dashboard roots per role; the activation gate redirects here after login.
const (
	AdminRoot     = "/dashboard"
	ModeratorRoot = "/dashboard-moderateur"
	StudentRoot   = "/dashboard-etudiant"
	LoginPath     = "/login"
)

var adminEntries = []Entry{
	{Path: AdminRoot, Label: "Tableau de bord", Icon: "layout-dashboard"},
	{Path: AdminRoot + "/clubs", Label: "Clubs", Icon: "users"},
	{Path: AdminRoot + "/evenements", Label: "Événements", Icon: "calendar"},
	{Path: AdminRoot + "/blogs", Label: "Blogs", Icon: "newspaper"},
	{Path: AdminRoot + "/users", Label: "Utilisateurs", Icon: "user-cog"},
	{Path: AdminRoot + "/upload", Label: "Uploads", Icon: "upload"},
}

var moderatorEntries = []Entry{
	{Path: ModeratorRoot, Label: "Tableau de bord", Icon: "layout-dashboard"},
	{Path: ModeratorRoot + "/myClub", Label: "Mon Club", Icon: "shield"},
	{Path: ModeratorRoot + "/myClub/members", Label: "Membres", Icon: "users"},
	{Path: ModeratorRoot + "/myClub/evenements", Label: "Événements", Icon: "calendar"},
	{Path: ModeratorRoot + "/blogs", Label: "Blogs", Icon: "newspaper"},
	{Path: ModeratorRoot + "/demandes", Label: "Demandes", Icon: "inbox"},
	{Path: ModeratorRoot + "/comptes_enables", Label: "Comptes en attente", Icon: "user-check"},
}

var studentEntries = []Entry{
	{Path: StudentRoot, Label: "Tableau de bord", Icon: "layout-dashboard"},
	{Path: StudentRoot + "/clubs", Label: "Clubs", Icon: "users"},
}

var logoutEntry = Entry{Path: LoginPath, Label: "Déconnexion", Icon: "log-out"}

// Build returns the ordered menu for a role: the role's own block followed
// by the universal logout entry. Pure and idempotent; callers get a fresh
// slice each time. An unknown role (which ResolveRole prevents, but the
// menu handles anyway) yields only the logout entry, never an empty menu.
func Build(role domain.Role) []Entry {
	var block []Entry
	switch role {
	case domain.RoleAdmin:
		block = adminEntries
	case domain.RoleModerator:
		block = moderatorEntries
	case domain.RoleStudent:
		block = studentEntries
	}

	menu := make([]Entry, 0, len(block)+1)
	menu = append(menu, block...)
	return append(menu, logoutEntry)
}

// Root returns the post-login dashboard root for a role.
func Root(role domain.Role) string {
	switch role {
	case domain.RoleAdmin:
		return AdminRoot
	case domain.RoleModerator:
		return ModeratorRoot
	default:
		return StudentRoot
	}
}
