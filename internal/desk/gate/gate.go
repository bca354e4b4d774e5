// Package gate holds the client's access-control decisions as pure
// functions. Gates never touch the router or the notifier themselves; they
// return intent values a boundary adapter translates into navigation or
// notices, which keeps every branch unit-testable without I/O.
package gate

import (
	"time"

	"github.com/itbsclubs/clubdesk/internal/desk/domain"
	"github.com/itbsclubs/clubdesk/internal/desk/nav"
	"github.com/itbsclubs/clubdesk/pkg/clubapi"
)

// Kind discriminates the decision intents.
type Kind int

const (
	// KindAllow permits rendering; Decision.Role carries the resolved role.
	KindAllow Kind = iota

	// KindRedirect instructs the router to navigate to Decision.Path and
	// render nothing else.
	KindRedirect

	// KindNotice keeps the user where they are and surfaces Decision.Notice
	// as a dismissible message.
	KindNotice
)

// Decision is the intent value every gate returns.
type Decision struct {
	Kind   Kind
	Role   domain.Role
	Path   string
	Notice string
}

// PendingActivationNotice is shown to students whose account exists but has
// not been activated by their club's moderator yet.
const PendingActivationNotice = "Votre compte est en attente d'activation. " +
	"Vous serez notifié une fois votre entretien validé."

// SessionExpiredNotice is shown when the backend rejects a request from an
// already-allowed page.
const SessionExpiredNotice = "Votre session a expiré. Veuillez vous reconnecter."

// Allow builds an allow decision carrying the role protected areas use to
// assemble their menu.
func Allow(role domain.Role) Decision {
	return Decision{Kind: KindAllow, Role: role}
}

// Redirect builds a redirect decision.
func Redirect(path string) Decision {
	return Decision{Kind: KindRedirect, Path: path}
}

// Notice builds a stay-and-notify decision.
func Notice(text string) Decision {
	return Decision{Kind: KindNotice, Notice: text}
}

// Access is the per-area guard. A missing or expired credential redirects to
// the login entry point before any protected content renders; a live one
// allows rendering with the given role. This is a client-side presence and
// expiry check only; the backend stays the authority and its rejections come
// back through Escalate.
func Access(cred *domain.Credential, role domain.Role, now time.Time) Decision {
	if !cred.Valid(now) {
		return Redirect(nav.LoginPath)
	}
	return Allow(role)
}

// PostLogin decides where a fresh login lands. Admins and moderators always
// proceed to their dashboard root. A student proceeds only when the account
// is activated; otherwise the user stays on the login screen with a pending
// notice. Issuing a credential and granting dashboard access are distinct:
// the caller stores the credential in both student branches.
func PostLogin(profile domain.UserProfile) Decision {
	if profile.Role == domain.RoleStudent && !profile.Enabled {
		return Notice(PendingActivationNotice)
	}
	return Redirect(nav.Root(profile.Role))
}

// Escalate maps a backend 401/403 on an already-allowed page to the same
// handling as a missing credential. It reports whether err was such a
// rejection; the caller must then clear the session and follow the redirect
// rather than retrying.
func Escalate(err error) (Decision, bool) {
	if !clubapi.IsAuthError(err) {
		return Decision{}, false
	}
	return Redirect(nav.LoginPath), true
}
