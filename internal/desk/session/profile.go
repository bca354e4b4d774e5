package session

import (
	"strconv"
	"time"

	"github.com/itbsclubs/clubdesk/internal/desk/domain"
	"github.com/itbsclubs/clubdesk/pkg/clubapi"
	"github.com/itbsclubs/clubdesk/pkg/jwtx"
)

// resolveProfile builds the cached credential and profile from a login
// response. The embedded user object is preferred; fields it does not supply
// fall back one by one to claims decoded (unverified) from the token.
// Computed once per login and cached until the next one.
func resolveProfile(resp *clubapi.LoginResponse, now time.Time, defaultTTL time.Duration) (domain.Credential, domain.UserProfile) {
	user := resp.User
	if user == nil {
		user = &clubapi.UserPayload{}
	}

	// The token may not decode at all (opaque or malformed); every claims
	// read below then just yields nothing.
	claims, err := jwtx.DecodeUnverified(resp.Token)
	if err != nil {
		claims = &jwtx.Claims{}
	}

	cred := domain.Credential{Token: resp.Token}
	if exp, ok := claims.ExpiresAtTime(); ok {
		cred.ExpiresAt = exp
	} else if defaultTTL > 0 {
		cred.ExpiresAt = now.Add(defaultTTL)
	}

	profile := domain.UserProfile{
		ID:          user.ID,
		DisplayName: domain.DisplayNameOf(user.Prenom, user.Nom),
		Email:       user.Email,
	}

	if profile.ID == 0 {
		if id, err := strconv.ParseInt(claims.Subject, 10, 64); err == nil {
			profile.ID = id
		}
	}
	if profile.DisplayName == "" {
		profile.DisplayName = domain.DisplayNameOf(claims.Prenom, claims.Nom)
	}
	if profile.Email == "" {
		profile.Email = claims.Email
	}

	profile.Role = domain.ResolveRole(domain.RoleSources{
		Role:        firstNonEmpty(user.Role, claims.Role),
		Roles:       firstNonEmptyList(user.Roles, claims.Roles),
		Authorities: firstNonEmptyList(authorityStrings(user.Authorities), claims.AuthorityStrings()),
	})

	// A backend build that never sends the flag predates account activation;
	// default to activated and let the backend reject if it disagrees.
	profile.Enabled = true
	if user.Enabled != nil {
		profile.Enabled = *user.Enabled
	} else if claims.Enabled != nil {
		profile.Enabled = *claims.Enabled
	}

	return cred, profile
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstNonEmptyList(lists ...[]string) []string {
	for _, l := range lists {
		if len(l) > 0 {
			return l
		}
	}
	return nil
}

func authorityStrings(authorities []clubapi.AuthorityValue) []string {
	if len(authorities) == 0 {
		return nil
	}

	out := make([]string, 0, len(authorities))
	for _, a := range authorities {
		out = append(out, a.Authority)
	}
	return out
}
