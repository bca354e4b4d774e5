package service

import (
	"context"

	"github.com/itbsclubs/clubdesk/internal/desk/notify"
	"github.com/itbsclubs/clubdesk/pkg/clubapi"
)

// Cache keys for club lists.
const (
	cacheClubs       = "clubs"
	cacheMemberships = "clubs:memberships"
)

// Clubs lists every club, serving the cached copy when offline.
func (s *Services) Clubs(ctx context.Context) ([]clubapi.Club, error) {
	apiSession, err := s.enter(ctx)
	if err != nil {
		return nil, err
	}
	return listWithCache(ctx, s, cacheClubs, apiSession.ListClubs)
}

// ClubDetails returns one club's full view.
func (s *Services) ClubDetails(ctx context.Context, id int64) (*clubapi.ClubDetails, error) {
	apiSession, err := s.enter(ctx)
	if err != nil {
		return nil, err
	}

	details, err := apiSession.ClubDetails(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return details, nil
}

// CreateClub creates a club and confirms with a notice.
func (s *Services) CreateClub(ctx context.Context, req clubapi.CreateClubRequest) (*clubapi.Club, error) {
	apiSession, err := s.enter(ctx)
	if err != nil {
		return nil, err
	}

	club, err := apiSession.CreateClub(ctx, req)
	if err != nil {
		return nil, s.fail(ctx, err)
	}

	s.notifier.Notify(ctx, notify.Success("Club créé : "+club.Nom))
	return club, nil
}

// UpdateClub updates a club.
func (s *Services) UpdateClub(ctx context.Context, id int64, req clubapi.CreateClubRequest) error {
	apiSession, err := s.enter(ctx)
	if err != nil {
		return err
	}

	if err := apiSession.UpdateClub(ctx, id, req); err != nil {
		return s.fail(ctx, err)
	}

	s.notifier.Notify(ctx, notify.Success("Club mis à jour."))
	return nil
}

// DeleteClub deletes a club.
func (s *Services) DeleteClub(ctx context.Context, id int64) error {
	apiSession, err := s.enter(ctx)
	if err != nil {
		return err
	}

	if err := apiSession.DeleteClub(ctx, id); err != nil {
		return s.fail(ctx, err)
	}

	s.notifier.Notify(ctx, notify.Success("Club supprimé."))
	return nil
}

// JoinClub submits the student's membership request.
func (s *Services) JoinClub(ctx context.Context, id int64) error {
	apiSession, err := s.enter(ctx)
	if err != nil {
		return err
	}

	if err := apiSession.JoinClub(ctx, id); err != nil {
		return s.fail(ctx, err)
	}

	s.notifier.Notify(ctx, notify.Success("Demande d'adhésion envoyée."))
	return nil
}

// MyClub returns the moderator's club.
func (s *Services) MyClub(ctx context.Context) (*clubapi.Club, error) {
	apiSession, err := s.enter(ctx)
	if err != nil {
		return nil, err
	}

	club, err := apiSession.MyClub(ctx)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return club, nil
}

// MyClubMembers lists the moderator's club members.
func (s *Services) MyClubMembers(ctx context.Context) ([]clubapi.Member, error) {
	apiSession, err := s.enter(ctx)
	if err != nil {
		return nil, err
	}
	return listWithCache(ctx, s, "clubs:my:members", apiSession.MyClubMembers)
}

// NotJoined lists the clubs the authenticated student has not joined yet.
func (s *Services) NotJoined(ctx context.Context) ([]clubapi.Club, error) {
	apiSession, err := s.enter(ctx)
	if err != nil {
		return nil, err
	}

	all, err := listWithCache(ctx, s, cacheClubs, apiSession.ListClubs)
	if err != nil {
		return nil, err
	}

	mine, err := listWithCache(ctx, s, cacheMemberships, apiSession.MyMemberships)
	if err != nil {
		return nil, err
	}

	return NotJoinedClubs(all, mine), nil
}

// NotJoinedClubs filters all down to the clubs absent from mine, preserving
// order.
func NotJoinedClubs(all, mine []clubapi.Club) []clubapi.Club {
	joined := make(map[int64]bool, len(mine))
	for _, c := range mine {
		joined[c.ID] = true
	}

	out := make([]clubapi.Club, 0, len(all))
	for _, c := range all {
		if !joined[c.ID] {
			out = append(out, c)
		}
	}
	return out
}
