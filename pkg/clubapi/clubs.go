package clubapi

import (
	"context"
	"fmt"
	"net/http"
)

// ListClubs returns every club on the platform.
func (s *Session) ListClubs(ctx context.Context) ([]Club, error) {
	var out []Club
	if err := s.getJSON(ctx, "/clubs", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ClubDetails returns the full view of one club, members and events included.
func (s *Session) ClubDetails(ctx context.Context, id int64) (*ClubDetails, error) {
	var out ClubDetails
	if err := s.getJSON(ctx, fmt.Sprintf("/clubs/%d/details", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateClub creates a club (admin only).
func (s *Session) CreateClub(ctx context.Context, req CreateClubRequest) (*Club, error) {
	var out Club
	if err := s.jsonRequest(ctx, http.MethodPost, "/clubs", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateClub updates a club (admin or its moderator).
func (s *Session) UpdateClub(ctx context.Context, id int64, req CreateClubRequest) error {
	return s.jsonRequest(ctx, http.MethodPut, fmt.Sprintf("/clubs/%d", id), req, nil)
}

// DeleteClub deletes a club (admin only).
func (s *Session) DeleteClub(ctx context.Context, id int64) error {
	return s.jsonRequest(ctx, http.MethodDelete, fmt.Sprintf("/clubs/%d", id), nil, nil)
}

// JoinClub submits the student's request to join a club.
func (s *Session) JoinClub(ctx context.Context, id int64) error {
	return s.postNoBody(ctx, fmt.Sprintf("/clubs/%d/join", id), nil)
}

// MyClub returns the club the authenticated moderator manages.
func (s *Session) MyClub(ctx context.Context) (*Club, error) {
	var out Club
	if err := s.getJSON(ctx, "/clubs/my", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MyClubMembers lists the members of the moderator's club.
func (s *Session) MyClubMembers(ctx context.Context) ([]Member, error) {
	var out []Member
	if err := s.getJSON(ctx, "/clubs/my/members", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MyMemberships lists the clubs the authenticated student belongs to.
func (s *Session) MyMemberships(ctx context.Context) ([]Club, error) {
	var out []Club
	if err := s.getJSON(ctx, "/clubs/mes-clubs", &out); err != nil {
		return nil, err
	}
	return out, nil
}
