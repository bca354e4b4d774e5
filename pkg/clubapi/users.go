package clubapi

import (
	"context"
	"fmt"
	"net/http"
)

// ListUsers returns every platform account (admin only).
func (s *Session) ListUsers(ctx context.Context) ([]User, error) {
	var out []User
	if err := s.getJSON(ctx, "/users", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateUser creates a platform account (admin only).
func (s *Session) CreateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	var out User
	if err := s.jsonRequest(ctx, http.MethodPost, "/users", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUser updates a platform account (admin only).
func (s *Session) UpdateUser(ctx context.Context, id int64, req CreateUserRequest) error {
	return s.jsonRequest(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), req, nil)
}

// DeleteUser deletes a platform account (admin only).
func (s *Session) DeleteUser(ctx context.Context, id int64) error {
	return s.jsonRequest(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil)
}

// AssignClub makes a user the moderator of a club (admin only).
func (s *Session) AssignClub(ctx context.Context, userID, clubID int64) error {
	return s.jsonRequest(ctx, http.MethodPut, fmt.Sprintf("/users/%d/club/%d", userID, clubID), nil, nil)
}
