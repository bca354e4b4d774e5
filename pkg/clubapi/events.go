package clubapi

import (
	"context"
	"fmt"
	"net/http"
)

// ListEvents returns every event (admin view).
func (s *Session) ListEvents(ctx context.Context) ([]Evenement, error) {
	var out []Evenement
	if err := s.getJSON(ctx, "/evenements", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PublicEvents returns the events visible without membership. The endpoint
// is public, so it hangs off the unauthenticated client: visitors browse it
// next to the application form before they have any session.
func (c *SDKClient) PublicEvents(ctx context.Context) ([]Evenement, error) {
	var out []Evenement
	if err := c.getJSON(ctx, "/evenements/public", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// StudentEvents returns the events visible to the authenticated student,
// i.e. public events plus those of clubs they belong to.
func (s *Session) StudentEvents(ctx context.Context) ([]Evenement, error) {
	var out []Evenement
	if err := s.getJSON(ctx, "/evenements/student", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MyClubEvents returns the moderator's club events.
func (s *Session) MyClubEvents(ctx context.Context) ([]Evenement, error) {
	var out []Evenement
	if err := s.getJSON(ctx, "/evenements/my-club", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateEvent creates an event for the moderator's club.
func (s *Session) CreateEvent(ctx context.Context, req CreateEventRequest) (*Evenement, error) {
	var out Evenement
	if err := s.jsonRequest(ctx, http.MethodPost, "/evenements", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateEvent updates an event.
func (s *Session) UpdateEvent(ctx context.Context, id int64, req CreateEventRequest) error {
	return s.jsonRequest(ctx, http.MethodPut, fmt.Sprintf("/evenements/%d", id), req, nil)
}

// DeleteEvent deletes an event.
func (s *Session) DeleteEvent(ctx context.Context, id int64) error {
	return s.jsonRequest(ctx, http.MethodDelete, fmt.Sprintf("/evenements/%d", id), nil, nil)
}

// ArchiveEvent marks a finished event as archived.
func (s *Session) ArchiveEvent(ctx context.Context, id int64) error {
	return s.postNoBody(ctx, fmt.Sprintf("/evenements/%d/archiver", id), nil)
}

// RegisterForEvent signs the student up for an event.
func (s *Session) RegisterForEvent(ctx context.Context, id int64) error {
	return s.postNoBody(ctx, fmt.Sprintf("/evenements/%d/inscrire", id), nil)
}

// UnregisterFromEvent withdraws the student from an event.
func (s *Session) UnregisterFromEvent(ctx context.Context, id int64) error {
	return s.postNoBody(ctx, fmt.Sprintf("/evenements/%d/desinscrire", id), nil)
}
