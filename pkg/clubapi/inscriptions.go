package clubapi

import (
	"context"
	"fmt"
)

// Apply submits a student's application to join the platform through a club.
// This endpoint is public; the created account stays disabled until a
// moderator accepts it after the interview.
func (c *SDKClient) Apply(ctx context.Context, req ApplyRequest) error {
	return c.postJSON(ctx, "/inscriptions/club", req, nil)
}

// PendingDemandes lists membership requests awaiting a decision.
func (s *Session) PendingDemandes(ctx context.Context) ([]Demande, error) {
	var out []Demande
	if err := s.getJSON(ctx, "/inscriptions/attente", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ApproveDemande approves a membership request, which schedules the
// applicant's interview.
func (s *Session) ApproveDemande(ctx context.Context, id int64) error {
	return s.postNoBody(ctx, fmt.Sprintf("/inscriptions/%d/approuver", id), nil)
}

// RefuseDemande rejects a membership request.
func (s *Session) RefuseDemande(ctx context.Context, id int64) error {
	return s.postNoBody(ctx, fmt.Sprintf("/inscriptions/%d/refuser", id), nil)
}

// PendingAccounts lists approved applicants of the moderator's club whose
// accounts are still disabled pending the interview decision.
func (s *Session) PendingAccounts(ctx context.Context) ([]PendingAccount, error) {
	var out []PendingAccount
	if err := s.getJSON(ctx, "/inscriptions/my-club/pending-accounts", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AcceptAccount activates a pending account after its interview.
func (s *Session) AcceptAccount(ctx context.Context, userID int64) error {
	return s.postNoBody(ctx, fmt.Sprintf("/inscriptions/moderateur/accept/%d", userID), nil)
}

// RefuseAccount removes a pending account after its interview.
func (s *Session) RefuseAccount(ctx context.Context, userID int64) error {
	return s.postNoBody(ctx, fmt.Sprintf("/inscriptions/moderateur/refuse/%d", userID), nil)
}

// AvailableModerators lists accounts eligible to moderate a club.
func (s *Session) AvailableModerators(ctx context.Context) ([]Moderateur, error) {
	var out []Moderateur
	if err := s.getJSON(ctx, "/moderateurs/available", &out); err != nil {
		return nil, err
	}
	return out, nil
}
