package service

import (
	"context"

	"github.com/itbsclubs/clubdesk/internal/desk/notify"
	"github.com/itbsclubs/clubdesk/pkg/clubapi"
)

// Apply submits a platform application on behalf of a prospective student.
// This is the one operation that runs without a session.
func (s *Services) Apply(ctx context.Context, req clubapi.ApplyRequest) error {
	if err := s.sessions.Client().Apply(ctx, req); err != nil {
		s.notifier.Notify(ctx, notify.Error("L'envoi de la candidature a échoué."))
		return err
	}

	s.notifier.Notify(ctx, notify.Success("Candidature envoyée. Vous recevrez une réponse par email."))
	return nil
}

// PendingDemandes lists the membership requests awaiting the moderator.
func (s *Services) PendingDemandes(ctx context.Context) ([]clubapi.Demande, error) {
	apiSession, err := s.enter(ctx)
	if err != nil {
		return nil, err
	}
	return listWithCache(ctx, s, "demandes:pending", apiSession.PendingDemandes)
}

// ApproveDemande accepts a membership request.
func (s *Services) ApproveDemande(ctx context.Context, id int64) error {
	apiSession, err := s.enter(ctx)
	if err != nil {
		return err
	}

	if err := apiSession.ApproveDemande(ctx, id); err != nil {
		return s.fail(ctx, err)
	}

	s.notifier.Notify(ctx, notify.Success("Demande approuvée."))
	return nil
}

// RefuseDemande rejects a membership request.
func (s *Services) RefuseDemande(ctx context.Context, id int64) error {
	apiSession, err := s.enter(ctx)
	if err != nil {
		return err
	}

	if err := apiSession.RefuseDemande(ctx, id); err != nil {
		return s.fail(ctx, err)
	}

	s.notifier.Notify(ctx, notify.Success("Demande refusée."))
	return nil
}

// PendingAccounts lists applicants approved at interview but not yet
// activated.
func (s *Services) PendingAccounts(ctx context.Context) ([]clubapi.PendingAccount, error) {
	apiSession, err := s.enter(ctx)
	if err != nil {
		return nil, err
	}
	return listWithCache(ctx, s, "accounts:pending", apiSession.PendingAccounts)
}

// AcceptAccount activates a pending student account.
func (s *Services) AcceptAccount(ctx context.Context, userID int64) error {
	apiSession, err := s.enter(ctx)
	if err != nil {
		return err
	}

	if err := apiSession.AcceptAccount(ctx, userID); err != nil {
		return s.fail(ctx, err)
	}

	s.notifier.Notify(ctx, notify.Success("Compte activé."))
	return nil
}

// RefuseAccount rejects a pending student account.
func (s *Services) RefuseAccount(ctx context.Context, userID int64) error {
	apiSession, err := s.enter(ctx)
	if err != nil {
		return err
	}

	if err := apiSession.RefuseAccount(ctx, userID); err != nil {
		return s.fail(ctx, err)
	}

	s.notifier.Notify(ctx, notify.Success("Compte refusé."))
	return nil
}
