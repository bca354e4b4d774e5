package service

import (
	"context"

	"github.com/itbsclubs/clubdesk/internal/desk/notify"
	"github.com/itbsclubs/clubdesk/pkg/clubapi"
)

// Users lists every account, admin only.
func (s *Services) Users(ctx context.Context) ([]clubapi.User, error) {
	apiSession, err := s.enter(ctx)
	if err != nil {
		return nil, err
	}
	return listWithCache(ctx, s, "users", apiSession.ListUsers)
}

// CreateUser creates an account.
func (s *Services) CreateUser(ctx context.Context, req clubapi.CreateUserRequest) (*clubapi.User, error) {
	apiSession, err := s.enter(ctx)
	if err != nil {
		return nil, err
	}

	user, err := apiSession.CreateUser(ctx, req)
	if err != nil {
		return nil, s.fail(ctx, err)
	}

	s.notifier.Notify(ctx, notify.Success("Compte créé : "+user.Email))
	return user, nil
}

// UpdateUser updates an account.
func (s *Services) UpdateUser(ctx context.Context, id int64, req clubapi.CreateUserRequest) error {
	apiSession, err := s.enter(ctx)
	if err != nil {
		return err
	}

	if err := apiSession.UpdateUser(ctx, id, req); err != nil {
		return s.fail(ctx, err)
	}

	s.notifier.Notify(ctx, notify.Success("Compte mis à jour."))
	return nil
}

// DeleteUser deletes an account.
func (s *Services) DeleteUser(ctx context.Context, id int64) error {
	apiSession, err := s.enter(ctx)
	if err != nil {
		return err
	}

	if err := apiSession.DeleteUser(ctx, id); err != nil {
		return s.fail(ctx, err)
	}

	s.notifier.Notify(ctx, notify.Success("Compte supprimé."))
	return nil
}

// AssignClub puts a moderator in charge of a club.
func (s *Services) AssignClub(ctx context.Context, userID, clubID int64) error {
	apiSession, err := s.enter(ctx)
	if err != nil {
		return err
	}

	if err := apiSession.AssignClub(ctx, userID, clubID); err != nil {
		return s.fail(ctx, err)
	}

	s.notifier.Notify(ctx, notify.Success("Modérateur affecté au club."))
	return nil
}

// AvailableModerators lists moderators without a club, for assignment.
func (s *Services) AvailableModerators(ctx context.Context) ([]clubapi.Moderateur, error) {
	apiSession, err := s.enter(ctx)
	if err != nil {
		return nil, err
	}
	return listWithCache(ctx, s, "users:moderators:available", apiSession.AvailableModerators)
}
