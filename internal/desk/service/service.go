// Package service is the operation layer between the UI commands and the
// backend SDK. Every operation enters through the access gate, caches list
// responses for offline display, and escalates backend auth rejections to a
// forced logout. Failures are surfaced once as a notice; nothing retries
// automatically.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/itbsclubs/clubdesk/internal/desk/gate"
	"github.com/itbsclubs/clubdesk/internal/desk/notify"
	"github.com/itbsclubs/clubdesk/internal/desk/session"
	"github.com/itbsclubs/clubdesk/internal/desk/store"
	"github.com/itbsclubs/clubdesk/pkg/clubapi"
	"github.com/itbsclubs/clubdesk/pkg/slogx"
)

// RedirectError carries a gate decision through the error path so callers
// at the boundary can translate it into actual navigation.
type RedirectError struct {
	Decision gate.Decision
}

func (e *RedirectError) Error() string {
	return fmt.Sprintf("service: redirect to %s", e.Decision.Path)
}

// Services bundles the operation layer's dependencies.
type Services struct {
	sessions *session.Manager
	store    store.Store
	notifier notify.Notifier
	logger   *slog.Logger

	now func() time.Time
}

// New wires the operation layer.
func New(sessions *session.Manager, st store.Store, notifier notify.Notifier, logger *slog.Logger) *Services {
	return &Services{
		sessions: sessions,
		store:    st,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// enter runs the access gate and returns the API session for this
// operation, or a RedirectError when the gate denies.
func (s *Services) enter(ctx context.Context) (*clubapi.Session, error) {
	decision, apiSession, err := s.sessions.Enter(ctx)
	if err != nil {
		return nil, err
	}
	if decision.Kind != gate.KindAllow {
		return nil, &RedirectError{Decision: decision}
	}
	return apiSession, nil
}

// fail handles an operation error: backend 401/403 forces a logout and
// becomes a RedirectError, anything else is surfaced once as a notice and
// returned unchanged.
func (s *Services) fail(ctx context.Context, err error) error {
	if decision, ok := s.sessions.ForceLogout(ctx, err); ok {
		s.notifier.Notify(ctx, notify.Error(gate.SessionExpiredNotice))
		return &RedirectError{Decision: decision}
	}

	s.notifier.Notify(ctx, notify.Error("La requête a échoué. Veuillez réessayer."))
	return err
}

// listWithCache fetches a list, writing it through to the cache on success.
// When the fetch fails for a non-auth reason and a cached copy exists, the
// cached copy is returned with an informational notice instead.
func listWithCache[T any](ctx context.Context, s *Services, key string, fetch func(context.Context) ([]T, error)) ([]T, error) {
	logger := slogx.FromContextOr(ctx, s.logger)

	items, err := fetch(ctx)
	if err == nil {
		if payload, merr := json.Marshal(items); merr == nil {
			if cerr := s.store.Cache().Put(ctx, key, payload, s.now()); cerr != nil {
				logger.Warn("cache write failed", "key", key, "error", cerr)
			}
		}
		return items, nil
	}

	if clubapi.IsAuthError(err) {
		return nil, s.fail(ctx, err)
	}

	cached, cerr := s.store.Cache().Get(ctx, key)
	if errors.Is(cerr, store.ErrNotFound) {
		return nil, s.fail(ctx, err)
	}
	if cerr != nil {
		return nil, s.fail(ctx, err)
	}

	var items2 []T
	if uerr := json.Unmarshal(cached.Payload, &items2); uerr != nil {
		return nil, s.fail(ctx, err)
	}

	logger.Warn("serving cached list after fetch failure", "key", key, "error", err)
	s.notifier.Notify(ctx, notify.Info("Connexion impossible, affichage des données en cache."))
	return items2, nil
}
