package service

import (
	"context"
	"time"

	"github.com/itbsclubs/clubdesk/internal/desk/notify"
	"github.com/itbsclubs/clubdesk/pkg/clubapi"
)

// Cache keys for event lists.
const (
	cacheEvents        = "events"
	cachePublicEvents  = "events:public"
	cacheStudentEvents = "events:student"
	cacheClubEvents    = "events:my-club"
)

// PublicEvents lists the events visible to visitors. Like Apply it runs
// without a session, so there is no gate in front of it; the offline cache
// still applies.
func (s *Services) PublicEvents(ctx context.Context) ([]clubapi.Evenement, error) {
	return listWithCache(ctx, s, cachePublicEvents, s.sessions.Client().PublicEvents)
}

// Events lists every event visible to the caller's role.
func (s *Services) Events(ctx context.Context) ([]clubapi.Evenement, error) {
	apiSession, err := s.enter(ctx)
	if err != nil {
		return nil, err
	}
	return listWithCache(ctx, s, cacheEvents, apiSession.ListEvents)
}

// StudentEvents lists public events plus those of the student's clubs.
func (s *Services) StudentEvents(ctx context.Context) ([]clubapi.Evenement, error) {
	apiSession, err := s.enter(ctx)
	if err != nil {
		return nil, err
	}
	return listWithCache(ctx, s, cacheStudentEvents, apiSession.StudentEvents)
}

// MyClubEvents lists the moderator's club events.
func (s *Services) MyClubEvents(ctx context.Context) ([]clubapi.Evenement, error) {
	apiSession, err := s.enter(ctx)
	if err != nil {
		return nil, err
	}
	return listWithCache(ctx, s, cacheClubEvents, apiSession.MyClubEvents)
}

// CreateEvent creates an event for the moderator's club.
func (s *Services) CreateEvent(ctx context.Context, req clubapi.CreateEventRequest) (*clubapi.Evenement, error) {
	apiSession, err := s.enter(ctx)
	if err != nil {
		return nil, err
	}

	ev, err := apiSession.CreateEvent(ctx, req)
	if err != nil {
		return nil, s.fail(ctx, err)
	}

	s.notifier.Notify(ctx, notify.Success("Événement créé : "+ev.Titre))
	return ev, nil
}

// UpdateEvent updates an event.
func (s *Services) UpdateEvent(ctx context.Context, id int64, req clubapi.CreateEventRequest) error {
	apiSession, err := s.enter(ctx)
	if err != nil {
		return err
	}

	if err := apiSession.UpdateEvent(ctx, id, req); err != nil {
		return s.fail(ctx, err)
	}

	s.notifier.Notify(ctx, notify.Success("Événement mis à jour."))
	return nil
}

// DeleteEvent deletes an event.
func (s *Services) DeleteEvent(ctx context.Context, id int64) error {
	apiSession, err := s.enter(ctx)
	if err != nil {
		return err
	}

	if err := apiSession.DeleteEvent(ctx, id); err != nil {
		return s.fail(ctx, err)
	}

	s.notifier.Notify(ctx, notify.Success("Événement supprimé."))
	return nil
}

// ArchiveEvent marks a finished event as archived.
func (s *Services) ArchiveEvent(ctx context.Context, id int64) error {
	apiSession, err := s.enter(ctx)
	if err != nil {
		return err
	}

	if err := apiSession.ArchiveEvent(ctx, id); err != nil {
		return s.fail(ctx, err)
	}

	s.notifier.Notify(ctx, notify.Success("Événement archivé."))
	return nil
}

// RegisterForEvent signs the student up for an event.
func (s *Services) RegisterForEvent(ctx context.Context, id int64) error {
	apiSession, err := s.enter(ctx)
	if err != nil {
		return err
	}

	if err := apiSession.RegisterForEvent(ctx, id); err != nil {
		return s.fail(ctx, err)
	}

	s.notifier.Notify(ctx, notify.Success("Inscription à l'événement confirmée."))
	return nil
}

// UnregisterFromEvent withdraws the student from an event.
func (s *Services) UnregisterFromEvent(ctx context.Context, id int64) error {
	apiSession, err := s.enter(ctx)
	if err != nil {
		return err
	}

	if err := apiSession.UnregisterFromEvent(ctx, id); err != nil {
		return s.fail(ctx, err)
	}

	s.notifier.Notify(ctx, notify.Success("Désinscription confirmée."))
	return nil
}

// ============================================================================
// Calendar
// ============================================================================

// CalendarDay is one day cell of a month grid.
type CalendarDay struct {
	Date   time.Time
	InGrid bool // false for the padding cells around the month
	Events []clubapi.Evenement
}

// CalendarWeek is one row of a month grid, Monday through Sunday.
type CalendarWeek [7]CalendarDay

// eventDateLayout is the ISO date carried by dateEvenement.
const eventDateLayout = "2006-01-02"

// MonthGrid lays out events over the given month as weeks of Monday-first
// days. Events whose date does not parse or falls outside the month are
// skipped. Padding cells before the first and after the last day of the
// month carry InGrid=false.
func MonthGrid(events []clubapi.Evenement, year int, month time.Month) []CalendarWeek {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	byDay := make(map[int][]clubapi.Evenement)
	for _, ev := range events {
		d, err := time.Parse(eventDateLayout, ev.DateEvenement)
		if err != nil {
			continue
		}
		if d.Year() != year || d.Month() != month {
			continue
		}
		byDay[d.Day()] = append(byDay[d.Day()], ev)
	}

	// Monday-first offset of the month's first day.
	lead := (int(first.Weekday()) + 6) % 7

	var weeks []CalendarWeek
	var week CalendarWeek
	col := 0

	for i := 0; i < lead; i++ {
		week[col] = CalendarDay{Date: first.AddDate(0, 0, i-lead)}
		col++
	}

	for day := 1; day <= daysInMonth; day++ {
		week[col] = CalendarDay{
			Date:   time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
			InGrid: true,
			Events: byDay[day],
		}
		col++
		if col == 7 {
			weeks = append(weeks, week)
			week = CalendarWeek{}
			col = 0
		}
	}

	if col > 0 {
		last := time.Date(year, month, daysInMonth, 0, 0, 0, 0, time.UTC)
		for i := 1; col < 7; i++ {
			week[col] = CalendarDay{Date: last.AddDate(0, 0, i)}
			col++
		}
		weeks = append(weeks, week)
	}

	return weeks
}
