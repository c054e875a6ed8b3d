package timesheets

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"clickshr/internal/domain/apperr"
)

type Service struct {
	store StoreAPI
	loc   *time.Location
	now   func() time.Time
}

// NewService reads "today" and "now" from the server clock in loc.
func NewService(store StoreAPI, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{store: store, loc: loc, now: time.Now}
}

func (s *Service) List(ctx context.Context, filter Filter) ([]Timesheet, error) {
	return s.store.List(ctx, filter)
}

func (s *Service) Get(ctx context.Context, id int64) (Timesheet, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) CheckIn(ctx context.Context, userID int64) (Timesheet, error) {
	date, clock := clockOf(s.now(), s.loc)
	day := Workday{UserID: userID, Date: date}

	_, err := s.store.FindForDay(ctx, day)
	if err == nil {
		return Timesheet{}, ErrAlreadyCheckedIn
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return Timesheet{}, err
	}

	ts, err := s.store.CheckIn(ctx, day, clock)
	if err != nil {
		return Timesheet{}, err
	}
	slog.InfoContext(ctx, "checked in", "userId", userID, "timesheetId", ts.ID)
	return ts, nil
}

func (s *Service) CheckOut(ctx context.Context, userID int64) (Timesheet, error) {
	date, clock := clockOf(s.now(), s.loc)

	current, err := s.store.FindForDay(ctx, Workday{UserID: userID, Date: date})
	if errors.Is(err, apperr.ErrNotFound) {
		return Timesheet{}, ErrNotCheckedIn
	}
	if err != nil {
		return Timesheet{}, err
	}

	ts, err := s.store.CheckOut(ctx, current.ID, clock)
	if err != nil {
		return Timesheet{}, err
	}
	slog.InfoContext(ctx, "checked out", "userId", userID, "timesheetId", ts.ID)
	return ts, nil
}
