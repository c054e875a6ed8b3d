package timesheets

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"clickshr/internal/domain/apperr"
	"clickshr/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

const timesheetSelect = `
    SELECT t.id, t.user_id, COALESCE(u.full_name, ''), t.date, t.check_in, t.check_out
    FROM timesheets t
    LEFT JOIN users u ON u.id = t.user_id`

func scanTimesheet(row pgx.Row) (Timesheet, error) {
	var (
		ts      Timesheet
		date    time.Time
		in, out pgtype.Time
	)
	if err := row.Scan(&ts.ID, &ts.UserID, &ts.FullName, &date, &in, &out); err != nil {
		return Timesheet{}, err
	}
	ts.Date = date.Format("2006-01-02")
	checkIn := time.Duration(in.Microseconds) * time.Microsecond
	ts.CheckIn = FormatClock(checkIn)
	var checkOut *time.Duration
	if out.Valid {
		d := time.Duration(out.Microseconds) * time.Microsecond
		checkOut = &d
		formatted := FormatClock(d)
		ts.CheckOut = &formatted
	}
	ts.TotalHours = TotalHours(checkIn, checkOut)
	return ts, nil
}

func clockParam(d time.Duration) pgtype.Time {
	return pgtype.Time{Microseconds: d.Microseconds(), Valid: true}
}

func (s *Store) List(ctx context.Context, filter Filter) ([]Timesheet, error) {
	rows, err := s.DB.Query(ctx, timesheetSelect+`
    WHERE ($1::bigint IS NULL OR t.user_id = $1)
    ORDER BY t.date DESC, t.id DESC
  `, filter.UserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Timesheet{}
	for rows.Next() {
		ts, err := scanTimesheet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ts)
	}
	return out, rows.Err()
}

func (s *Store) Get(ctx context.Context, id int64) (Timesheet, error) {
	ts, err := scanTimesheet(s.DB.QueryRow(ctx, timesheetSelect+` WHERE t.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Timesheet{}, apperr.NotFound("timesheet not found")
	}
	return ts, err
}

func (s *Store) FindForDay(ctx context.Context, day Workday) (Timesheet, error) {
	ts, err := scanTimesheet(s.DB.QueryRow(ctx, timesheetSelect+` WHERE t.user_id = $1 AND t.date = $2`, day.UserID, day.Date))
	if errors.Is(err, pgx.ErrNoRows) {
		return Timesheet{}, apperr.NotFound("timesheet not found")
	}
	return ts, err
}

// CheckIn inserts the day's row. The (user_id, date) constraint settles
// concurrent check-ins: the loser gets ErrAlreadyCheckedIn.
func (s *Store) CheckIn(ctx context.Context, day Workday, at time.Duration) (Timesheet, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO timesheets (user_id, date, check_in)
    VALUES ($1, $2, $3)
    RETURNING id
  `, day.UserID, day.Date, clockParam(at)).Scan(&id)
	switch {
	case querier.IsUniqueViolation(err):
		return Timesheet{}, ErrAlreadyCheckedIn
	case querier.IsForeignKeyViolation(err):
		return Timesheet{}, apperr.NotFound("user not found")
	case err != nil:
		return Timesheet{}, err
	}
	return s.Get(ctx, id)
}

func (s *Store) CheckOut(ctx context.Context, id int64, at time.Duration) (Timesheet, error) {
	tag, err := s.DB.Exec(ctx, "UPDATE timesheets SET check_out = $1 WHERE id = $2", clockParam(at), id)
	if err != nil {
		return Timesheet{}, err
	}
	if tag.RowsAffected() == 0 {
		return Timesheet{}, apperr.NotFound("timesheet not found")
	}
	return s.Get(ctx, id)
}
