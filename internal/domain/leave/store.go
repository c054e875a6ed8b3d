package leave

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"clickshr/internal/domain/apperr"
	"clickshr/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

const requestColumns = `id, user_id, type, period_start, period_end, status, notes, created_at`

func scanRequest(row pgx.Row) (Request, error) {
	var (
		r          Request
		start, end time.Time
	)
	if err := row.Scan(&r.ID, &r.UserID, &r.Type, &start, &end, &r.Status, &r.Notes, &r.CreatedAt); err != nil {
		return Request{}, err
	}
	r.PeriodStart = start.Format(dateLayout)
	r.PeriodEnd = end.Format(dateLayout)
	r.Days = daysOrZero(start, end)
	return r, nil
}

// mapErr turns driver failures into the classified kinds handlers report.
func mapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, pgx.ErrNoRows):
		return apperr.NotFound("request not found")
	case querier.IsForeignKeyViolation(err):
		return apperr.NotFound("user not found")
	}
	return err
}

func (s *Store) List(ctx context.Context, filter Filter) ([]Request, error) {
	rows, err := s.DB.Query(ctx, `SELECT `+requestColumns+`
    FROM requests
    WHERE ($1::bigint IS NULL OR user_id = $1)
    ORDER BY created_at DESC, id DESC
  `, filter.UserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Request{}
	for rows.Next() {
		r, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) Get(ctx context.Context, id int64) (Request, error) {
	r, err := scanRequest(s.DB.QueryRow(ctx, `SELECT `+requestColumns+` FROM requests WHERE id = $1`, id))
	return r, mapErr(err)
}

func (s *Store) Create(ctx context.Context, in NewRequest) (Request, error) {
	r, err := scanRequest(s.DB.QueryRow(ctx, `
    INSERT INTO requests (user_id, type, period_start, period_end, notes)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING `+requestColumns,
		in.UserID, in.Type, in.PeriodStart, in.PeriodEnd, in.Notes,
	))
	return r, mapErr(err)
}

func (s *Store) Update(ctx context.Context, id int64, patch Patch) (Request, error) {
	set := querier.NewSetClause()
	querier.Value(set, "user_id", patch.UserID)
	set.Text("type", patch.Type)
	querier.Value(set, "period_start", patch.PeriodStart)
	querier.Value(set, "period_end", patch.PeriodEnd)
	set.Text("status", patch.Status)
	set.Text("notes", patch.Notes)
	if set.Empty() {
		return s.Get(ctx, id)
	}

	r, err := scanRequest(s.DB.QueryRow(ctx,
		"UPDATE requests SET "+set.SQL()+" WHERE id = "+set.Placeholder()+" RETURNING "+requestColumns,
		set.Args(id)...,
	))
	return r, mapErr(err)
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM requests WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("request not found")
	}
	return nil
}
