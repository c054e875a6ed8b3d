package applications

import (
	"context"
	"errors"

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

const applicationColumns = `
    id, full_name, email, COALESCE(phone, ''), position,
    COALESCE(department, ''), COALESCE(work_location, ''), COALESCE(classification, ''),
    COALESCE(resume_url, ''), status, user_id, to_char(hire_date, 'YYYY-MM-DD'),
    documents, submitted_at`

func scanApplication(row pgx.Row) (Application, error) {
	var a Application
	err := row.Scan(
		&a.ID, &a.FullName, &a.Email, &a.Phone, &a.Position,
		&a.Department, &a.WorkLocation, &a.Classification,
		&a.ResumeURL, &a.Status, &a.UserID, &a.HireDate,
		&a.Documents, &a.SubmittedAt,
	)
	return a, err
}

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound("job application not found")
	}
	return err
}

func (s *Store) List(ctx context.Context, filter Filter) ([]Application, error) {
	rows, err := s.DB.Query(ctx, `SELECT `+applicationColumns+`
    FROM job_applications
    WHERE ($1::bigint IS NULL OR user_id = $1)
    ORDER BY submitted_at DESC, id DESC
  `, filter.UserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Application{}
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *Store) Get(ctx context.Context, id int64) (Application, error) {
	a, err := scanApplication(s.DB.QueryRow(ctx, `SELECT `+applicationColumns+` FROM job_applications WHERE id = $1`, id))
	return a, notFound(err)
}

func (s *Store) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := s.DB.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM job_applications WHERE id = $1)", id).Scan(&exists)
	return exists, err
}

// Create stores a public submission. Status, user link and hire date are
// always server-controlled; documents start out as the resume link.
func (s *Store) Create(ctx context.Context, in Submission) (Application, error) {
	resume := querier.NullIfEmpty(in.ResumeURL)
	return scanApplication(s.DB.QueryRow(ctx, `
    INSERT INTO job_applications (full_name, email, phone, position, department, work_location,
                                  classification, resume_url, status, user_id, hire_date, documents)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULL, NULL, $8)
    RETURNING `+applicationColumns,
		in.FullName, in.Email, querier.NullIfEmpty(in.Phone), in.Position,
		querier.NullIfEmpty(in.Department), querier.NullIfEmpty(in.WorkLocation),
		querier.NullIfEmpty(in.Classification), resume, StatusPending,
	))
}

func (s *Store) Update(ctx context.Context, id int64, patch Patch) (Application, error) {
	set := querier.NewSetClause()
	set.Text("status", patch.Status)
	set.Text("full_name", patch.FullName)
	set.Text("position", patch.Position)
	set.Text("department", patch.Department)
	set.Text("work_location", patch.WorkLocation)
	set.Text("classification", patch.Classification)
	if set.Empty() {
		return s.Get(ctx, id)
	}

	a, err := scanApplication(s.DB.QueryRow(ctx,
		"UPDATE job_applications SET "+set.SQL()+" WHERE id = "+set.Placeholder()+" RETURNING "+applicationColumns,
		set.Args(id)...,
	))
	return a, notFound(err)
}

func (s *Store) SetStatus(ctx context.Context, id int64, status string) (Application, error) {
	a, err := scanApplication(s.DB.QueryRow(ctx,
		"UPDATE job_applications SET status = $1 WHERE id = $2 RETURNING "+applicationColumns,
		status, id,
	))
	return a, notFound(err)
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM job_applications WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("job application not found")
	}
	return nil
}
