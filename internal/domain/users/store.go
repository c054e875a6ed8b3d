package users

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

const userColumns = `
    id, full_name, email, COALESCE(phone, ''), role,
    COALESCE(job_title, ''), COALESCE(department, ''),
    to_char(hire_date, 'YYYY-MM-DD'), status,
    base_salary, bonus, deductions, net_salary,
    created_at, updated_at`

func scanUser(row pgx.Row) (User, error) {
	var u User
	err := row.Scan(
		&u.ID, &u.FullName, &u.Email, &u.Phone, &u.Role,
		&u.JobTitle, &u.Department,
		&u.HireDate, &u.Status,
		&u.BaseSalary, &u.Bonus, &u.Deductions, &u.NetSalary,
		&u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

func (s *Store) List(ctx context.Context) ([]User, error) {
	rows, err := s.DB.Query(ctx, `SELECT `+userColumns+`
    FROM users
    ORDER BY created_at DESC, id DESC
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (s *Store) Get(ctx context.Context, id int64) (User, error) {
	u, err := scanUser(s.DB.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, apperr.NotFound("user not found")
	}
	return u, err
}

func (s *Store) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := s.DB.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)", id).Scan(&exists)
	return exists, err
}

func (s *Store) Create(ctx context.Context, in NewUser, passwordHash string) (User, error) {
	u, err := scanUser(s.DB.QueryRow(ctx, `
    INSERT INTO users (full_name, email, phone, password, role, job_title, department,
                       hire_date, status, base_salary, bonus, deductions)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, COALESCE($9, 'Active'), $10, $11, $12)
    RETURNING `+userColumns,
		in.FullName, in.Email, querier.NullIfEmpty(in.Phone), passwordHash, in.Role,
		querier.NullIfEmpty(in.JobTitle), querier.NullIfEmpty(in.Department),
		in.HireDate, querier.NullIfEmpty(in.Status),
		in.BaseSalary, in.Bonus, in.Deductions,
	))
	if querier.IsUniqueViolation(err) {
		return User{}, apperr.Duplicate("email already exists")
	}
	return u, err
}

// Update writes only the supplied columns and reports which ones they were.
func (s *Store) Update(ctx context.Context, id int64, patch Patch, passwordHash *string) (User, []string, error) {
	set := querier.NewSetClause()
	set.Text("full_name", patch.FullName)
	set.Text("email", patch.Email)
	set.Text("phone", patch.Phone)
	set.Text("password", passwordHash)
	set.Text("role", patch.Role)
	set.Text("job_title", patch.JobTitle)
	set.Text("department", patch.Department)
	querier.Value(set, "hire_date", patch.HireDate)
	set.Text("status", patch.Status)
	querier.Value(set, "base_salary", patch.BaseSalary)
	querier.Value(set, "bonus", patch.Bonus)
	querier.Value(set, "deductions", patch.Deductions)
	set.Raw("updated_at = now()")

	u, err := scanUser(s.DB.QueryRow(ctx,
		"UPDATE users SET "+set.SQL()+" WHERE id = "+set.Placeholder()+" RETURNING "+userColumns,
		set.Args(id)...,
	))
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return User{}, nil, apperr.NotFound("user not found")
	case querier.IsUniqueViolation(err):
		return User{}, nil, apperr.Duplicate("email already exists")
	case err != nil:
		return User{}, nil, err
	}
	return u, set.Columns(), nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("user not found")
	}
	return nil
}
