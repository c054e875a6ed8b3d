package payroll

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

func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, full_name, base_salary, bonus, deductions, net_salary, created_at
    FROM users
    WHERE base_salary > 0
    ORDER BY full_name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Entry{}
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.FullName, &e.BaseSalary, &e.Bonus, &e.Deductions, &e.NetSalary, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) Get(ctx context.Context, id int64) (Entry, error) {
	var e Entry
	err := s.DB.QueryRow(ctx, `
    SELECT id, full_name, base_salary, bonus, deductions, net_salary, created_at
    FROM users
    WHERE id = $1
  `, id).Scan(&e.ID, &e.FullName, &e.BaseSalary, &e.Bonus, &e.Deductions, &e.NetSalary, &e.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Entry{}, apperr.NotFound("payroll record not found")
	}
	return e, err
}
