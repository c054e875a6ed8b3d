package dashboard

import (
	"context"

	"clickshr/internal/domain/applications"
	"clickshr/internal/domain/leave"
	"clickshr/internal/domain/users"
	"clickshr/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

func (s *Store) count(ctx context.Context, sql string, args ...any) (int64, error) {
	var total int64
	err := s.DB.QueryRow(ctx, sql, args...).Scan(&total)
	return total, err
}

func (s *Store) CountEmployees(ctx context.Context) (int64, error) {
	return s.count(ctx, "SELECT COUNT(*) FROM users WHERE role = $1", users.RoleEmployee)
}

func (s *Store) CountActiveEmployees(ctx context.Context) (int64, error) {
	return s.count(ctx, "SELECT COUNT(*) FROM users WHERE status = $1 AND role = $2", users.StatusActive, users.RoleEmployee)
}

func (s *Store) CountPendingApplications(ctx context.Context) (int64, error) {
	return s.count(ctx, "SELECT COUNT(*) FROM job_applications WHERE status = $1", applications.StatusPending)
}

func (s *Store) CountPendingRequests(ctx context.Context) (int64, error) {
	return s.count(ctx, "SELECT COUNT(*) FROM requests WHERE status = $1", leave.StatusPending)
}

func (s *Store) TotalPayroll(ctx context.Context) (float64, error) {
	var total float64
	err := s.DB.QueryRow(ctx, "SELECT COALESCE(SUM(net_salary), 0) FROM users WHERE role = $1", users.RoleEmployee).Scan(&total)
	return total, err
}

func (s *Store) RecentApplications(ctx context.Context, limit int) ([]RecentActivity, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT full_name, position, submitted_at
    FROM job_applications
    ORDER BY submitted_at DESC
    LIMIT $1
  `, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []RecentActivity{}
	for rows.Next() {
		var a RecentActivity
		if err := rows.Scan(&a.FullName, &a.Position, &a.SubmittedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *Store) RecentRequests(ctx context.Context, limit int) ([]RecentRequest, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT type, to_char(period_start, 'YYYY-MM-DD'), to_char(period_end, 'YYYY-MM-DD'), status, notes
    FROM requests
    ORDER BY created_at DESC
    LIMIT $1
  `, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []RecentRequest{}
	for rows.Next() {
		var r RecentRequest
		if err := rows.Scan(&r.Type, &r.PeriodStart, &r.PeriodEnd, &r.Status, &r.Notes); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
