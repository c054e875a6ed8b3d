package dashboard

import "context"

type StoreAPI interface {
	CountEmployees(ctx context.Context) (int64, error)
	CountActiveEmployees(ctx context.Context) (int64, error)
	CountPendingApplications(ctx context.Context) (int64, error)
	CountPendingRequests(ctx context.Context) (int64, error)
	TotalPayroll(ctx context.Context) (float64, error)
	RecentApplications(ctx context.Context, limit int) ([]RecentActivity, error)
	RecentRequests(ctx context.Context, limit int) ([]RecentRequest, error)
}
