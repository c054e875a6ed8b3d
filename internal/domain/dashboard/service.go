package dashboard

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

// Stats runs the aggregate queries concurrently. Each observes the database at
// its own instant; the first failure cancels the rest and fails the whole call.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	var out Stats
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		out.TotalEmployees, err = s.store.CountEmployees(ctx)
		return err
	})
	g.Go(func() (err error) {
		out.ActiveEmployees, err = s.store.CountActiveEmployees(ctx)
		return err
	})
	g.Go(func() (err error) {
		out.PendingApplications, err = s.store.CountPendingApplications(ctx)
		return err
	})
	g.Go(func() (err error) {
		out.PendingRequests, err = s.store.CountPendingRequests(ctx)
		return err
	})
	g.Go(func() (err error) {
		out.TotalPayroll, err = s.store.TotalPayroll(ctx)
		return err
	})
	g.Go(func() (err error) {
		out.RecentActivities, err = s.store.RecentApplications(ctx, recentLimit)
		return err
	})
	g.Go(func() (err error) {
		out.RecentRequests, err = s.store.RecentRequests(ctx, recentLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return Stats{}, err
	}
	if out.RecentActivities == nil {
		out.RecentActivities = []RecentActivity{}
	}
	if out.RecentRequests == nil {
		out.RecentRequests = []RecentRequest{}
	}
	return out, nil
}
