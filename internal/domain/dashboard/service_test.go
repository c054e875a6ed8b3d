package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

type stubStore struct {
	employees, active, apps, requests int64
	payroll                           float64
	recentApps                        []RecentActivity
	recentRequests                    []RecentRequest
	failOn                            string
}

func (s stubStore) fail(name string) error {
	if s.failOn == name {
		return errors.New("connection reset")
	}
	return nil
}

func (s stubStore) CountEmployees(context.Context) (int64, error) {
	return s.employees, s.fail("employees")
}

func (s stubStore) CountActiveEmployees(context.Context) (int64, error) {
	return s.active, s.fail("active")
}

func (s stubStore) CountPendingApplications(context.Context) (int64, error) {
	return s.apps, s.fail("apps")
}

func (s stubStore) CountPendingRequests(context.Context) (int64, error) {
	return s.requests, s.fail("requests")
}

func (s stubStore) TotalPayroll(context.Context) (float64, error) {
	return s.payroll, s.fail("payroll")
}

func (s stubStore) RecentApplications(_ context.Context, limit int) ([]RecentActivity, error) {
	if limit != recentLimit {
		return nil, errors.New("unexpected limit")
	}
	return s.recentApps, s.fail("recentApps")
}

func (s stubStore) RecentRequests(_ context.Context, limit int) ([]RecentRequest, error) {
	return s.recentRequests, s.fail("recentRequests")
}

func TestStatsCombinesAggregates(t *testing.T) {
	svc := NewService(stubStore{
		employees: 4, active: 3, apps: 2, requests: 1, payroll: 12500.5,
		recentApps: []RecentActivity{{FullName: "Lin", Position: "Nurse", SubmittedAt: time.Now()}},
	})

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalEmployees != 4 || stats.ActiveEmployees != 3 || stats.PendingApplications != 2 || stats.PendingRequests != 1 {
		t.Fatalf("unexpected counts %+v", stats)
	}
	if stats.TotalPayroll != 12500.5 {
		t.Fatalf("unexpected payroll %v", stats.TotalPayroll)
	}
	if len(stats.RecentActivities) != 1 {
		t.Fatalf("expected one recent activity, got %d", len(stats.RecentActivities))
	}
}

func TestStatsEmptyStore(t *testing.T) {
	stats, err := NewService(stubStore{}).Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	body, err := json.Marshal(stats)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["totalPayroll"] != float64(0) {
		t.Fatalf("expected totalPayroll 0, got %v", decoded["totalPayroll"])
	}
	if list, ok := decoded["recentRequests"].([]any); !ok || len(list) != 0 {
		t.Fatalf("expected empty recentRequests list, got %v", decoded["recentRequests"])
	}
}

func TestStatsFailsWhole(t *testing.T) {
	for _, name := range []string{"employees", "payroll", "recentRequests"} {
		t.Run(name, func(t *testing.T) {
			if _, err := NewService(stubStore{employees: 1, failOn: name}).Stats(context.Background()); err == nil {
				t.Fatal("expected failure to propagate")
			}
		})
	}
}
