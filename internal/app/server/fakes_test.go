package server

import (
	"context"
	"errors"
	"sync"
	"time"

	"clickshr/internal/domain/applications"
	"clickshr/internal/domain/apperr"
	"clickshr/internal/domain/dashboard"
	"clickshr/internal/domain/leave"
	"clickshr/internal/domain/payroll"
	"clickshr/internal/domain/timesheets"
	"clickshr/internal/domain/users"
)

var errUnused = errors.New("not used by this test")

type fakeUsers struct {
	list []users.User
}

func (f *fakeUsers) List(context.Context) ([]users.User, error) { return f.list, nil }

func (f *fakeUsers) Get(_ context.Context, id int64) (users.User, error) {
	for _, u := range f.list {
		if u.ID == id {
			return u, nil
		}
	}
	return users.User{}, apperr.NotFound("user not found")
}

func (f *fakeUsers) Exists(ctx context.Context, id int64) (bool, error) {
	_, err := f.Get(ctx, id)
	return err == nil, nil
}

func (f *fakeUsers) Create(_ context.Context, in users.NewUser, _ string) (users.User, error) {
	u := users.User{ID: int64(len(f.list) + 1), FullName: in.FullName, Email: in.Email, Role: in.Role, Status: in.Status,
		BaseSalary: in.BaseSalary, Bonus: in.Bonus, Deductions: in.Deductions, NetSalary: in.BaseSalary + in.Bonus - in.Deductions}
	f.list = append(f.list, u)
	return u, nil
}

func (f *fakeUsers) Update(context.Context, int64, users.Patch, *string) (users.User, []string, error) {
	return users.User{}, nil, errUnused
}

func (f *fakeUsers) Delete(context.Context, int64) error { return errUnused }

type fakeApplications struct {
	created int
}

func (f *fakeApplications) List(context.Context, applications.Filter) ([]applications.Application, error) {
	return []applications.Application{}, nil
}

func (f *fakeApplications) Get(context.Context, int64) (applications.Application, error) {
	return applications.Application{}, apperr.NotFound("job application not found")
}

func (f *fakeApplications) Exists(context.Context, int64) (bool, error) { return false, nil }

func (f *fakeApplications) Create(_ context.Context, in applications.Submission) (applications.Application, error) {
	f.created++
	return applications.Application{ID: int64(f.created), FullName: in.FullName, Email: in.Email, Position: in.Position, Status: applications.StatusPending, SubmittedAt: time.Now()}, nil
}

func (f *fakeApplications) Update(context.Context, int64, applications.Patch) (applications.Application, error) {
	return applications.Application{}, errUnused
}

func (f *fakeApplications) SetStatus(context.Context, int64, string) (applications.Application, error) {
	return applications.Application{}, errUnused
}

func (f *fakeApplications) Delete(context.Context, int64) error { return errUnused }

type fakeTimesheets struct {
	mu    sync.Mutex
	rows  map[timesheets.Workday]timesheets.Timesheet
	users map[int64]bool
}

func newFakeTimesheets(userIDs ...int64) *fakeTimesheets {
	f := &fakeTimesheets{rows: map[timesheets.Workday]timesheets.Timesheet{}, users: map[int64]bool{}}
	for _, id := range userIDs {
		f.users[id] = true
	}
	return f
}

func (f *fakeTimesheets) List(context.Context, timesheets.Filter) ([]timesheets.Timesheet, error) {
	return []timesheets.Timesheet{}, nil
}

func (f *fakeTimesheets) Get(context.Context, int64) (timesheets.Timesheet, error) {
	return timesheets.Timesheet{}, apperr.NotFound("timesheet not found")
}

func (f *fakeTimesheets) FindForDay(_ context.Context, day timesheets.Workday) (timesheets.Timesheet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ts, ok := f.rows[day]
	if !ok {
		return timesheets.Timesheet{}, apperr.NotFound("timesheet not found")
	}
	return ts, nil
}

func (f *fakeTimesheets) CheckIn(_ context.Context, day timesheets.Workday, at time.Duration) (timesheets.Timesheet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.users[day.UserID] {
		return timesheets.Timesheet{}, apperr.NotFound("user not found")
	}
	if _, ok := f.rows[day]; ok {
		return timesheets.Timesheet{}, timesheets.ErrAlreadyCheckedIn
	}
	ts := timesheets.Timesheet{ID: int64(len(f.rows) + 1), UserID: day.UserID, Date: day.Date.Format("2006-01-02"), CheckIn: timesheets.FormatClock(at)}
	f.rows[day] = ts
	return ts, nil
}

func (f *fakeTimesheets) CheckOut(_ context.Context, id int64, at time.Duration) (timesheets.Timesheet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for day, ts := range f.rows {
		if ts.ID == id {
			out := timesheets.FormatClock(at)
			ts.CheckOut = &out
			f.rows[day] = ts
			return ts, nil
		}
	}
	return timesheets.Timesheet{}, apperr.NotFound("timesheet not found")
}

type fakeDashboard struct {
	total float64
}

func (f fakeDashboard) CountEmployees(context.Context) (int64, error)           { return 2, nil }
func (f fakeDashboard) CountActiveEmployees(context.Context) (int64, error)     { return 1, nil }
func (f fakeDashboard) CountPendingApplications(context.Context) (int64, error) { return 0, nil }
func (f fakeDashboard) CountPendingRequests(context.Context) (int64, error)     { return 3, nil }
func (f fakeDashboard) TotalPayroll(context.Context) (float64, error)           { return f.total, nil }

func (f fakeDashboard) RecentApplications(context.Context, int) ([]dashboard.RecentActivity, error) {
	return nil, nil
}

func (f fakeDashboard) RecentRequests(context.Context, int) ([]dashboard.RecentRequest, error) {
	return nil, nil
}

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(context.Context) error { return p.err }

type fakePayroll struct {
	entries []payroll.Entry
}

func (f fakePayroll) List(context.Context) ([]payroll.Entry, error) { return f.entries, nil }

func (f fakePayroll) Get(_ context.Context, id int64) (payroll.Entry, error) {
	for _, e := range f.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return payroll.Entry{}, apperr.NotFound("payroll record not found")
}

type fakeRequests struct {
	mu      sync.Mutex
	rows    map[int64]leave.Request
	created int
}

func newFakeRequests() *fakeRequests {
	return &fakeRequests{rows: map[int64]leave.Request{}}
}

func (f *fakeRequests) List(context.Context, leave.Filter) ([]leave.Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]leave.Request, 0, len(f.rows))
	for _, req := range f.rows {
		out = append(out, req)
	}
	return out, nil
}

func (f *fakeRequests) Get(_ context.Context, id int64) (leave.Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	req, ok := f.rows[id]
	if !ok {
		return leave.Request{}, apperr.NotFound("request not found")
	}
	return req, nil
}

func (f *fakeRequests) Create(_ context.Context, in leave.NewRequest) (leave.Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created++
	req := leave.Request{
		ID:          int64(f.created),
		UserID:      in.UserID,
		Type:        in.Type,
		PeriodStart: in.PeriodStart.Format("2006-01-02"),
		PeriodEnd:   in.PeriodEnd.Format("2006-01-02"),
		Days:        in.PeriodEnd.Sub(in.PeriodStart).Hours()/24 + 1,
		Status:      leave.StatusPending,
		Notes:       in.Notes,
	}
	f.rows[req.ID] = req
	return req, nil
}

func (f *fakeRequests) Update(_ context.Context, id int64, patch leave.Patch) (leave.Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	req, ok := f.rows[id]
	if !ok {
		return leave.Request{}, apperr.NotFound("request not found")
	}
	if patch.Type != nil && *patch.Type != "" {
		req.Type = *patch.Type
	}
	if patch.Status != nil && *patch.Status != "" {
		req.Status = *patch.Status
	}
	if patch.PeriodStart != nil {
		req.PeriodStart = patch.PeriodStart.Format("2006-01-02")
	}
	if patch.PeriodEnd != nil {
		req.PeriodEnd = patch.PeriodEnd.Format("2006-01-02")
	}
	f.rows[id] = req
	return req, nil
}

func (f *fakeRequests) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok {
		return apperr.NotFound("request not found")
	}
	delete(f.rows, id)
	return nil
}
