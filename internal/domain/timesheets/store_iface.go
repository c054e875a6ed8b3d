package timesheets

import (
	"context"
	"time"
)

type StoreAPI interface {
	List(ctx context.Context, filter Filter) ([]Timesheet, error)
	Get(ctx context.Context, id int64) (Timesheet, error)
	FindForDay(ctx context.Context, day Workday) (Timesheet, error)
	CheckIn(ctx context.Context, day Workday, at time.Duration) (Timesheet, error)
	CheckOut(ctx context.Context, id int64, at time.Duration) (Timesheet, error)
}
