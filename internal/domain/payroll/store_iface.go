package payroll

import "context"

type StoreAPI interface {
	List(ctx context.Context) ([]Entry, error)
	Get(ctx context.Context, id int64) (Entry, error)
}
