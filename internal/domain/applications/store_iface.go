package applications

import "context"

type StoreAPI interface {
	List(ctx context.Context, filter Filter) ([]Application, error)
	Get(ctx context.Context, id int64) (Application, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, in Submission) (Application, error)
	Update(ctx context.Context, id int64, patch Patch) (Application, error)
	SetStatus(ctx context.Context, id int64, status string) (Application, error)
	Delete(ctx context.Context, id int64) error
}
