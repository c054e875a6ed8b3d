package leave

import "context"

type StoreAPI interface {
	List(ctx context.Context, filter Filter) ([]Request, error)
	Get(ctx context.Context, id int64) (Request, error)
	Create(ctx context.Context, in NewRequest) (Request, error)
	Update(ctx context.Context, id int64, patch Patch) (Request, error)
	Delete(ctx context.Context, id int64) error
}
