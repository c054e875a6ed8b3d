package users

import "context"

type StoreAPI interface {
	List(ctx context.Context) ([]User, error)
	Get(ctx context.Context, id int64) (User, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, in NewUser, passwordHash string) (User, error)
	Update(ctx context.Context, id int64, patch Patch, passwordHash *string) (User, []string, error)
	Delete(ctx context.Context, id int64) error
}
