package auth

import "context"

type StoreAPI interface {
	FindCredentialsByEmail(ctx context.Context, email string) (Credentials, error)
}
