package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"clickshr/internal/domain/apperr"
	"clickshr/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

// Credentials is the slice of a user row needed to verify a login.
type Credentials struct {
	UserID       int64
	Role         string
	PasswordHash string
}

func (s *Store) FindCredentialsByEmail(ctx context.Context, email string) (Credentials, error) {
	var out Credentials
	err := s.DB.QueryRow(ctx, `
    SELECT id, COALESCE(role, ''), COALESCE(password, '')
    FROM users
    WHERE lower(email) = lower($1)
  `, strings.TrimSpace(email)).Scan(&out.UserID, &out.Role, &out.PasswordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return Credentials{}, apperr.NotFound("user not found")
	}
	return out, err
}
