package db

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"

	"clickshr/internal/domain/auth"
	"clickshr/internal/platform/config"
	"clickshr/internal/platform/querier"
)

const seedAdminRole = "admin"

// Seed creates the bootstrap administrator so the gated routes are reachable
// on a fresh database. It does nothing when no seed credentials are configured
// or the account already exists.
func Seed(ctx context.Context, q querier.Querier, cfg config.Config) error {
	email := strings.TrimSpace(cfg.SeedAdminEmail)
	if email == "" || cfg.SeedAdminPassword == "" {
		return nil
	}

	var id int64
	err := q.QueryRow(ctx, "SELECT id FROM users WHERE lower(email) = lower($1)", email).Scan(&id)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	hash, err := auth.HashPassword(cfg.SeedAdminPassword)
	if err != nil {
		return err
	}

	if err := q.QueryRow(ctx, `
    INSERT INTO users (full_name, email, password, role)
    VALUES ($1, $2, $3, $4)
    RETURNING id
  `, "Administrator", email, hash, seedAdminRole).Scan(&id); err != nil {
		return err
	}
	slog.InfoContext(ctx, "seeded admin user", "userId", id)
	return nil
}
