package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"clickshr/internal/domain/apperr"
)

type Service struct {
	store  StoreAPI
	secret string
	ttl    time.Duration
}

func NewService(store StoreAPI, secret string, ttl time.Duration) *Service {
	return &Service{store: store, secret: secret, ttl: ttl}
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	UserID    int64     `json:"user_id"`
	Role      string    `json:"role"`
}

func (s *Service) Login(ctx context.Context, in LoginInput) (Session, error) {
	var issues []apperr.Issue
	if strings.TrimSpace(in.Email) == "" {
		issues = append(issues, apperr.Issue{Field: "email", Reason: apperr.ReasonRequired})
	}
	if in.Password == "" {
		issues = append(issues, apperr.Issue{Field: "password", Reason: apperr.ReasonRequired})
	}
	if len(issues) > 0 {
		return Session{}, apperr.NewValidation(issues...)
	}
	if s.secret == "" {
		return Session{}, ErrTokensDisabled
	}

	creds, err := s.store.FindCredentialsByEmail(ctx, in.Email)
	if errors.Is(err, apperr.ErrNotFound) {
		return Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return Session{}, err
	}
	if creds.PasswordHash == "" || CheckPassword(creds.PasswordHash, in.Password) != nil {
		slog.InfoContext(ctx, "login rejected", "userId", creds.UserID)
		return Session{}, ErrInvalidCredentials
	}

	token, err := GenerateToken(s.secret, Claims{UserID: creds.UserID, Role: creds.Role}, s.ttl)
	if err != nil {
		return Session{}, err
	}
	slog.InfoContext(ctx, "login succeeded", "userId", creds.UserID)
	return Session{
		Token:     token,
		ExpiresAt: time.Now().Add(s.ttl).UTC(),
		UserID:    creds.UserID,
		Role:      creds.Role,
	}, nil
}
