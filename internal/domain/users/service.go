package users

import (
	"context"
	"log/slog"
	"strings"

	"clickshr/internal/domain/apperr"
)

// PasswordHasher turns a plaintext password into its stored form.
type PasswordHasher func(password string) (string, error)

type Service struct {
	store StoreAPI
	hash  PasswordHasher
}

func NewService(store StoreAPI, hash PasswordHasher) *Service {
	return &Service{store: store, hash: hash}
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.store.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (User, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, in NewUser) (User, error) {
	hash, err := s.hash(in.Password)
	if err != nil {
		return User{}, err
	}
	in.Status = strings.TrimSpace(in.Status)
	if in.Status == "" {
		in.Status = StatusActive
	}

	user, err := s.store.Create(ctx, in, hash)
	if err != nil {
		return User{}, err
	}
	slog.InfoContext(ctx, "user created", "userId", user.ID, "fields", suppliedFields(in))
	return user, nil
}

func (s *Service) Update(ctx context.Context, id int64, patch Patch) (User, error) {
	exists, err := s.store.Exists(ctx, id)
	if err != nil {
		return User{}, err
	}
	if !exists {
		return User{}, apperr.NotFound("user not found")
	}

	var hash *string
	if patch.Password != nil && strings.TrimSpace(*patch.Password) != "" {
		hashed, err := s.hash(*patch.Password)
		if err != nil {
			return User{}, err
		}
		hash = &hashed
	}

	user, fields, err := s.store.Update(ctx, id, patch, hash)
	if err != nil {
		return User{}, err
	}
	slog.InfoContext(ctx, "user updated", "userId", id, "fields", fields)
	return user, nil
}

func (s *Service) Delete(ctx context.Context, id int64) (Deleted, error) {
	exists, err := s.store.Exists(ctx, id)
	if err != nil {
		return Deleted{}, err
	}
	if !exists {
		return Deleted{}, apperr.NotFound("user not found")
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return Deleted{}, err
	}
	slog.InfoContext(ctx, "user deleted", "userId", id)
	return Deleted{ID: id, Message: "user deleted"}, nil
}

func suppliedFields(in NewUser) []string {
	fields := []string{"full_name", "email", "password", "role"}
	optional := []struct {
		name string
		set  bool
	}{
		{"phone", in.Phone != ""},
		{"job_title", in.JobTitle != ""},
		{"department", in.Department != ""},
		{"hire_date", in.HireDate != nil},
		{"status", in.Status != ""},
		{"base_salary", in.BaseSalary != 0},
		{"bonus", in.Bonus != 0},
		{"deductions", in.Deductions != 0},
	}
	for _, f := range optional {
		if f.set {
			fields = append(fields, f.name)
		}
	}
	return fields
}
