package applications

import (
	"context"
	"log/slog"

	"clickshr/internal/domain/apperr"
)

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

func (s *Service) Submit(ctx context.Context, in Submission) (Application, error) {
	app, err := s.store.Create(ctx, in)
	if err != nil {
		return Application{}, err
	}
	slog.InfoContext(ctx, "job application submitted", "applicationId", app.ID, "position", app.Position)
	return app, nil
}

func (s *Service) List(ctx context.Context, filter Filter) ([]Application, error) {
	return s.store.List(ctx, filter)
}

func (s *Service) Get(ctx context.Context, id int64) (Application, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) Update(ctx context.Context, id int64, patch Patch) (Application, error) {
	if err := s.ensureExists(ctx, id); err != nil {
		return Application{}, err
	}
	return s.store.Update(ctx, id, patch)
}

// Hold parks an application regardless of its current status.
func (s *Service) Hold(ctx context.Context, id int64) (Application, error) {
	if err := s.ensureExists(ctx, id); err != nil {
		return Application{}, err
	}
	return s.store.SetStatus(ctx, id, StatusOnHold)
}

func (s *Service) Delete(ctx context.Context, id int64) (Deleted, error) {
	if err := s.ensureExists(ctx, id); err != nil {
		return Deleted{}, err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return Deleted{}, err
	}
	return Deleted{ID: id, Message: "job application deleted"}, nil
}

func (s *Service) ensureExists(ctx context.Context, id int64) error {
	exists, err := s.store.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("job application not found")
	}
	return nil
}
