package leave

import (
	"context"
	"time"

	"clickshr/internal/domain/apperr"
)

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

func (s *Service) List(ctx context.Context, filter Filter) ([]Request, error) {
	return s.store.List(ctx, filter)
}

func (s *Service) Get(ctx context.Context, id int64) (Request, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, in NewRequest) (Request, error) {
	if in.PeriodEnd.Before(in.PeriodStart) {
		return Request{}, apperr.Invalid("period_end", "must be on or after period_start")
	}
	return s.store.Create(ctx, in)
}

// Update checks the resulting period, not just the supplied half, so a patch
// that moves only one end cannot invert the range.
func (s *Service) Update(ctx context.Context, id int64, patch Patch) (Request, error) {
	current, err := s.store.Get(ctx, id)
	if err != nil {
		return Request{}, err
	}

	if patch.PeriodStart != nil || patch.PeriodEnd != nil {
		start, err := time.Parse(dateLayout, current.PeriodStart)
		if err != nil {
			return Request{}, err
		}
		end, err := time.Parse(dateLayout, current.PeriodEnd)
		if err != nil {
			return Request{}, err
		}
		if patch.PeriodStart != nil {
			start = *patch.PeriodStart
		}
		if patch.PeriodEnd != nil {
			end = *patch.PeriodEnd
		}
		if end.Before(start) {
			return Request{}, apperr.Invalid("period_end", "must be on or after period_start")
		}
	}

	return s.store.Update(ctx, id, patch)
}

func (s *Service) Delete(ctx context.Context, id int64) (Deleted, error) {
	if _, err := s.store.Get(ctx, id); err != nil {
		return Deleted{}, err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return Deleted{}, err
	}
	return Deleted{ID: id, Message: "request deleted"}, nil
}
