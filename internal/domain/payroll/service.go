package payroll

import (
	"context"
	"time"
)

type Service struct {
	store StoreAPI
	now   func() time.Time
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store, now: time.Now}
}

func (s *Service) List(ctx context.Context) ([]Entry, error) {
	return s.store.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (Entry, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) Payslip(ctx context.Context, id int64) (Entry, []byte, error) {
	entry, err := s.store.Get(ctx, id)
	if err != nil {
		return Entry{}, nil, err
	}
	pdf, err := RenderPayslip(entry, s.now())
	if err != nil {
		return Entry{}, nil, err
	}
	return entry, pdf, nil
}
