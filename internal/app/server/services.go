package server

import (
	"time"

	"clickshr/internal/domain/applications"
	"clickshr/internal/domain/auth"
	"clickshr/internal/domain/dashboard"
	"clickshr/internal/domain/leave"
	"clickshr/internal/domain/payroll"
	"clickshr/internal/domain/timesheets"
	"clickshr/internal/domain/users"
	"clickshr/internal/platform/config"
	"clickshr/internal/platform/querier"
)

// Services is everything the router dispatches to. Tests build it from fakes.
type Services struct {
	Auth         *auth.Service
	Users        *users.Service
	Applications *applications.Service
	Requests     *leave.Service
	Timesheets   *timesheets.Service
	Payroll      *payroll.Service
	Dashboard    *dashboard.Service
}

func NewServices(q querier.Querier, cfg config.Config, loc *time.Location) Services {
	return Services{
		Auth:         auth.NewService(auth.NewStore(q), cfg.JWTSecret, cfg.TokenTTL),
		Users:        users.NewService(users.NewStore(q), auth.HashPassword),
		Applications: applications.NewService(applications.NewStore(q)),
		Requests:     leave.NewService(leave.NewStore(q)),
		Timesheets:   timesheets.NewService(timesheets.NewStore(q), loc),
		Payroll:      payroll.NewService(payroll.NewStore(q)),
		Dashboard:    dashboard.NewService(dashboard.NewStore(q)),
	}
}
