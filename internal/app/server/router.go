package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"clickshr/internal/platform/config"
	"clickshr/internal/platform/metrics"
	"clickshr/internal/requestctx"
	"clickshr/internal/transport/http/api"
	applicationshandler "clickshr/internal/transport/http/handlers/applications"
	authhandler "clickshr/internal/transport/http/handlers/auth"
	dashboardhandler "clickshr/internal/transport/http/handlers/dashboard"
	leavehandler "clickshr/internal/transport/http/handlers/leave"
	payrollhandler "clickshr/internal/transport/http/handlers/payroll"
	timesheetshandler "clickshr/internal/transport/http/handlers/timesheets"
	usershandler "clickshr/internal/transport/http/handlers/users"
	"clickshr/internal/transport/http/middleware"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

func NewRouter(cfg config.Config, svc Services, pinger Pinger, collector *metrics.Collector) http.Handler {
	router := chi.NewRouter()
	router.NotFound(api.NotFound)
	router.MethodNotAllowed(api.MethodNotAllowed)

	router.Use(middleware.RequestID)
	router.Use(chimw.RealIP)
	router.Use(middleware.Logger(collector))
	router.Use(chimw.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader, "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.JWTSecret))

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		api.Success(w, map[string]string{"message": "Clicks HR Backend is running."}, requestctx.GetRequestID(r.Context()))
	})

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if pinger == nil || pinger.Ping(ctx) != nil {
			api.Fail(w, http.StatusServiceUnavailable, "not_ready", "database not ready", requestctx.GetRequestID(r.Context()))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if cfg.MetricsEnabled && collector != nil {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, collector.Snapshot(), requestctx.GetRequestID(r.Context()))
		})
	}

	gate := func(resource string) func(http.Handler) http.Handler {
		return middleware.Gate(cfg.Protects(resource))
	}

	router.Route("/api", func(r chi.Router) {
		authhandler.NewHandler(svc.Auth).RegisterRoutes(r)
		usershandler.NewHandler(svc.Users).RegisterRoutes(r, gate(config.ResourceUsers))
		applicationshandler.NewHandler(svc.Applications).RegisterRoutes(r, gate(config.ResourceJobApplications))
		leavehandler.NewHandler(svc.Requests).RegisterRoutes(r, gate(config.ResourceRequests))
		timesheetshandler.NewHandler(svc.Timesheets).RegisterRoutes(r, gate(config.ResourceTimesheets))
		payrollhandler.NewHandler(svc.Payroll).RegisterRoutes(r, gate(config.ResourcePayroll))
		dashboardhandler.NewHandler(svc.Dashboard).RegisterRoutes(r, gate(config.ResourceDashboard))
	})

	return router
}
