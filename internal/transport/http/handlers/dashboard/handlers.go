package dashboardhandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"clickshr/internal/domain/dashboard"
	"clickshr/internal/requestctx"
	"clickshr/internal/transport/http/api"
	"clickshr/internal/transport/http/shared"
)

type Handler struct {
	Service *dashboard.Service
}

func NewHandler(service *dashboard.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router, gate func(http.Handler) http.Handler) {
	r.Route("/dashboard", func(r chi.Router) {
		r.Use(gate)
		r.Get("/stats", h.handleStats)
	})
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.Stats(r.Context())
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Success(w, stats, requestctx.GetRequestID(r.Context()))
}
