package payrollhandler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"clickshr/internal/domain/payroll"
	"clickshr/internal/requestctx"
	"clickshr/internal/transport/http/api"
	"clickshr/internal/transport/http/shared"
)

type Handler struct {
	Service *payroll.Service
}

func NewHandler(service *payroll.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router, gate func(http.Handler) http.Handler) {
	r.Route("/payroll", func(r chi.Router) {
		r.Use(gate)
		r.Get("/", h.handleList)
		r.Get("/{id}", h.handleGet)
		r.Get("/{id}/payslip", h.handlePayslip)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.List(r.Context())
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Success(w, list, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r, "id")
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	entry, err := h.Service.Get(r.Context(), id)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Success(w, entry, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handlePayslip(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r, "id")
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	entry, pdf, err := h.Service.Payslip(r.Context(), id)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=payslip-%d.pdf", entry.ID))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
