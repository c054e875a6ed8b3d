package leavehandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"clickshr/internal/domain/leave"
	"clickshr/internal/requestctx"
	"clickshr/internal/transport/http/api"
	"clickshr/internal/transport/http/shared"
)

type Handler struct {
	Service *leave.Service
}

func NewHandler(service *leave.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router, gate func(http.Handler) http.Handler) {
	r.Route("/requests", func(r chi.Router) {
		r.Use(gate)
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{id}", h.handleGet)
		r.Put("/{id}", h.handleUpdate)
		r.Delete("/{id}", h.handleDelete)
	})
}

type requestPayload struct {
	UserID      *int64  `json:"user_id"`
	Type        *string `json:"type"`
	PeriodStart *string `json:"period_start"`
	PeriodEnd   *string `json:"period_end"`
	Status      *string `json:"status"`
	Notes       *string `json:"notes"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	userID, err := shared.QueryID(r, "user_id")
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	list, err := h.Service.List(r.Context(), leave.Filter{UserID: userID})
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
	req, err := h.Service.Get(r.Context(), id)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Success(w, req, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload requestPayload
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}

	v := shared.NewValidator()
	v.Required("type", shared.Str(payload.Type))
	start, _ := v.Date("period_start", shared.Str(payload.PeriodStart))
	end, _ := v.Date("period_end", shared.Str(payload.PeriodEnd))
	v.DateOrder("period_start", start, "period_end", end)
	if payload.UserID != nil && *payload.UserID <= 0 {
		v.Add("user_id", "must be a positive integer")
	}
	if err := v.Err(); err != nil {
		shared.WriteError(w, r, err)
		return
	}

	var notes *string
	if n := shared.Str(payload.Notes); n != "" {
		notes = &n
	}
	req, err := h.Service.Create(r.Context(), leave.NewRequest{
		UserID:      payload.UserID,
		Type:        shared.Str(payload.Type),
		PeriodStart: start,
		PeriodEnd:   end,
		Notes:       notes,
	})
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Created(w, req, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r, "id")
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	var payload requestPayload
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}

	v := shared.NewValidator()
	start := v.OptionalDate("period_start", payload.PeriodStart)
	end := v.OptionalDate("period_end", payload.PeriodEnd)
	if payload.UserID != nil && *payload.UserID <= 0 {
		v.Add("user_id", "must be a positive integer")
	}
	if err := v.Err(); err != nil {
		shared.WriteError(w, r, err)
		return
	}

	req, err := h.Service.Update(r.Context(), id, leave.Patch{
		UserID:      payload.UserID,
		Type:        payload.Type,
		PeriodStart: start,
		PeriodEnd:   end,
		Status:      payload.Status,
		Notes:       payload.Notes,
	})
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Success(w, req, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r, "id")
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	res, err := h.Service.Delete(r.Context(), id)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Success(w, res, requestctx.GetRequestID(r.Context()))
}
