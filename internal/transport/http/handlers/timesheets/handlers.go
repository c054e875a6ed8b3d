package timesheetshandler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"clickshr/internal/domain/timesheets"
	"clickshr/internal/requestctx"
	"clickshr/internal/transport/http/api"
	"clickshr/internal/transport/http/shared"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	Service *timesheets.Service
}

func NewHandler(service *timesheets.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router, gate func(http.Handler) http.Handler) {
	r.Route("/timesheets", func(r chi.Router) {
		r.Use(gate)
		r.Get("/", h.handleList)
		r.Get("/export", h.handleExport)
		r.Post("/check-in", h.handleCheckIn)
		r.Post("/check-out", h.handleCheckOut)
		r.Get("/{id}", h.handleGet)
	})
}

type clockPayload struct {
	UserID *int64 `json:"user_id"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	userID, err := shared.QueryID(r, "user_id")
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	list, err := h.Service.List(r.Context(), timesheets.Filter{UserID: userID})
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
	ts, err := h.Service.Get(r.Context(), id)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Success(w, ts, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) decodeUser(w http.ResponseWriter, r *http.Request) (int64, bool) {
	var payload clockPayload
	if !shared.DecodeJSON(w, r, &payload) {
		return 0, false
	}
	v := shared.NewValidator()
	v.RequiredID("user_id", payload.UserID)
	if err := v.Err(); err != nil {
		shared.WriteError(w, r, err)
		return 0, false
	}
	return *payload.UserID, true
}

func (h *Handler) handleCheckIn(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.decodeUser(w, r)
	if !ok {
		return
	}
	ts, err := h.Service.CheckIn(r.Context(), userID)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Created(w, ts, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleCheckOut(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.decodeUser(w, r)
	if !ok {
		return
	}
	ts, err := h.Service.CheckOut(r.Context(), userID)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Success(w, ts, requestctx.GetRequestID(r.Context()))
}

// handleExport buffers the workbook so a failure can still be reported as JSON.
func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	userID, err := shared.QueryID(r, "user_id")
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := h.Service.Export(r.Context(), timesheets.Filter{UserID: userID}, &buf); err != nil {
		shared.WriteError(w, r, err)
		return
	}

	filename := fmt.Sprintf("timesheets_%s.xlsx", time.Now().Format("20060102"))
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
