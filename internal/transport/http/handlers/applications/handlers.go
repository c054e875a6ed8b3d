package applicationshandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"clickshr/internal/domain/applications"
	"clickshr/internal/requestctx"
	"clickshr/internal/transport/http/api"
	"clickshr/internal/transport/http/shared"
)

type Handler struct {
	Service *applications.Service
}

func NewHandler(service *applications.Service) *Handler {
	return &Handler{Service: service}
}

// RegisterRoutes keeps /public outside the gate so applicants can submit anonymously.
func (h *Handler) RegisterRoutes(r chi.Router, gate func(http.Handler) http.Handler) {
	r.Route("/job-applications", func(r chi.Router) {
		r.Post("/public", h.handleSubmit)

		r.Group(func(r chi.Router) {
			r.Use(gate)
			r.Get("/", h.handleList)
			r.Get("/{id}", h.handleGet)
			r.Put("/{id}", h.handleUpdate)
			r.Put("/{id}/hold", h.handleHold)
			r.Delete("/{id}", h.handleDelete)
		})
	})
}

type submissionPayload struct {
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Position       string `json:"position"`
	Department     string `json:"department"`
	WorkLocation   string `json:"work_location"`
	Classification string `json:"classification"`
	ResumeURL      string `json:"resume_url"`
}

type updatePayload struct {
	Status         *string `json:"status"`
	FullName       *string `json:"full_name"`
	Position       *string `json:"position"`
	Department     *string `json:"department"`
	WorkLocation   *string `json:"work_location"`
	Classification *string `json:"classification"`
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var payload submissionPayload
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}

	v := shared.NewValidator()
	v.Required("full_name", payload.FullName)
	v.Required("email", payload.Email)
	v.Required("position", payload.Position)
	if err := v.Err(); err != nil {
		shared.WriteError(w, r, err)
		return
	}

	app, err := h.Service.Submit(r.Context(), applications.Submission{
		FullName:       shared.Str(&payload.FullName),
		Email:          shared.Str(&payload.Email),
		Phone:          shared.Str(&payload.Phone),
		Position:       shared.Str(&payload.Position),
		Department:     shared.Str(&payload.Department),
		WorkLocation:   shared.Str(&payload.WorkLocation),
		Classification: shared.Str(&payload.Classification),
		ResumeURL:      shared.Str(&payload.ResumeURL),
	})
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Created(w, app, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	userID, err := shared.QueryID(r, "user_id")
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	list, err := h.Service.List(r.Context(), applications.Filter{UserID: userID})
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
	app, err := h.Service.Get(r.Context(), id)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Success(w, app, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r, "id")
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	var payload updatePayload
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}
	app, err := h.Service.Update(r.Context(), id, applications.Patch(payload))
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Success(w, app, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleHold(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r, "id")
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	app, err := h.Service.Hold(r.Context(), id)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Success(w, app, requestctx.GetRequestID(r.Context()))
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
