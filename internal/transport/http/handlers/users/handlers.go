package usershandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"clickshr/internal/domain/users"
	"clickshr/internal/requestctx"
	"clickshr/internal/transport/http/api"
	"clickshr/internal/transport/http/shared"
)

type Handler struct {
	Service *users.Service
}

func NewHandler(service *users.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router, gate func(http.Handler) http.Handler) {
	r.Route("/users", func(r chi.Router) {
		r.Use(gate)
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{id}", h.handleGet)
		r.Put("/{id}", h.handleUpdate)
		r.Delete("/{id}", h.handleDelete)
	})
}

type userPayload struct {
	FullName   *string  `json:"full_name"`
	Email      *string  `json:"email"`
	Phone      *string  `json:"phone"`
	Password   *string  `json:"password"`
	Role       *string  `json:"role"`
	JobTitle   *string  `json:"job_title"`
	Department *string  `json:"department"`
	HireDate   *string  `json:"hire_date"`
	Status     *string  `json:"status"`
	BaseSalary *float64 `json:"base_salary"`
	Bonus      *float64 `json:"bonus"`
	Deductions *float64 `json:"deductions"`
}

func (p userPayload) validateAmounts(v *shared.Validator) {
	v.NonNegative("base_salary", p.BaseSalary)
	v.NonNegative("bonus", p.Bonus)
	v.NonNegative("deductions", p.Deductions)
}

func amount(value *float64) float64 {
	if value == nil {
		return 0
	}
	return *value
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
	user, err := h.Service.Get(r.Context(), id)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Success(w, user, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload userPayload
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}

	v := shared.NewValidator()
	v.Required("full_name", shared.Str(payload.FullName))
	v.Required("email", shared.Str(payload.Email))
	v.Required("password", shared.Str(payload.Password))
	v.Required("role", shared.Str(payload.Role))
	hireDate := v.OptionalDate("hire_date", payload.HireDate)
	payload.validateAmounts(v)
	if err := v.Err(); err != nil {
		shared.WriteError(w, r, err)
		return
	}

	user, err := h.Service.Create(r.Context(), users.NewUser{
		FullName:   shared.Str(payload.FullName),
		Email:      shared.Str(payload.Email),
		Phone:      shared.Str(payload.Phone),
		Password:   *payload.Password,
		Role:       shared.Str(payload.Role),
		JobTitle:   shared.Str(payload.JobTitle),
		Department: shared.Str(payload.Department),
		HireDate:   hireDate,
		Status:     shared.Str(payload.Status),
		BaseSalary: amount(payload.BaseSalary),
		Bonus:      amount(payload.Bonus),
		Deductions: amount(payload.Deductions),
	})
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Created(w, user, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := shared.PathID(r, "id")
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	var payload userPayload
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}

	v := shared.NewValidator()
	hireDate := v.OptionalDate("hire_date", payload.HireDate)
	payload.validateAmounts(v)
	if err := v.Err(); err != nil {
		shared.WriteError(w, r, err)
		return
	}

	user, err := h.Service.Update(r.Context(), id, users.Patch{
		FullName:   payload.FullName,
		Email:      payload.Email,
		Phone:      payload.Phone,
		Password:   payload.Password,
		Role:       payload.Role,
		JobTitle:   payload.JobTitle,
		Department: payload.Department,
		HireDate:   hireDate,
		Status:     payload.Status,
		BaseSalary: payload.BaseSalary,
		Bonus:      payload.Bonus,
		Deductions: payload.Deductions,
	})
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Success(w, user, requestctx.GetRequestID(r.Context()))
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
