package authhandler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"clickshr/internal/domain/auth"
	"clickshr/internal/requestctx"
	"clickshr/internal/transport/http/api"
	"clickshr/internal/transport/http/shared"
)

type Handler struct {
	Service *auth.Service
}

func NewHandler(service *auth.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/login", h.HandleLogin)
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var payload auth.LoginInput
	if !shared.DecodeJSON(w, r, &payload) {
		return
	}

	session, err := h.Service.Login(r.Context(), payload)
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password", requestctx.GetRequestID(r.Context()))
		return
	case errors.Is(err, auth.ErrTokensDisabled):
		api.Fail(w, http.StatusServiceUnavailable, "login_disabled", "login is not configured", requestctx.GetRequestID(r.Context()))
		return
	case err != nil:
		shared.WriteError(w, r, err)
		return
	}
	api.Success(w, session, requestctx.GetRequestID(r.Context()))
}
