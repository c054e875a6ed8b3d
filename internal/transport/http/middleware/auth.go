package middleware

import (
	"net/http"
	"strings"

	"clickshr/internal/domain/auth"
	"clickshr/internal/requestctx"
	"clickshr/internal/transport/http/api"
)

// Auth resolves a bearer token into the request context. It never rejects;
// RequireAuth decides whether an anonymous caller may continue.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok || secret == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := auth.ParseToken(secret, token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := requestctx.WithUser(r.Context(), requestctx.User{ID: claims.UserID, Role: claims.Role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requestctx.GetUser(r.Context()); !ok {
			api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestctx.GetRequestID(r.Context()))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Gate returns RequireAuth for protected resource groups and a pass-through otherwise.
func Gate(protected bool) func(http.Handler) http.Handler {
	if protected {
		return RequireAuth
	}
	return func(next http.Handler) http.Handler { return next }
}
