package middleware

import (
	"context"
	"net/http"
	"strings"

	"portfolio-backend/internal/auth"
	"portfolio-backend/internal/transport"
)

// Identity is the admin resolved from a bearer token, attached to the request
// context for downstream handlers.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AdminResolver maps a token subject to an active admin account.
type AdminResolver interface {
	ResolveAdmin(ctx context.Context, id string) (Identity, error)
}

type adminKey struct{}

// AdminAuth rejects the request with a generic 401 unless the Authorization
// header carries a valid bearer token that resolves to an active admin. The
// response never distinguishes missing from invalid from expired tokens.
func AdminAuth(manager *auth.Manager, resolver AdminResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if manager == nil || resolver == nil {
				transport.WriteError(w, http.StatusServiceUnavailable, "admin auth not configured", nil)
				return
			}

			token := bearerToken(r)
			if token == "" {
				transport.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
				return
			}

			claims, err := manager.Parse(token)
			if err != nil || claims.Role != "admin" || claims.Subject == "" {
				transport.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
				return
			}

			identity, err := resolver.ResolveAdmin(r.Context(), claims.Subject)
			if err != nil {
				transport.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
				return
			}

			ctx := context.WithValue(r.Context(), adminKey{}, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func AdminFromContext(ctx context.Context) (Identity, bool) {
	v, ok := ctx.Value(adminKey{}).(Identity)
	return v, ok
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
