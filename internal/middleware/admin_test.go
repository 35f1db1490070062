package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portfolio-backend/internal/auth"
)

type fakeResolver struct {
	admins map[string]Identity
}

func (f *fakeResolver) ResolveAdmin(ctx context.Context, id string) (Identity, error) {
	identity, ok := f.admins[id]
	if !ok {
		return Identity{}, errors.New("admin not found")
	}
	return identity, nil
}

func newGate(secret string, resolver AdminResolver) func(http.Handler) http.Handler {
	manager := &auth.Manager{Secret: []byte(secret), AccessTTL: time.Hour, Issuer: "portfolio-backend"}
	return AdminAuth(manager, resolver)
}

func okHandler(t *testing.T, wantID string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := AdminFromContext(r.Context())
		if !ok {
			t.Fatalf("identity missing from context")
		}
		if identity.ID != wantID {
			t.Fatalf("expected identity %q, got %q", wantID, identity.ID)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAdminAuthRejectsMissingToken(t *testing.T) {
	resolver := &fakeResolver{admins: map[string]Identity{}}
	gate := newGate("test-secret", resolver)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/projects", nil)
	rec := httptest.NewRecorder()

	gate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("handler must not run without a token")
	})).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAdminAuthRejectsForeignSecret(t *testing.T) {
	resolver := &fakeResolver{admins: map[string]Identity{
		"admin-1": {ID: "admin-1", Name: "Admin", Email: "admin@example.com"},
	}}
	gate := newGate("real-secret", resolver)

	foreign := &auth.Manager{Secret: []byte("other-secret"), AccessTTL: time.Hour}
	token, err := foreign.NewAccessToken("admin-1")
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/admin/projects", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	gate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("handler must not run for a foreign-signed token")
	})).ServeHTTP(rec, req)

	// A bad signature is an auth failure, never a server error.
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAdminAuthRejectsUnknownAdmin(t *testing.T) {
	resolver := &fakeResolver{admins: map[string]Identity{}}
	gate := newGate("test-secret", resolver)

	manager := &auth.Manager{Secret: []byte("test-secret"), AccessTTL: time.Hour}
	token, err := manager.NewAccessToken("ghost")
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/admin/projects", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	gate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("handler must not run for an unresolvable admin")
	})).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAdminAuthAttachesIdentity(t *testing.T) {
	resolver := &fakeResolver{admins: map[string]Identity{
		"admin-1": {ID: "admin-1", Name: "Admin", Email: "admin@example.com"},
	}}
	gate := newGate("test-secret", resolver)

	manager := &auth.Manager{Secret: []byte("test-secret"), AccessTTL: time.Hour}
	token, err := manager.NewAccessToken("admin-1")
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/admin/projects", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	gate(okHandler(t, "admin-1")).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
