package admins

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"portfolio-backend/internal/httpx"
	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/transport"
	"portfolio-backend/internal/validation"
)

type Handler struct {
	service *Service
	val     *validation.Validator
	log     *slog.Logger
}

func NewHandler(service *Service, val *validation.Validator, log *slog.Logger) *Handler {
	return &Handler{
		service: service,
		val:     val,
		log:     log,
	}
}

type authResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	Admin   PublicAdmin `json:"admin"`
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req SignupRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("signup: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("signup: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.FieldErrors(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	admin, token, err := h.service.Signup(ctx, req)
	if err != nil {
		if errors.Is(err, ErrAdminExists) {
			log.Warn("signup: admin already exists")
			transport.WriteError(w, http.StatusBadRequest, "admin already exists", nil)
			return
		}
		log.Error("signup: error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	log.Info("signup: ok", slog.String("admin_id", admin.ID))
	transport.WriteJSON(w, http.StatusCreated, authResponse{
		Message: "admin created",
		Token:   token,
		Admin:   admin.Public(),
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req LoginRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("login: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("login: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.FieldErrors(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	admin, token, err := h.service.Login(ctx, req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			log.Warn("login: invalid credentials", slog.String("email", req.Email))
			transport.WriteError(w, http.StatusBadRequest, "invalid credentials", nil)
			return
		}
		log.Error("login: error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	log.Info("login: ok", slog.String("admin_id", admin.ID))
	transport.WriteJSON(w, http.StatusOK, authResponse{
		Message: "login successful",
		Token:   token,
		Admin:   admin.Public(),
	})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.AdminFromContext(r.Context())
	if !ok {
		transport.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"admin": PublicAdmin{ID: identity.ID, Name: identity.Name, Email: identity.Email},
	})
}

// CheckAdmin tells the frontend whether the first-run signup screen applies.
func (h *Handler) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	exists, err := h.service.Exists(ctx)
	if err != nil {
		log.Error("check admin: error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	transport.WriteJSON(w, http.StatusOK, map[string]bool{"exists": exists})
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return h.log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}
