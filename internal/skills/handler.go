package skills

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"portfolio-backend/internal/httpx"
	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/transport"
	"portfolio-backend/internal/validation"

	"github.com/go-chi/chi/v5"
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

func (h *Handler) PublicList(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	grouped, err := h.service.ListPublicGrouped(ctx)
	if err != nil {
		log.Error("skills public list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	log.Info("skills public list: ok", slog.Int("categories", len(grouped)))
	transport.WriteJSON(w, http.StatusOK, grouped)
}

func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	items, err := h.service.ListAdmin(ctx)
	if err != nil {
		log.Error("admin skills list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	log.Info("admin skills list: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) AdminCreate(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req CreateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admin skills create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("admin skills create: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.FieldErrors(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	item, err := h.service.Create(ctx, req)
	if err != nil {
		if errors.Is(err, ErrInvalidCategory) || errors.Is(err, ErrInvalidProficiency) {
			log.Warn("admin skills create: invalid enum value")
			transport.WriteError(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		log.Error("admin skills create: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	log.Info("admin skills create: ok", slog.String("skill_id", item.ID))
	transport.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "skill created",
		"skill":   item,
	})
}

func (h *Handler) AdminUpdate(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	var req UpdateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admin skills update: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("admin skills update: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.FieldErrors(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	item, err := h.service.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("admin skills update: not found", slog.String("skill_id", id))
			transport.WriteError(w, http.StatusNotFound, "skill not found", nil)
			return
		}
		if errors.Is(err, ErrInvalidCategory) || errors.Is(err, ErrInvalidProficiency) {
			log.Warn("admin skills update: invalid enum value")
			transport.WriteError(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		log.Error("admin skills update: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	log.Info("admin skills update: ok", slog.String("skill_id", id))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "skill updated",
		"skill":   item,
	})
}

func (h *Handler) AdminDelete(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.service.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("admin skills delete: not found", slog.String("skill_id", id))
			transport.WriteError(w, http.StatusNotFound, "skill not found", nil)
			return
		}
		log.Error("admin skills delete: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	log.Info("admin skills delete: ok", slog.String("skill_id", id))
	transport.WriteJSON(w, http.StatusOK, map[string]string{"message": "skill deleted"})
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
