package experience

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

	items, err := h.service.ListPublic(ctx)
	if err != nil {
		log.Error("experiences public list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	out := make([]PublicExperience, 0, len(items))
	for _, item := range items {
		out = append(out, item.Public())
	}

	log.Info("experiences public list: ok", slog.Int("count", len(out)))
	transport.WriteJSON(w, http.StatusOK, out)
}

func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	items, err := h.service.ListAdmin(ctx)
	if err != nil {
		log.Error("admin experiences list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	log.Info("admin experiences list: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) AdminCreate(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req CreateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admin experiences create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("admin experiences create: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.FieldErrors(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	item, err := h.service.Create(ctx, req)
	if err != nil {
		log.Error("admin experiences create: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	log.Info("admin experiences create: ok", slog.String("experience_id", item.ID))
	transport.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message":    "experience created",
		"experience": item,
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
		log.Warn("admin experiences update: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("admin experiences update: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.FieldErrors(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	item, err := h.service.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("admin experiences update: not found", slog.String("experience_id", id))
			transport.WriteError(w, http.StatusNotFound, "experience not found", nil)
			return
		}
		log.Error("admin experiences update: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	log.Info("admin experiences update: ok", slog.String("experience_id", id))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message":    "experience updated",
		"experience": item,
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
			log.Warn("admin experiences delete: not found", slog.String("experience_id", id))
			transport.WriteError(w, http.StatusNotFound, "experience not found", nil)
			return
		}
		log.Error("admin experiences delete: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	log.Info("admin experiences delete: ok", slog.String("experience_id", id))
	transport.WriteJSON(w, http.StatusOK, map[string]string{"message": "experience deleted"})
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
