package projects

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"portfolio-backend/internal/cache"
	"portfolio-backend/internal/httpx"
	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/transport"
	"portfolio-backend/internal/validation"

	"github.com/go-chi/chi/v5"
)

const (
	cacheKeyAll      = "public:projects"
	cacheKeyFeatured = "public:projects:featured"
)

type Handler struct {
	service  *Service
	val      *validation.Validator
	log      *slog.Logger
	cache    cache.Cache
	cacheTTL time.Duration
	baseURL  string
}

func NewHandler(service *Service, val *validation.Validator, log *slog.Logger, cacheStore cache.Cache, cacheTTL time.Duration, baseURL string) *Handler {
	return &Handler{
		service:  service,
		val:      val,
		log:      log,
		cache:    cacheStore,
		cacheTTL: cacheTTL,
		baseURL:  baseURL,
	}
}

func (h *Handler) PublicList(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	featuredOnly := strings.EqualFold(r.URL.Query().Get("featured"), "true")

	cacheKey := cacheKeyAll
	if featuredOnly {
		cacheKey = cacheKeyFeatured
	}
	if cached, ok, err := h.cache.Get(r.Context(), cacheKey); err == nil && ok {
		log.Info("projects public list: cache hit")
		writeCached(w, cached)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := h.service.ListPublic(ctx, featuredOnly)
	if err != nil {
		log.Error("projects public list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	out := make([]PublicProject, 0, len(items))
	for _, item := range items {
		out = append(out, item.Public(h.baseURL))
	}

	if payload, err := json.Marshal(out); err == nil {
		_ = h.cache.Set(r.Context(), cacheKey, payload, h.cacheTTL)
	}

	log.Info("projects public list: ok", slog.Int("count", len(out)))
	transport.WriteJSON(w, http.StatusOK, out)
}

func (h *Handler) PublicGet(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		transport.WriteError(w, http.StatusNotFound, "project not found", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, err := h.service.GetPublicByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("projects public get: not found", slog.String("project_id", id))
			transport.WriteError(w, http.StatusNotFound, "project not found", nil)
			return
		}
		log.Error("projects public get: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, item.Public(h.baseURL))
}

func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	items, err := h.service.ListAdmin(ctx)
	if err != nil {
		log.Error("admin projects list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	log.Info("admin projects list: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) AdminCreate(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req CreateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admin projects create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("admin projects create: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.FieldErrors(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	item, err := h.service.Create(ctx, req)
	if err != nil {
		log.Error("admin projects create: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	h.invalidate(r.Context())
	log.Info("admin projects create: ok", slog.String("project_id", item.ID))
	transport.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "project created",
		"project": item,
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
		log.Warn("admin projects update: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("admin projects update: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.FieldErrors(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	item, err := h.service.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("admin projects update: not found", slog.String("project_id", id))
			transport.WriteError(w, http.StatusNotFound, "project not found", nil)
			return
		}
		log.Error("admin projects update: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	h.invalidate(r.Context())
	log.Info("admin projects update: ok", slog.String("project_id", id))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "project updated",
		"project": item,
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
			log.Warn("admin projects delete: not found", slog.String("project_id", id))
			transport.WriteError(w, http.StatusNotFound, "project not found", nil)
			return
		}
		log.Error("admin projects delete: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	h.invalidate(r.Context())
	log.Info("admin projects delete: ok", slog.String("project_id", id))
	transport.WriteJSON(w, http.StatusOK, map[string]string{"message": "project deleted"})
}

func (h *Handler) invalidate(ctx context.Context) {
	_ = h.cache.Delete(ctx, cacheKeyAll, cacheKeyFeatured)
}

func writeCached(w http.ResponseWriter, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
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
