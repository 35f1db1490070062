package profile

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"portfolio-backend/internal/cache"
	"portfolio-backend/internal/httpx"
	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/transport"
	"portfolio-backend/internal/validation"
)

const cacheKeyHome = "public:home"

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

// PublicGet serves the active profile, or an empty object when none has been
// created yet; a fresh install is not a 404.
func (h *Handler) PublicGet(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	if cached, ok, err := h.cache.Get(r.Context(), cacheKeyHome); err == nil && ok {
		log.Info("home public get: cache hit")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(cached)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, err := h.service.GetActive(ctx)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			transport.WriteJSON(w, http.StatusOK, struct{}{})
			return
		}
		log.Error("home public get: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	out := item.Public(h.baseURL)
	if payload, err := json.Marshal(out); err == nil {
		_ = h.cache.Set(r.Context(), cacheKeyHome, payload, h.cacheTTL)
	}

	transport.WriteJSON(w, http.StatusOK, out)
}

func (h *Handler) AdminGet(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, err := h.service.GetActive(ctx)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			transport.WriteJSON(w, http.StatusOK, struct{}{})
			return
		}
		log.Error("admin home get: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) AdminUpsert(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req UpsertRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admin home upsert: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("admin home upsert: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.FieldErrors(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	item, err := h.service.Upsert(ctx, req)
	if err != nil {
		log.Error("admin home upsert: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	_ = h.cache.Delete(r.Context(), cacheKeyHome)
	log.Info("admin home upsert: ok", slog.String("profile_id", item.ID))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "profile saved",
		"profile": item,
	})
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
