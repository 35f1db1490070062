package contact

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"portfolio-backend/internal/httpx"
	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/notifications"
	"portfolio-backend/internal/transport"
	"portfolio-backend/internal/validation"

	"github.com/go-chi/chi/v5"
)

// Notifier mirrors the Brevo client; a nil notifier disables owner emails.
type Notifier interface {
	SendContactNotification(ctx context.Context, msg notifications.ContactMessage) (string, error)
}

type Handler struct {
	service  *Service
	val      *validation.Validator
	log      *slog.Logger
	notifier Notifier
}

func NewHandler(service *Service, val *validation.Validator, log *slog.Logger, notifier Notifier) *Handler {
	return &Handler{
		service:  service,
		val:      val,
		log:      log,
		notifier: notifier,
	}
}

func (h *Handler) PublicCreate(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req CreateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("contact create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("contact create: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.FieldErrors(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	msg, err := h.service.Submit(ctx, req)
	if err != nil {
		log.Error("contact create: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	h.notifyOwner(msg)

	log.Info("contact create: stored", slog.String("contact_id", msg.ID))
	transport.WriteJSON(w, http.StatusCreated, map[string]string{
		"message": "thanks for reaching out, I will get back to you soon",
	})
}

// notifyOwner emails the site owner in the background; a delivery failure
// never affects the visitor's response.
func (h *Handler) notifyOwner(msg ContactMessage) {
	if h.notifier == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		_, err := h.notifier.SendContactNotification(ctx, notifications.ContactMessage{
			Name:    msg.Name,
			Email:   msg.Email,
			Subject: msg.Subject,
			Message: msg.Message,
		})
		if err != nil {
			h.log.Warn("contact create: notification failed",
				slog.String("contact_id", msg.ID),
				slog.String("error", err.Error()),
			)
		}
	}()
}

func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	limit, offset, err := httpx.ParseLimitOffset(r.URL.Query(), 50, 200)
	if err != nil {
		log.Warn("admin contacts list: invalid query", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	items, total, err := h.service.List(ctx, limit, offset)
	if err != nil {
		log.Error("admin contacts list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	log.Info("admin contacts list: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items":  items,
		"limit":  limit,
		"offset": offset,
		"total":  total,
	})
}

func (h *Handler) AdminMarkRead(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	msg, err := h.service.MarkRead(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("admin contacts read: not found", slog.String("contact_id", id))
			transport.WriteError(w, http.StatusNotFound, "contact message not found", nil)
			return
		}
		log.Error("admin contacts read: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	log.Info("admin contacts read: ok", slog.String("contact_id", id))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "contact marked as read",
		"contact": msg,
	})
}

func (h *Handler) AdminReply(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	var req ReplyRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admin contacts reply: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	req.Reply = strings.TrimSpace(req.Reply)
	if err := h.val.Struct(req); err != nil {
		log.Warn("admin contacts reply: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.FieldErrors(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	msg, err := h.service.Reply(ctx, id, req.Reply)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("admin contacts reply: not found", slog.String("contact_id", id))
			transport.WriteError(w, http.StatusNotFound, "contact message not found", nil)
			return
		}
		log.Error("admin contacts reply: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	log.Info("admin contacts reply: ok", slog.String("contact_id", id))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "reply saved",
		"contact": msg,
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
