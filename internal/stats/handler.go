package stats

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/transport"
)

// Counter is implemented by the project, experience, and skill services.
type Counter interface {
	CountActive(ctx context.Context) (int64, error)
}

type Handler struct {
	projects    Counter
	experiences Counter
	skills      Counter
	log         *slog.Logger
}

func NewHandler(projects, experiences, skills Counter, log *slog.Logger) *Handler {
	return &Handler{
		projects:    projects,
		experiences: experiences,
		skills:      skills,
		log:         log,
	}
}

// PublicStats reports active-record counts for the landing page.
func (h *Handler) PublicStats(w http.ResponseWriter, r *http.Request) {
	log := h.log
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		log = log.With(slog.String("request_id", id))
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	projectCount, err := h.projects.CountActive(ctx)
	if err != nil {
		log.Error("stats: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	experienceCount, err := h.experiences.CountActive(ctx)
	if err != nil {
		log.Error("stats: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	skillCount, err := h.skills.CountActive(ctx)
	if err != nil {
		log.Error("stats: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, map[string]int64{
		"projects":    projectCount,
		"experiences": experienceCount,
		"skills":      skillCount,
	})
}
