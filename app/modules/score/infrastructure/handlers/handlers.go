package scorehandlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	scoreservice "github.com/office-olympics/scorekeeper/app/modules/score/application"
	"go.opentelemetry.io/otel/trace"
)

// ScoreHandlers exposes the score module over HTTP.
type ScoreHandlers struct {
	service scoreservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
	// defaultOlympicsID is assumed when a ranking request does not carry an
	// olympicsId query parameter.
	defaultOlympicsID int64
}

// NewScoreHandlers creates a new ScoreHandlers instance.
func NewScoreHandlers(service scoreservice.Service, logger *slog.Logger, tracer trace.Tracer, defaultOlympicsID int64) *ScoreHandlers {
	return &ScoreHandlers{
		service:           service,
		logger:            logger,
		tracer:            tracer,
		defaultOlympicsID: defaultOlympicsID,
	}
}

// Register mounts the score routes on the given router. Middlewares apply to
// the submission route only; the ranking reads stay unwrapped.
func (h *ScoreHandlers) Register(r chi.Router, submitMiddlewares ...func(http.Handler) http.Handler) {
	r.With(submitMiddlewares...).Post("/api/challenges/{challengeID}/scores", h.SubmitScores)
	r.Get("/api/challenges/{challengeID}/rankings", h.ChallengeRanking)
	r.Get("/api/olympics/{olympicsID}/rankings", h.OverallRanking)
}

func (h *ScoreHandlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("Failed to encode response", slog.Any("error", err))
	}
}

func (h *ScoreHandlers) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, map[string]string{"error": msg})
}
