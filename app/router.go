package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	challengehandlers "github.com/office-olympics/scorekeeper/app/modules/challenge/infrastructure/handlers"
	playerhandlers "github.com/office-olympics/scorekeeper/app/modules/player/infrastructure/handlers"
	scorehandlers "github.com/office-olympics/scorekeeper/app/modules/score/infrastructure/handlers"
	"github.com/office-olympics/scorekeeper/config"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter assembles the HTTP surface: challenge catalog, score submission
// and ranking routes, plus health and metrics endpoints.
func NewRouter(
	cfg *config.Config,
	logger *slog.Logger,
	playerHandlers *playerhandlers.PlayerHandlers,
	challengeHandlers *challengehandlers.ChallengeHandlers,
	scoreHandlers *scorehandlers.ScoreHandlers,
	healthCheck func(r *http.Request) error,
) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(RequestID)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)

	// Submissions are the only write path; keep them behind a bucket so a
	// misbehaving client cannot hammer the reconciliation transaction.
	scoreHandlers.Register(r, RateLimit(cfg.HTTP.SubmitRateLimit, cfg.HTTP.SubmitRateBurst))
	challengeHandlers.Register(r)
	playerHandlers.Register(r)

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		if err := healthCheck(req); err != nil {
			http.Error(w, "unhealthy", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}
