package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	challengeservice "github.com/office-olympics/scorekeeper/app/modules/challenge/application"
	challengehandlers "github.com/office-olympics/scorekeeper/app/modules/challenge/infrastructure/handlers"
	playerservice "github.com/office-olympics/scorekeeper/app/modules/player/application"
	playerhandlers "github.com/office-olympics/scorekeeper/app/modules/player/infrastructure/handlers"
	scoreservice "github.com/office-olympics/scorekeeper/app/modules/score/application"
	scorehandlers "github.com/office-olympics/scorekeeper/app/modules/score/infrastructure/handlers"
	"github.com/office-olympics/scorekeeper/config"
	"github.com/office-olympics/scorekeeper/db/bundb"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
)

// App wires configuration, storage, services and the HTTP server together.
type App struct {
	cfg       *config.Config
	logger    *slog.Logger
	dbService *bundb.DBService
	server    *http.Server
}

// NewApp builds the full application from configuration.
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	dbService, err := bundb.NewBunDBService(ctx, cfg.Postgres)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	tracer := otel.Tracer("scorekeeper")
	metrics := scoreservice.NewPrometheusMetrics(prometheus.DefaultRegisterer)

	players := playerservice.NewPlayerService(dbService.PlayerDB, logger, tracer)
	challenges := challengeservice.NewChallengeService(dbService.ChallengeDB, logger, tracer)
	scores := scoreservice.NewScoreService(
		dbService.ScoreDB,
		players,
		challenges,
		logger,
		metrics,
		tracer,
		dbService.GetDB(),
	)

	router := NewRouter(
		cfg,
		logger,
		playerhandlers.NewPlayerHandlers(players, logger),
		challengehandlers.NewChallengeHandlers(challenges, logger),
		scorehandlers.NewScoreHandlers(scores, logger, tracer, cfg.Olympics.DefaultID),
		func(r *http.Request) error {
			return dbService.GetDB().PingContext(r.Context())
		},
	)

	return &App{
		cfg:       cfg,
		logger:    logger,
		dbService: dbService,
		server: &http.Server{
			Addr:    cfg.HTTP.Addr,
			Handler: router,
		},
	}, nil
}

// Run serves HTTP until the context is canceled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server listening", slog.String("addr", a.cfg.HTTP.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down HTTP server: %w", err)
	}

	if err := a.dbService.Close(); err != nil {
		a.logger.Error("Error closing database connection", slog.Any("error", err))
	}

	return nil
}
