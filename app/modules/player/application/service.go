package playerservice

import (
	"context"
	"fmt"
	"log/slog"

	playerdb "github.com/office-olympics/scorekeeper/app/modules/player/infrastructure/repositories"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// PlayerService implements the Service interface.
type PlayerService struct {
	repo   playerdb.Repository
	logger *slog.Logger
	tracer trace.Tracer
}

// NewPlayerService creates a new PlayerService.
func NewPlayerService(repo playerdb.Repository, logger *slog.Logger, tracer trace.Tracer) *PlayerService {
	return &PlayerService{
		repo:   repo,
		logger: logger,
		tracer: tracer,
	}
}

// ResolveNames maps display names to player ids, preserving input order.
// Pure read; no side effects.
func (s *PlayerService) ResolveNames(ctx context.Context, olympicsID int64, names []string) ([]int64, error) {
	ctx, span := s.tracer.Start(ctx, "ResolveNames", trace.WithAttributes(
		attribute.Int64("olympics_id", olympicsID),
		attribute.Int("num_names", len(names)),
	))
	defer span.End()

	idsByName, err := s.repo.FindIDsByNames(ctx, olympicsID, names)
	if err != nil {
		wrappedErr := fmt.Errorf("ResolveNames: %w", err)
		s.logger.ErrorContext(ctx, "Failed to resolve player names",
			slog.Int64("olympics_id", olympicsID),
			slog.Any("error", wrappedErr),
		)
		span.RecordError(wrappedErr)
		return nil, wrappedErr
	}

	ids := make([]int64, 0, len(names))
	var missing []string
	for _, name := range names {
		id, ok := idsByName[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		ids = append(ids, id)
	}

	if len(missing) > 0 {
		err := &UnresolvedNamesError{Names: missing}
		s.logger.WarnContext(ctx, "Submission references unknown players",
			slog.Int64("olympics_id", olympicsID),
			slog.Any("missing_names", missing),
		)
		span.RecordError(err)
		return nil, err
	}

	return ids, nil
}

// GetPlayer retrieves a single player by id.
func (s *PlayerService) GetPlayer(ctx context.Context, playerID int64) (*playerdb.Player, error) {
	return s.repo.GetPlayer(ctx, playerID)
}

// ListPlayers returns all players in an olympics instance.
func (s *PlayerService) ListPlayers(ctx context.Context, olympicsID int64) ([]playerdb.Player, error) {
	return s.repo.ListPlayers(ctx, olympicsID)
}
