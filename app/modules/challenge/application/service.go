package challengeservice

import (
	"context"
	"fmt"
	"log/slog"

	challengedb "github.com/office-olympics/scorekeeper/app/modules/challenge/infrastructure/repositories"
	"go.opentelemetry.io/otel/trace"
)

// ChallengeService implements the Service interface.
type ChallengeService struct {
	repo   challengedb.Repository
	logger *slog.Logger
	tracer trace.Tracer
}

// NewChallengeService creates a new ChallengeService.
func NewChallengeService(repo challengedb.Repository, logger *slog.Logger, tracer trace.Tracer) *ChallengeService {
	return &ChallengeService{
		repo:   repo,
		logger: logger,
		tracer: tracer,
	}
}

// ListChallenges returns the challenge catalog.
func (s *ChallengeService) ListChallenges(ctx context.Context) ([]challengedb.Challenge, error) {
	ctx, span := s.tracer.Start(ctx, "ListChallenges")
	defer span.End()

	challenges, err := s.repo.ListChallenges(ctx)
	if err != nil {
		wrappedErr := fmt.Errorf("ListChallenges: %w", err)
		s.logger.ErrorContext(ctx, "Failed to list challenges", slog.Any("error", wrappedErr))
		span.RecordError(wrappedErr)
		return nil, wrappedErr
	}
	return challenges, nil
}

// GetChallenge retrieves one challenge; challengedb.ErrChallengeNotFound when absent.
func (s *ChallengeService) GetChallenge(ctx context.Context, challengeID int64) (*challengedb.Challenge, error) {
	ctx, span := s.tracer.Start(ctx, "GetChallenge")
	defer span.End()

	challenge, err := s.repo.GetChallenge(ctx, challengeID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return challenge, nil
}
