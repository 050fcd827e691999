package scoreservice

import (
	"context"
	"time"

	scoredb "github.com/office-olympics/scorekeeper/app/modules/score/infrastructure/repositories"
)

// Service is the scoring contract consumed by the HTTP layer.
type Service interface {
	// SubmitScores validates, resolves and reconciles one score batch, then
	// recomputes totals; the write and the recompute share one transaction.
	SubmitScores(ctx context.Context, sub ScoreSubmission) (SubmissionResult, error)

	// ChallengeRanking returns the rank view for one challenge within an
	// olympics instance. An empty scope yields an empty slice, not an error.
	ChallengeRanking(ctx context.Context, challengeID, olympicsID int64) ([]scoredb.Rank, error)

	// OverallRanking returns the final rank view over total scores.
	OverallRanking(ctx context.Context, olympicsID int64) ([]scoredb.Rank, error)
}

// Metrics records operational telemetry for score operations.
type Metrics interface {
	RecordOperationAttempt(ctx context.Context, operation string)
	RecordOperationSuccess(ctx context.Context, operation string)
	RecordOperationFailure(ctx context.Context, operation string)
	RecordOperationDuration(ctx context.Context, operation string, d time.Duration)
	RecordBatchSize(ctx context.Context, size int)
}
