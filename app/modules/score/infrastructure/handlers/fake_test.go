package scorehandlers

import (
	"context"

	scoreservice "github.com/office-olympics/scorekeeper/app/modules/score/application"
	scoredb "github.com/office-olympics/scorekeeper/app/modules/score/infrastructure/repositories"
)

// FakeService provides a programmable stub for the scoreservice.Service interface.
type FakeService struct {
	SubmitScoresFunc     func(ctx context.Context, sub scoreservice.ScoreSubmission) (scoreservice.SubmissionResult, error)
	ChallengeRankingFunc func(ctx context.Context, challengeID, olympicsID int64) ([]scoredb.Rank, error)
	OverallRankingFunc   func(ctx context.Context, olympicsID int64) ([]scoredb.Rank, error)

	LastSubmission *scoreservice.ScoreSubmission
}

func (f *FakeService) SubmitScores(ctx context.Context, sub scoreservice.ScoreSubmission) (scoreservice.SubmissionResult, error) {
	f.LastSubmission = &sub
	if f.SubmitScoresFunc != nil {
		return f.SubmitScoresFunc(ctx, sub)
	}
	return scoreservice.SubmissionResult{Affected: int64(len(sub.PlayerNames))}, nil
}

func (f *FakeService) ChallengeRanking(ctx context.Context, challengeID, olympicsID int64) ([]scoredb.Rank, error) {
	if f.ChallengeRankingFunc != nil {
		return f.ChallengeRankingFunc(ctx, challengeID, olympicsID)
	}
	return []scoredb.Rank{}, nil
}

func (f *FakeService) OverallRanking(ctx context.Context, olympicsID int64) ([]scoredb.Rank, error) {
	if f.OverallRankingFunc != nil {
		return f.OverallRankingFunc(ctx, olympicsID)
	}
	return []scoredb.Rank{}, nil
}
