package scoreservice

import (
	"context"

	scoredb "github.com/office-olympics/scorekeeper/app/modules/score/infrastructure/repositories"
)

// ChallengeRanking returns the rank view for one challenge. Plain read, no
// transaction; an empty scope is a valid empty result.
func (s *ScoreService) ChallengeRanking(ctx context.Context, challengeID, olympicsID int64) ([]scoredb.Rank, error) {
	return withTelemetry(s, ctx, "ChallengeRanking", func(ctx context.Context) ([]scoredb.Rank, error) {
		if _, err := s.challenges.GetChallenge(ctx, challengeID); err != nil {
			return nil, err
		}

		ranks, err := s.repo.ChallengeRanking(ctx, challengeID, olympicsID)
		if err != nil {
			return nil, err
		}
		if ranks == nil {
			ranks = []scoredb.Rank{}
		}
		return ranks, nil
	})
}

// OverallRanking returns the final rank view over total scores.
func (s *ScoreService) OverallRanking(ctx context.Context, olympicsID int64) ([]scoredb.Rank, error) {
	return withTelemetry(s, ctx, "OverallRanking", func(ctx context.Context) ([]scoredb.Rank, error) {
		ranks, err := s.repo.OverallRanking(ctx, olympicsID)
		if err != nil {
			return nil, err
		}
		if ranks == nil {
			ranks = []scoredb.Rank{}
		}
		return ranks, nil
	})
}
