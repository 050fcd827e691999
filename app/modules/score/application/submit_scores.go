package scoreservice

import (
	"context"
	"log/slog"

	scoredb "github.com/office-olympics/scorekeeper/app/modules/score/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// SubmitScores reconciles one score batch: validate shape, verify the
// challenge, resolve names to ids, upsert each (challenge, player) pair, and
// recompute totals. The upsert and the recompute share one transaction.
func (s *ScoreService) SubmitScores(ctx context.Context, sub ScoreSubmission) (SubmissionResult, error) {
	s.logger.InfoContext(ctx, "Processing score submission",
		slog.Int64("olympics_id", sub.OlympicsID),
		slog.Int64("challenge_id", sub.ChallengeID),
		slog.Int("num_entries", len(sub.PlayerNames)),
	)

	return withTelemetry(s, ctx, "SubmitScores", func(ctx context.Context) (SubmissionResult, error) {
		// Shape check comes first: a malformed batch must never reach storage.
		if len(sub.PlayerNames) == 0 || len(sub.PlayerNames) != len(sub.Scores) {
			return SubmissionResult{}, ErrBatchShape
		}
		s.metrics.RecordBatchSize(ctx, len(sub.PlayerNames))

		if _, err := s.challenges.GetChallenge(ctx, sub.ChallengeID); err != nil {
			return SubmissionResult{}, err
		}

		// All-or-nothing resolution: a partial mapping never reaches the
		// write path.
		playerIDs, err := s.players.ResolveNames(ctx, sub.OlympicsID, sub.PlayerNames)
		if err != nil {
			return SubmissionResult{}, err
		}

		entries := make([]scoredb.ScoreEntry, 0, len(playerIDs))
		for i, playerID := range playerIDs {
			entries = append(entries, scoredb.ScoreEntry{
				ChallengeID: sub.ChallengeID,
				PlayerID:    playerID,
				Score:       sub.Scores[i],
			})
		}

		return runInTx(s, ctx, func(ctx context.Context, tx bun.IDB) (SubmissionResult, error) {
			affected, err := s.repo.UpsertScores(ctx, tx, entries)
			if err != nil {
				return SubmissionResult{}, err
			}

			// Totals are derived data: rebuild them from source inside the
			// same transaction so they can never disagree with the scores.
			if err := s.repo.RecomputeTotalScores(ctx, tx, sub.OlympicsID); err != nil {
				return SubmissionResult{}, err
			}

			return SubmissionResult{Affected: affected}, nil
		})
	})
}
