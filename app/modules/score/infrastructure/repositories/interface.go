package scoredb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository is the storage contract for score records, totals and rankings.
// Write methods take a bun.IDB so the service layer controls the transaction
// boundary; passing nil falls back to the repository's own connection.
type Repository interface {
	// UpsertScores writes every entry, updating the existing row when one
	// already exists for its (challenge_id, player_id) pair and inserting
	// otherwise. Returns the number of affected rows.
	UpsertScores(ctx context.Context, db bun.IDB, entries []ScoreEntry) (int64, error)

	// RecomputeTotalScores rebuilds the total_scores table for one olympics
	// instance from the full set of challenge scores.
	RecomputeTotalScores(ctx context.Context, db bun.IDB, olympicsID int64) error

	// ChallengeRanking returns rank rows for one challenge, ordered by score
	// descending with ties broken by player id ascending.
	ChallengeRanking(ctx context.Context, challengeID, olympicsID int64) ([]Rank, error)

	// OverallRanking returns rank rows over total scores, same ordering.
	OverallRanking(ctx context.Context, olympicsID int64) ([]Rank, error)
}
