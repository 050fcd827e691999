package scoredb

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// ScoreDBImpl is the bun-backed implementation of the score Repository.
type ScoreDBImpl struct {
	DB *bun.DB
}

// idb returns the transaction handle when one was supplied, otherwise the
// repository's own connection.
func (db *ScoreDBImpl) idb(tx bun.IDB) bun.IDB {
	if tx != nil {
		return tx
	}
	return db.DB
}

// UpsertScores writes each entry atomically against the unique
// (challenge_id, player_id) constraint. Existing rows are updated in place,
// new rows inserted; the constraint guarantees concurrent submitters for the
// same pair can never produce duplicate records.
func (db *ScoreDBImpl) UpsertScores(ctx context.Context, tx bun.IDB, entries []ScoreEntry) (int64, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	records := make([]ChallengeScore, 0, len(entries))
	for _, e := range entries {
		records = append(records, ChallengeScore{
			ChallengeID: e.ChallengeID,
			PlayerID:    e.PlayerID,
			Score:       e.Score,
			UpdatedAt:   now,
		})
	}

	res, err := db.idb(tx).NewInsert().
		Model(&records).
		On("CONFLICT (challenge_id, player_id) DO UPDATE").
		Set("score = EXCLUDED.score, updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert %d score entries: %w", len(entries), err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected after upsert: %w", err)
	}
	if affected == 0 {
		return 0, ErrNoRowsAffected
	}

	return affected, nil
}

// RecomputeTotalScores rebuilds total_scores for one olympics instance from
// the current challenge_scores rows. Delete-and-reinsert from source keeps
// the aggregate drift-free and makes the operation idempotent.
func (db *ScoreDBImpl) RecomputeTotalScores(ctx context.Context, tx bun.IDB, olympicsID int64) error {
	idb := db.idb(tx)

	if _, err := idb.NewDelete().
		Model((*TotalScore)(nil)).
		Where("olympics_id = ?", olympicsID).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear total scores for olympics %d: %w", olympicsID, err)
	}

	if _, err := idb.NewRaw(`
		INSERT INTO total_scores (player_id, olympics_id, total_score, updated_at)
		SELECT p.id, p.olympics_id, SUM(cs.score), now()
		FROM players AS p
		JOIN challenge_scores AS cs ON cs.player_id = p.id
		WHERE p.olympics_id = ?
		GROUP BY p.id, p.olympics_id
	`, olympicsID).Exec(ctx); err != nil {
		return fmt.Errorf("failed to recompute total scores for olympics %d: %w", olympicsID, err)
	}

	return nil
}

// ChallengeRanking returns the per-challenge rank view. Positions are
// sequential integers from 1; ties do not share a position, the player id
// breaks them deterministically.
func (db *ScoreDBImpl) ChallengeRanking(ctx context.Context, challengeID, olympicsID int64) ([]Rank, error) {
	ranks := []Rank{}
	err := db.DB.NewRaw(`
		SELECT ROW_NUMBER() OVER (ORDER BY cs.score DESC, p.id ASC) AS rank,
		       p.name AS player_name,
		       cs.score AS score
		FROM challenge_scores AS cs
		JOIN players AS p ON p.id = cs.player_id
		WHERE cs.challenge_id = ? AND p.olympics_id = ?
		ORDER BY cs.score DESC, p.id ASC
	`, challengeID, olympicsID).Scan(ctx, &ranks)
	if err != nil {
		return nil, fmt.Errorf("failed to rank challenge %d: %w", challengeID, err)
	}
	return ranks, nil
}

// OverallRanking returns the final rank view over total scores.
func (db *ScoreDBImpl) OverallRanking(ctx context.Context, olympicsID int64) ([]Rank, error) {
	ranks := []Rank{}
	err := db.DB.NewRaw(`
		SELECT ROW_NUMBER() OVER (ORDER BY ts.total_score DESC, p.id ASC) AS rank,
		       p.name AS player_name,
		       ts.total_score AS score
		FROM total_scores AS ts
		JOIN players AS p ON p.id = ts.player_id
		WHERE ts.olympics_id = ?
		ORDER BY ts.total_score DESC, p.id ASC
	`, olympicsID).Scan(ctx, &ranks)
	if err != nil {
		return nil, fmt.Errorf("failed to rank olympics %d: %w", olympicsID, err)
	}
	return ranks, nil
}
