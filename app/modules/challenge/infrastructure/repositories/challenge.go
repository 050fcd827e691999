package challengedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
)

// ChallengeDBImpl is the bun-backed implementation of the challenge Repository.
type ChallengeDBImpl struct {
	DB *bun.DB
}

// ListChallenges returns the full challenge catalog in creation order.
func (db *ChallengeDBImpl) ListChallenges(ctx context.Context) ([]Challenge, error) {
	var challenges []Challenge
	err := db.DB.NewSelect().
		Model(&challenges).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list challenges: %w", err)
	}
	return challenges, nil
}

// GetChallenge retrieves a single challenge by id.
func (db *ChallengeDBImpl) GetChallenge(ctx context.Context, challengeID int64) (*Challenge, error) {
	challenge := &Challenge{}
	err := db.DB.NewSelect().Model(challenge).Where("id = ?", challengeID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrChallengeNotFound
		}
		return nil, fmt.Errorf("failed to fetch challenge %d: %w", challengeID, err)
	}
	return challenge, nil
}
