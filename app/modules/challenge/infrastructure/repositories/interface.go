package challengedb

import "context"

// Repository is the storage contract for the challenge catalog.
type Repository interface {
	ListChallenges(ctx context.Context) ([]Challenge, error)
	GetChallenge(ctx context.Context, challengeID int64) (*Challenge, error)
}
