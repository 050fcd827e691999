package challengeservice

import (
	"context"

	challengedb "github.com/office-olympics/scorekeeper/app/modules/challenge/infrastructure/repositories"
)

// Service is the challenge catalog contract consumed by the HTTP layer and
// the score module.
type Service interface {
	ListChallenges(ctx context.Context) ([]challengedb.Challenge, error)
	GetChallenge(ctx context.Context, challengeID int64) (*challengedb.Challenge, error)
}
