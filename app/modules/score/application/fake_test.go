package scoreservice

import (
	"context"

	challengedb "github.com/office-olympics/scorekeeper/app/modules/challenge/infrastructure/repositories"
	playerdb "github.com/office-olympics/scorekeeper/app/modules/player/infrastructure/repositories"
	scoredb "github.com/office-olympics/scorekeeper/app/modules/score/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Score Repo
// ------------------------

// FakeScoreRepository provides a programmable stub for the scoredb.Repository interface.
type FakeScoreRepository struct {
	trace []string

	UpsertScoresFunc         func(ctx context.Context, db bun.IDB, entries []scoredb.ScoreEntry) (int64, error)
	RecomputeTotalScoresFunc func(ctx context.Context, db bun.IDB, olympicsID int64) error
	ChallengeRankingFunc     func(ctx context.Context, challengeID, olympicsID int64) ([]scoredb.Rank, error)
	OverallRankingFunc       func(ctx context.Context, olympicsID int64) ([]scoredb.Rank, error)

	LastUpserted []scoredb.ScoreEntry
}

// NewFakeScoreRepository initializes a new FakeScoreRepository with an empty trace.
func NewFakeScoreRepository() *FakeScoreRepository {
	return &FakeScoreRepository{trace: []string{}}
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakeScoreRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeScoreRepository) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeScoreRepository) UpsertScores(ctx context.Context, db bun.IDB, entries []scoredb.ScoreEntry) (int64, error) {
	f.record("UpsertScores")
	f.LastUpserted = entries
	if f.UpsertScoresFunc != nil {
		return f.UpsertScoresFunc(ctx, db, entries)
	}
	return int64(len(entries)), nil
}

func (f *FakeScoreRepository) RecomputeTotalScores(ctx context.Context, db bun.IDB, olympicsID int64) error {
	f.record("RecomputeTotalScores")
	if f.RecomputeTotalScoresFunc != nil {
		return f.RecomputeTotalScoresFunc(ctx, db, olympicsID)
	}
	return nil
}

func (f *FakeScoreRepository) ChallengeRanking(ctx context.Context, challengeID, olympicsID int64) ([]scoredb.Rank, error) {
	f.record("ChallengeRanking")
	if f.ChallengeRankingFunc != nil {
		return f.ChallengeRankingFunc(ctx, challengeID, olympicsID)
	}
	return nil, nil
}

func (f *FakeScoreRepository) OverallRanking(ctx context.Context, olympicsID int64) ([]scoredb.Rank, error) {
	f.record("OverallRanking")
	if f.OverallRankingFunc != nil {
		return f.OverallRankingFunc(ctx, olympicsID)
	}
	return nil, nil
}

// ------------------------
// Fake Player Service
// ------------------------

// FakePlayerService provides a programmable stub for the player module's Service.
type FakePlayerService struct {
	ResolveNamesFunc func(ctx context.Context, olympicsID int64, names []string) ([]int64, error)
}

func (f *FakePlayerService) ResolveNames(ctx context.Context, olympicsID int64, names []string) ([]int64, error) {
	if f.ResolveNamesFunc != nil {
		return f.ResolveNamesFunc(ctx, olympicsID, names)
	}
	// Default: identity mapping, name i resolves to id i+1.
	ids := make([]int64, len(names))
	for i := range names {
		ids[i] = int64(i + 1)
	}
	return ids, nil
}

func (f *FakePlayerService) GetPlayer(ctx context.Context, playerID int64) (*playerdb.Player, error) {
	return nil, playerdb.ErrPlayerNotFound
}

func (f *FakePlayerService) ListPlayers(ctx context.Context, olympicsID int64) ([]playerdb.Player, error) {
	return nil, nil
}

// ------------------------
// Fake Challenge Service
// ------------------------

// FakeChallengeService provides a programmable stub for the challenge module's Service.
type FakeChallengeService struct {
	GetChallengeFunc func(ctx context.Context, challengeID int64) (*challengedb.Challenge, error)
}

func (f *FakeChallengeService) ListChallenges(ctx context.Context) ([]challengedb.Challenge, error) {
	return nil, nil
}

func (f *FakeChallengeService) GetChallenge(ctx context.Context, challengeID int64) (*challengedb.Challenge, error) {
	if f.GetChallengeFunc != nil {
		return f.GetChallengeFunc(ctx, challengeID)
	}
	return &challengedb.Challenge{ID: challengeID, Name: "Chair Race"}, nil
}
