package scoreintegrationtests

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace/noop"

	challengedb "github.com/office-olympics/scorekeeper/app/modules/challenge/infrastructure/repositories"
	playerdb "github.com/office-olympics/scorekeeper/app/modules/player/infrastructure/repositories"
	scoreservice "github.com/office-olympics/scorekeeper/app/modules/score/application"
	scoredb "github.com/office-olympics/scorekeeper/app/modules/score/infrastructure/repositories"
	"github.com/office-olympics/scorekeeper/integration_tests/testutils"

	challengeservice "github.com/office-olympics/scorekeeper/app/modules/challenge/application"
	playerservice "github.com/office-olympics/scorekeeper/app/modules/player/application"
)

// TestDeps bundles a fully wired score service over a real database, plus
// seeded olympics and player fixtures.
type TestDeps struct {
	Ctx        context.Context
	BunDB      *bun.DB
	Repo       scoredb.Repository
	Service    scoreservice.Service
	OlympicsID int64
	Players    []playerdb.Player
	Challenges []challengedb.Challenge
}

// SetupTestScoreService resets the score tables, seeds an olympics with the
// given number of players and wires the real service stack over the shared
// test database.
func SetupTestScoreService(t *testing.T, playerCount int) TestDeps {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	env := testutils.GetOrCreateTestEnv(t)

	// Challenges come from the seed migration and stay; everything else is
	// per-test state.
	if err := testutils.TruncateTables(env.Ctx, env.DB,
		"challenge_scores", "total_scores", "players", "olympics"); err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}

	generator := testutils.NewTestDataGenerator(42)

	olympicsID, err := testutils.SeedOlympics(env.Ctx, env.DB, generator.GenerateOlympicsName())
	if err != nil {
		t.Fatalf("Failed to seed olympics: %v", err)
	}

	players, err := testutils.SeedPlayers(env.Ctx, env.DB, olympicsID, generator.GeneratePlayerNames(playerCount))
	if err != nil {
		t.Fatalf("Failed to seed players: %v", err)
	}

	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	noOpTracer := noop.NewTracerProvider().Tracer("test_score_service")

	playerSvc := playerservice.NewPlayerService(env.DBService.PlayerDB, testLogger, noOpTracer)
	challengeSvc := challengeservice.NewChallengeService(env.DBService.ChallengeDB, testLogger, noOpTracer)
	service := scoreservice.NewScoreService(
		env.DBService.ScoreDB,
		playerSvc,
		challengeSvc,
		testLogger,
		&scoreservice.NoOpMetrics{},
		noOpTracer,
		env.DB,
	)

	challenges, err := challengeSvc.ListChallenges(env.Ctx)
	if err != nil {
		t.Fatalf("Failed to list challenges: %v", err)
	}
	if len(challenges) == 0 {
		t.Fatal("Expected seeded challenge catalog, got none")
	}

	return TestDeps{
		Ctx:        env.Ctx,
		BunDB:      env.DB,
		Repo:       env.DBService.ScoreDB,
		Service:    service,
		OlympicsID: olympicsID,
		Players:    players,
		Challenges: challenges,
	}
}

// playerNames projects the seeded players to their display names.
func playerNames(players []playerdb.Player) []string {
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Name
	}
	return names
}

// countScoreRows returns the number of challenge_scores rows for a challenge.
func countScoreRows(t *testing.T, deps TestDeps, challengeID int64) int {
	t.Helper()

	count, err := deps.BunDB.NewSelect().
		Model((*scoredb.ChallengeScore)(nil)).
		Where("challenge_id = ?", challengeID).
		Count(deps.Ctx)
	if err != nil {
		t.Fatalf("Failed to count score rows: %v", err)
	}
	return count
}
