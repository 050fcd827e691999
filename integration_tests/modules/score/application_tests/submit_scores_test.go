package scoreintegrationtests

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	playerservice "github.com/office-olympics/scorekeeper/app/modules/player/application"
	scoreservice "github.com/office-olympics/scorekeeper/app/modules/score/application"
	scoredb "github.com/office-olympics/scorekeeper/app/modules/score/infrastructure/repositories"
)

func TestSubmitScores_InsertsAndRecomputesTotals(t *testing.T) {
	deps := SetupTestScoreService(t, 3)
	challengeID := deps.Challenges[0].ID

	result, err := deps.Service.SubmitScores(deps.Ctx, scoreservice.ScoreSubmission{
		OlympicsID:  deps.OlympicsID,
		ChallengeID: challengeID,
		PlayerNames: playerNames(deps.Players),
		Scores:      []int{10, 7, 4},
	})
	require.NoError(t, err)
	require.Equal(t, int64(3), result.Affected)
	require.Equal(t, 3, countScoreRows(t, deps, challengeID))

	totals := fetchTotals(t, deps)
	require.Len(t, totals, 3)
	require.Equal(t, 10, totals[deps.Players[0].ID])
	require.Equal(t, 7, totals[deps.Players[1].ID])
	require.Equal(t, 4, totals[deps.Players[2].ID])
}

func TestSubmitScores_ResubmissionUpdatesInPlace(t *testing.T) {
	deps := SetupTestScoreService(t, 2)
	challengeID := deps.Challenges[0].ID
	names := playerNames(deps.Players)

	_, err := deps.Service.SubmitScores(deps.Ctx, scoreservice.ScoreSubmission{
		OlympicsID:  deps.OlympicsID,
		ChallengeID: challengeID,
		PlayerNames: names,
		Scores:      []int{5, 8},
	})
	require.NoError(t, err)

	// Same players, corrected scores: the rows must mutate, not multiply.
	_, err = deps.Service.SubmitScores(deps.Ctx, scoreservice.ScoreSubmission{
		OlympicsID:  deps.OlympicsID,
		ChallengeID: challengeID,
		PlayerNames: names,
		Scores:      []int{12, 8},
	})
	require.NoError(t, err)
	require.Equal(t, 2, countScoreRows(t, deps, challengeID))

	totals := fetchTotals(t, deps)
	require.Equal(t, 12, totals[deps.Players[0].ID])
	require.Equal(t, 8, totals[deps.Players[1].ID])
}

func TestSubmitScores_TotalsSpanChallenges(t *testing.T) {
	deps := SetupTestScoreService(t, 2)
	require.GreaterOrEqual(t, len(deps.Challenges), 2)
	names := playerNames(deps.Players)

	for i, scores := range [][]int{{3, 1}, {4, 9}} {
		_, err := deps.Service.SubmitScores(deps.Ctx, scoreservice.ScoreSubmission{
			OlympicsID:  deps.OlympicsID,
			ChallengeID: deps.Challenges[i].ID,
			PlayerNames: names,
			Scores:      scores,
		})
		require.NoError(t, err)
	}

	totals := fetchTotals(t, deps)
	require.Equal(t, 7, totals[deps.Players[0].ID])
	require.Equal(t, 10, totals[deps.Players[1].ID])
}

func TestSubmitScores_UnknownNameWritesNothing(t *testing.T) {
	deps := SetupTestScoreService(t, 2)
	challengeID := deps.Challenges[0].ID

	_, err := deps.Service.SubmitScores(deps.Ctx, scoreservice.ScoreSubmission{
		OlympicsID:  deps.OlympicsID,
		ChallengeID: challengeID,
		PlayerNames: []string{deps.Players[0].Name, "Nobody Here"},
		Scores:      []int{5, 6},
	})

	var unresolved *playerservice.UnresolvedNamesError
	require.ErrorAs(t, err, &unresolved)
	require.Equal(t, []string{"Nobody Here"}, unresolved.Names)
	require.Equal(t, 0, countScoreRows(t, deps, challengeID))
	require.Empty(t, fetchTotals(t, deps))
}

func TestSubmitScores_MismatchedLengthsRejectedBeforeStorage(t *testing.T) {
	deps := SetupTestScoreService(t, 2)
	challengeID := deps.Challenges[0].ID

	_, err := deps.Service.SubmitScores(deps.Ctx, scoreservice.ScoreSubmission{
		OlympicsID:  deps.OlympicsID,
		ChallengeID: challengeID,
		PlayerNames: playerNames(deps.Players),
		Scores:      []int{1},
	})

	require.True(t, errors.Is(err, scoreservice.ErrBatchShape))
	require.Equal(t, 0, countScoreRows(t, deps, challengeID))
}

// fetchTotals reads total_scores keyed by player id.
func fetchTotals(t *testing.T, deps TestDeps) map[int64]int {
	t.Helper()

	var rows []scoredb.TotalScore
	err := deps.BunDB.NewSelect().
		Model(&rows).
		Where("olympics_id = ?", deps.OlympicsID).
		Scan(deps.Ctx)
	require.NoError(t, err)

	totals := make(map[int64]int, len(rows))
	for _, row := range rows {
		totals[row.PlayerID] = row.TotalScore
	}
	return totals
}
