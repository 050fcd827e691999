package testutils

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	playerdb "github.com/office-olympics/scorekeeper/app/modules/player/infrastructure/repositories"
)

// SeedOlympics inserts an olympics row and returns its id.
func SeedOlympics(ctx context.Context, db *bun.DB, name string) (int64, error) {
	olympics := &playerdb.Olympics{
		Name:      name,
		CreatedAt: time.Now(),
	}
	if _, err := db.NewInsert().Model(olympics).Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to seed olympics: %w", err)
	}
	return olympics.ID, nil
}

// SeedPlayers inserts one player row per name under the given olympics and
// returns the rows in input order.
func SeedPlayers(ctx context.Context, db *bun.DB, olympicsID int64, names []string) ([]playerdb.Player, error) {
	players := make([]playerdb.Player, len(names))
	for i, name := range names {
		players[i] = playerdb.Player{
			OlympicsID: olympicsID,
			Name:       name,
			CreatedAt:  time.Now(),
		}
	}
	if _, err := db.NewInsert().Model(&players).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to seed players: %w", err)
	}
	return players, nil
}
