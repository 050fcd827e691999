package playerdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
)

// PlayerDBImpl is the bun-backed implementation of the player Repository.
type PlayerDBImpl struct {
	DB *bun.DB
}

// FindIDsByNames resolves player display names to ids within one olympics.
func (db *PlayerDBImpl) FindIDsByNames(ctx context.Context, olympicsID int64, names []string) (map[string]int64, error) {
	if len(names) == 0 {
		return map[string]int64{}, nil
	}

	var players []Player
	err := db.DB.NewSelect().
		Model(&players).
		Column("id", "name").
		Where("olympics_id = ?", olympicsID).
		Where("name IN (?)", bun.In(names)).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve player names: %w", err)
	}

	ids := make(map[string]int64, len(players))
	for _, p := range players {
		ids[p.Name] = p.ID
	}
	return ids, nil
}

// GetPlayer retrieves a single player by id.
func (db *PlayerDBImpl) GetPlayer(ctx context.Context, playerID int64) (*Player, error) {
	player := &Player{}
	err := db.DB.NewSelect().Model(player).Where("id = ?", playerID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to fetch player %d: %w", playerID, err)
	}
	return player, nil
}

// ListPlayers returns all players registered in an olympics instance.
func (db *PlayerDBImpl) ListPlayers(ctx context.Context, olympicsID int64) ([]Player, error) {
	var players []Player
	err := db.DB.NewSelect().
		Model(&players).
		Where("olympics_id = ?", olympicsID).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list players for olympics %d: %w", olympicsID, err)
	}
	return players, nil
}
