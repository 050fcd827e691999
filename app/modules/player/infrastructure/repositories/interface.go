package playerdb

import (
	"context"
)

// Repository is the storage contract for player identity data.
type Repository interface {
	// FindIDsByNames returns the ids of players whose names appear in the
	// given list, scoped to one olympics instance. Names with no matching
	// player are simply absent from the returned map; the caller decides
	// whether that is an error.
	FindIDsByNames(ctx context.Context, olympicsID int64, names []string) (map[string]int64, error)
	GetPlayer(ctx context.Context, playerID int64) (*Player, error)
	ListPlayers(ctx context.Context, olympicsID int64) ([]Player, error)
}
