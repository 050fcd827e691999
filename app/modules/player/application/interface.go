package playerservice

import (
	"context"

	playerdb "github.com/office-olympics/scorekeeper/app/modules/player/infrastructure/repositories"
)

// Service is the identity-resolution contract consumed by other modules.
type Service interface {
	// ResolveNames maps player display names to ids. The returned slice has
	// the same length and order as the input: out[i] is the id for names[i].
	// If any name does not resolve, the whole call fails with
	// *UnresolvedNamesError and no partial result is returned.
	ResolveNames(ctx context.Context, olympicsID int64, names []string) ([]int64, error)
	GetPlayer(ctx context.Context, playerID int64) (*playerdb.Player, error)
	ListPlayers(ctx context.Context, olympicsID int64) ([]playerdb.Player, error)
}
