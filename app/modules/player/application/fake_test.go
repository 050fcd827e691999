package playerservice

import (
	"context"

	playerdb "github.com/office-olympics/scorekeeper/app/modules/player/infrastructure/repositories"
)

// FakePlayerRepository provides a programmable stub for the playerdb.Repository interface.
type FakePlayerRepository struct {
	trace []string

	FindIDsByNamesFunc func(ctx context.Context, olympicsID int64, names []string) (map[string]int64, error)
	GetPlayerFunc      func(ctx context.Context, playerID int64) (*playerdb.Player, error)
	ListPlayersFunc    func(ctx context.Context, olympicsID int64) ([]playerdb.Player, error)
}

// NewFakePlayerRepository initializes a new FakePlayerRepository with an empty trace.
func NewFakePlayerRepository() *FakePlayerRepository {
	return &FakePlayerRepository{trace: []string{}}
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakePlayerRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakePlayerRepository) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakePlayerRepository) FindIDsByNames(ctx context.Context, olympicsID int64, names []string) (map[string]int64, error) {
	f.record("FindIDsByNames")
	if f.FindIDsByNamesFunc != nil {
		return f.FindIDsByNamesFunc(ctx, olympicsID, names)
	}
	return map[string]int64{}, nil
}

func (f *FakePlayerRepository) GetPlayer(ctx context.Context, playerID int64) (*playerdb.Player, error) {
	f.record("GetPlayer")
	if f.GetPlayerFunc != nil {
		return f.GetPlayerFunc(ctx, playerID)
	}
	return nil, playerdb.ErrPlayerNotFound
}

func (f *FakePlayerRepository) ListPlayers(ctx context.Context, olympicsID int64) ([]playerdb.Player, error) {
	f.record("ListPlayers")
	if f.ListPlayersFunc != nil {
		return f.ListPlayersFunc(ctx, olympicsID)
	}
	return nil, nil
}
