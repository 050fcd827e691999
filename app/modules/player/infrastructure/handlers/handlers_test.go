package playerhandlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	playerdb "github.com/office-olympics/scorekeeper/app/modules/player/infrastructure/repositories"
)

// FakeService provides a programmable stub for the playerservice.Service interface.
type FakeService struct {
	ResolveNamesFunc func(ctx context.Context, olympicsID int64, names []string) ([]int64, error)
	GetPlayerFunc    func(ctx context.Context, playerID int64) (*playerdb.Player, error)
	ListPlayersFunc  func(ctx context.Context, olympicsID int64) ([]playerdb.Player, error)
}

func (f *FakeService) ResolveNames(ctx context.Context, olympicsID int64, names []string) ([]int64, error) {
	if f.ResolveNamesFunc != nil {
		return f.ResolveNamesFunc(ctx, olympicsID, names)
	}
	return nil, nil
}

func (f *FakeService) GetPlayer(ctx context.Context, playerID int64) (*playerdb.Player, error) {
	if f.GetPlayerFunc != nil {
		return f.GetPlayerFunc(ctx, playerID)
	}
	return nil, playerdb.ErrPlayerNotFound
}

func (f *FakeService) ListPlayers(ctx context.Context, olympicsID int64) ([]playerdb.Player, error) {
	if f.ListPlayersFunc != nil {
		return f.ListPlayersFunc(ctx, olympicsID)
	}
	return nil, nil
}

func newTestRouter(svc *FakeService) chi.Router {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewPlayerHandlers(svc, logger)
	r := chi.NewRouter()
	h.Register(r)
	return r
}

func TestPlayerHandlers_ListPlayers(t *testing.T) {
	t.Run("returns the roster", func(t *testing.T) {
		svc := &FakeService{
			ListPlayersFunc: func(ctx context.Context, olympicsID int64) ([]playerdb.Player, error) {
				return []playerdb.Player{
					{ID: 1, OlympicsID: olympicsID, Name: "Alice"},
					{ID: 2, OlympicsID: olympicsID, Name: "Bob"},
				}, nil
			},
		}
		router := newTestRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/olympics/1/players", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rr.Code)
		}
		var players []playerdb.Player
		if err := json.NewDecoder(rr.Body).Decode(&players); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if len(players) != 2 || players[0].Name != "Alice" {
			t.Errorf("unexpected payload: %+v", players)
		}
	})

	t.Run("empty roster is an empty array", func(t *testing.T) {
		router := newTestRouter(&FakeService{})

		req := httptest.NewRequest(http.MethodGet, "/api/olympics/1/players", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rr.Code)
		}
		if body := rr.Body.String(); body != "[]\n" {
			t.Errorf("expected empty JSON array, got %q", body)
		}
	})

	t.Run("bad olympics id is a 400", func(t *testing.T) {
		router := newTestRouter(&FakeService{})

		req := httptest.NewRequest(http.MethodGet, "/api/olympics/abc/players", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", rr.Code)
		}
	})
}

func TestPlayerHandlers_GetPlayer(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := &FakeService{
			GetPlayerFunc: func(ctx context.Context, playerID int64) (*playerdb.Player, error) {
				return &playerdb.Player{ID: playerID, OlympicsID: 1, Name: "Alice"}, nil
			},
		}
		router := newTestRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/players/1", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rr.Code)
		}
	})

	t.Run("missing player is a 404", func(t *testing.T) {
		router := newTestRouter(&FakeService{})

		req := httptest.NewRequest(http.MethodGet, "/api/players/99", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		if rr.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d", rr.Code)
		}
	})
}
