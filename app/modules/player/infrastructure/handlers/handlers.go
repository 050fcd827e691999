package playerhandlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	playerservice "github.com/office-olympics/scorekeeper/app/modules/player/application"
	playerdb "github.com/office-olympics/scorekeeper/app/modules/player/infrastructure/repositories"
)

// PlayerHandlers exposes the player roster over HTTP.
type PlayerHandlers struct {
	service playerservice.Service
	logger  *slog.Logger
}

// NewPlayerHandlers creates a new PlayerHandlers instance.
func NewPlayerHandlers(service playerservice.Service, logger *slog.Logger) *PlayerHandlers {
	return &PlayerHandlers{
		service: service,
		logger:  logger,
	}
}

// Register mounts the player routes on the given router.
func (h *PlayerHandlers) Register(r chi.Router) {
	r.Get("/api/olympics/{olympicsID}/players", h.ListPlayers)
	r.Get("/api/players/{playerID}", h.GetPlayer)
}

// ListPlayers handles GET /api/olympics/{olympicsID}/players.
func (h *PlayerHandlers) ListPlayers(w http.ResponseWriter, r *http.Request) {
	olympicsID, err := strconv.ParseInt(chi.URLParam(r, "olympicsID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid olympics id", http.StatusBadRequest)
		return
	}

	players, err := h.service.ListPlayers(r.Context(), olympicsID)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to list players",
			slog.Int64("olympics_id", olympicsID),
			slog.Any("error", err),
		)
		http.Error(w, "failed to list players", http.StatusInternalServerError)
		return
	}
	if players == nil {
		players = []playerdb.Player{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(players); err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to encode response", slog.Any("error", err))
	}
}

// GetPlayer handles GET /api/players/{playerID}.
func (h *PlayerHandlers) GetPlayer(w http.ResponseWriter, r *http.Request) {
	playerID, err := strconv.ParseInt(chi.URLParam(r, "playerID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid player id", http.StatusBadRequest)
		return
	}

	player, err := h.service.GetPlayer(r.Context(), playerID)
	if err != nil {
		if errors.Is(err, playerdb.ErrPlayerNotFound) {
			http.Error(w, "player not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(r.Context(), "Failed to fetch player",
			slog.Int64("player_id", playerID),
			slog.Any("error", err),
		)
		http.Error(w, "failed to fetch player", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(player); err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to encode response", slog.Any("error", err))
	}
}
