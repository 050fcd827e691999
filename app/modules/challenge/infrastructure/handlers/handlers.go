package challengehandlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	challengeservice "github.com/office-olympics/scorekeeper/app/modules/challenge/application"
	challengedb "github.com/office-olympics/scorekeeper/app/modules/challenge/infrastructure/repositories"
)

// ChallengeHandlers exposes the challenge catalog over HTTP.
type ChallengeHandlers struct {
	service challengeservice.Service
	logger  *slog.Logger
}

// NewChallengeHandlers creates a new ChallengeHandlers instance.
func NewChallengeHandlers(service challengeservice.Service, logger *slog.Logger) *ChallengeHandlers {
	return &ChallengeHandlers{
		service: service,
		logger:  logger,
	}
}

// Register mounts the challenge routes on the given router.
func (h *ChallengeHandlers) Register(r chi.Router) {
	r.Get("/api/challenges", h.ListChallenges)
	r.Get("/api/challenges/{challengeID}", h.GetChallenge)
}

// ListChallenges handles GET /api/challenges.
func (h *ChallengeHandlers) ListChallenges(w http.ResponseWriter, r *http.Request) {
	challenges, err := h.service.ListChallenges(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to list challenges", slog.Any("error", err))
		http.Error(w, "failed to list challenges", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(challenges); err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to encode response", slog.Any("error", err))
	}
}

// GetChallenge handles GET /api/challenges/{challengeID}.
func (h *ChallengeHandlers) GetChallenge(w http.ResponseWriter, r *http.Request) {
	challengeID, err := strconv.ParseInt(chi.URLParam(r, "challengeID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid challenge id", http.StatusBadRequest)
		return
	}

	challenge, err := h.service.GetChallenge(r.Context(), challengeID)
	if err != nil {
		if errors.Is(err, challengedb.ErrChallengeNotFound) {
			http.Error(w, "challenge not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(r.Context(), "Failed to fetch challenge",
			slog.Int64("challenge_id", challengeID),
			slog.Any("error", err),
		)
		http.Error(w, "failed to fetch challenge", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(challenge); err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to encode response", slog.Any("error", err))
	}
}
