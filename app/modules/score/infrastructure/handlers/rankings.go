package scorehandlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	challengedb "github.com/office-olympics/scorekeeper/app/modules/challenge/infrastructure/repositories"
)

// ChallengeRanking handles GET /api/challenges/{challengeID}/rankings.
func (h *ScoreHandlers) ChallengeRanking(w http.ResponseWriter, r *http.Request) {
	challengeID, err := strconv.ParseInt(chi.URLParam(r, "challengeID"), 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid challenge id")
		return
	}

	olympicsID := h.defaultOlympicsID
	if raw := r.URL.Query().Get("olympicsId"); raw != "" {
		olympicsID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "invalid olympics id")
			return
		}
	}

	ranks, err := h.service.ChallengeRanking(r.Context(), challengeID, olympicsID)
	if err != nil {
		if errors.Is(err, challengedb.ErrChallengeNotFound) {
			h.writeError(w, http.StatusNotFound, "challenge not found")
			return
		}
		h.logger.ErrorContext(r.Context(), "Failed to fetch challenge ranking",
			slog.Int64("challenge_id", challengeID),
			slog.Any("error", err),
		)
		h.writeError(w, http.StatusInternalServerError, "failed to fetch ranking")
		return
	}

	h.writeJSON(w, http.StatusOK, ranks)
}

// OverallRanking handles GET /api/olympics/{olympicsID}/rankings.
func (h *ScoreHandlers) OverallRanking(w http.ResponseWriter, r *http.Request) {
	olympicsID, err := strconv.ParseInt(chi.URLParam(r, "olympicsID"), 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid olympics id")
		return
	}

	ranks, err := h.service.OverallRanking(r.Context(), olympicsID)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to fetch overall ranking",
			slog.Int64("olympics_id", olympicsID),
			slog.Any("error", err),
		)
		h.writeError(w, http.StatusInternalServerError, "failed to fetch ranking")
		return
	}

	h.writeJSON(w, http.StatusOK, ranks)
}
