package scorehandlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	challengedb "github.com/office-olympics/scorekeeper/app/modules/challenge/infrastructure/repositories"
	playerservice "github.com/office-olympics/scorekeeper/app/modules/player/application"
	scoreservice "github.com/office-olympics/scorekeeper/app/modules/score/application"
)

// submitScoresRequest is the request body for a score submission.
type submitScoresRequest struct {
	OlympicsID  int64    `json:"olympicsId"`
	PlayerNames []string `json:"playerNames"`
	Scores      []int    `json:"scores"`
}

// SubmitScores handles POST /api/challenges/{challengeID}/scores.
func (h *ScoreHandlers) SubmitScores(w http.ResponseWriter, r *http.Request) {
	challengeID, err := strconv.ParseInt(chi.URLParam(r, "challengeID"), 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid challenge id")
		return
	}

	var req submitScoresRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.OlympicsID == 0 {
		req.OlympicsID = h.defaultOlympicsID
	}

	result, err := h.service.SubmitScores(r.Context(), scoreservice.ScoreSubmission{
		OlympicsID:  req.OlympicsID,
		ChallengeID: challengeID,
		PlayerNames: req.PlayerNames,
		Scores:      req.Scores,
	})
	if err != nil {
		var unresolved *playerservice.UnresolvedNamesError
		switch {
		case errors.Is(err, scoreservice.ErrBatchShape):
			h.writeError(w, http.StatusBadRequest, err.Error())
		case errors.As(err, &unresolved), errors.Is(err, challengedb.ErrChallengeNotFound):
			h.writeError(w, http.StatusNotFound, err.Error())
		default:
			h.logger.ErrorContext(r.Context(), "Score submission failed",
				slog.Int64("challenge_id", challengeID),
				slog.Any("error", err),
			)
			h.writeError(w, http.StatusInternalServerError, "failed to submit scores")
		}
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}
