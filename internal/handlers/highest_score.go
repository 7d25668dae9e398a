package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/minigame-scores/internal/logger"
)

// HighestScoreProvider defines the interface that the highest-score service must implement.
type HighestScoreProvider interface {
	HighestScore(ctx context.Context, uid int64) (int64, error)
}

// HighestScoreResponse represents a successful highest-score response
// swagger:model HighestScoreResponse
type HighestScoreResponse struct {
	// State
	// default: success
	State string `json:"state"`

	// Player uid
	// default: 1
	UID int64 `json:"UID"`

	// Best score, 0 if the player has no submissions
	// default: 50
	HighScore int64 `json:"highScore"`
}

// HighestScoreErrorResponse represents an error response for the highest-score query
// swagger:model HighestScoreErrorResponse
type HighestScoreErrorResponse struct {
	// State
	// default: failed
	State string `json:"state"`

	// Error message
	// default: Invalid UID.
	Message string `json:"message"`
}

// NewHighestScoreHandler returns an HTTP handler for the highest-score query.
// @Summary Query a player's highest score
// @Description Returns the player's best submitted score, or 0 if they have none.
// @Tags scores
// @Produce json
// @Param uid path int true "Player uid, must be positive"
// @Success 200 {object} handlers.HighestScoreResponse "Best score returned"
// @Failure 400 {object} handlers.HighestScoreErrorResponse "Non-positive uid"
// @Failure 500 {object} handlers.HighestScoreErrorResponse "Internal server error"
// @Router /scores/highestScore/{uid} [get]
func NewHighestScoreHandler(svc HighestScoreProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, err := strconv.ParseInt(chi.URLParam(r, "uid"), 10, 64)
		if err != nil || uid <= 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(HighestScoreErrorResponse{
				State:   "failed",
				Message: "Invalid UID.",
			})
			return
		}

		highScore, err := svc.HighestScore(r.Context(), uid)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(HighestScoreErrorResponse{
				State:   "failed",
				Message: "An error occurred while processing the request.",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(HighestScoreResponse{
			State:     "success",
			UID:       uid,
			HighScore: highScore,
		})
	}
}
