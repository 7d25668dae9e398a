package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/minigame-scores/internal/logger"
	"github.com/sbilibin2017/minigame-scores/internal/models"
)

// LeaderboardProvider defines the interface that the leaderboard service must implement.
type LeaderboardProvider interface {
	Leaderboard(ctx context.Context, uid int64) (models.LeaderboardResponse, error)
}

// LeaderboardRequest represents the JSON body for a leaderboard query
// swagger:model LeaderboardRequest
type LeaderboardRequest struct {
	// Requesting player uid, must be nonzero
	// required: true
	// default: 1
	UID int64 `json:"UID"`
}

// LeaderboardErrorResponse represents an error response for the leaderboard query
// swagger:model LeaderboardErrorResponse
type LeaderboardErrorResponse struct {
	// State
	// default: failed
	State string `json:"state"`

	// Error message
	// default: An error occurred while processing the request.
	Message string `json:"message"`
}

// NewLeaderboardHandler returns an HTTP handler for the leaderboard query.
// @Summary Query the leaderboard
// @Description Returns the top-100 players with the requester's own rank and high score.
// @Tags scores
// @Accept json
// @Produce json
// @Param leaderboardRequest body handlers.LeaderboardRequest true "Leaderboard request"
// @Success 200 {object} models.LeaderboardResponse "Top players and requester stats"
// @Failure 400 {object} handlers.LeaderboardErrorResponse "Missing or zero UID"
// @Failure 500 {object} handlers.LeaderboardErrorResponse "Internal server error"
// @Router /scores/leaderboard [post]
func NewLeaderboardHandler(svc LeaderboardProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LeaderboardRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UID == 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LeaderboardErrorResponse{
				State:   "failed",
				Message: "Invalid data.",
			})
			return
		}

		resp, err := svc.Leaderboard(r.Context(), req.UID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(LeaderboardErrorResponse{
				State:   "failed",
				Message: "An error occurred while processing the request.",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
