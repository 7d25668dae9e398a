package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/minigame-scores/internal/logger"
	"github.com/sbilibin2017/minigame-scores/internal/middlewares"
	"github.com/sbilibin2017/minigame-scores/internal/models"
)

// PlayerStatsProvider defines the interface that the player-stats service must implement.
type PlayerStatsProvider interface {
	PlayerStats(ctx context.Context, uid int64) (models.PlayerStats, error)
}

// PlayerStatsResponse represents the authenticated player's own stats
// swagger:model PlayerStatsResponse
type PlayerStatsResponse struct {
	// State
	// default: success
	State string `json:"state"`

	// Player uid
	// default: 1
	UID int64 `json:"UID"`

	// Best score, 0 if the player has no submissions
	// default: 50
	HighScore int64 `json:"highScore"`

	// Rank, -1 if the player has no submissions
	// default: 2
	Rank int `json:"rank"`
}

// PlayerStatsErrorResponse represents an error response for the player-stats query
// swagger:model PlayerStatsErrorResponse
type PlayerStatsErrorResponse struct {
	// State
	// default: failed
	State string `json:"state"`

	// Error message
	// default: An error occurred while processing the request.
	Message string `json:"message"`
}

// NewPlayerStatsHandler returns an HTTP handler for the authenticated
// player-stats query. The uid comes from the session token validated by
// the auth middleware.
// @Summary Query own stats
// @Description Returns the authenticated player's best score and rank.
// @Tags scores
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.PlayerStatsResponse "Best score and rank returned"
// @Failure 401 "Missing or invalid session token"
// @Failure 500 {object} handlers.PlayerStatsErrorResponse "Internal server error"
// @Router /scores/me [get]
func NewPlayerStatsHandler(svc PlayerStatsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := middlewares.GetUIDFromContext(r.Context())
		if uid == 0 {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		stats, err := svc.PlayerStats(r.Context(), uid)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(PlayerStatsErrorResponse{
				State:   "failed",
				Message: "An error occurred while processing the request.",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(PlayerStatsResponse{
			State:     "success",
			UID:       stats.UID,
			HighScore: stats.HighScore,
			Rank:      stats.Rank,
		})
	}
}
