package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/sbilibin2017/minigame-scores/internal/logger"
)

// ScoreSubmitter defines the interface that the submit service must implement.
type ScoreSubmitter interface {
	Submit(ctx context.Context, userID int64, submittedAt time.Time, score int64) (int, error)
}

// SubmitRequest represents the JSON body for a score submission
// swagger:model SubmitRequest
type SubmitRequest struct {
	// Player uid
	// required: true
	// default: 1
	UserID int64 `json:"userId"`

	// Submission timestamp, RFC 3339
	// required: true
	SubmissionDate time.Time `json:"submissionDate"`

	// Achieved score
	// required: true
	// default: 50
	Score int64 `json:"score"`
}

// SubmitResponse represents a successful submission response
// swagger:model SubmitResponse
type SubmitResponse struct {
	// State
	// default: success
	State string `json:"state"`

	// Rank among all players after this submission
	// default: 1
	Rank int `json:"rank"`
}

// SubmitErrorResponse represents an error response for score submission
// swagger:model SubmitErrorResponse
type SubmitErrorResponse struct {
	// State
	// default: failed
	State string `json:"state"`

	// Error message
	// default: Invalid data.
	Message string `json:"message"`
}

// NewSubmitHandler returns an HTTP handler for score submission.
// @Summary Submit a score
// @Description Persists a score submission and returns the player's rank including it.
// @Tags scores
// @Accept json
// @Produce json
// @Param submitRequest body handlers.SubmitRequest true "Score submission request"
// @Success 200 {object} handlers.SubmitResponse "Score accepted, rank returned"
// @Failure 400 {object} handlers.SubmitErrorResponse "Malformed input"
// @Failure 500 {object} handlers.SubmitErrorResponse "Internal server error"
// @Router /scores/submit [post]
func NewSubmitHandler(svc ScoreSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SubmitRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID <= 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SubmitErrorResponse{
				State:   "failed",
				Message: "Invalid data.",
			})
			return
		}

		rank, err := svc.Submit(r.Context(), req.UserID, req.SubmissionDate, req.Score)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(SubmitErrorResponse{
				State:   "failed",
				Message: "An error occurred while processing the request.",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SubmitResponse{
			State: "success",
			Rank:  rank,
		})
	}
}
