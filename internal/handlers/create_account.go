package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/minigame-scores/internal/logger"
	"github.com/sbilibin2017/minigame-scores/internal/services"
)

// AccountCreator defines the interface that the registration service must implement.
type AccountCreator interface {
	Register(ctx context.Context, username, nickname, password string) (int64, error)
}

// CreateAccountRequest represents the JSON body for account creation
// swagger:model CreateAccountRequest
type CreateAccountRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Display nickname
	// default: Johnny
	Nickname string `json:"nickname"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// CreateAccountResponse represents a successful account creation response
// swagger:model CreateAccountResponse
type CreateAccountResponse struct {
	// State
	// default: success
	State string `json:"state"`

	// Server-assigned uid
	// default: 1
	UID int64 `json:"UID"`
}

// CreateAccountErrorResponse represents an error response for account creation
// swagger:model CreateAccountErrorResponse
type CreateAccountErrorResponse struct {
	// State
	// default: failed
	State string `json:"state"`

	// Error message
	// default: Username already exists.
	Message string `json:"message"`
}

// NewCreateAccountHandler returns an HTTP handler for account creation.
// @Summary Create a player account
// @Description Creates a new account with a unique username. The password is hashed before storing.
// @Tags scores
// @Accept json
// @Produce json
// @Param createAccountRequest body handlers.CreateAccountRequest true "Account creation request"
// @Success 200 {object} handlers.CreateAccountResponse "Account created, uid returned"
// @Failure 400 {object} handlers.CreateAccountErrorResponse "Missing username or password"
// @Failure 409 {object} handlers.CreateAccountErrorResponse "Username already exists"
// @Failure 500 {object} handlers.CreateAccountErrorResponse "Internal server error"
// @Router /scores/createAccount [post]
func NewCreateAccountHandler(svc AccountCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateAccountRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" || req.Password == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateAccountErrorResponse{
				State:   "failed",
				Message: "Invalid data.",
			})
			return
		}

		uid, err := svc.Register(r.Context(), req.Username, req.Nickname, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUsernameExists):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(CreateAccountErrorResponse{
					State:   "failed",
					Message: "Username already exists.",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CreateAccountErrorResponse{
					State:   "failed",
					Message: "Account creation failed.",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CreateAccountResponse{
			State: "success",
			UID:   uid,
		})
	}
}
