package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/minigame-scores/internal/logger"
	"github.com/sbilibin2017/minigame-scores/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (int64, string, error)
}

// LoginRequest represents the JSON body for player login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// State
	// default: success
	State string `json:"state"`

	// Player uid
	// default: 1
	UID int64 `json:"uid"`

	// Session token
	// default: JWT_TOKEN
	Token string `json:"token"`
}

// LoginErrorResponse represents an error response for login
// swagger:model LoginErrorResponse
type LoginErrorResponse struct {
	// State
	// default: failed
	State string `json:"state"`

	// Error message
	// default: INCORRECT_PASSWORD
	Message string `json:"message"`
}

// NewLoginHandler returns an HTTP handler for player login.
// @Summary Player login
// @Description Authenticates a player, records the login and returns the uid with a session token.
// @Tags scores
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} handlers.LoginResponse "uid and session token returned"
// @Failure 400 {object} handlers.LoginErrorResponse "Missing username or password"
// @Failure 401 {object} handlers.LoginErrorResponse "Unknown user or wrong password"
// @Failure 500 {object} handlers.LoginErrorResponse "Internal server error"
// @Router /scores/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" || req.Password == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LoginErrorResponse{
				State:   "failed",
				Message: "Invalid data.",
			})
			return
		}

		uid, token, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserDoesNotExist):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					State:   "failed",
					Message: "USER_NOT_EXIST",
				})
			case errors.Is(err, services.ErrInvalidCredentials):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					State:   "failed",
					Message: "INCORRECT_PASSWORD",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					State:   "failed",
					Message: "An error occurred while processing the request.",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LoginResponse{
			State: "success",
			UID:   uid,
			Token: token,
		})
	}
}
