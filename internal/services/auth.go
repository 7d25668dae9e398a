package services

import (
	"context"
	"errors"
	"time"

	"github.com/sbilibin2017/minigame-scores/internal/logger"
	"github.com/sbilibin2017/minigame-scores/internal/models"
	"github.com/sbilibin2017/minigame-scores/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrUsernameExists     = errors.New("username already exists")
	ErrUserDoesNotExist   = errors.New("username does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// AccountReader defines read-only operations for accounts.
type AccountReader interface {
	GetByUsername(ctx context.Context, username string) (*models.AccountDB, error)
}

// AccountWriter defines write operations for accounts.
type AccountWriter interface {
	Save(ctx context.Context, username, nickname, passwordHash string, registeredAt time.Time) (int64, error)
}

// LoginRecorder appends login audit entries.
type LoginRecorder interface {
	Save(ctx context.Context, uid int64, loggedInAt time.Time) error
}

// TokenGenerator defines an interface for generating session tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, uid int64) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader AccountReader
	writer AccountWriter
	logins LoginRecorder
	jwt    TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader AccountReader, writer AccountWriter, logins LoginRecorder, jwt TokenGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		logins: logins,
		jwt:    jwt,
	}
}

// Register creates a new account and returns the server-assigned uid.
// The existence check is a fast path only; a racing duplicate insert is
// rejected by the store's unique constraint and reported the same way.
// Passwords are stored as bcrypt hashes, a deliberate upgrade over the
// legacy digest the game shipped with.
func (svc *AuthService) Register(ctx context.Context, username, nickname, password string) (int64, error) {
	account, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check account exists", "err", err)
		return 0, err
	}
	if account != nil {
		logger.Log.Errorw("account already exists", "username", username)
		return 0, ErrUsernameExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return 0, err
	}

	uid, err := svc.writer.Save(ctx, username, nickname, string(hashedPassword), time.Now().UTC())
	if err != nil {
		if errors.Is(err, repositories.ErrUsernameTaken) {
			logger.Log.Errorw("account already exists", "username", username)
			return 0, ErrUsernameExists
		}
		logger.Log.Errorw("failed to save account", "err", err)
		return 0, err
	}

	return uid, nil
}

// Login authenticates a player, appends a login record and returns
// the uid together with a session token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (int64, string, error) {
	account, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get account", "err", err)
		return 0, "", err
	}
	if account == nil {
		logger.Log.Errorw("account does not exist", "username", username)
		return 0, "", ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return 0, "", ErrInvalidCredentials
	}

	if err := svc.logins.Save(ctx, account.UID, time.Now().UTC()); err != nil {
		logger.Log.Errorw("failed to record login", "uid", account.UID, "err", err)
		return 0, "", err
	}

	token, err := svc.jwt.Generate(ctx, account.UID)
	if err != nil {
		logger.Log.Errorw("failed to generate session token", "err", err)
		return 0, "", err
	}

	return account.UID, token, nil
}
