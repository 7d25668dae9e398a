package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/minigame-scores/internal/logger"
	"github.com/sbilibin2017/minigame-scores/internal/models"
)

// ErrUsernameTaken is returned when an insert hits the unique index on username.
// The index is the sole arbiter for concurrent duplicate registration.
var ErrUsernameTaken = errors.New("username already exists")

// uniqueViolation is the Postgres error code for unique_violation
const uniqueViolation = "23505"

// AccountReadRepository handles account read operations
type AccountReadRepository struct {
	db *sqlx.DB
}

func NewAccountReadRepository(db *sqlx.DB) *AccountReadRepository {
	return &AccountReadRepository{db: db}
}

// GetByUsername returns the account for a username, or nil if it does not exist.
func (r *AccountReadRepository) GetByUsername(ctx context.Context, username string) (*models.AccountDB, error) {
	const query = `
		SELECT uid, username, nickname, password_hash, registered_at
		FROM minigame_users
		WHERE username = $1
		LIMIT 1
	`

	var account models.AccountDB
	err := r.db.GetContext(ctx, &account, query, username)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

// AccountWriteRepository handles account write operations
type AccountWriteRepository struct {
	db *sqlx.DB
}

func NewAccountWriteRepository(db *sqlx.DB) *AccountWriteRepository {
	return &AccountWriteRepository{db: db}
}

// Save inserts a new account and returns the server-assigned uid.
// A duplicate username is rejected by the unique index and reported as ErrUsernameTaken.
func (r *AccountWriteRepository) Save(ctx context.Context, username, nickname, passwordHash string, registeredAt time.Time) (int64, error) {
	const query = `
		INSERT INTO minigame_users (username, nickname, password_hash, registered_at)
		VALUES ($1, $2, $3, $4)
		RETURNING uid
	`
	args := []any{username, nickname, passwordHash, registeredAt}

	var uid int64
	err := r.db.GetContext(ctx, &uid, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, nickname, registeredAt},
		"result", uid,
		"error", err,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, ErrUsernameTaken
		}
		return 0, err
	}

	return uid, nil
}

// LoginRecordWriteRepository appends login audit entries
type LoginRecordWriteRepository struct {
	db *sqlx.DB
}

func NewLoginRecordWriteRepository(db *sqlx.DB) *LoginRecordWriteRepository {
	return &LoginRecordWriteRepository{db: db}
}

// Save appends a login record for the given uid.
func (r *LoginRecordWriteRepository) Save(ctx context.Context, uid int64, loggedInAt time.Time) error {
	const query = `
		INSERT INTO minigame_logins (uid, logged_in_at)
		VALUES ($1, $2)
	`

	res, err := r.db.ExecContext(ctx, query, uid, loggedInAt)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{uid, loggedInAt},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
