package repositories

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/minigame-scores/internal/logger"
	"github.com/sbilibin2017/minigame-scores/internal/models"
)

// ScoreWriteRepository appends score submissions
type ScoreWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewScoreWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ScoreWriteRepository {
	return &ScoreWriteRepository{db: db, txGetter: txGetter}
}

// Save appends a new score submission and returns its id.
// Duplicate submissions from the same user are always accepted.
func (r *ScoreWriteRepository) Save(ctx context.Context, userID int64, submittedAt time.Time, score int64) (int64, error) {
	const query = `
		INSERT INTO minigame_scores (user_id, submitted_at, score)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var id int64
	err := sqlx.GetContext(ctx, executor, &id, query, userID, submittedAt, score)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, submittedAt, score},
		"result", id,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return id, nil
}

// ScoreReadRepository computes per-user and global score aggregates
type ScoreReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewScoreReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ScoreReadRepository {
	return &ScoreReadRepository{db: db, txGetter: txGetter}
}

func (r *ScoreReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// GetHighScore returns the highest score ever submitted by the user,
// or nil if the user has no submissions.
func (r *ScoreReadRepository) GetHighScore(ctx context.Context, uid int64) (*int64, error) {
	const query = `
		SELECT MAX(score)
		FROM minigame_scores
		WHERE user_id = $1
	`

	var highScore sql.NullInt64
	err := sqlx.GetContext(ctx, r.executor(ctx), &highScore, query, uid)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{uid},
		"result", highScore,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	if !highScore.Valid {
		return nil, nil
	}
	return &highScore.Int64, nil
}

// GetRank returns 1 + the number of distinct players whose best score is
// strictly greater than the user's best score. Tied players share a rank.
// A player with no submissions gets the UnrankedRank sentinel.
func (r *ScoreReadRepository) GetRank(ctx context.Context, uid int64) (int, error) {
	highScore, err := r.GetHighScore(ctx, uid)
	if err != nil {
		return 0, err
	}
	if highScore == nil {
		return models.UnrankedRank, nil
	}

	const query = `
		SELECT COUNT(*) + 1
		FROM (
			SELECT MAX(score) AS high_score
			FROM minigame_scores
			GROUP BY user_id
		) AS ranked
		WHERE ranked.high_score > $1
	`

	var rank int
	err = sqlx.GetContext(ctx, r.executor(ctx), &rank, query, *highScore)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{*highScore},
		"result", rank,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return rank, nil
}

// GetTop returns at most limit leaderboard entries: one per distinct player,
// ordered by best score descending, with uid as the deterministic tie-break.
func (r *ScoreReadRepository) GetTop(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	const query = `
		SELECT u.nickname AS username, MAX(s.score) AS high_score
		FROM minigame_scores AS s
		JOIN minigame_users AS u ON s.user_id = u.uid
		GROUP BY u.uid, u.nickname
		ORDER BY high_score DESC, u.uid ASC
		LIMIT $1
	`

	entries := make([]models.LeaderboardEntry, 0, limit)
	err := sqlx.SelectContext(ctx, r.executor(ctx), &entries, query, limit)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{limit},
		"result", len(entries),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return entries, nil
}
