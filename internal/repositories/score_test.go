package repositories_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/minigame-scores/internal/models"
	"github.com/sbilibin2017/minigame-scores/internal/repositories"
)

func TestScoreWriteRepository_Save(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := repositories.NewScoreWriteRepository(sqlxDB, nil)

	submittedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO minigame_scores").
		WithArgs(int64(1), submittedAt, int64(500)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(10)))

	id, err := repo.Save(context.Background(), 1, submittedAt, 500)
	require.NoError(t, err)
	assert.Equal(t, int64(10), id)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScoreWriteRepository_Save_DBError(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := repositories.NewScoreWriteRepository(sqlxDB, nil)

	submittedAt := time.Now().UTC()

	mock.ExpectQuery("INSERT INTO minigame_scores").
		WithArgs(int64(1), submittedAt, int64(500)).
		WillReturnError(errors.New("connection refused"))

	id, err := repo.Save(context.Background(), 1, submittedAt, 500)
	assert.Error(t, err)
	assert.Equal(t, int64(0), id)
}

func TestScoreReadRepository_GetHighScore(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := repositories.NewScoreReadRepository(sqlxDB, nil)

	mock.ExpectQuery(`SELECT MAX\(score\)`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(int64(500)))

	highScore, err := repo.GetHighScore(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, highScore)
	assert.Equal(t, int64(500), *highScore)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScoreReadRepository_GetHighScore_NoSubmissions(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := repositories.NewScoreReadRepository(sqlxDB, nil)

	// MAX over an empty set is SQL NULL
	mock.ExpectQuery(`SELECT MAX\(score\)`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(nil))

	highScore, err := repo.GetHighScore(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, highScore)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScoreReadRepository_GetRank(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := repositories.NewScoreReadRepository(sqlxDB, nil)

	mock.ExpectQuery(`SELECT MAX\(score\)`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(int64(50)))

	// Two players have a strictly greater best score
	mock.ExpectQuery(`SELECT COUNT\(\*\) \+ 1`).
		WithArgs(int64(50)).
		WillReturnRows(sqlmock.NewRows([]string{"rank"}).AddRow(3))

	rank, err := repo.GetRank(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 3, rank)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScoreReadRepository_GetRank_NoSubmissions(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := repositories.NewScoreReadRepository(sqlxDB, nil)

	mock.ExpectQuery(`SELECT MAX\(score\)`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(nil))

	rank, err := repo.GetRank(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.UnrankedRank, rank)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScoreReadRepository_GetRank_DBError(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := repositories.NewScoreReadRepository(sqlxDB, nil)

	mock.ExpectQuery(`SELECT MAX\(score\)`).
		WithArgs(int64(1)).
		WillReturnError(errors.New("connection refused"))

	rank, err := repo.GetRank(context.Background(), 1)
	assert.Error(t, err)
	assert.Equal(t, 0, rank)
}

func TestScoreReadRepository_GetTop(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := repositories.NewScoreReadRepository(sqlxDB, nil)

	rows := sqlmock.NewRows([]string{"username", "high_score"}).
		AddRow("bob", int64(100)).
		AddRow("alice", int64(50))

	mock.ExpectQuery("SELECT u.nickname AS username").
		WithArgs(2).
		WillReturnRows(rows)

	entries, err := repo.GetTop(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []models.LeaderboardEntry{
		{Username: "bob", HighScore: 100},
		{Username: "alice", HighScore: 50},
	}, entries)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScoreReadRepository_GetTop_Empty(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := repositories.NewScoreReadRepository(sqlxDB, nil)

	mock.ExpectQuery("SELECT u.nickname AS username").
		WithArgs(100).
		WillReturnRows(sqlmock.NewRows([]string{"username", "high_score"}))

	entries, err := repo.GetTop(context.Background(), 100)
	require.NoError(t, err)
	assert.Empty(t, entries)

	assert.NoError(t, mock.ExpectationsWereMet())
}
