package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/minigame-scores/internal/models"
	"github.com/sbilibin2017/minigame-scores/internal/services"
)

func int64Ptr(v int64) *int64 { return &v }

func TestScoreService_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	submittedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		mockSetup    func(writer *services.MockScoreWriter, reader *services.MockScoreReader)
		expectedRank int
		expectedErr  error
	}{
		{
			name: "Success",
			mockSetup: func(writer *services.MockScoreWriter, reader *services.MockScoreReader) {
				writer.EXPECT().Save(gomock.Any(), int64(1), submittedAt, int64(500)).Return(int64(10), nil)
				reader.EXPECT().GetRank(gomock.Any(), int64(1)).Return(2, nil)
			},
			expectedRank: 2,
		},
		{
			name: "SaveError",
			mockSetup: func(writer *services.MockScoreWriter, reader *services.MockScoreReader) {
				writer.EXPECT().Save(gomock.Any(), int64(1), submittedAt, int64(500)).
					Return(int64(0), errors.New("db error"))
			},
			expectedErr: errors.New("db error"),
		},
		{
			name: "RankError",
			mockSetup: func(writer *services.MockScoreWriter, reader *services.MockScoreReader) {
				writer.EXPECT().Save(gomock.Any(), int64(1), submittedAt, int64(500)).Return(int64(10), nil)
				reader.EXPECT().GetRank(gomock.Any(), int64(1)).Return(0, errors.New("db error"))
			},
			expectedErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer := services.NewMockScoreWriter(ctrl)
			reader := services.NewMockScoreReader(ctrl)
			tt.mockSetup(writer, reader)

			// cache, exporter and kafka are optional; nil disables them
			svc := services.NewScoreService(writer, reader, nil, nil, nil)

			rank, err := svc.Submit(context.Background(), 1, submittedAt, 500)

			assert.Equal(t, tt.expectedRank, rank)
			if tt.expectedErr != nil {
				assert.EqualError(t, err, tt.expectedErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestScoreService_Submit_InvalidatesCacheAndExportsSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	submittedAt := time.Now().UTC()
	top := []models.LeaderboardEntry{{Username: "Alice", HighScore: 500}}

	writer := services.NewMockScoreWriter(ctrl)
	reader := services.NewMockScoreReader(ctrl)
	cache := services.NewMockLeaderboardCache(ctrl)
	exporter := services.NewMockSnapshotExporter(ctrl)

	writer.EXPECT().Save(gomock.Any(), int64(1), submittedAt, int64(500)).Return(int64(10), nil)
	cache.EXPECT().Invalidate(gomock.Any()).Return(nil)
	reader.EXPECT().GetTop(gomock.Any(), services.TopPlayersLimit).Return(top, nil)
	exporter.EXPECT().Export(gomock.Any(), top).Return(nil)
	reader.EXPECT().GetRank(gomock.Any(), int64(1)).Return(1, nil)

	svc := services.NewScoreService(writer, reader, cache, exporter, nil)

	rank, err := svc.Submit(context.Background(), 1, submittedAt, 500)
	require.NoError(t, err)
	assert.Equal(t, 1, rank)
}

func TestScoreService_Submit_ExportFailureDoesNotFailRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	submittedAt := time.Now().UTC()

	writer := services.NewMockScoreWriter(ctrl)
	reader := services.NewMockScoreReader(ctrl)
	cache := services.NewMockLeaderboardCache(ctrl)
	exporter := services.NewMockSnapshotExporter(ctrl)

	writer.EXPECT().Save(gomock.Any(), int64(1), submittedAt, int64(500)).Return(int64(10), nil)
	cache.EXPECT().Invalidate(gomock.Any()).Return(errors.New("redis down"))
	reader.EXPECT().GetTop(gomock.Any(), services.TopPlayersLimit).Return(nil, errors.New("db error"))
	reader.EXPECT().GetRank(gomock.Any(), int64(1)).Return(1, nil)

	svc := services.NewScoreService(writer, reader, cache, exporter, nil)

	rank, err := svc.Submit(context.Background(), 1, submittedAt, 500)
	require.NoError(t, err)
	assert.Equal(t, 1, rank)
}

func TestScoreService_Submit_PublishesScoreEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	submittedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	writer := services.NewMockScoreWriter(ctrl)
	reader := services.NewMockScoreReader(ctrl)
	kafkaWriter := services.NewMockKafkaWriter(ctrl)

	writer.EXPECT().Save(gomock.Any(), int64(1), submittedAt, int64(500)).Return(int64(10), nil)
	kafkaWriter.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			assert.Equal(t, "1", string(msgs[0].Key))

			var event models.ScoreEvent
			require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
			assert.NotEmpty(t, event.EventID)
			assert.Equal(t, int64(1), event.UserID)
			assert.Equal(t, int64(500), event.Score)
			assert.Equal(t, submittedAt.Unix(), event.SubmittedAt)
			return nil
		})
	reader.EXPECT().GetRank(gomock.Any(), int64(1)).Return(1, nil)

	svc := services.NewScoreService(writer, reader, nil, nil, kafkaWriter)

	rank, err := svc.Submit(context.Background(), 1, submittedAt, 500)
	require.NoError(t, err)
	assert.Equal(t, 1, rank)
}

func TestScoreService_Leaderboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Player A submitted [10, 50, 30], player B submitted [100]:
	// the board shows their best scores in descending order.
	top := []models.LeaderboardEntry{
		{Username: "B", HighScore: 100},
		{Username: "A", HighScore: 50},
	}

	tests := []struct {
		name         string
		uid          int64
		mockSetup    func(reader *services.MockScoreReader)
		expectedResp models.LeaderboardResponse
		expectedErr  error
	}{
		{
			name: "RankedPlayer",
			uid:  1,
			mockSetup: func(reader *services.MockScoreReader) {
				reader.EXPECT().GetTop(gomock.Any(), services.TopPlayersLimit).Return(top, nil)
				reader.EXPECT().GetHighScore(gomock.Any(), int64(1)).Return(int64Ptr(50), nil)
				reader.EXPECT().GetRank(gomock.Any(), int64(1)).Return(2, nil)
			},
			expectedResp: models.LeaderboardResponse{
				TopPlayers:      top,
				PlayerRank:      2,
				PlayerHighScore: 50,
			},
		},
		{
			name: "PlayerWithoutSubmissions",
			uid:  3,
			mockSetup: func(reader *services.MockScoreReader) {
				reader.EXPECT().GetTop(gomock.Any(), services.TopPlayersLimit).Return(top, nil)
				reader.EXPECT().GetHighScore(gomock.Any(), int64(3)).Return(nil, nil)
			},
			expectedResp: models.LeaderboardResponse{
				TopPlayers:      top,
				PlayerRank:      -1,
				PlayerHighScore: 0,
			},
		},
		{
			name: "TopError",
			uid:  1,
			mockSetup: func(reader *services.MockScoreReader) {
				reader.EXPECT().GetTop(gomock.Any(), services.TopPlayersLimit).
					Return(nil, errors.New("db error"))
			},
			expectedErr: errors.New("db error"),
		},
		{
			name: "HighScoreError",
			uid:  1,
			mockSetup: func(reader *services.MockScoreReader) {
				reader.EXPECT().GetTop(gomock.Any(), services.TopPlayersLimit).Return(top, nil)
				reader.EXPECT().GetHighScore(gomock.Any(), int64(1)).
					Return(nil, errors.New("db error"))
			},
			expectedErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer := services.NewMockScoreWriter(ctrl)
			reader := services.NewMockScoreReader(ctrl)
			tt.mockSetup(reader)

			svc := services.NewScoreService(writer, reader, nil, nil, nil)

			resp, err := svc.Leaderboard(context.Background(), tt.uid)

			if tt.expectedErr != nil {
				assert.EqualError(t, err, tt.expectedErr.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedResp, resp)
			}
		})
	}
}

func TestScoreService_Leaderboard_ServesFromCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	top := []models.LeaderboardEntry{{Username: "B", HighScore: 100}}

	reader := services.NewMockScoreReader(ctrl)
	cache := services.NewMockLeaderboardCache(ctrl)

	// Cache hit: GetTop is never queried
	cache.EXPECT().Get(gomock.Any()).Return(top, nil)
	reader.EXPECT().GetHighScore(gomock.Any(), int64(1)).Return(int64Ptr(100), nil)
	reader.EXPECT().GetRank(gomock.Any(), int64(1)).Return(1, nil)

	svc := services.NewScoreService(services.NewMockScoreWriter(ctrl), reader, cache, nil, nil)

	resp, err := svc.Leaderboard(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, top, resp.TopPlayers)
	assert.Equal(t, 1, resp.PlayerRank)
	assert.Equal(t, int64(100), resp.PlayerHighScore)
}

func TestScoreService_Leaderboard_CacheMissPopulatesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	top := []models.LeaderboardEntry{{Username: "B", HighScore: 100}}

	reader := services.NewMockScoreReader(ctrl)
	cache := services.NewMockLeaderboardCache(ctrl)

	cache.EXPECT().Get(gomock.Any()).Return(nil, nil)
	reader.EXPECT().GetTop(gomock.Any(), services.TopPlayersLimit).Return(top, nil)
	cache.EXPECT().Set(gomock.Any(), top).Return(nil)
	reader.EXPECT().GetHighScore(gomock.Any(), int64(1)).Return(nil, nil)

	svc := services.NewScoreService(services.NewMockScoreWriter(ctrl), reader, cache, nil, nil)

	resp, err := svc.Leaderboard(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, top, resp.TopPlayers)
	assert.Equal(t, -1, resp.PlayerRank)
}

func TestScoreService_HighestScore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name          string
		mockSetup     func(reader *services.MockScoreReader)
		expectedScore int64
		expectedErr   error
	}{
		{
			name: "HasSubmissions",
			mockSetup: func(reader *services.MockScoreReader) {
				reader.EXPECT().GetHighScore(gomock.Any(), int64(1)).Return(int64Ptr(500), nil)
			},
			expectedScore: 500,
		},
		{
			name: "NoSubmissions",
			mockSetup: func(reader *services.MockScoreReader) {
				reader.EXPECT().GetHighScore(gomock.Any(), int64(1)).Return(nil, nil)
			},
			expectedScore: 0,
		},
		{
			name: "DBError",
			mockSetup: func(reader *services.MockScoreReader) {
				reader.EXPECT().GetHighScore(gomock.Any(), int64(1)).
					Return(nil, errors.New("db error"))
			},
			expectedErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := services.NewMockScoreReader(ctrl)
			tt.mockSetup(reader)

			svc := services.NewScoreService(services.NewMockScoreWriter(ctrl), reader, nil, nil, nil)

			score, err := svc.HighestScore(context.Background(), 1)

			assert.Equal(t, tt.expectedScore, score)
			if tt.expectedErr != nil {
				assert.EqualError(t, err, tt.expectedErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestScoreService_PlayerStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name          string
		mockSetup     func(reader *services.MockScoreReader)
		expectedStats models.PlayerStats
		expectedErr   error
	}{
		{
			name: "RankedPlayer",
			mockSetup: func(reader *services.MockScoreReader) {
				reader.EXPECT().GetHighScore(gomock.Any(), int64(1)).Return(int64Ptr(500), nil)
				reader.EXPECT().GetRank(gomock.Any(), int64(1)).Return(3, nil)
			},
			expectedStats: models.PlayerStats{UID: 1, HighScore: 500, Rank: 3},
		},
		{
			name: "NoSubmissions",
			mockSetup: func(reader *services.MockScoreReader) {
				reader.EXPECT().GetHighScore(gomock.Any(), int64(1)).Return(nil, nil)
			},
			expectedStats: models.PlayerStats{UID: 1, HighScore: 0, Rank: -1},
		},
		{
			name: "DBError",
			mockSetup: func(reader *services.MockScoreReader) {
				reader.EXPECT().GetHighScore(gomock.Any(), int64(1)).
					Return(nil, errors.New("db error"))
			},
			expectedErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := services.NewMockScoreReader(ctrl)
			tt.mockSetup(reader)

			svc := services.NewScoreService(services.NewMockScoreWriter(ctrl), reader, nil, nil, nil)

			stats, err := svc.PlayerStats(context.Background(), 1)

			if tt.expectedErr != nil {
				assert.EqualError(t, err, tt.expectedErr.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedStats, stats)
			}
		})
	}
}
