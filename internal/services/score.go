package services

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/minigame-scores/internal/logger"
	"github.com/sbilibin2017/minigame-scores/internal/models"
	"github.com/segmentio/kafka-go"
)

// TopPlayersLimit is the fixed size of the leaderboard in the external contract.
const TopPlayersLimit = 100

// ScoreWriter appends score submissions.
type ScoreWriter interface {
	Save(ctx context.Context, userID int64, submittedAt time.Time, score int64) (int64, error) // Appends a submission, returns its id
}

// ScoreReader computes per-user and global score aggregates.
type ScoreReader interface {
	GetHighScore(ctx context.Context, uid int64) (*int64, error)               // Best score, nil if no submissions
	GetRank(ctx context.Context, uid int64) (int, error)                       // Strictly-greater rank, UnrankedRank sentinel
	GetTop(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) // Top-N by best score
}

// LeaderboardCache caches the top-N leaderboard.
type LeaderboardCache interface {
	Get(ctx context.Context) ([]models.LeaderboardEntry, error)           // nil on cache miss
	Set(ctx context.Context, entries []models.LeaderboardEntry) error     // Stores with TTL
	Invalidate(ctx context.Context) error                                 // Drops the cached leaderboard
}

// SnapshotExporter writes a ranked text snapshot of the leaderboard to a sink.
type SnapshotExporter interface {
	Export(ctx context.Context, entries []models.LeaderboardEntry) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ScoreService orchestrates score submission, ranking and the leaderboard.
type ScoreService struct {
	writer      ScoreWriter
	reader      ScoreReader
	cache       LeaderboardCache
	exporter    SnapshotExporter
	kafkaWriter KafkaWriter
}

// NewScoreService creates a new ScoreService. The cache, exporter and Kafka
// writer are optional collaborators; nil disables them.
func NewScoreService(
	writer ScoreWriter,
	reader ScoreReader,
	cache LeaderboardCache,
	exporter SnapshotExporter,
	kafkaWriter KafkaWriter,
) *ScoreService {
	return &ScoreService{
		writer:      writer,
		reader:      reader,
		cache:       cache,
		exporter:    exporter,
		kafkaWriter: kafkaWriter,
	}
}

// publishScore publishes a score-submitted event to Kafka.
func (s *ScoreService) publishScore(ctx context.Context, event models.ScoreEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal score event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.UserID, 10)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish score event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Score event published to Kafka", "event_id", event.EventID, "score", event.Score)
	}
}

// exportSnapshot rebuilds the top-100 and hands it to the snapshot exporter.
// Export failure never fails the request.
func (s *ScoreService) exportSnapshot(ctx context.Context) {
	if s.exporter == nil {
		return
	}

	entries, err := s.reader.GetTop(ctx, TopPlayersLimit)
	if err != nil {
		logger.Log.Errorw("failed to build leaderboard for snapshot export", "error", err)
		return
	}

	if err := s.exporter.Export(ctx, entries); err != nil {
		logger.Log.Errorw("failed to export leaderboard snapshot", "error", err)
	}
}

// Submit persists a score submission and returns the submitter's rank.
// The rank reflects the just-inserted submission.
func (s *ScoreService) Submit(ctx context.Context, userID int64, submittedAt time.Time, score int64) (int, error) {
	if _, err := s.writer.Save(ctx, userID, submittedAt, score); err != nil {
		logger.Log.Errorw("failed to save score", "userID", userID, "score", score, "error", err)
		return 0, err
	}

	event := models.ScoreEvent{
		EventID:     uuid.NewString(),
		UserID:      userID,
		Score:       score,
		SubmittedAt: submittedAt.Unix(),
	}
	s.publishScore(ctx, event)

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			logger.Log.Errorw("failed to invalidate leaderboard cache", "error", err)
		}
	}

	s.exportSnapshot(ctx)

	rank, err := s.reader.GetRank(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to compute rank after submit", "userID", userID, "error", err)
		return 0, err
	}

	return rank, nil
}

// topPlayers returns the top-100, serving from the cache when possible.
func (s *ScoreService) topPlayers(ctx context.Context) ([]models.LeaderboardEntry, error) {
	if s.cache != nil {
		entries, err := s.cache.Get(ctx)
		if err == nil && entries != nil {
			return entries, nil
		}
		if err != nil {
			logger.Log.Errorw("failed to read leaderboard cache", "error", err)
		}
	}

	entries, err := s.reader.GetTop(ctx, TopPlayersLimit)
	if err != nil {
		logger.Log.Errorw("failed to build leaderboard", "error", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, entries); err != nil {
			logger.Log.Errorw("failed to cache leaderboard", "error", err)
		}
	}

	return entries, nil
}

// Leaderboard returns the top-100 together with the requester's own stats.
// A requester with no submissions gets rank -1 and high score 0.
func (s *ScoreService) Leaderboard(ctx context.Context, uid int64) (models.LeaderboardResponse, error) {
	entries, err := s.topPlayers(ctx)
	if err != nil {
		return models.LeaderboardResponse{}, err
	}

	resp := models.LeaderboardResponse{
		TopPlayers:      entries,
		PlayerRank:      -1,
		PlayerHighScore: 0,
	}

	highScore, err := s.reader.GetHighScore(ctx, uid)
	if err != nil {
		logger.Log.Errorw("failed to get player high score", "uid", uid, "error", err)
		return models.LeaderboardResponse{}, err
	}
	if highScore == nil {
		return resp, nil
	}

	rank, err := s.reader.GetRank(ctx, uid)
	if err != nil {
		logger.Log.Errorw("failed to get player rank", "uid", uid, "error", err)
		return models.LeaderboardResponse{}, err
	}

	resp.PlayerRank = rank
	resp.PlayerHighScore = *highScore
	return resp, nil
}

// HighestScore returns the player's best score, or 0 if they have none.
func (s *ScoreService) HighestScore(ctx context.Context, uid int64) (int64, error) {
	highScore, err := s.reader.GetHighScore(ctx, uid)
	if err != nil {
		logger.Log.Errorw("failed to get highest score", "uid", uid, "error", err)
		return 0, err
	}
	if highScore == nil {
		return 0, nil
	}
	return *highScore, nil
}

// PlayerStats returns the player's best score and rank with the
// unranked sentinels (-1 / 0) applied.
func (s *ScoreService) PlayerStats(ctx context.Context, uid int64) (models.PlayerStats, error) {
	stats := models.PlayerStats{UID: uid, HighScore: 0, Rank: -1}

	highScore, err := s.reader.GetHighScore(ctx, uid)
	if err != nil {
		logger.Log.Errorw("failed to get player high score", "uid", uid, "error", err)
		return models.PlayerStats{}, err
	}
	if highScore == nil {
		return stats, nil
	}

	rank, err := s.reader.GetRank(ctx, uid)
	if err != nil {
		logger.Log.Errorw("failed to get player rank", "uid", uid, "error", err)
		return models.PlayerStats{}, err
	}

	stats.HighScore = *highScore
	stats.Rank = rank
	return stats, nil
}
