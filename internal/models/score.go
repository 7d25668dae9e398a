package models

import "time"

// ScoreDB represents a single score submission in the database.
// Submissions are append-only and never updated or deleted.
type ScoreDB struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"user_id" db:"user_id"`
	SubmittedAt time.Time `json:"submitted_at" db:"submitted_at"`
	Score       int64     `json:"score" db:"score"`
}

// ScoreEvent is the payload published to Kafka after every submission.
type ScoreEvent struct {
	EventID     string `json:"event_id"`
	UserID      int64  `json:"user_id"`
	Score       int64  `json:"score"`
	SubmittedAt int64  `json:"submitted_at"`
}
