package models

import "time"

// AccountDB represents a player account record in the database
type AccountDB struct {
	UID          int64     `json:"uid" db:"uid"`                     // Primary key, server-assigned
	Username     string    `json:"username" db:"username"`           // Unique login name
	Nickname     string    `json:"nickname" db:"nickname"`           // Display name shown on the leaderboard
	PasswordHash string    `json:"-" db:"password_hash"`             // bcrypt hash
	RegisteredAt time.Time `json:"registered_at" db:"registered_at"` // Creation timestamp
}

// LoginRecordDB represents an append-only login audit entry
type LoginRecordDB struct {
	ID         int64     `json:"id" db:"id"`
	UID        int64     `json:"uid" db:"uid"`
	LoggedInAt time.Time `json:"logged_in_at" db:"logged_in_at"`
}
