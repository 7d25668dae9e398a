package models

// UnrankedRank is the sentinel rank for a player with no submissions.
const UnrankedRank = 9999

// LeaderboardEntry is one row of the top-N leaderboard: a distinct player
// identified by display nickname together with their best score.
type LeaderboardEntry struct {
	Username  string `json:"username" db:"username"`
	HighScore int64  `json:"highScore" db:"high_score"`
}

// PlayerStats holds a single player's best score and global rank.
type PlayerStats struct {
	UID       int64
	HighScore int64
	Rank      int
}

// LeaderboardResponse combines the top players with the requester's own stats.
type LeaderboardResponse struct {
	TopPlayers      []LeaderboardEntry `json:"topPlayers"`
	PlayerRank      int                `json:"playerRank"`
	PlayerHighScore int64              `json:"playerHighScore"`
}
