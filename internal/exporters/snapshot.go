package exporters

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sbilibin2017/minigame-scores/internal/models"
)

// LeaderboardSnapshotExporter writes a ranked text snapshot of the
// leaderboard to a file, one "rank,displayName,highScore" line per player.
// The file is replaced atomically via a temp file and rename.
type LeaderboardSnapshotExporter struct {
	path string
}

// NewLeaderboardSnapshotExporter creates an exporter writing to the given path.
func NewLeaderboardSnapshotExporter(path string) *LeaderboardSnapshotExporter {
	return &LeaderboardSnapshotExporter{path: path}
}

// Export writes the entries to the configured file.
func (e *LeaderboardSnapshotExporter) Export(ctx context.Context, entries []models.LeaderboardEntry) error {
	lines := make([]string, 0, len(entries))
	for i, entry := range entries {
		lines = append(lines, fmt.Sprintf("%d,%s,%d", i+1, entry.Username, entry.HighScore))
	}
	content := strings.Join(lines, "\n")

	tmp := e.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, e.path)
}
