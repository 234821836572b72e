package game

import (
	"context"

	"github.com/capp-data/capp-data-server/internal/domain/rawdata"
)

// ScoreboardQuery selects a scoreboard. Zero Year and Week mean "today".
type ScoreboardQuery struct {
	League     League
	Year       int
	Week       int
	SeasonType int
}

// IsHistorical reports whether the query targets a specific season/week.
func (q ScoreboardQuery) IsHistorical() bool {
	return q.Year > 0 || q.Week > 0
}

// FeedProvider is the upstream play-by-play source.
type FeedProvider interface {
	FetchScoreboard(ctx context.Context, query ScoreboardQuery) ([]Info, error)
	FetchSummary(ctx context.Context, league League, gameID string) (Feed, rawdata.Payload, error)
}

// SnapshotMirror publishes the poller's latest collections for readers
// outside this process.
type SnapshotMirror interface {
	PublishLive(ctx context.Context, games []Info, summaries map[string]Summary) error
}
