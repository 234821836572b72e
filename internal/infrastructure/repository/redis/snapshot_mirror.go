package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	goredis "github.com/redis/go-redis/v9"
	"github.com/valyala/bytebufferpool"

	"github.com/capp-data/capp-data-server/internal/domain/game"
)

const (
	defaultKeyPrefix   = "capp"
	defaultSnapshotTTL = 5 * time.Minute
)

// SnapshotMirror writes the poller's live list and per-game summaries to
// Redis so viewers outside this process can read them.
//
// Keys:
//
//	{prefix}:live:games          JSON array of game rows
//	{prefix}:live:updated_at     RFC3339 time of the last publish
//	{prefix}:game:{id}:summary   JSON summary of one game
type SnapshotMirror struct {
	client goredis.Cmdable
	prefix string
	ttl    time.Duration
	now    func() time.Time
}

func NewSnapshotMirror(client goredis.Cmdable, prefix string, ttl time.Duration) *SnapshotMirror {
	prefix = strings.Trim(strings.TrimSpace(prefix), ":")
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	if ttl <= 0 {
		ttl = defaultSnapshotTTL
	}
	return &SnapshotMirror{
		client: client,
		prefix: prefix,
		ttl:    ttl,
		now:    time.Now,
	}
}

func (m *SnapshotMirror) PublishLive(ctx context.Context, games []game.Info, summaries map[string]game.Summary) error {
	if games == nil {
		games = []game.Info{}
	}
	list, err := encodeJSON(games)
	if err != nil {
		return fmt.Errorf("encode live games: %w", err)
	}

	pipe := m.client.TxPipeline()
	pipe.Set(ctx, m.liveGamesKey(), list, m.ttl)
	pipe.Set(ctx, m.updatedAtKey(), m.now().UTC().Format(time.RFC3339), m.ttl)
	for gameID, summary := range summaries {
		payload, err := encodeJSON(summary)
		if err != nil {
			return fmt.Errorf("encode summary game_id=%s: %w", gameID, err)
		}
		pipe.Set(ctx, m.summaryKey(gameID), payload, m.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("publish live snapshot: %w", err)
	}
	return nil
}

func (m *SnapshotMirror) liveGamesKey() string {
	return m.prefix + ":live:games"
}

func (m *SnapshotMirror) updatedAtKey() string {
	return m.prefix + ":live:updated_at"
}

func (m *SnapshotMirror) summaryKey(gameID string) string {
	return m.prefix + ":game:" + strings.TrimSpace(gameID) + ":summary"
}

func encodeJSON(v any) (string, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(v); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
