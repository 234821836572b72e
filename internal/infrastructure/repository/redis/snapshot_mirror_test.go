package redis

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capp-data/capp-data-server/internal/domain/game"
	"github.com/capp-data/capp-data-server/internal/domain/playbyplay"
)

type captureHook struct {
	commands [][]any
	err      error
}

func (h *captureHook) DialHook(next goredis.DialHook) goredis.DialHook {
	return next
}

func (h *captureHook) ProcessHook(next goredis.ProcessHook) goredis.ProcessHook {
	return next
}

func (h *captureHook) ProcessPipelineHook(_ goredis.ProcessPipelineHook) goredis.ProcessPipelineHook {
	return func(_ context.Context, cmds []goredis.Cmder) error {
		for _, cmd := range cmds {
			if strings.EqualFold(cmd.Name(), "set") {
				h.commands = append(h.commands, cmd.Args())
			}
		}
		return h.err
	}
}

func newCapturingClient(t *testing.T, hook *captureHook) *goredis.Client {
	t.Helper()

	client := goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:0"})
	client.AddHook(hook)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestSnapshotMirror_PublishLiveWritesListAndSummaries(t *testing.T) {
	hook := &captureHook{}
	mirror := NewSnapshotMirror(newCapturingClient(t, hook), "capp:", 2*time.Minute)
	mirror.now = func() time.Time { return time.Date(2026, 9, 6, 20, 0, 0, 0, time.UTC) }

	games := []game.Info{{ID: "401", League: game.LeagueCFB, State: game.StateLive}}
	summaries := map[string]game.Summary{
		"401": {
			GameID:   "401",
			League:   game.LeagueCFB,
			HomeName: "Ohio State",
			Entries:  []playbyplay.MappedEntry{{Down: playbyplay.DownKickoff, Clock: "15:00", Quarter: "1"}},
		},
	}

	require.NoError(t, mirror.PublishLive(context.Background(), games, summaries))
	require.Len(t, hook.commands, 3)

	byKey := map[string][]any{}
	for _, args := range hook.commands {
		byKey[args[1].(string)] = args
	}

	list, ok := byKey["capp:live:games"]
	require.True(t, ok)
	assert.Equal(t, "ex", list[3])
	assert.EqualValues(t, 120, list[4])

	var decodedGames []game.Info
	require.NoError(t, sonic.UnmarshalString(list[2].(string), &decodedGames))
	require.Len(t, decodedGames, 1)
	assert.Equal(t, "401", decodedGames[0].ID)

	assert.Equal(t, "2026-09-06T20:00:00Z", byKey["capp:live:updated_at"][2])

	summaryArgs, ok := byKey["capp:game:401:summary"]
	require.True(t, ok)
	var decoded game.Summary
	require.NoError(t, sonic.UnmarshalString(summaryArgs[2].(string), &decoded))
	assert.Equal(t, "Ohio State", decoded.HomeName)
	require.Len(t, decoded.Entries, 1)
	assert.Equal(t, playbyplay.DownKickoff, decoded.Entries[0].Down)
}

func TestSnapshotMirror_PublishLiveEmptyListIsArray(t *testing.T) {
	hook := &captureHook{}
	mirror := NewSnapshotMirror(newCapturingClient(t, hook), "", 0)

	require.NoError(t, mirror.PublishLive(context.Background(), nil, nil))
	require.Len(t, hook.commands, 2)
	assert.Equal(t, "capp:live:games", hook.commands[0][1])
	assert.Equal(t, "[]", hook.commands[0][2])
}

func TestSnapshotMirror_PublishLivePropagatesRedisError(t *testing.T) {
	hook := &captureHook{err: errors.New("READONLY You can't write against a read only replica")}
	mirror := NewSnapshotMirror(newCapturingClient(t, hook), "capp", time.Minute)

	err := mirror.PublishLive(context.Background(), []game.Info{{ID: "1"}}, nil)
	if err == nil || !strings.Contains(err.Error(), "publish live snapshot") {
		t.Fatalf("expected wrapped publish error, got %v", err)
	}
}
