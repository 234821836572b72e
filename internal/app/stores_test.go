package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceStatement(t *testing.T) {
	t.Parallel()

	got := traceStatement("\n  INSERT INTO raw_feed_payloads\n\t(source, entity_key)  VALUES ($1, $2) ")
	assert.Equal(t, "INSERT INTO raw_feed_payloads (source, entity_key) VALUES ($1, $2)", got)

	long := traceStatement("SELECT " + strings.Repeat("x", 1000))
	assert.Len(t, long, maxTraceStatement+3)
	assert.True(t, strings.HasSuffix(long, "..."))
}

func TestPollLeagues(t *testing.T) {
	t.Parallel()

	got := pollLeagues([]string{"nfl", "cfb", "nfl", "xfl"})
	require.Len(t, got, 2)
	assert.Equal(t, "nfl", string(got[0]))
	assert.Equal(t, "cfb", string(got[1]))
}

func TestNewTeamResolver(t *testing.T) {
	t.Parallel()

	resolver, err := newTeamResolver("")
	require.NoError(t, err)
	assert.Equal(t, "Ohio State", resolver.CanonicalName("cfb", "Ohio State Buckeyes"))

	path := filepath.Join(t.TempDir(), "teams.yaml")
	require.NoError(t, os.WriteFile(path, []byte("college:\n  \"Sample Tech Owls\": \"Sample Tech\"\n"), 0o600))
	resolver, err = newTeamResolver(path)
	require.NoError(t, err)
	assert.Equal(t, "Sample Tech", resolver.CanonicalName("cfb", "Sample Tech Owls"))

	_, err = newTeamResolver(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
