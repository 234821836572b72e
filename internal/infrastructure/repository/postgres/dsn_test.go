package postgres

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	t.Parallel()

	t.Run("adds application name and binary flag", func(t *testing.T) {
		got := DSN("postgres://capp:secret@db:5432/capp_archive?sslmode=disable", "capp-data-server", true)

		parsed, err := url.Parse(got)
		require.NoError(t, err)
		q := parsed.Query()
		assert.Equal(t, "capp-data-server", q.Get("application_name"))
		assert.Equal(t, "yes", q.Get("disable_prepared_binary_result"))
		assert.Equal(t, "disable", q.Get("sslmode"))
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		got := DSN("postgres://db/capp?application_name=replay&disable_prepared_binary_result=no", "capp-data-server", true)

		parsed, err := url.Parse(got)
		require.NoError(t, err)
		assert.Equal(t, "replay", parsed.Query().Get("application_name"))
		assert.Equal(t, "no", parsed.Query().Get("disable_prepared_binary_result"))
	})

	t.Run("binary flag off", func(t *testing.T) {
		got := DSN("postgres://db/capp", "", false)
		if strings.Contains(got, "disable_prepared_binary_result") {
			t.Fatalf("unexpected binary flag in %q", got)
		}
	})

	t.Run("key value dsn untouched", func(t *testing.T) {
		in := "host=db user=capp dbname=capp_archive sslmode=disable"
		if got := DSN(in, "capp-data-server", true); got != in {
			t.Fatalf("expected dsn unchanged, got %q", got)
		}
	})
}

func TestDatabaseName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"postgres://capp:secret@db:5432/capp_archive?sslmode=disable", "capp_archive"},
		{"host=db user=capp dbname='capp_archive' sslmode=disable", "capp_archive"},
		{"host=db user=capp", ""},
	}
	for _, tc := range cases {
		if got := DatabaseName(tc.in); got != tc.want {
			t.Fatalf("DatabaseName(%q)=%q want %q", tc.in, got, tc.want)
		}
	}
}
