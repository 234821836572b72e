package app

import (
	"context"
	"regexp"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	goredis "github.com/redis/go-redis/v9"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/capp-data/capp-data-server/internal/config"
	"github.com/capp-data/capp-data-server/internal/infrastructure/repository/postgres"
)

const (
	storePingTimeout  = 5 * time.Second
	maxTraceStatement = 400
)

var statementSpaces = regexp.MustCompile(`\s+`)

// openArchiveDB connects the raw feed archive with query tracing.
func openArchiveDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn := postgres.DSN(cfg.DBURL, cfg.ServiceName, cfg.DBDisablePreparedBinary)
	opts := []otelsql.Option{
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(postgres.DatabaseName(dsn)),
		otelsql.WithQueryFormatter(traceStatement),
	}
	db, err := otelsqlx.Open("postgres", dsn, opts...)
	if err != nil {
		return nil, crerr.Wrap(err, "open archive db")
	}
	otelsql.ReportDBStatsMetrics(db.DB, opts...)
	db.SetMaxOpenConns(8)
	db.SetMaxIdleConns(4)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, storePingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, crerr.Wrap(err, "ping archive db")
	}
	return db, nil
}

// openSnapshotRedis connects the snapshot mirror.
func openSnapshotRedis(ctx context.Context, rawURL string) (*goredis.Client, error) {
	opt, err := goredis.ParseURL(rawURL)
	if err != nil {
		return nil, crerr.Wrap(err, "parse redis url")
	}
	client := goredis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, storePingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, crerr.Wrap(err, "ping redis")
	}
	return client, nil
}

func traceStatement(query string) string {
	query = statementSpaces.ReplaceAllString(strings.TrimSpace(query), " ")
	if len(query) > maxTraceStatement {
		return query[:maxTraceStatement] + "..."
	}
	return query
}
