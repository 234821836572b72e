package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/capp-data/capp-data-server/internal/domain/rawdata"
)

const upsertRawFeedPayloadSQL = `INSERT INTO raw_feed_payloads (
    source, entity_type, entity_key, league, payload, payload_hash, fetched_at
) VALUES (
    :source, :entity_type, :entity_key, :league, CAST(:payload AS JSONB), :payload_hash, :fetched_at
)
ON CONFLICT (source, entity_type, entity_key)
DO UPDATE SET
    league = EXCLUDED.league,
    payload = EXCLUDED.payload,
    payload_hash = EXCLUDED.payload_hash,
    fetched_at = EXCLUDED.fetched_at,
    ingested_at = NOW()
WHERE raw_feed_payloads.payload_hash IS DISTINCT FROM EXCLUDED.payload_hash`

// RawFeedRepository archives upstream responses. An unchanged payload hash
// leaves the stored row untouched.
type RawFeedRepository struct {
	db *sqlx.DB
}

func NewRawFeedRepository(db *sqlx.DB) *RawFeedRepository {
	return &RawFeedRepository{db: db}
}

func (r *RawFeedRepository) UpsertMany(ctx context.Context, items []rawdata.Payload) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx upsert raw feed payloads: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stmt, err := tx.PrepareNamedContext(ctx, upsertRawFeedPayloadSQL)
	if err != nil {
		return fmt.Errorf("prepare upsert raw feed payload: %w", err)
	}
	defer stmt.Close()

	for _, item := range items {
		row, err := rawFeedRowFromPayload(item)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, row); err != nil {
			return fmt.Errorf("upsert raw feed payload entity=%s key=%s: %w", item.EntityType, item.EntityKey, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert raw feed payloads tx: %w", err)
	}
	return nil
}

type rawFeedRow struct {
	Source      string    `db:"source"`
	EntityType  string    `db:"entity_type"`
	EntityKey   string    `db:"entity_key"`
	League      string    `db:"league"`
	Payload     string    `db:"payload"`
	PayloadHash string    `db:"payload_hash"`
	FetchedAt   time.Time `db:"fetched_at"`
}

func rawFeedRowFromPayload(item rawdata.Payload) (rawFeedRow, error) {
	row := rawFeedRow{
		Source:      strings.TrimSpace(item.Source),
		EntityType:  strings.TrimSpace(item.EntityType),
		EntityKey:   strings.TrimSpace(item.EntityKey),
		League:      strings.TrimSpace(item.League),
		Payload:     item.PayloadJSON,
		PayloadHash: strings.TrimSpace(item.PayloadHash),
		FetchedAt:   item.FetchedAt.UTC(),
	}
	if row.Source == "" || row.EntityType == "" || row.EntityKey == "" {
		return rawFeedRow{}, fmt.Errorf("raw feed payload requires source, entity type and entity key")
	}
	if row.PayloadHash == "" {
		return rawFeedRow{}, fmt.Errorf("raw feed payload %s/%s has no payload hash", row.EntityType, row.EntityKey)
	}
	if row.FetchedAt.IsZero() {
		row.FetchedAt = time.Now().UTC()
	}
	return row, nil
}
