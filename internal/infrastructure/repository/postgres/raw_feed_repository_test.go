package postgres

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/capp-data/capp-data-server/internal/domain/rawdata"
)

func TestRawFeedRepository_UpsertManyEmptyIsNoop(t *testing.T) {
	repo := NewRawFeedRepository(nil)
	if err := repo.UpsertMany(context.Background(), nil); err != nil {
		t.Fatalf("expected no error for empty batch, got %v", err)
	}
}

func TestRawFeedRowFromPayload(t *testing.T) {
	fetched := time.Date(2026, 9, 6, 19, 45, 0, 0, time.FixedZone("EDT", -4*3600))

	t.Run("trims keys and normalizes time", func(t *testing.T) {
		row, err := rawFeedRowFromPayload(rawdata.Payload{
			Source:      " espn ",
			EntityType:  "summary",
			EntityKey:   "401628374 ",
			League:      "cfb",
			PayloadJSON: `{"header":{}}`,
			PayloadHash: "abc123",
			FetchedAt:   fetched,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if row.Source != "espn" || row.EntityKey != "401628374" {
			t.Fatalf("keys not trimmed: %+v", row)
		}
		if row.FetchedAt.Location() != time.UTC || !row.FetchedAt.Equal(fetched) {
			t.Fatalf("unexpected fetched_at: %v", row.FetchedAt)
		}
	})

	t.Run("requires entity key", func(t *testing.T) {
		_, err := rawFeedRowFromPayload(rawdata.Payload{Source: "espn", EntityType: "summary", PayloadHash: "x"})
		if err == nil {
			t.Fatalf("expected error for missing entity key")
		}
	})

	t.Run("requires hash", func(t *testing.T) {
		_, err := rawFeedRowFromPayload(rawdata.Payload{Source: "espn", EntityType: "summary", EntityKey: "1"})
		if err == nil || !strings.Contains(err.Error(), "payload hash") {
			t.Fatalf("expected missing hash error, got %v", err)
		}
	})

	t.Run("defaults fetched_at", func(t *testing.T) {
		row, err := rawFeedRowFromPayload(rawdata.Payload{Source: "espn", EntityType: "summary", EntityKey: "1", PayloadHash: "x"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if row.FetchedAt.IsZero() {
			t.Fatalf("expected fetched_at default")
		}
	})
}
