package rawdata

import "time"

// Payload is an upstream response kept for replay.
type Payload struct {
	Source      string
	EntityType  string
	EntityKey   string
	League      string
	PayloadJSON string
	PayloadHash string
	FetchedAt   time.Time
}
