package usecase

import "github.com/capp-data/capp-data-server/internal/domain/game"

// TeamNameResolver maps feed display names onto canonical names.
type TeamNameResolver interface {
	CanonicalName(league game.League, raw string) string
}
