package team

import (
	"strings"

	"github.com/capp-data/capp-data-server/internal/domain/game"
)

// Resolver maps feed display names onto canonical team names.
type Resolver struct {
	nfl map[string]string
	// overrides is keyed by the exact display name.
	overrides map[string]string
	canonical map[string]string
}

// NewResolver builds a resolver over the built-in tables.
func NewResolver() *Resolver {
	r := &Resolver{
		nfl:       make(map[string]string, len(nflTeams)),
		overrides: make(map[string]string, len(cfbOverrides)),
		canonical: make(map[string]string, len(cfbCanonical)),
	}
	for _, name := range nflTeams {
		r.nfl[foldKey(name)] = name
	}
	for display, name := range cfbOverrides {
		r.overrides[display] = name
	}
	for _, name := range cfbCanonical {
		r.canonical[foldKey(name)] = name
	}
	return r
}

// Resolve returns the canonical name for raw. The bool is false when no
// table matched.
func (r *Resolver) Resolve(league game.League, raw string) (string, bool) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", false
	}
	if league == game.LeagueNFL {
		out, ok := r.nfl[foldKey(name)]
		return out, ok
	}
	return r.resolveCollege(name)
}

// CanonicalName resolves raw and falls back to raw itself.
func (r *Resolver) CanonicalName(league game.League, raw string) string {
	if name, ok := r.Resolve(league, raw); ok {
		return name
	}
	return strings.TrimSpace(raw)
}

// resolveCollege tries an exact override, then a case-insensitive canonical
// lookup, then drops trailing words until a canonical name matches.
func (r *Resolver) resolveCollege(name string) (string, bool) {
	if out, ok := r.overrides[name]; ok {
		return out, true
	}
	if out, ok := r.canonical[foldKey(name)]; ok {
		return out, true
	}
	words := strings.Fields(name)
	for n := len(words) - 1; n > 0; n-- {
		if out, ok := r.canonical[foldKey(strings.Join(words[:n], " "))]; ok {
			return out, true
		}
	}
	return "", false
}

func foldKey(v string) string {
	return strings.ToLower(strings.Join(strings.Fields(v), " "))
}
