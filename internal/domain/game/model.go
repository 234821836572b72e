package game

import (
	"fmt"
	"strings"
	"time"

	"github.com/capp-data/capp-data-server/internal/domain/playbyplay"
)

// League identifies a feed the service can poll.
type League string

const (
	LeagueCFB League = "cfb"
	LeagueNFL League = "nfl"
	LeagueAll League = "all"
)

// ParseLeague normalizes a league code. Empty input means all leagues.
func ParseLeague(v string) (League, error) {
	switch League(strings.ToLower(strings.TrimSpace(v))) {
	case "", LeagueAll:
		return LeagueAll, nil
	case LeagueCFB, "ncaaf", "college-football":
		return LeagueCFB, nil
	case LeagueNFL:
		return LeagueNFL, nil
	default:
		return "", fmt.Errorf("unsupported league %q", v)
	}
}

// Leagues expands l into concrete feeds.
func (l League) Leagues() []League {
	if l == LeagueAll || l == "" {
		return []League{LeagueCFB, LeagueNFL}
	}
	return []League{l}
}

// Game states as reported by the scoreboard.
const (
	StatePre  = "pre"
	StateLive = "in"
	StatePost = "post"
)

// Competitor is one side of a game.
type Competitor struct {
	TeamID        string `json:"team_id"`
	DisplayName   string `json:"display_name"`
	CanonicalName string `json:"name"`
	Abbreviation  string `json:"abbreviation"`
	Score         int    `json:"score"`
}

// Info is one row of a scoreboard listing.
type Info struct {
	ID           string     `json:"id"`
	League       League     `json:"league"`
	Name         string     `json:"name"`
	StartsAt     time.Time  `json:"starts_at"`
	Status       string     `json:"status"`
	State        string     `json:"state"`
	Period       int        `json:"period"`
	Clock        string     `json:"clock"`
	ConferenceID string     `json:"conference_id,omitempty"`
	Home         Competitor `json:"home"`
	Away         Competitor `json:"away"`
}

// IsLive reports whether the game is in progress.
func (i Info) IsLive() bool {
	return i.State == StateLive
}

// Summary is the mapped play-by-play of one game.
type Summary struct {
	GameID      string                   `json:"game_id"`
	League      League                   `json:"league"`
	Status      string                   `json:"status"`
	State       string                   `json:"state"`
	HomeName    string                   `json:"home_name"`
	AwayName    string                   `json:"away_name"`
	HomeAbbr    string                   `json:"home_abbreviation"`
	AwayAbbr    string                   `json:"away_abbreviation"`
	HomeScore   int                      `json:"home_score"`
	AwayScore   int                      `json:"away_score"`
	Entries     []playbyplay.MappedEntry `json:"entries"`
	Corrections []playbyplay.Correction  `json:"corrections,omitempty"`
	Warnings    []string                 `json:"warnings,omitempty"`
}

// QCIssueCount counts entries carrying a QC annotation.
func (s Summary) QCIssueCount() int {
	n := 0
	for _, e := range s.Entries {
		if e.QCIssue != "" {
			n++
		}
	}
	return n
}

// Feed is a summary payload projected into domain types.
type Feed struct {
	Info   Info
	Drives []playbyplay.RawDrive
}
