package playbyplay

import "time"

// LookAheadWindow is how many following plays score inference inspects
// when the feed has not yet caught up with a touchdown or its PAT.
const LookAheadWindow = 2

// RawDrive is one drive as projected from the feed.
type RawDrive struct {
	OffenseTeamID string
	Plays         []RawPlayEvent
}

// YardState is the down-and-distance snapshot at the start or end of a play.
type YardState struct {
	Down           int
	Distance       int
	YardsToEndzone *int
	TeamID         string
}

// PATResult describes the point-after attempt tied to a touchdown.
type PATResult struct {
	Text  string
	Value int
	// Inferred is set when the attempt was reconstructed from score deltas.
	Inferred bool
}

// RawPlayEvent is a single play as reported by the upstream feed.
type RawPlayEvent struct {
	ID          string
	Sequence    int
	TypeID      string
	TypeText    string
	Text        string
	Period      int
	Clock       string
	Start       YardState
	End         YardState
	Yards       int
	HomeScore   int
	AwayScore   int
	ScoringPlay bool
	ScoreValue  int
	PAT         *PATResult
	Wallclock   time.Time
}

// Side identifies home or away.
type Side int

const (
	SideNone Side = iota
	SideHome
	SideAway
)

func (s Side) String() string {
	switch s {
	case SideHome:
		return "home"
	case SideAway:
		return "away"
	default:
		return ""
	}
}

// ParsedPlay is a play after admin filtering and dedup. Score inference may
// fill PAT, adjust the scoring side's score and set TDScoringSide.
type ParsedPlay struct {
	ID            string
	Sequence      int
	TypeText      string
	Text          string
	Period        int
	Clock         string
	ClockSeconds  int
	ClockMissing  bool
	SnapSeconds   int
	Start         YardState
	End           YardState
	Yards         int
	HomeScore     int
	AwayScore     int
	ScoringPlay   bool
	ScoreValue    int
	PAT           *PATResult
	TeamID        string
	Wallclock     time.Time
	TDScoringSide Side
}

// Teams carries the ids and display names the mapper needs for one game.
type Teams struct {
	HomeID   string
	AwayID   string
	HomeName string
	AwayName string
	HomeAbbr string
	AwayAbbr string
}

// NameOf returns the canonical name for side.
func (t Teams) NameOf(side Side) string {
	if side == SideAway {
		return t.AwayName
	}
	return t.HomeName
}

// SideOf reports which side teamID belongs to.
func (t Teams) SideOf(teamID string) Side {
	switch {
	case teamID == "":
		return SideNone
	case teamID == t.HomeID:
		return SideHome
	case teamID == t.AwayID:
		return SideAway
	default:
		return SideNone
	}
}

// Opponent returns the other side. SideNone maps to SideNone.
func (s Side) Opponent() Side {
	switch s {
	case SideHome:
		return SideAway
	case SideAway:
		return SideHome
	default:
		return SideNone
	}
}

// MappedEntry is one canonical CAPP row.
type MappedEntry struct {
	PlayID        string    `json:"play_id"`
	Sequence      int       `json:"sequence"`
	HomeScore     int       `json:"home_score"`
	AwayScore     int       `json:"away_score"`
	TrueHomeScore int       `json:"-"`
	TrueAwayScore int       `json:"-"`
	Quarter       string    `json:"quarter"`
	Clock         string    `json:"clock"`
	Down          DownCode  `json:"down"`
	Distance      int       `json:"distance"`
	Gain          int       `json:"gain"`
	FieldPosition int       `json:"field_position"`
	Possession    string    `json:"possession"`
	RunClock      bool      `json:"run_clock"`
	HomeTimeout   bool      `json:"home_timeout"`
	AwayTimeout   bool      `json:"away_timeout"`
	Text          string    `json:"text"`
	Wallclock     time.Time `json:"wallclock,omitempty"`
	Synthetic     bool      `json:"synthetic,omitempty"`
	QCIssue       string    `json:"qc_issue,omitempty"`
}

func (e MappedEntry) score(side Side) int {
	if side == SideAway {
		return e.AwayScore
	}
	return e.HomeScore
}
