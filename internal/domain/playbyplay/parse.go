package playbyplay

import (
	"sort"
	"strconv"
	"strings"
)

var adminPlayTypes = map[string]struct{}{
	"end period":         {},
	"end of half":        {},
	"end of game":        {},
	"end of regulation":  {},
	"coin toss":          {},
	"two-minute warning": {},
	"two minute warning": {},
	"official timeout":   {},
	"timeout official":   {},
}

// Parser turns raw drives into ParsedPlays, dropping administrative markers
// and plays it has already seen.
type Parser struct {
	seen  map[string]struct{}
	plays []ParsedPlay
}

func NewParser() *Parser {
	return &Parser{seen: make(map[string]struct{})}
}

// AddDrive parses one drive's plays with the drive's offensive team as the
// fallback possession.
func (p *Parser) AddDrive(drive RawDrive) {
	for _, raw := range drive.Plays {
		if isAdministrative(raw) {
			continue
		}
		id := strings.TrimSpace(raw.ID)
		if id == "" {
			continue
		}
		if _, ok := p.seen[id]; ok {
			continue
		}
		p.seen[id] = struct{}{}

		teamID := strings.TrimSpace(raw.Start.TeamID)
		if teamID == "" {
			teamID = strings.TrimSpace(drive.OffenseTeamID)
		}

		clockSeconds, clockOK := ParseClock(raw.Clock)
		p.plays = append(p.plays, ParsedPlay{
			ID:           id,
			Sequence:     raw.Sequence,
			TypeText:     strings.TrimSpace(raw.TypeText),
			Text:         strings.TrimSpace(raw.Text),
			Period:       raw.Period,
			Clock:        raw.Clock,
			ClockSeconds: clockSeconds,
			ClockMissing: !clockOK,
			Start:        raw.Start,
			End:          raw.End,
			Yards:        raw.Yards,
			HomeScore:    raw.HomeScore,
			AwayScore:    raw.AwayScore,
			ScoringPlay:  raw.ScoringPlay,
			ScoreValue:   raw.ScoreValue,
			PAT:          clonePAT(raw.PAT),
			TeamID:       teamID,
			Wallclock:    raw.Wallclock,
		})
	}
}

// Plays returns every accepted play in ascending sequence order.
func (p *Parser) Plays() []ParsedPlay {
	out := make([]ParsedPlay, len(p.plays))
	copy(out, p.plays)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Sequence < out[j].Sequence
	})
	return out
}

// ParseDrives is the one-shot form of Parser.
func ParseDrives(drives []RawDrive) []ParsedPlay {
	parser := NewParser()
	for _, drive := range drives {
		parser.AddDrive(drive)
	}
	return parser.Plays()
}

func isAdministrative(raw RawPlayEvent) bool {
	label := strings.ToLower(strings.TrimSpace(raw.TypeText))
	if _, ok := adminPlayTypes[label]; ok {
		return true
	}
	return strings.Contains(strings.ToLower(raw.Text), "official timeout")
}

func clonePAT(pat *PATResult) *PATResult {
	if pat == nil {
		return nil
	}
	out := *pat
	return &out
}

// ParseClock converts "M:SS" into seconds. It reports false for blank or
// unparseable input.
func ParseClock(display string) (int, bool) {
	value := strings.TrimSpace(display)
	if value == "" {
		return 0, false
	}
	minutes, seconds, found := strings.Cut(value, ":")
	if !found {
		secs, err := strconv.ParseFloat(value, 64)
		if err != nil || secs < 0 {
			return 0, false
		}
		return int(secs), true
	}
	m, err := strconv.Atoi(strings.TrimSpace(minutes))
	if err != nil || m < 0 {
		return 0, false
	}
	s, err := strconv.ParseFloat(strings.TrimSpace(seconds), 64)
	if err != nil || s < 0 {
		return 0, false
	}
	return m*60 + int(s), true
}

// FormatClock renders seconds as "M:SS".
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return strconv.Itoa(seconds/60) + ":" + twoDigits(seconds%60)
}

func twoDigits(v int) string {
	if v < 10 {
		return "0" + strconv.Itoa(v)
	}
	return strconv.Itoa(v)
}
