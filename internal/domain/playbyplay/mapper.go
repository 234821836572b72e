package playbyplay

import (
	"strconv"
	"strings"
	"unicode"
)

const (
	kickoffFieldPosition = -35
	patDistance          = 3
	patFieldPosition     = 3
)

// ConvertFieldPosition maps yards-to-opponent-end-zone onto the canonical
// [-50, 49] axis: own half negative, opponent half positive, midfield -50.
func ConvertFieldPosition(yardsToEndzone *int) int {
	if yardsToEndzone == nil {
		return 0
	}
	y := *yardsToEndzone
	switch {
	case y > 50:
		return -(100 - y)
	case y < 50:
		return y
	default:
		return -50
	}
}

// QuarterLabel renders a period number as "1".."4" or "OT".
func QuarterLabel(period int) string {
	if period >= 5 {
		return "OT"
	}
	if period < 1 {
		return "1"
	}
	return strconv.Itoa(period)
}

// Mapper converts parsed plays into canonical entries for one game.
type Mapper struct {
	teams Teams
}

func NewMapper(teams Teams) *Mapper {
	return &Mapper{teams: teams}
}

// Map emits one entry per play plus a separate PAT entry for touchdowns
// carrying PAT data. Entry scores are the true, pre-lag scores.
func (m *Mapper) Map(plays []ParsedPlay) []MappedEntry {
	out := make([]MappedEntry, 0, len(plays)+len(plays)/8)
	for _, play := range plays {
		class := Classify(play.TypeText, play.Start.Down)
		entry := m.baseEntry(play, class)

		if play.PAT != nil && class.Kind != ClassKickoff && !class.IsPAT() {
			side := m.patSide(play)
			if side == SideHome {
				entry.TrueHomeScore = max(entry.TrueHomeScore-play.PAT.Value, 0)
			} else {
				entry.TrueAwayScore = max(entry.TrueAwayScore-play.PAT.Value, 0)
			}
		}
		out = append(out, entry)

		if play.PAT != nil && !class.IsPAT() && !(play.PAT.Inferred && play.PAT.Value == 0) {
			out = append(out, m.patEntry(play))
		}
	}
	return out
}

func (m *Mapper) baseEntry(play ParsedPlay, class PlayClass) MappedEntry {
	entry := MappedEntry{
		PlayID:        play.ID,
		Sequence:      play.Sequence,
		TrueHomeScore: play.HomeScore,
		TrueAwayScore: play.AwayScore,
		Quarter:       QuarterLabel(play.Period),
		Clock:         FormatClock(play.SnapSeconds),
		Down:          class.DownCode(),
		Text:          play.Text,
		Wallclock:     play.Wallclock,
	}

	switch class.Kind {
	case ClassKickoff:
		entry.FieldPosition = kickoffFieldPosition
		entry.Gain = play.Yards
		entry.Possession = m.teams.NameOf(m.possessionSide(play.TeamID).Opponent())
	case ClassExtraPoint, ClassTwoPoint:
		entry.Distance = patDistance
		entry.FieldPosition = patFieldPosition
		entry.Possession = m.teams.NameOf(m.possessionSide(play.TeamID))
	case ClassTimeout:
		entry.Distance = play.Start.Distance
		entry.FieldPosition = ConvertFieldPosition(play.Start.YardsToEndzone)
		entry.Possession = m.teams.NameOf(m.possessionSide(play.TeamID))
		entry.HomeTimeout, entry.AwayTimeout = m.timeoutSides(play.Text)
	default:
		entry.Distance = play.Start.Distance
		entry.Gain = play.Yards
		entry.FieldPosition = ConvertFieldPosition(play.Start.YardsToEndzone)
		entry.Possession = m.teams.NameOf(m.possessionSide(play.TeamID))
		entry.RunClock = runsClock(play)
	}
	return entry
}

func (m *Mapper) patEntry(play ParsedPlay) MappedEntry {
	side := m.patSide(play)
	return MappedEntry{
		PlayID:        play.ID + "-pat",
		Sequence:      play.Sequence,
		TrueHomeScore: play.HomeScore,
		TrueAwayScore: play.AwayScore,
		Quarter:       QuarterLabel(play.Period),
		Clock:         FormatClock(play.ClockSeconds),
		Down:          patDownCode(play.PAT),
		Distance:      patDistance,
		FieldPosition: patFieldPosition,
		Possession:    m.teams.NameOf(side),
		Text:          play.PAT.Text,
		Wallclock:     play.Wallclock,
	}
}

// patSide picks the team credited with a touchdown: the inferred scorer,
// then the receiving team on punt return scores, then the offense.
func (m *Mapper) patSide(play ParsedPlay) Side {
	if play.TDScoringSide != SideNone {
		return play.TDScoringSide
	}
	offense := m.possessionSide(play.TeamID)
	if play.ScoringPlay && strings.Contains(strings.ToLower(play.TypeText), "punt") {
		return offense.Opponent()
	}
	return offense
}

func (m *Mapper) possessionSide(teamID string) Side {
	if side := m.teams.SideOf(teamID); side != SideNone {
		return side
	}
	return SideHome
}

// timeoutSides attributes a timeout by abbreviation, then full name, then the
// literal words home/away/visitor.
func (m *Mapper) timeoutSides(text string) (home bool, away bool) {
	tokens := upperTokens(text)
	homeAbbr := strings.ToUpper(strings.TrimSpace(m.teams.HomeAbbr))
	awayAbbr := strings.ToUpper(strings.TrimSpace(m.teams.AwayAbbr))
	if homeAbbr != awayAbbr {
		if homeAbbr != "" && tokens[homeAbbr] {
			return true, false
		}
		if awayAbbr != "" && tokens[awayAbbr] {
			return false, true
		}
	}

	lower := strings.ToLower(text)
	homeName := strings.ToLower(strings.TrimSpace(m.teams.HomeName))
	awayName := strings.ToLower(strings.TrimSpace(m.teams.AwayName))
	// Prefer the longer name so "Texas A&M" is not read as "Texas".
	if len(awayName) >= len(homeName) {
		if awayName != "" && strings.Contains(lower, awayName) {
			return false, true
		}
		if homeName != "" && strings.Contains(lower, homeName) {
			return true, false
		}
	} else {
		if homeName != "" && strings.Contains(lower, homeName) {
			return true, false
		}
		if awayName != "" && strings.Contains(lower, awayName) {
			return false, true
		}
	}

	switch {
	case tokens["HOME"]:
		return true, false
	case tokens["AWAY"], tokens["VISITOR"], tokens["VISITORS"]:
		return false, true
	default:
		return false, false
	}
}

func upperTokens(text string) map[string]bool {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '&'
	})
	out := make(map[string]bool, len(fields))
	for _, f := range fields {
		out[strings.ToUpper(f)] = true
	}
	return out
}

// runsClock is true for a non-scoring rush that fell short of the line to gain.
func runsClock(play ParsedPlay) bool {
	if play.ScoringPlay {
		return false
	}
	if !strings.Contains(strings.ToLower(play.TypeText), "rush") {
		return false
	}
	return play.Yards < play.Start.Distance && play.End.Down != 1
}
