package playbyplay

import "fmt"

// ManualEntryNote marks synthesized rows that need an operator.
const ManualEntryNote = "MANUAL ENTRY REQUIRED: scoring play missing from feed"

// SynthesizeMissingScores inserts a placeholder touchdown and PAT before a
// quarter-opening kickoff when the entry after the kickoff jumps by a full
// touchdown (6, 7 or 8) that no entry accounts for. The kickoff's displayed
// score is corrected to include the missing points. Larger jumps are left
// for the QC flagger.
func SynthesizeMissingScores(entries []MappedEntry, teams Teams) []MappedEntry {
	out := make([]MappedEntry, 0, len(entries)+2)
	for i := 0; i < len(entries); i++ {
		kick := entries[i]
		if i == 0 || i+1 >= len(entries) || kick.Down != DownKickoff || kick.Quarter == entries[i-1].Quarter {
			out = append(out, kick)
			continue
		}

		next := entries[i+1]
		dh := next.HomeScore - kick.HomeScore
		da := next.AwayScore - kick.AwayScore
		delta, side := dh, SideHome
		if da > dh {
			delta, side = da, SideAway
		}
		if delta < 6 || delta > 8 {
			out = append(out, kick)
			continue
		}

		prev := entries[i-1]
		td, pat := syntheticScore(prev, kick, side, delta, teams)
		kick.HomeScore, kick.AwayScore = pat.TrueHomeScore, pat.TrueAwayScore
		out = append(out, td, pat, kick)
	}
	return out
}

func syntheticScore(prev, kick MappedEntry, side Side, delta int, teams Teams) (MappedEntry, MappedEntry) {
	name := teams.NameOf(side)
	base := MappedEntry{
		PlayID:     fmt.Sprintf("%s-synthetic", kick.PlayID),
		Sequence:   kick.Sequence,
		Quarter:    prev.Quarter,
		Clock:      FormatClock(0),
		Possession: name,
		Wallclock:  prev.Wallclock,
		Synthetic:  true,
		QCIssue:    ManualEntryNote,
	}

	td := base
	td.PlayID += "-td"
	td.Down = DownFirst
	td.Distance = 10
	td.Gain = touchdownPoints
	td.HomeScore, td.AwayScore = kick.HomeScore, kick.AwayScore
	td.TrueHomeScore, td.TrueAwayScore = addPoints(kick.HomeScore, kick.AwayScore, side, touchdownPoints)
	td.Text = fmt.Sprintf("%s touchdown (not reported by feed)", name)

	pat := base
	pat.PlayID += "-pat"
	pat.Down = DownExtraPoint
	pat.Text = fmt.Sprintf("%s extra point (not reported by feed)", name)
	if delta == 8 {
		pat.Down = DownTwoPoint
		pat.Text = fmt.Sprintf("%s two-point conversion (not reported by feed)", name)
	}
	pat.Distance = patDistance
	pat.FieldPosition = patFieldPosition
	pat.HomeScore, pat.AwayScore = td.TrueHomeScore, td.TrueAwayScore
	pat.TrueHomeScore, pat.TrueAwayScore = addPoints(kick.HomeScore, kick.AwayScore, side, delta)
	return td, pat
}

func addPoints(home, away int, side Side, points int) (int, int) {
	if side == SideAway {
		return home, away + points
	}
	return home + points, away
}
