package playbyplay

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// StuckClockThreshold is the streak length at which a frozen clock is flagged.
	StuckClockThreshold = 4

	zeroFieldPositionLimit = 3
)

var validScoreDeltas = map[int]struct{}{0: {}, 1: {}, 2: {}, 3: {}, 6: {}, 7: {}, 8: {}}

// QCFlags maps entry index to the concatenated issue text.
type QCFlags map[int]string

func (f QCFlags) add(index int, msg string) {
	if existing, ok := f[index]; ok && existing != "" {
		f[index] = existing + "; " + msg
		return
	}
	f[index] = msg
}

// FlagAnomalies inspects displayed scores, clocks and downs and returns the
// issues found per entry. Synthesized rows always carry ManualEntryNote. It
// reads nothing it writes, so repeated runs over the same entries agree.
func FlagAnomalies(entries []MappedEntry, teams Teams) QCFlags {
	flags := QCFlags{}
	for i := range entries {
		if entries[i].Synthetic {
			flags.add(i, ManualEntryNote)
		}
	}
	checkScoreDeltas(entries, teams, flags)
	checkStuckClock(entries, flags)
	checkMissingPAT(entries, teams, flags)
	return flags
}

func checkScoreDeltas(entries []MappedEntry, teams Teams, flags QCFlags) {
	for i := 1; i < len(entries); i++ {
		for _, side := range []Side{SideHome, SideAway} {
			delta := entries[i].score(side) - entries[i-1].score(side)
			if delta == 0 || delta == -7 || delta == -8 {
				continue
			}
			name := teams.NameOf(side)
			if delta < 0 {
				flags.add(i, fmt.Sprintf("%s score went down by %d", name, -delta))
				continue
			}
			if _, ok := validScoreDeltas[delta]; !ok {
				flags.add(i, fmt.Sprintf("%s score jumped by %d (unexpected)", name, delta))
			}
		}
	}
}

func checkStuckClock(entries []MappedEntry, flags QCFlags) {
	streak := 1
	for i := 1; i < len(entries); i++ {
		cur, prev := entries[i], entries[i-1]
		if cur.Clock == prev.Clock && cur.Quarter == prev.Quarter && !cur.Down.IsSpecial() {
			streak++
			if streak == StuckClockThreshold {
				flags.add(i, fmt.Sprintf("clock stuck at %s for %d+ plays in Q%s", cur.Clock, StuckClockThreshold, cur.Quarter))
			}
			continue
		}
		streak = 1
	}
}

func checkMissingPAT(entries []MappedEntry, teams Teams, flags QCFlags) {
	for i := 1; i < len(entries); i++ {
		for _, side := range []Side{SideHome, SideAway} {
			if entries[i].score(side)-entries[i-1].score(side) != touchdownPoints {
				continue
			}
			here := entries[i].Down
			if here.IsPAT() || (i+1 < len(entries) && entries[i+1].Down.IsPAT()) {
				continue
			}
			msg := fmt.Sprintf("TD by %s has no EP or 2PT row", teams.NameOf(side))
			if here == DownKickoff {
				if entries[i].Quarter != entries[i-1].Quarter {
					continue
				}
				flags.add(i-1, msg)
				continue
			}
			flags.add(i, msg)
		}
	}
}

// ApplyQCFlags writes flags onto entries, keeping the manual-entry note on
// synthesized rows.
func ApplyQCFlags(entries []MappedEntry, flags QCFlags) {
	for i := range entries {
		msg := flags[i]
		switch {
		case !entries[i].Synthetic || strings.HasPrefix(msg, ManualEntryNote):
		case msg == "":
			msg = ManualEntryNote
		default:
			msg = ManualEntryNote + "; " + msg
		}
		entries[i].QCIssue = msg
	}
}

// Indexes returns the flagged entry indexes in ascending order.
func (f QCFlags) Indexes() []int {
	out := make([]int, 0, len(f))
	for idx := range f {
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}

// FieldPositionWarning reports games where too many scrimmage rows have no
// field position.
func FieldPositionWarning(entries []MappedEntry) (string, bool) {
	zero := 0
	for _, e := range entries {
		if e.Synthetic || e.Down.IsSpecial() {
			continue
		}
		if e.FieldPosition == 0 {
			zero++
		}
	}
	if zero > zeroFieldPositionLimit {
		return fmt.Sprintf("%d scrimmage plays have field position 0", zero), true
	}
	return "", false
}
