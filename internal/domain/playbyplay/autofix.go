package playbyplay

import "fmt"

// Correction records an automatic score repair on a lagged entry.
type Correction struct {
	PlayID string `json:"play_id"`
	Note   string `json:"note"`
}

// FixMisattributedPATs repairs PAT rows whose lagged score shows exactly one
// team going down while the other does not. That pattern appears when the
// touchdown row subtracted the PAT from the wrong team; the decrease is
// moved back onto the team that lost it.
func FixMisattributedPATs(entries []MappedEntry, teams Teams) []Correction {
	var corrections []Correction
	for i := 1; i < len(entries); i++ {
		if !entries[i].Down.IsPAT() {
			continue
		}
		dh := entries[i].HomeScore - entries[i-1].HomeScore
		da := entries[i].AwayScore - entries[i-1].AwayScore

		var wronged Side
		var amount int
		switch {
		case dh < 0 && da >= 0:
			wronged, amount = SideHome, -dh
		case da < 0 && dh >= 0:
			wronged, amount = SideAway, -da
		default:
			continue
		}

		if wronged == SideHome {
			entries[i].HomeScore += amount
			entries[i].AwayScore -= amount
		} else {
			entries[i].AwayScore += amount
			entries[i].HomeScore -= amount
		}
		note := fmt.Sprintf("PAT credit moved %d point(s) from %s to %s",
			amount, teams.NameOf(wronged.Opponent()), teams.NameOf(wronged))
		corrections = append(corrections, Correction{PlayID: entries[i].PlayID, Note: note})
	}
	return corrections
}
