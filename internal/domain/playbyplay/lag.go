package playbyplay

// ApplyScoreboardLag makes each entry display the score as it stood before
// the play: entry i shows the true score of entry i-1 and the first entry
// shows 0-0. It returns the final true score.
func ApplyScoreboardLag(entries []MappedEntry) (home int, away int) {
	for i := range entries {
		trueHome, trueAway := entries[i].TrueHomeScore, entries[i].TrueAwayScore
		entries[i].HomeScore, entries[i].AwayScore = home, away
		home, away = trueHome, trueAway
	}
	return home, away
}
