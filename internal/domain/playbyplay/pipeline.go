package playbyplay

// Result is the output of one full mapping run for a game.
type Result struct {
	Entries     []MappedEntry
	FinalHome   int
	FinalAway   int
	Corrections []Correction
	Warnings    []string
	Flags       QCFlags
}

// Run takes a game's drives through parsing, score inference, clock
// reconstruction, mapping, lag, auto-fix, gap synthesis and QC.
func Run(drives []RawDrive, teams Teams) Result {
	plays := ParseDrives(drives)
	InferScores(plays)
	ReconstructClocks(plays)
	EstimateSnapTimes(plays)

	entries := NewMapper(teams).Map(plays)
	home, away := ApplyScoreboardLag(entries)
	corrections := FixMisattributedPATs(entries, teams)
	entries = SynthesizeMissingScores(entries, teams)

	flags := FlagAnomalies(entries, teams)
	ApplyQCFlags(entries, flags)

	result := Result{
		Entries:     entries,
		FinalHome:   home,
		FinalAway:   away,
		Corrections: corrections,
		Flags:       flags,
	}
	if msg, ok := FieldPositionWarning(entries); ok {
		result.Warnings = append(result.Warnings, msg)
	}
	return result
}
