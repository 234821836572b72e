package playbyplay

import "strings"

const (
	// StuckClockRun is the shortest run of identical clocks that gets rewritten.
	StuckClockRun = 6
	// DefaultPlaySeconds is the per-play step when no later clock bounds a stuck run.
	DefaultPlaySeconds = 30
	// QuarterSeconds is the length of a regulation quarter.
	QuarterSeconds = 900
)

// ReconstructClocks repairs runs of frozen clock values and enforces a
// non-increasing clock within each quarter. It rewrites ClockSeconds and Clock
// in place; plays must already be in sequence order. A play whose clock was
// missing takes the previous clock of its quarter, or the full quarter when it
// opens one.
func ReconstructClocks(plays []ParsedPlay) {
	inheritMissingClocks(plays)
	interpolateStuckRuns(plays)
	clampMonotonic(plays)
	for i := range plays {
		plays[i].Clock = FormatClock(plays[i].ClockSeconds)
	}
}

func inheritMissingClocks(plays []ParsedPlay) {
	for i := range plays {
		if !plays[i].ClockMissing {
			continue
		}
		if i > 0 && plays[i-1].Period == plays[i].Period {
			plays[i].ClockSeconds = plays[i-1].ClockSeconds
		} else {
			plays[i].ClockSeconds = QuarterSeconds
		}
	}
}

func interpolateStuckRuns(plays []ParsedPlay) {
	for start := 0; start < len(plays); {
		end := start + 1
		for end < len(plays) &&
			plays[end].Period == plays[start].Period &&
			plays[end].ClockSeconds == plays[start].ClockSeconds {
			end++
		}

		runLen := end - start
		if runLen >= StuckClockRun {
			frozen := plays[start].ClockSeconds
			target, found := nextLowerClock(plays, end, plays[start].Period, frozen)
			for offset := 0; offset < runLen; offset++ {
				var value int
				if found {
					value = frozen - (frozen-target)*offset/runLen
				} else {
					value = max(frozen-DefaultPlaySeconds*offset, 0)
				}
				plays[start+offset].ClockSeconds = value
			}
		}
		start = end
	}
}

func nextLowerClock(plays []ParsedPlay, from, period, frozen int) (int, bool) {
	for i := from; i < len(plays); i++ {
		if plays[i].Period != period {
			return 0, false
		}
		if plays[i].ClockSeconds < frozen {
			return plays[i].ClockSeconds, true
		}
	}
	return 0, false
}

func clampMonotonic(plays []ParsedPlay) {
	for i := 1; i < len(plays); i++ {
		if plays[i].Period != plays[i-1].Period {
			continue
		}
		if plays[i].ClockSeconds > plays[i-1].ClockSeconds {
			plays[i].ClockSeconds = plays[i-1].ClockSeconds
		}
	}
}

// playDurations holds typical seconds of game clock consumed per play type.
var playDurations = []struct {
	match   string
	seconds int
}{
	{"timeout", 0},
	{"kickoff", 5},
	{"extra point", 5},
	{"two-point", 5},
	{"field goal", 5},
	{"punt", 10},
	{"sack", 7},
	{"interception", 7},
	{"fumble", 7},
	{"incompletion", 5},
	{"pass", 8},
	{"rush", 7},
	{"penalty", 6},
}

const defaultSnapSeconds = 6

// PlayDuration returns the estimated seconds a play of typeText consumes.
func PlayDuration(typeText string) int {
	label := strings.ToLower(typeText)
	for _, d := range playDurations {
		if strings.Contains(label, d.match) {
			return d.seconds
		}
	}
	return defaultSnapSeconds
}

// EstimateSnapTimes fills SnapSeconds with the clock at the snap: the play's
// end clock plus its estimated duration, capped by the previous play's clock
// in the same quarter and by the quarter length.
func EstimateSnapTimes(plays []ParsedPlay) {
	for i := range plays {
		ceiling := QuarterSeconds
		if i > 0 && plays[i-1].Period == plays[i].Period {
			ceiling = plays[i-1].ClockSeconds
		}
		snap := plays[i].ClockSeconds + PlayDuration(plays[i].TypeText)
		plays[i].SnapSeconds = min(snap, ceiling, QuarterSeconds)
	}
}
