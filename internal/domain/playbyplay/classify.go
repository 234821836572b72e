package playbyplay

import "strings"

// DownCode is the canonical down column value.
type DownCode string

const (
	DownFirst      DownCode = "1"
	DownSecond     DownCode = "2"
	DownThird      DownCode = "3"
	DownFourth     DownCode = "4"
	DownKickoff    DownCode = "KO"
	DownExtraPoint DownCode = "EP"
	DownTwoPoint   DownCode = "2PT"
)

// IsPAT reports whether d is an extra point or two-point row.
func (d DownCode) IsPAT() bool {
	return d == DownExtraPoint || d == DownTwoPoint
}

// IsSpecial reports whether d is a kickoff or PAT row.
func (d DownCode) IsSpecial() bool {
	return d == DownKickoff || d.IsPAT()
}

// ClassKind enumerates the play classes the mapper distinguishes.
type ClassKind int

const (
	ClassScrimmage ClassKind = iota
	ClassKickoff
	ClassExtraPoint
	ClassTwoPoint
	ClassTimeout
)

// PlayClass is the single classification used for down codes, defaults and
// special-case handling. Down is only meaningful for ClassScrimmage and
// ClassTimeout.
type PlayClass struct {
	Kind ClassKind
	Down int
}

// Classify derives the class of a play from its type label and starting down.
func Classify(typeText string, startDown int) PlayClass {
	label := strings.ToLower(strings.TrimSpace(typeText))
	down := clampDown(startDown)

	switch {
	case strings.Contains(label, "kickoff"):
		return PlayClass{Kind: ClassKickoff}
	case isTwoPointLabel(label):
		return PlayClass{Kind: ClassTwoPoint}
	case strings.Contains(label, "extra point") || label == "pat":
		return PlayClass{Kind: ClassExtraPoint}
	case strings.Contains(label, "timeout"):
		return PlayClass{Kind: ClassTimeout, Down: down}
	default:
		return PlayClass{Kind: ClassScrimmage, Down: down}
	}
}

// DownCode maps the class to its canonical down column value.
func (c PlayClass) DownCode() DownCode {
	switch c.Kind {
	case ClassKickoff:
		return DownKickoff
	case ClassExtraPoint:
		return DownExtraPoint
	case ClassTwoPoint:
		return DownTwoPoint
	case ClassTimeout, ClassScrimmage:
		switch clampDown(c.Down) {
		case 2:
			return DownSecond
		case 3:
			return DownThird
		case 4:
			return DownFourth
		default:
			return DownFirst
		}
	default:
		return DownFirst
	}
}

// IsPAT reports whether the class is an extra point or two-point attempt.
func (c PlayClass) IsPAT() bool {
	return c.Kind == ClassExtraPoint || c.Kind == ClassTwoPoint
}

func isTwoPointLabel(label string) bool {
	return strings.Contains(label, "two-point") ||
		strings.Contains(label, "two point") ||
		strings.Contains(label, "2pt") ||
		strings.Contains(label, "2-pt")
}

// patDownCode picks EP or 2PT for an attached PAT result.
func patDownCode(pat *PATResult) DownCode {
	if pat == nil {
		return DownExtraPoint
	}
	label := strings.ToLower(pat.Text)
	if pat.Value == 2 || isTwoPointLabel(label) || strings.Contains(label, "conversion") {
		return DownTwoPoint
	}
	return DownExtraPoint
}

func clampDown(down int) int {
	if down < 1 || down > 4 {
		return 1
	}
	return down
}
