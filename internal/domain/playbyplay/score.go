package playbyplay

const touchdownPoints = 6

type scoreState struct {
	home int
	away int
}

func (s scoreState) delta(p ParsedPlay) (int, int) {
	return p.HomeScore - s.home, p.AwayScore - s.away
}

// InferMissingPATs attaches a PAT result to touchdowns that arrived without
// one and without a separate PAT play within the look-ahead window. The
// outcome is read from the score change between the pre-touchdown score and
// the next play: 7 is a good kick, 8 a two-point conversion, 6 a miss.
func InferMissingPATs(plays []ParsedPlay) {
	prev := scoreState{}
	for i := range plays {
		play := &plays[i]
		if play.ScoreValue == touchdownPoints && play.PAT == nil && !hasPATPlayAhead(plays, i) && i+1 < len(plays) {
			dh, da := prev.delta(plays[i+1])
			delta, side := dh, SideHome
			if da > dh {
				delta, side = da, SideAway
			}
			if pat := patFromDelta(delta); pat != nil {
				play.PAT = pat
				// The touchdown row must carry the post-PAT score so the
				// pre-PAT subtraction lands on the touchdown value.
				if side == SideHome && play.HomeScore < prev.home+delta {
					play.HomeScore = prev.home + delta
				}
				if side == SideAway && play.AwayScore < prev.away+delta {
					play.AwayScore = prev.away + delta
				}
			}
		}
		prev = scoreState{home: play.HomeScore, away: play.AwayScore}
	}
}

func hasPATPlayAhead(plays []ParsedPlay, i int) bool {
	for j := i + 1; j < len(plays) && j <= i+LookAheadWindow; j++ {
		if Classify(plays[j].TypeText, plays[j].Start.Down).IsPAT() {
			return true
		}
	}
	return false
}

func patFromDelta(delta int) *PATResult {
	switch delta {
	case 7:
		return &PATResult{Text: "Extra Point Good", Value: 1, Inferred: true}
	case 8:
		return &PATResult{Text: "Two-Point Conversion Good", Value: 2, Inferred: true}
	case 6:
		return &PATResult{Text: "Extra Point No Good", Value: 0, Inferred: true}
	default:
		return nil
	}
}

// AttributeTouchdowns sets TDScoringSide on every play carrying PAT data.
// The side whose score rose by at least 6 at the play wins; when the feed lags
// and neither side shows the jump yet, the next LookAheadWindow plays are
// checked against the same pre-touchdown score.
func AttributeTouchdowns(plays []ParsedPlay) {
	prev := scoreState{}
	for i := range plays {
		play := &plays[i]
		if play.PAT != nil {
			dh, da := prev.delta(*play)
			if max(dh, da) < touchdownPoints {
				for j := i + 1; j < len(plays) && j <= i+LookAheadWindow; j++ {
					ldh, lda := prev.delta(plays[j])
					if max(ldh, lda) >= touchdownPoints {
						dh, da = ldh, lda
						// Carry the observed score back onto the touchdown.
						if ldh >= lda {
							play.HomeScore = prev.home + ldh
						} else {
							play.AwayScore = prev.away + lda
						}
						break
					}
				}
			}
			switch {
			case dh >= touchdownPoints && dh >= da:
				play.TDScoringSide = SideHome
			case da >= touchdownPoints:
				play.TDScoringSide = SideAway
			default:
				play.TDScoringSide = SideNone
			}
		}
		prev = scoreState{home: play.HomeScore, away: play.AwayScore}
	}
}

// InferScores runs PAT inference followed by touchdown attribution.
func InferScores(plays []ParsedPlay) {
	InferMissingPATs(plays)
	AttributeTouchdowns(plays)
}
