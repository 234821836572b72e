package espn

import (
	"github.com/capp-data/capp-data-server/internal/domain/game"
	"github.com/capp-data/capp-data-server/internal/domain/playbyplay"
)

// parseSummary projects a summary payload. Plays that are not objects or lack
// a type are counted and dropped.
func parseSummary(root map[string]any, league game.League, gameID string) (game.Feed, int) {
	header := getMap(root, "header")
	var comp map[string]any
	if comps := asMaps(getSlice(header, "competitions")); len(comps) > 0 {
		comp = comps[0]
	}

	feed := game.Feed{Info: parseCompetition(comp, league, firstNonEmpty(getString(header, "id"), gameID))}
	feed.Info.Name = firstNonEmpty(getString(header, "name"), getString(comp, "name"))

	drives := getMap(root, "drives")
	rawDrives := asMaps(getSlice(drives, "previous"))
	if current := getMap(drives, "current"); current != nil {
		rawDrives = append(rawDrives, current)
	}

	skipped := 0
	for _, drive := range rawDrives {
		out, bad := parseDrive(drive)
		skipped += bad
		feed.Drives = append(feed.Drives, out)
	}
	return feed, skipped
}

func parseDrive(drive map[string]any) (playbyplay.RawDrive, int) {
	out := playbyplay.RawDrive{OffenseTeamID: getString(getMap(drive, "team"), "id")}
	skipped := 0
	for _, item := range getSlice(drive, "plays") {
		play, ok := item.(map[string]any)
		if !ok {
			skipped++
			continue
		}
		event, ok := parsePlay(play)
		if !ok {
			skipped++
			continue
		}
		out.Plays = append(out.Plays, event)
	}
	return out, skipped
}

func parsePlay(play map[string]any) (playbyplay.RawPlayEvent, bool) {
	playType := getMap(play, "type")
	if playType == nil {
		return playbyplay.RawPlayEvent{}, false
	}

	event := playbyplay.RawPlayEvent{
		ID:          getString(play, "id"),
		Sequence:    getInt(play, "sequenceNumber"),
		TypeID:      getString(playType, "id"),
		TypeText:    getString(playType, "text"),
		Text:        getString(play, "text"),
		Period:      getInt(getMap(play, "period"), "number"),
		Clock:       getString(getMap(play, "clock"), "displayValue"),
		Start:       parseYardState(getMap(play, "start")),
		End:         parseYardState(getMap(play, "end")),
		Yards:       getInt(play, "statYardage"),
		HomeScore:   getInt(play, "homeScore"),
		AwayScore:   getInt(play, "awayScore"),
		ScoringPlay: getBool(play, "scoringPlay"),
		ScoreValue:  getInt(play, "scoreValue"),
		Wallclock:   getTime(play, "wallclock"),
	}
	if pat := getMap(play, "pointAfterAttempt"); pat != nil {
		event.PAT = &playbyplay.PATResult{
			Text:  firstNonEmpty(getString(pat, "text"), "Extra Point"),
			Value: getInt(pat, "value"),
		}
	}
	return event, true
}

func parseYardState(src map[string]any) playbyplay.YardState {
	return playbyplay.YardState{
		Down:           getInt(src, "down"),
		Distance:       getInt(src, "distance"),
		YardsToEndzone: getIntPtr(src, "yardsToEndzone"),
		TeamID:         getString(getMap(src, "team"), "id"),
	}
}
