package espn

import "github.com/capp-data/capp-data-server/internal/domain/game"

func parseScoreboard(root map[string]any, league game.League) []game.Info {
	events := asMaps(getSlice(root, "events"))
	out := make([]game.Info, 0, len(events))
	for _, event := range events {
		id := getString(event, "id")
		if id == "" {
			continue
		}
		comps := asMaps(getSlice(event, "competitions"))
		var comp map[string]any
		if len(comps) > 0 {
			comp = comps[0]
		}

		info := parseCompetition(comp, league, id)
		info.Name = firstNonEmpty(getString(event, "name"), getString(event, "shortName"))
		if info.StartsAt.IsZero() {
			info.StartsAt = getTime(event, "date")
		}
		if info.Status == "" {
			applyStatus(&info, getMap(event, "status"))
		}
		out = append(out, info)
	}
	return out
}

// parseCompetition reads competitors, status and conference from a
// competitions[] item. It serves both scoreboard events and summary headers.
func parseCompetition(comp map[string]any, league game.League, gameID string) game.Info {
	info := game.Info{
		ID:       gameID,
		League:   league,
		StartsAt: getTime(comp, "date"),
	}
	applyStatus(&info, getMap(comp, "status"))

	if groups := getMap(comp, "groups"); groups != nil {
		info.ConferenceID = getString(groups, "id")
	}

	for _, item := range asMaps(getSlice(comp, "competitors")) {
		team := getMap(item, "team")
		competitor := game.Competitor{
			TeamID:       firstNonEmpty(getString(item, "id"), getString(team, "id")),
			DisplayName:  firstNonEmpty(getString(team, "displayName"), getString(team, "name"), getString(team, "location")),
			Abbreviation: getString(team, "abbreviation"),
			Score:        getInt(item, "score"),
		}
		switch getString(item, "homeAway") {
		case "home":
			info.Home = competitor
		case "away":
			info.Away = competitor
		}
	}
	return info
}

func applyStatus(info *game.Info, status map[string]any) {
	if status == nil {
		return
	}
	statusType := getMap(status, "type")
	info.Status = firstNonEmpty(getString(statusType, "name"), getString(statusType, "description"))
	info.State = getString(statusType, "state")
	info.Period = getInt(status, "period")
	info.Clock = getString(status, "displayClock")
}
