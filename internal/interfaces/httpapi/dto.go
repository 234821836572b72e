package httpapi

import (
	"time"

	"github.com/capp-data/capp-data-server/internal/domain/game"
	"github.com/capp-data/capp-data-server/internal/domain/playbyplay"
)

type readinessDTO struct {
	Status        string     `json:"status"`
	Polling       bool       `json:"polling"`
	Ready         bool       `json:"ready"`
	LastRefreshAt *time.Time `json:"last_refresh_at,omitempty"`
}

type competitorDTO struct {
	TeamID       string `json:"team_id"`
	Name         string `json:"name"`
	DisplayName  string `json:"display_name"`
	Abbreviation string `json:"abbreviation"`
	Score        int    `json:"score"`
}

type gameDTO struct {
	ID           string        `json:"id"`
	League       string        `json:"league"`
	Name         string        `json:"name"`
	StartsAt     *time.Time    `json:"starts_at,omitempty"`
	Status       string        `json:"status"`
	State        string        `json:"state"`
	Period       int           `json:"period"`
	Clock        string        `json:"clock"`
	ConferenceID string        `json:"conference_id,omitempty"`
	Home         competitorDTO `json:"home"`
	Away         competitorDTO `json:"away"`
}

type entryDTO struct {
	PlayID        string     `json:"play_id"`
	HomeScore     int        `json:"home_score"`
	AwayScore     int        `json:"away_score"`
	Clock         string     `json:"clock"`
	Quarter       string     `json:"quarter"`
	Down          string     `json:"down"`
	Distance      int        `json:"distance"`
	Gain          int        `json:"gain"`
	FieldPosition int        `json:"field_position"`
	Possession    string     `json:"possession"`
	RunClock      bool       `json:"run_clock"`
	HomeTimeout   bool       `json:"home_timeout"`
	AwayTimeout   bool       `json:"away_timeout"`
	PlayText      string     `json:"play_text"`
	Wallclock     *time.Time `json:"wallclock,omitempty"`
	Synthetic     bool       `json:"synthetic"`
	QCIssue       string     `json:"qc_issue"`
}

type correctionDTO struct {
	PlayID string `json:"play_id"`
	Note   string `json:"note"`
}

type gameSummaryDTO struct {
	GameID           string          `json:"game_id"`
	League           string          `json:"league"`
	Status           string          `json:"status"`
	State            string          `json:"state"`
	HomeTeam         string          `json:"home_team"`
	AwayTeam         string          `json:"away_team"`
	HomeAbbreviation string          `json:"home_abbreviation"`
	AwayAbbreviation string          `json:"away_abbreviation"`
	ActualHome       int             `json:"actual_home"`
	ActualAway       int             `json:"actual_away"`
	QCIssueCount     int             `json:"qc_issue_count"`
	Entries          []entryDTO      `json:"entries"`
	Corrections      []correctionDTO `json:"corrections"`
	Warnings         []string        `json:"warnings"`
}

func competitorToDTO(c game.Competitor) competitorDTO {
	return competitorDTO{
		TeamID:       c.TeamID,
		Name:         c.CanonicalName,
		DisplayName:  c.DisplayName,
		Abbreviation: c.Abbreviation,
		Score:        c.Score,
	}
}

func gameToDTO(info game.Info) gameDTO {
	return gameDTO{
		ID:           info.ID,
		League:       string(info.League),
		Name:         info.Name,
		StartsAt:     optionalTime(info.StartsAt),
		Status:       info.Status,
		State:        info.State,
		Period:       info.Period,
		Clock:        info.Clock,
		ConferenceID: info.ConferenceID,
		Home:         competitorToDTO(info.Home),
		Away:         competitorToDTO(info.Away),
	}
}

func entryToDTO(e playbyplay.MappedEntry) entryDTO {
	return entryDTO{
		PlayID:        e.PlayID,
		HomeScore:     e.HomeScore,
		AwayScore:     e.AwayScore,
		Clock:         e.Clock,
		Quarter:       e.Quarter,
		Down:          string(e.Down),
		Distance:      e.Distance,
		Gain:          e.Gain,
		FieldPosition: e.FieldPosition,
		Possession:    e.Possession,
		RunClock:      e.RunClock,
		HomeTimeout:   e.HomeTimeout,
		AwayTimeout:   e.AwayTimeout,
		PlayText:      e.Text,
		Wallclock:     optionalTime(e.Wallclock),
		Synthetic:     e.Synthetic,
		QCIssue:       e.QCIssue,
	}
}

func summaryToDTO(s game.Summary) gameSummaryDTO {
	out := gameSummaryDTO{
		GameID:           s.GameID,
		League:           string(s.League),
		Status:           s.Status,
		State:            s.State,
		HomeTeam:         s.HomeName,
		AwayTeam:         s.AwayName,
		HomeAbbreviation: s.HomeAbbr,
		AwayAbbreviation: s.AwayAbbr,
		ActualHome:       s.HomeScore,
		ActualAway:       s.AwayScore,
		QCIssueCount:     s.QCIssueCount(),
		Entries:          make([]entryDTO, 0, len(s.Entries)),
		Corrections:      make([]correctionDTO, 0, len(s.Corrections)),
		Warnings:         append([]string{}, s.Warnings...),
	}
	for _, e := range s.Entries {
		out.Entries = append(out.Entries, entryToDTO(e))
	}
	for _, c := range s.Corrections {
		out.Corrections = append(out.Corrections, correctionDTO{PlayID: c.PlayID, Note: c.Note})
	}
	return out
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
