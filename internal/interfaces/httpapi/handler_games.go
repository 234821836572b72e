package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/capp-data/capp-data-server/internal/domain/game"
	"github.com/capp-data/capp-data-server/internal/usecase"
)

type listGamesRequest struct {
	League     string `validate:"omitempty,oneof=cfb nfl all ncaaf college-football"`
	Year       int    `validate:"omitempty,gte=1990,lte=2100"`
	Week       int    `validate:"omitempty,gte=1,lte=25"`
	SeasonType int    `validate:"omitempty,oneof=1 2 3 4"`
}

type gamePlaysRequest struct {
	GameID  string `validate:"required,numeric,max=20"`
	League  string `validate:"omitempty,oneof=cfb nfl all ncaaf college-football"`
	Refresh bool
}

func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGames")
	defer span.End()

	query := r.URL.Query()
	req := listGamesRequest{League: strings.ToLower(strings.TrimSpace(query.Get("league")))}
	var err error
	if req.Year, err = parseOptionalInt(query.Get("year"), "year"); err != nil {
		writeError(ctx, w, err)
		return
	}
	if req.Week, err = parseOptionalInt(query.Get("week"), "week"); err != nil {
		writeError(ctx, w, err)
		return
	}
	if req.SeasonType, err = parseOptionalInt(firstQueryValue(query.Get("seasontype"), query.Get("season_type")), "seasontype"); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	league, err := game.ParseLeague(req.League)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	games, err := h.gameService.ListGames(ctx, game.ScoreboardQuery{
		League:     league,
		Year:       req.Year,
		Week:       req.Week,
		SeasonType: req.SeasonType,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list games failed", "league", string(league), "year", req.Year, "week", req.Week, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]gameDTO, 0, len(games))
	for _, info := range games {
		out = append(out, gameToDTO(info))
	}
	writeSuccess(w, http.StatusOK, out)
}

func (h *Handler) GetGamePlays(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGamePlays")
	defer span.End()

	query := r.URL.Query()
	req := gamePlaysRequest{
		GameID: strings.TrimSpace(r.PathValue("gameID")),
		League: strings.ToLower(strings.TrimSpace(query.Get("league"))),
	}
	refresh, err := parseOptionalBool(firstQueryValue(query.Get("refresh"), query.Get("force_refresh")), "refresh")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	req.Refresh = refresh
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	league, err := game.ParseLeague(req.League)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	summary, err := h.gameService.GetGamePlays(ctx, req.GameID, league, req.Refresh)
	if err != nil {
		h.logger.WarnContext(ctx, "get game plays failed", "game_id", req.GameID, "league", string(league), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(w, http.StatusOK, summaryToDTO(summary))
}

func parseOptionalInt(raw, field string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, field)
	}
	return value, nil
}

func parseOptionalBool(raw, field string) (bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean", usecase.ErrInvalidInput, field)
	}
	return value, nil
}

func firstQueryValue(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
