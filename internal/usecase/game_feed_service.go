package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/capp-data/capp-data-server/internal/domain/game"
	"github.com/capp-data/capp-data-server/internal/domain/playbyplay"
	"github.com/capp-data/capp-data-server/internal/domain/rawdata"
	"github.com/capp-data/capp-data-server/internal/platform/logging"
)

// LiveSnapshot is the read side of the polling cache.
type LiveSnapshot interface {
	Ready() bool
	LiveGames(league game.League) []game.Info
	Summary(gameID string) (game.Summary, bool)
}

// GameFeedService fetches and maps games on the calling path. Listing and
// play queries read the live snapshot first when one is attached.
type GameFeedService struct {
	provider game.FeedProvider
	resolver TeamNameResolver
	archive  rawdata.Repository
	snapshot LiveSnapshot
	logger   *logging.Logger
}

func NewGameFeedService(
	provider game.FeedProvider,
	resolver TeamNameResolver,
	archive rawdata.Repository,
	logger *logging.Logger,
) *GameFeedService {
	if logger == nil {
		logger = logging.Default()
	}
	return &GameFeedService{
		provider: provider,
		resolver: resolver,
		archive:  archive,
		logger:   logger,
	}
}

// AttachSnapshot wires the polling cache. It must be called before serving.
func (s *GameFeedService) AttachSnapshot(snapshot LiveSnapshot) {
	s.snapshot = snapshot
}

// ListGames returns scoreboard rows. Queries for the current slate are
// served from the live snapshot once it has completed a refresh; historical
// queries always go upstream.
func (s *GameFeedService) ListGames(ctx context.Context, query game.ScoreboardQuery) ([]game.Info, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameFeedService.ListGames",
		attribute.String("league", string(query.League)),
		attribute.Int("year", query.Year),
		attribute.Int("week", query.Week),
	)
	defer span.End()

	if query.League == "" {
		query.League = game.LeagueAll
	}
	if query.Week < 0 || query.Year < 0 || query.SeasonType < 0 {
		return nil, fmt.Errorf("%w: year, week and season type must not be negative", ErrInvalidInput)
	}

	if !query.IsHistorical() && s.snapshot != nil && s.snapshot.Ready() {
		return s.snapshot.LiveGames(query.League), nil
	}

	leagues := query.League.Leagues()
	p := pool.NewWithResults[[]game.Info]().WithMaxGoroutines(len(leagues)).WithContext(ctx)
	for _, league := range leagues {
		league := league
		p.Go(func(ctx context.Context) ([]game.Info, error) {
			q := query
			q.League = league
			games, err := s.provider.FetchScoreboard(ctx, q)
			if err != nil {
				return nil, fmt.Errorf("list games league=%s: %w", league, err)
			}
			return games, nil
		})
	}

	batches, err := p.Wait()
	if err != nil {
		return nil, err
	}

	out := make([]game.Info, 0)
	for _, batch := range batches {
		out = append(out, s.Canonicalize(batch)...)
	}
	SortGames(out)
	return out, nil
}

// GetGamePlays returns the mapped summary of one game. forceRefresh skips
// the live snapshot. An "all" league tries each league in turn.
func (s *GameFeedService) GetGamePlays(ctx context.Context, gameID string, league game.League, forceRefresh bool) (game.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameFeedService.GetGamePlays",
		attribute.String("game_id", gameID),
		attribute.String("league", string(league)),
		attribute.Bool("force_refresh", forceRefresh),
	)
	defer span.End()

	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return game.Summary{}, fmt.Errorf("%w: game id is required", ErrInvalidInput)
	}

	if !forceRefresh && s.snapshot != nil {
		if summary, ok := s.snapshot.Summary(gameID); ok && (league == game.LeagueAll || league == "" || summary.League == league) {
			return summary, nil
		}
	}

	var lastErr error
	for _, candidate := range league.Leagues() {
		summary, err := s.FetchAndMap(ctx, candidate, gameID)
		if err == nil {
			return summary, nil
		}
		lastErr = err
		if !errors.Is(err, ErrNotFound) {
			break
		}
	}
	return game.Summary{}, lastErr
}

// FetchAndMap loads one game's summary upstream and runs it through the
// mapping pipeline.
func (s *GameFeedService) FetchAndMap(ctx context.Context, league game.League, gameID string) (game.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameFeedService.FetchAndMap",
		attribute.String("game_id", gameID),
		attribute.String("league", string(league)),
	)
	defer span.End()

	feed, payload, err := s.provider.FetchSummary(ctx, league, gameID)
	if err != nil {
		return game.Summary{}, fmt.Errorf("fetch game %s: %w", gameID, err)
	}
	s.archivePayload(ctx, payload)

	info := s.canonicalizeInfo(feed.Info)
	teams := playbyplay.Teams{
		HomeID:   info.Home.TeamID,
		AwayID:   info.Away.TeamID,
		HomeName: info.Home.CanonicalName,
		AwayName: info.Away.CanonicalName,
		HomeAbbr: info.Home.Abbreviation,
		AwayAbbr: info.Away.Abbreviation,
	}
	result := playbyplay.Run(feed.Drives, teams)

	summary := game.Summary{
		GameID:      firstNonBlank(info.ID, gameID),
		League:      league,
		Status:      info.Status,
		State:       info.State,
		HomeName:    info.Home.CanonicalName,
		AwayName:    info.Away.CanonicalName,
		HomeAbbr:    info.Home.Abbreviation,
		AwayAbbr:    info.Away.Abbreviation,
		HomeScore:   result.FinalHome,
		AwayScore:   result.FinalAway,
		Entries:     result.Entries,
		Corrections: result.Corrections,
		Warnings:    result.Warnings,
	}
	if len(summary.Entries) == 0 {
		summary.HomeScore = info.Home.Score
		summary.AwayScore = info.Away.Score
	}

	for _, note := range result.Corrections {
		s.logger.InfoContext(ctx, "auto-fixed pat attribution", "game_id", summary.GameID, "play_id", note.PlayID, "note", note.Note)
	}
	for _, warning := range result.Warnings {
		s.logger.WarnContext(ctx, "mapping warning", "game_id", summary.GameID, "warning", warning)
	}
	if issues := summary.QCIssueCount(); issues > 0 {
		s.logger.InfoContext(ctx, "qc issues flagged", "game_id", summary.GameID, "count", issues)
	}
	return summary, nil
}

// Canonicalize fills CanonicalName on both competitors of every row.
func (s *GameFeedService) Canonicalize(games []game.Info) []game.Info {
	out := make([]game.Info, len(games))
	for i, info := range games {
		out[i] = s.canonicalizeInfo(info)
	}
	return out
}

func (s *GameFeedService) canonicalizeInfo(info game.Info) game.Info {
	info.Home.CanonicalName = s.canonicalName(info.League, info.Home.DisplayName)
	info.Away.CanonicalName = s.canonicalName(info.League, info.Away.DisplayName)
	return info
}

func (s *GameFeedService) canonicalName(league game.League, raw string) string {
	if s.resolver == nil {
		return strings.TrimSpace(raw)
	}
	return s.resolver.CanonicalName(league, raw)
}

// archivePayload keeps the raw response for replay. Archive failures never
// fail the mapping call.
func (s *GameFeedService) archivePayload(ctx context.Context, payload rawdata.Payload) {
	if s.archive == nil || strings.TrimSpace(payload.PayloadJSON) == "" {
		return
	}
	hash := sha256.Sum256([]byte(payload.PayloadJSON))
	payload.PayloadHash = hex.EncodeToString(hash[:])

	if err := s.archive.UpsertMany(ctx, []rawdata.Payload{payload}); err != nil {
		s.logger.WarnContext(ctx, "archive raw payload failed",
			"entity_type", payload.EntityType,
			"entity_key", payload.EntityKey,
			"error", err,
		)
	}
}

// SortGames orders rows by kickoff, then id.
func SortGames(games []game.Info) {
	sort.SliceStable(games, func(i, j int) bool {
		if !games[i].StartsAt.Equal(games[j].StartsAt) {
			return games[i].StartsAt.Before(games[j].StartsAt)
		}
		return games[i].ID < games[j].ID
	})
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
