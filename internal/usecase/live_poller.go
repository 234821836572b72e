package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/capp-data/capp-data-server/internal/domain/game"
	"github.com/capp-data/capp-data-server/internal/platform/logging"
)

const (
	defaultPollInterval = 30 * time.Second
	defaultPollWorkers  = 4
)

type PollerConfig struct {
	Interval time.Duration
	Workers  int
	Leagues  []game.League
}

type gameMapper interface {
	FetchAndMap(ctx context.Context, league game.League, gameID string) (game.Summary, error)
	Canonicalize(games []game.Info) []game.Info
}

// LivePoller keeps the latest scoreboard and mapped summaries of live games.
// Each cycle builds fresh collections and swaps them in under the lock, so
// readers never observe a partially refreshed snapshot.
type LivePoller struct {
	provider game.FeedProvider
	mapper   gameMapper
	mirror   game.SnapshotMirror
	cfg      PollerConfig
	logger   *logging.Logger

	mu          sync.RWMutex
	games       []game.Info
	summaries   map[string]game.Summary
	refreshedAt time.Time
}

func NewLivePoller(
	provider game.FeedProvider,
	mapper gameMapper,
	mirror game.SnapshotMirror,
	cfg PollerConfig,
	logger *logging.Logger,
) *LivePoller {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.Interval <= 0 {
		cfg.Interval = defaultPollInterval
	}
	if cfg.Workers <= 0 {
		cfg.Workers = defaultPollWorkers
	}
	if len(cfg.Leagues) == 0 {
		cfg.Leagues = game.LeagueAll.Leagues()
	}
	return &LivePoller{
		provider:  provider,
		mapper:    mapper,
		mirror:    mirror,
		cfg:       cfg,
		logger:    logger.Named("poller"),
		summaries: map[string]game.Summary{},
	}
}

// Run refreshes immediately and then on every interval until ctx is done.
// A slow cycle delays the next one; ticks are not queued.
func (p *LivePoller) Run(ctx context.Context) error {
	p.logger.InfoContext(ctx, "live poller started", "interval", p.cfg.Interval.String(), "workers", p.cfg.Workers)

	if err := p.Refresh(ctx); err != nil {
		return err
	}

	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("live poller stopped")
			return nil
		case <-ticker.C:
			if err := p.Refresh(ctx); err != nil {
				return err
			}
		}
	}
}

// Refresh runs one poll cycle. Upstream failures are logged and leave the
// affected league or game stale; only a worker pool failure is returned.
func (p *LivePoller) Refresh(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.LivePoller.Refresh")
	defer span.End()

	start := time.Now()
	prevGames, prevSummaries := p.current()

	games := make([]game.Info, 0, len(prevGames))
	for _, league := range p.cfg.Leagues {
		rows, err := p.provider.FetchScoreboard(ctx, game.ScoreboardQuery{League: league})
		if err != nil {
			p.logger.WarnContext(ctx, "scoreboard fetch failed, keeping previous rows", "league", string(league), "error", err)
			games = append(games, filterByLeague(prevGames, league)...)
			continue
		}
		games = append(games, p.mapper.Canonicalize(rows)...)
	}
	SortGames(games)

	next := make(map[string]game.Summary, len(games))
	for _, info := range games {
		if summary, ok := prevSummaries[info.ID]; ok && !info.IsLive() {
			next[info.ID] = summary
		}
	}

	mapped, failed, err := p.mapLiveGames(ctx, games, prevSummaries, next)
	if err != nil {
		return err
	}

	p.mu.Lock()
	p.games = games
	p.summaries = next
	p.refreshedAt = time.Now().UTC()
	p.mu.Unlock()

	span.SetAttributes(
		attribute.Int("games", len(games)),
		attribute.Int("mapped", mapped),
		attribute.Int("failed", failed),
	)
	p.logger.DebugContext(ctx, "live poll cycle complete",
		"games", len(games),
		"mapped", mapped,
		"failed", failed,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if p.mirror != nil {
		if err := p.mirror.PublishLive(ctx, games, next); err != nil {
			p.logger.WarnContext(ctx, "publish live snapshot failed", "error", err)
		}
	}
	return nil
}

// mapLiveGames runs the pipeline for every live game on the worker pool and
// writes results into next. A failed game keeps its previous summary.
func (p *LivePoller) mapLiveGames(
	ctx context.Context,
	games []game.Info,
	prev map[string]game.Summary,
	next map[string]game.Summary,
) (int, int, error) {
	pool, err := ants.NewPool(p.cfg.Workers)
	if err != nil {
		return 0, 0, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		mu      sync.Mutex
		workers sync.WaitGroup
		mapped  int
		failed  int
	)
	for _, info := range games {
		if !info.IsLive() {
			continue
		}
		info := info
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			summary, err := p.mapper.FetchAndMap(ctx, info.League, info.ID)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed++
				p.logger.WarnContext(ctx, "live game refresh failed, keeping stale summary", "game_id", info.ID, "error", err)
				if stale, ok := prev[info.ID]; ok {
					next[info.ID] = stale
				}
				return
			}
			mapped++
			next[info.ID] = summary
		}); err != nil {
			workers.Done()
			workers.Wait()
			return mapped, failed, fmt.Errorf("submit live game %s to worker pool: %w", info.ID, err)
		}
	}
	workers.Wait()
	return mapped, failed, nil
}

func (p *LivePoller) current() ([]game.Info, map[string]game.Summary) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.games, p.summaries
}

// Ready reports whether at least one poll cycle has completed.
func (p *LivePoller) Ready() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return !p.refreshedAt.IsZero()
}

// RefreshedAt is the completion time of the last cycle.
func (p *LivePoller) RefreshedAt() time.Time {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.refreshedAt
}

// LiveGames returns a copy of the latest scoreboard rows for league.
func (p *LivePoller) LiveGames(league game.League) []game.Info {
	games, _ := p.current()
	if league == "" || league == game.LeagueAll {
		out := make([]game.Info, len(games))
		copy(out, games)
		return out
	}
	return filterByLeague(games, league)
}

// Summary returns the latest mapped summary of gameID.
func (p *LivePoller) Summary(gameID string) (game.Summary, bool) {
	_, summaries := p.current()
	summary, ok := summaries[gameID]
	return summary, ok
}

func filterByLeague(games []game.Info, league game.League) []game.Info {
	out := make([]game.Info, 0, len(games))
	for _, info := range games {
		if info.League == league {
			out = append(out, info)
		}
	}
	return out
}
