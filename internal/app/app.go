package app

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/capp-data/capp-data-server/external/espn"
	"github.com/capp-data/capp-data-server/internal/config"
	"github.com/capp-data/capp-data-server/internal/domain/game"
	"github.com/capp-data/capp-data-server/internal/domain/rawdata"
	"github.com/capp-data/capp-data-server/internal/domain/team"
	"github.com/capp-data/capp-data-server/internal/infrastructure/repository/postgres"
	redisrepo "github.com/capp-data/capp-data-server/internal/infrastructure/repository/redis"
	"github.com/capp-data/capp-data-server/internal/interfaces/httpapi"
	"github.com/capp-data/capp-data-server/internal/platform/logging"
	"github.com/capp-data/capp-data-server/internal/platform/resilience"
	"github.com/capp-data/capp-data-server/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

// App owns the HTTP server, the live poller and their optional backing
// stores.
type App struct {
	cfg     config.Config
	logger  *logging.Logger
	server  *http.Server
	poller  *usecase.LivePoller
	closers []func() error
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	a := &App{cfg: cfg, logger: logger}

	var archive rawdata.Repository
	if cfg.ArchiveEnabled() {
		db, err := openArchiveDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, db.Close)
		archive = postgres.NewRawFeedRepository(db)
		logger.Info("raw feed archive enabled", "db_name", postgres.DatabaseName(cfg.DBURL))
	}

	var mirror game.SnapshotMirror
	if cfg.MirrorEnabled() {
		client, err := openSnapshotRedis(ctx, cfg.RedisURL)
		if err != nil {
			_ = a.Close()
			return nil, err
		}
		a.closers = append(a.closers, client.Close)
		mirror = redisrepo.NewSnapshotMirror(client, cfg.ServiceName, cfg.RedisSnapshotTTL)
		logger.Info("redis snapshot mirror enabled", "ttl", cfg.RedisSnapshotTTL.String())
	}

	feed := espn.NewClient(espn.ClientConfig{
		BaseURL:           cfg.ESPNBaseURL,
		ScoreboardTimeout: cfg.ESPNScoreboardTimeout,
		SummaryTimeout:    cfg.ESPNSummaryTimeout,
		Logger:            logger,
		CircuitBreaker: resilience.BreakerConfig{
			Enabled:          cfg.ESPNCircuitEnabled,
			FailureThreshold: cfg.ESPNCircuitFailureCount,
			OpenTimeout:      cfg.ESPNCircuitOpenTimeout,
		},
	})

	resolver, err := newTeamResolver(cfg.TeamOverridesFile)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	gameService := usecase.NewGameFeedService(feed, resolver, archive, logger.Named("games"))

	var pollStatus httpapi.PollStatus
	if cfg.PollEnabled {
		a.poller = usecase.NewLivePoller(feed, gameService, mirror, usecase.PollerConfig{
			Interval: cfg.PollInterval,
			Workers:  cfg.PollWorkers,
			Leagues:  pollLeagues(cfg.PollLeagues),
		}, logger)
		gameService.AttachSnapshot(a.poller)
		pollStatus = a.poller
	}

	handler := httpapi.NewHandler(gameService, pollStatus, logger)
	a.server = &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: httpapi.NewRouter(handler, logger.Named("http"), httpapi.RouterConfig{
			ServiceName:        cfg.ServiceName,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		}),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if strings.TrimSpace(a.server.Addr) == "" {
		_ = a.Close()
		return nil, crerr.New("http server addr cannot be empty")
	}

	return a, nil
}

// Run serves HTTP and polls until ctx is cancelled or either fails.
func (a *App) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("http server starting", "addr", a.cfg.HTTPAddr)
		if err := a.server.ListenAndServe(); err != nil && !crerr.Is(err, http.ErrServerClosed) {
			return crerr.Wrap(err, "http server")
		}
		return nil
	})

	if a.poller != nil {
		g.Go(func() error {
			return a.poller.Run(gctx)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		a.logger.Info("http server shutting down")
		return a.server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// Close releases the archive and mirror connections.
func (a *App) Close() error {
	var errs error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = crerr.CombineErrors(errs, err)
		}
	}
	a.closers = nil
	return errs
}

func pollLeagues(raw []string) []game.League {
	out := make([]game.League, 0, len(raw))
	seen := map[game.League]struct{}{}
	for _, item := range raw {
		league, err := game.ParseLeague(item)
		if err != nil {
			continue
		}
		for _, concrete := range league.Leagues() {
			if _, ok := seen[concrete]; ok {
				continue
			}
			seen[concrete] = struct{}{}
			out = append(out, concrete)
		}
	}
	return out
}

func newTeamResolver(overridesPath string) (*team.Resolver, error) {
	resolver := team.NewResolver()
	if overridesPath == "" {
		return resolver, nil
	}
	f, err := os.Open(overridesPath)
	if err != nil {
		return nil, crerr.Wrap(err, "open team overrides")
	}
	defer f.Close()

	file, err := team.ParseOverrides(f)
	if err != nil {
		return nil, crerr.Wrapf(err, "load %s", overridesPath)
	}
	return resolver.WithOverrides(file), nil
}
