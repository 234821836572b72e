package espn

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/singleflight"

	"github.com/capp-data/capp-data-server/internal/domain/game"
	"github.com/capp-data/capp-data-server/internal/domain/rawdata"
	"github.com/capp-data/capp-data-server/internal/platform/logging"
	"github.com/capp-data/capp-data-server/internal/platform/resilience"
	"github.com/capp-data/capp-data-server/internal/usecase"
)

const (
	defaultBaseURL           = "https://site.api.espn.com/apis/site/v2/sports"
	defaultScoreboardTimeout = 10 * time.Second
	defaultSummaryTimeout    = 15 * time.Second
	maxBodyBytes             = 8 << 20
	fbsGroupID               = "80"
	collegeScoreboardLimit   = "300"
)

var errESPNTransient = crerr.New("espn transient failure")

var sportPaths = map[game.League]string{
	game.LeagueCFB: "football/college-football",
	game.LeagueNFL: "football/nfl",
}

type ClientConfig struct {
	HTTPClient        *http.Client
	BaseURL           string
	ScoreboardTimeout time.Duration
	SummaryTimeout    time.Duration
	Logger            *logging.Logger
	CircuitBreaker    resilience.BreakerConfig
}

// Client reads the ESPN site API. Requests are not retried; the caller's
// next poll is the retry.
type Client struct {
	httpClient        *http.Client
	baseURL           string
	scoreboardTimeout time.Duration
	summaryTimeout    time.Duration
	logger            *logging.Logger
	breaker           *resilience.Breaker
	flight            singleflight.Group
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	scoreboardTimeout := cfg.ScoreboardTimeout
	if scoreboardTimeout <= 0 {
		scoreboardTimeout = defaultScoreboardTimeout
	}
	summaryTimeout := cfg.SummaryTimeout
	if summaryTimeout <= 0 {
		summaryTimeout = defaultSummaryTimeout
	}

	return &Client{
		httpClient:        httpClient,
		baseURL:           baseURL,
		scoreboardTimeout: scoreboardTimeout,
		summaryTimeout:    summaryTimeout,
		logger:            logger.Named("espn"),
		breaker:           resilience.NewBreaker(cfg.CircuitBreaker),
	}
}

// FetchScoreboard lists games for one league. Historical queries pass the
// season year, week and season type through to ESPN.
func (c *Client) FetchScoreboard(ctx context.Context, query game.ScoreboardQuery) ([]game.Info, error) {
	sportPath, ok := sportPaths[query.League]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported league %q", usecase.ErrInvalidInput, query.League)
	}

	params := url.Values{}
	if query.League == game.LeagueCFB {
		params.Set("groups", fbsGroupID)
		params.Set("limit", collegeScoreboardLimit)
	}
	if query.Year > 0 {
		params.Set("dates", strconv.Itoa(query.Year))
	}
	if query.Week > 0 {
		params.Set("week", strconv.Itoa(query.Week))
	}
	if query.SeasonType > 0 {
		params.Set("seasontype", strconv.Itoa(query.SeasonType))
	}

	raw, err := c.getJSON(ctx, sportPath+"/scoreboard", params, c.scoreboardTimeout)
	if err != nil {
		return nil, fmt.Errorf("fetch scoreboard league=%s: %w", query.League, err)
	}

	var root map[string]any
	if err := sonic.Unmarshal(raw, &root); err != nil {
		return nil, crerr.Wrapf(err, "decode scoreboard league=%s", query.League)
	}
	return parseScoreboard(root, query.League), nil
}

// FetchSummary loads one game's summary and projects its drives.
func (c *Client) FetchSummary(ctx context.Context, league game.League, gameID string) (game.Feed, rawdata.Payload, error) {
	sportPath, ok := sportPaths[league]
	if !ok {
		return game.Feed{}, rawdata.Payload{}, fmt.Errorf("%w: unsupported league %q", usecase.ErrInvalidInput, league)
	}
	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return game.Feed{}, rawdata.Payload{}, fmt.Errorf("%w: game id is required", usecase.ErrInvalidInput)
	}

	params := url.Values{}
	params.Set("event", gameID)
	raw, err := c.getJSON(ctx, sportPath+"/summary", params, c.summaryTimeout)
	if err != nil {
		return game.Feed{}, rawdata.Payload{}, fmt.Errorf("fetch summary game_id=%s: %w", gameID, err)
	}

	var root map[string]any
	if err := sonic.Unmarshal(raw, &root); err != nil {
		return game.Feed{}, rawdata.Payload{}, crerr.Wrapf(err, "decode summary game_id=%s", gameID)
	}

	feed, skipped := parseSummary(root, league, gameID)
	if feed.Info.Home.TeamID == "" && feed.Info.Away.TeamID == "" {
		return game.Feed{}, rawdata.Payload{}, fmt.Errorf("%w: summary for game %s has no competitors", usecase.ErrNotFound, gameID)
	}
	if skipped > 0 {
		c.logger.DebugContext(ctx, "skipped malformed plays", "game_id", gameID, "count", skipped)
	}

	payload := rawdata.Payload{
		Source:      "espn",
		EntityType:  "summary",
		EntityKey:   gameID,
		League:      string(league),
		PayloadJSON: string(raw),
		FetchedAt:   time.Now().UTC(),
	}
	return feed, payload, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, timeout time.Duration) ([]byte, error) {
	fullURL := c.baseURL + "/" + path
	if encoded := params.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	// The shared fetch outlives any single caller; each caller still stops
	// waiting when its own ctx ends.
	flightCtx := context.WithoutCancel(ctx)
	ch := c.flight.DoChan(fullURL, func() (any, error) {
		var raw []byte
		err := c.breaker.Do(flightCtx, func(ctx context.Context) error {
			reqCtx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			var reqErr error
			raw, reqErr = c.executeRequest(reqCtx, fullURL)
			return reqErr
		}, isTransient)
		return raw, err
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-ch:
	}
	out, err := res.Val, res.Err
	if err != nil {
		if crerr.Is(err, resilience.ErrCircuitOpen) {
			c.logger.WarnContext(ctx, "espn circuit breaker rejected request", "state", string(c.breaker.State()))
			return nil, fmt.Errorf("%w: espn is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
		return nil, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected response payload type %T", out)
	}
	return raw, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "espn request failed", "url", fullURL, "error", err)
		return nil, crerr.Mark(fmt.Errorf("%w: send request: %v", usecase.ErrDependencyUnavailable, err), errESPNTransient)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, crerr.Mark(fmt.Errorf("%w: read response body: %v", usecase.ErrDependencyUnavailable, err), errESPNTransient)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return raw, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: espn status=%d", usecase.ErrNotFound, resp.StatusCode)
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
		c.logger.WarnContext(ctx, "espn request failed", "url", fullURL, "status", resp.StatusCode)
		return nil, crerr.Mark(fmt.Errorf("%w: espn status=%d body=%s", usecase.ErrDependencyUnavailable, resp.StatusCode, abbreviateBody(raw)), errESPNTransient)
	default:
		return nil, fmt.Errorf("espn status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
	}
}

func isTransient(err error) bool {
	return crerr.Is(err, errESPNTransient)
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
