package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/capp-data/capp-data-server/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                  string
	ServiceName             string
	ServiceVersion          string
	HTTPAddr                string
	ReadTimeout             time.Duration
	WriteTimeout            time.Duration
	CORSAllowedOrigins      []string
	LogLevel                logging.Level
	ESPNBaseURL             string
	ESPNScoreboardTimeout   time.Duration
	ESPNSummaryTimeout      time.Duration
	ESPNCircuitEnabled      bool
	ESPNCircuitFailureCount int
	ESPNCircuitOpenTimeout  time.Duration
	PollEnabled             bool
	PollInterval            time.Duration
	PollWorkers             int
	PollLeagues             []string
	TeamOverridesFile       string
	DBURL                   string
	DBDisablePreparedBinary bool
	RedisURL                string
	RedisSnapshotTTL        time.Duration
	UptraceEnabled          bool
	UptraceDSN              string
	PprofEnabled            bool
	PprofAddr               string
	PyroscopeEnabled        bool
	PyroscopeServerAddress  string
	PyroscopeAppName        string
	PyroscopeAuthToken      string
	PyroscopeUploadRate     time.Duration
}

// ArchiveEnabled reports whether raw payloads are persisted.
func (c Config) ArchiveEnabled() bool {
	return c.DBURL != ""
}

// MirrorEnabled reports whether snapshots are mirrored to Redis.
func (c Config) MirrorEnabled() bool {
	return c.RedisURL != ""
}

// Load reads the environment. A .env file in the working directory, when
// present, fills variables that are not already set.
func Load() (Config, error) {
	_ = godotenv.Load()

	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:             appEnv,
		ServiceName:        getEnv("APP_SERVICE_NAME", "capp-data-server"),
		ServiceVersion:     getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:           getEnv("APP_HTTP_ADDR", ":8000"),
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:           parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
		ESPNBaseURL:        strings.TrimRight(strings.TrimSpace(getEnv("ESPN_BASE_URL", DefaultESPNBaseURL)), "/"),
		PollLeagues:        splitCSV(strings.ToLower(getEnv("POLL_LEAGUES", "cfb,nfl"))),
		TeamOverridesFile:  strings.TrimSpace(getEnv("TEAM_OVERRIDES_FILE", "")),
		DBURL:              strings.TrimSpace(getEnv("DB_URL", "")),
		RedisURL:           strings.TrimSpace(getEnv("REDIS_URL", "")),
		UptraceDSN:         strings.TrimSpace(getEnv("UPTRACE_DSN", "")),
		PprofAddr:          strings.TrimSpace(getEnv("PPROF_ADDR", ":6060")),
		PyroscopeAuthToken: strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}
	if cfg.ESPNBaseURL == "" {
		return Config{}, fmt.Errorf("ESPN_BASE_URL cannot be empty")
	}
	for _, league := range cfg.PollLeagues {
		if league != "cfb" && league != "nfl" {
			return Config{}, fmt.Errorf("invalid POLL_LEAGUES item %q: valid values are cfb, nfl", league)
		}
	}

	durations := []struct {
		key      string
		fallback string
		dst      *time.Duration
	}{
		{"APP_READ_TIMEOUT", "10s", &cfg.ReadTimeout},
		{"APP_WRITE_TIMEOUT", "30s", &cfg.WriteTimeout},
		{"ESPN_SCOREBOARD_TIMEOUT", "10s", &cfg.ESPNScoreboardTimeout},
		{"ESPN_SUMMARY_TIMEOUT", "15s", &cfg.ESPNSummaryTimeout},
		{"ESPN_CIRCUIT_OPEN_TIMEOUT", "30s", &cfg.ESPNCircuitOpenTimeout},
		{"POLL_INTERVAL", "30s", &cfg.PollInterval},
		{"REDIS_SNAPSHOT_TTL", "5m", &cfg.RedisSnapshotTTL},
		{"PYROSCOPE_UPLOAD_RATE", "15s", &cfg.PyroscopeUploadRate},
	}
	for _, d := range durations {
		value, err := time.ParseDuration(getEnv(d.key, d.fallback))
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", d.key, err)
		}
		if value <= 0 {
			return Config{}, fmt.Errorf("%s must be > 0", d.key)
		}
		*d.dst = value
	}

	flags := []struct {
		key      string
		fallback string
		dst      *bool
	}{
		{"ESPN_CIRCUIT_ENABLED", "true", &cfg.ESPNCircuitEnabled},
		{"POLL_ENABLED", "true", &cfg.PollEnabled},
		{"DB_DISABLE_PREPARED_BINARY_RESULT", "true", &cfg.DBDisablePreparedBinary},
		{"UPTRACE_ENABLED", "false", &cfg.UptraceEnabled},
		{"PPROF_ENABLED", "false", &cfg.PprofEnabled},
		{"PYROSCOPE_ENABLED", "false", &cfg.PyroscopeEnabled},
	}
	for _, f := range flags {
		value, err := strconv.ParseBool(getEnv(f.key, f.fallback))
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", f.key, err)
		}
		*f.dst = value
	}

	cfg.ESPNCircuitFailureCount, err = getEnvAsInt("ESPN_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse ESPN_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if cfg.ESPNCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("ESPN_CIRCUIT_FAILURE_COUNT must be >= 1")
	}

	cfg.PollWorkers, err = getEnvAsInt("POLL_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse POLL_WORKERS: %w", err)
	}
	if cfg.PollWorkers < 1 {
		return Config{}, fmt.Errorf("POLL_WORKERS must be >= 1")
	}

	if cfg.ESPNScoreboardTimeout > MaxFeedTimeout || cfg.ESPNSummaryTimeout > MaxFeedTimeout {
		return Config{}, fmt.Errorf("ESPN timeouts must be <= %s", MaxFeedTimeout)
	}

	if cfg.UptraceEnabled && cfg.UptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	if cfg.PprofEnabled && cfg.PprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}
	cfg.PyroscopeServerAddress = strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if cfg.PyroscopeEnabled && cfg.PyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))

	return cfg, nil
}

const (
	DefaultESPNBaseURL = "https://site.api.espn.com/apis/site/v2/sports"
	MaxFeedTimeout     = 20 * time.Second
)

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}
	return strconv.Atoi(value)
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
