package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/capp-data/capp-data-server/internal/config"
	"github.com/capp-data/capp-data-server/internal/infrastructure/repository/postgres"
	"github.com/capp-data/capp-data-server/internal/platform/logging"
)

type command func(m *migrate.Migrate, args []string, logger *logging.Logger) error

var commands = map[string]command{
	"up":      runUp,
	"down":    runDown,
	"version": runVersion,
	"force":   runForce,
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}
	name := strings.ToLower(strings.TrimSpace(os.Args[1]))
	cmd, ok := commands[name]
	if !ok {
		printUsage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger := logging.New(logging.Options{
		Level:   cfg.LogLevel,
		Service: cfg.ServiceName + "-migration",
		Version: cfg.ServiceVersion,
		Env:     cfg.AppEnv,
	})
	defer func() { _ = logger.Sync() }()

	if err := migrateArchive(cfg, name, cmd, os.Args[2:], logger); err != nil {
		logger.Error("migration failed", "command", name, "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

func migrateArchive(cfg config.Config, name string, cmd command, args []string, logger *logging.Logger) error {
	if !cfg.ArchiveEnabled() {
		return crerr.New("DB_URL is required")
	}

	dir, err := migrationsDir(os.Getenv("MIGRATIONS_DIR"))
	if err != nil {
		return err
	}
	source := "file://" + filepath.ToSlash(dir)

	m, err := migrate.New(source, postgres.DSN(cfg.DBURL, cfg.ServiceName+"-migration", cfg.DBDisablePreparedBinary))
	if err != nil {
		return crerr.Wrap(err, "create migrator")
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if closeErr := crerr.CombineErrors(srcErr, dbErr); closeErr != nil {
			logger.Warn("close migrator failed", "error", closeErr)
		}
	}()

	logger.Info("running migration", "command", name, "source", source, "db_name", postgres.DatabaseName(cfg.DBURL))
	return cmd(m, args, logger)
}

func runUp(m *migrate.Migrate, _ []string, logger *logging.Logger) error {
	return reportChange(m.Up(), logger, "migrations applied")
}

func runDown(m *migrate.Migrate, args []string, logger *logging.Logger) error {
	steps := 1
	if len(args) > 0 {
		n, err := strconv.Atoi(strings.TrimSpace(args[0]))
		if err != nil || n <= 0 {
			return crerr.Newf("down steps must be a positive integer, got %q", args[0])
		}
		steps = n
	}
	return reportChange(m.Steps(-steps), logger, "migrations rolled back", "steps", steps)
}

func runVersion(m *migrate.Migrate, _ []string, logger *logging.Logger) error {
	version, dirty, err := m.Version()
	if crerr.Is(err, migrate.ErrNilVersion) {
		logger.Info("no migration applied")
		return nil
	}
	if err != nil {
		return crerr.Wrap(err, "read version")
	}
	logger.Info("current migration version", "version", version, "dirty", dirty)
	return nil
}

func runForce(m *migrate.Migrate, args []string, logger *logging.Logger) error {
	if len(args) == 0 {
		return crerr.New("force requires a version argument")
	}
	version, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil || version < 0 {
		return crerr.Newf("invalid version %q", args[0])
	}
	if err := m.Force(version); err != nil {
		return crerr.Wrapf(err, "force version %d", version)
	}
	logger.Info("forced migration version", "version", version)
	return nil
}

func reportChange(err error, logger *logging.Logger, msg string, args ...any) error {
	if crerr.Is(err, migrate.ErrNoChange) {
		logger.Info("no migration changes")
		return nil
	}
	if err != nil {
		return err
	}
	logger.Info(msg, args...)
	return nil
}

// migrationsDir returns the first existing directory among override and the
// default locations.
func migrationsDir(override string) (string, error) {
	for _, candidate := range []string{strings.TrimSpace(override), "./db/migrations", "/app/db/migrations"} {
		if candidate == "" {
			continue
		}
		abs, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		if info, err := os.Stat(abs); err == nil && info.IsDir() {
			return abs, nil
		}
	}
	return "", crerr.New("migration directory not found (checked MIGRATIONS_DIR, ./db/migrations, /app/db/migrations)")
}

func printUsage() {
	bin := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "usage: %s <up|down [steps]|version|force <version>>\n", bin)
}
