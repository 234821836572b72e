package observability

import (
	"context"

	crerr "github.com/cockroachdb/errors"

	"github.com/capp-data/capp-data-server/internal/config"
	"github.com/capp-data/capp-data-server/internal/platform/logging"
)

// Start brings up tracing export, continuous profiling and the pprof
// listener according to cfg. The returned shutdown stops them in reverse
// order and joins their errors.
func Start(cfg config.Config, logger *logging.Logger) (func(context.Context) error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.Named("observability")

	shutdownTracing, err := InitUptrace(cfg, logger)
	if err != nil {
		return nil, crerr.Wrap(err, "init uptrace")
	}

	stopProfiler, err := InitPyroscope(cfg, logger)
	if err != nil {
		_ = shutdownTracing(context.Background())
		return nil, crerr.Wrap(err, "init pyroscope")
	}

	pprofServer := StartPprofServer(cfg, logger)

	return func(ctx context.Context) error {
		var errs error
		if err := stopPprofServer(ctx, pprofServer); err != nil {
			errs = crerr.CombineErrors(errs, crerr.Wrap(err, "stop pprof server"))
		}
		if err := stopProfiler(); err != nil {
			errs = crerr.CombineErrors(errs, crerr.Wrap(err, "stop pyroscope"))
		}
		if err := shutdownTracing(ctx); err != nil {
			errs = crerr.CombineErrors(errs, crerr.Wrap(err, "shutdown uptrace"))
		}
		return errs
	}, nil
}
