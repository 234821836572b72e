package httpapi

import (
	"net/http"

	"github.com/capp-data/capp-data-server/internal/platform/id"
	"github.com/capp-data/capp-data-server/internal/platform/logging"
)

type RouterConfig struct {
	ServiceName        string
	CORSAllowedOrigins []string
}

func NewRouter(handler *Handler, logger *logging.Logger, cfg RouterConfig) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = "capp-data-server"
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler)
	registerGameRoutes(mux, handler)

	chain := recoverPanic(logger, mux)
	chain = CORS(cfg.CORSAllowedOrigins, chain)
	chain = RequestLogging(logger, chain)
	chain = RequestID(id.NewRandomGenerator(), chain)
	return RequestTracing(cfg.ServiceName, chain)
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(r.Context(), "panic recovered", "panic", rec, "path", r.URL.Path)
				writeInternalError(r.Context(), w)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
