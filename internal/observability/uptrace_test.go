package observability

import (
	"context"
	"testing"

	"github.com/capp-data/capp-data-server/internal/config"
	"github.com/capp-data/capp-data-server/internal/platform/logging"
)

func TestInitUptrace_Disabled(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: false,
		ServiceName:    "capp-data-server",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	shutdown, err := InitUptrace(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestInitUptrace_EnabledWithoutDSNStaysDisabled(t *testing.T) {
	shutdown, err := InitUptrace(config.Config{UptraceEnabled: true}, logging.NewNop())
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestStart_AllDisabled(t *testing.T) {
	shutdown, err := Start(config.Config{ServiceName: "capp-data-server", AppEnv: config.EnvDev}, logging.NewNop())
	if err != nil {
		t.Fatalf("start observability: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown observability: %v", err)
	}
}

func TestStartPprofServer_Disabled(t *testing.T) {
	if srv := StartPprofServer(config.Config{}, logging.NewNop()); srv != nil {
		t.Fatalf("expected no pprof server when disabled")
	}
	if err := stopPprofServer(context.Background(), nil); err != nil {
		t.Fatalf("stop nil pprof server: %v", err)
	}
}
