package observability

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/sports-challenge/internal/config"
	"github.com/riskibarqy/sports-challenge/internal/platform/logging"
)

func TestInitUptrace_Disabled(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: false,
		ServiceName:    "sports-challenge-api",
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

func TestInitPyroscope_Disabled(t *testing.T) {
	stop, err := InitPyroscope(config.Config{PyroscopeEnabled: false}, logging.NewNop())
	if err != nil {
		t.Fatalf("init pyroscope: %v", err)
	}
	if err := stop(); err != nil {
		t.Fatalf("stop pyroscope: %v", err)
	}
}

func TestStartPprofServer_Disabled(t *testing.T) {
	srv, err := StartPprofServer(config.Config{PprofEnabled: false}, logging.NewNop())
	if err != nil {
		t.Fatalf("start pprof: %v", err)
	}
	if srv != nil {
		t.Fatalf("expected no pprof server when disabled")
	}
	if err := StopPprofServer(context.Background(), srv, logging.NewNop()); err != nil {
		t.Fatalf("stop pprof: %v", err)
	}
}

func TestUptraceDisabledReason(t *testing.T) {
	if got := uptraceDisabledReason(config.Config{}); got != "UPTRACE_ENABLED=false" {
		t.Fatalf("unexpected reason: %q", got)
	}
	if got := uptraceDisabledReason(config.Config{UptraceEnabled: true, UptraceDSN: " "}); got != "UPTRACE_DSN empty" {
		t.Fatalf("unexpected reason: %q", got)
	}
	if got := uptraceDisabledReason(config.Config{UptraceEnabled: true, UptraceDSN: "https://token@api.uptrace.dev"}); got != "" {
		t.Fatalf("expected enabled, got reason %q", got)
	}
}

func TestTelemetry_StartAndShutdownAllDisabled(t *testing.T) {
	telemetry, err := Start(config.Config{}, logging.NewNop())
	if err != nil {
		t.Fatalf("start telemetry: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := telemetry.Shutdown(ctx); err != nil {
		t.Fatalf("shutdown telemetry: %v", err)
	}

	var nilTelemetry *Telemetry
	if err := nilTelemetry.Shutdown(ctx); err != nil {
		t.Fatalf("nil telemetry shutdown: %v", err)
	}
}
