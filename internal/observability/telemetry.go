package observability

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/riskibarqy/sports-challenge/internal/config"
	"github.com/riskibarqy/sports-challenge/internal/platform/logging"
)

// Telemetry owns tracing, profiling and the pprof listener for one process.
type Telemetry struct {
	logger          *logging.Logger
	shutdownUptrace func(context.Context) error
	stopProfiler    func() error
	pprof           *http.Server
}

// Start brings up every enabled backend. When one fails, the ones already
// started are shut down before the error is returned.
func Start(cfg config.Config, logger *logging.Logger) (*Telemetry, error) {
	if logger == nil {
		logger = logging.Default()
	}
	t := &Telemetry{
		logger:          logger,
		shutdownUptrace: noopShutdown,
		stopProfiler:    func() error { return nil },
	}

	var err error
	if t.shutdownUptrace, err = InitUptrace(cfg, logger); err != nil {
		return nil, fmt.Errorf("init uptrace: %w", err)
	}
	if t.stopProfiler, err = InitPyroscope(cfg, logger); err != nil {
		_ = t.shutdownUptrace(context.Background())
		return nil, fmt.Errorf("init pyroscope: %w", err)
	}
	if t.pprof, err = StartPprofServer(cfg, logger); err != nil {
		_ = t.stopProfiler()
		_ = t.shutdownUptrace(context.Background())
		return nil, fmt.Errorf("start pprof server: %w", err)
	}

	return t, nil
}

// Shutdown stops the backends in reverse start order and reports every
// failure.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	if t == nil {
		return nil
	}

	var errs []error
	if err := StopPprofServer(ctx, t.pprof, t.logger); err != nil {
		errs = append(errs, fmt.Errorf("stop pprof server: %w", err))
	}
	if err := t.stopProfiler(); err != nil {
		errs = append(errs, fmt.Errorf("stop pyroscope: %w", err))
	}
	if err := t.shutdownUptrace(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown uptrace: %w", err))
	}
	return errors.Join(errs...)
}
