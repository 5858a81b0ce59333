// Package observability starts tracing and profiling for the API process.
package observability

import (
	"context"
	"errors"

	"github.com/riskibarqy/matchup-predictor/internal/config"
	"github.com/riskibarqy/matchup-predictor/internal/platform/logging"
)

// Stack holds the telemetry components started for one process. Disabled
// components are nil.
type Stack struct {
	logger          *logging.Logger
	shutdownTracing func(context.Context) error
	stopProfiler    func() error
	pprof           *pprofServer
}

// Start brings up uptrace, pyroscope and the pprof listener according to
// cfg. On error anything already started is stopped.
func Start(cfg config.Config, logger *logging.Logger) (*Stack, error) {
	if logger == nil {
		logger = logging.Default()
	}
	s := &Stack{logger: logger.Named("observability")}

	var err error
	if s.shutdownTracing, err = initUptrace(cfg, s.logger); err != nil {
		return nil, errors.Join(err, s.Shutdown(context.Background()))
	}
	if s.stopProfiler, err = initPyroscope(cfg, s.logger); err != nil {
		return nil, errors.Join(err, s.Shutdown(context.Background()))
	}
	if cfg.PprofEnabled {
		s.pprof = startPprofServer(cfg.PprofAddr, s.logger)
	} else {
		s.logger.Info("pprof disabled", "reason", "PPROF_ENABLED=false")
	}

	return s, nil
}

// Shutdown stops profiling before flushing traces so the final spans
// include the shutdown itself.
func (s *Stack) Shutdown(ctx context.Context) error {
	if s == nil {
		return nil
	}

	var errs []error
	if s.pprof != nil {
		if err := s.pprof.stop(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if s.stopProfiler != nil {
		if err := s.stopProfiler(); err != nil {
			errs = append(errs, err)
		}
	}
	if s.shutdownTracing != nil {
		if err := s.shutdownTracing(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
