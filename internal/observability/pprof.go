package observability

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/riskibarqy/matchup-predictor/internal/platform/logging"
)

type pprofServer struct {
	srv    *http.Server
	logger *logging.Logger
	done   chan struct{}
}

func pprofMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /debug/pprof/", pprof.Index)
	mux.HandleFunc("GET /debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("GET /debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("GET /debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("POST /debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("GET /debug/pprof/trace", pprof.Trace)
	return mux
}

func startPprofServer(addr string, logger *logging.Logger) *pprofServer {
	s := &pprofServer{
		srv: &http.Server{
			Addr:              addr,
			Handler:           pprofMux(),
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(s.done)
		logger.Info("pprof server starting", "addr", addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("pprof server failed", "error", err)
		}
	}()

	return s
}

// serve is used by tests to bind an ephemeral listener.
func (s *pprofServer) serve(ln net.Listener) {
	go func() {
		defer close(s.done)
		_ = s.srv.Serve(ln)
	}()
}

func (s *pprofServer) stop(ctx context.Context) error {
	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("stop pprof server: %w", err)
	}
	select {
	case <-s.done:
	case <-ctx.Done():
	}
	s.logger.Info("pprof server stopped")
	return nil
}
