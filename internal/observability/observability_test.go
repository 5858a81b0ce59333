package observability

import (
	"context"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/matchup-predictor/internal/config"
	"github.com/riskibarqy/matchup-predictor/internal/platform/logging"
)

func TestStart_AllDisabled(t *testing.T) {
	stack, err := Start(config.Config{
		ServiceName:    "matchup-predictor-api",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}, logging.NewNop())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if stack.pprof != nil || stack.stopProfiler != nil || stack.shutdownTracing != nil {
		t.Fatalf("expected every component to stay off")
	}
	if err := stack.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestStart_UptraceWithoutDSNIsNoop(t *testing.T) {
	stack, err := Start(config.Config{UptraceEnabled: true}, nil)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if stack.shutdownTracing != nil {
		t.Fatalf("expected tracing to stay off without a DSN")
	}
}

func TestNilStackShutdown(t *testing.T) {
	var stack *Stack
	if err := stack.Shutdown(context.Background()); err != nil {
		t.Fatalf("nil shutdown: %v", err)
	}
}

func TestPprofServer_ServesIndexAndStops(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	s := &pprofServer{
		srv:    &http.Server{Handler: pprofMux(), ReadHeaderTimeout: time.Second},
		logger: logging.NewNop(),
		done:   make(chan struct{}),
	}
	s.serve(ln)

	resp, err := http.Get("http://" + ln.Addr().String() + "/debug/pprof/")
	if err != nil {
		t.Fatalf("get pprof index: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), "goroutine") {
		t.Fatalf("unexpected pprof index status=%d", resp.StatusCode)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.stop(ctx); err != nil {
		t.Fatalf("stop: %v", err)
	}
}
