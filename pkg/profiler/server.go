// Package profiler serves pprof and Prometheus metrics over HTTP for local
// debugging.
package profiler

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

// Server is a debug HTTP endpoint. The zero value is not usable; call New.
type Server struct {
	addr   string
	srv    *http.Server
	ln     net.Listener
	served chan error
}

// New prepares a server for addr (host:port; port 0 picks a free port).
// When gatherer is non-nil its metrics are exposed on /metrics.
func New(addr string, gatherer prometheus.Gatherer) *Server {
	return &Server{
		addr: addr,
		srv: &http.Server{
			Handler:           routes(gatherer),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

func routes(gatherer prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	for name, h := range map[string]http.HandlerFunc{
		"cmdline": pprof.Cmdline,
		"profile": pprof.Profile,
		"symbol":  pprof.Symbol,
		"trace":   pprof.Trace,
	} {
		mux.HandleFunc("/debug/pprof/"+name, h)
	}
	if gatherer != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{
			ErrorLog: promLogger{},
		}))
	}
	return mux
}

// Start binds the listener and serves in the background. Once Start returns
// nil the address is reachable.
func (s *Server) Start(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen on %q: %w", s.addr, err)
	}
	s.ln = ln
	s.served = make(chan error, 1)

	log.Info().Str("addr", ln.Addr().String()).Msg("debug server listening")

	go func() {
		err := s.srv.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		s.served <- err
	}()
	return nil
}

// Addr is the bound address, or "" before Start.
func (s *Server) Addr() string {
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

// Shutdown stops accepting connections and waits for in-flight requests
// until ctx expires. It reports any error the serve loop exited with.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.ln == nil {
		return nil
	}
	log.Debug().Str("addr", s.Addr()).Msg("debug server stopping")
	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown debug server: %w", err)
	}
	if err := <-s.served; err != nil {
		return fmt.Errorf("debug server: %w", err)
	}
	return nil
}

type promLogger struct{}

func (promLogger) Println(v ...any) {
	log.Warn().Str("cmp", "metrics").Msg(fmt.Sprint(v...))
}
