// Package webapi serves the address conversions over HTTP.
package webapi

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/logger"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/atomic"

	"github.com/velas/vlxaddress/packages/metrics"
)

const defaultShutdownTimeout = 5 * time.Second

// Server is the web API server.
type Server struct {
	echo        *echo.Echo
	log         *logger.Logger
	conversions *metrics.Conversions
	healthy     atomic.Bool
}

// NewServer creates a Server with all routes registered.
func NewServer(log *logger.Logger, conversions *metrics.Conversions) *Server {
	s := &Server{
		echo:        echo.New(),
		log:         log,
		conversions: conversions,
	}

	s.echo.HideBanner = true
	s.echo.HidePort = true
	s.echo.Use(middleware.Recover())

	s.echo.GET("/healthz", s.getHealthz)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(conversions.Registry(), promhttp.HandlerOpts{})))
	s.echo.GET("/address/ethToVlx/:address", s.ethToVlx)
	s.echo.GET("/address/vlxToEth/:address", s.vlxToEth)

	return s
}

// ServeHTTP makes the Server a http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Run starts listening on bindAddress and blocks until ctx is done or the server failed. Running requests get
// shutdownTimeout to finish. The server reports healthy only once the listener is bound.
func (s *Server) Run(ctx context.Context, bindAddress string, shutdownTimeout time.Duration) error {
	listener, err := net.Listen("tcp", bindAddress)
	if err != nil {
		return errors.Errorf("failed to bind WebAPI server to %s: %w", bindAddress, err)
	}
	s.echo.Listener = listener

	stopped := make(chan error, 1)
	go func() {
		if err := s.echo.Start(listener.Addr().String()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			stopped <- errors.Errorf("WebAPI server failed: %w", err)
			return
		}
		stopped <- nil
	}()

	s.log.Infof("Started WebAPI server on %s", listener.Addr())
	s.healthy.Store(true)
	defer s.healthy.Store(false)

	select {
	case err := <-stopped:
		return err
	case <-ctx.Done():
	}

	s.log.Infof("Stopping WebAPI server ...")
	s.healthy.Store(false)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return errors.Errorf("failed to shut down WebAPI server: %w", err)
	}
	s.log.Infof("Stopping WebAPI server ... done")

	return <-stopped
}

func (s *Server) getHealthz(c echo.Context) error {
	if !s.healthy.Load() {
		return c.NoContent(http.StatusServiceUnavailable)
	}
	return c.NoContent(http.StatusOK)
}
