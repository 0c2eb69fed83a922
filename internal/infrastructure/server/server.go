package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/vdrive/internal/infrastructure/monitoring"
)

const shutdownTimeout = 5 * time.Second

// Server exposes metrics and health over HTTP next to the shell
type Server struct {
	router  *gin.Engine
	metrics *monitoring.Metrics
	logger  *zap.Logger
	addr    string
}

// New creates a server listening on addr once started
func New(addr string, metrics *monitoring.Metrics, logger *zap.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(monitoring.Middleware(metrics))

	s := &Server{router: router, metrics: metrics, logger: logger, addr: addr}

	router.GET("/healthz", s.health)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{})))
	router.GET("/metrics/json", s.snapshot)

	return s
}

// Handler returns the router, for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens in the background until ctx is done. The returned channel
// yields the serve error, or nil after a clean shutdown.
func (s *Server) Start(ctx context.Context) (<-chan error, error) {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}

	srv := &http.Server{Handler: s.router, ReadHeaderTimeout: 5 * time.Second}
	done := make(chan error, 1)

	go func() {
		err := srv.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		done <- err
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Warn("Metrics server shutdown failed", zap.Error(err))
		}
	}()

	s.logger.Info("Metrics server listening", zap.String("addr", ln.Addr().String()))
	return done, nil
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) snapshot(c *gin.Context) {
	c.JSON(http.StatusOK, s.metrics.Snapshot())
}
