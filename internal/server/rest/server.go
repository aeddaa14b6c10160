// Package rest exposes the HTTP API: signup, login and per-user todo CRUD,
// plus the Prometheus scrape endpoint.
package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/todolist/internal/logging"
	"github.com/dmitrijs2005/todolist/internal/server/metrics"
	"github.com/dmitrijs2005/todolist/internal/server/models"
	"github.com/dmitrijs2005/todolist/internal/server/services"
	"github.com/prometheus/client_golang/prometheus"
)

// UserService is the account part of the service layer the handlers rely on.
type UserService interface {
	Register(ctx context.Context, username, email, password string) (*services.AuthOutcome, error)
	Login(ctx context.Context, username, password string) (*services.AuthOutcome, error)
}

// TaskService is the todo part of the service layer the handlers rely on.
type TaskService interface {
	List(ctx context.Context, userID int64) ([]*models.Task, error)
	Create(ctx context.Context, userID int64, title string) (*models.Task, error)
	Update(ctx context.Context, userID int64, id, title string, completed bool) (*models.Task, error)
	Delete(ctx context.Context, userID int64, id string) error
}

type Server struct {
	address   string
	users     UserService
	tasks     TaskService
	logger    logging.Logger
	jwtSecret []byte
	metrics   *metrics.Collector
	gatherer  prometheus.Gatherer
	limiter   *rateLimiter
}

func NewServer(address string, l logging.Logger, us UserService, ts TaskService, secretKey string, rl RateLimitConfig) *Server {
	registry := prometheus.NewRegistry()
	return &Server{
		address:   address,
		logger:    l.With("module", "rest_server"),
		users:     us,
		tasks:     ts,
		jwtSecret: []byte(secretKey),
		metrics:   metrics.NewCollector(registry),
		gatherer:  registry,
		limiter:   newRateLimiter(rl),
	}
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.routes(),
	}

	go s.limiter.cleanupLoop()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
		s.limiter.Stop()
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
