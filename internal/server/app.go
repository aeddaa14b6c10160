// Package server initializes and runs the application server: it opens the
// database, wires the services, handles graceful shutdown, and starts the
// HTTP API.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/todolist/internal/logging"
	"github.com/dmitrijs2005/todolist/internal/server/config"
	"github.com/dmitrijs2005/todolist/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/todolist/internal/server/rest"
	"github.com/dmitrijs2005/todolist/internal/server/services"
	"golang.org/x/time/rate"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	repos       repomanager.RepositoryManager
	userService *services.UserService
	taskService *services.TaskService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSON(os.Stdout)

	rm, err := repomanager.NewPostgresRepositoryManager(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	us := services.NewUserService(rm.Users(), []byte(c.SecretKey), c.TokenValidity)
	ts := services.NewTaskService(rm.Tasks())

	return &App{config: c, logger: logger, repos: rm, userService: us, taskService: ts}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	rl := rest.RateLimitConfig{
		Rate:            rate.Limit(float64(app.config.RateLimitPerMinute) / 60.0),
		Burst:           app.config.RateLimitBurst,
		CleanupInterval: 5 * time.Minute,
	}

	s := rest.NewServer(app.config.EndpointAddr, app.logger, app.userService, app.taskService, app.config.SecretKey, rl)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "closing db", "error", err)
	}
}
