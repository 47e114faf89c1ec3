// Package server initializes and runs the contacts backend: it opens the
// store named by the DSN, runs migrations, and serves the REST API until a
// shutdown signal arrives.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/dmitrijs2005/contactbook/internal/logging"
	"github.com/dmitrijs2005/contactbook/internal/server/config"
	"github.com/dmitrijs2005/contactbook/internal/server/contacts"
	"github.com/dmitrijs2005/contactbook/internal/server/httpapi"
	"github.com/dmitrijs2005/contactbook/internal/server/repomanager"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config  *config.Config
	logger  logging.Logger
	repos   repomanager.RepositoryManager
	service *contacts.Service
	handler http.Handler
}

func NewApp(c *config.Config) (*App, error) {

	// Stdout; the closer has nothing to release.
	slogger, _ := logging.New(logging.Options{
		Level:  c.LogLevel,
		Format: c.LogFormat,
	})
	logger := logging.NewSlogLogger(slogger)

	repos, err := repomanager.New(context.Background(), c.StoreDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	svc := contacts.NewService(repos.Contacts(), logger)
	handler := httpapi.NewRouter(c.EndpointPrefix, svc, logger, metrics.NewSet())

	return &App{config: c, logger: logger, repos: repos, service: svc, handler: handler}, nil
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

// serve accepts connections on l until ctx is cancelled, then drains
// in-flight requests.
func (app *App) serve(ctx context.Context, l net.Listener) error {
	srv := &http.Server{
		Handler:           app.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		app.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(shutdownCtx, "shutdown", "err", err)
		}
	}()

	app.logger.Info(ctx, "Starting HTTP server", "address", l.Addr().String(), "prefix", app.config.EndpointPrefix)

	if err := srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
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
		l, err := net.Listen("tcp", app.config.EndpointAddr)
		if err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
			return
		}
		if err := app.serve(ctx, l); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "close store", "err", err)
	}
}
