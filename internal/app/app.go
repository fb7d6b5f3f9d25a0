// Package app assembles the sudoku service: router, middleware, session
// store and server lifecycle.
package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/sudoku-server/internal/config"
	"github.com/vancomm/sudoku-server/internal/game"
	"github.com/vancomm/sudoku-server/internal/middleware"
)

type App struct {
	logger *logrus.Logger
	router *http.ServeMux
	store  *game.Store
}

func New(logger *logrus.Logger) *App {
	app := &App{
		logger: logger,
		router: http.NewServeMux(),
		store:  game.NewStore(),
	}
	app.loadRoutes()
	return app
}

// Handler returns the fully wrapped route tree, exposed for tests.
func (a *App) Handler() http.Handler {
	return middleware.Wrap(
		a.router,
		middleware.Cors(),
		middleware.Logging(a.logger),
	)
}

// Start serves until the context is cancelled, then shuts down gracefully.
func (a *App) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:    config.Addr(),
		Handler: a.Handler(),
	}

	a.logger.Infof("ready to serve @ %s", server.Addr)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.ListenAndServe()
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
