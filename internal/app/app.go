package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"

	"github.com/surfjournal/backend/config"
	"github.com/surfjournal/backend/internal/db"
	"github.com/surfjournal/backend/internal/rest"
	"github.com/surfjournal/backend/internal/rpc"
	"github.com/surfjournal/backend/internal/surfjournal"
)

type App struct {
	DB     *db.Repository
	Logger *slog.Logger
	Echo   *echo.Echo
	Config *config.Config
}

// New wires the service. dbConnect may be nil (mock mode without a
// database); the REST layer then serves everything from sample data and the
// RPC endpoint is not mounted.
func New(cfg *config.Config, dbConnect *pg.DB, logger *slog.Logger, debug bool) *App {
	var (
		database *db.Repository
		manager  *surfjournal.Manager
	)

	if dbConnect != nil {
		database = db.New(dbConnect)
		manager = surfjournal.NewManager(database, logger, cfg.CacheTTL())
	}

	handler := rest.NewNewsHandler(manager, logger, rest.Options{
		MockMode: cfg.Mock.Enabled,
		Debug:    debug,
	})

	e := handler.RegisterRoutes()

	if manager != nil {
		rpcServer := rpc.New(logger, manager)
		e.Any("/rpc", echo.WrapHandler(rpcServer))
	}

	return &App{
		DB:     database,
		Logger: logger,
		Echo:   e,
		Config: cfg,
	}
}

func (a *App) Run(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
