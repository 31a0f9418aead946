package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
	"github.com/namsral/flag"

	"github.com/surfjournal/backend/config"
	_ "github.com/surfjournal/backend/docs"
	"github.com/surfjournal/backend/internal/app"
)

var (
	flConfig = flag.String("config", "config.toml", "path to TOML configuration file")
	flDebug  = flag.Bool("debug", false, "enable debug mode")
	flMock   = flag.Bool("mock", true, "serve reads from in-process sample data")
	cfg      config.Config
	lg       *slog.Logger
)

// @title Surf Journal API
// @version 1.0
// @description Content API for the surf journal
// @host localhost:3000
// @BasePath /

func main() {
	flag.Parse()

	lg = newLogger(*flDebug)

	meta, err := toml.DecodeFile(*flConfig, &cfg)
	if err != nil {
		exitOnError(err)
	}

	mockSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "mock" {
			mockSet = true
		}
	})
	cfg.ApplyMockMode(meta, mockSet, *flMock)

	var db *pg.DB
	if cfg.Mock.Enabled {
		lg.Info("mock mode enabled, running without a database")
	} else {
		db = pg.Connect(&cfg.Database)
		if err := db.Ping(context.Background()); err != nil {
			db.Close()
			exitOnError(err)
		}
	}

	service := app.New(&cfg, db, lg, *flDebug)
	ctx := context.Background()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(ctx, cfg.App.Port)
		if err != nil {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = service.GracefulShutdown(shutdownCtx)
	if err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}
}

func newLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}
