package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
	"github.com/namsral/flag"

	"github.com/surfjournal/backend/config"
	"github.com/surfjournal/backend/internal/db"
	"github.com/surfjournal/backend/internal/ingest"
	"github.com/surfjournal/backend/internal/surfjournal"
)

var (
	flConfig   = flag.String("config", "config.toml", "path to TOML configuration file")
	flFeed     = flag.String("feed", "", "RSS/Atom feed URL to import")
	flCategory = flag.Int("category", 0, "category id for imported drafts")
	flAuthor   = flag.Int("author", 0, "author id for imported drafts")
)

func main() {
	flag.Parse()

	lg := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if *flFeed == "" || *flCategory < 1 || *flAuthor < 1 {
		lg.Error("feed, category and author are required")
		os.Exit(1)
	}

	var cfg config.Config
	if _, err := toml.DecodeFile(*flConfig, &cfg); err != nil {
		lg.Error("failed to read config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbConnect := pg.Connect(&cfg.Database)
	defer dbConnect.Close()
	if err := dbConnect.Ping(ctx); err != nil {
		lg.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	manager := surfjournal.NewManager(db.New(dbConnect), lg, cfg.CacheTTL())

	created, err := ingest.New(manager, lg).Run(ctx, *flFeed, *flCategory, *flAuthor)
	if err != nil {
		lg.Error("import failed", "error", err)
		os.Exit(1)
	}

	lg.Info("import finished", "created", created)
}
