package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/urfave/cli"

	"github.com/cedab23/blueprints/internal/config"
	"github.com/cedab23/blueprints/internal/database"
)

var migrateCmd = cli.Command{
	Name:  "migrate",
	Usage: "manage the database schema",
	Subcommands: []cli.Command{
		{
			Name:   "up",
			Usage:  "apply all pending migrations",
			Action: migrateAction("up", database.Migrate),
		},
		{
			Name:   "down",
			Usage:  "roll back every migration, dropping all blueprint data",
			Action: migrateAction("down", database.Rollback),
		},
	},
}

func migrateAction(direction string, run func(*pgxpool.Pool) (int, error)) func(*cli.Context) error {
	return func(_ *cli.Context) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
		setupLogger(cfg.LogLevel)

		if cfg.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required to run migrations")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		db, err := database.New(ctx, cfg.DatabaseURL, 1)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer db.Close()

		n, err := run(db.Pool())
		if err != nil {
			return err
		}
		slog.Info("migrations complete", "direction", direction, "count", n)
		return nil
	}
}
