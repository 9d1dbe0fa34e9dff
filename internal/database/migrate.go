package database

import (
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	migrate "github.com/rubenv/sql-migrate"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

var migrationSource = &migrate.EmbedFileSystemMigrationSource{
	FileSystem: migrationFiles,
	Root:       "migrations",
}

// Migrate applies all pending schema migrations and returns how many ran.
func Migrate(pool *pgxpool.Pool) (int, error) {
	return execMigrations(pool, migrate.Up)
}

// Rollback runs every migration in reverse, dropping all tables.
func Rollback(pool *pgxpool.Pool) (int, error) {
	return execMigrations(pool, migrate.Down)
}

func execMigrations(pool *pgxpool.Pool, dir migrate.MigrationDirection) (int, error) {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	n, err := migrate.Exec(db, "postgres", migrationSource, dir)
	if err != nil {
		return n, fmt.Errorf("running migrations: %w", err)
	}
	return n, nil
}
