package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"lifestream/internal/config"
	"lifestream/internal/lib/logger/sl"

	"github.com/jackc/pgx/v4/pgxpool"
)

// main applies every pending .sql file from migrations/ in name order,
// tracking applied ones in schema_migrations.
func main() {
	cfg := config.MustLoad()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	ctx := context.Background()

	pool, err := pgxpool.Connect(ctx, cfg.DSN)
	if err != nil {
		log.Error("connect failed", sl.Err(err))
		os.Exit(1)
	}
	defer pool.Close()

	dir := findMigrationDir()

	if _, err := pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		name TEXT PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`); err != nil {
		log.Error("create schema_migrations failed", sl.Err(err))
		os.Exit(1)
	}

	applied := 0
	for _, filename := range collectSQLFiles(log, dir) {
		name := strings.TrimSuffix(filename, ".sql")

		var exists bool
		if err := pool.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE name=$1)", name).Scan(&exists); err != nil {
			log.Error("check migration failed", slog.String("migration", name), sl.Err(err))
			os.Exit(1)
		}
		if exists {
			continue
		}

		sql, err := os.ReadFile(filepath.Join(dir, filename))
		if err != nil {
			log.Error("read migration failed", slog.String("migration", name), sl.Err(err))
			os.Exit(1)
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			log.Error("migration failed", slog.String("migration", name), sl.Err(err))
			os.Exit(1)
		}
		if _, err := pool.Exec(ctx, "INSERT INTO schema_migrations (name) VALUES ($1)", name); err != nil {
			log.Error("record migration failed", slog.String("migration", name), sl.Err(err))
			os.Exit(1)
		}

		applied++
		log.Info("migration completed", slog.String("migration", name))
	}

	if applied == 0 {
		log.Info("all migrations already applied")
	} else {
		log.Info("migrations completed", slog.Int("count", applied))
	}
}

func findMigrationDir() string {
	dir := "migrations"
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		dir = "../migrations"
	}
	return dir
}

func collectSQLFiles(log *slog.Logger, dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Error("read migrations dir failed", sl.Err(err))
		os.Exit(1)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	return files
}
