// Command seed replaces the catalogue with the sample exhibitions and artworks.
package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/exhibitions/internal/config"
	"github.com/exhibitions/internal/db"
	"github.com/exhibitions/internal/logging"
	"github.com/exhibitions/internal/seed"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadEnvFile(".env"); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	gdb, err := db.Open(db.Options{
		Driver: cfg.DatabaseDriver,
		Path:   cfg.DatabasePath,
		DSN:    cfg.DatabaseURL,
		Logger: logging.NewGormLogger(logger),
	})
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	if sqlDB, err := gdb.DB(); err == nil {
		defer sqlDB.Close()
	}

	report, err := seed.Seed(context.Background(), gdb, seed.Config{
		UploadsBaseURL: cfg.UploadsBaseURL,
		Logger:         logger,
	})
	if err != nil {
		return err
	}

	logger.Info().
		Int("exhibitions", report.Exhibitions).
		Int("artworks", report.Artworks).
		Int64("active", report.Stats.Active).
		Int64("upcoming", report.Stats.Upcoming).
		Int64("past", report.Stats.Past).
		Msg("seed complete")

	categories := make([]string, 0, len(report.Stats.ByCategory))
	for category := range report.Stats.ByCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	for _, category := range categories {
		logger.Info().Str("category", category).Int64("count", report.Stats.ByCategory[category]).Msg("category total")
	}
	return nil
}
