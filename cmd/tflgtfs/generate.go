package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tidbyt.dev/tflgtfs/config"
	"tidbyt.dev/tflgtfs/downloader"
	"tidbyt.dev/tflgtfs/feed"
	"tidbyt.dev/tflgtfs/storage"
	"tidbyt.dev/tflgtfs/tfl"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Fetches the TfL network and writes the GTFS feed",
	Args:  cobra.NoArgs,
	RunE:  generate,
}

var (
	output      string
	format      string
	postgresDSN string
)

func init() {
	generateCmd.Flags().StringVarP(&output, "output", "o", "", "Output directory (csv) or database path (sqlite)")
	generateCmd.Flags().StringVarP(&format, "format", "f", "", "Output format: csv, sqlite or postgres")
	generateCmd.Flags().StringVarP(&postgresDSN, "postgres-dsn", "", "", "Postgres DSN (format=postgres)")
	rootCmd.AddCommand(generateCmd)
}

func newFeedWriter(cfg config.FeedConfig) (storage.FeedWriter, error) {
	switch cfg.Format {
	case "csv":
		return storage.NewCSVWriter(cfg.Output)
	case "sqlite":
		return storage.NewSQLiteWriter(cfg.Output)
	case "postgres":
		if cfg.PostgresDSN == "" {
			return nil, fmt.Errorf("format=postgres requires a postgres DSN")
		}
		return storage.NewPostgresWriter(cfg.PostgresDSN)
	}
	return nil, fmt.Errorf("unknown format '%s'", cfg.Format)
}

func generate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if output != "" {
		cfg.Feed.Output = output
	}
	if format != "" {
		cfg.Feed.Format = format
	}
	if postgresDSN != "" {
		cfg.Feed.PostgresDSN = postgresDSN
	}
	if cfg.Feed.Format == "" {
		cfg.Feed.Format = "csv"
	}
	if cfg.Feed.Output == "" {
		if cfg.Feed.Format == "sqlite" {
			cfg.Feed.Output = "gtfs.db"
		} else {
			cfg.Feed.Output = "gtfs"
		}
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer logger.Sync()

	cache, err := downloader.NewFilesystem(cfg.API.CachePath)
	if err != nil {
		return fmt.Errorf("creating response cache: %w", err)
	}

	client := tfl.NewClient(cfg.API.AppID, cfg.API.AppKey, cache)
	if cfg.API.BaseURL != "" {
		client.BaseURL = cfg.API.BaseURL
	}

	lines, err := tfl.Fetch(context.Background(), logger, client, cfg.API.Workers)
	if err != nil {
		return err
	}

	feed.Summarize(lines).Log(logger)

	writer, err := newFeedWriter(cfg.Feed)
	if err != nil {
		return err
	}

	if err := feed.Generate(logger, writer, lines); err != nil {
		return err
	}

	logger.Info("feed written",
		zap.String("format", cfg.Feed.Format),
		zap.String("output", cfg.Feed.Output))
	return nil
}
