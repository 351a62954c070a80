package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tidbyt.dev/tflgtfs/config"
)

var rootCmd = &cobra.Command{
	Use:          "tflgtfs",
	Short:        "TfL to GTFS feed generator",
	Long:         "Derives a GTFS static feed from the TfL Unified API",
	SilenceUsage: true,
}

var (
	configPath string
	baseURL    string
	appID      string
	appKey     string
	cachePath  string
	workers    int
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "", "config.yml", "Config file path")
	rootCmd.PersistentFlags().StringVarP(&baseURL, "base-url", "", "", "TfL API base URL")
	rootCmd.PersistentFlags().StringVarP(&appID, "app-id", "", "", "TfL API application id")
	rootCmd.PersistentFlags().StringVarP(&appKey, "app-key", "", "", "TfL API application key")
	rootCmd.PersistentFlags().StringVarP(&cachePath, "cache", "", "tfl-cache.json", "API response cache file")
	rootCmd.PersistentFlags().IntVarP(&workers, "workers", "", 0, "Concurrent line fetches (0 for default)")
}

// loadConfig reads the config file and layers set flags on top.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}

	if baseURL != "" {
		cfg.API.BaseURL = baseURL
	}
	if appID != "" {
		cfg.API.AppID = appID
	}
	if appKey != "" {
		cfg.API.AppKey = appKey
	}
	if cachePath != "" {
		cfg.API.CachePath = cachePath
	}
	if workers > 0 {
		cfg.API.Workers = workers
	}

	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
