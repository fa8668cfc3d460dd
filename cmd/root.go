package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/hatchery/internal/app"
	"github.com/abhisek/hatchery/internal/config"
	"github.com/abhisek/hatchery/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:           "hatchery",
	Short:         "Egg tiers and the daily legendary rotation",
	Long:          "Hatchery inspects eggs and the legendary gacha's daily featured species.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides HATCHERY_DB env var)")
	rootCmd.PersistentFlags().String("env-file", "", "Load environment variables from this file (default .env)")

	rootCmd.AddCommand(legendaryCmd)
	rootCmd.AddCommand(eggCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(rotateCmd)
	rootCmd.AddCommand(versionCmd)
}

// openApp loads configuration, applying --db over the environment, and
// builds the App.
func openApp(cmd *cobra.Command) (*app.App, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	a, err := app.New(cfg, log)
	if err != nil {
		_ = log.Sync()
		return nil, err
	}
	return a, nil
}

// closeApp releases the App and flushes its logger.
func closeApp(a *app.App) {
	if err := a.Close(); err != nil {
		a.Logger.Warn("close app", zap.Error(err))
	}
	_ = a.Logger.Sync()
}

// parseAt resolves a --at flag value: empty means now; otherwise RFC 3339,
// a UTC date (2006-01-02), or Unix milliseconds.
func parseAt(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return now, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.UnixMilli(ms), nil
	}
	return time.Time{}, fmt.Errorf("invalid time %q: want RFC 3339, YYYY-MM-DD or Unix milliseconds", s)
}
