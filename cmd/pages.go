package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/uiakraken/kraken/internal/config"
	"github.com/uiakraken/kraken/internal/feed"
	"github.com/uiakraken/kraken/internal/logging"
	"github.com/uiakraken/kraken/internal/tui"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if flagData != "" {
		cfg.Data = flagData
	}
	return cfg, nil
}

func logLevel(cfg *config.Config) string {
	if flagLogLevel != "" {
		return flagLogLevel
	}
	return cfg.Log.Level
}

func runPage(cmd *cobra.Command, page, slug, handle string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := logging.File(cfg, logLevel(cfg))
	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}
	defer closer.Close()
	slog.SetDefault(logger)

	loader, err := feed.FromConfig(cfg, logger)
	if err != nil {
		return fmt.Errorf("feed source: %w", err)
	}

	logger.Info("starting", "page", page, "data", cfg.Data, "version", version)
	return tui.Run(tui.RunOpts{
		Cfg:    cfg,
		Loader: loader,
		Logger: logger,
		Page:   page,
		Slug:   slug,
		Handle: handle,
		Tab:    flagTab,
	})
}
