package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/insightedge/insightedge-backend/internal/config"
	"github.com/insightedge/insightedge-backend/internal/provider"
	"github.com/insightedge/insightedge-backend/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the analyst HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		slog.SetDefault(logger)

		cfg := config.Load()

		// Live provider when a token is configured, mock otherwise.
		var gen provider.Generator
		if cfg.APIToken != "" {
			hf, err := provider.NewHF(cfg.APIToken, cfg.Model, cfg.APIBase, cfg.Timeout, logger)
			if err != nil {
				return err
			}
			gen = hf
		} else {
			logger.Warn("HF_API_TOKEN not set, using mock provider")
			gen = provider.Mock{}
		}

		srv := server.New(gen, logger)
		logger.Info("serving", "port", cfg.Port, "model", gen.Model())
		return srv.Router().Run(":" + cfg.Port)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
