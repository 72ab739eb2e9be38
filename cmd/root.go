package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lenderdesk/docsift/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "docsift",
	Short: "Structured field extraction from scanned mortgage documents",
	Long:  "Classifies scanned mortgage documents, extracts schema-driven fields via Claude vision, assesses field quality, and retries weak fields.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
