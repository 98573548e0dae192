package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dugoutlabs/pennant/pkg/config"
	"github.com/dugoutlabs/pennant/pkg/logger"
)

var (
	cfg *config.Config
	log *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:           "pennant",
	Short:         "MLB game-outcome prediction pipeline",
	Long:          "pennant builds leak-free features from a season schedule, trains a win classifier, and projects games and standings.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		log = logger.InitLogger(cfg.LogLevel, cfg.IsDevelopment())
		return nil
	},
}

func main() {
	rootCmd.AddCommand(featuresCmd)
	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(dayCmd)
	rootCmd.AddCommand(gameCmd)
	rootCmd.AddCommand(seasonCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
