package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dugoutlabs/pennant/internal/alias"
	"github.com/dugoutlabs/pennant/internal/dataset"
	"github.com/dugoutlabs/pennant/internal/model"
	"github.com/dugoutlabs/pennant/internal/report"
)

var (
	gameHome string
	gameAway string
)

var gameCmd = &cobra.Command{
	Use:   "game",
	Short: "Predict the outcome of a single scheduled matchup",
	RunE: func(cmd *cobra.Command, args []string) error {
		home, err := alias.Resolve(gameHome)
		if err != nil {
			return err
		}
		away, err := alias.Resolve(gameAway)
		if err != nil {
			return err
		}

		fmt.Printf("Predicting %s vs %s...\n", home, away)

		bundle, err := model.LoadBundle(cfg.ModelFile)
		if err != nil {
			return err
		}
		rows, err := dataset.LoadFile(cfg.FeaturesFile)
		if err != nil {
			return err
		}

		_, scheduled := dataset.Split(rows)
		for _, r := range scheduled {
			if r.HomeTeam == home && r.AwayTeam == away {
				report.Matchup(os.Stdout, prediction(bundle, r))
				return nil
			}
		}

		fmt.Println("No scheduled games for those teams.")
		return nil
	},
}

func init() {
	gameCmd.Flags().StringVar(&gameHome, "home", "", "Home team name")
	gameCmd.Flags().StringVar(&gameAway, "away", "", "Away team name")
	gameCmd.MarkFlagRequired("home")
	gameCmd.MarkFlagRequired("away")
}
