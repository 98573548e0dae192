package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dugoutlabs/pennant/internal/dataset"
	"github.com/dugoutlabs/pennant/internal/model"
	"github.com/dugoutlabs/pennant/internal/report"
	"github.com/dugoutlabs/pennant/internal/simulator"
)

var seasonTrials int

var seasonCmd = &cobra.Command{
	Use:   "season",
	Short: "Monte-Carlo project the final season standings",
	RunE: func(cmd *cobra.Command, args []string) error {
		bundle, err := model.LoadBundle(cfg.ModelFile)
		if err != nil {
			return err
		}
		rows, err := dataset.LoadFile(cfg.FeaturesFile)
		if err != nil {
			return err
		}

		_, scheduled := dataset.Split(rows)
		probs := make([]float64, len(scheduled))
		for i, r := range scheduled {
			probs[i] = bundle.PredictProba(dataset.Predictors(r))
		}

		trials := seasonTrials
		if trials <= 0 {
			trials = cfg.Simulations
		}
		sim := simulator.New(simulator.Config{
			Trials:  trials,
			Workers: cfg.SimulationWorkers,
			Seed:    cfg.SimulationSeed,
		})

		standings, err := sim.Run(rows, probs)
		if errors.Is(err, simulator.ErrNoScheduledGames) {
			fmt.Println("No upcoming games found in this feature file.")
			return nil
		}
		if err != nil {
			return err
		}

		report.Standings(os.Stdout, standings)
		return nil
	},
}

func init() {
	seasonCmd.Flags().IntVar(&seasonTrials, "trials", 0, "Number of simulation trials (default from config)")
}
