package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dugoutlabs/pennant/internal/dataset"
	"github.com/dugoutlabs/pennant/internal/features"
	"github.com/dugoutlabs/pennant/internal/model"
	"github.com/dugoutlabs/pennant/internal/report"
)

var dayDate string

var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "Predict all games on a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := time.Parse("2006-01-02", dayDate)
		if err != nil {
			return fmt.Errorf("invalid --date %q (want YYYY-MM-DD): %w", dayDate, err)
		}

		bundle, err := model.LoadBundle(cfg.ModelFile)
		if err != nil {
			return err
		}
		rows, err := dataset.LoadFile(cfg.FeaturesFile)
		if err != nil {
			return err
		}

		var preds []report.Prediction
		for _, r := range rows {
			if !r.Date.Equal(date) {
				continue
			}
			preds = append(preds, prediction(bundle, r))
		}

		report.Day(os.Stdout, date, preds)
		return nil
	},
}

func init() {
	dayCmd.Flags().StringVar(&dayDate, "date", time.Now().Format("2006-01-02"), "Date in format YYYY-MM-DD")
}

func prediction(bundle *model.Bundle, r features.Row) report.Prediction {
	return report.Prediction{
		Date:        r.Date,
		HomeTeam:    r.HomeTeam,
		AwayTeam:    r.AwayTeam,
		HomeStarter: r.HomeStarter,
		AwayStarter: r.AwayStarter,
		HomeWinProb: bundle.PredictProba(dataset.Predictors(r)),
	}
}
