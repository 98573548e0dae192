package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dugoutlabs/pennant/internal/dataset"
	"github.com/dugoutlabs/pennant/internal/model"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Fit the win classifier on completed games",
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := dataset.LoadFile(cfg.FeaturesFile)
		if err != nil {
			return err
		}
		completed, _ := dataset.Split(rows)
		if len(completed) == 0 {
			return fmt.Errorf("no completed games in %s", cfg.FeaturesFile)
		}

		X := make([][]float64, len(completed))
		y := make([]int, len(completed))
		for i, r := range completed {
			X[i] = dataset.Predictors(r)
			y[i] = r.Target
		}

		trainX, trainY, testX, testY := model.TrainTestSplit(X, y, cfg.TrainTestSplit, cfg.TrainSeed)

		bundle, err := model.Train(trainX, trainY)
		if err != nil {
			return err
		}

		if len(testX) > 0 {
			acc := model.Accuracy(&bundle.Model, bundle.Scaler.TransformAll(testX), testY)
			log.WithField("accuracy", fmt.Sprintf("%.3f", acc)).
				WithField("train_games", len(trainX)).
				WithField("test_games", len(testX)).
				Info("Held-out evaluation")
		}

		if err := bundle.Save(cfg.ModelFile); err != nil {
			return err
		}
		log.WithField("file", cfg.ModelFile).Info("Model saved")
		return nil
	},
}
