package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/dugoutlabs/pennant/internal/dataset"
	"github.com/dugoutlabs/pennant/internal/features"
	"github.com/dugoutlabs/pennant/internal/names"
	"github.com/dugoutlabs/pennant/internal/providers"
	"github.com/dugoutlabs/pennant/internal/schedule"
	"github.com/dugoutlabs/pennant/internal/statcache"
)

var featuresCmd = &cobra.Command{
	Use:   "features",
	Short: "Build the feature table from the season schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		games, err := schedule.LoadCSV(cfg.ScheduleFile)
		if err != nil {
			return err
		}
		log.WithField("games", len(games)).Info("Loaded schedule")

		client := providers.NewStatsAPIClient(
			cfg.StatsAPIBaseURL, cfg.StatsAPITimeout, cfg.StatsAPIRPS, cfg.BreakerThreshold)

		cache, err := statcache.New(cfg.CacheFile, cfg.Season, client)
		if err != nil {
			return err
		}

		// Schedule feeds occasionally mangle accented starter names;
		// repair them before they become cache keys.
		fixer := names.NewFixer(client)
		for i := range games {
			if games[i].HomeStarter != "" {
				games[i].HomeStarter = fixer.Fix(ctx, games[i].Home, games[i].HomeStarter)
			}
			if games[i].AwayStarter != "" {
				games[i].AwayStarter = fixer.Fix(ctx, games[i].Away, games[i].AwayStarter)
			}
		}

		rows := features.NewEngine(cache).Run(ctx, games)

		if err := dataset.WriteFile(cfg.FeaturesFile, rows); err != nil {
			return err
		}

		hits, misses := cache.Stats()
		log.WithField("cache_hits", hits).
			WithField("cache_misses", misses).
			WithField("rows", len(rows)).
			WithField("file", cfg.FeaturesFile).
			Info("Feature table written")
		return nil
	},
}
