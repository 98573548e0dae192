package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	// Environment
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Data artifacts
	ScheduleFile string `mapstructure:"SCHEDULE_FILE"`
	FeaturesFile string `mapstructure:"FEATURES_FILE"`
	CacheFile    string `mapstructure:"CACHE_FILE"`
	ModelFile    string `mapstructure:"MODEL_FILE"`

	// Season
	Season string `mapstructure:"SEASON"`

	// External stats API
	StatsAPIBaseURL  string        `mapstructure:"STATS_API_BASE_URL"`
	StatsAPITimeout  time.Duration `mapstructure:"STATS_API_TIMEOUT"`
	StatsAPIRPS      float64       `mapstructure:"STATS_API_RPS"`
	BreakerThreshold int           `mapstructure:"CIRCUIT_BREAKER_THRESHOLD"`

	// Simulation
	Simulations       int   `mapstructure:"SIMULATIONS"`
	SimulationWorkers int   `mapstructure:"SIMULATION_WORKERS"`
	SimulationSeed    int64 `mapstructure:"SIMULATION_SEED"`

	// Training
	TrainTestSplit float64 `mapstructure:"TRAIN_TEST_SPLIT"`
	TrainSeed      int64   `mapstructure:"TRAIN_SEED"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	// Set defaults
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "")
	viper.SetDefault("SCHEDULE_FILE", "data/mlb-2025-asplayed.csv")
	viper.SetDefault("FEATURES_FILE", "data/mlb_features.csv")
	viper.SetDefault("CACHE_FILE", "data/pitcher_stats_cache.json")
	viper.SetDefault("MODEL_FILE", "models/classifier.gob")
	viper.SetDefault("SEASON", "2025")
	viper.SetDefault("STATS_API_BASE_URL", "https://statsapi.mlb.com")
	viper.SetDefault("STATS_API_TIMEOUT", "10s")
	viper.SetDefault("STATS_API_RPS", 5.0)
	viper.SetDefault("CIRCUIT_BREAKER_THRESHOLD", 5)
	viper.SetDefault("SIMULATIONS", 1000)
	viper.SetDefault("SIMULATION_WORKERS", 4)
	viper.SetDefault("SIMULATION_SEED", 0) // 0 = time-based
	viper.SetDefault("TRAIN_TEST_SPLIT", 0.2)
	viper.SetDefault("TRAIN_SEED", 42)

	// Read from environment
	viper.AutomaticEnv()

	// Read config file if exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &config, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
