package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Database   Database   `json:"database" mapstructure:"database"`
	Install    Install    `json:"install" mapstructure:"install"`
	SampleData SampleData `json:"sample_data" mapstructure:"sample_data"`
}

type Database struct {
	URLEnv string `json:"url_env" mapstructure:"url_env"`
}

type Install struct {
	DefaultCollation string `json:"default_collation" mapstructure:"default_collation"`
	Version          string `json:"version" mapstructure:"version"`
}

// SampleData tunes the synthetic review seeding. The defaults mirror the
// original seed content: roughly a quarter of review candidates are skipped
// and ratings land between 4 and 5.
type SampleData struct {
	ReviewSkipModulus int `json:"review_skip_modulus" mapstructure:"review_skip_modulus"`
	ReviewMinRating   int `json:"review_min_rating" mapstructure:"review_min_rating"`
	ReviewMaxRating   int `json:"review_max_rating" mapstructure:"review_max_rating"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// Default returns a config with every field at its default value, without
// touching viper. Used by tests and library callers.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)
	return &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = "MONGODB_URL"
	}
	if cfg.Install.DefaultCollation == "" {
		cfg.Install.DefaultCollation = "en"
	}
	if cfg.Install.Version == "" {
		cfg.Install.Version = "2.2"
	}
	if cfg.SampleData.ReviewSkipModulus == 0 {
		cfg.SampleData.ReviewSkipModulus = 4
	}
	if cfg.SampleData.ReviewMinRating == 0 {
		cfg.SampleData.ReviewMinRating = 4
	}
	if cfg.SampleData.ReviewMaxRating == 0 {
		cfg.SampleData.ReviewMaxRating = 5
	}
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}
