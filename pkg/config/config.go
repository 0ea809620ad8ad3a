package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	// Runtime
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// League shape
	Season          string `mapstructure:"SEASON"`
	TeamCount       int    `mapstructure:"TEAM_COUNT"`
	RosterSize      int    `mapstructure:"ROSTER_SIZE"`
	DraftPosition   int    `mapstructure:"DRAFT_POSITION"`
	StrictPositions bool   `mapstructure:"STRICT_POSITIONS"`

	// Player pool source
	PoolFile      string `mapstructure:"POOL_FILE"`
	SyntheticPool int    `mapstructure:"SYNTHETIC_POOL"`

	// Suggestion weights
	RawValueWeight float64 `mapstructure:"RAW_VALUE_WEIGHT"`
	ScarcityWeight float64 `mapstructure:"SCARCITY_WEIGHT"`
	NeedWeight     float64 `mapstructure:"NEED_WEIGHT"`
	ADPWeight      float64 `mapstructure:"ADP_WEIGHT"`
	PuntThreshold  float64 `mapstructure:"PUNT_THRESHOLD"`
	MaxSuggestions int     `mapstructure:"MAX_SUGGESTIONS"`

	// AI opponents
	AISeed   int64   `mapstructure:"AI_SEED"`
	AIJitter float64 `mapstructure:"AI_JITTER"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	// Set defaults
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "")
	viper.SetDefault("SEASON", "2024-25")
	viper.SetDefault("TEAM_COUNT", 12)
	viper.SetDefault("ROSTER_SIZE", 13)
	viper.SetDefault("DRAFT_POSITION", 1)
	viper.SetDefault("STRICT_POSITIONS", false)
	viper.SetDefault("POOL_FILE", "")
	viper.SetDefault("SYNTHETIC_POOL", 200)
	viper.SetDefault("RAW_VALUE_WEIGHT", 1.0)
	viper.SetDefault("SCARCITY_WEIGHT", 2.0)
	viper.SetDefault("NEED_WEIGHT", 1.5)
	viper.SetDefault("ADP_WEIGHT", 0.05)
	viper.SetDefault("PUNT_THRESHOLD", 0.5)
	viper.SetDefault("MAX_SUGGESTIONS", 5)
	viper.SetDefault("AI_SEED", 1)
	viper.SetDefault("AI_JITTER", 0.1)

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

	if config.TeamCount < 2 {
		return nil, fmt.Errorf("TEAM_COUNT must be at least 2, got %d", config.TeamCount)
	}
	if config.RosterSize < 1 {
		return nil, fmt.Errorf("ROSTER_SIZE must be positive, got %d", config.RosterSize)
	}
	if config.DraftPosition < 1 || config.DraftPosition > config.TeamCount {
		return nil, fmt.Errorf("DRAFT_POSITION must be within 1..%d, got %d", config.TeamCount, config.DraftPosition)
	}

	return &config, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
