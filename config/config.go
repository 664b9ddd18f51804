// Package config loads the app settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"
	"github.com/mww/starter_optimizer/model"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	// Server
	Port int `mapstructure:"PORT"`

	// Logging
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	// League
	Platform      string `mapstructure:"PLATFORM"`
	LeagueID      string `mapstructure:"LEAGUE_ID"`
	TeamID        int    `mapstructure:"TEAM_ID"`
	Season        int    `mapstructure:"SEASON"`
	StartingSlots string `mapstructure:"STARTING_SLOTS"`

	// Platform credentials and settings
	ESPNS2         string `mapstructure:"ESPN_S2"`
	ESPNSWID       string `mapstructure:"ESPN_SWID"`
	SleeperScoring string `mapstructure:"SLEEPER_SCORING"`

	// Storage, the CSV log is used when no postgres connection is set
	PostgresConnStr string `mapstructure:"POSTGRES_CONN_STR"`
	LogCSVPath      string `mapstructure:"LOG_CSV_PATH"`

	// Upstream calls, an in-memory cache is used when no redis url is set
	RedisURL                string        `mapstructure:"REDIS_URL"`
	CacheTTL                time.Duration `mapstructure:"CACHE_TTL"`
	ExternalAPITimeout      time.Duration `mapstructure:"EXTERNAL_API_TIMEOUT"`
	CircuitBreakerThreshold int           `mapstructure:"CIRCUIT_BREAKER_THRESHOLD"`

	// Standard cron spec, empty disables the scheduled weekly log
	WeeklyLogSchedule string `mapstructure:"WEEKLY_LOG_SCHEDULE"`
}

// Load reads the .env file, if there is one, and the environment. The clock
// picks the default season.
func Load(clock clock.Clock) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	v.SetDefault("PORT", 3000)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("PLATFORM", model.PlatformESPN)
	v.SetDefault("LEAGUE_ID", "")
	v.SetDefault("TEAM_ID", 1)
	v.SetDefault("SEASON", DefaultSeason(clock.Now()))
	v.SetDefault("STARTING_SLOTS", model.FormatSlotCounts(model.DefaultSlots()))
	v.SetDefault("ESPN_S2", "")
	v.SetDefault("ESPN_SWID", "")
	v.SetDefault("SLEEPER_SCORING", "pts_ppr")
	v.SetDefault("POSTGRES_CONN_STR", "")
	v.SetDefault("LOG_CSV_PATH", "weekly_log.csv")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("CACHE_TTL", "5m")
	v.SetDefault("EXTERNAL_API_TIMEOUT", "30s")
	v.SetDefault("CIRCUIT_BREAKER_THRESHOLD", 5)
	v.SetDefault("WEEKLY_LOG_SCHEDULE", "")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	cfg.Platform = strings.ToLower(strings.TrimSpace(cfg.Platform))
	cfg.LeagueID = strings.TrimSpace(cfg.LeagueID)
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))

	return &cfg, nil
}

// DefaultSeason is the NFL season in progress at now. January and February
// games belong to the season that started the year before.
func DefaultSeason(now time.Time) int {
	if now.Month() <= time.February {
		return now.Year() - 1
	}
	return now.Year()
}

// Validate reports every problem with the config at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port))
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.LogFormat))
	}

	if !model.IsPlatformSupported(c.Platform) {
		errs = append(errs, fmt.Errorf("PLATFORM %q is not supported, use %s or %s", c.Platform, model.PlatformESPN, model.PlatformSleeper))
	}
	if c.LeagueID == "" {
		errs = append(errs, errors.New("LEAGUE_ID is required"))
	}
	if c.TeamID < 1 {
		errs = append(errs, fmt.Errorf("TEAM_ID must be at least 1, got %d", c.TeamID))
	}
	if c.Season < 2000 {
		errs = append(errs, fmt.Errorf("SEASON looks wrong: %d", c.Season))
	}
	if c.Platform == model.PlatformESPN && (c.ESPNS2 == "" || c.ESPNSWID == "") {
		errs = append(errs, errors.New("ESPN_S2 and ESPN_SWID are required for private espn leagues"))
	}

	if slots, err := model.ParseSlotCounts(c.StartingSlots); err != nil {
		errs = append(errs, fmt.Errorf("STARTING_SLOTS: %w", err))
	} else if len(slots) == 0 {
		errs = append(errs, errors.New("STARTING_SLOTS must list at least one slot"))
	}

	if c.PostgresConnStr == "" && c.LogCSVPath == "" {
		errs = append(errs, errors.New("either POSTGRES_CONN_STR or LOG_CSV_PATH must be set"))
	}
	if c.CacheTTL < 0 {
		errs = append(errs, fmt.Errorf("CACHE_TTL must not be negative, got %s", c.CacheTTL))
	}
	if c.ExternalAPITimeout <= 0 {
		errs = append(errs, fmt.Errorf("EXTERNAL_API_TIMEOUT must be positive, got %s", c.ExternalAPITimeout))
	}
	if c.CircuitBreakerThreshold < 1 {
		errs = append(errs, fmt.Errorf("CIRCUIT_BREAKER_THRESHOLD must be at least 1, got %d", c.CircuitBreakerThreshold))
	}
	if c.WeeklyLogSchedule != "" {
		if _, err := cron.ParseStandard(c.WeeklyLogSchedule); err != nil {
			errs = append(errs, fmt.Errorf("WEEKLY_LOG_SCHEDULE: %w", err))
		}
	}

	return errors.Join(errs...)
}

// Slots are the configured default starting slots. Call Validate first.
func (c *Config) Slots() []model.SlotCount {
	slots, err := model.ParseSlotCounts(c.StartingSlots)
	if err != nil || len(slots) == 0 {
		return model.DefaultSlots()
	}
	return slots
}

func (c *Config) League() model.League {
	return model.League{
		Platform:   c.Platform,
		ExternalID: c.LeagueID,
		TeamID:     c.TeamID,
		Season:     c.Season,
	}
}
