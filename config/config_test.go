package config

import (
	"strings"
	"testing"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/mww/starter_optimizer/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKeys = []string{
	"PORT", "LOG_LEVEL", "LOG_FORMAT", "PLATFORM", "LEAGUE_ID", "TEAM_ID", "SEASON",
	"STARTING_SLOTS", "ESPN_S2", "ESPN_SWID", "SLEEPER_SCORING", "POSTGRES_CONN_STR",
	"LOG_CSV_PATH", "REDIS_URL", "CACHE_TTL", "EXTERNAL_API_TIMEOUT",
	"CIRCUIT_BREAKER_THRESHOLD", "WEEKLY_LOG_SCHEDULE",
}

// clearEnv makes sure nothing from the environment running the tests leaks
// in. Empty variables count as unset.
func clearEnv(t *testing.T) {
	for _, k := range allKeys {
		t.Setenv(k, "")
	}
}

func testClock() clock.Clock {
	clk := clock.NewMock()
	clk.Set(time.Date(2025, time.October, 5, 12, 0, 0, 0, time.UTC))
	return clk
}

func TestLoad_defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(testClock())
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, model.PlatformESPN, cfg.Platform)
	assert.Equal(t, 1, cfg.TeamID)
	assert.Equal(t, 2025, cfg.Season)
	assert.Equal(t, "pts_ppr", cfg.SleeperScoring)
	assert.Equal(t, "weekly_log.csv", cfg.LogCSVPath)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 30*time.Second, cfg.ExternalAPITimeout)
	assert.Equal(t, 5, cfg.CircuitBreakerThreshold)
	assert.Empty(t, cfg.WeeklyLogSchedule)
	assert.Equal(t, model.DefaultSlots(), cfg.Slots())

	// No league or credentials yet.
	assert.Error(t, cfg.Validate())
}

func TestLoad_environment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("PLATFORM", " Sleeper ")
	t.Setenv("LEAGUE_ID", "784462448236363776")
	t.Setenv("TEAM_ID", "4")
	t.Setenv("SEASON", "2024")
	t.Setenv("STARTING_SLOTS", "QB:1,RB:2,WR:3,TE:1,FLEX:2,K:0")
	t.Setenv("CACHE_TTL", "90s")
	t.Setenv("WEEKLY_LOG_SCHEDULE", "0 12 * * 4")

	cfg, err := Load(testClock())
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 90*time.Second, cfg.CacheTTL)
	assert.Equal(t, model.League{
		Platform:   model.PlatformSleeper,
		ExternalID: "784462448236363776",
		TeamID:     4,
		Season:     2024,
	}, cfg.League())
	assert.Equal(t, "QB:1,RB:2,WR:3,TE:1,FLEX:2,K:0", model.FormatSlotCounts(cfg.Slots()))
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:                    3000,
			LogLevel:                "info",
			LogFormat:               "text",
			Platform:                model.PlatformESPN,
			LeagueID:                "123456",
			TeamID:                  1,
			Season:                  2025,
			StartingSlots:           "QB:1,RB:2",
			ESPNS2:                  "s2",
			ESPNSWID:                "{SWID}",
			LogCSVPath:              "weekly_log.csv",
			CacheTTL:                time.Minute,
			ExternalAPITimeout:      time.Second,
			CircuitBreakerThreshold: 3,
		}
	}

	tests := map[string]struct {
		change  func(c *Config)
		wantErr string
	}{
		"valid":               {change: func(c *Config) {}},
		"sleeper needs no s2": {change: func(c *Config) { c.Platform = model.PlatformSleeper; c.ESPNS2 = "" }},
		"bad port":            {change: func(c *Config) { c.Port = 0 }, wantErr: "PORT"},
		"bad level":           {change: func(c *Config) { c.LogLevel = "loud" }, wantErr: "LOG_LEVEL"},
		"bad format":          {change: func(c *Config) { c.LogFormat = "xml" }, wantErr: "LOG_FORMAT"},
		"unknown platform":    {change: func(c *Config) { c.Platform = "yahoo" }, wantErr: "PLATFORM"},
		"missing league":      {change: func(c *Config) { c.LeagueID = "" }, wantErr: "LEAGUE_ID"},
		"bad team":            {change: func(c *Config) { c.TeamID = 0 }, wantErr: "TEAM_ID"},
		"bad season":          {change: func(c *Config) { c.Season = 25 }, wantErr: "SEASON"},
		"missing swid":        {change: func(c *Config) { c.ESPNSWID = "" }, wantErr: "ESPN_S2 and ESPN_SWID"},
		"bad slots":           {change: func(c *Config) { c.StartingSlots = "QB=1" }, wantErr: "STARTING_SLOTS"},
		"empty slots":         {change: func(c *Config) { c.StartingSlots = "" }, wantErr: "STARTING_SLOTS"},
		"no storage":          {change: func(c *Config) { c.LogCSVPath = "" }, wantErr: "POSTGRES_CONN_STR"},
		"negative ttl":        {change: func(c *Config) { c.CacheTTL = -time.Second }, wantErr: "CACHE_TTL"},
		"no timeout":          {change: func(c *Config) { c.ExternalAPITimeout = 0 }, wantErr: "EXTERNAL_API_TIMEOUT"},
		"no threshold":        {change: func(c *Config) { c.CircuitBreakerThreshold = 0 }, wantErr: "CIRCUIT_BREAKER_THRESHOLD"},
		"bad schedule":        {change: func(c *Config) { c.WeeklyLogSchedule = "every week" }, wantErr: "WEEKLY_LOG_SCHEDULE"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			c := valid()
			tc.change(c)
			err := c.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.True(t, strings.Contains(err.Error(), tc.wantErr), "error %q should mention %s", err, tc.wantErr)
			}
		})
	}
}

func TestValidate_reportsEverything(t *testing.T) {
	c := &Config{Platform: "yahoo", LogFormat: "xml"}
	err := c.Validate()
	require.Error(t, err)

	for _, key := range []string{"PORT", "LOG_FORMAT", "PLATFORM", "LEAGUE_ID", "TEAM_ID", "STARTING_SLOTS"} {
		assert.Contains(t, err.Error(), key)
	}
}

func TestDefaultSeason(t *testing.T) {
	tests := map[string]struct {
		now  time.Time
		want int
	}{
		"september":       {now: time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC), want: 2025},
		"playoffs":        {now: time.Date(2026, time.January, 20, 0, 0, 0, 0, time.UTC), want: 2025},
		"super bowl":      {now: time.Date(2026, time.February, 8, 0, 0, 0, 0, time.UTC), want: 2025},
		"offseason march": {now: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), want: 2026},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := DefaultSeason(tc.now); got != tc.want {
				t.Errorf("expected %d, got %d", tc.want, got)
			}
		})
	}
}
