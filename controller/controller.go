package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/itbasis/go-clock"
	"github.com/mww/starter_optimizer/db"
	"github.com/mww/starter_optimizer/logger"
	"github.com/mww/starter_optimizer/model"
	"github.com/mww/starter_optimizer/platforms/espn"
	"github.com/mww/starter_optimizer/platforms/sleeper"
	"github.com/sirupsen/logrus"
)

var ErrUnsupportedPlatform = errors.New("unsupported platform")

// LineupRequest picks the team, week and starting slots to optimize.
type LineupRequest struct {
	League model.League
	// 0 means the current week on the platform.
	Week int
	// Nil means the slots from the league settings, falling back to the
	// configured defaults when the platform doesn't have them.
	Slots []model.SlotCount
}

// C encapsulates business logic without worrying about any web layers
type C interface {
	OptimizeLineup(ctx context.Context, req LineupRequest) (*model.LineupResult, error)
	GetLeagueSlots(ctx context.Context, league model.League) ([]model.SlotCount, error)
	GetMatchups(ctx context.Context, league model.League, week int) ([]model.Matchup, error)

	// Optimizes the lineup and saves its projected total to the weekly log.
	RecordWeeklyTotal(ctx context.Context, req LineupRequest) (*model.WeeklyTotal, error)
	ListWeeklyTotals(ctx context.Context, league model.League) ([]model.WeeklyTotal, error)
	// Records the weekly total on a cron schedule until shutdown is closed.
	RunWeeklyLog(schedule string, req LineupRequest, shutdown chan bool, wg *sync.WaitGroup)
}

type controller struct {
	clock    clock.Clock
	db       db.DB
	espn     espn.Client
	sleeper  sleeper.Client
	defaults []model.SlotCount
	log      *logrus.Entry
}

// New creates the controller. Either platform client may be nil when it is
// not configured; requests for that platform then fail.
func New(clock clock.Clock, db db.DB, espn espn.Client, sleeper sleeper.Client, defaults []model.SlotCount) (C, error) {
	if clock == nil || db == nil {
		return nil, errors.New("clock and db are required")
	}
	if espn == nil && sleeper == nil {
		return nil, errors.New("at least one platform client is required")
	}
	if len(defaults) == 0 {
		defaults = model.DefaultSlots()
	}

	c := &controller{
		clock:    clock,
		db:       db,
		espn:     espn,
		sleeper:  sleeper,
		defaults: defaults,
		log:      logger.WithComponent("controller"),
	}
	return c, nil
}

// When we need to make calls that are specific to a platform, grab a platform
// adapter and it will do it. This is internal to the controller package.
type platformAdapter interface {
	getRoster(ctx context.Context, l model.League, week int) (*model.TeamRoster, error)
	getSlots(ctx context.Context, l model.League) ([]model.SlotCount, error)
	getMatchups(ctx context.Context, l model.League, week int) ([]model.Matchup, error)
}

func getPlatformAdapter(platform string, c *controller) platformAdapter {
	switch {
	case platform == model.PlatformESPN && c.espn != nil:
		return &espnAdapter{c}
	case platform == model.PlatformSleeper && c.sleeper != nil:
		return &sleeperAdapter{c}
	case model.IsPlatformSupported(platform):
		return &nilPlatformAdapter{err: fmt.Errorf("%w: %s is not configured", ErrUnsupportedPlatform, platform)}
	default:
		return &nilPlatformAdapter{err: fmt.Errorf("%w: %s", ErrUnsupportedPlatform, platform)}
	}
}

// nilPlatformAdapter exists so that we can always return an adapter and simply the usage.
// It eliminates the need for an extra error check.
type nilPlatformAdapter struct {
	err error
}

func (a *nilPlatformAdapter) getRoster(ctx context.Context, l model.League, week int) (*model.TeamRoster, error) {
	return nil, a.err
}

func (a *nilPlatformAdapter) getSlots(ctx context.Context, l model.League) ([]model.SlotCount, error) {
	return nil, a.err
}

func (a *nilPlatformAdapter) getMatchups(ctx context.Context, l model.League, week int) ([]model.Matchup, error) {
	return nil, a.err
}
