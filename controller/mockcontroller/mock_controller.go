package mockcontroller

import (
	"context"
	"sync"

	"github.com/mww/starter_optimizer/controller"
	"github.com/mww/starter_optimizer/model"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) OptimizeLineup(ctx context.Context, req controller.LineupRequest) (*model.LineupResult, error) {
	args := c.Called(ctx, req)

	var res *model.LineupResult
	if args.Get(0) != nil {
		res = args.Get(0).(*model.LineupResult)
	}

	return res, args.Error(1)
}

func (c *C) GetLeagueSlots(ctx context.Context, league model.League) ([]model.SlotCount, error) {
	args := c.Called(ctx, league)

	var res []model.SlotCount
	if args.Get(0) != nil {
		res = args.Get(0).([]model.SlotCount)
	}

	return res, args.Error(1)
}

func (c *C) GetMatchups(ctx context.Context, league model.League, week int) ([]model.Matchup, error) {
	args := c.Called(ctx, league, week)

	var res []model.Matchup
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Matchup)
	}

	return res, args.Error(1)
}

func (c *C) RecordWeeklyTotal(ctx context.Context, req controller.LineupRequest) (*model.WeeklyTotal, error) {
	args := c.Called(ctx, req)

	var res *model.WeeklyTotal
	if args.Get(0) != nil {
		res = args.Get(0).(*model.WeeklyTotal)
	}

	return res, args.Error(1)
}

func (c *C) ListWeeklyTotals(ctx context.Context, league model.League) ([]model.WeeklyTotal, error) {
	args := c.Called(ctx, league)

	var res []model.WeeklyTotal
	if args.Get(0) != nil {
		res = args.Get(0).([]model.WeeklyTotal)
	}

	return res, args.Error(1)
}

func (c *C) RunWeeklyLog(schedule string, req controller.LineupRequest, shutdown chan bool, wg *sync.WaitGroup) {
	c.Called(schedule, req, shutdown, wg)
	wg.Done()
}
