package mocksleeper

import (
	"context"

	"github.com/mww/starter_optimizer/model"
	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

func (c *Client) LoadPlayers(ctx context.Context) (map[string]model.Player, error) {
	args := c.Called(ctx)

	var res map[string]model.Player
	if args.Get(0) != nil {
		res = args.Get(0).(map[string]model.Player)
	}

	return res, args.Error(1)
}

func (c *Client) GetCurrentWeek(ctx context.Context) (int, error) {
	args := c.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (c *Client) GetRoster(ctx context.Context, leagueID string, rosterID, week int) (*model.TeamRoster, error) {
	args := c.Called(ctx, leagueID, rosterID, week)

	var res *model.TeamRoster
	if args.Get(0) != nil {
		res = args.Get(0).(*model.TeamRoster)
	}

	return res, args.Error(1)
}

func (c *Client) GetSlots(ctx context.Context, leagueID string) ([]model.SlotCount, error) {
	args := c.Called(ctx, leagueID)

	var res []model.SlotCount
	if args.Get(0) != nil {
		res = args.Get(0).([]model.SlotCount)
	}

	return res, args.Error(1)
}

func (c *Client) GetMatchups(ctx context.Context, leagueID string, week int) ([]model.Matchup, error) {
	args := c.Called(ctx, leagueID, week)

	var res []model.Matchup
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Matchup)
	}

	return res, args.Error(1)
}
