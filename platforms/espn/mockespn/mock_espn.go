package mockespn

import (
	"context"

	"github.com/mww/starter_optimizer/model"
	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

func (c *Client) GetRoster(ctx context.Context, leagueID string, season, teamID, week int) (*model.TeamRoster, error) {
	args := c.Called(ctx, leagueID, season, teamID, week)

	var res *model.TeamRoster
	if args.Get(0) != nil {
		res = args.Get(0).(*model.TeamRoster)
	}

	return res, args.Error(1)
}

func (c *Client) GetSlots(ctx context.Context, leagueID string, season int) ([]model.SlotCount, error) {
	args := c.Called(ctx, leagueID, season)

	var res []model.SlotCount
	if args.Get(0) != nil {
		res = args.Get(0).([]model.SlotCount)
	}

	return res, args.Error(1)
}

func (c *Client) GetMatchups(ctx context.Context, leagueID string, season, week int) ([]model.Matchup, error) {
	args := c.Called(ctx, leagueID, season, week)

	var res []model.Matchup
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Matchup)
	}

	return res, args.Error(1)
}
