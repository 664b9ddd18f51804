package controller

import (
	"context"

	"github.com/mww/starter_optimizer/model"
)

type espnAdapter struct {
	c *controller
}

func (a *espnAdapter) getRoster(ctx context.Context, l model.League, week int) (*model.TeamRoster, error) {
	return a.c.espn.GetRoster(ctx, l.ExternalID, l.Season, l.TeamID, week)
}

func (a *espnAdapter) getSlots(ctx context.Context, l model.League) ([]model.SlotCount, error) {
	return a.c.espn.GetSlots(ctx, l.ExternalID, l.Season)
}

func (a *espnAdapter) getMatchups(ctx context.Context, l model.League, week int) ([]model.Matchup, error) {
	return a.c.espn.GetMatchups(ctx, l.ExternalID, l.Season, week)
}
