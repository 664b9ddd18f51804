package controller

import (
	"context"

	"github.com/mww/starter_optimizer/model"
)

// Sleeper rosters are numbered from 1 in each league, so the league's team id
// is the roster id. The season always comes from the Sleeper league itself.
type sleeperAdapter struct {
	c *controller
}

func (a *sleeperAdapter) getRoster(ctx context.Context, l model.League, week int) (*model.TeamRoster, error) {
	return a.c.sleeper.GetRoster(ctx, l.ExternalID, l.TeamID, week)
}

func (a *sleeperAdapter) getSlots(ctx context.Context, l model.League) ([]model.SlotCount, error) {
	return a.c.sleeper.GetSlots(ctx, l.ExternalID)
}

func (a *sleeperAdapter) getMatchups(ctx context.Context, l model.League, week int) ([]model.Matchup, error) {
	return a.c.sleeper.GetMatchups(ctx, l.ExternalID, week)
}
