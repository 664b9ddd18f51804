package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/mww/starter_optimizer/lineup"
	"github.com/mww/starter_optimizer/model"
	"github.com/sirupsen/logrus"
)

func (c *controller) OptimizeLineup(ctx context.Context, req LineupRequest) (*model.LineupResult, error) {
	if req.Week < 0 {
		return nil, fmt.Errorf("week must not be negative, got %d", req.Week)
	}

	adapter := getPlatformAdapter(req.League.Platform, c)
	roster, err := adapter.getRoster(ctx, req.League, req.Week)
	if err != nil {
		return nil, fmt.Errorf("error loading roster for %s: %w", req.League, err)
	}

	slots := c.resolveSlots(ctx, adapter, req)
	starters, bench := lineup.Assign(roster.Players, slots)

	c.log.WithFields(logrus.Fields{
		"platform": req.League.Platform,
		"league":   req.League.ExternalID,
		"team":     req.League.TeamID,
		"week":     roster.Week,
		"total":    starters.ProjectedTotal(),
		"open":     starters.OpenSlots(),
	}).Debug("optimized lineup")

	return &model.LineupResult{
		League:   req.League,
		TeamName: roster.TeamName,
		Week:     roster.Week,
		Slots:    slots,
		Lineup:   starters,
		Bench:    bench,
	}, nil
}

// resolveSlots uses the slots from the request, then the league settings and
// finally the configured defaults.
func (c *controller) resolveSlots(ctx context.Context, adapter platformAdapter, req LineupRequest) []model.SlotCount {
	if len(req.Slots) > 0 {
		return req.Slots
	}

	slots, err := adapter.getSlots(ctx, req.League)
	if err != nil || len(slots) == 0 {
		c.log.WithError(err).WithField("league", req.League.ExternalID).
			Warn("unable to load league lineup settings, using the default slots")
		return c.defaults
	}
	return slots
}

func (c *controller) GetLeagueSlots(ctx context.Context, league model.League) ([]model.SlotCount, error) {
	slots, err := getPlatformAdapter(league.Platform, c).getSlots(ctx, league)
	if err != nil {
		return nil, fmt.Errorf("error loading lineup settings for %s: %w", league, err)
	}
	return slots, nil
}

func (c *controller) GetMatchups(ctx context.Context, league model.League, week int) ([]model.Matchup, error) {
	if week < 0 {
		return nil, errors.New("week must not be negative")
	}

	matchups, err := getPlatformAdapter(league.Platform, c).getMatchups(ctx, league, week)
	if err != nil {
		return nil, fmt.Errorf("error loading matchups for %s: %w", league, err)
	}
	return matchups, nil
}
