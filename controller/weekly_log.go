package controller

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mww/starter_optimizer/model"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const weeklyLogTimeout = 30 * time.Second

func (c *controller) RecordWeeklyTotal(ctx context.Context, req LineupRequest) (*model.WeeklyTotal, error) {
	res, err := c.OptimizeLineup(ctx, req)
	if err != nil {
		return nil, err
	}

	w := &model.WeeklyTotal{
		Platform:       req.League.Platform,
		LeagueID:       req.League.ExternalID,
		TeamID:         req.League.TeamID,
		Season:         req.League.Season,
		Week:           res.Week,
		ProjectedTotal: res.Lineup.ProjectedTotal(),
		Starters:       len(res.Lineup.Starters()),
		Recorded:       c.clock.Now().UTC(),
	}
	if err := c.db.SaveWeeklyTotal(ctx, w); err != nil {
		return nil, fmt.Errorf("error saving weekly total: %w", err)
	}
	return w, nil
}

func (c *controller) ListWeeklyTotals(ctx context.Context, league model.League) ([]model.WeeklyTotal, error) {
	totals, err := c.db.ListWeeklyTotals(ctx, league)
	if err != nil {
		return nil, fmt.Errorf("error listing weekly totals for %s: %w", league, err)
	}
	return totals, nil
}

func (c *controller) RunWeeklyLog(schedule string, req LineupRequest, shutdown chan bool, wg *sync.WaitGroup) {
	defer wg.Done()

	log := c.log.WithFields(logrus.Fields{"job": "weekly_log", "schedule": schedule})

	cr := cron.New(cron.WithLogger(cron.PrintfLogger(log)))
	if _, err := cr.AddFunc(schedule, func() { c.recordScheduled(req, log) }); err != nil {
		log.WithError(err).Error("invalid weekly log schedule, not starting")
		return
	}

	cr.Start()
	log.Info("weekly log scheduled")

	<-shutdown
	<-cr.Stop().Done()
}

func (c *controller) recordScheduled(req LineupRequest, log *logrus.Entry) {
	ctx, cancel := context.WithTimeout(context.Background(), weeklyLogTimeout)
	defer cancel()

	w, err := c.RecordWeeklyTotal(ctx, req)
	if err != nil {
		log.WithError(err).Error("error recording weekly total")
		return
	}
	log.WithFields(logrus.Fields{
		"week":  w.Week,
		"total": w.ProjectedTotal,
	}).Info("recorded weekly total")
}
