// Package db persists the weekly log: the projected total of the optimized
// lineup for each team and week.
package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mww/starter_optimizer/model"
)

var ErrInvalidWeeklyTotal = errors.New("invalid weekly total")

type DB interface {
	// SaveWeeklyTotal inserts the total, replacing any entry for the same
	// platform, league, team, season and week. A zero Recorded time is set
	// from the clock.
	SaveWeeklyTotal(ctx context.Context, w *model.WeeklyTotal) error
	// ListWeeklyTotals returns the entries for the league's team and season,
	// ordered by week.
	ListWeeklyTotals(ctx context.Context, league model.League) ([]model.WeeklyTotal, error)
	Close()
}

func validate(w *model.WeeklyTotal) error {
	if w == nil {
		return fmt.Errorf("%w: nil total", ErrInvalidWeeklyTotal)
	}
	if strings.TrimSpace(w.LeagueID) == "" {
		return fmt.Errorf("%w: league id is required", ErrInvalidWeeklyTotal)
	}
	if w.Week < 1 {
		return fmt.Errorf("%w: week must be at least 1, got %d", ErrInvalidWeeklyTotal, w.Week)
	}
	return nil
}
