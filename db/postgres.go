package db

import (
	"context"
	"fmt"

	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mww/starter_optimizer/model"
)

func New(ctx context.Context, connString string, clock clock.Clock) (DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return &postgresDB{pool: pool, clock: clock}, nil
}

type postgresDB struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

func (db *postgresDB) SaveWeeklyTotal(ctx context.Context, w *model.WeeklyTotal) error {
	const upsert = `INSERT INTO weekly_totals(
		platform,
		league_id,
		team_id,
		season,
		week,
		projected_total,
		starters,
		recorded
	) VALUES (
		@platform,
		@leagueID,
		@teamID,
		@season,
		@week,
		@total,
		@starters,
		@recorded
	) ON CONFLICT (platform, league_id, team_id, season, week) DO UPDATE SET
		projected_total=EXCLUDED.projected_total,
		starters=EXCLUDED.starters,
		recorded=EXCLUDED.recorded`

	if err := validate(w); err != nil {
		return err
	}
	if w.Recorded.IsZero() {
		w.Recorded = db.clock.Now().UTC()
	}

	args := pgx.NamedArgs{
		"platform": w.Platform,
		"leagueID": w.LeagueID,
		"teamID":   w.TeamID,
		"season":   w.Season,
		"week":     w.Week,
		"total":    w.ProjectedTotal,
		"starters": w.Starters,
		"recorded": w.Recorded,
	}
	if _, err := db.pool.Exec(ctx, upsert, args); err != nil {
		return fmt.Errorf("error saving weekly total for week %d of %s: %w", w.Week, w.LeagueID, err)
	}
	return nil
}

func (db *postgresDB) ListWeeklyTotals(ctx context.Context, league model.League) ([]model.WeeklyTotal, error) {
	const query = `SELECT platform, league_id, team_id, season, week, projected_total, starters, recorded
			FROM weekly_totals
			WHERE platform=@platform AND league_id=@leagueID AND team_id=@teamID AND season=@season
			ORDER BY week`

	args := pgx.NamedArgs{
		"platform": league.Platform,
		"leagueID": league.ExternalID,
		"teamID":   league.TeamID,
		"season":   league.Season,
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error querying weekly totals: %w", err)
	}
	defer rows.Close()

	results := make([]model.WeeklyTotal, 0, 18)
	for rows.Next() {
		var w model.WeeklyTotal
		err := rows.Scan(&w.Platform, &w.LeagueID, &w.TeamID, &w.Season, &w.Week, &w.ProjectedTotal, &w.Starters, &w.Recorded)
		if err != nil {
			return nil, fmt.Errorf("error scanning weekly total: %w", err)
		}
		w.Recorded = w.Recorded.UTC()
		results = append(results, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error with rows: %w", err)
	}

	return results, nil
}

func (db *postgresDB) Close() {
	db.pool.Close()
}
