package testutils

import (
	"context"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/mww/starter_optimizer/containers"
	"github.com/mww/starter_optimizer/db"
	"github.com/mww/starter_optimizer/model"
	"github.com/sirupsen/logrus"
)

var (
	// Thursday of week 3 in the fake servers' season.
	TestNow = time.Date(2025, time.September, 18, 20, 0, 0, 0, time.UTC)

	ESPNLeague = model.League{
		Platform:   model.PlatformESPN,
		ExternalID: ESPNLeagueID,
		TeamID:     1,
		Season:     2025,
	}
	SleeperLeague = model.League{
		Platform:   model.PlatformSleeper,
		ExternalID: SleeperLeagueID,
		TeamID:     1,
		Season:     2025,
	}

	// Weeks already in the log for ESPNLeague.
	Week1Total = &model.WeeklyTotal{
		Platform:       model.PlatformESPN,
		LeagueID:       ESPNLeagueID,
		TeamID:         1,
		Season:         2025,
		Week:           1,
		ProjectedTotal: 112.4,
		Starters:       9,
		Recorded:       time.Date(2025, time.September, 4, 20, 0, 0, 0, time.UTC),
	}
	Week2Total = &model.WeeklyTotal{
		Platform:       model.PlatformESPN,
		LeagueID:       ESPNLeagueID,
		TeamID:         1,
		Season:         2025,
		Week:           2,
		ProjectedTotal: 108.9,
		Starters:       9,
		Recorded:       time.Date(2025, time.September, 11, 20, 0, 0, 0, time.UTC),
	}
)

type TestDB struct {
	container *containers.PostgresContainer
	DB        db.DB
	Clock     *clock.Mock
}

func NewTestDB() *TestDB {
	container := containers.NewPostgresContainer()
	clock := clock.NewMock()
	clock.Set(TestNow)

	db, err := db.New(context.Background(), container.ConnectionString(), clock)
	if err != nil {
		logrus.Fatalf("error connecting to db in test container: %v", err)
	}

	if err := InsertTestTotals(db); err != nil {
		logrus.Fatalf("error populating db in test container: %v", err)
	}

	return &TestDB{
		container: container,
		DB:        db,
		Clock:     clock,
	}
}

func (db *TestDB) Shutdown() {
	db.DB.Close()
	db.container.Shutdown()
}

func InsertTestTotals(db db.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, w := range []*model.WeeklyTotal{Week1Total, Week2Total} {
		// Save a copy so the package level values stay untouched.
		c := *w
		if err := db.SaveWeeklyTotal(ctx, &c); err != nil {
			return err
		}
	}

	return nil
}
