package db

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/mww/starter_optimizer/model"
)

func newTestCSV(t *testing.T) (DB, *clock.Mock, string) {
	clk := clock.NewMock()
	clk.Set(time.Date(2025, time.September, 14, 17, 0, 0, 0, time.UTC))

	path := filepath.Join(t.TempDir(), "weekly_log.csv")
	store, err := NewCSV(path, clk)
	if err != nil {
		t.Fatalf("error creating csv db: %v", err)
	}
	return store, clk, path
}

func TestCSV_weeklyTotals(t *testing.T) {
	store, clk, _ := newTestCSV(t)
	testWeeklyTotals(t, store, clk)
}

func TestCSV_invalid(t *testing.T) {
	store, _, _ := newTestCSV(t)
	testInvalidWeeklyTotals(t, store)
}

func TestCSV_fileFormat(t *testing.T) {
	store, _, path := newTestCSV(t)

	w := &model.WeeklyTotal{
		Platform:       model.PlatformSleeper,
		LeagueID:       "784462448236363776",
		TeamID:         1,
		Season:         2025,
		Week:           3,
		ProjectedTotal: 117.7,
		Starters:       9,
	}
	if err := store.SaveWeeklyTotal(context.Background(), w); err != nil {
		t.Fatalf("error saving: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("error reading log: %v", err)
	}

	want := "platform,league_id,team_id,season,week,projected_total,starters,recorded\n" +
		"sleeper,784462448236363776,1,2025,3,117.70,9,2025-09-14T17:00:00Z\n"
	if string(b) != want {
		t.Errorf("unexpected file contents:\n%s", b)
	}

	// A second store on the same file sees the entry.
	reopened, err := NewCSV(path, clock.New())
	if err != nil {
		t.Fatalf("error reopening: %v", err)
	}
	res, err := reopened.ListWeeklyTotals(context.Background(), model.League{
		Platform:   model.PlatformSleeper,
		ExternalID: "784462448236363776",
		TeamID:     1,
		Season:     2025,
	})
	if err != nil || len(res) != 1 || res[0].ProjectedTotal != 117.7 {
		t.Errorf("unexpected entries after reopening: %v, err: %v", res, err)
	}
}

func TestCSV_badFiles(t *testing.T) {
	tests := map[string]struct {
		contents string
		wantErr  string
	}{
		"wrong header": {
			contents: "a,b,c,d,e,f,g,h\n",
			wantErr:  "unexpected header",
		},
		"bad week": {
			contents: strings.Join(csvHeader, ",") + "\nespn,1,1,2025,three,10.00,9,2025-09-14T17:00:00Z\n",
			wantErr:  "line 2",
		},
		"bad time": {
			contents: strings.Join(csvHeader, ",") + "\nespn,1,1,2025,3,10.00,9,yesterday\n",
			wantErr:  "recorded time",
		},
		"missing column": {
			contents: strings.Join(csvHeader, ",") + "\nespn,1,1,2025,3,10.00,9\n",
			wantErr:  "error reading weekly log",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "log.csv")
			if err := os.WriteFile(path, []byte(tc.contents), 0o644); err != nil {
				t.Fatalf("error writing file: %v", err)
			}

			_, err := NewCSV(path, clock.New())
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("expected error containing '%s', got %v", tc.wantErr, err)
			}
		})
	}
}

func TestCSV_emptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.csv")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("error writing file: %v", err)
	}

	store, err := NewCSV(path, clock.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res, err := store.ListWeeklyTotals(context.Background(), newLeague())
	if err != nil || len(res) != 0 {
		t.Errorf("expected an empty log, got %v, err: %v", res, err)
	}
}

func TestNewCSV_noPath(t *testing.T) {
	if _, err := NewCSV("", clock.New()); err == nil {
		t.Errorf("expected an error without a path")
	}
}
