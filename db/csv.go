package db

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/mww/starter_optimizer/model"
)

var csvHeader = []string{"platform", "league_id", "team_id", "season", "week", "projected_total", "starters", "recorded"}

// NewCSV stores the weekly log in a single CSV file. The file is created on
// the first save; a missing file lists as empty.
func NewCSV(path string, clock clock.Clock) (DB, error) {
	if path == "" {
		return nil, errors.New("csv path must be provided")
	}

	db := &csvDB{path: path, clock: clock}
	// Fail early on a file that is not a weekly log.
	if _, err := db.readAll(); err != nil {
		return nil, err
	}
	return db, nil
}

type csvDB struct {
	mu    sync.Mutex
	path  string
	clock clock.Clock
}

func (db *csvDB) SaveWeeklyTotal(ctx context.Context, w *model.WeeklyTotal) error {
	if err := validate(w); err != nil {
		return err
	}
	if w.Recorded.IsZero() {
		w.Recorded = db.clock.Now().UTC()
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	totals, err := db.readAll()
	if err != nil {
		return err
	}

	idx := slices.IndexFunc(totals, func(t model.WeeklyTotal) bool {
		return t.Platform == w.Platform && t.LeagueID == w.LeagueID &&
			t.TeamID == w.TeamID && t.Season == w.Season && t.Week == w.Week
	})
	if idx >= 0 {
		totals[idx] = *w
	} else {
		totals = append(totals, *w)
	}

	return db.writeAll(totals)
}

func (db *csvDB) ListWeeklyTotals(ctx context.Context, league model.League) ([]model.WeeklyTotal, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	totals, err := db.readAll()
	if err != nil {
		return nil, err
	}

	results := make([]model.WeeklyTotal, 0, len(totals))
	for _, t := range totals {
		if t.Platform == league.Platform && t.LeagueID == league.ExternalID &&
			t.TeamID == league.TeamID && t.Season == league.Season {
			results = append(results, t)
		}
	}
	slices.SortStableFunc(results, func(a, b model.WeeklyTotal) int { return a.Week - b.Week })

	return results, nil
}

func (db *csvDB) Close() {}

func (db *csvDB) readAll() ([]model.WeeklyTotal, error) {
	f, err := os.Open(db.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("error opening weekly log: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(csvHeader)

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading weekly log header: %w", err)
	}
	if !slices.Equal(header, csvHeader) {
		return nil, fmt.Errorf("%s is not a weekly log, unexpected header: %v", db.path, header)
	}

	var totals []model.WeeklyTotal
	for line := 2; ; line++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading weekly log: %w", err)
		}
		t, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("error parsing line %d of weekly log: %w", line, err)
		}
		totals = append(totals, t)
	}
	return totals, nil
}

// writeAll replaces the file through a rename so readers never see a
// partially written log.
func (db *csvDB) writeAll(totals []model.WeeklyTotal) error {
	f, err := os.CreateTemp(filepath.Dir(db.path), filepath.Base(db.path)+".*")
	if err != nil {
		return fmt.Errorf("error creating weekly log: %w", err)
	}
	defer os.Remove(f.Name())
	if err := f.Chmod(0o644); err != nil {
		f.Close()
		return fmt.Errorf("error creating weekly log: %w", err)
	}

	w := csv.NewWriter(f)
	w.Write(csvHeader)
	for _, t := range totals {
		w.Write(formatRecord(&t))
	}
	w.Flush()

	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("error writing weekly log: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("error writing weekly log: %w", err)
	}
	if err := os.Rename(f.Name(), db.path); err != nil {
		return fmt.Errorf("error replacing weekly log: %w", err)
	}
	return nil
}

func formatRecord(t *model.WeeklyTotal) []string {
	return []string{
		t.Platform,
		t.LeagueID,
		strconv.Itoa(t.TeamID),
		strconv.Itoa(t.Season),
		strconv.Itoa(t.Week),
		strconv.FormatFloat(t.ProjectedTotal, 'f', 2, 64),
		strconv.Itoa(t.Starters),
		t.Recorded.UTC().Format(time.RFC3339),
	}
}

func parseRecord(rec []string) (model.WeeklyTotal, error) {
	t := model.WeeklyTotal{Platform: rec[0], LeagueID: rec[1]}

	ints := []struct {
		name string
		dst  *int
		val  string
	}{
		{"team_id", &t.TeamID, rec[2]},
		{"season", &t.Season, rec[3]},
		{"week", &t.Week, rec[4]},
		{"starters", &t.Starters, rec[6]},
	}
	for _, i := range ints {
		v, err := strconv.Atoi(i.val)
		if err != nil {
			return t, fmt.Errorf("bad %s: %w", i.name, err)
		}
		*i.dst = v
	}

	total, err := strconv.ParseFloat(rec[5], 64)
	if err != nil {
		return t, fmt.Errorf("bad projected_total: %w", err)
	}
	t.ProjectedTotal = total

	recorded, err := time.Parse(time.RFC3339, rec[7])
	if err != nil {
		return t, fmt.Errorf("bad recorded time: %w", err)
	}
	t.Recorded = recorded.UTC()

	return t, nil
}
