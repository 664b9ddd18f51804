package controller

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/mww/starter_optimizer/db/mockdb"
	"github.com/mww/starter_optimizer/model"
	"github.com/mww/starter_optimizer/platforms/espn/mockespn"
	"github.com/mww/starter_optimizer/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecordWeeklyTotal(t *testing.T) {
	c := newTestController(t)
	ctx := context.Background()

	w, err := c.RecordWeeklyTotal(ctx, LineupRequest{League: testutils.ESPNLeague})
	require.NoError(t, err)

	assert.Equal(t, 3, w.Week)
	assert.Equal(t, 9, w.Starters)
	assert.InDelta(t, 120.9, w.ProjectedTotal, 0.001)
	assert.True(t, w.Recorded.Equal(testutils.TestNow), "recorded at %v", w.Recorded)

	totals, err := c.ListWeeklyTotals(ctx, testutils.ESPNLeague)
	require.NoError(t, err)
	require.Len(t, totals, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{totals[0].Week, totals[1].Week, totals[2].Week})
	assert.InDelta(t, testutils.Week1Total.ProjectedTotal, totals[0].ProjectedTotal, 0.001)
	assert.InDelta(t, 120.9, totals[2].ProjectedTotal, 0.001)
}

func TestRecordWeeklyTotal_errors(t *testing.T) {
	espnClient := &mockespn.Client{}
	espnClient.On("GetRoster", mock.Anything, "42", 2025, 1, 4).Return(testRoster(4), nil)
	espnClient.On("GetRoster", mock.Anything, "42", 2025, 1, 5).Return(nil, errors.New("espn is down"))

	store := &mockdb.DB{}
	store.On("SaveWeeklyTotal", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	slots := []model.SlotCount{{Slot: model.SLOT_QB, Count: 1}}
	c, err := New(clock.NewMock(), store, espnClient, nil, nil)
	require.NoError(t, err)

	league := model.League{Platform: model.PlatformESPN, ExternalID: "42", TeamID: 1, Season: 2025}

	_, err = c.RecordWeeklyTotal(context.Background(), LineupRequest{League: league, Week: 4, Slots: slots})
	assert.ErrorContains(t, err, "disk full")

	_, err = c.RecordWeeklyTotal(context.Background(), LineupRequest{League: league, Week: 5, Slots: slots})
	assert.ErrorContains(t, err, "espn is down")
	store.AssertNumberOfCalls(t, "SaveWeeklyTotal", 1)
}

func TestListWeeklyTotals_error(t *testing.T) {
	store := &mockdb.DB{}
	store.On("ListWeeklyTotals", mock.Anything, testutils.ESPNLeague).Return(nil, errors.New("no connection"))

	c, err := New(clock.NewMock(), store, &mockespn.Client{}, nil, nil)
	require.NoError(t, err)

	_, err = c.ListWeeklyTotals(context.Background(), testutils.ESPNLeague)
	assert.ErrorContains(t, err, "no connection")
}

func TestRunWeeklyLog(t *testing.T) {
	espnClient := &mockespn.Client{}
	espnClient.On("GetRoster", mock.Anything, "42", 2025, 1, 0).Return(testRoster(6), nil)

	saved := make(chan *model.WeeklyTotal, 1)
	store := &mockdb.DB{}
	store.On("SaveWeeklyTotal", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		select {
		case saved <- args.Get(1).(*model.WeeklyTotal):
		default:
		}
	}).Return(nil)

	clk := clock.NewMock()
	clk.Set(testutils.TestNow)
	c, err := New(clk, store, espnClient, nil, nil)
	require.NoError(t, err)

	req := LineupRequest{
		League: model.League{Platform: model.PlatformESPN, ExternalID: "42", TeamID: 1, Season: 2025},
		Slots:  []model.SlotCount{{Slot: model.SLOT_QB, Count: 1}},
	}

	shutdown := make(chan bool)
	var wg sync.WaitGroup
	wg.Add(1)
	go c.RunWeeklyLog("@every 1s", req, shutdown, &wg)

	select {
	case w := <-saved:
		assert.Equal(t, 6, w.Week)
		assert.Equal(t, 1, w.Starters)
		assert.InDelta(t, 22.5, w.ProjectedTotal, 0.001)
		assert.True(t, w.Recorded.Equal(testutils.TestNow))
	case <-time.After(5 * time.Second):
		t.Errorf("weekly total was never recorded")
	}

	close(shutdown)
	wg.Wait()
}

func TestRunWeeklyLog_badSchedule(t *testing.T) {
	c, err := New(clock.NewMock(), &mockdb.DB{}, &mockespn.Client{}, nil, nil)
	require.NoError(t, err)

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		c.RunWeeklyLog("every tuesday", LineupRequest{}, make(chan bool), &wg)
		close(done)
	}()

	select {
	case <-done:
		wg.Wait()
	case <-time.After(2 * time.Second):
		t.Errorf("expected RunWeeklyLog to return on a bad schedule")
	}
}

func testRoster(week int) *model.TeamRoster {
	return &model.TeamRoster{
		TeamID:   "1",
		TeamName: "Mock Team",
		Week:     week,
		Players: []model.Player{
			{Name: "QB One", Position: model.POS_QB, ProjectedPoints: model.Projection(22.5)},
			{Name: "RB One", Position: model.POS_RB, ProjectedPoints: model.Projection(14)},
		},
	}
}
