package sleeper

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/mww/starter_optimizer/lineup"
	"github.com/mww/starter_optimizer/model"
	"github.com/mww/starter_optimizer/platforms/fetch"
	"github.com/mww/starter_optimizer/testutils"
)

const leagueID = testutils.SleeperLeagueID

func TestLoadPlayers_success(t *testing.T) {
	fake := testutils.NewFakeSleeperServer()
	defer fake.Close()

	c := NewForTest(fake.URL())
	players, err := c.LoadPlayers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(players) != 14 {
		t.Errorf("expected 14 players, got %d", len(players))
	}
	if _, found := players["0000"]; found {
		t.Errorf("placeholder player should have been skipped")
	}

	tests := map[string]model.Player{
		"4046": {ID: "4046", Name: "Patrick Mahomes", Position: model.POS_QB, Team: model.TEAM_KC},
		"8155": {ID: "8155", Name: "Breece Hall", Position: model.POS_RB, Team: model.TEAM_NYJ, InjuryStatus: "QUESTIONABLE"},
		"BAL":  {ID: "BAL", Name: "Ravens D/ST", Position: model.POS_DST, Team: model.TEAM_BAL},
		"1466": {ID: "1466", Name: "Bobby Wagner", Position: model.POS_UNKNOWN, Team: model.TEAM_WAS},
		"2374": {ID: "2374", Name: "Tyler Lockett", Position: model.POS_WR, Team: model.TEAM_FA},
	}
	for id, want := range tests {
		if got := players[id]; !reflect.DeepEqual(got, want) {
			t.Errorf("player %s: expected %+v, got %+v", id, want, got)
		}
	}
}

func TestGetCurrentWeek(t *testing.T) {
	fake := testutils.NewFakeSleeperServer()
	defer fake.Close()

	week, err := NewForTest(fake.URL()).GetCurrentWeek(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if week != 3 {
		t.Errorf("expected week 3, got %d", week)
	}
}

func TestGetRoster(t *testing.T) {
	fake := testutils.NewFakeSleeperServer()
	defer fake.Close()

	c := NewForTest(fake.URL())
	roster, err := c.GetRoster(context.Background(), leagueID, 1, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if roster.TeamID != "1" || roster.TeamName != "Sleeper Sharks" || roster.Week != 3 {
		t.Errorf("unexpected roster header: %+v", roster)
	}
	if len(roster.Players) != 10 {
		t.Fatalf("expected 10 players, got %d", len(roster.Players))
	}

	first := roster.Players[0]
	if first.Name != "Patrick Mahomes" || first.ProjectedPoints == nil || *first.ProjectedPoints != 21.0 {
		t.Errorf("unexpected first player: %+v", first)
	}

	for _, p := range roster.Players {
		if p.Name == "Harrison Butker" && p.ProjectedPoints != nil {
			t.Errorf("expected no projection for Harrison Butker, got %v", *p.ProjectedPoints)
		}
	}
}

func TestGetRoster_halfPPR(t *testing.T) {
	fake := testutils.NewFakeSleeperServer()
	defer fake.Close()

	c := NewForTest(fake.URL()).(*client)
	c.scoring = ScoringHalfPPR

	roster, err := c.GetRoster(context.Background(), leagueID, 1, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p := roster.Players[0].ProjectedPoints; p == nil || *p != 20.5 {
		t.Errorf("expected the half ppr projection of 20.5, got %v", p)
	}
}

func TestGetRoster_noProjections(t *testing.T) {
	fake := testutils.NewFakeSleeperServer()
	defer fake.Close()

	roster, err := NewForTest(fake.URL()).GetRoster(context.Background(), leagueID, 1, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, p := range roster.Players {
		if p.ProjectedPoints != nil {
			t.Errorf("expected no projection for %s in week 4", p.Name)
		}
	}
}

func TestGetRoster_fallbacks(t *testing.T) {
	fake := testutils.NewFakeSleeperServer()
	defer fake.Close()

	c := NewForTest(fake.URL())

	roster, err := c.GetRoster(context.Background(), leagueID, 2, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if roster.TeamName != "rival" {
		t.Errorf("expected the display name to be used, got %s", roster.TeamName)
	}
	unknown := roster.Players[len(roster.Players)-1]
	if unknown.ID != "9999" || unknown.Position != model.POS_UNKNOWN || unknown.ProjectedPoints != nil {
		t.Errorf("unexpected unknown player: %+v", unknown)
	}

	roster, err = c.GetRoster(context.Background(), leagueID, 3, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if roster.TeamName != "Team 3" || len(roster.Players) != 0 {
		t.Errorf("unexpected ownerless roster: %+v", roster)
	}
}

func TestGetRoster_errors(t *testing.T) {
	fake := testutils.NewFakeSleeperServer()
	defer fake.Close()

	c := NewForTest(fake.URL())
	ctx := context.Background()

	if _, err := c.GetRoster(ctx, leagueID, 42, 3); !errors.Is(err, ErrRosterNotFound) {
		t.Errorf("expected ErrRosterNotFound, got %v", err)
	}
	if _, err := c.GetRoster(ctx, "1", 1, 3); err == nil {
		t.Errorf("expected an error for an unknown league")
	}
	if _, err := c.GetRoster(ctx, "", 1, 3); err == nil {
		t.Errorf("expected an error for an empty league id")
	}
}

func TestGetSlots(t *testing.T) {
	fake := testutils.NewFakeSleeperServer()
	defer fake.Close()

	slots, err := NewForTest(fake.URL()).GetSlots(context.Background(), leagueID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(slots, model.DefaultSlots()) {
		t.Errorf("expected %s, got %s", model.FormatSlotCounts(model.DefaultSlots()), model.FormatSlotCounts(slots))
	}
}

func TestGetMatchups(t *testing.T) {
	fake := testutils.NewFakeSleeperServer()
	defer fake.Close()

	c := NewForTest(fake.URL())
	matchups, err := c.GetMatchups(context.Background(), leagueID, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []model.Matchup{
		{
			Week: 3,
			Home: &model.TeamResult{TeamID: "1", TeamName: "Sleeper Sharks", Points: 71.5},
			Away: &model.TeamResult{TeamID: "2", TeamName: "rival", Points: 64.2},
		},
		{
			Week: 3,
			Home: &model.TeamResult{TeamID: "3", TeamName: "Team 3"},
		},
	}
	if !reflect.DeepEqual(matchups, want) {
		t.Errorf("unexpected matchups: %+v", matchups)
	}

	matchups, err = c.GetMatchups(context.Background(), leagueID, 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matchups) != 0 {
		t.Errorf("expected no matchups for week 9, got %d", len(matchups))
	}
}

func TestRosterIntoLineup(t *testing.T) {
	fake := testutils.NewFakeSleeperServer()
	defer fake.Close()

	c := NewForTest(fake.URL())
	ctx := context.Background()

	roster, err := c.GetRoster(ctx, leagueID, 1, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	slots, err := c.GetSlots(ctx, leagueID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	l, bench := lineup.Assign(roster.Players, slots)
	if got := l.Slot(model.SLOT_FLEX); len(got) != 1 || got[0].Name != "Jaxon Smith-Njigba" {
		t.Errorf("unexpected flex: %v", got)
	}
	if got := l.Slot(model.SLOT_K); len(got) != 1 || got[0].Name != "Harrison Butker" {
		t.Errorf("expected the kicker without a projection to start: %v", got)
	}
	if len(bench) != 1 || bench[0].Name != "Bobby Wagner" {
		t.Errorf("unexpected bench: %v", bench)
	}
	if total := l.ProjectedTotal(); total < 117.69 || total > 117.71 {
		t.Errorf("expected a projected total of 117.7, got %f", total)
	}
}

func TestParseScoring(t *testing.T) {
	tests := map[string]struct {
		input   string
		want    string
		wantErr bool
	}{
		"empty":    {input: "", want: ScoringPPR},
		"ppr":      {input: "pts_ppr", want: ScoringPPR},
		"half":     {input: " PTS_HALF_PPR ", want: ScoringHalfPPR},
		"standard": {input: "pts_std", want: ScoringSTD},
		"unknown":  {input: "pts_idp", wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := parseScoring(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
		})
	}

	if _, err := New("bogus", fetch.Options{}); err == nil {
		t.Errorf("expected New to reject an unknown scoring key")
	}
}
