// Package espn reads rosters, projections, lineup settings and matchups from
// the ESPN fantasy football API.
package espn

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mww/starter_optimizer/model"
	"github.com/mww/starter_optimizer/platforms/espn/internal"
	"github.com/mww/starter_optimizer/platforms/fetch"
)

const ESPNURL = "https://lm-api-reads.fantasy.espn.com/apis/v3/games/ffl"

const (
	statSourceProjected = 1
	settingsTTL         = 6 * time.Hour
)

var ErrTeamNotFound = errors.New("team not found in league")

// ESPN lineup slot ids that map onto starting slots. Bench (20), IR (21) and
// the slots only used by other league formats are ignored.
var lineupSlots = map[string]model.Slot{
	"0":  model.SLOT_QB,
	"2":  model.SLOT_RB,
	"4":  model.SLOT_WR,
	"6":  model.SLOT_TE,
	"16": model.SLOT_DST,
	"17": model.SLOT_K,
	"23": model.SLOT_FLEX,
}

type Client interface {
	// Week 0 means the league's current scoring period.
	GetRoster(ctx context.Context, leagueID string, season, teamID, week int) (*model.TeamRoster, error)
	GetSlots(ctx context.Context, leagueID string, season int) ([]model.SlotCount, error)
	GetMatchups(ctx context.Context, leagueID string, season, week int) ([]model.Matchup, error)
}

type client struct {
	url     string
	cookies []*http.Cookie
	fetcher *fetch.Fetcher
}

// New creates a client for a private league. Both the espn_s2 and SWID
// cookies are required.
func New(espnS2, swid string, opts fetch.Options) (Client, error) {
	if espnS2 == "" || swid == "" {
		return nil, errors.New("missing ESPN credentials, both espn_s2 and SWID are required")
	}

	c := &client{
		url: ESPNURL,
		cookies: []*http.Cookie{
			{Name: "espn_s2", Value: espnS2},
			{Name: "SWID", Value: swid},
		},
		fetcher: fetch.New(model.PlatformESPN, opts),
	}
	return c, nil
}

func NewForTest(url string) Client {
	return &client{
		url: url,
		cookies: []*http.Cookie{
			{Name: "espn_s2", Value: "test-s2"},
			{Name: "SWID", Value: "{TEST-SWID}"},
		},
		fetcher: fetch.New(model.PlatformESPN, fetch.Options{}),
	}
}

func (c *client) GetRoster(ctx context.Context, leagueID string, season, teamID, week int) (*model.TeamRoster, error) {
	params := "view=mTeam&view=mRoster"
	if week > 0 {
		params += fmt.Sprintf("&scoringPeriodId=%d", week)
	}

	league, err := c.getLeague(ctx, leagueID, season, params, fmt.Sprintf("roster:%d", week), 0)
	if err != nil {
		return nil, err
	}

	if week <= 0 {
		week = league.ScoringPeriodID
	}

	for _, t := range league.Teams {
		if t.ID != teamID {
			continue
		}

		roster := &model.TeamRoster{
			TeamID:   strconv.Itoa(t.ID),
			TeamName: teamName(&t),
			Week:     week,
			Players:  make([]model.Player, 0, 16),
		}
		if t.Roster == nil {
			return roster, nil
		}

		for _, e := range t.Roster.Entries {
			if e.PlayerPoolEntry == nil || e.PlayerPoolEntry.Player == nil {
				continue
			}
			roster.Players = append(roster.Players, toPlayer(&e, week))
		}
		return roster, nil
	}

	return nil, fmt.Errorf("%w: team %d in league %s", ErrTeamNotFound, teamID, leagueID)
}

func (c *client) GetSlots(ctx context.Context, leagueID string, season int) ([]model.SlotCount, error) {
	league, err := c.getLeague(ctx, leagueID, season, "view=mSettings", "settings", settingsTTL)
	if err != nil {
		return nil, err
	}

	if league.Settings == nil ||
		league.Settings.RosterSettings == nil ||
		league.Settings.RosterSettings.LineupSlotCounts == nil {
		return nil, errors.New("league settings have no lineup slot counts")
	}

	counts := make(map[model.Slot]int)
	for id, n := range league.Settings.RosterSettings.LineupSlotCounts {
		if slot, found := lineupSlots[id]; found && n > 0 {
			counts[slot] += n
		}
	}

	resp := make([]model.SlotCount, 0, len(counts))
	for _, slot := range model.DefaultSlotOrder {
		if n, found := counts[slot]; found {
			resp = append(resp, model.SlotCount{Slot: slot, Count: n})
		}
	}

	if len(resp) == 0 {
		return nil, errors.New("no starting slots found in league settings")
	}
	return resp, nil
}

func (c *client) GetMatchups(ctx context.Context, leagueID string, season, week int) ([]model.Matchup, error) {
	league, err := c.getLeague(ctx, leagueID, season, "view=mMatchupScore&view=mTeam", fmt.Sprintf("matchups:%d", week), 0)
	if err != nil {
		return nil, err
	}

	if week <= 0 {
		if league.Status == nil || league.Status.CurrentMatchupPeriod == 0 {
			return nil, errors.New("league has no current matchup period")
		}
		week = league.Status.CurrentMatchupPeriod
	}

	names := make(map[int]string, len(league.Teams))
	for _, t := range league.Teams {
		names[t.ID] = teamName(&t)
	}

	results := make([]model.Matchup, 0, len(league.Teams)/2)
	for _, s := range league.Schedule {
		if s.MatchupPeriodID != week || s.Home == nil {
			continue
		}
		m := model.Matchup{
			Week: week,
			Home: toTeamResult(s.Home, names),
		}
		if s.Away != nil {
			m.Away = toTeamResult(s.Away, names)
		}
		results = append(results, m)
	}

	return results, nil
}

func (c *client) getLeague(ctx context.Context, leagueID string, season int, params, cacheSuffix string, ttl time.Duration) (*internal.League, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return nil, errors.New("league id must be provided")
	}

	url := fmt.Sprintf("%s/seasons/%d/segments/0/leagues/%s?%s", c.url, season, leagueID, params)
	req := fetch.Request{
		Cookies:  c.cookies,
		CacheKey: fmt.Sprintf("espn:%s:%d:%s", leagueID, season, cacheSuffix),
		TTL:      ttl,
	}

	var league internal.League
	if err := c.fetcher.GetJSON(ctx, url, req, &league); err != nil {
		return nil, fmt.Errorf("error loading espn league %s: %w", leagueID, err)
	}
	return &league, nil
}

func toPlayer(e *internal.RosterEntry, week int) model.Player {
	p := e.PlayerPoolEntry.Player

	injury := p.InjuryStatus
	if injury == "" {
		injury = e.InjuryStatus
	}

	return model.Player{
		ID:              strconv.Itoa(p.ID),
		Name:            p.FullName,
		Position:        model.ESPNPosition(p.DefaultPositionID),
		Team:            model.ParseESPNTeam(p.ProTeamID),
		ProjectedPoints: projection(p.Stats, week),
		InjuryStatus:    injury,
	}
}

// projection finds the single week projection for week. nil means ESPN has
// no projection, e.g. during a bye.
func projection(stats []internal.Stat, week int) *float64 {
	for _, s := range stats {
		if s.StatSourceID == statSourceProjected && s.ScoringPeriodID == week {
			return model.Projection(s.AppliedTotal)
		}
	}
	return nil
}

func teamName(t *internal.Team) string {
	if t.Name != "" {
		return t.Name
	}
	name := strings.TrimSpace(fmt.Sprintf("%s %s", t.Location, t.Nickname))
	if name == "" {
		return t.Abbrev
	}
	return name
}

func toTeamResult(t *internal.ScheduleTeam, names map[int]string) *model.TeamResult {
	return &model.TeamResult{
		TeamID:          strconv.Itoa(t.TeamID),
		TeamName:        names[t.TeamID],
		Points:          t.TotalPoints,
		ProjectedPoints: t.TotalProjectedPointsLive,
	}
}
