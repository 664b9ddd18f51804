// Package sleeper reads rosters, projections, lineup settings and matchups
// from the Sleeper API.
package sleeper

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/mww/starter_optimizer/model"
	"github.com/mww/starter_optimizer/platforms/fetch"
)

const (
	SleeperURL     = "https://api.sleeper.app"
	ProjectionsURL = "https://api.sleeper.com"

	ScoringPPR     = "pts_ppr"
	ScoringHalfPPR = "pts_half_ppr"
	ScoringSTD     = "pts_std"
)

const (
	// The player DB is several megabytes and Sleeper asks clients to fetch
	// it at most once a day.
	playersTTL  = 24 * time.Hour
	settingsTTL = 6 * time.Hour
	stateTTL    = time.Hour
)

var ErrRosterNotFound = errors.New("roster not found in league")

// Roster positions that are not starting slots.
var nonStarting = map[string]bool{"BN": true, "IR": true, "TAXI": true}

type Client interface {
	LoadPlayers(ctx context.Context) (map[string]model.Player, error)
	// GetCurrentWeek returns the current NFL week according to Sleeper.
	GetCurrentWeek(ctx context.Context) (int, error)
	// Week 0 means the current week.
	GetRoster(ctx context.Context, leagueID string, rosterID, week int) (*model.TeamRoster, error)
	GetSlots(ctx context.Context, leagueID string) ([]model.SlotCount, error)
	GetMatchups(ctx context.Context, leagueID string, week int) ([]model.Matchup, error)
}

type client struct {
	url            string
	projectionsURL string
	scoring        string
	fetcher        *fetch.Fetcher
}

// New creates a client that reads projections using the scoring key, one of
// ScoringPPR, ScoringHalfPPR or ScoringSTD. An empty key means PPR.
func New(scoring string, opts fetch.Options) (Client, error) {
	scoring, err := parseScoring(scoring)
	if err != nil {
		return nil, err
	}

	c := &client{
		url:            SleeperURL,
		projectionsURL: ProjectionsURL,
		scoring:        scoring,
		fetcher:        fetch.New(model.PlatformSleeper, opts),
	}
	return c, nil
}

func NewForTest(url string) Client {
	return &client{
		url:            url,
		projectionsURL: url,
		scoring:        ScoringPPR,
		fetcher:        fetch.New(model.PlatformSleeper, fetch.Options{}),
	}
}

func parseScoring(s string) (string, error) {
	switch s = strings.ToLower(strings.TrimSpace(s)); s {
	case "":
		return ScoringPPR, nil
	case ScoringPPR, ScoringHalfPPR, ScoringSTD:
		return s, nil
	default:
		return "", fmt.Errorf("unsupported sleeper scoring key: %s", s)
	}
}

func (c *client) LoadPlayers(ctx context.Context) (map[string]model.Player, error) {
	var parsed map[string]sleeperPlayer
	req := fetch.Request{CacheKey: "sleeper:players", TTL: playersTTL}
	if err := c.fetcher.GetJSON(ctx, fmt.Sprintf("%s/v1/players/nfl", c.url), req, &parsed); err != nil {
		return nil, fmt.Errorf("error loading sleeper players: %w", err)
	}

	result := make(map[string]model.Player, len(parsed))
	for id, p := range parsed {
		if p.isPlaceholder() {
			continue
		}
		if p.ID == "" {
			p.ID = id
		}
		result[id] = p.toPlayer()
	}

	return result, nil
}

func (c *client) GetCurrentWeek(ctx context.Context) (int, error) {
	var s state
	req := fetch.Request{CacheKey: "sleeper:state", TTL: stateTTL}
	if err := c.fetcher.GetJSON(ctx, fmt.Sprintf("%s/v1/state/nfl", c.url), req, &s); err != nil {
		return 0, fmt.Errorf("error loading sleeper state: %w", err)
	}
	if s.Week <= 0 {
		return 0, fmt.Errorf("no current week during the %s season", s.SeasonType)
	}
	return s.Week, nil
}

func (c *client) GetRoster(ctx context.Context, leagueID string, rosterID, week int) (*model.TeamRoster, error) {
	lg, err := c.getLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	if week <= 0 {
		if week, err = c.GetCurrentWeek(ctx); err != nil {
			return nil, err
		}
	}

	rosters, err := c.getRosters(ctx, lg.ID)
	if err != nil {
		return nil, err
	}
	idx := slices.IndexFunc(rosters, func(r roster) bool { return r.RosterID == rosterID })
	if idx < 0 {
		return nil, fmt.Errorf("%w: roster %d in league %s", ErrRosterNotFound, rosterID, lg.ID)
	}
	r := rosters[idx]

	names, err := c.teamNames(ctx, lg.ID, rosters)
	if err != nil {
		return nil, err
	}

	players, err := c.LoadPlayers(ctx)
	if err != nil {
		return nil, err
	}

	projections, err := c.getProjections(ctx, lg.Season, week)
	if err != nil {
		return nil, err
	}

	result := &model.TeamRoster{
		TeamID:   strconv.Itoa(r.RosterID),
		TeamName: names[r.RosterID],
		Week:     week,
		Players:  make([]model.Player, 0, len(r.Players)),
	}
	for _, id := range r.Players {
		p, found := players[id]
		if !found {
			// Usually a player added after the cached player DB was loaded.
			p = model.Player{ID: id, Name: fmt.Sprintf("Unknown player %s", id), Position: model.POS_UNKNOWN, Team: model.TEAM_FA}
		}
		p.ProjectedPoints = projections[id]
		result.Players = append(result.Players, p)
	}

	return result, nil
}

func (c *client) GetSlots(ctx context.Context, leagueID string) ([]model.SlotCount, error) {
	lg, err := c.getLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	counts := make(map[model.Slot]int)
	var extra []model.Slot
	for _, pos := range lg.RosterPositions {
		if nonStarting[strings.ToUpper(pos)] {
			continue
		}
		slot := model.ParseSlot(pos)
		if _, found := counts[slot]; !found && !slices.Contains(model.DefaultSlotOrder, slot) {
			extra = append(extra, slot)
		}
		counts[slot]++
	}

	resp := make([]model.SlotCount, 0, len(counts))
	for _, slot := range append(slices.Clone(model.DefaultSlotOrder), extra...) {
		if n, found := counts[slot]; found {
			resp = append(resp, model.SlotCount{Slot: slot, Count: n})
		}
	}

	if len(resp) == 0 {
		return nil, fmt.Errorf("no starting slots found in sleeper league %s", lg.ID)
	}
	return resp, nil
}

func (c *client) GetMatchups(ctx context.Context, leagueID string, week int) ([]model.Matchup, error) {
	lg, err := c.getLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	if week <= 0 {
		if week, err = c.GetCurrentWeek(ctx); err != nil {
			return nil, err
		}
	}

	var parsed []matchup
	url := fmt.Sprintf("%s/v1/league/%s/matchups/%d", c.url, lg.ID, week)
	if err := c.fetcher.GetJSON(ctx, url, fetch.Request{}, &parsed); err != nil {
		return nil, fmt.Errorf("error loading sleeper matchups for week %d: %w", week, err)
	}

	rosters, err := c.getRosters(ctx, lg.ID)
	if err != nil {
		return nil, err
	}
	names, err := c.teamNames(ctx, lg.ID, rosters)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(parsed, func(a, b matchup) int { return a.RosterID - b.RosterID })

	games := make(map[int][]matchup)
	var ids []int
	var byes []matchup
	for _, m := range parsed {
		if m.MatchupID == nil {
			byes = append(byes, m)
			continue
		}
		if _, found := games[*m.MatchupID]; !found {
			ids = append(ids, *m.MatchupID)
		}
		games[*m.MatchupID] = append(games[*m.MatchupID], m)
	}
	slices.Sort(ids)

	toResult := func(m matchup) *model.TeamResult {
		return &model.TeamResult{
			TeamID:   strconv.Itoa(m.RosterID),
			TeamName: names[m.RosterID],
			Points:   m.Points,
		}
	}

	results := make([]model.Matchup, 0, len(ids)+len(byes))
	for _, id := range ids {
		g := games[id]
		m := model.Matchup{Week: week, Home: toResult(g[0])}
		if len(g) > 1 {
			m.Away = toResult(g[1])
		}
		results = append(results, m)
	}
	for _, b := range byes {
		results = append(results, model.Matchup{Week: week, Home: toResult(b)})
	}

	return results, nil
}

func (c *client) getLeague(ctx context.Context, leagueID string) (*league, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return nil, errors.New("league id must be provided")
	}

	var lg league
	req := fetch.Request{CacheKey: fmt.Sprintf("sleeper:%s:league", leagueID), TTL: settingsTTL}
	if err := c.fetcher.GetJSON(ctx, fmt.Sprintf("%s/v1/league/%s", c.url, leagueID), req, &lg); err != nil {
		return nil, fmt.Errorf("error loading sleeper league %s: %w", leagueID, err)
	}

	// Sleeper answers unknown league ids with a 200 and a null body.
	if lg.ID == "" {
		return nil, fmt.Errorf("sleeper league %s not found", leagueID)
	}
	return &lg, nil
}

func (c *client) getRosters(ctx context.Context, leagueID string) ([]roster, error) {
	var rosters []roster
	url := fmt.Sprintf("%s/v1/league/%s/rosters", c.url, leagueID)
	if err := c.fetcher.GetJSON(ctx, url, fetch.Request{}, &rosters); err != nil {
		return nil, fmt.Errorf("error loading sleeper rosters for league %s: %w", leagueID, err)
	}
	return rosters, nil
}

// teamNames maps roster ids to the owner's team name, falling back to the
// owner's display name and then to the roster id.
func (c *client) teamNames(ctx context.Context, leagueID string, rosters []roster) (map[int]string, error) {
	var users []user
	req := fetch.Request{CacheKey: fmt.Sprintf("sleeper:%s:users", leagueID), TTL: settingsTTL}
	if err := c.fetcher.GetJSON(ctx, fmt.Sprintf("%s/v1/league/%s/users", c.url, leagueID), req, &users); err != nil {
		return nil, fmt.Errorf("error loading sleeper users for league %s: %w", leagueID, err)
	}

	byID := make(map[string]user, len(users))
	for _, u := range users {
		byID[u.UserID] = u
	}

	names := make(map[int]string, len(rosters))
	for _, r := range rosters {
		name := fmt.Sprintf("Team %d", r.RosterID)
		if r.OwnerID != nil {
			if u, found := byID[*r.OwnerID]; found {
				if u.Metadata != nil && u.Metadata.TeamName != "" {
					name = u.Metadata.TeamName
				} else if u.DisplayName != "" {
					name = u.DisplayName
				}
			}
		}
		names[r.RosterID] = name
	}
	return names, nil
}

func (c *client) getProjections(ctx context.Context, season string, week int) (map[string]*float64, error) {
	var parsed []projection
	url := fmt.Sprintf("%s/projections/nfl/%s/%d?season_type=regular", c.projectionsURL, season, week)
	req := fetch.Request{CacheKey: fmt.Sprintf("sleeper:projections:%s:%d", season, week)}
	if err := c.fetcher.GetJSON(ctx, url, req, &parsed); err != nil {
		return nil, fmt.Errorf("error loading sleeper projections for week %d: %w", week, err)
	}

	result := make(map[string]*float64, len(parsed))
	for _, p := range parsed {
		if v, found := p.Stats[c.scoring]; found {
			result[p.PlayerID] = model.Projection(v)
		}
	}
	return result, nil
}
