package model

import (
	"fmt"
	"strings"
)

type NFLTeam struct {
	name    string
	loc     string
	mascot  string
	espnID  int
	aliases []string // Other abbreviations used by the platforms, e.g. WSH for WAS
}

func (t *NFLTeam) String() string {
	return t.name
}

func (t *NFLTeam) Friendly() string {
	if t.loc == "" {
		return t.name
	}
	return fmt.Sprintf("%s %s", t.loc, t.mascot)
}

var (
	TEAM_FA *NFLTeam = &NFLTeam{name: "FA", espnID: 0}

	TEAM_ATL *NFLTeam = &NFLTeam{name: "ATL", loc: "Atlanta", mascot: "Falcons", espnID: 1}
	TEAM_BUF *NFLTeam = &NFLTeam{name: "BUF", loc: "Buffalo", mascot: "Bills", espnID: 2}
	TEAM_CHI *NFLTeam = &NFLTeam{name: "CHI", loc: "Chicago", mascot: "Bears", espnID: 3}
	TEAM_CIN *NFLTeam = &NFLTeam{name: "CIN", loc: "Cincinnati", mascot: "Bengals", espnID: 4}
	TEAM_CLE *NFLTeam = &NFLTeam{name: "CLE", loc: "Cleveland", mascot: "Browns", espnID: 5}
	TEAM_DAL *NFLTeam = &NFLTeam{name: "DAL", loc: "Dallas", mascot: "Cowboys", espnID: 6}
	TEAM_DEN *NFLTeam = &NFLTeam{name: "DEN", loc: "Denver", mascot: "Broncos", espnID: 7}
	TEAM_DET *NFLTeam = &NFLTeam{name: "DET", loc: "Detroit", mascot: "Lions", espnID: 8}
	TEAM_GB  *NFLTeam = &NFLTeam{name: "GB", loc: "Green Bay", mascot: "Packers", espnID: 9, aliases: []string{"GBP"}}
	TEAM_TEN *NFLTeam = &NFLTeam{name: "TEN", loc: "Tennessee", mascot: "Titans", espnID: 10}
	TEAM_IND *NFLTeam = &NFLTeam{name: "IND", loc: "Indianapolis", mascot: "Colts", espnID: 11}
	TEAM_KC  *NFLTeam = &NFLTeam{name: "KC", loc: "Kansas City", mascot: "Chiefs", espnID: 12, aliases: []string{"KCC"}}
	TEAM_LV  *NFLTeam = &NFLTeam{name: "LV", loc: "Las Vegas", mascot: "Raiders", espnID: 13, aliases: []string{"LVR", "OAK"}}
	TEAM_LAR *NFLTeam = &NFLTeam{name: "LAR", loc: "Los Angeles", mascot: "Rams", espnID: 14, aliases: []string{"LA"}}
	TEAM_MIA *NFLTeam = &NFLTeam{name: "MIA", loc: "Miami", mascot: "Dolphins", espnID: 15}
	TEAM_MIN *NFLTeam = &NFLTeam{name: "MIN", loc: "Minnesota", mascot: "Vikings", espnID: 16}
	TEAM_NE  *NFLTeam = &NFLTeam{name: "NE", loc: "New England", mascot: "Patriots", espnID: 17, aliases: []string{"NEP"}}
	TEAM_NO  *NFLTeam = &NFLTeam{name: "NO", loc: "New Orleans", mascot: "Saints", espnID: 18, aliases: []string{"NOS"}}
	TEAM_NYG *NFLTeam = &NFLTeam{name: "NYG", loc: "New York", mascot: "Giants", espnID: 19}
	TEAM_NYJ *NFLTeam = &NFLTeam{name: "NYJ", loc: "New York", mascot: "Jets", espnID: 20}
	TEAM_PHI *NFLTeam = &NFLTeam{name: "PHI", loc: "Philadelphia", mascot: "Eagles", espnID: 21}
	TEAM_ARI *NFLTeam = &NFLTeam{name: "ARI", loc: "Arizona", mascot: "Cardinals", espnID: 22}
	TEAM_PIT *NFLTeam = &NFLTeam{name: "PIT", loc: "Pittsburgh", mascot: "Steelers", espnID: 23}
	TEAM_LAC *NFLTeam = &NFLTeam{name: "LAC", loc: "Los Angeles", mascot: "Chargers", espnID: 24}
	TEAM_SF  *NFLTeam = &NFLTeam{name: "SF", loc: "San Francisco", mascot: "49ers", espnID: 25, aliases: []string{"SFO"}}
	TEAM_SEA *NFLTeam = &NFLTeam{name: "SEA", loc: "Seattle", mascot: "Seahawks", espnID: 26}
	TEAM_TB  *NFLTeam = &NFLTeam{name: "TB", loc: "Tampa Bay", mascot: "Buccaneers", espnID: 27, aliases: []string{"TBB"}}
	TEAM_WAS *NFLTeam = &NFLTeam{name: "WAS", loc: "Washington", mascot: "Commanders", espnID: 28, aliases: []string{"WSH"}}
	TEAM_CAR *NFLTeam = &NFLTeam{name: "CAR", loc: "Carolina", mascot: "Panthers", espnID: 29}
	TEAM_JAX *NFLTeam = &NFLTeam{name: "JAX", loc: "Jacksonville", mascot: "Jaguars", espnID: 30, aliases: []string{"JAC"}}
	TEAM_BAL *NFLTeam = &NFLTeam{name: "BAL", loc: "Baltimore", mascot: "Ravens", espnID: 33}
	TEAM_HOU *NFLTeam = &NFLTeam{name: "HOU", loc: "Houston", mascot: "Texans", espnID: 34}

	allTeams = []*NFLTeam{
		TEAM_FA, TEAM_ATL, TEAM_BUF, TEAM_CHI, TEAM_CIN, TEAM_CLE, TEAM_DAL, TEAM_DEN, TEAM_DET,
		TEAM_GB, TEAM_TEN, TEAM_IND, TEAM_KC, TEAM_LV, TEAM_LAR, TEAM_MIA, TEAM_MIN, TEAM_NE,
		TEAM_NO, TEAM_NYG, TEAM_NYJ, TEAM_PHI, TEAM_ARI, TEAM_PIT, TEAM_LAC, TEAM_SF, TEAM_SEA,
		TEAM_TB, TEAM_WAS, TEAM_CAR, TEAM_JAX, TEAM_BAL, TEAM_HOU,
	}

	teamsByName   = buildTeamsByName()
	teamsByESPNID = buildTeamsByESPNID()
)

// ParseTeam looks a team up by abbreviation. Unknown or empty names are
// free agents.
func ParseTeam(name string) *NFLTeam {
	t := teamsByName[strings.ToLower(strings.TrimSpace(name))]
	if t == nil {
		return TEAM_FA
	}
	return t
}

// ParseESPNTeam looks a team up by ESPN's proTeamId.
func ParseESPNTeam(id int) *NFLTeam {
	t := teamsByESPNID[id]
	if t == nil {
		return TEAM_FA
	}
	return t
}

func buildTeamsByName() map[string]*NFLTeam {
	m := make(map[string]*NFLTeam)
	for _, t := range allTeams {
		m[strings.ToLower(t.name)] = t
		for _, a := range t.aliases {
			m[strings.ToLower(a)] = t
		}
	}
	return m
}

func buildTeamsByESPNID() map[int]*NFLTeam {
	m := make(map[int]*NFLTeam)
	for _, t := range allTeams {
		m[t.espnID] = t
	}
	return m
}
