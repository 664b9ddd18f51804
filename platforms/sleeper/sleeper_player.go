package sleeper

import (
	"strings"

	"github.com/mww/starter_optimizer/model"
)

type sleeperPlayer struct {
	ID           string  `json:"player_id"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Position     string  `json:"position"`
	Team         *string `json:"team"`
	InjuryStatus *string `json:"injury_status"`
	Active       bool    `json:"active"`
}

// Sleeper uses a couple of placeholder entries in its player DB.
func (p *sleeperPlayer) isPlaceholder() bool {
	return p.FirstName == "Player" && p.LastName == "Invalid"
}

func (p *sleeperPlayer) toPlayer() model.Player {
	team := model.TEAM_FA
	if p.Team != nil {
		team = model.ParseTeam(*p.Team)
	}

	pos := model.ParsePosition(p.Position)
	name := strings.TrimSpace(p.FirstName + " " + p.LastName)
	if pos == model.POS_DST {
		// Defenses come back as "Baltimore Ravens", match the ESPN style instead.
		name = strings.TrimSpace(p.LastName + " D/ST")
	}

	injury := ""
	if p.InjuryStatus != nil {
		injury = strings.ToUpper(*p.InjuryStatus)
	}

	return model.Player{
		ID:           p.ID,
		Name:         name,
		Position:     pos,
		Team:         team,
		InjuryStatus: injury,
	}
}

type projection struct {
	PlayerID string             `json:"player_id"`
	Stats    map[string]float64 `json:"stats"`
}

type state struct {
	Season     string `json:"season"`
	SeasonType string `json:"season_type"`
	Week       int    `json:"week"`
	Leg        int    `json:"leg"`
}

type league struct {
	ID              string   `json:"league_id"`
	Name            string   `json:"name"`
	Season          string   `json:"season"`
	RosterPositions []string `json:"roster_positions"`
}

type roster struct {
	RosterID int      `json:"roster_id"`
	OwnerID  *string  `json:"owner_id"`
	Players  []string `json:"players"`
	Starters []string `json:"starters"`
}

type user struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Metadata    *struct {
		TeamName string `json:"team_name"`
	} `json:"metadata"`
}

type matchup struct {
	RosterID  int     `json:"roster_id"`
	MatchupID *int    `json:"matchup_id"`
	Points    float64 `json:"points"`
}
