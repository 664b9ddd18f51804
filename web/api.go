package web

import (
	"github.com/mww/starter_optimizer/model"
)

type playerJSON struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Position        string   `json:"position"`
	Team            string   `json:"team,omitempty"`
	TeamName        string   `json:"team_name,omitempty"`
	ProjectedPoints *float64 `json:"projected_points"`
	InjuryStatus    string   `json:"injury_status,omitempty"`
}

type slotJSON struct {
	Slot     string       `json:"slot"`
	Required int          `json:"required"`
	Players  []playerJSON `json:"players"`
}

type slotCountJSON struct {
	Slot  string `json:"slot"`
	Count int    `json:"count"`
}

type lineupJSON struct {
	Platform       string       `json:"platform"`
	LeagueID       string       `json:"league_id"`
	TeamID         int          `json:"team_id"`
	TeamName       string       `json:"team_name"`
	Season         int          `json:"season"`
	Week           int          `json:"week"`
	Lineup         []slotJSON   `json:"lineup"`
	Bench          []playerJSON `json:"bench"`
	ProjectedTotal float64      `json:"projected_total"`
	OpenSlots      int          `json:"open_slots"`
}

func toLineupJSON(res *model.LineupResult) lineupJSON {
	out := lineupJSON{
		Platform:       res.League.Platform,
		LeagueID:       res.League.ExternalID,
		TeamID:         res.League.TeamID,
		TeamName:       res.TeamName,
		Season:         res.League.Season,
		Week:           res.Week,
		Lineup:         make([]slotJSON, 0, len(res.Lineup.Slots)),
		Bench:          toPlayersJSON(res.Bench),
		ProjectedTotal: res.Lineup.ProjectedTotal(),
		OpenSlots:      res.Lineup.OpenSlots(),
	}
	for _, s := range res.Lineup.Slots {
		out.Lineup = append(out.Lineup, slotJSON{
			Slot:     string(s.Slot),
			Required: s.Required,
			Players:  toPlayersJSON(s.Players),
		})
	}
	return out
}

// Always a list, never null, so clients can iterate without checks.
func toPlayersJSON(players []model.Player) []playerJSON {
	res := make([]playerJSON, 0, len(players))
	for _, p := range players {
		pj := playerJSON{
			ID:              p.ID,
			Name:            p.Name,
			Position:        string(p.Position),
			ProjectedPoints: p.ProjectedPoints,
			InjuryStatus:    p.InjuryStatus,
		}
		if p.Team != nil {
			pj.Team = p.Team.String()
			pj.TeamName = p.Team.Friendly()
		}
		res = append(res, pj)
	}
	return res
}

func toSlotCountsJSON(slots []model.SlotCount) []slotCountJSON {
	res := make([]slotCountJSON, 0, len(slots))
	for _, s := range slots {
		res = append(res, slotCountJSON{Slot: string(s.Slot), Count: s.Count})
	}
	return res
}
