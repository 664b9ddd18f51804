package internal

// League is the part of the ESPN v3 league document the optimizer reads.
// Which fields are populated depends on the views requested.
type League struct {
	ID              int        `json:"id"`
	SeasonID        int        `json:"seasonId"`
	ScoringPeriodID int        `json:"scoringPeriodId"`
	Status          *Status    `json:"status"`
	Settings        *Settings  `json:"settings"`
	Teams           []Team     `json:"teams"`
	Schedule        []Schedule `json:"schedule"`
}

type Status struct {
	CurrentMatchupPeriod int `json:"currentMatchupPeriod"`
}

type Settings struct {
	Name           string          `json:"name"`
	RosterSettings *RosterSettings `json:"rosterSettings"`
}

type RosterSettings struct {
	// Keyed by ESPN lineup slot id, e.g. "0" for QB.
	LineupSlotCounts map[string]int `json:"lineupSlotCounts"`
}

type Team struct {
	ID       int     `json:"id"`
	Abbrev   string  `json:"abbrev"`
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Nickname string  `json:"nickname"`
	Roster   *Roster `json:"roster"`
}

type Roster struct {
	Entries []RosterEntry `json:"entries"`
}

type RosterEntry struct {
	PlayerID        int              `json:"playerId"`
	LineupSlotID    int              `json:"lineupSlotId"`
	InjuryStatus    string           `json:"injuryStatus"`
	PlayerPoolEntry *PlayerPoolEntry `json:"playerPoolEntry"`
}

type PlayerPoolEntry struct {
	Player *Player `json:"player"`
}

type Player struct {
	ID                int    `json:"id"`
	FullName          string `json:"fullName"`
	DefaultPositionID int    `json:"defaultPositionId"`
	ProTeamID         int    `json:"proTeamId"`
	InjuryStatus      string `json:"injuryStatus"`
	Stats             []Stat `json:"stats"`
}

type Stat struct {
	SeasonID        int     `json:"seasonId"`
	ScoringPeriodID int     `json:"scoringPeriodId"`
	StatSourceID    int     `json:"statSourceId"`    // 0 actual, 1 projected
	StatSplitTypeID int     `json:"statSplitTypeId"` // 0 season, 1 single week
	AppliedTotal    float64 `json:"appliedTotal"`
}

type Schedule struct {
	ID              int           `json:"id"`
	MatchupPeriodID int           `json:"matchupPeriodId"`
	Home            *ScheduleTeam `json:"home"`
	Away            *ScheduleTeam `json:"away"`
}

type ScheduleTeam struct {
	TeamID                   int     `json:"teamId"`
	TotalPoints              float64 `json:"totalPoints"`
	TotalProjectedPointsLive float64 `json:"totalProjectedPointsLive"`
}
