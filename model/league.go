package model

import (
	"fmt"
	"time"
)

var PlatformESPN = "espn"
var PlatformSleeper = "sleeper"

func IsPlatformSupported(platform string) bool {
	return platform == PlatformESPN || platform == PlatformSleeper
}

// League identifies the team whose lineup is optimized.
type League struct {
	Platform   string
	ExternalID string
	TeamID     int
	Season     int
}

func (l League) String() string {
	return fmt.Sprintf("%s league %s team %d (%d)", l.Platform, l.ExternalID, l.TeamID, l.Season)
}

type TeamResult struct {
	TeamID          string
	TeamName        string
	Points          float64
	ProjectedPoints float64
}

// Matchup is one head to head game in a scoring week. Away is nil for a bye.
type Matchup struct {
	Week int
	Home *TeamResult
	Away *TeamResult
}

func (m *Matchup) IsBye() bool {
	return m.Away == nil
}

// WeeklyTotal is one line of the weekly log: the projected total of the
// optimized lineup for a team in a week.
type WeeklyTotal struct {
	Platform       string
	LeagueID       string
	TeamID         int
	Season         int
	Week           int
	ProjectedTotal float64
	Starters       int
	Recorded       time.Time
}

func (w *WeeklyTotal) FormattedRecordedTime() string {
	if w.Recorded.IsZero() {
		return "unknown"
	}
	return w.Recorded.Format(time.DateTime)
}
