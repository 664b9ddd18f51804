package model

import (
	"fmt"
	"math"
	"strings"
)

// Player is a rostered player as seen by the lineup assigner. Players are
// built fresh from a platform on every request and never modified.
type Player struct {
	ID              string
	Name            string
	Position        Position
	Team            *NFLTeam
	ProjectedPoints *float64 // nil when the platform has no projection
	InjuryStatus    string
}

// Points returns the projected points, treating a missing or non numeric
// projection as 0.
func (p *Player) Points() float64 {
	if p.ProjectedPoints == nil || math.IsNaN(*p.ProjectedPoints) {
		return 0
	}
	return *p.ProjectedPoints
}

func (p *Player) FormattedPoints() string {
	return fmt.Sprintf("%.1f", p.Points())
}

// IsInjured is true when the platform reports any status other than active.
func (p *Player) IsInjured() bool {
	switch strings.ToUpper(p.InjuryStatus) {
	case "", "ACTIVE", "NORMAL", "HEALTHY":
		return false
	default:
		return true
	}
}

// Label is the one line display form, e.g. "Josh Allen - 23.4 pts" or
// "⚠️ Josh Allen - 23.4 pts (QUESTIONABLE)".
func (p *Player) Label() string {
	base := fmt.Sprintf("%s - %s pts", p.Name, p.FormattedPoints())
	if p.IsInjured() {
		return fmt.Sprintf("⚠️ %s (%s)", base, p.InjuryStatus)
	}
	return base
}

// Projection is a helper for building a non-nil projected points value.
func Projection(v float64) *float64 {
	return &v
}
