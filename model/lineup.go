package model

// LineupSlot holds the starters assigned to one slot, best projection first.
type LineupSlot struct {
	Slot     Slot
	Required int
	Players  []Player
}

// Open is the number of starters the slot is still missing.
func (s *LineupSlot) Open() int {
	if n := s.Required - len(s.Players); n > 0 {
		return n
	}
	return 0
}

// Lineup is the set of starters in the order the slots were filled.
type Lineup struct {
	Slots []LineupSlot
}

// Slot returns the players assigned to slot. If the slot appears more than
// once, the players of every entry are returned in order.
func (l *Lineup) Slot(slot Slot) []Player {
	var res []Player
	for _, s := range l.Slots {
		if s.Slot == slot {
			res = append(res, s.Players...)
		}
	}
	return res
}

func (l *Lineup) Starters() []Player {
	res := make([]Player, 0, 9)
	for _, s := range l.Slots {
		res = append(res, s.Players...)
	}
	return res
}

func (l *Lineup) ProjectedTotal() float64 {
	total := 0.0
	for _, s := range l.Slots {
		for i := range s.Players {
			total += s.Players[i].Points()
		}
	}
	return total
}

// OpenSlots counts the starting spots no player could fill.
func (l *Lineup) OpenSlots() int {
	open := 0
	for i := range l.Slots {
		open += l.Slots[i].Open()
	}
	return open
}

// TeamRoster is one fantasy team's roster for a scoring week.
type TeamRoster struct {
	TeamID   string
	TeamName string
	Week     int
	Players  []Player
}

// LineupResult is what the dashboard shows for a team.
type LineupResult struct {
	League   League
	TeamName string
	Week     int
	Slots    []SlotCount
	Lineup   Lineup
	Bench    []Player
}
