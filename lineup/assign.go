// Package lineup picks starters for a fantasy roster.
package lineup

import (
	"slices"

	"github.com/mww/starter_optimizer/model"
)

// Assign greedily fills the slots, in the order given, with the players that
// have the highest projected points. Players are identified by their index in
// roster, so two players that share a name are still different players. A
// player is never used in more than one slot; players that do not start are
// returned as the bench in roster order.
//
// Assign never fails: slots that can't be filled are left short and players
// with a position no slot allows always end up on the bench.
func Assign(roster []model.Player, slots []model.SlotCount) (model.Lineup, []model.Player) {
	buckets := bucketByPosition(roster)

	lineup := model.Lineup{Slots: make([]model.LineupSlot, 0, len(slots))}
	used := make(map[int]bool, len(roster))

	for _, s := range slots {
		ls := model.LineupSlot{
			Slot:     s.Slot,
			Required: max(s.Count, 0),
			Players:  make([]model.Player, 0, max(s.Count, 0)),
		}

		for _, idx := range eligible(buckets, s.Slot) {
			if len(ls.Players) >= ls.Required {
				break
			}
			if used[idx] {
				continue
			}
			ls.Players = append(ls.Players, roster[idx])
			used[idx] = true
		}

		lineup.Slots = append(lineup.Slots, ls)
	}

	bench := make([]model.Player, 0, len(roster)-len(used))
	for i := range roster {
		if !used[i] {
			bench = append(bench, roster[i])
		}
	}

	return lineup, bench
}

// buckets maps a position to the roster indexes of the players at that
// position, sorted by projected points with ties kept in roster order. The
// FLEX bucket is kept separately because its players also live in their
// base position bucket.
type buckets struct {
	byPosition map[model.Position][]int
	flex       []int
}

func bucketByPosition(roster []model.Player) *buckets {
	b := &buckets{byPosition: make(map[model.Position][]int)}
	for i := range roster {
		pos := roster[i].Position
		b.byPosition[pos] = append(b.byPosition[pos], i)
	}

	for _, pos := range model.FlexPositions {
		b.flex = append(b.flex, b.byPosition[pos]...)
	}

	byPoints := func(a, b int) int {
		pa, pb := roster[a].Points(), roster[b].Points()
		switch {
		case pa > pb:
			return -1
		case pa < pb:
			return 1
		default:
			return 0
		}
	}
	for pos := range b.byPosition {
		slices.SortStableFunc(b.byPosition[pos], byPoints)
	}
	slices.SortStableFunc(b.flex, byPoints)

	return b
}

func eligible(b *buckets, slot model.Slot) []int {
	if slot == model.SLOT_FLEX {
		return b.flex
	}
	pos := model.Position(slot)
	if pos == model.POS_UNKNOWN {
		return nil
	}
	return b.byPosition[pos]
}
