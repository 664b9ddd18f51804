package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Slot is a named starting spot in a lineup.
type Slot string

const (
	SLOT_QB   Slot = "QB"
	SLOT_RB   Slot = "RB"
	SLOT_WR   Slot = "WR"
	SLOT_TE   Slot = "TE"
	SLOT_FLEX Slot = "FLEX"
	SLOT_DST  Slot = "D/ST"
	SLOT_K    Slot = "K"
)

// DefaultSlotOrder is the order slots are filled in. FLEX comes after RB, WR
// and TE so that it only picks up players not already starting at their base
// position.
var DefaultSlotOrder = []Slot{SLOT_QB, SLOT_RB, SLOT_WR, SLOT_TE, SLOT_FLEX, SLOT_DST, SLOT_K}

// FlexPositions are the positions allowed in the FLEX slot, in the order
// their buckets are concatenated.
var FlexPositions = []Position{POS_RB, POS_WR, POS_TE}

// SlotCount is how many starters a lineup needs in a slot.
type SlotCount struct {
	Slot  Slot
	Count int
}

// DefaultSlots is a standard one QB, two RB, two WR, one TE, one FLEX league.
func DefaultSlots() []SlotCount {
	return []SlotCount{
		{Slot: SLOT_QB, Count: 1},
		{Slot: SLOT_RB, Count: 2},
		{Slot: SLOT_WR, Count: 2},
		{Slot: SLOT_TE, Count: 1},
		{Slot: SLOT_FLEX, Count: 1},
		{Slot: SLOT_DST, Count: 1},
		{Slot: SLOT_K, Count: 1},
	}
}

func ParseSlot(s string) Slot {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "flex", "w/r/t", "rb/wr/te":
		return SLOT_FLEX
	case "d/st", "dst", "def":
		return SLOT_DST
	default:
		return Slot(strings.ToUpper(s))
	}
}

// Allows reports whether a player at position pos can start in the slot.
func (s Slot) Allows(pos Position) bool {
	if s == SLOT_FLEX {
		for _, p := range FlexPositions {
			if p == pos {
				return true
			}
		}
		return false
	}
	return pos != POS_UNKNOWN && string(s) == string(pos)
}

// ParseSlotCounts parses a list like "QB:1,RB:2,FLEX:1". The order of the
// entries is preserved.
func ParseSlotCounts(s string) ([]SlotCount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	result := make([]SlotCount, 0, 8)
	for _, part := range strings.Split(s, ",") {
		name, count, found := strings.Cut(part, ":")
		if !found {
			return nil, fmt.Errorf("slot entry must be in the SLOT:COUNT format, got: %s", part)
		}
		slot := ParseSlot(name)
		if slot == "" {
			return nil, fmt.Errorf("slot name missing in entry: %s", part)
		}
		n, err := strconv.Atoi(strings.TrimSpace(count))
		if err != nil {
			return nil, fmt.Errorf("error parsing count for slot %s: %w", slot, err)
		}
		if n < 0 {
			return nil, fmt.Errorf("count for slot %s must not be negative, got: %d", slot, n)
		}
		result = append(result, SlotCount{Slot: slot, Count: n})
	}
	return result, nil
}

func FormatSlotCounts(slots []SlotCount) string {
	parts := make([]string, 0, len(slots))
	for _, s := range slots {
		parts = append(parts, fmt.Sprintf("%s:%d", s.Slot, s.Count))
	}
	return strings.Join(parts, ",")
}
