package model

import (
	"strings"
)

type Position string

const (
	POS_UNKNOWN Position = "UNK"
	POS_QB      Position = "QB"
	POS_RB      Position = "RB"
	POS_WR      Position = "WR"
	POS_TE      Position = "TE"
	POS_DST     Position = "D/ST"
	POS_K       Position = "K"
)

func ParsePosition(pos string) Position {
	pos = strings.ToLower(strings.TrimSpace(pos))
	switch pos {
	case "qb":
		return POS_QB
	case "rb", "fb":
		return POS_RB
	case "wr":
		return POS_WR
	case "te":
		return POS_TE
	case "d/st", "dst", "def":
		return POS_DST
	case "k", "pk":
		return POS_K
	default:
		return POS_UNKNOWN
	}
}

// ESPNPosition converts an ESPN defaultPositionId into a Position.
func ESPNPosition(id int) Position {
	switch id {
	case 1:
		return POS_QB
	case 2:
		return POS_RB
	case 3:
		return POS_WR
	case 4:
		return POS_TE
	case 5:
		return POS_K
	case 16:
		return POS_DST
	default:
		return POS_UNKNOWN
	}
}
