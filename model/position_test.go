package model

import "testing"

func TestParsePosition(t *testing.T) {
	tests := []struct {
		input    string
		expected Position
	}{
		{input: "QB", expected: POS_QB},
		{input: "qb", expected: POS_QB},
		{input: "WR", expected: POS_WR},
		{input: "wr", expected: POS_WR},
		{input: "RB", expected: POS_RB},
		{input: "rb", expected: POS_RB},
		{input: "FB", expected: POS_RB},
		{input: "TE", expected: POS_TE},
		{input: " te ", expected: POS_TE},
		{input: "D/ST", expected: POS_DST},
		{input: "DEF", expected: POS_DST},
		{input: "dst", expected: POS_DST},
		{input: "K", expected: POS_K},
		{input: "UNKNOWN", expected: POS_UNKNOWN},
		{input: "LB", expected: POS_UNKNOWN},
		{input: "", expected: POS_UNKNOWN},
	}

	for _, tc := range tests {
		a := ParsePosition(tc.input)
		if a != tc.expected {
			t.Errorf("input: '%s', expected: '%s', got '%s'", tc.input, tc.expected, a)
		}
	}
}

func TestESPNPosition(t *testing.T) {
	tests := []struct {
		id       int
		expected Position
	}{
		{id: 1, expected: POS_QB},
		{id: 2, expected: POS_RB},
		{id: 3, expected: POS_WR},
		{id: 4, expected: POS_TE},
		{id: 5, expected: POS_K},
		{id: 16, expected: POS_DST},
		{id: 7, expected: POS_UNKNOWN},
		{id: 0, expected: POS_UNKNOWN},
	}

	for _, tc := range tests {
		a := ESPNPosition(tc.id)
		if a != tc.expected {
			t.Errorf("id: %d, expected: '%s', got '%s'", tc.id, tc.expected, a)
		}
	}
}
