package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeID(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{name: "string passes through", input: "abc123", expected: "abc123"},
		{name: "string is trimmed", input: "  7 ", expected: "7"},
		{name: "int renders decimal", input: 42, expected: "42"},
		{name: "int64 renders decimal", input: int64(7), expected: "7"},
		{name: "integral float renders decimal", input: float64(7), expected: "7"},
		{name: "fractional float keeps fraction", input: 7.5, expected: "7.5"},
		{name: "unsupported type is empty", input: struct{}{}, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeID(tt.input))
		})
	}
}

func TestMatchesID(t *testing.T) {
	tests := []struct {
		name      string
		stored    string
		requested string
		expected  bool
	}{
		{name: "exact match", stored: "7", requested: "7", expected: true},
		{name: "whitespace tolerated", stored: "7", requested: " 7 ", expected: true},
		{name: "leading zeros match numerically", stored: "7", requested: "007", expected: true},
		{name: "float re-encoding matches", stored: "7", requested: "7.0", expected: true},
		{name: "different numbers do not match", stored: "7", requested: "8", expected: false},
		{name: "fractional value does not match", stored: "7", requested: "7.5", expected: false},
		{name: "hex object id exact match", stored: "665f1c2e8b3e4a0012f00001", requested: "665f1c2e8b3e4a0012f00001", expected: true},
		{name: "hex object id mismatch", stored: "665f1c2e8b3e4a0012f00001", requested: "665f1c2e8b3e4a0012f00002", expected: false},
		{name: "non-numeric vs numeric", stored: "abc", requested: "7", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MatchesID(tt.stored, tt.requested))
		})
	}
}
