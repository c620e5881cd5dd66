package ledger

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"45.50", 45.5},
		{"  12.99", 12.99},
		{"12abc", 12},
		{"$12", math.NaN()},
		{".5", 0.5},
		{"1.", 1},
		{"1e3", 1000},
		{"1e", 1},
		{"-3", -3},
		{"+7.25 dollars", 7.25},
		{"abc", math.NaN()},
		{"-", math.NaN()},
		{"Infinity", math.Inf(1)},
		{"-Infinity", math.Inf(-1)},
		{"1e999", math.Inf(1)},
	}
	for _, tt := range tests {
		got := ParseAmount(tt.in)
		if math.IsNaN(tt.want) {
			assert.True(t, math.IsNaN(got), "ParseAmount(%q) = %v, want NaN", tt.in, got)
			continue
		}
		assert.Equal(t, tt.want, got, "ParseAmount(%q)", tt.in)
	}
}
