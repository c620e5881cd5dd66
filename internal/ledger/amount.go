package ledger

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// amountPrefix matches the longest leading decimal literal in a string.
var amountPrefix = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)`)

// ParseAmount reads the leading number from s, ignoring any trailing text.
// Text without a leading number yields NaN rather than an error.
func ParseAmount(s string) float64 {
	m := amountPrefix.FindString(strings.TrimLeft(s, " \t\r\n"))
	if m == "" {
		return math.NaN()
	}
	// ParseFloat only fails here with ErrRange, and then returns ±Inf.
	v, _ := strconv.ParseFloat(m, 64)
	return v
}
