package cmd

import (
	"github.com/theirongolddev/spendwise/internal/cli"
	"github.com/theirongolddev/spendwise/internal/model"
)

func signedMoney(v float64) string {
	if v > 0 {
		return "+" + cli.FormatMoney(v)
	}
	return cli.FormatMoney(v)
}

func trendValues(points []model.TrendPoint) []float64 {
	vals := make([]float64, len(points))
	for i, p := range points {
		vals[i] = p.Amount
	}
	return vals
}
