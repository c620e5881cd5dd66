package pipeline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProject_SampleMonth(t *testing.T) {
	p := Project(1023.48, DefaultElapsedDays, PeriodDays, 1200)

	assert.InDelta(t, 2361.88, p.Projected, 0.01)
	assert.InDelta(t, 1161.88, p.Variance, 0.01)
	assert.True(t, p.Overspend())
	assert.Equal(t, 13, p.ElapsedDays)
	assert.Equal(t, 30, p.PeriodDays)
}

func TestProject_UnderBudget(t *testing.T) {
	p := Project(390, 13, 30, 1200)
	assert.InDelta(t, 900.0, p.Projected, 1e-9)
	assert.InDelta(t, -300.0, p.Variance, 1e-9)
	assert.False(t, p.Overspend())
}

func TestProject_Monotonic(t *testing.T) {
	prev := math.Inf(-1)
	for _, total := range []float64{0, 1, 10, 99.5, 500, 1023.48, 5000} {
		p := Project(total, 13, 30, 1200)
		assert.GreaterOrEqual(t, p.Projected, prev)
		prev = p.Projected
	}
}

func TestProject_ExactlyOnBudget(t *testing.T) {
	p := Project(600, 15, 30, 1200)
	assert.Equal(t, 0.0, p.Variance)
	assert.False(t, p.Overspend())
}

func TestProjectMonth(t *testing.T) {
	p := ProjectMonth(sampleExpenses(), september, DefaultElapsedDays, sampleBudget())
	assert.InDelta(t, 1023.48, p.Current, 1e-9)
	assert.InDelta(t, 1023.48/13*30, p.Projected, 1e-9)
}
