package presence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSimulated_Range(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for site := 0; site < 5; site++ {
		fn := Simulated(site)
		for d := 0; d < 400; d++ {
			f := fn(start.AddDate(0, 0, d))
			assert.GreaterOrEqual(t, f, 0.75-1e-9)
			assert.LessOrEqual(t, f, 0.95+1e-9)
		}
	}
}

func TestSimulated_Deterministic(t *testing.T) {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, Simulated(2)(date), Simulated(2)(date))
	// time of day is irrelevant
	assert.Equal(t, Simulated(2)(date), Simulated(2)(date.Add(13*time.Hour)))
	assert.NotEqual(t, Simulated(1)(date), Simulated(2)(date))
}

func TestConstant(t *testing.T) {
	fn := Constant(0.9)
	assert.Equal(t, 0.9, fn(time.Now()))
}

func TestFromCounts(t *testing.T) {
	counts := map[string]int{
		"2024-03-01": 80,
		"2024-03-02": 120,
	}
	fn := FromCounts(counts, 100)

	assert.Equal(t, 0.8, fn(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 1.0, fn(time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0.0, fn(time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0.0, FromCounts(counts, 0)(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
}
