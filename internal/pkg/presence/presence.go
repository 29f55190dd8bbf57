// Package presence provides presence-fraction sources for site attendance
// aggregation.
package presence

import (
	"math"
	"time"

	"github.com/cmlabs-hris/fms-backend-go/internal/domain/attendance"
)

const (
	simulatedBase      = 0.85
	simulatedAmplitude = 0.10
)

// Simulated returns a deterministic source for demo and test data.
// The fraction depends only on the calendar date and siteIndex and stays
// within [0.75, 0.95].
func Simulated(siteIndex int) attendance.PresenceFunc {
	return func(date time.Time) float64 {
		day := float64(date.Year()*400 + date.YearDay())
		return simulatedBase + simulatedAmplitude*math.Sin(day*0.7+float64(siteIndex)*1.3)
	}
}

// Constant returns a source reporting fraction for every date.
func Constant(fraction float64) attendance.PresenceFunc {
	return func(time.Time) float64 {
		return fraction
	}
}

// FromCounts turns per-date present counts (keyed YYYY-MM-DD) into fractions
// of headcount. Dates without an entry report zero and fractions are capped
// at one.
func FromCounts(counts map[string]int, headcount int) attendance.PresenceFunc {
	return func(date time.Time) float64 {
		if headcount <= 0 {
			return 0
		}
		n := counts[date.Format("2006-01-02")]
		if n <= 0 {
			return 0
		}
		return math.Min(1, float64(n)/float64(headcount))
	}
}
