package attendance

import (
	"fmt"
	"math"
	"time"

	"github.com/cmlabs-hris/fms-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/fms-backend-go/internal/pkg/validator"
)

// floorEpsilon absorbs float noise in headcount × fraction so that e.g.
// 20 × 0.85 floors to 17 and not 16.
const floorEpsilon = 1e-9

// AggregateDates parses start and end (YYYY-MM-DD) and calls Aggregate.
func AggregateDates(headcount int, startDate, endDate string, presence attendance.PresenceFunc, includeDays bool) (attendance.SiteAttendancePeriod, error) {
	start, end, err := ParseRange(startDate, endDate)
	if err != nil {
		return attendance.SiteAttendancePeriod{}, err
	}
	return Aggregate(headcount, start, end, presence, includeDays)
}

// ParseRange parses an inclusive date range and rejects end before start.
func ParseRange(startDate, endDate string) (time.Time, time.Time, error) {
	start, ok := validator.IsValidDate(startDate)
	if !ok {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start date %q", attendance.ErrInvalidDate, startDate)
	}
	end, ok := validator.IsValidDate(endDate)
	if !ok {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end date %q", attendance.ErrInvalidDate, endDate)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, attendance.ErrInvalidRange
	}
	return start, end, nil
}

// Aggregate sums the daily attendance of a site with a constant headcount
// over the inclusive range [start, end].
//
// Each day floors headcount × presence(date) to a present count, of which
// floor(present × WeeklyOffRatio) is on weekly off. Duration figures are
// sums over the range; daily averages divide them by the number of days and
// round half up. For a single day both blocks are that day's raw values.
func Aggregate(headcount int, start, end time.Time, presence attendance.PresenceFunc, includeDays bool) (attendance.SiteAttendancePeriod, error) {
	if headcount < 0 {
		return attendance.SiteAttendancePeriod{}, fmt.Errorf("%w: headcount %d is negative", attendance.ErrInvalidInput, headcount)
	}
	if presence == nil {
		return attendance.SiteAttendancePeriod{}, fmt.Errorf("%w: no presence source", attendance.ErrInvalidInput)
	}

	start = truncateDay(start)
	end = truncateDay(end)
	if end.Before(start) {
		return attendance.SiteAttendancePeriod{}, attendance.ErrInvalidRange
	}

	var days []attendance.DailyAttendance
	var daysInPeriod, cumulativePresent, cumulativeOff, cumulativeAbsent int

	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		day, err := aggregateDay(headcount, date, presence)
		if err != nil {
			return attendance.SiteAttendancePeriod{}, err
		}

		daysInPeriod++
		cumulativePresent += day.Present
		cumulativeOff += day.WeeklyOff
		cumulativeAbsent += day.Absent

		if includeDays {
			days = append(days, day)
		}
	}

	totalRequired := headcount * daysInPeriod
	duration := attendance.PeriodTotals{
		TotalRequired:     totalRequired,
		WeeklyOff:         cumulativeOff,
		OnSiteRequirement: totalRequired - cumulativeOff,
		Present:           cumulativePresent - cumulativeOff,
		Absent:            cumulativeAbsent,
	}

	period := attendance.SiteAttendancePeriod{
		StartDate:      start.Format(validator.DateLayout),
		EndDate:        end.Format(validator.DateLayout),
		TotalEmployees: headcount,
		DaysInPeriod:   daysInPeriod,
		Duration:       duration,
		Days:           days,
	}

	if period.IsSingleDay() {
		period.DailyAverage = duration
		return period, nil
	}

	period.DailyAverage = attendance.PeriodTotals{
		TotalRequired:     headcount,
		WeeklyOff:         roundHalfUp(duration.WeeklyOff, daysInPeriod),
		OnSiteRequirement: roundHalfUp(duration.OnSiteRequirement, daysInPeriod),
		Present:           roundHalfUp(duration.Present, daysInPeriod),
		Absent:            roundHalfUp(duration.Absent, daysInPeriod),
	}
	return period, nil
}

func aggregateDay(headcount int, date time.Time, presence attendance.PresenceFunc) (attendance.DailyAttendance, error) {
	fraction := presence(date)
	if math.IsNaN(fraction) || fraction < 0 || fraction > 1 {
		return attendance.DailyAttendance{}, fmt.Errorf("%w: presence fraction %v on %s", attendance.ErrInvalidInput, fraction, date.Format(validator.DateLayout))
	}

	present := int(math.Floor(float64(headcount)*fraction + floorEpsilon))
	if present > headcount {
		present = headcount
	}
	weeklyOff := int(math.Floor(float64(present)*attendance.WeeklyOffRatio + floorEpsilon))

	return attendance.DailyAttendance{
		Date:          date.Format(validator.DateLayout),
		Present:       present,
		WeeklyOff:     weeklyOff,
		ActualPresent: present - weeklyOff,
		Absent:        headcount - present,
	}, nil
}

// roundHalfUp divides two non-negative integers rounding .5 up.
func roundHalfUp(n, d int) int {
	return (2*n + d) / (2 * d)
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween counts the calendar days of the inclusive range [start, end].
func DaysBetween(start, end time.Time) int {
	return int(truncateDay(end).Sub(truncateDay(start)).Hours()/24) + 1
}
