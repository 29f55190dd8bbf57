package attendance

import (
	"time"
)

// Status of one daily attendance record
type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusHalfDay Status = "half-day"
)

// IsValid reports whether s is a known daily status.
func (s Status) IsValid() bool {
	return s == StatusPresent || s == StatusAbsent || s == StatusHalfDay
}

// Record - Raw daily attendance log entry
type Record struct {
	ID         string
	EmployeeID string
	SiteID     string
	Date       string // YYYY-MM-DD
	Status     Status
	CreatedAt  time.Time
}

// WeeklyOffRatio is the share of the present population that is, on any day,
// present for payroll purposes but on its rostered weekly off.
const WeeklyOffRatio = 0.15

// PresenceFunc returns the fraction of the headcount present on date, in [0, 1].
type PresenceFunc func(date time.Time) float64

// DailyAttendance - Raw values of a single day
type DailyAttendance struct {
	Date          string `json:"date"`
	Present       int    `json:"present"`
	WeeklyOff     int    `json:"weekly_off"`
	ActualPresent int    `json:"actual_present"`
	Absent        int    `json:"absent"`
}

// PeriodTotals - Duration or daily-average figures of a period
type PeriodTotals struct {
	TotalRequired     int `json:"total_required"`
	WeeklyOff         int `json:"weekly_off"`
	OnSiteRequirement int `json:"on_site_requirement"`
	Present           int `json:"present"`
	Absent            int `json:"absent"`
}

// SiteAttendancePeriod - Aggregated attendance of a site over an inclusive date range.
// Duration.OnSiteRequirement + Duration.WeeklyOff always equals Duration.TotalRequired.
type SiteAttendancePeriod struct {
	SiteID         string            `json:"site_id,omitempty"`
	SiteName       string            `json:"site_name,omitempty"`
	StartDate      string            `json:"start_date"`
	EndDate        string            `json:"end_date"`
	TotalEmployees int               `json:"total_employees"`
	DaysInPeriod   int               `json:"days_in_period"`
	Duration       PeriodTotals      `json:"duration"`
	DailyAverage   PeriodTotals      `json:"daily_average"`
	Days           []DailyAttendance `json:"days,omitempty"`
}

// IsSingleDay reports whether duration and daily-average figures coincide.
func (p SiteAttendancePeriod) IsSingleDay() bool {
	return p.DaysInPeriod == 1
}
