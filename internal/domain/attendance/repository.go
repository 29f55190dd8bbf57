package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for daily attendance records.
type AttendanceRepository interface {
	// ListByEmployeeMonth returns the records whose date starts with month (YYYY-MM)
	ListByEmployeeMonth(ctx context.Context, employeeID string, month string) ([]Record, error)

	// ListByEmployeesMonth is the batch form of ListByEmployeeMonth, keyed by employee ID
	ListByEmployeesMonth(ctx context.Context, employeeIDs []string, month string) (map[string][]Record, error)

	// CountPresentBySiteDates counts present and half-day records per date (YYYY-MM-DD) for a site
	CountPresentBySiteDates(ctx context.Context, siteID string, start, end time.Time) (map[string]int, error)
}
