package attendance

import (
	"context"
)

// AttendanceService defines attendance reporting operations
type AttendanceService interface {
	// GetSitePeriod aggregates the attendance of one site over a date range
	GetSitePeriod(ctx context.Context, req SitePeriodRequest) (SiteAttendancePeriod, error)

	// GetSitesOverview aggregates every site over a date range
	GetSitesOverview(ctx context.Context, req SitesOverviewRequest) (SitesOverviewResponse, error)

	// GetEmployeeCounts tallies an employee's attendance for a month
	GetEmployeeCounts(ctx context.Context, employeeID, month string) (EmployeeCountsResponse, error)
}
