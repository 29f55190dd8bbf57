package leave

import (
	"context"
)

// LeaveRepository - interface for leave_records table
type LeaveRepository interface {
	// ListByEmployeeMonth returns the leave records whose start date falls in month (YYYY-MM)
	ListByEmployeeMonth(ctx context.Context, employeeID string, month string) ([]LeaveRecord, error)

	// ListByEmployeesMonth is the batch form of ListByEmployeeMonth, keyed by employee ID
	ListByEmployeesMonth(ctx context.Context, employeeIDs []string, month string) (map[string][]LeaveRecord, error)
}
