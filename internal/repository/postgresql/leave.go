package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/fms-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/fms-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/fms-backend-go/internal/pkg/validator"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

// ListByEmployeeMonth implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListByEmployeeMonth(ctx context.Context, employeeID string, month string) ([]leave.LeaveRecord, error) {
	byEmployee, err := r.ListByEmployeesMonth(ctx, []string{employeeID}, month)
	if err != nil {
		return nil, err
	}
	return byEmployee[employeeID], nil
}

// ListByEmployeesMonth implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListByEmployeesMonth(ctx context.Context, employeeIDs []string, month string) (map[string][]leave.LeaveRecord, error) {
	q := GetQuerier(ctx, r.db)

	result := make(map[string][]leave.LeaveRecord, len(employeeIDs))
	if len(employeeIDs) == 0 {
		return result, nil
	}

	start, next, err := validator.PeriodBounds(month)
	if err != nil {
		return nil, fmt.Errorf("invalid month %q: %w", month, err)
	}

	query := `
		SELECT id, employee_id, to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'),
			   status, reason, created_at
		FROM leave_records
		WHERE employee_id = ANY($1) AND start_date >= $2 AND start_date < $3
		ORDER BY employee_id, start_date ASC
	`

	rows, err := q.Query(ctx, query, employeeIDs, start, next)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave records: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rec leave.LeaveRecord
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.StartDate, &rec.EndDate, &rec.Status, &rec.Reason, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan leave record: %w", err)
		}
		result[rec.EmployeeID] = append(result[rec.EmployeeID], rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating leave records: %w", err)
	}
	return result, nil
}
