package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/fms-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/fms-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/fms-backend-go/internal/pkg/validator"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceRecordSelect = `
	SELECT id, employee_id, site_id, to_char(date, 'YYYY-MM-DD'), status, created_at
	FROM attendance_records`

// ListByEmployeeMonth implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployeeMonth(ctx context.Context, employeeID string, month string) ([]attendance.Record, error) {
	byEmployee, err := a.ListByEmployeesMonth(ctx, []string{employeeID}, month)
	if err != nil {
		return nil, err
	}
	return byEmployee[employeeID], nil
}

// ListByEmployeesMonth implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployeesMonth(ctx context.Context, employeeIDs []string, month string) (map[string][]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	result := make(map[string][]attendance.Record, len(employeeIDs))
	if len(employeeIDs) == 0 {
		return result, nil
	}

	start, next, err := validator.PeriodBounds(month)
	if err != nil {
		return nil, fmt.Errorf("invalid month %q: %w", month, err)
	}

	query := attendanceRecordSelect + `
		WHERE employee_id = ANY($1) AND date >= $2 AND date < $3
		ORDER BY employee_id, date ASC
	`

	rows, err := q.Query(ctx, query, employeeIDs, start, next)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.SiteID, &rec.Date, &rec.Status, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		result[rec.EmployeeID] = append(result[rec.EmployeeID], rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendance records: %w", err)
	}
	return result, nil
}

// CountPresentBySiteDates implements attendance.AttendanceRepository.
func (a *attendanceRepository) CountPresentBySiteDates(ctx context.Context, siteID string, start, end time.Time) (map[string]int, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT to_char(date, 'YYYY-MM-DD'), COUNT(*)
		FROM attendance_records
		WHERE site_id = $1 AND date BETWEEN $2 AND $3 AND status IN ('present', 'half-day')
		GROUP BY date
	`

	rows, err := q.Query(ctx, query, siteID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to count site attendance: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var date string
		var count int
		if err := rows.Scan(&date, &count); err != nil {
			return nil, fmt.Errorf("failed to scan site attendance count: %w", err)
		}
		counts[date] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating site attendance counts: %w", err)
	}
	return counts, nil
}
