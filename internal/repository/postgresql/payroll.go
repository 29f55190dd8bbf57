package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/fms-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/fms-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const payrollRecordSelect = `
	SELECT pr.id, pr.employee_id, pr.month, pr.basic_salary, pr.earned_basic, pr.salary_loss,
		   pr.allowances, pr.deductions, pr.net_salary, pr.paid_amount, pr.status,
		   pr.present_days, pr.absent_days, pr.half_days, pr.leaves, pr.total_working_days,
		   pr.payment_date, pr.notes, pr.processed_at, pr.updated_at,
		   COALESCE(pr.earning_lines, '[]'::jsonb), COALESCE(pr.deduction_lines, '[]'::jsonb),
		   e.name, e.department, e.position
	FROM payroll_records pr
	LEFT JOIN employees e ON e.id = pr.employee_id`

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

func scanPayrollRecord(row pgx.Row) (payroll.PayrollRecord, error) {
	var rec payroll.PayrollRecord
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Month, &rec.BasicSalary, &rec.EarnedBasic, &rec.SalaryLoss,
		&rec.Allowances, &rec.Deductions, &rec.NetSalary, &rec.PaidAmount, &rec.Status,
		&rec.PresentDays, &rec.AbsentDays, &rec.HalfDays, &rec.Leaves, &rec.TotalWorkingDays,
		&rec.PaymentDate, &rec.Notes, &rec.ProcessedAt, &rec.UpdatedAt,
		&rec.EarningLines, &rec.DeductionLines,
		&rec.EmployeeName, &rec.Department, &rec.Position,
	)
	return rec, err
}

func collectPayrollRecords(rows pgx.Rows) ([]payroll.PayrollRecord, error) {
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		rec, err := scanPayrollRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payroll records: %w", err)
	}
	return records, nil
}

// UpsertRecord implements payroll.PayrollRepository.
// An existing record for the same employee and month keeps its ID and has
// every other field, including payment details, overwritten.
func (r *payrollRepository) UpsertRecord(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("failed to generate payroll record id: %w", err)
	}
	if record.ProcessedAt.IsZero() {
		record.ProcessedAt = time.Now()
	}

	query := `
		INSERT INTO payroll_records (
			id, employee_id, month, basic_salary, earned_basic, salary_loss,
			allowances, deductions, net_salary, paid_amount, status,
			present_days, absent_days, half_days, leaves, total_working_days,
			payment_date, notes, processed_at, earning_lines, deduction_lines
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		ON CONFLICT (employee_id, month) DO UPDATE SET
			basic_salary = EXCLUDED.basic_salary,
			earned_basic = EXCLUDED.earned_basic,
			salary_loss = EXCLUDED.salary_loss,
			allowances = EXCLUDED.allowances,
			deductions = EXCLUDED.deductions,
			net_salary = EXCLUDED.net_salary,
			paid_amount = EXCLUDED.paid_amount,
			status = EXCLUDED.status,
			present_days = EXCLUDED.present_days,
			absent_days = EXCLUDED.absent_days,
			half_days = EXCLUDED.half_days,
			leaves = EXCLUDED.leaves,
			total_working_days = EXCLUDED.total_working_days,
			payment_date = EXCLUDED.payment_date,
			notes = EXCLUDED.notes,
			processed_at = EXCLUDED.processed_at,
			earning_lines = EXCLUDED.earning_lines,
			deduction_lines = EXCLUDED.deduction_lines,
			updated_at = NOW()
		RETURNING id
	`

	var stored payroll.PayrollRecord
	err = WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var storedID string
		err := tx.QueryRow(txCtx, query,
			id.String(), record.EmployeeID, record.Month, record.BasicSalary, record.EarnedBasic, record.SalaryLoss,
			record.Allowances, record.Deductions, record.NetSalary, record.PaidAmount, record.Status,
			record.PresentDays, record.AbsentDays, record.HalfDays, record.Leaves, record.TotalWorkingDays,
			record.PaymentDate, record.Notes, record.ProcessedAt, record.EarningLines, record.DeductionLines,
		).Scan(&storedID)
		if err != nil {
			return fmt.Errorf("failed to upsert payroll record: %w", err)
		}

		stored, err = r.GetRecordByID(txCtx, storedID)
		return err
	})
	if err != nil {
		return payroll.PayrollRecord{}, err
	}
	return stored, nil
}

// GetRecordByID implements payroll.PayrollRepository.
func (r *payrollRepository) GetRecordByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	rec, err := scanPayrollRecord(q.QueryRow(ctx, payrollRecordSelect+` WHERE pr.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}
	return rec, nil
}

// GetRecordByEmployeeMonth implements payroll.PayrollRepository.
func (r *payrollRepository) GetRecordByEmployeeMonth(ctx context.Context, employeeID, month string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := payrollRecordSelect + ` WHERE pr.employee_id = $1 AND pr.month = $2`

	rec, err := scanPayrollRecord(q.QueryRow(ctx, query, employeeID, month))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}
	return rec, nil
}

// ListRecords implements payroll.PayrollRepository.
func (r *payrollRepository) ListRecords(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollRecord, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ` WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if filter.Month != nil {
		where += fmt.Sprintf(" AND pr.month = $%d", argIdx)
		args = append(args, *filter.Month)
		argIdx++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(" AND pr.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.EmployeeID != nil {
		where += fmt.Sprintf(" AND pr.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	// Count query
	var totalCount int64
	countQuery := `SELECT COUNT(*) FROM payroll_records pr` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll records: %w", err)
	}

	// Sort
	sortColumn := "pr.month DESC, e.name"
	if filter.SortBy != "" {
		allowedColumns := map[string]string{
			"month":         "pr.month",
			"employee_name": "e.name",
			"net_salary":    "pr.net_salary",
			"processed_at":  "pr.processed_at",
		}
		if col, ok := allowedColumns[filter.SortBy]; ok {
			sortColumn = col
		}
	}
	sortOrder := "ASC"
	if filter.SortOrder == "desc" {
		sortOrder = "DESC"
	}

	// Pagination
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	query := fmt.Sprintf("%s%s ORDER BY %s %s LIMIT $%d OFFSET $%d",
		payrollRecordSelect, where, sortColumn, sortOrder, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll records: %w", err)
	}

	records, err := collectPayrollRecords(rows)
	if err != nil {
		return nil, 0, err
	}
	return records, totalCount, nil
}

// ListRecordsByMonth implements payroll.PayrollRepository.
func (r *payrollRepository) ListRecordsByMonth(ctx context.Context, month string) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, payrollRecordSelect+` WHERE pr.month = $1 ORDER BY e.name ASC, pr.employee_id ASC`, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	return collectPayrollRecords(rows)
}

// UpdatePaymentStatus implements payroll.PayrollRepository.
func (r *payrollRepository) UpdatePaymentStatus(ctx context.Context, record payroll.PayrollRecord) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_records SET
			status = $2,
			paid_amount = $3,
			payment_date = $4,
			notes = $5,
			updated_at = NOW()
		WHERE id = $1 AND status <> 'pending'
	`

	tag, err := q.Exec(ctx, query, record.ID, record.Status, record.PaidAmount, record.PaymentDate, record.Notes)
	if err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollRecordNotFound
	}
	return nil
}

// DeleteRecord implements payroll.PayrollRepository.
func (r *payrollRepository) DeleteRecord(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payroll_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payroll record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollRecordNotFound
	}
	return nil
}
