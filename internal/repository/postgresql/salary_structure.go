package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/fms-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/fms-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const salaryStructureColumns = `
	id, employee_id, basic_salary,
	hra, da, special_allowance, conveyance, medical_allowance, other_allowances, leave_encashment, arrears,
	provident_fund, professional_tax, income_tax, other_deductions, esic, advance, mlwf,
	created_at, updated_at`

type salaryStructureRepository struct {
	db *database.DB
}

func NewSalaryStructureRepository(db *database.DB) payroll.SalaryStructureRepository {
	return &salaryStructureRepository{db: db}
}

func scanSalaryStructure(row pgx.Row) (payroll.SalaryStructure, error) {
	var s payroll.SalaryStructure
	err := row.Scan(
		&s.ID, &s.EmployeeID, &s.BasicSalary,
		&s.HRA, &s.DA, &s.SpecialAllowance, &s.Conveyance, &s.MedicalAllowance, &s.OtherAllowances, &s.LeaveEncashment, &s.Arrears,
		&s.ProvidentFund, &s.ProfessionalTax, &s.IncomeTax, &s.OtherDeductions, &s.ESIC, &s.Advance, &s.MLWF,
		&s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

func structureArgs(s payroll.SalaryStructure) []interface{} {
	return []interface{}{
		s.ID, s.EmployeeID, s.BasicSalary,
		s.HRA, s.DA, s.SpecialAllowance, s.Conveyance, s.MedicalAllowance, s.OtherAllowances, s.LeaveEncashment, s.Arrears,
		s.ProvidentFund, s.ProfessionalTax, s.IncomeTax, s.OtherDeductions, s.ESIC, s.Advance, s.MLWF,
	}
}

// Create implements payroll.SalaryStructureRepository.
func (r *salaryStructureRepository) Create(ctx context.Context, structure payroll.SalaryStructure) (payroll.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return payroll.SalaryStructure{}, fmt.Errorf("failed to generate salary structure id: %w", err)
	}
	structure.ID = id.String()

	query := `
		INSERT INTO salary_structures (
			id, employee_id, basic_salary,
			hra, da, special_allowance, conveyance, medical_allowance, other_allowances, leave_encashment, arrears,
			provident_fund, professional_tax, income_tax, other_deductions, esic, advance, mlwf
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING ` + salaryStructureColumns

	created, err := scanSalaryStructure(q.QueryRow(ctx, query, structureArgs(structure)...))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return payroll.SalaryStructure{}, payroll.ErrSalaryStructureExists
		}
		return payroll.SalaryStructure{}, fmt.Errorf("failed to create salary structure: %w", err)
	}
	return created, nil
}

// GetByEmployeeID implements payroll.SalaryStructureRepository.
func (r *salaryStructureRepository) GetByEmployeeID(ctx context.Context, employeeID string) (payroll.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryStructureColumns + ` FROM salary_structures WHERE employee_id = $1`

	s, err := scanSalaryStructure(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.SalaryStructure{}, payroll.ErrSalaryStructureNotFound
		}
		return payroll.SalaryStructure{}, fmt.Errorf("failed to get salary structure: %w", err)
	}
	return s, nil
}

// GetByEmployeeIDs implements payroll.SalaryStructureRepository.
func (r *salaryStructureRepository) GetByEmployeeIDs(ctx context.Context, employeeIDs []string) (map[string]payroll.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	result := make(map[string]payroll.SalaryStructure, len(employeeIDs))
	if len(employeeIDs) == 0 {
		return result, nil
	}

	query := `SELECT ` + salaryStructureColumns + ` FROM salary_structures WHERE employee_id = ANY($1)`

	rows, err := q.Query(ctx, query, employeeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query salary structures: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		s, err := scanSalaryStructure(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary structure: %w", err)
		}
		result[s.EmployeeID] = s
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating salary structures: %w", err)
	}
	return result, nil
}

// List implements payroll.SalaryStructureRepository.
func (r *salaryStructureRepository) List(ctx context.Context) ([]payroll.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + prefixColumns("ss", salaryStructureColumns) + `
		FROM salary_structures ss
		JOIN employees e ON e.id = ss.employee_id
		ORDER BY e.name ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query salary structures: %w", err)
	}
	defer rows.Close()

	var structures []payroll.SalaryStructure
	for rows.Next() {
		s, err := scanSalaryStructure(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary structure: %w", err)
		}
		structures = append(structures, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating salary structures: %w", err)
	}
	return structures, nil
}

// Replace implements payroll.SalaryStructureRepository.
func (r *salaryStructureRepository) Replace(ctx context.Context, structure payroll.SalaryStructure) (payroll.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salary_structures SET
			basic_salary = $3,
			hra = $4, da = $5, special_allowance = $6, conveyance = $7,
			medical_allowance = $8, other_allowances = $9, leave_encashment = $10, arrears = $11,
			provident_fund = $12, professional_tax = $13, income_tax = $14, other_deductions = $15,
			esic = $16, advance = $17, mlwf = $18,
			updated_at = NOW()
		WHERE id = $1 AND employee_id = $2
		RETURNING ` + salaryStructureColumns

	updated, err := scanSalaryStructure(q.QueryRow(ctx, query, structureArgs(structure)...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.SalaryStructure{}, payroll.ErrSalaryStructureNotFound
		}
		return payroll.SalaryStructure{}, fmt.Errorf("failed to replace salary structure: %w", err)
	}
	return updated, nil
}

// Delete implements payroll.SalaryStructureRepository.
func (r *salaryStructureRepository) Delete(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM salary_structures WHERE employee_id = $1`, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete salary structure: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrSalaryStructureNotFound
	}
	return nil
}
