package payroll

import "context"

// SalaryStructureRepository stores at most one structure per employee.
type SalaryStructureRepository interface {
	Create(ctx context.Context, structure SalaryStructure) (SalaryStructure, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (SalaryStructure, error)
	GetByEmployeeIDs(ctx context.Context, employeeIDs []string) (map[string]SalaryStructure, error)
	List(ctx context.Context) ([]SalaryStructure, error)
	Replace(ctx context.Context, structure SalaryStructure) (SalaryStructure, error)
	Delete(ctx context.Context, employeeID string) error
}

// PayrollRepository stores at most one record per (employee, month).
type PayrollRepository interface {
	// UpsertRecord replaces any existing record for the same employee and month.
	UpsertRecord(ctx context.Context, record PayrollRecord) (PayrollRecord, error)
	GetRecordByID(ctx context.Context, id string) (PayrollRecord, error)
	GetRecordByEmployeeMonth(ctx context.Context, employeeID, month string) (PayrollRecord, error)
	ListRecords(ctx context.Context, filter PayrollFilter) ([]PayrollRecord, int64, error)
	ListRecordsByMonth(ctx context.Context, month string) ([]PayrollRecord, error)
	UpdatePaymentStatus(ctx context.Context, record PayrollRecord) error
	DeleteRecord(ctx context.Context, id string) error
}
