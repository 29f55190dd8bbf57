package payroll

import "context"

// PayrollService defines payroll business operations
type PayrollService interface {
	// Salary structures
	CreateSalaryStructure(ctx context.Context, req SalaryStructureRequest) (SalaryStructureResponse, error)
	GetSalaryStructure(ctx context.Context, employeeID string) (SalaryStructureResponse, error)
	ListSalaryStructures(ctx context.Context) ([]SalaryStructureResponse, error)
	UpdateSalaryStructure(ctx context.Context, req SalaryStructureRequest) (SalaryStructureResponse, error)
	DeleteSalaryStructure(ctx context.Context, employeeID string) error

	// Processing
	ProcessPayroll(ctx context.Context, req ProcessPayrollRequest) (ProcessPayrollResponse, error)
	PreviewSalary(ctx context.Context, employeeID, month string) (SalaryPreviewResponse, error)

	// Records
	GetPayrollRecord(ctx context.Context, id string) (PayrollRecordResponse, error)
	ListPayrollRecords(ctx context.Context, filter PayrollFilter) (ListPayrollRecordResponse, error)
	UpdatePaymentStatus(ctx context.Context, req UpdatePaymentStatusRequest) (PayrollRecordResponse, error)
	DeletePayrollRecord(ctx context.Context, id string) error
	GetPayrollSheet(ctx context.Context, month string) (PayrollSheetResponse, error)
	GetPayrollSummary(ctx context.Context, month string) (PayrollSummaryResponse, error)

	// Output
	ExportPayroll(ctx context.Context, month, format string) (ExportFile, error)
	RenderSalarySlip(ctx context.Context, recordID string) ([]byte, error)
}
