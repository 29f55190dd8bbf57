package payroll

import "errors"

var (
	ErrSalaryStructureNotFound = errors.New("salary structure not found")
	ErrSalaryStructureExists   = errors.New("salary structure already exists for this employee")
	ErrPayrollRecordNotFound   = errors.New("payroll record not found")
	ErrInvalidPeriod           = errors.New("invalid payroll period")
	ErrInvalidInput            = errors.New("invalid payroll input")
	ErrInvalidStatus           = errors.New("invalid payroll status")
	ErrInvalidStatusTransition = errors.New("payroll status transition not allowed")
	ErrPaidAmountExceedsNet    = errors.New("paid amount exceeds net salary")
	ErrUnsupportedExportFormat = errors.New("unsupported export format")
)
