package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/fms-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/fms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/fms-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/fms-backend-go/internal/domain/site"
	"github.com/cmlabs-hris/fms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Reference data errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, site.ErrSiteNotFound):
		NotFound(w, "Site not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrSalaryStructureNotFound):
		NotFound(w, "Salary structure not found")
	case errors.Is(err, payroll.ErrPayrollRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrSalaryStructureExists):
		Conflict(w, "Salary structure already exists for this employee")
	case errors.Is(err, payroll.ErrInvalidPeriod),
		errors.Is(err, payroll.ErrInvalidStatus),
		errors.Is(err, payroll.ErrInvalidStatusTransition),
		errors.Is(err, payroll.ErrPaidAmountExceedsNet),
		errors.Is(err, payroll.ErrUnsupportedExportFormat),
		errors.Is(err, payroll.ErrInvalidInput):
		BadRequest(w, err.Error(), nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidRange),
		errors.Is(err, attendance.ErrInvalidDate),
		errors.Is(err, attendance.ErrRangeTooLong),
		errors.Is(err, attendance.ErrInvalidInput):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
