package attendance

import (
	"github.com/cmlabs-hris/fms-backend-go/internal/pkg/validator"
)

// ========================================
// SITE PERIOD DTOs
// ========================================

type SitePeriodRequest struct {
	SiteID      string `json:"site_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	IncludeDays bool   `json:"include_days"`
}

func (r *SitePeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SiteID) {
		errs = append(errs, validator.ValidationError{
			Field:   "site_id",
			Message: "site_id is required",
		})
	}
	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	}
	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SitesOverviewRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type SitesOverviewResponse struct {
	StartDate      string                 `json:"start_date"`
	EndDate        string                 `json:"end_date"`
	DaysInPeriod   int                    `json:"days_in_period"`
	TotalEmployees int                    `json:"total_employees"`
	Duration       PeriodTotals           `json:"duration"`
	Sites          []SiteAttendancePeriod `json:"sites"`
}

// ========================================
// EMPLOYEE COUNTS DTOs
// ========================================

type EmployeeCountsResponse struct {
	EmployeeID       string `json:"employee_id"`
	Month            string `json:"month"`
	PresentDays      int    `json:"present_days"`
	AbsentDays       int    `json:"absent_days"`
	HalfDays         int    `json:"half_days"`
	TotalWorkingDays int    `json:"total_working_days"`
	RecordCount      int    `json:"record_count"`
}
