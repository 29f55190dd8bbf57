package payroll

import (
	"github.com/cmlabs-hris/fms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== SALARY STRUCTURE DTOs ==========

// SalaryStructureRequest is used for both creation and full replacement.
// Omitted components are stored as zero.
type SalaryStructureRequest struct {
	EmployeeID  string           `json:"employee_id"`
	BasicSalary *decimal.Decimal `json:"basic_salary"`

	HRA              *decimal.Decimal `json:"hra,omitempty"`
	DA               *decimal.Decimal `json:"da,omitempty"`
	SpecialAllowance *decimal.Decimal `json:"special_allowance,omitempty"`
	Conveyance       *decimal.Decimal `json:"conveyance,omitempty"`
	MedicalAllowance *decimal.Decimal `json:"medical_allowance,omitempty"`
	OtherAllowances  *decimal.Decimal `json:"other_allowances,omitempty"`
	LeaveEncashment  *decimal.Decimal `json:"leave_encashment,omitempty"`
	Arrears          *decimal.Decimal `json:"arrears,omitempty"`

	ProvidentFund   *decimal.Decimal `json:"provident_fund,omitempty"`
	ProfessionalTax *decimal.Decimal `json:"professional_tax,omitempty"`
	IncomeTax       *decimal.Decimal `json:"income_tax,omitempty"`
	OtherDeductions *decimal.Decimal `json:"other_deductions,omitempty"`
	ESIC            *decimal.Decimal `json:"esic,omitempty"`
	Advance         *decimal.Decimal `json:"advance,omitempty"`
	MLWF            *decimal.Decimal `json:"mlwf,omitempty"`
}

func (r *SalaryStructureRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if r.BasicSalary == nil {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "is required"})
	}

	amounts := []struct {
		field  string
		amount *decimal.Decimal
	}{
		{"basic_salary", r.BasicSalary},
		{"hra", r.HRA},
		{"da", r.DA},
		{"special_allowance", r.SpecialAllowance},
		{"conveyance", r.Conveyance},
		{"medical_allowance", r.MedicalAllowance},
		{"other_allowances", r.OtherAllowances},
		{"leave_encashment", r.LeaveEncashment},
		{"arrears", r.Arrears},
		{"provident_fund", r.ProvidentFund},
		{"professional_tax", r.ProfessionalTax},
		{"income_tax", r.IncomeTax},
		{"other_deductions", r.OtherDeductions},
		{"esic", r.ESIC},
		{"advance", r.Advance},
		{"mlwf", r.MLWF},
	}
	for _, a := range amounts {
		if a.amount != nil && a.amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: a.field, Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToEntity applies the zero default to every omitted component.
func (r *SalaryStructureRequest) ToEntity() SalaryStructure {
	return SalaryStructure{
		EmployeeID:       r.EmployeeID,
		BasicSalary:      valueOrZero(r.BasicSalary),
		HRA:              valueOrZero(r.HRA),
		DA:               valueOrZero(r.DA),
		SpecialAllowance: valueOrZero(r.SpecialAllowance),
		Conveyance:       valueOrZero(r.Conveyance),
		MedicalAllowance: valueOrZero(r.MedicalAllowance),
		OtherAllowances:  valueOrZero(r.OtherAllowances),
		LeaveEncashment:  valueOrZero(r.LeaveEncashment),
		Arrears:          valueOrZero(r.Arrears),
		ProvidentFund:    valueOrZero(r.ProvidentFund),
		ProfessionalTax:  valueOrZero(r.ProfessionalTax),
		IncomeTax:        valueOrZero(r.IncomeTax),
		OtherDeductions:  valueOrZero(r.OtherDeductions),
		ESIC:             valueOrZero(r.ESIC),
		Advance:          valueOrZero(r.Advance),
		MLWF:             valueOrZero(r.MLWF),
	}
}

func valueOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

type SalaryStructureResponse struct {
	ID               string          `json:"id"`
	EmployeeID       string          `json:"employee_id"`
	BasicSalary      decimal.Decimal `json:"basic_salary"`
	HRA              decimal.Decimal `json:"hra"`
	DA               decimal.Decimal `json:"da"`
	SpecialAllowance decimal.Decimal `json:"special_allowance"`
	Conveyance       decimal.Decimal `json:"conveyance"`
	MedicalAllowance decimal.Decimal `json:"medical_allowance"`
	OtherAllowances  decimal.Decimal `json:"other_allowances"`
	LeaveEncashment  decimal.Decimal `json:"leave_encashment"`
	Arrears          decimal.Decimal `json:"arrears"`
	ProvidentFund    decimal.Decimal `json:"provident_fund"`
	ProfessionalTax  decimal.Decimal `json:"professional_tax"`
	IncomeTax        decimal.Decimal `json:"income_tax"`
	OtherDeductions  decimal.Decimal `json:"other_deductions"`
	ESIC             decimal.Decimal `json:"esic"`
	Advance          decimal.Decimal `json:"advance"`
	MLWF             decimal.Decimal `json:"mlwf"`
	TotalAllowances  decimal.Decimal `json:"total_allowances"`
	TotalDeductions  decimal.Decimal `json:"total_deductions"`
	UpdatedAt        string          `json:"updated_at"`
}

// ========== PROCESSING DTOs ==========

type ProcessPayrollRequest struct {
	Month       string   `json:"month"`                  // YYYY-MM
	EmployeeIDs []string `json:"employee_ids,omitempty"` // Empty = all active employees
	OnlyMissing bool     `json:"only_missing,omitempty"` // Skip employees that already have a record
}

func (r *ProcessPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidPeriod(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be in YYYY-MM format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProcessedEmployee struct {
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	RecordID     string          `json:"record_id"`
	NetSalary    decimal.Decimal `json:"net_salary"`
}

type SkippedEmployee struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Reason       string `json:"reason"`
}

type ProcessPayrollResponse struct {
	Month     string              `json:"month"`
	Processed []ProcessedEmployee `json:"processed"`
	Skipped   []SkippedEmployee   `json:"skipped"`
	Failed    []SkippedEmployee   `json:"failed"`
}

type SalaryPreviewResponse struct {
	EmployeeID       string          `json:"employee_id"`
	Month            string          `json:"month"`
	HasStructure     bool            `json:"has_structure"`
	PresentDays      int             `json:"present_days"`
	AbsentDays       int             `json:"absent_days"`
	HalfDays         int             `json:"half_days"`
	Leaves           int             `json:"leaves"`
	TotalWorkingDays int             `json:"total_working_days"`
	DailyRate        decimal.Decimal `json:"daily_rate"`
	EarnedBasic      decimal.Decimal `json:"earned_basic"`
	SalaryLoss       decimal.Decimal `json:"salary_loss"`
	NetBasic         decimal.Decimal `json:"net_basic"`
	TotalAllowances  decimal.Decimal `json:"total_allowances"`
	TotalDeductions  decimal.Decimal `json:"total_deductions"`
	NetSalary        decimal.Decimal `json:"net_salary"`
}

// ========== PAYMENT STATUS DTOs ==========

type UpdatePaymentStatusRequest struct {
	ID          string
	Status      string           `json:"status"`
	PaidAmount  *decimal.Decimal `json:"paid_amount,omitempty"`
	PaymentDate *string          `json:"payment_date,omitempty"` // YYYY-MM-DD
	Notes       *string          `json:"notes,omitempty"`
}

func (r *UpdatePaymentStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	status := PayrollStatus(r.Status)
	if !status.IsPaymentStatus() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'paid', 'hold' or 'part-paid'"})
	}
	if status == PayrollStatusPartPaid {
		if r.PaidAmount == nil {
			errs = append(errs, validator.ValidationError{Field: "paid_amount", Message: "is required for part-paid"})
		} else if !r.PaidAmount.Round(2).IsPositive() {
			errs = append(errs, validator.ValidationError{Field: "paid_amount", Message: "must be at least 0.01"})
		}
	}
	if r.PaymentDate != nil {
		if _, ok := validator.IsValidDate(*r.PaymentDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "payment_date", Message: "must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== RECORD DTOs ==========

type PayrollRecordResponse struct {
	ID               string          `json:"id"`
	EmployeeID       string          `json:"employee_id"`
	EmployeeName     string          `json:"employee_name"`
	Department       *string         `json:"department,omitempty"`
	Position         *string         `json:"position,omitempty"`
	Month            string          `json:"month"`
	BasicSalary      decimal.Decimal `json:"basic_salary"`
	EarnedBasic      decimal.Decimal `json:"earned_basic"`
	SalaryLoss       decimal.Decimal `json:"salary_loss"`
	Allowances       decimal.Decimal `json:"allowances"`
	Deductions       decimal.Decimal `json:"deductions"`
	NetSalary        decimal.Decimal `json:"net_salary"`
	PaidAmount       decimal.Decimal `json:"paid_amount"`
	Status           string          `json:"status"`
	PresentDays      int             `json:"present_days"`
	AbsentDays       int             `json:"absent_days"`
	HalfDays         int             `json:"half_days"`
	Leaves           int             `json:"leaves"`
	TotalWorkingDays int             `json:"total_working_days"`
	PaymentDate      *string         `json:"payment_date,omitempty"`
	Notes            *string         `json:"notes,omitempty"`
	ProcessedAt      *string         `json:"processed_at,omitempty"`
}

type PayrollFilter struct {
	Month      *string `json:"month,omitempty"`
	Status     *string `json:"status,omitempty"`
	EmployeeID *string `json:"employee_id,omitempty"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
	SortBy     string  `json:"sort_by"`
	SortOrder  string  `json:"sort_order"`
}

type ListPayrollRecordResponse struct {
	Data       []PayrollRecordResponse `json:"data"`
	TotalCount int64                   `json:"total_count"`
	Page       int                     `json:"page"`
	Limit      int                     `json:"limit"`
}

type PayrollSheetResponse struct {
	Month string                  `json:"month"`
	Rows  []PayrollRecordResponse `json:"rows"`
}

type PayrollSummaryResponse struct {
	Month           string          `json:"month"`
	TotalEmployees  int             `json:"total_employees"`
	TotalBasic      decimal.Decimal `json:"total_basic"`
	TotalAllowances decimal.Decimal `json:"total_allowances"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TotalNetSalary  decimal.Decimal `json:"total_net_salary"`
	TotalPaid       decimal.Decimal `json:"total_paid"`
	ProcessedCount  int             `json:"processed_count"`
	PaidCount       int             `json:"paid_count"`
	HoldCount       int             `json:"hold_count"`
	PartPaidCount   int             `json:"part_paid_count"`
}

// ExportFile is a rendered payroll export ready to be streamed.
type ExportFile struct {
	FileName    string
	ContentType string
	Content     []byte
}
