package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// StandardWorkingDays is the assumed month length used when an employee has
// no attendance records in the period.
const StandardWorkingDays = 22

// SalaryStructure - Monthly pay structure of one employee
type SalaryStructure struct {
	ID          string
	EmployeeID  string
	BasicSalary decimal.Decimal

	// Earnings
	HRA              decimal.Decimal
	DA               decimal.Decimal
	SpecialAllowance decimal.Decimal
	Conveyance       decimal.Decimal
	MedicalAllowance decimal.Decimal
	OtherAllowances  decimal.Decimal
	LeaveEncashment  decimal.Decimal
	Arrears          decimal.Decimal

	// Deductions
	ProvidentFund   decimal.Decimal
	ProfessionalTax decimal.Decimal
	IncomeTax       decimal.Decimal
	OtherDeductions decimal.Decimal
	ESIC            decimal.Decimal
	Advance         decimal.Decimal
	MLWF            decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Earnings returns the earning components in display order.
func (s SalaryStructure) Earnings() []Component {
	return []Component{
		{Name: ComponentHRA, Amount: s.HRA},
		{Name: ComponentDA, Amount: s.DA},
		{Name: ComponentSpecialAllowance, Amount: s.SpecialAllowance},
		{Name: ComponentConveyance, Amount: s.Conveyance},
		{Name: ComponentMedicalAllowance, Amount: s.MedicalAllowance},
		{Name: ComponentOtherAllowances, Amount: s.OtherAllowances},
		{Name: ComponentLeaveEncashment, Amount: s.LeaveEncashment},
		{Name: ComponentArrears, Amount: s.Arrears},
	}
}

// Deductions returns the deduction components in display order.
func (s SalaryStructure) Deductions() []Component {
	return []Component{
		{Name: ComponentProvidentFund, Amount: s.ProvidentFund},
		{Name: ComponentProfessionalTax, Amount: s.ProfessionalTax},
		{Name: ComponentIncomeTax, Amount: s.IncomeTax},
		{Name: ComponentOtherDeductions, Amount: s.OtherDeductions},
		{Name: ComponentESIC, Amount: s.ESIC},
		{Name: ComponentAdvance, Amount: s.Advance},
		{Name: ComponentMLWF, Amount: s.MLWF},
	}
}

// TotalAllowances sums every earning component.
func (s SalaryStructure) TotalAllowances() decimal.Decimal {
	return sumComponents(s.Earnings())
}

// TotalDeductions sums every deduction component.
func (s SalaryStructure) TotalDeductions() decimal.Decimal {
	return sumComponents(s.Deductions())
}

// Component names, also used as labels on slips.
const (
	ComponentHRA              = "HRA"
	ComponentDA               = "DA"
	ComponentSpecialAllowance = "Special Allowance"
	ComponentConveyance       = "Conveyance"
	ComponentMedicalAllowance = "Medical Allowance"
	ComponentOtherAllowances  = "Other Allowances"
	ComponentLeaveEncashment  = "Leave Encashment"
	ComponentArrears          = "Arrears"

	ComponentProvidentFund   = "Provident Fund"
	ComponentProfessionalTax = "Professional Tax"
	ComponentIncomeTax       = "Income Tax"
	ComponentOtherDeductions = "Other Deductions"
	ComponentESIC            = "ESIC"
	ComponentAdvance         = "Advance"
	ComponentMLWF            = "MLWF"
)

// Component is a named earning or deduction line.
type Component struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

func sumComponents(components []Component) decimal.Decimal {
	total := decimal.Zero
	for _, c := range components {
		total = total.Add(c.Amount)
	}
	return total
}

// AttendanceCounts - Attendance tally of one employee for one period
type AttendanceCounts struct {
	PresentDays      int
	AbsentDays       int
	HalfDays         int
	TotalWorkingDays int
}

// SalaryBreakdown - Calculator output. Amounts are rounded to 2 places.
type SalaryBreakdown struct {
	DailyRate       decimal.Decimal
	HalfDayRate     decimal.Decimal
	EarnedBasic     decimal.Decimal
	SalaryLoss      decimal.Decimal
	NetBasic        decimal.Decimal
	TotalAllowances decimal.Decimal
	TotalDeductions decimal.Decimal
	GrossSalary     decimal.Decimal
	NetSalary       decimal.Decimal
}

// PayrollStatus enum
type PayrollStatus string

const (
	PayrollStatusPending   PayrollStatus = "pending"
	PayrollStatusProcessed PayrollStatus = "processed"
	PayrollStatusPaid      PayrollStatus = "paid"
	PayrollStatusHold      PayrollStatus = "hold"
	PayrollStatusPartPaid  PayrollStatus = "part-paid"
)

// IsValid reports whether s is a known status.
func (s PayrollStatus) IsValid() bool {
	switch s {
	case PayrollStatusPending, PayrollStatusProcessed, PayrollStatusPaid, PayrollStatusHold, PayrollStatusPartPaid:
		return true
	}
	return false
}

// IsPaymentStatus reports whether s can only be set by an explicit payment update.
func (s PayrollStatus) IsPaymentStatus() bool {
	return s == PayrollStatusPaid || s == PayrollStatusHold || s == PayrollStatusPartPaid
}

// CanTransitionTo reports whether an administrator may move a record from s to next.
// Entering processed only happens through (re)processing, never through a status update.
func (s PayrollStatus) CanTransitionTo(next PayrollStatus) bool {
	if !next.IsPaymentStatus() {
		return false
	}
	return s == PayrollStatusProcessed || s.IsPaymentStatus()
}

// PayrollRecord - Processed payroll of one employee for one month
type PayrollRecord struct {
	ID               string
	EmployeeID       string
	Month            string // YYYY-MM
	BasicSalary      decimal.Decimal
	EarnedBasic      decimal.Decimal
	SalaryLoss       decimal.Decimal
	Allowances       decimal.Decimal
	Deductions       decimal.Decimal
	NetSalary        decimal.Decimal
	PaidAmount       decimal.Decimal
	Status           PayrollStatus
	PresentDays      int
	AbsentDays       int
	HalfDays         int
	Leaves           int
	TotalWorkingDays int
	PaymentDate      *time.Time
	Notes            *string
	ProcessedAt      time.Time
	UpdatedAt        time.Time

	// Structure components as they were when the record was processed
	EarningLines   []Component
	DeductionLines []Component

	// Joined fields
	EmployeeName *string
	Department   *string
	Position     *string
}

// NetBasic is the attendance-adjusted basic salary, never negative.
func (r PayrollRecord) NetBasic() decimal.Decimal {
	return decimal.Max(decimal.Zero, r.EarnedBasic.Sub(r.SalaryLoss))
}

// GrossSalary is the net basic plus all allowances.
func (r PayrollRecord) GrossSalary() decimal.Decimal {
	return r.NetBasic().Add(r.Allowances)
}

// ComponentAmount returns the snapshot amount of the named earning or
// deduction, or zero when the record holds no such line.
func (r PayrollRecord) ComponentAmount(name string) decimal.Decimal {
	for _, lines := range [][]Component{r.EarningLines, r.DeductionLines} {
		for _, c := range lines {
			if c.Name == name {
				return c.Amount
			}
		}
	}
	return decimal.Zero
}
