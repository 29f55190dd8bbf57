package payroll

import (
	"fmt"

	"github.com/cmlabs-hris/fms-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// moneyPlaces is the rounding applied to every amount leaving the calculator.
const moneyPlaces = 2

var two = decimal.NewFromInt(2)

// SalaryCalculator turns a salary structure and a period's attendance into a
// net payable amount. Only the basic salary is attendance sensitive; allowances
// and deductions are fixed for the period.
type SalaryCalculator struct {
}

func NewSalaryCalculator() *SalaryCalculator {
	return &SalaryCalculator{}
}

// Calculate returns the full breakdown for one employee and period.
//
// A nil structure or a zero basic salary yields a zero breakdown, as does a
// period with no working days. Leave days are deducted at the daily rate in
// addition to absent days; callers that log leave days as absent must remove
// them from one of the two counts first.
func (c *SalaryCalculator) Calculate(structure *payroll.SalaryStructure, att payroll.AttendanceCounts, leaves int) (payroll.SalaryBreakdown, error) {
	if err := validateCounts(att, leaves); err != nil {
		return payroll.SalaryBreakdown{}, err
	}
	if structure == nil || structure.BasicSalary.IsZero() {
		return zeroBreakdown(), nil
	}
	if err := validateStructure(structure); err != nil {
		return payroll.SalaryBreakdown{}, err
	}
	if att.TotalWorkingDays == 0 {
		return zeroBreakdown(), nil
	}

	basic := structure.BasicSalary
	workingDays := decimal.NewFromInt(int64(att.TotalWorkingDays))

	dailyRate := basic.Div(workingDays)
	halfDayRate := dailyRate.Div(two)

	// Multiply before dividing so full attendance reproduces the basic exactly.
	earnedDays := decimal.NewFromInt(int64(att.PresentDays)).Add(decimal.NewFromInt(int64(att.HalfDays)).Div(two))
	earnedBasic := basic.Mul(earnedDays).Div(workingDays)

	lostDays := decimal.NewFromInt(int64(att.AbsentDays + leaves))
	salaryLoss := basic.Mul(lostDays).Div(workingDays)

	netBasic := decimal.Max(decimal.Zero, earnedBasic.Sub(salaryLoss))

	totalAllowances := structure.TotalAllowances()
	totalDeductions := structure.TotalDeductions()
	gross := netBasic.Add(totalAllowances)
	netSalary := decimal.Max(decimal.Zero, gross.Sub(totalDeductions))

	return payroll.SalaryBreakdown{
		DailyRate:       dailyRate.Round(moneyPlaces),
		HalfDayRate:     halfDayRate.Round(moneyPlaces),
		EarnedBasic:     earnedBasic.Round(moneyPlaces),
		SalaryLoss:      salaryLoss.Round(moneyPlaces),
		NetBasic:        netBasic.Round(moneyPlaces),
		TotalAllowances: totalAllowances.Round(moneyPlaces),
		TotalDeductions: totalDeductions.Round(moneyPlaces),
		GrossSalary:     gross.Round(moneyPlaces),
		NetSalary:       netSalary.Round(moneyPlaces),
	}, nil
}

// NetSalary is Calculate reduced to the payable amount.
func (c *SalaryCalculator) NetSalary(structure *payroll.SalaryStructure, att payroll.AttendanceCounts, leaves int) (decimal.Decimal, error) {
	breakdown, err := c.Calculate(structure, att, leaves)
	if err != nil {
		return decimal.Zero, err
	}
	return breakdown.NetSalary, nil
}

func zeroBreakdown() payroll.SalaryBreakdown {
	return payroll.SalaryBreakdown{
		DailyRate:       decimal.Zero,
		HalfDayRate:     decimal.Zero,
		EarnedBasic:     decimal.Zero,
		SalaryLoss:      decimal.Zero,
		NetBasic:        decimal.Zero,
		TotalAllowances: decimal.Zero,
		TotalDeductions: decimal.Zero,
		GrossSalary:     decimal.Zero,
		NetSalary:       decimal.Zero,
	}
}

func validateCounts(att payroll.AttendanceCounts, leaves int) error {
	switch {
	case att.PresentDays < 0:
		return fmt.Errorf("%w: present days is negative", payroll.ErrInvalidInput)
	case att.AbsentDays < 0:
		return fmt.Errorf("%w: absent days is negative", payroll.ErrInvalidInput)
	case att.HalfDays < 0:
		return fmt.Errorf("%w: half days is negative", payroll.ErrInvalidInput)
	case att.TotalWorkingDays < 0:
		return fmt.Errorf("%w: total working days is negative", payroll.ErrInvalidInput)
	case leaves < 0:
		return fmt.Errorf("%w: leave count is negative", payroll.ErrInvalidInput)
	}
	return nil
}

func validateStructure(structure *payroll.SalaryStructure) error {
	if structure.BasicSalary.IsNegative() {
		return fmt.Errorf("%w: basic salary is negative", payroll.ErrInvalidInput)
	}
	for _, c := range append(structure.Earnings(), structure.Deductions()...) {
		if c.Amount.IsNegative() {
			return fmt.Errorf("%w: %s is negative", payroll.ErrInvalidInput, c.Name)
		}
	}
	return nil
}
