package export

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/cmlabs-hris/fms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/fms-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// SalarySlip is the printable breakdown of one payroll record.
type SalarySlip struct {
	CompanyName string
	Employee    employee.Employee
	Record      payroll.PayrollRecord
}

type slipLine struct {
	Label  string
	Amount string
}

type slipView struct {
	CompanyName string
	Month       string
	Name        string
	Department  string
	Position    string
	BankAccount string
	IFSC        string
	Status      string

	WorkingDays int
	PresentDays int
	HalfDays    int
	AbsentDays  int
	Leaves      int

	Earnings   []slipLine
	Deductions []slipLine

	Basic           string
	EarnedBasic     string
	SalaryLoss      string
	GrossSalary     string
	TotalDeductions string
	NetSalary       string
	PaidAmount      string
}

var slipTemplate = template.Must(template.New("slip").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Salary Slip {{.Month}} - {{.Name}}</title>
<style>
body { font-family: Arial, sans-serif; font-size: 13px; margin: 24px; }
table { border-collapse: collapse; width: 100%; margin-bottom: 16px; }
th, td { border: 1px solid #999; padding: 4px 8px; text-align: left; }
td.amount { text-align: right; }
h1 { font-size: 18px; margin-bottom: 4px; }
</style>
</head>
<body>
<h1>{{.CompanyName}}</h1>
<p>Salary slip for {{.Month}}</p>
<table>
<tr><th>Name</th><td>{{.Name}}</td><th>Department</th><td>{{.Department}}</td></tr>
<tr><th>Designation</th><td>{{.Position}}</td><th>Status</th><td>{{.Status}}</td></tr>
<tr><th>Bank A/C</th><td>{{.BankAccount}}</td><th>IFSC</th><td>{{.IFSC}}</td></tr>
</table>
<table>
<tr><th>Working days</th><th>Present</th><th>Half days</th><th>Absent</th><th>Leaves</th></tr>
<tr><td>{{.WorkingDays}}</td><td>{{.PresentDays}}</td><td>{{.HalfDays}}</td><td>{{.AbsentDays}}</td><td>{{.Leaves}}</td></tr>
</table>
<table>
<tr><th>Earnings</th><th>Amount</th></tr>
<tr><td>Basic</td><td class="amount">{{.Basic}}</td></tr>
<tr><td>Earned basic</td><td class="amount">{{.EarnedBasic}}</td></tr>
<tr><td>Salary loss</td><td class="amount">{{.SalaryLoss}}</td></tr>
{{range .Earnings}}<tr><td>{{.Label}}</td><td class="amount">{{.Amount}}</td></tr>
{{end}}<tr><th>Gross</th><th class="amount">{{.GrossSalary}}</th></tr>
</table>
<table>
<tr><th>Deductions</th><th>Amount</th></tr>
{{range .Deductions}}<tr><td>{{.Label}}</td><td class="amount">{{.Amount}}</td></tr>
{{end}}<tr><th>Total deductions</th><th class="amount">{{.TotalDeductions}}</th></tr>
</table>
<table>
<tr><th>Net salary</th><th class="amount">{{.NetSalary}}</th></tr>
<tr><th>Paid</th><td class="amount">{{.PaidAmount}}</td></tr>
</table>
</body>
</html>
`))

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// RenderSalarySlip renders slip as a standalone HTML page.
// Zero components are left out of the earnings and deductions tables.
func RenderSalarySlip(slip SalarySlip) ([]byte, error) {
	rec := slip.Record
	view := slipView{
		CompanyName:     slip.CompanyName,
		Month:           rec.Month,
		Name:            slip.Employee.Name,
		Department:      slip.Employee.Department,
		Position:        slip.Employee.Position,
		BankAccount:     deref(slip.Employee.BankAccountNumber),
		IFSC:            deref(slip.Employee.IFSCCode),
		Status:          string(rec.Status),
		WorkingDays:     rec.TotalWorkingDays,
		PresentDays:     rec.PresentDays,
		HalfDays:        rec.HalfDays,
		AbsentDays:      rec.AbsentDays,
		Leaves:          rec.Leaves,
		Basic:           money(rec.BasicSalary),
		EarnedBasic:     money(rec.EarnedBasic),
		SalaryLoss:      money(rec.SalaryLoss),
		GrossSalary:     money(rec.GrossSalary()),
		TotalDeductions: money(rec.Deductions),
		NetSalary:       money(rec.NetSalary),
		PaidAmount:      money(rec.PaidAmount),
		Earnings:        slipLines(rec.EarningLines),
		Deductions:      slipLines(rec.DeductionLines),
	}

	var buf bytes.Buffer
	if err := slipTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("failed to render salary slip: %w", err)
	}
	return buf.Bytes(), nil
}

func slipLines(components []payroll.Component) []slipLine {
	lines := make([]slipLine, 0, len(components))
	for _, c := range components {
		if c.Amount.IsZero() {
			continue
		}
		lines = append(lines, slipLine{Label: c.Name, Amount: money(c.Amount)})
	}
	return lines
}
