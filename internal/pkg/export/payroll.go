package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/cmlabs-hris/fms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/fms-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	ContentTypeCSV  = "text/csv"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// PayrollColumns is the fixed bank-upload layout of the payroll sheet.
var PayrollColumns = []string{
	"SR", "BANK AC", "BRANCH", "IFSC", "NAMES", "DEPARTMENT", "DESIGNATION",
	"DAYS", "PRESENT", "HALF DAYS", "ABSENT", "LEAVES",
	"BASIC", "EARNED BASIC",
	"HRA", "DA", "SPECIAL ALLOWANCE", "CONVEYANCE", "MEDICAL", "OTHER ALLOWANCES", "LEAVE ENCASHMENT", "ARREARS",
	"GROSS",
	"PF", "ESIC", "PT", "MLWF", "TDS", "ADVANCE", "OTHER DEDUCTIONS",
	"NET",
}

// PayrollRow is one employee line of the payroll sheet. Component columns
// come from the record's snapshot so that each row adds up to its NET.
type PayrollRow struct {
	Employee employee.Employee
	Record   payroll.PayrollRecord
}

// cell is either a string or a decimal amount.
type cell struct {
	text   string
	amount *decimal.Decimal
	number *int
}

func textCell(s string) cell { return cell{text: s} }

func intCell(n int) cell { return cell{number: &n} }

func amountCell(d decimal.Decimal) cell {
	rounded := d.Round(2)
	return cell{amount: &rounded}
}

func (c cell) String() string {
	switch {
	case c.amount != nil:
		return c.amount.StringFixed(2)
	case c.number != nil:
		return strconv.Itoa(*c.number)
	}
	return c.text
}

func (c cell) Value() interface{} {
	switch {
	case c.amount != nil:
		return c.amount.InexactFloat64()
	case c.number != nil:
		return *c.number
	}
	return c.text
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func rowCells(sr int, row PayrollRow) []cell {
	emp, rec := row.Employee, row.Record
	component := func(name string) cell { return amountCell(rec.ComponentAmount(name)) }

	return []cell{
		intCell(sr),
		textCell(deref(emp.BankAccountNumber)),
		textCell(deref(emp.BankBranch)),
		textCell(deref(emp.IFSCCode)),
		textCell(emp.Name),
		textCell(emp.Department),
		textCell(emp.Position),
		intCell(rec.TotalWorkingDays),
		intCell(rec.PresentDays),
		intCell(rec.HalfDays),
		intCell(rec.AbsentDays),
		intCell(rec.Leaves),
		amountCell(rec.BasicSalary),
		amountCell(rec.NetBasic()),
		component(payroll.ComponentHRA),
		component(payroll.ComponentDA),
		component(payroll.ComponentSpecialAllowance),
		component(payroll.ComponentConveyance),
		component(payroll.ComponentMedicalAllowance),
		component(payroll.ComponentOtherAllowances),
		component(payroll.ComponentLeaveEncashment),
		component(payroll.ComponentArrears),
		amountCell(rec.GrossSalary()),
		component(payroll.ComponentProvidentFund),
		component(payroll.ComponentESIC),
		component(payroll.ComponentProfessionalTax),
		component(payroll.ComponentMLWF),
		component(payroll.ComponentIncomeTax),
		component(payroll.ComponentAdvance),
		component(payroll.ComponentOtherDeductions),
		amountCell(rec.NetSalary),
	}
}

// PayrollCSV writes the header line followed by one line per row.
func PayrollCSV(rows []PayrollRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(PayrollColumns); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for i, row := range rows {
		cells := rowCells(i+1, row)
		line := make([]string, len(cells))
		for j, c := range cells {
			line[j] = c.String()
		}
		if err := w.Write(line); err != nil {
			return nil, fmt.Errorf("failed to write csv row %d: %w", i+1, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// PayrollXLSX renders the same layout as a single-sheet workbook with a
// title row, a styled header row and numeric amount cells.
func PayrollXLSX(month string, rows []PayrollRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Payroll " + month
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	lastCol, err := excelize.ColumnNumberToName(len(PayrollColumns))
	if err != nil {
		return nil, err
	}

	title := fmt.Sprintf("Payroll Sheet %s", month)
	f.SetCellValue(sheetName, "A1", title)
	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err == nil {
		f.SetCellStyle(sheetName, "A1", "A1", titleStyle)
	}
	f.MergeCell(sheetName, "A1", lastCol+"1")

	header := make([]interface{}, len(PayrollColumns))
	for i, col := range PayrollColumns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheetName, "A3", &header); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E0E0E0"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "top", Color: "#000000", Style: 1},
			{Type: "bottom", Color: "#000000", Style: 2},
			{Type: "left", Color: "#000000", Style: 1},
			{Type: "right", Color: "#000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err == nil {
		f.SetCellStyle(sheetName, "A3", lastCol+"3", headerStyle)
	}

	for i, row := range rows {
		cells := rowCells(i+1, row)
		values := make([]interface{}, len(cells))
		for j, c := range cells {
			values[j] = c.Value()
		}
		if err := f.SetSheetRow(sheetName, fmt.Sprintf("A%d", i+4), &values); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	f.SetColWidth(sheetName, "B", "G", 18)
	f.SetColWidth(sheetName, "M", lastCol, 14)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
