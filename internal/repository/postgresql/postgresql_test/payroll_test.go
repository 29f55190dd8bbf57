package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/fms-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/fms-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStructure(employeeID string) payroll.SalaryStructure {
	return payroll.SalaryStructure{
		EmployeeID:    employeeID,
		BasicSalary:   decimal.NewFromInt(20000),
		HRA:           decimal.NewFromInt(2000),
		ProvidentFund: decimal.NewFromInt(1000),
	}
}

func testRecord(employeeID, month string) payroll.PayrollRecord {
	return payroll.PayrollRecord{
		EmployeeID:       employeeID,
		Month:            month,
		BasicSalary:      decimal.NewFromInt(20000),
		EarnedBasic:      decimal.RequireFromString("18181.82"),
		SalaryLoss:       decimal.RequireFromString("1818.18"),
		Allowances:       decimal.NewFromInt(2000),
		Deductions:       decimal.NewFromInt(1000),
		NetSalary:        decimal.RequireFromString("17363.64"),
		PaidAmount:       decimal.RequireFromString("17363.64"),
		Status:           payroll.PayrollStatusProcessed,
		PresentDays:      20,
		AbsentDays:       2,
		TotalWorkingDays: 22,
		EarningLines:     testStructure(employeeID).Earnings(),
		DeductionLines:   testStructure(employeeID).Deductions(),
	}
}

// ===== SALARY STRUCTURE REPOSITORY TESTS =====

func TestSalaryStructureRepository_Lifecycle(t *testing.T) {
	resetTables(t)

	ctx := context.Background()
	createTestEmployee(t, ctx, "emp-1", "Asha", true)
	repo := postgresql.NewSalaryStructureRepository(testDB)

	created, err := repo.Create(ctx, testStructure("emp-1"))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.BasicSalary.Equal(decimal.NewFromInt(20000)))
	assert.True(t, created.TotalAllowances().Equal(decimal.NewFromInt(2000)))

	_, err = repo.Create(ctx, testStructure("emp-1"))
	assert.ErrorIs(t, err, payroll.ErrSalaryStructureExists)

	created.BasicSalary = decimal.NewFromInt(25000)
	replaced, err := repo.Replace(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, created.ID, replaced.ID)
	assert.True(t, replaced.BasicSalary.Equal(decimal.NewFromInt(25000)))

	byIDs, err := repo.GetByEmployeeIDs(ctx, []string{"emp-1", "emp-unknown"})
	require.NoError(t, err)
	assert.Len(t, byIDs, 1)

	require.NoError(t, repo.Delete(ctx, "emp-1"))
	_, err = repo.GetByEmployeeID(ctx, "emp-1")
	assert.ErrorIs(t, err, payroll.ErrSalaryStructureNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "emp-1"), payroll.ErrSalaryStructureNotFound)
}

func TestSalaryStructureRepository_ListOrdersByEmployeeName(t *testing.T) {
	resetTables(t)

	ctx := context.Background()
	createTestEmployee(t, ctx, "emp-1", "Zara", true)
	createTestEmployee(t, ctx, "emp-2", "Bala", true)
	repo := postgresql.NewSalaryStructureRepository(testDB)

	_, err := repo.Create(ctx, testStructure("emp-1"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, testStructure("emp-2"))
	require.NoError(t, err)

	structures, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, structures, 2)
	assert.Equal(t, "emp-2", structures[0].EmployeeID)
	assert.Equal(t, "emp-1", structures[1].EmployeeID)
}

// ===== PAYROLL REPOSITORY TESTS =====

func TestPayrollRepository_UpsertReplacesExistingRecord(t *testing.T) {
	resetTables(t)

	ctx := context.Background()
	createTestEmployee(t, ctx, "emp-1", "Asha", true)
	repo := postgresql.NewPayrollRepository(testDB)

	first, err := repo.UpsertRecord(ctx, testRecord("emp-1", "2024-03"))
	require.NoError(t, err)
	require.NotNil(t, first.EmployeeName)
	assert.Equal(t, "Asha", *first.EmployeeName)
	assert.Len(t, first.EarningLines, 8)
	assert.True(t, first.ComponentAmount(payroll.ComponentHRA).Equal(decimal.NewFromInt(2000)))

	paidDate := time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC)
	first.Status = payroll.PayrollStatusPaid
	first.PaidAmount = first.NetSalary
	first.PaymentDate = &paidDate
	require.NoError(t, repo.UpdatePaymentStatus(ctx, first))

	again := testRecord("emp-1", "2024-03")
	again.NetSalary = decimal.NewFromInt(19000)
	again.PaidAmount = again.NetSalary
	again.EarningLines = []payroll.Component{{Name: payroll.ComponentHRA, Amount: decimal.NewFromInt(3000)}}
	second, err := repo.UpsertRecord(ctx, again)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, payroll.PayrollStatusProcessed, second.Status)
	assert.True(t, second.PaidAmount.Equal(decimal.NewFromInt(19000)))
	assert.True(t, second.ComponentAmount(payroll.ComponentHRA).Equal(decimal.NewFromInt(3000)))
	assert.True(t, second.ComponentAmount(payroll.ComponentProvidentFund).Equal(decimal.NewFromInt(1000)))
	assert.Nil(t, second.PaymentDate)
	assert.True(t, second.NetSalary.Equal(decimal.NewFromInt(19000)))

	records, err := repo.ListRecordsByMonth(ctx, "2024-03")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestPayrollRepository_UpdatePaymentStatus(t *testing.T) {
	resetTables(t)

	ctx := context.Background()
	createTestEmployee(t, ctx, "emp-1", "Asha", true)
	repo := postgresql.NewPayrollRepository(testDB)

	rec, err := repo.UpsertRecord(ctx, testRecord("emp-1", "2024-03"))
	require.NoError(t, err)

	notes := "bank transfer"
	paidDate := time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC)
	rec.Status = payroll.PayrollStatusPartPaid
	rec.PaidAmount = decimal.NewFromInt(10000)
	rec.PaymentDate = &paidDate
	rec.Notes = &notes
	require.NoError(t, repo.UpdatePaymentStatus(ctx, rec))

	stored, err := repo.GetRecordByEmployeeMonth(ctx, "emp-1", "2024-03")
	require.NoError(t, err)
	assert.Equal(t, payroll.PayrollStatusPartPaid, stored.Status)
	assert.True(t, stored.PaidAmount.Equal(decimal.NewFromInt(10000)))
	require.NotNil(t, stored.PaymentDate)
	assert.Equal(t, "2024-04-05", stored.PaymentDate.Format("2006-01-02"))
	require.NotNil(t, stored.Notes)
	assert.Equal(t, notes, *stored.Notes)

	rec.ID = "missing"
	assert.ErrorIs(t, repo.UpdatePaymentStatus(ctx, rec), payroll.ErrPayrollRecordNotFound)
}

func TestPayrollRepository_ListRecordsFiltersAndPaginates(t *testing.T) {
	resetTables(t)

	ctx := context.Background()
	createTestEmployee(t, ctx, "emp-1", "Asha", true)
	createTestEmployee(t, ctx, "emp-2", "Bala", true)
	createTestEmployee(t, ctx, "emp-3", "Chitra", true)
	repo := postgresql.NewPayrollRepository(testDB)

	for _, id := range []string{"emp-1", "emp-2", "emp-3"} {
		_, err := repo.UpsertRecord(ctx, testRecord(id, "2024-03"))
		require.NoError(t, err)
	}
	_, err := repo.UpsertRecord(ctx, testRecord("emp-1", "2024-02"))
	require.NoError(t, err)

	month := "2024-03"
	records, total, err := repo.ListRecords(ctx, payroll.PayrollFilter{
		Month:  &month,
		Page:   1,
		Limit:  2,
		SortBy: "employee_name",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, records, 2)
	assert.Equal(t, "emp-1", records[0].EmployeeID)
	assert.Equal(t, "emp-2", records[1].EmployeeID)

	employeeID := "emp-1"
	records, total, err = repo.ListRecords(ctx, payroll.PayrollFilter{EmployeeID: &employeeID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, records, 2)
}

func TestPayrollRepository_DeleteRecord(t *testing.T) {
	resetTables(t)

	ctx := context.Background()
	createTestEmployee(t, ctx, "emp-1", "Asha", true)
	repo := postgresql.NewPayrollRepository(testDB)

	rec, err := repo.UpsertRecord(ctx, testRecord("emp-1", "2024-03"))
	require.NoError(t, err)

	require.NoError(t, repo.DeleteRecord(ctx, rec.ID))
	_, err = repo.GetRecordByID(ctx, rec.ID)
	assert.ErrorIs(t, err, payroll.ErrPayrollRecordNotFound)
	assert.ErrorIs(t, repo.DeleteRecord(ctx, rec.ID), payroll.ErrPayrollRecordNotFound)
}
