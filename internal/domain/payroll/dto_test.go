package payroll

import (
	"errors"
	"testing"

	"github.com/cmlabs-hris/fms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestSalaryStructureRequest_ValidateOrder(t *testing.T) {
	req := SalaryStructureRequest{
		BasicSalary: decPtr("20000"),
		MLWF:        decPtr("-1"),
		HRA:         decPtr("-5"),
		ESIC:        decPtr("-2"),
	}

	for i := 0; i < 20; i++ {
		err := req.Validate()

		var verrs validator.ValidationErrors
		require.True(t, errors.As(err, &verrs))

		fields := make([]string, len(verrs))
		for j, e := range verrs {
			fields[j] = e.Field
		}
		assert.Equal(t, []string{"employee_id", "hra", "esic", "mlwf"}, fields)
	}
}

func TestSalaryStructureRequest_ToEntityDefaultsToZero(t *testing.T) {
	req := SalaryStructureRequest{EmployeeID: "emp-1", BasicSalary: decPtr("20000"), HRA: decPtr("2000")}
	require.NoError(t, req.Validate())

	st := req.ToEntity()
	assert.True(t, st.HRA.Equal(decimal.NewFromInt(2000)))
	assert.True(t, st.DA.IsZero())
	assert.True(t, st.TotalDeductions().IsZero())
}

func TestUpdatePaymentStatusRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     UpdatePaymentStatusRequest
		wantErr string
	}{
		{"paid", UpdatePaymentStatusRequest{Status: "paid"}, ""},
		{"hold with date", UpdatePaymentStatusRequest{Status: "hold", PaymentDate: strPtr("2024-04-05")}, ""},
		{"part-paid", UpdatePaymentStatusRequest{Status: "part-paid", PaidAmount: decPtr("0.005")}, ""},
		{"processed", UpdatePaymentStatusRequest{Status: "processed"}, "status"},
		{"part-paid without amount", UpdatePaymentStatusRequest{Status: "part-paid"}, "paid_amount"},
		{"part-paid rounds to zero", UpdatePaymentStatusRequest{Status: "part-paid", PaidAmount: decPtr("0.001")}, "paid_amount"},
		{"bad date", UpdatePaymentStatusRequest{Status: "paid", PaymentDate: strPtr("05/04/2024")}, "payment_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs))
			assert.Equal(t, tt.wantErr, verrs[0].Field)
		})
	}
}

func TestPayrollRecord_ComponentAmount(t *testing.T) {
	st := SalaryStructure{HRA: decimal.NewFromInt(2000), ProvidentFund: decimal.NewFromInt(1000)}
	rec := PayrollRecord{EarningLines: st.Earnings(), DeductionLines: st.Deductions()}

	assert.True(t, rec.ComponentAmount(ComponentHRA).Equal(decimal.NewFromInt(2000)))
	assert.True(t, rec.ComponentAmount(ComponentProvidentFund).Equal(decimal.NewFromInt(1000)))
	assert.True(t, rec.ComponentAmount(ComponentArrears).IsZero())
	assert.True(t, PayrollRecord{}.ComponentAmount(ComponentHRA).IsZero())
}

func strPtr(s string) *string { return &s }
