package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/cmlabs-hris/fms-backend-go/internal/pkg/database"
	"github.com/stretchr/testify/require"
)

var testDB *database.DB

func TestMain(m *testing.M) {
	setup, ok, err := NewTestDatabase()
	if !ok {
		fmt.Println("TEST_DATABASE_URL not set, skipping postgresql integration tests")
		os.Exit(0)
	}
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if err := setup.EnsureSchema(context.Background()); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	testDB = setup.DB
	code := m.Run()
	setup.Close()
	os.Exit(code)
}

// resetTables truncates every table before and after the calling test
func resetTables(t *testing.T) {
	t.Helper()
	setup := &TestDatabaseSetup{DB: testDB}
	require.NoError(t, setup.TruncateAllTables(context.Background()))
	t.Cleanup(func() {
		require.NoError(t, setup.TruncateAllTables(context.Background()))
	})
}

func createTestSite(t *testing.T, ctx context.Context, id, code string, headcount int) {
	_, err := testDB.Exec(ctx, `
		INSERT INTO sites (id, code, name, total_employees)
		VALUES ($1, $2, $3, $4)
	`, id, code, "Site "+code, headcount)
	require.NoError(t, err)
}

func createTestEmployee(t *testing.T, ctx context.Context, id, name string, active bool) {
	_, err := testDB.Exec(ctx, `
		INSERT INTO employees (id, name, department, position, is_active)
		VALUES ($1, $2, 'Housekeeping', 'Supervisor', $3)
	`, id, name, active)
	require.NoError(t, err)
}

func createTestAttendance(t *testing.T, ctx context.Context, id, employeeID, siteID, date, status string) {
	_, err := testDB.Exec(ctx, `
		INSERT INTO attendance_records (id, employee_id, site_id, date, status)
		VALUES ($1, $2, $3, $4::date, $5)
	`, id, employeeID, siteID, date, status)
	require.NoError(t, err)
}

func createTestLeave(t *testing.T, ctx context.Context, id, employeeID, start, end, status string) {
	_, err := testDB.Exec(ctx, `
		INSERT INTO leave_records (id, employee_id, start_date, end_date, status)
		VALUES ($1, $2, $3::date, $4::date, $5)
	`, id, employeeID, start, end, status)
	require.NoError(t, err)
}
