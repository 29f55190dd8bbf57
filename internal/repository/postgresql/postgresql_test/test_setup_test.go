package postgresql_test

import (
	"context"
	"fmt"
	"os"

	"github.com/cmlabs-hris/fms-backend-go/internal/pkg/database"
)

// TestDatabaseSetup wraps the connection used by the repository integration tests
type TestDatabaseSetup struct {
	DB *database.DB
}

// NewTestDatabase connects to TEST_DATABASE_URL. ok is false when the variable is unset.
func NewTestDatabase() (setup *TestDatabaseSetup, ok bool, err error) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		return nil, false, nil
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		return nil, true, fmt.Errorf("failed to connect to test database: %w", err)
	}

	return &TestDatabaseSetup{DB: db}, true, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS sites (
		id TEXT PRIMARY KEY,
		code TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		address TEXT,
		total_employees INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS employees (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		department TEXT NOT NULL DEFAULT '',
		position TEXT NOT NULL DEFAULT '',
		site_id TEXT REFERENCES sites(id),
		bank_account_number TEXT,
		bank_branch TEXT,
		ifsc_code TEXT,
		gender TEXT,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS salary_structures (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL UNIQUE REFERENCES employees(id) ON DELETE CASCADE,
		basic_salary NUMERIC(12,2) NOT NULL,
		hra NUMERIC(12,2) NOT NULL DEFAULT 0,
		da NUMERIC(12,2) NOT NULL DEFAULT 0,
		special_allowance NUMERIC(12,2) NOT NULL DEFAULT 0,
		conveyance NUMERIC(12,2) NOT NULL DEFAULT 0,
		medical_allowance NUMERIC(12,2) NOT NULL DEFAULT 0,
		other_allowances NUMERIC(12,2) NOT NULL DEFAULT 0,
		leave_encashment NUMERIC(12,2) NOT NULL DEFAULT 0,
		arrears NUMERIC(12,2) NOT NULL DEFAULT 0,
		provident_fund NUMERIC(12,2) NOT NULL DEFAULT 0,
		professional_tax NUMERIC(12,2) NOT NULL DEFAULT 0,
		income_tax NUMERIC(12,2) NOT NULL DEFAULT 0,
		other_deductions NUMERIC(12,2) NOT NULL DEFAULT 0,
		esic NUMERIC(12,2) NOT NULL DEFAULT 0,
		advance NUMERIC(12,2) NOT NULL DEFAULT 0,
		mlwf NUMERIC(12,2) NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS payroll_records (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
		month TEXT NOT NULL,
		basic_salary NUMERIC(12,2) NOT NULL,
		earned_basic NUMERIC(12,2) NOT NULL,
		salary_loss NUMERIC(12,2) NOT NULL,
		allowances NUMERIC(12,2) NOT NULL,
		deductions NUMERIC(12,2) NOT NULL,
		net_salary NUMERIC(12,2) NOT NULL,
		paid_amount NUMERIC(12,2) NOT NULL DEFAULT 0,
		status TEXT NOT NULL,
		present_days INTEGER NOT NULL,
		absent_days INTEGER NOT NULL,
		half_days INTEGER NOT NULL,
		leaves INTEGER NOT NULL,
		total_working_days INTEGER NOT NULL,
		payment_date DATE,
		notes TEXT,
		processed_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		earning_lines JSONB,
		deduction_lines JSONB,
		UNIQUE (employee_id, month)
	)`,
	`CREATE TABLE IF NOT EXISTS attendance_records (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
		site_id TEXT REFERENCES sites(id),
		date DATE NOT NULL,
		status TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS leave_records (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		status TEXT NOT NULL,
		reason TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// EnsureSchema creates the tables the repositories read and write
func (t *TestDatabaseSetup) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := t.DB.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// TruncateAllTables removes every row from the test tables
func (t *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	tx, err := t.DB.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tables := []string{
		"leave_records",
		"attendance_records",
		"payroll_records",
		"salary_structures",
		"employees",
		"sites",
	}

	for _, table := range tables {
		_, err := tx.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit(ctx)
}

// Close closes the database connection
func (t *TestDatabaseSetup) Close() {
	t.DB.Close()
}
