package cron

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cmlabs-hris/fms-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/fms-backend-go/internal/pkg/validator"
)

type PayrollJobs struct {
	payrollService payroll.PayrollService
	processDay     int
	now            func() time.Time

	mu      sync.Mutex
	lastRun string // YYYY-MM-DD of the last successful run
}

// NewPayrollJobs processes the previous month on processDay of every month.
func NewPayrollJobs(payrollService payroll.PayrollService, processDay int) *PayrollJobs {
	return &PayrollJobs{
		payrollService: payrollService,
		processDay:     processDay,
		now:            time.Now,
	}
}

func (j *PayrollJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("auto_process_payroll", 1*time.Hour, j.AutoProcessPayroll)
}

// AutoProcessPayroll runs at most once per day and only creates records that do not exist yet,
// so payments already recorded for the month are left untouched.
func (j *PayrollJobs) AutoProcessPayroll(ctx context.Context) error {
	now := j.now().UTC()
	if now.Day() != j.processDay {
		return nil
	}

	today := now.Format(validator.DateLayout)

	j.mu.Lock()
	defer j.mu.Unlock()
	if j.lastRun == today {
		return nil
	}

	month := validator.PreviousPeriod(now)
	slog.Info("Cron: Starting payroll auto-processing", "month", month)

	result, err := j.payrollService.ProcessPayroll(ctx, payroll.ProcessPayrollRequest{
		Month:       month,
		OnlyMissing: true,
	})
	if err != nil {
		return fmt.Errorf("auto-process payroll for %s: %w", month, err)
	}
	j.lastRun = today

	for _, f := range result.Failed {
		slog.Warn("Cron: Payroll failed for employee", "month", month, "employee_id", f.EmployeeID, "reason", f.Reason)
	}
	slog.Info("Cron: Payroll auto-processing completed",
		"month", month,
		"processed", len(result.Processed),
		"skipped", len(result.Skipped),
		"failed", len(result.Failed),
	)
	return nil
}
