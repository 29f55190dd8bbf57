package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/fms-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/fms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/fms-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/fms-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/fms-backend-go/internal/pkg/export"
	"github.com/cmlabs-hris/fms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	ExportFormatCSV  = "csv"
	ExportFormatXLSX = "xlsx"

	reasonNoStructure     = "no salary structure"
	reasonZeroBasic       = "basic salary is zero"
	reasonAlreadyExists   = "payroll already processed for this month"
	reasonInactive        = "employee is inactive"
	reasonEmployeeMissing = "employee not found"
)

// Options tune payroll processing.
type Options struct {
	StandardWorkingDays int
	Workers             int
	CompanyName         string
}

type PayrollServiceImpl struct {
	structureRepo  payroll.SalaryStructureRepository
	payrollRepo    payroll.PayrollRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRepository
	calculator     *SalaryCalculator
	opts           Options
	now            func() time.Time
}

func NewPayrollService(
	structureRepo payroll.SalaryStructureRepository,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRepository,
	opts Options,
) payroll.PayrollService {
	if opts.StandardWorkingDays <= 0 {
		opts.StandardWorkingDays = payroll.StandardWorkingDays
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	return &PayrollServiceImpl{
		structureRepo:  structureRepo,
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		calculator:     NewSalaryCalculator(),
		opts:           opts,
		now:            time.Now,
	}
}

// ========== SALARY STRUCTURES ==========

func (s *PayrollServiceImpl) CreateSalaryStructure(ctx context.Context, req payroll.SalaryStructureRequest) (payroll.SalaryStructureResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalaryStructureResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return payroll.SalaryStructureResponse{}, err
	}

	_, err := s.structureRepo.GetByEmployeeID(ctx, req.EmployeeID)
	if err == nil {
		return payroll.SalaryStructureResponse{}, payroll.ErrSalaryStructureExists
	}
	if !errors.Is(err, payroll.ErrSalaryStructureNotFound) {
		return payroll.SalaryStructureResponse{}, fmt.Errorf("failed to check existing salary structure: %w", err)
	}

	created, err := s.structureRepo.Create(ctx, req.ToEntity())
	if err != nil {
		return payroll.SalaryStructureResponse{}, err
	}

	slog.Info("Salary structure created", "employee_id", created.EmployeeID)
	return mapToStructureResponse(created), nil
}

func (s *PayrollServiceImpl) GetSalaryStructure(ctx context.Context, employeeID string) (payroll.SalaryStructureResponse, error) {
	structure, err := s.structureRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return payroll.SalaryStructureResponse{}, err
	}
	return mapToStructureResponse(structure), nil
}

func (s *PayrollServiceImpl) ListSalaryStructures(ctx context.Context) ([]payroll.SalaryStructureResponse, error) {
	structures, err := s.structureRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.SalaryStructureResponse, 0, len(structures))
	for _, st := range structures {
		result = append(result, mapToStructureResponse(st))
	}
	return result, nil
}

// UpdateSalaryStructure replaces every component of an existing structure.
func (s *PayrollServiceImpl) UpdateSalaryStructure(ctx context.Context, req payroll.SalaryStructureRequest) (payroll.SalaryStructureResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalaryStructureResponse{}, err
	}

	existing, err := s.structureRepo.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.SalaryStructureResponse{}, err
	}

	replacement := req.ToEntity()
	replacement.ID = existing.ID
	replacement.CreatedAt = existing.CreatedAt

	updated, err := s.structureRepo.Replace(ctx, replacement)
	if err != nil {
		return payroll.SalaryStructureResponse{}, err
	}
	return mapToStructureResponse(updated), nil
}

func (s *PayrollServiceImpl) DeleteSalaryStructure(ctx context.Context, employeeID string) error {
	return s.structureRepo.Delete(ctx, employeeID)
}

// ========== PROCESSING ==========

// monthInputs is everything loaded up front for a processing run.
type monthInputs struct {
	month      string
	structures map[string]payroll.SalaryStructure
	attendance map[string][]attendance.Record
	leaves     map[string][]leave.LeaveRecord
	existing   map[string]bool
}

type processOutcome struct {
	processed *payroll.ProcessedEmployee
	skipped   *payroll.SkippedEmployee
	failed    *payroll.SkippedEmployee
}

// ProcessPayroll calculates and stores the month's payroll for the selected
// employees. Employees are processed concurrently; a failure for one
// employee is reported in the response and does not stop the others.
func (s *PayrollServiceImpl) ProcessPayroll(ctx context.Context, req payroll.ProcessPayrollRequest) (payroll.ProcessPayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.ProcessPayrollResponse{}, err
	}

	response := payroll.ProcessPayrollResponse{
		Month:     req.Month,
		Processed: []payroll.ProcessedEmployee{},
		Skipped:   []payroll.SkippedEmployee{},
		Failed:    []payroll.SkippedEmployee{},
	}

	employees, missing, err := s.selectEmployees(ctx, req.EmployeeIDs)
	if err != nil {
		return payroll.ProcessPayrollResponse{}, err
	}
	for _, id := range missing {
		response.Failed = append(response.Failed, payroll.SkippedEmployee{EmployeeID: id, Reason: reasonEmployeeMissing})
	}
	if len(employees) == 0 {
		return response, nil
	}

	inputs, err := s.loadMonthInputs(ctx, req.Month, employees, req.OnlyMissing)
	if err != nil {
		return payroll.ProcessPayrollResponse{}, err
	}

	outcomes := make([]processOutcome, len(employees))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Workers)
	for i, emp := range employees {
		i, emp := i, emp
		g.Go(func() error {
			outcomes[i] = s.processEmployee(gCtx, emp, inputs)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return payroll.ProcessPayrollResponse{}, err
	}

	for _, o := range outcomes {
		switch {
		case o.processed != nil:
			response.Processed = append(response.Processed, *o.processed)
		case o.skipped != nil:
			response.Skipped = append(response.Skipped, *o.skipped)
		case o.failed != nil:
			response.Failed = append(response.Failed, *o.failed)
		}
	}

	slog.Info("Payroll processed",
		"month", req.Month,
		"processed", len(response.Processed),
		"skipped", len(response.Skipped),
		"failed", len(response.Failed),
	)
	return response, nil
}

// selectEmployees returns the active employees, or the requested ones when ids
// is not empty together with the requested ids that do not exist.
func (s *PayrollServiceImpl) selectEmployees(ctx context.Context, ids []string) ([]employee.Employee, []string, error) {
	if len(ids) == 0 {
		employees, err := s.employeeRepo.GetActive(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get active employees: %w", err)
		}
		return employees, nil, nil
	}

	employees, err := s.employeeRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get employees: %w", err)
	}

	found := make(map[string]bool, len(employees))
	for _, emp := range employees {
		found[emp.ID] = true
	}
	var missing []string
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if !found[id] && !seen[id] {
			missing = append(missing, id)
		}
		seen[id] = true
	}
	return employees, missing, nil
}

func (s *PayrollServiceImpl) loadMonthInputs(ctx context.Context, month string, employees []employee.Employee, onlyMissing bool) (monthInputs, error) {
	ids := make([]string, 0, len(employees))
	for _, emp := range employees {
		ids = append(ids, emp.ID)
	}

	inputs := monthInputs{month: month, existing: map[string]bool{}}
	var err error

	inputs.structures, err = s.structureRepo.GetByEmployeeIDs(ctx, ids)
	if err != nil {
		return monthInputs{}, fmt.Errorf("failed to get salary structures: %w", err)
	}
	inputs.attendance, err = s.attendanceRepo.ListByEmployeesMonth(ctx, ids, month)
	if err != nil {
		return monthInputs{}, fmt.Errorf("failed to get attendance records: %w", err)
	}
	inputs.leaves, err = s.leaveRepo.ListByEmployeesMonth(ctx, ids, month)
	if err != nil {
		return monthInputs{}, fmt.Errorf("failed to get leave records: %w", err)
	}

	if onlyMissing {
		records, err := s.payrollRepo.ListRecordsByMonth(ctx, month)
		if err != nil {
			return monthInputs{}, fmt.Errorf("failed to get payroll records: %w", err)
		}
		for _, r := range records {
			inputs.existing[r.EmployeeID] = true
		}
	}
	return inputs, nil
}

func (s *PayrollServiceImpl) processEmployee(ctx context.Context, emp employee.Employee, inputs monthInputs) processOutcome {
	skip := func(reason string) processOutcome {
		return processOutcome{skipped: &payroll.SkippedEmployee{EmployeeID: emp.ID, EmployeeName: emp.Name, Reason: reason}}
	}
	fail := func(err error) processOutcome {
		slog.Warn("Failed to process payroll for employee", "employee_id", emp.ID, "month", inputs.month, "error", err)
		return processOutcome{failed: &payroll.SkippedEmployee{EmployeeID: emp.ID, EmployeeName: emp.Name, Reason: err.Error()}}
	}

	if !emp.IsActive {
		return skip(reasonInactive)
	}
	if inputs.existing[emp.ID] {
		return skip(reasonAlreadyExists)
	}
	structure, ok := inputs.structures[emp.ID]
	if !ok {
		return skip(reasonNoStructure)
	}
	if structure.BasicSalary.IsZero() {
		return skip(reasonZeroBasic)
	}

	counts := TallyAttendance(inputs.attendance[emp.ID], inputs.month, s.opts.StandardWorkingDays)
	leaves := CountApprovedLeaves(inputs.leaves[emp.ID], inputs.month)

	breakdown, err := s.calculator.Calculate(&structure, counts, leaves)
	if err != nil {
		return fail(err)
	}

	record := payroll.PayrollRecord{
		EmployeeID:       emp.ID,
		Month:            inputs.month,
		BasicSalary:      structure.BasicSalary,
		EarnedBasic:      breakdown.EarnedBasic,
		SalaryLoss:       breakdown.SalaryLoss,
		Allowances:       breakdown.TotalAllowances,
		Deductions:       breakdown.TotalDeductions,
		NetSalary:        breakdown.NetSalary,
		PaidAmount:       breakdown.NetSalary,
		Status:           payroll.PayrollStatusProcessed,
		PresentDays:      counts.PresentDays,
		AbsentDays:       counts.AbsentDays,
		HalfDays:         counts.HalfDays,
		Leaves:           leaves,
		TotalWorkingDays: counts.TotalWorkingDays,
		ProcessedAt:      s.now(),
		EarningLines:     structure.Earnings(),
		DeductionLines:   structure.Deductions(),
	}

	stored, err := s.payrollRepo.UpsertRecord(ctx, record)
	if err != nil {
		return fail(err)
	}

	return processOutcome{processed: &payroll.ProcessedEmployee{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		RecordID:     stored.ID,
		NetSalary:    stored.NetSalary,
	}}
}

// PreviewSalary runs the calculation for one employee without storing it.
func (s *PayrollServiceImpl) PreviewSalary(ctx context.Context, employeeID, month string) (payroll.SalaryPreviewResponse, error) {
	if !validator.IsValidPeriod(month) {
		return payroll.SalaryPreviewResponse{}, payroll.ErrInvalidPeriod
	}
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return payroll.SalaryPreviewResponse{}, err
	}

	var structure *payroll.SalaryStructure
	found, err := s.structureRepo.GetByEmployeeID(ctx, employeeID)
	switch {
	case err == nil:
		structure = &found
	case !errors.Is(err, payroll.ErrSalaryStructureNotFound):
		return payroll.SalaryPreviewResponse{}, err
	}

	records, err := s.attendanceRepo.ListByEmployeeMonth(ctx, employeeID, month)
	if err != nil {
		return payroll.SalaryPreviewResponse{}, fmt.Errorf("failed to get attendance records: %w", err)
	}
	leaveRecords, err := s.leaveRepo.ListByEmployeeMonth(ctx, employeeID, month)
	if err != nil {
		return payroll.SalaryPreviewResponse{}, fmt.Errorf("failed to get leave records: %w", err)
	}

	counts := TallyAttendance(records, month, s.opts.StandardWorkingDays)
	leaves := CountApprovedLeaves(leaveRecords, month)

	breakdown, err := s.calculator.Calculate(structure, counts, leaves)
	if err != nil {
		return payroll.SalaryPreviewResponse{}, err
	}

	return payroll.SalaryPreviewResponse{
		EmployeeID:       employeeID,
		Month:            month,
		HasStructure:     structure != nil,
		PresentDays:      counts.PresentDays,
		AbsentDays:       counts.AbsentDays,
		HalfDays:         counts.HalfDays,
		Leaves:           leaves,
		TotalWorkingDays: counts.TotalWorkingDays,
		DailyRate:        breakdown.DailyRate,
		EarnedBasic:      breakdown.EarnedBasic,
		SalaryLoss:       breakdown.SalaryLoss,
		NetBasic:         breakdown.NetBasic,
		TotalAllowances:  breakdown.TotalAllowances,
		TotalDeductions:  breakdown.TotalDeductions,
		NetSalary:        breakdown.NetSalary,
	}, nil
}

// ========== RECORDS ==========

func (s *PayrollServiceImpl) GetPayrollRecord(ctx context.Context, id string) (payroll.PayrollRecordResponse, error) {
	record, err := s.payrollRepo.GetRecordByID(ctx, id)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	return mapToRecordResponse(record), nil
}

func (s *PayrollServiceImpl) ListPayrollRecords(ctx context.Context, filter payroll.PayrollFilter) (payroll.ListPayrollRecordResponse, error) {
	if filter.Month != nil && !validator.IsValidPeriod(*filter.Month) {
		return payroll.ListPayrollRecordResponse{}, payroll.ErrInvalidPeriod
	}
	if filter.Status != nil && !payroll.PayrollStatus(*filter.Status).IsValid() {
		return payroll.ListPayrollRecordResponse{}, payroll.ErrInvalidStatus
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	records, totalCount, err := s.payrollRepo.ListRecords(ctx, filter)
	if err != nil {
		return payroll.ListPayrollRecordResponse{}, err
	}

	return payroll.ListPayrollRecordResponse{
		Data:       mapToRecordResponses(records),
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// UpdatePaymentStatus moves a processed record to paid, hold or part-paid.
func (s *PayrollServiceImpl) UpdatePaymentStatus(ctx context.Context, req payroll.UpdatePaymentStatusRequest) (payroll.PayrollRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	record, err := s.payrollRepo.GetRecordByID(ctx, req.ID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	next := payroll.PayrollStatus(req.Status)
	if !record.Status.CanTransitionTo(next) {
		return payroll.PayrollRecordResponse{}, fmt.Errorf("%w: %s to %s", payroll.ErrInvalidStatusTransition, record.Status, next)
	}

	// paid amount only diverges from net for part-paid
	record.PaidAmount = record.NetSalary
	if next == payroll.PayrollStatusPartPaid {
		amount := req.PaidAmount.Round(2)
		if amount.GreaterThan(record.NetSalary) {
			return payroll.PayrollRecordResponse{}, payroll.ErrPaidAmountExceedsNet
		}
		record.PaidAmount = amount
	}
	record.Status = next

	record.PaymentDate = nil
	if req.PaymentDate != nil {
		date, _ := validator.IsValidDate(*req.PaymentDate)
		record.PaymentDate = &date
	}
	if req.Notes != nil {
		record.Notes = req.Notes
	}

	if err := s.payrollRepo.UpdatePaymentStatus(ctx, record); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	slog.Info("Payroll payment status updated", "record_id", record.ID, "status", record.Status, "paid_amount", record.PaidAmount.String())
	return mapToRecordResponse(record), nil
}

// DeletePayrollRecord removes a record so the month can be processed afresh.
func (s *PayrollServiceImpl) DeletePayrollRecord(ctx context.Context, id string) error {
	return s.payrollRepo.DeleteRecord(ctx, id)
}

// GetPayrollSheet lists every active employee for month. Employees without a
// record appear as pending rows.
func (s *PayrollServiceImpl) GetPayrollSheet(ctx context.Context, month string) (payroll.PayrollSheetResponse, error) {
	if !validator.IsValidPeriod(month) {
		return payroll.PayrollSheetResponse{}, payroll.ErrInvalidPeriod
	}

	employees, err := s.employeeRepo.GetActive(ctx)
	if err != nil {
		return payroll.PayrollSheetResponse{}, fmt.Errorf("failed to get active employees: %w", err)
	}
	records, err := s.payrollRepo.ListRecordsByMonth(ctx, month)
	if err != nil {
		return payroll.PayrollSheetResponse{}, err
	}

	byEmployee := make(map[string]payroll.PayrollRecord, len(records))
	for _, r := range records {
		byEmployee[r.EmployeeID] = r
	}

	rows := make([]payroll.PayrollRecordResponse, 0, len(employees))
	listed := make(map[string]bool, len(employees))
	for _, emp := range employees {
		listed[emp.ID] = true
		if r, ok := byEmployee[emp.ID]; ok {
			rows = append(rows, mapToRecordResponse(r))
			continue
		}
		rows = append(rows, pendingRow(emp, month))
	}
	// records of employees deactivated after processing
	for _, r := range records {
		if !listed[r.EmployeeID] {
			rows = append(rows, mapToRecordResponse(r))
		}
	}

	return payroll.PayrollSheetResponse{Month: month, Rows: rows}, nil
}

func (s *PayrollServiceImpl) GetPayrollSummary(ctx context.Context, month string) (payroll.PayrollSummaryResponse, error) {
	if !validator.IsValidPeriod(month) {
		return payroll.PayrollSummaryResponse{}, payroll.ErrInvalidPeriod
	}

	employees, err := s.employeeRepo.GetActive(ctx)
	if err != nil {
		return payroll.PayrollSummaryResponse{}, fmt.Errorf("failed to get active employees: %w", err)
	}
	records, err := s.payrollRepo.ListRecordsByMonth(ctx, month)
	if err != nil {
		return payroll.PayrollSummaryResponse{}, err
	}

	summary := payroll.PayrollSummaryResponse{
		Month:           month,
		TotalEmployees:  len(employees),
		TotalBasic:      decimal.Zero,
		TotalAllowances: decimal.Zero,
		TotalDeductions: decimal.Zero,
		TotalNetSalary:  decimal.Zero,
		TotalPaid:       decimal.Zero,
	}
	for _, r := range records {
		summary.TotalBasic = summary.TotalBasic.Add(r.NetBasic())
		summary.TotalAllowances = summary.TotalAllowances.Add(r.Allowances)
		summary.TotalDeductions = summary.TotalDeductions.Add(r.Deductions)
		summary.TotalNetSalary = summary.TotalNetSalary.Add(r.NetSalary)
		if r.Status == payroll.PayrollStatusPaid || r.Status == payroll.PayrollStatusPartPaid {
			summary.TotalPaid = summary.TotalPaid.Add(r.PaidAmount)
		}

		switch r.Status {
		case payroll.PayrollStatusProcessed:
			summary.ProcessedCount++
		case payroll.PayrollStatusPaid:
			summary.PaidCount++
		case payroll.PayrollStatusHold:
			summary.HoldCount++
		case payroll.PayrollStatusPartPaid:
			summary.PartPaidCount++
		}
	}
	return summary, nil
}

// ========== OUTPUT ==========

// ExportPayroll renders the month's processed records as csv or xlsx.
func (s *PayrollServiceImpl) ExportPayroll(ctx context.Context, month, format string) (payroll.ExportFile, error) {
	if !validator.IsValidPeriod(month) {
		return payroll.ExportFile{}, payroll.ErrInvalidPeriod
	}
	if format == "" {
		format = ExportFormatCSV
	}
	if !validator.IsInSlice(format, []string{ExportFormatCSV, ExportFormatXLSX}) {
		return payroll.ExportFile{}, payroll.ErrUnsupportedExportFormat
	}

	rows, err := s.exportRows(ctx, month)
	if err != nil {
		return payroll.ExportFile{}, err
	}

	file := payroll.ExportFile{FileName: fmt.Sprintf("payroll-%s.%s", month, format)}
	switch format {
	case ExportFormatXLSX:
		file.ContentType = export.ContentTypeXLSX
		file.Content, err = export.PayrollXLSX(month, rows)
	default:
		file.ContentType = export.ContentTypeCSV
		file.Content, err = export.PayrollCSV(rows)
	}
	if err != nil {
		return payroll.ExportFile{}, err
	}
	return file, nil
}

func (s *PayrollServiceImpl) exportRows(ctx context.Context, month string) ([]export.PayrollRow, error) {
	records, err := s.payrollRepo.ListRecordsByMonth(ctx, month)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.EmployeeID)
	}

	employees, err := s.employeeRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get employees: %w", err)
	}
	byID := make(map[string]employee.Employee, len(employees))
	for _, emp := range employees {
		byID[emp.ID] = emp
	}

	rows := make([]export.PayrollRow, 0, len(records))
	for _, r := range records {
		emp, ok := byID[r.EmployeeID]
		if !ok {
			emp = employee.Employee{ID: r.EmployeeID, Name: deref(r.EmployeeName)}
		}
		rows = append(rows, export.PayrollRow{Employee: emp, Record: r})
	}
	return rows, nil
}

// RenderSalarySlip renders a printable HTML breakdown of one record.
func (s *PayrollServiceImpl) RenderSalarySlip(ctx context.Context, recordID string) ([]byte, error) {
	record, err := s.payrollRepo.GetRecordByID(ctx, recordID)
	if err != nil {
		return nil, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, record.EmployeeID)
	if err != nil {
		return nil, err
	}

	return export.RenderSalarySlip(export.SalarySlip{CompanyName: s.opts.CompanyName, Employee: emp, Record: record})
}

// ========== HELPERS ==========

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func pendingRow(emp employee.Employee, month string) payroll.PayrollRecordResponse {
	department, position := emp.Department, emp.Position
	return payroll.PayrollRecordResponse{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		Department:   &department,
		Position:     &position,
		Month:        month,
		BasicSalary:  decimal.Zero,
		EarnedBasic:  decimal.Zero,
		SalaryLoss:   decimal.Zero,
		Allowances:   decimal.Zero,
		Deductions:   decimal.Zero,
		NetSalary:    decimal.Zero,
		PaidAmount:   decimal.Zero,
		Status:       string(payroll.PayrollStatusPending),
	}
}

func mapToStructureResponse(st payroll.SalaryStructure) payroll.SalaryStructureResponse {
	return payroll.SalaryStructureResponse{
		ID:               st.ID,
		EmployeeID:       st.EmployeeID,
		BasicSalary:      st.BasicSalary,
		HRA:              st.HRA,
		DA:               st.DA,
		SpecialAllowance: st.SpecialAllowance,
		Conveyance:       st.Conveyance,
		MedicalAllowance: st.MedicalAllowance,
		OtherAllowances:  st.OtherAllowances,
		LeaveEncashment:  st.LeaveEncashment,
		Arrears:          st.Arrears,
		ProvidentFund:    st.ProvidentFund,
		ProfessionalTax:  st.ProfessionalTax,
		IncomeTax:        st.IncomeTax,
		OtherDeductions:  st.OtherDeductions,
		ESIC:             st.ESIC,
		Advance:          st.Advance,
		MLWF:             st.MLWF,
		TotalAllowances:  st.TotalAllowances(),
		TotalDeductions:  st.TotalDeductions(),
		UpdatedAt:        st.UpdatedAt.Format(time.RFC3339),
	}
}

func mapToRecordResponse(r payroll.PayrollRecord) payroll.PayrollRecordResponse {
	var paymentDate *string
	if r.PaymentDate != nil {
		str := r.PaymentDate.Format(validator.DateLayout)
		paymentDate = &str
	}

	var processedAt *string
	if !r.ProcessedAt.IsZero() {
		str := r.ProcessedAt.Format(time.RFC3339)
		processedAt = &str
	}

	return payroll.PayrollRecordResponse{
		ID:               r.ID,
		EmployeeID:       r.EmployeeID,
		EmployeeName:     deref(r.EmployeeName),
		Department:       r.Department,
		Position:         r.Position,
		Month:            r.Month,
		BasicSalary:      r.BasicSalary,
		EarnedBasic:      r.EarnedBasic,
		SalaryLoss:       r.SalaryLoss,
		Allowances:       r.Allowances,
		Deductions:       r.Deductions,
		NetSalary:        r.NetSalary,
		PaidAmount:       r.PaidAmount,
		Status:           string(r.Status),
		PresentDays:      r.PresentDays,
		AbsentDays:       r.AbsentDays,
		HalfDays:         r.HalfDays,
		Leaves:           r.Leaves,
		TotalWorkingDays: r.TotalWorkingDays,
		PaymentDate:      paymentDate,
		Notes:            r.Notes,
		ProcessedAt:      processedAt,
	}
}

func mapToRecordResponses(records []payroll.PayrollRecord) []payroll.PayrollRecordResponse {
	result := make([]payroll.PayrollRecordResponse, 0, len(records))
	for _, r := range records {
		result = append(result, mapToRecordResponse(r))
	}
	return result
}
