package payroll

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/cmlabs-hris/fms-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/fms-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/fms-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/fms-backend-go/internal/domain/payroll"
)

type fakeStructureRepo struct {
	mu   sync.Mutex
	data map[string]payroll.SalaryStructure
	seq  int
}

func newFakeStructureRepo() *fakeStructureRepo {
	return &fakeStructureRepo{data: map[string]payroll.SalaryStructure{}}
}

func (r *fakeStructureRepo) Create(ctx context.Context, st payroll.SalaryStructure) (payroll.SalaryStructure, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[st.EmployeeID]; ok {
		return payroll.SalaryStructure{}, payroll.ErrSalaryStructureExists
	}
	r.seq++
	st.ID = fmt.Sprintf("st-%d", r.seq)
	r.data[st.EmployeeID] = st
	return st, nil
}

func (r *fakeStructureRepo) GetByEmployeeID(ctx context.Context, employeeID string) (payroll.SalaryStructure, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.data[employeeID]
	if !ok {
		return payroll.SalaryStructure{}, payroll.ErrSalaryStructureNotFound
	}
	return st, nil
}

func (r *fakeStructureRepo) GetByEmployeeIDs(ctx context.Context, ids []string) (map[string]payroll.SalaryStructure, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := map[string]payroll.SalaryStructure{}
	for _, id := range ids {
		if st, ok := r.data[id]; ok {
			out[id] = st
		}
	}
	return out, nil
}

func (r *fakeStructureRepo) List(ctx context.Context) ([]payroll.SalaryStructure, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []payroll.SalaryStructure
	for _, st := range r.data {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EmployeeID < out[j].EmployeeID })
	return out, nil
}

func (r *fakeStructureRepo) Replace(ctx context.Context, st payroll.SalaryStructure) (payroll.SalaryStructure, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[st.EmployeeID]; !ok {
		return payroll.SalaryStructure{}, payroll.ErrSalaryStructureNotFound
	}
	r.data[st.EmployeeID] = st
	return st, nil
}

func (r *fakeStructureRepo) Delete(ctx context.Context, employeeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[employeeID]; !ok {
		return payroll.ErrSalaryStructureNotFound
	}
	delete(r.data, employeeID)
	return nil
}

type fakePayrollRepo struct {
	mu      sync.Mutex
	records map[string]payroll.PayrollRecord
	seq     int
	failFor map[string]bool
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{records: map[string]payroll.PayrollRecord{}, failFor: map[string]bool{}}
}

func (r *fakePayrollRepo) UpsertRecord(ctx context.Context, rec payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failFor[rec.EmployeeID] {
		return payroll.PayrollRecord{}, errors.New("connection reset")
	}
	for id, existing := range r.records {
		if existing.EmployeeID == rec.EmployeeID && existing.Month == rec.Month {
			rec.ID = id
			r.records[id] = rec
			return rec, nil
		}
	}
	r.seq++
	rec.ID = fmt.Sprintf("rec-%d", r.seq)
	r.records[rec.ID] = rec
	return rec, nil
}

func (r *fakePayrollRepo) GetRecordByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
	}
	return rec, nil
}

func (r *fakePayrollRepo) GetRecordByEmployeeMonth(ctx context.Context, employeeID, month string) (payroll.PayrollRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.records {
		if rec.EmployeeID == employeeID && rec.Month == month {
			return rec, nil
		}
	}
	return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
}

func (r *fakePayrollRepo) ListRecords(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollRecord, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []payroll.PayrollRecord
	for _, rec := range r.sorted() {
		if filter.Month != nil && rec.Month != *filter.Month {
			continue
		}
		if filter.Status != nil && string(rec.Status) != *filter.Status {
			continue
		}
		if filter.EmployeeID != nil && rec.EmployeeID != *filter.EmployeeID {
			continue
		}
		out = append(out, rec)
	}
	return out, int64(len(out)), nil
}

func (r *fakePayrollRepo) ListRecordsByMonth(ctx context.Context, month string) ([]payroll.PayrollRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []payroll.PayrollRecord
	for _, rec := range r.sorted() {
		if rec.Month == month {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakePayrollRepo) sorted() []payroll.PayrollRecord {
	out := make([]payroll.PayrollRecord, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EmployeeID < out[j].EmployeeID })
	return out
}

func (r *fakePayrollRepo) UpdatePaymentStatus(ctx context.Context, rec payroll.PayrollRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[rec.ID]; !ok {
		return payroll.ErrPayrollRecordNotFound
	}
	r.records[rec.ID] = rec
	return nil
}

func (r *fakePayrollRepo) DeleteRecord(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return payroll.ErrPayrollRecordNotFound
	}
	delete(r.records, id)
	return nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, e := range r.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) GetByIDs(ctx context.Context, ids []string) ([]employee.Employee, error) {
	want := map[string]bool{}
	for _, id := range ids {
		want[id] = true
	}
	var out []employee.Employee
	for _, e := range r.employees {
		if want[e.ID] {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEmployeeRepo) GetActive(ctx context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range r.employees {
		if e.IsActive {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeAttendanceRepo struct {
	records []attendance.Record
}

func (r *fakeAttendanceRepo) ListByEmployeeMonth(ctx context.Context, employeeID, month string) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range r.records {
		if rec.EmployeeID == employeeID && strings.HasPrefix(rec.Date, month) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeAttendanceRepo) ListByEmployeesMonth(ctx context.Context, ids []string, month string) (map[string][]attendance.Record, error) {
	out := map[string][]attendance.Record{}
	for _, id := range ids {
		recs, _ := r.ListByEmployeeMonth(ctx, id, month)
		if len(recs) > 0 {
			out[id] = recs
		}
	}
	return out, nil
}

func (r *fakeAttendanceRepo) CountPresentBySiteDates(ctx context.Context, siteID string, start, end time.Time) (map[string]int, error) {
	return map[string]int{}, nil
}

type fakeLeaveRepo struct {
	records []leave.LeaveRecord
}

func (r *fakeLeaveRepo) ListByEmployeeMonth(ctx context.Context, employeeID, month string) ([]leave.LeaveRecord, error) {
	var out []leave.LeaveRecord
	for _, rec := range r.records {
		if rec.EmployeeID == employeeID && strings.HasPrefix(rec.StartDate, month) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeLeaveRepo) ListByEmployeesMonth(ctx context.Context, ids []string, month string) (map[string][]leave.LeaveRecord, error) {
	out := map[string][]leave.LeaveRecord{}
	for _, id := range ids {
		recs, _ := r.ListByEmployeeMonth(ctx, id, month)
		if len(recs) > 0 {
			out[id] = recs
		}
	}
	return out, nil
}
