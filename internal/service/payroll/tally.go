package payroll

import (
	"strings"

	"github.com/cmlabs-hris/fms-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/fms-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/fms-backend-go/internal/domain/payroll"
)

// TallyAttendance counts the records whose date starts with month (YYYY-MM).
// When nothing matches, TotalWorkingDays falls back to standardDays.
func TallyAttendance(records []attendance.Record, month string, standardDays int) payroll.AttendanceCounts {
	var counts payroll.AttendanceCounts
	matched := 0

	for _, r := range records {
		if !strings.HasPrefix(r.Date, month) {
			continue
		}
		matched++
		switch r.Status {
		case attendance.StatusPresent:
			counts.PresentDays++
		case attendance.StatusAbsent:
			counts.AbsentDays++
		case attendance.StatusHalfDay:
			counts.HalfDays++
		}
	}

	counts.TotalWorkingDays = matched
	if matched == 0 {
		counts.TotalWorkingDays = standardDays
	}
	return counts
}

// CountApprovedLeaves counts approved leave records starting in month (YYYY-MM).
func CountApprovedLeaves(records []leave.LeaveRecord, month string) int {
	count := 0
	for _, r := range records {
		if r.Status == leave.LeaveStatusApproved && strings.HasPrefix(r.StartDate, month) {
			count++
		}
	}
	return count
}
