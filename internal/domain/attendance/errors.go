package attendance

import "errors"

// Attendance domain errors
var (
	// Aggregation errors
	ErrInvalidRange = errors.New("end date precedes start date")
	ErrInvalidDate  = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidInput = errors.New("invalid attendance input")
	ErrRangeTooLong = errors.New("date range exceeds the allowed number of days")
)
