package employee

import (
	"time"
)

// Employee is read-only reference data used to label payroll and attendance rows.
type Employee struct {
	ID                string
	Name              string
	Department        string
	Position          string
	SiteID            *string
	BankAccountNumber *string
	BankBranch        *string
	IFSCCode          *string
	Gender            *Gender
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
)
