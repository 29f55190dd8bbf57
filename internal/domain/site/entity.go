package site

import "time"

// Site - A facility location with a fixed headcount
type Site struct {
	ID             string
	Code           string
	Name           string
	Address        *string
	TotalEmployees int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
