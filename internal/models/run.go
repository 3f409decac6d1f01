package models

import "time"

const (
	RunStatusSuccess = "success"
	RunStatusFailure = "failure"
)

// SeedRun is the journal entry of one seeding run. It stores counts only.
type SeedRun struct {
	ID               string    `json:"id"`
	Status           string    `json:"status"`
	EmployeesCreated int       `json:"employeesCreated"`
	DatesProcessed   int       `json:"datesProcessed"`
	RecordsAttempted int       `json:"recordsAttempted"`
	StartedAt        time.Time `json:"startedAt"`
	FinishedAt       time.Time `json:"finishedAt"`
}
