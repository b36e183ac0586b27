package domain

import "time"

type RunStatus string

const (
	RunStatusRunning   RunStatus = "running"
	RunStatusSucceeded RunStatus = "succeeded"
	RunStatusFailed    RunStatus = "failed"
	RunStatusCanceled  RunStatus = "canceled"
)

// AssessmentRun is the lifecycle record of a run started through the web API.
// Report is set only once the run succeeded.
type AssessmentRun struct {
	RunID      string
	Status     RunStatus
	StartedAt  time.Time
	FinishedAt *time.Time
	Error      string
	Report     *Report
}
