package schedule

import "time"

type PhaseStatus string

const (
	PhaseNotStarted PhaseStatus = "Not Started"
	PhaseInProgress PhaseStatus = "In Progress"
	PhaseCompleted  PhaseStatus = "Completed"
	PhaseDelayed    PhaseStatus = "Delayed"
)

var PhaseStatusValues = []string{
	string(PhaseNotStarted),
	string(PhaseInProgress),
	string(PhaseCompleted),
	string(PhaseDelayed),
}

// Phase is one bar on a project's construction timeline.
type Phase struct {
	ID        string
	ProjectID string
	Name      string
	StartDate time.Time
	EndDate   time.Time
	Status    PhaseStatus
	Progress  int
}
