package report

import "time"

// ProgressReport is a dated site update written by a project member.
type ProgressReport struct {
	ID                 string
	ProjectID          string
	Title              string
	Date               time.Time
	AuthorID           string
	Content            string
	PercentageComplete int
	Photos             []string
}
