package report

import "context"

type ReportRepository interface {
	ListByProject(ctx context.Context, projectID string) ([]ProgressReport, error)
	Create(ctx context.Context, newReport ProgressReport) (ProgressReport, error)
}
