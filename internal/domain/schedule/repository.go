package schedule

import "context"

type ScheduleRepository interface {
	GetByID(ctx context.Context, id string) (Phase, error)
	ListByProject(ctx context.Context, projectID string) ([]Phase, error)
	Create(ctx context.Context, newPhase Phase) (Phase, error)
	UpdateProgress(ctx context.Context, id string, progress int, status PhaseStatus) (Phase, error)
}
