package material

import "context"

type MaterialRepository interface {
	GetByID(ctx context.Context, id string) (Material, error)
	ListByProject(ctx context.Context, projectID string) ([]Material, error)
	Create(ctx context.Context, newMaterial Material) (Material, error)
	// ApplyUsage decrements quantity, recomputes status and appends the
	// history entry as one step.
	ApplyUsage(ctx context.Context, id string, entry UsageEntry) (Material, error)
}
