package task

import "context"

type TaskRepository interface {
	GetByID(ctx context.Context, id string) (Task, error)
	ListByProject(ctx context.Context, projectID string) ([]Task, error)
	ListAll(ctx context.Context) ([]Task, error)
	Create(ctx context.Context, newTask Task) (Task, error)
	UpdateStatus(ctx context.Context, id string, status Status) (Task, error)
}
