package memory

import (
	"context"

	"github.com/constructor-app/constructor-backend-go/internal/domain/task"
)

type TaskRepositoryImpl struct {
	store *Store
}

func NewTaskRepository(store *Store) task.TaskRepository {
	return &TaskRepositoryImpl{store: store}
}

func cloneTask(t task.Task) task.Task {
	out := t
	if t.Assignee != nil {
		assignee := *t.Assignee
		out.Assignee = &assignee
	}
	return out
}

func (r *TaskRepositoryImpl) GetByID(ctx context.Context, id string) (task.Task, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, t := range r.store.tasks {
		if t.ID == id {
			return cloneTask(t), nil
		}
	}
	return task.Task{}, task.ErrTaskNotFound
}

func (r *TaskRepositoryImpl) ListByProject(ctx context.Context, projectID string) ([]task.Task, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]task.Task, 0)
	for _, t := range r.store.tasks {
		if t.ProjectID == projectID {
			out = append(out, cloneTask(t))
		}
	}
	return out, nil
}

func (r *TaskRepositoryImpl) ListAll(ctx context.Context) ([]task.Task, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]task.Task, 0, len(r.store.tasks))
	for _, t := range r.store.tasks {
		out = append(out, cloneTask(t))
	}
	return out, nil
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, newTask task.Task) (task.Task, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.tasks = append(r.store.tasks, cloneTask(newTask))
	return newTask, nil
}

func (r *TaskRepositoryImpl) UpdateStatus(ctx context.Context, id string, status task.Status) (task.Task, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.tasks {
		if r.store.tasks[i].ID == id {
			r.store.tasks[i].Status = status
			return cloneTask(r.store.tasks[i]), nil
		}
	}
	return task.Task{}, task.ErrTaskNotFound
}
