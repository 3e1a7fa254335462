package memory

import (
	"context"

	"github.com/constructor-app/constructor-backend-go/internal/domain/schedule"
)

type ScheduleRepositoryImpl struct {
	store *Store
}

func NewScheduleRepository(store *Store) schedule.ScheduleRepository {
	return &ScheduleRepositoryImpl{store: store}
}

func (r *ScheduleRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.Phase, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, p := range r.store.phases {
		if p.ID == id {
			return p, nil
		}
	}
	return schedule.Phase{}, schedule.ErrPhaseNotFound
}

func (r *ScheduleRepositoryImpl) ListByProject(ctx context.Context, projectID string) ([]schedule.Phase, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]schedule.Phase, 0)
	for _, p := range r.store.phases {
		if p.ProjectID == projectID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *ScheduleRepositoryImpl) Create(ctx context.Context, newPhase schedule.Phase) (schedule.Phase, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.phases = append(r.store.phases, newPhase)
	return newPhase, nil
}

func (r *ScheduleRepositoryImpl) UpdateProgress(ctx context.Context, id string, progress int, status schedule.PhaseStatus) (schedule.Phase, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.phases {
		if r.store.phases[i].ID == id {
			r.store.phases[i].Progress = progress
			if status != "" {
				r.store.phases[i].Status = status
			}
			return r.store.phases[i], nil
		}
	}
	return schedule.Phase{}, schedule.ErrPhaseNotFound
}
