package memory

import (
	"context"

	"github.com/constructor-app/constructor-backend-go/internal/domain/report"
)

type ReportRepositoryImpl struct {
	store *Store
}

func NewReportRepository(store *Store) report.ReportRepository {
	return &ReportRepositoryImpl{store: store}
}

func (r *ReportRepositoryImpl) ListByProject(ctx context.Context, projectID string) ([]report.ProgressReport, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]report.ProgressReport, 0)
	for _, pr := range r.store.reports {
		if pr.ProjectID == projectID {
			out = append(out, pr)
		}
	}
	return out, nil
}

func (r *ReportRepositoryImpl) Create(ctx context.Context, newReport report.ProgressReport) (report.ProgressReport, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.reports = append(r.store.reports, newReport)
	return newReport, nil
}
