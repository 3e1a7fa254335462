package dashboard

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/constructor-app/constructor-backend-go/internal/domain/dashboard"
	"github.com/constructor-app/constructor-backend-go/internal/domain/material"
	"github.com/constructor-app/constructor-backend-go/internal/domain/project"
	"github.com/constructor-app/constructor-backend-go/internal/domain/task"
	"github.com/constructor-app/constructor-backend-go/internal/pkg/actor"
)

type DashboardService interface {
	// Summary returns the landing-page counters for the acting user. Every
	// figure is computed over the same visibility filters the list endpoints
	// apply, never over the raw dataset.
	Summary(ctx context.Context) (dashboard.DashboardResponse, error)
}

type DashboardServiceImpl struct {
	projectRepo  project.ProjectRepository
	taskRepo     task.TaskRepository
	materialRepo material.MaterialRepository
}

func NewDashboardService(projectRepo project.ProjectRepository, taskRepo task.TaskRepository, materialRepo material.MaterialRepository) DashboardService {
	return &DashboardServiceImpl{
		projectRepo:  projectRepo,
		taskRepo:     taskRepo,
		materialRepo: materialRepo,
	}
}

func (s *DashboardServiceImpl) Summary(ctx context.Context) (dashboard.DashboardResponse, error) {
	actingUser, err := actor.FromContext(ctx)
	if err != nil {
		return dashboard.DashboardResponse{}, err
	}

	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return dashboard.DashboardResponse{}, err
	}
	visibleProjects := project.FilterVisible(projects, actingUser)

	var (
		taskSummary      dashboard.TaskSummaryResponse
		inventorySummary dashboard.InventorySummaryResponse
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		tasks, err := s.taskRepo.ListAll(gctx)
		if err != nil {
			return err
		}
		for _, t := range task.FilterVisible(tasks, actingUser) {
			if t.Status != task.StatusDone {
				taskSummary.Due++
			}
		}
		return nil
	})

	g.Go(func() error {
		for _, p := range visibleProjects {
			materials, err := s.materialRepo.ListByProject(gctx, p.ID)
			if err != nil {
				return err
			}
			for _, m := range material.FilterVisible(materials, actingUser) {
				switch m.Status {
				case material.StatusOutOfStock:
					inventorySummary.OutOfStock++
				case material.StatusLowStock:
					inventorySummary.LowStock++
				default:
					inventorySummary.InStock++
				}
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.DashboardResponse{}, err
	}

	projectSummary := dashboard.ProjectSummaryResponse{Total: len(visibleProjects)}
	for _, p := range visibleProjects {
		if p.Status != project.StatusCompleted {
			projectSummary.Active++
		}
	}

	return dashboard.DashboardResponse{
		Projects:  projectSummary,
		Tasks:     taskSummary,
		Inventory: inventorySummary,
	}, nil
}
