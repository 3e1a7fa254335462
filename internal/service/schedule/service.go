package schedule

import (
	"context"
	"time"

	"github.com/constructor-app/constructor-backend-go/internal/domain/project"
	"github.com/constructor-app/constructor-backend-go/internal/domain/schedule"
	"github.com/constructor-app/constructor-backend-go/internal/pkg/actor"
	"github.com/google/uuid"
)

type ScheduleService interface {
	List(ctx context.Context, projectID string) ([]schedule.PhaseResponse, error)
	AddPhase(ctx context.Context, projectID string, req schedule.CreatePhaseRequest) (schedule.PhaseResponse, error)
	UpdateProgress(ctx context.Context, phaseID string, req schedule.UpdatePhaseProgressRequest) (schedule.PhaseResponse, error)
}

type ScheduleServiceImpl struct {
	scheduleRepo schedule.ScheduleRepository
	projectRepo  project.ProjectRepository
}

func NewScheduleService(scheduleRepo schedule.ScheduleRepository, projectRepo project.ProjectRepository) ScheduleService {
	return &ScheduleServiceImpl{
		scheduleRepo: scheduleRepo,
		projectRepo:  projectRepo,
	}
}

func (s *ScheduleServiceImpl) List(ctx context.Context, projectID string) ([]schedule.PhaseResponse, error) {
	actingUser, err := actor.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	p, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !p.VisibleTo(actingUser) {
		return nil, project.ErrProjectAccessDenied
	}

	phases, err := s.scheduleRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return schedule.ToResponses(phases), nil
}

func (s *ScheduleServiceImpl) AddPhase(ctx context.Context, projectID string, req schedule.CreatePhaseRequest) (schedule.PhaseResponse, error) {
	actingUser, err := actor.FromContext(ctx)
	if err != nil {
		return schedule.PhaseResponse{}, err
	}
	if !actingUser.IsPrivileged() {
		return schedule.PhaseResponse{}, schedule.ErrEditPrivileged
	}

	if err := req.Validate(); err != nil {
		return schedule.PhaseResponse{}, err
	}

	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		return schedule.PhaseResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	newPhase := schedule.Phase{
		ID:        uuid.NewString(),
		ProjectID: projectID,
		Name:      req.Name,
		StartDate: start,
		EndDate:   end,
		Status:    schedule.PhaseNotStarted,
		Progress:  0,
	}

	created, err := s.scheduleRepo.Create(ctx, newPhase)
	if err != nil {
		return schedule.PhaseResponse{}, err
	}

	return schedule.ToResponse(created), nil
}

func (s *ScheduleServiceImpl) UpdateProgress(ctx context.Context, phaseID string, req schedule.UpdatePhaseProgressRequest) (schedule.PhaseResponse, error) {
	actingUser, err := actor.FromContext(ctx)
	if err != nil {
		return schedule.PhaseResponse{}, err
	}
	if !actingUser.IsPrivileged() {
		return schedule.PhaseResponse{}, schedule.ErrEditPrivileged
	}

	if err := req.Validate(); err != nil {
		return schedule.PhaseResponse{}, err
	}

	existing, err := s.scheduleRepo.GetByID(ctx, phaseID)
	if err != nil {
		return schedule.PhaseResponse{}, err
	}

	// 100% implies done, 0 with no explicit status implies not started
	status := existing.Status
	if req.Status != "" {
		status = schedule.PhaseStatus(req.Status)
	} else if req.Progress == 100 {
		status = schedule.PhaseCompleted
	} else if req.Progress > 0 && status == schedule.PhaseNotStarted {
		status = schedule.PhaseInProgress
	}

	updated, err := s.scheduleRepo.UpdateProgress(ctx, phaseID, req.Progress, status)
	if err != nil {
		return schedule.PhaseResponse{}, err
	}

	return schedule.ToResponse(updated), nil
}
