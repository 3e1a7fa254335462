package report

import (
	"context"
	"time"

	"github.com/constructor-app/constructor-backend-go/internal/domain/project"
	"github.com/constructor-app/constructor-backend-go/internal/domain/report"
	"github.com/constructor-app/constructor-backend-go/internal/pkg/actor"
	"github.com/google/uuid"
)

type ReportService interface {
	List(ctx context.Context, projectID string) ([]report.ReportResponse, error)
	Create(ctx context.Context, projectID string, req report.CreateReportRequest) (report.ReportResponse, error)
}

type ReportServiceImpl struct {
	reportRepo  report.ReportRepository
	projectRepo project.ProjectRepository
}

func NewReportService(reportRepo report.ReportRepository, projectRepo project.ProjectRepository) ReportService {
	return &ReportServiceImpl{
		reportRepo:  reportRepo,
		projectRepo: projectRepo,
	}
}

func (s *ReportServiceImpl) List(ctx context.Context, projectID string) ([]report.ReportResponse, error) {
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

	reports, err := s.reportRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return report.ToResponses(reports), nil
}

func (s *ReportServiceImpl) Create(ctx context.Context, projectID string, req report.CreateReportRequest) (report.ReportResponse, error) {
	actingUser, err := actor.FromContext(ctx)
	if err != nil {
		return report.ReportResponse{}, err
	}
	if actingUser.IsClient() {
		return report.ReportResponse{}, report.ErrClientCannotWrite
	}

	if err := req.Validate(); err != nil {
		return report.ReportResponse{}, err
	}

	p, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return report.ReportResponse{}, err
	}
	if !p.VisibleTo(actingUser) {
		return report.ReportResponse{}, project.ErrProjectAccessDenied
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	newReport := report.ProgressReport{
		ID:                 uuid.NewString(),
		ProjectID:          projectID,
		Title:              req.Title,
		Date:               date,
		AuthorID:           actingUser.ID,
		Content:            req.Content,
		PercentageComplete: req.PercentageComplete,
		Photos:             req.Photos,
	}

	created, err := s.reportRepo.Create(ctx, newReport)
	if err != nil {
		return report.ReportResponse{}, err
	}

	return report.ToResponse(created), nil
}
