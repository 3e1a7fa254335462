package inventory

import (
	"context"
	"time"

	"github.com/constructor-app/constructor-backend-go/internal/domain/material"
	"github.com/constructor-app/constructor-backend-go/internal/domain/project"
	"github.com/constructor-app/constructor-backend-go/internal/pkg/actor"
	"github.com/google/uuid"
)

type InventoryService interface {
	// ListVisible returns the project's materials the acting user may see.
	ListVisible(ctx context.Context, projectID string) ([]material.MaterialResponse, error)
	AddMaterial(ctx context.Context, projectID string, req material.CreateMaterialRequest) (material.MaterialResponse, error)
	LogUsage(ctx context.Context, materialID string, req material.LogUsageRequest) (material.MaterialResponse, error)
}

type InventoryServiceImpl struct {
	materialRepo material.MaterialRepository
	projectRepo  project.ProjectRepository
}

func NewInventoryService(materialRepo material.MaterialRepository, projectRepo project.ProjectRepository) InventoryService {
	return &InventoryServiceImpl{
		materialRepo: materialRepo,
		projectRepo:  projectRepo,
	}
}

func (s *InventoryServiceImpl) ListVisible(ctx context.Context, projectID string) ([]material.MaterialResponse, error) {
	actingUser, err := actor.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	// a nonexistent project yields an empty list, not an error
	materials, err := s.materialRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return material.ToResponses(material.FilterVisible(materials, actingUser)), nil
}

func (s *InventoryServiceImpl) AddMaterial(ctx context.Context, projectID string, req material.CreateMaterialRequest) (material.MaterialResponse, error) {
	actingUser, err := actor.FromContext(ctx)
	if err != nil {
		return material.MaterialResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return material.MaterialResponse{}, err
	}

	p, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return material.MaterialResponse{}, err
	}
	if !p.VisibleTo(actingUser) {
		return material.MaterialResponse{}, project.ErrProjectAccessDenied
	}

	supplyDate := time.Now()
	if req.SupplyDate != "" {
		supplyDate, _ = time.Parse("2006-01-02", req.SupplyDate)
	}

	// omitted visibleTo means privileged-only; an empty slice is normalized
	// to nil so the two cases stay indistinguishable downstream
	visibleTo := req.VisibleTo
	if len(visibleTo) == 0 {
		visibleTo = nil
	}

	newMaterial := material.Material{
		ID:            uuid.NewString(),
		ProjectID:     projectID,
		Name:          req.Name,
		Quantity:      req.Quantity,
		Unit:          req.Unit,
		Supplier:      req.Supplier,
		Status:        material.StatusForQuantity(req.Quantity),
		SupplyDate:    supplyDate,
		InvoiceNumber: req.InvoiceNumber,
		UsageHistory:  []material.UsageEntry{},
		VisibleTo:     visibleTo,
	}

	created, err := s.materialRepo.Create(ctx, newMaterial)
	if err != nil {
		return material.MaterialResponse{}, err
	}

	return material.ToResponse(created), nil
}

func (s *InventoryServiceImpl) LogUsage(ctx context.Context, materialID string, req material.LogUsageRequest) (material.MaterialResponse, error) {
	actingUser, err := actor.FromContext(ctx)
	if err != nil {
		return material.MaterialResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return material.MaterialResponse{}, err
	}

	m, err := s.materialRepo.GetByID(ctx, materialID)
	if err != nil {
		return material.MaterialResponse{}, err
	}
	if !m.IsVisibleTo(actingUser) {
		return material.MaterialResponse{}, material.ErrMaterialNotFound
	}
	if req.QuantityUsed > m.Quantity {
		return material.MaterialResponse{}, material.ErrInsufficientStock
	}

	usageDate, _ := time.Parse("2006-01-02", req.Date)
	entry := material.UsageEntry{
		Date:         usageDate,
		QuantityUsed: req.QuantityUsed,
		Notes:        req.Notes,
	}

	updated, err := s.materialRepo.ApplyUsage(ctx, materialID, entry)
	if err != nil {
		return material.MaterialResponse{}, err
	}

	return material.ToResponse(updated), nil
}
