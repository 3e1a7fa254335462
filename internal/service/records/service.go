package records

import (
	"context"
	"time"

	"github.com/constructor-app/constructor-backend-go/internal/domain/document"
	"github.com/constructor-app/constructor-backend-go/internal/domain/invoice"
	"github.com/constructor-app/constructor-backend-go/internal/domain/project"
	"github.com/constructor-app/constructor-backend-go/internal/domain/user"
	"github.com/constructor-app/constructor-backend-go/internal/pkg/actor"
	"github.com/google/uuid"
)

// RecordsService covers the paper trail of a project, its documents and
// invoices. Both are gated by project visibility only; writes are privileged.
type RecordsService interface {
	ListDocuments(ctx context.Context, projectID string) ([]document.DocumentResponse, error)
	AddDocument(ctx context.Context, projectID string, req document.CreateDocumentRequest) (document.DocumentResponse, error)
	ListInvoices(ctx context.Context, projectID string) ([]invoice.InvoiceResponse, error)
	AddInvoice(ctx context.Context, projectID string, req invoice.CreateInvoiceRequest) (invoice.InvoiceResponse, error)
}

type RecordsServiceImpl struct {
	documentRepo document.DocumentRepository
	invoiceRepo  invoice.InvoiceRepository
	projectRepo  project.ProjectRepository
}

func NewRecordsService(documentRepo document.DocumentRepository, invoiceRepo invoice.InvoiceRepository, projectRepo project.ProjectRepository) RecordsService {
	return &RecordsServiceImpl{
		documentRepo: documentRepo,
		invoiceRepo:  invoiceRepo,
		projectRepo:  projectRepo,
	}
}

func (s *RecordsServiceImpl) gateProject(ctx context.Context, projectID string) error {
	actingUser, err := actor.FromContext(ctx)
	if err != nil {
		return err
	}

	p, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if !p.VisibleTo(actingUser) {
		return project.ErrProjectAccessDenied
	}

	return nil
}

func (s *RecordsServiceImpl) ListDocuments(ctx context.Context, projectID string) ([]document.DocumentResponse, error) {
	if err := s.gateProject(ctx, projectID); err != nil {
		return nil, err
	}

	documents, err := s.documentRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return document.ToResponses(documents), nil
}

func (s *RecordsServiceImpl) AddDocument(ctx context.Context, projectID string, req document.CreateDocumentRequest) (document.DocumentResponse, error) {
	actingUser, err := actor.FromContext(ctx)
	if err != nil {
		return document.DocumentResponse{}, err
	}
	if actingUser.IsClient() {
		return document.DocumentResponse{}, user.ErrInsufficientPermissions
	}

	if err := req.Validate(); err != nil {
		return document.DocumentResponse{}, err
	}

	if err := s.gateProject(ctx, projectID); err != nil {
		return document.DocumentResponse{}, err
	}

	newDocument := document.Document{
		ID:         uuid.NewString(),
		ProjectID:  projectID,
		Name:       req.Name,
		Type:       document.Type(req.Type),
		Version:    req.Version,
		UploadDate: time.Now().UTC(),
		URL:        req.URL,
	}

	created, err := s.documentRepo.Create(ctx, newDocument)
	if err != nil {
		return document.DocumentResponse{}, err
	}

	return document.ToResponse(created), nil
}

func (s *RecordsServiceImpl) ListInvoices(ctx context.Context, projectID string) ([]invoice.InvoiceResponse, error) {
	if err := s.gateProject(ctx, projectID); err != nil {
		return nil, err
	}

	invoices, err := s.invoiceRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return invoice.ToResponses(invoices), nil
}

func (s *RecordsServiceImpl) AddInvoice(ctx context.Context, projectID string, req invoice.CreateInvoiceRequest) (invoice.InvoiceResponse, error) {
	actingUser, err := actor.FromContext(ctx)
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}
	if !actingUser.IsPrivileged() {
		return invoice.InvoiceResponse{}, user.ErrPrivilegedRoleRequired
	}

	if err := req.Validate(); err != nil {
		return invoice.InvoiceResponse{}, err
	}

	if err := s.gateProject(ctx, projectID); err != nil {
		return invoice.InvoiceResponse{}, err
	}

	exists, err := s.invoiceRepo.ExistsByNumber(ctx, req.InvoiceNumber)
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}
	if exists {
		return invoice.InvoiceResponse{}, invoice.ErrInvoiceNumberExists
	}

	issueDate, _ := time.Parse("2006-01-02", req.IssueDate)
	dueDate, _ := time.Parse("2006-01-02", req.DueDate)

	newInvoice := invoice.Invoice{
		ID:            uuid.NewString(),
		ProjectID:     projectID,
		InvoiceNumber: req.InvoiceNumber,
		ClientName:    req.ClientName,
		Amount:        req.Amount,
		Status:        invoice.Status(req.Status),
		IssueDate:     issueDate,
		DueDate:       dueDate,
		RecipientID:   req.RecipientID,
	}

	created, err := s.invoiceRepo.Create(ctx, newInvoice)
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}

	return invoice.ToResponse(created), nil
}
