package transaction

import (
	"context"
	"time"

	"github.com/constructor-app/constructor-backend-go/internal/domain/project"
	"github.com/constructor-app/constructor-backend-go/internal/domain/transaction"
	"github.com/constructor-app/constructor-backend-go/internal/pkg/actor"
	"github.com/google/uuid"
)

type TransactionService interface {
	// ListVisible returns the transactions the acting user may see on a
	// project, most recent first, together with their totals.
	ListVisible(ctx context.Context, projectID string) (transaction.ListResponse, error)
	Add(ctx context.Context, projectID string, req transaction.CreateTransactionRequest) (transaction.TransactionResponse, error)
}

type TransactionServiceImpl struct {
	transactionRepo transaction.TransactionRepository
	projectRepo     project.ProjectRepository
}

func NewTransactionService(transactionRepo transaction.TransactionRepository, projectRepo project.ProjectRepository) TransactionService {
	return &TransactionServiceImpl{
		transactionRepo: transactionRepo,
		projectRepo:     projectRepo,
	}
}

func (s *TransactionServiceImpl) ListVisible(ctx context.Context, projectID string) (transaction.ListResponse, error) {
	actingUser, err := actor.FromContext(ctx)
	if err != nil {
		return transaction.ListResponse{}, err
	}

	all, err := s.transactionRepo.ListByProject(ctx, projectID)
	if err != nil {
		return transaction.ListResponse{}, err
	}

	visible := transaction.FilterVisible(all, actingUser)
	incoming, expenses, net := transaction.Totals(visible)

	return transaction.ListResponse{
		Transactions:  transaction.ToResponses(visible),
		TotalIncoming: incoming,
		TotalExpenses: expenses,
		NetBalance:    net,
	}, nil
}

func (s *TransactionServiceImpl) Add(ctx context.Context, projectID string, req transaction.CreateTransactionRequest) (transaction.TransactionResponse, error) {
	actingUser, err := actor.FromContext(ctx)
	if err != nil {
		return transaction.TransactionResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return transaction.TransactionResponse{}, err
	}

	p, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return transaction.TransactionResponse{}, err
	}
	if !p.VisibleTo(actingUser) {
		return transaction.TransactionResponse{}, project.ErrProjectAccessDenied
	}

	txDate, _ := time.Parse("2006-01-02", req.Date)

	// empty involved sets are stored as nil so downstream "-" rendering
	// can tell absent from empty
	involved := req.InvolvedUserIDs
	if len(involved) == 0 {
		involved = nil
	}
	external := req.ExternalInvolved
	if len(external) == 0 {
		external = nil
	}

	newTransaction := transaction.Transaction{
		ID:               uuid.NewString(),
		ProjectID:        projectID,
		Date:             txDate,
		Description:      req.Description,
		Type:             transaction.Type(req.Type),
		Category:         transaction.Category(req.Category),
		Amount:           req.Amount,
		ReceiptURL:       req.ReceiptURL,
		RecordedByID:     actingUser.ID,
		InvolvedUserIDs:  involved,
		ExternalInvolved: external,
	}

	created, err := s.transactionRepo.Create(ctx, newTransaction)
	if err != nil {
		return transaction.TransactionResponse{}, err
	}

	return transaction.ToResponse(created), nil
}
