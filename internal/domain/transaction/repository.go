package transaction

import "context"

type TransactionRepository interface {
	ListByProject(ctx context.Context, projectID string) ([]Transaction, error)
	Create(ctx context.Context, newTransaction Transaction) (Transaction, error)
}
