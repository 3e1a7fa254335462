package memory

import (
	"context"

	"github.com/constructor-app/constructor-backend-go/internal/domain/transaction"
)

type TransactionRepositoryImpl struct {
	store *Store
}

func NewTransactionRepository(store *Store) transaction.TransactionRepository {
	return &TransactionRepositoryImpl{store: store}
}

func cloneTransaction(t transaction.Transaction) transaction.Transaction {
	out := t
	if t.InvolvedUserIDs != nil {
		out.InvolvedUserIDs = make([]string, len(t.InvolvedUserIDs))
		copy(out.InvolvedUserIDs, t.InvolvedUserIDs)
	}
	if t.ExternalInvolved != nil {
		out.ExternalInvolved = make([]string, len(t.ExternalInvolved))
		copy(out.ExternalInvolved, t.ExternalInvolved)
	}
	return out
}

func (r *TransactionRepositoryImpl) ListByProject(ctx context.Context, projectID string) ([]transaction.Transaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]transaction.Transaction, 0)
	for _, t := range r.store.transactions {
		if t.ProjectID == projectID {
			out = append(out, cloneTransaction(t))
		}
	}
	return out, nil
}

func (r *TransactionRepositoryImpl) Create(ctx context.Context, newTransaction transaction.Transaction) (transaction.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.transactions = append(r.store.transactions, cloneTransaction(newTransaction))
	return newTransaction, nil
}
