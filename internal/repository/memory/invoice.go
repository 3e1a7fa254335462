package memory

import (
	"context"

	"github.com/constructor-app/constructor-backend-go/internal/domain/invoice"
)

type InvoiceRepositoryImpl struct {
	store *Store
}

func NewInvoiceRepository(store *Store) invoice.InvoiceRepository {
	return &InvoiceRepositoryImpl{store: store}
}

func (r *InvoiceRepositoryImpl) ListByProject(ctx context.Context, projectID string) ([]invoice.Invoice, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]invoice.Invoice, 0)
	for _, i := range r.store.invoices {
		if i.ProjectID == projectID {
			out = append(out, i)
		}
	}
	return out, nil
}

func (r *InvoiceRepositoryImpl) Create(ctx context.Context, newInvoice invoice.Invoice) (invoice.Invoice, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, i := range r.store.invoices {
		if i.InvoiceNumber == newInvoice.InvoiceNumber {
			return invoice.Invoice{}, invoice.ErrInvoiceNumberExists
		}
	}
	r.store.invoices = append(r.store.invoices, newInvoice)
	return newInvoice, nil
}

func (r *InvoiceRepositoryImpl) ExistsByNumber(ctx context.Context, invoiceNumber string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, i := range r.store.invoices {
		if i.InvoiceNumber == invoiceNumber {
			return true, nil
		}
	}
	return false, nil
}
