package invoice

import "context"

type InvoiceRepository interface {
	ListByProject(ctx context.Context, projectID string) ([]Invoice, error)
	Create(ctx context.Context, newInvoice Invoice) (Invoice, error)
	ExistsByNumber(ctx context.Context, invoiceNumber string) (bool, error)
}
