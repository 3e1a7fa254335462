package invoice

import (
	"github.com/constructor-app/constructor-backend-go/internal/pkg/validator"
)

type InvoiceResponse struct {
	ID            string  `json:"id"`
	ProjectID     string  `json:"project_id"`
	InvoiceNumber string  `json:"invoice_number"`
	ClientName    string  `json:"client_name"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
	IssueDate     string  `json:"issue_date"`
	DueDate       string  `json:"due_date"`
	RecipientID   string  `json:"recipient_id,omitempty"`
}

func ToResponse(i Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:            i.ID,
		ProjectID:     i.ProjectID,
		InvoiceNumber: i.InvoiceNumber,
		ClientName:    i.ClientName,
		Amount:        i.Amount,
		Status:        string(i.Status),
		IssueDate:     i.IssueDate.Format("2006-01-02"),
		DueDate:       i.DueDate.Format("2006-01-02"),
		RecipientID:   i.RecipientID,
	}
}

func ToResponses(invoices []Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invoices))
	for _, i := range invoices {
		out = append(out, ToResponse(i))
	}
	return out
}

type CreateInvoiceRequest struct {
	InvoiceNumber string  `json:"invoice_number"`
	ClientName    string  `json:"client_name"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
	IssueDate     string  `json:"issue_date"`
	DueDate       string  `json:"due_date"`
	RecipientID   string  `json:"recipient_id"`
}

func (r *CreateInvoiceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.InvoiceNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "invoice_number",
			Message: "invoice_number is required",
		})
	}

	if validator.IsEmpty(r.ClientName) {
		errs = append(errs, validator.ValidationError{
			Field:   "client_name",
			Message: "client_name is required",
		})
	}

	if r.Amount <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be positive",
		})
	}

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	} else if !validator.IsInSlice(r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "invalid invoice status",
		})
	}

	if _, ok := validator.IsValidDate(r.IssueDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "issue_date",
			Message: "issue_date must be in YYYY-MM-DD format",
		})
	}

	if _, ok := validator.IsValidDate(r.DueDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "due_date",
			Message: "due_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
