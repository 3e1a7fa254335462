package transaction

import (
	"github.com/constructor-app/constructor-backend-go/internal/pkg/validator"
)

// TransactionResponse represents transaction data in API responses
type TransactionResponse struct {
	ID               string   `json:"id"`
	ProjectID        string   `json:"project_id"`
	Date             string   `json:"date"`
	Description      string   `json:"description"`
	Type             string   `json:"type"`
	Category         string   `json:"category"`
	Amount           float64  `json:"amount"`
	ReceiptURL       string   `json:"receipt_url,omitempty"`
	RecordedByID     string   `json:"recorded_by_id,omitempty"`
	InvolvedUserIDs  []string `json:"involved_user_ids,omitempty"`
	ExternalInvolved []string `json:"external_involved,omitempty"`
}

func ToResponse(t Transaction) TransactionResponse {
	return TransactionResponse{
		ID:               t.ID,
		ProjectID:        t.ProjectID,
		Date:             t.Date.Format("2006-01-02"),
		Description:      t.Description,
		Type:             string(t.Type),
		Category:         string(t.Category),
		Amount:           t.Amount,
		ReceiptURL:       t.ReceiptURL,
		RecordedByID:     t.RecordedByID,
		InvolvedUserIDs:  t.InvolvedUserIDs,
		ExternalInvolved: t.ExternalInvolved,
	}
}

func ToResponses(transactions []Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		out = append(out, ToResponse(t))
	}
	return out
}

// ListResponse pairs the visible transactions with their running totals
type ListResponse struct {
	Transactions  []TransactionResponse `json:"transactions"`
	TotalIncoming float64               `json:"total_incoming"`
	TotalExpenses float64               `json:"total_expenses"`
	NetBalance    float64               `json:"net_balance"`
}

// CreateTransactionRequest represents request to record a transaction
type CreateTransactionRequest struct {
	Date             string   `json:"date"`
	Description      string   `json:"description"`
	Type             string   `json:"type"`
	Category         string   `json:"category"`
	Amount           float64  `json:"amount"`
	ReceiptURL       string   `json:"receipt_url"`
	InvolvedUserIDs  []string `json:"involved_user_ids"`
	ExternalInvolved []string `json:"external_involved"`
}

func (r *CreateTransactionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type is required",
		})
	} else if !validator.IsInSlice(r.Type, TypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "invalid transaction type",
		})
	}

	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category is required",
		})
	} else if !validator.IsInSlice(r.Category, CategoryValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "invalid category",
		})
	}

	if r.Amount <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
