package material

import (
	"github.com/constructor-app/constructor-backend-go/internal/pkg/validator"
)

// MaterialResponse represents material data in API responses
type MaterialResponse struct {
	ID            string          `json:"id"`
	ProjectID     string          `json:"project_id"`
	Name          string          `json:"name"`
	Quantity      int             `json:"quantity"`
	Unit          string          `json:"unit"`
	Supplier      string          `json:"supplier"`
	Status        string          `json:"status"`
	SupplyDate    string          `json:"supply_date"`
	InvoiceNumber string          `json:"invoice_number,omitempty"`
	UsageHistory  []UsageResponse `json:"usage_history"`
	VisibleTo     []string        `json:"visible_to,omitempty"`
}

type UsageResponse struct {
	Date         string `json:"date"`
	QuantityUsed int    `json:"quantity_used"`
	Notes        string `json:"notes,omitempty"`
}

func ToResponse(m Material) MaterialResponse {
	history := make([]UsageResponse, 0, len(m.UsageHistory))
	for _, u := range m.UsageHistory {
		history = append(history, UsageResponse{
			Date:         u.Date.Format("2006-01-02"),
			QuantityUsed: u.QuantityUsed,
			Notes:        u.Notes,
		})
	}
	return MaterialResponse{
		ID:            m.ID,
		ProjectID:     m.ProjectID,
		Name:          m.Name,
		Quantity:      m.Quantity,
		Unit:          m.Unit,
		Supplier:      m.Supplier,
		Status:        string(m.Status),
		SupplyDate:    m.SupplyDate.Format("2006-01-02"),
		InvoiceNumber: m.InvoiceNumber,
		UsageHistory:  history,
		VisibleTo:     m.VisibleTo,
	}
}

func ToResponses(materials []Material) []MaterialResponse {
	out := make([]MaterialResponse, 0, len(materials))
	for _, m := range materials {
		out = append(out, ToResponse(m))
	}
	return out
}

// CreateMaterialRequest represents request to add a material to a project
type CreateMaterialRequest struct {
	Name          string   `json:"name"`
	Quantity      int      `json:"quantity"`
	Unit          string   `json:"unit"`
	Supplier      string   `json:"supplier"`
	SupplyDate    string   `json:"supply_date"`
	InvoiceNumber string   `json:"invoice_number"`
	VisibleTo     []string `json:"visible_to"`
}

func (r *CreateMaterialRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.Quantity <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "quantity",
			Message: "quantity must be a positive integer",
		})
	}

	if validator.IsEmpty(r.Unit) {
		errs = append(errs, validator.ValidationError{
			Field:   "unit",
			Message: "unit is required",
		})
	}

	if validator.IsEmpty(r.Supplier) {
		errs = append(errs, validator.ValidationError{
			Field:   "supplier",
			Message: "supplier is required",
		})
	}

	if !validator.IsEmpty(r.SupplyDate) {
		if _, ok := validator.IsValidDate(r.SupplyDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "supply_date",
				Message: "supply_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// LogUsageRequest represents request to log material usage
type LogUsageRequest struct {
	QuantityUsed int    `json:"quantity_used"`
	Date         string `json:"date"`
	Notes        string `json:"notes"`
}

func (r *LogUsageRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.QuantityUsed <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "quantity_used",
			Message: "quantity_used must be a positive integer",
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

	if len(errs) > 0 {
		return errs
	}

	return nil
}
