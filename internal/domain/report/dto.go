package report

import (
	"github.com/constructor-app/constructor-backend-go/internal/pkg/validator"
)

type ReportResponse struct {
	ID                 string   `json:"id"`
	ProjectID          string   `json:"project_id"`
	Title              string   `json:"title"`
	Date               string   `json:"date"`
	AuthorID           string   `json:"author_id"`
	Content            string   `json:"content"`
	PercentageComplete int      `json:"percentage_complete"`
	Photos             []string `json:"photos,omitempty"`
}

func ToResponse(r ProgressReport) ReportResponse {
	return ReportResponse{
		ID:                 r.ID,
		ProjectID:          r.ProjectID,
		Title:              r.Title,
		Date:               r.Date.Format("2006-01-02"),
		AuthorID:           r.AuthorID,
		Content:            r.Content,
		PercentageComplete: r.PercentageComplete,
		Photos:             r.Photos,
	}
}

func ToResponses(reports []ProgressReport) []ReportResponse {
	out := make([]ReportResponse, 0, len(reports))
	for _, r := range reports {
		out = append(out, ToResponse(r))
	}
	return out
}

type CreateReportRequest struct {
	Title              string   `json:"title"`
	Date               string   `json:"date"`
	Content            string   `json:"content"`
	PercentageComplete int      `json:"percentage_complete"`
	Photos             []string `json:"photos"`
}

func (r *CreateReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if validator.IsEmpty(r.Content) {
		errs = append(errs, validator.ValidationError{
			Field:   "content",
			Message: "content is required",
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

	if r.PercentageComplete < 0 || r.PercentageComplete > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "percentage_complete",
			Message: "percentage_complete must be between 0 and 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
