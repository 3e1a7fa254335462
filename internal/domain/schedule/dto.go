package schedule

import (
	"github.com/constructor-app/constructor-backend-go/internal/pkg/validator"
)

type PhaseResponse struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status"`
	Progress  int    `json:"progress"`
}

func ToResponse(p Phase) PhaseResponse {
	return PhaseResponse{
		ID:        p.ID,
		ProjectID: p.ProjectID,
		Name:      p.Name,
		StartDate: p.StartDate.Format("2006-01-02"),
		EndDate:   p.EndDate.Format("2006-01-02"),
		Status:    string(p.Status),
		Progress:  p.Progress,
	}
}

func ToResponses(phases []Phase) []PhaseResponse {
	out := make([]PhaseResponse, 0, len(phases))
	for _, p := range phases {
		out = append(out, ToResponse(p))
	}
	return out
}

type CreatePhaseRequest struct {
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *CreatePhaseRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date cannot be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdatePhaseProgressRequest struct {
	Progress int    `json:"progress"`
	Status   string `json:"status"`
}

func (r *UpdatePhaseProgressRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Progress < 0 || r.Progress > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "progress",
			Message: "progress must be between 0 and 100",
		})
	}

	if !validator.IsEmpty(r.Status) && !validator.IsInSlice(r.Status, PhaseStatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "invalid phase status",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
