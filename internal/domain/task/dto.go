package task

import (
	"github.com/constructor-app/constructor-backend-go/internal/domain/user"
	"github.com/constructor-app/constructor-backend-go/internal/pkg/validator"
)

// TaskResponse represents task data in API responses
type TaskResponse struct {
	ID        string             `json:"id"`
	ProjectID string             `json:"project_id"`
	Title     string             `json:"title"`
	Status    string             `json:"status"`
	Assignee  *user.UserResponse `json:"assignee,omitempty"`
	DueDate   string             `json:"due_date"`
	Priority  string             `json:"priority"`
}

func ToResponse(t Task) TaskResponse {
	resp := TaskResponse{
		ID:        t.ID,
		ProjectID: t.ProjectID,
		Title:     t.Title,
		Status:    string(t.Status),
		DueDate:   t.DueDate.Format("2006-01-02"),
		Priority:  string(t.Priority),
	}
	if t.Assignee != nil {
		assignee := user.ToResponse(*t.Assignee)
		resp.Assignee = &assignee
	}
	return resp
}

func ToResponses(tasks []Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, ToResponse(t))
	}
	return out
}

// CreateTaskRequest represents request to create a task on the kanban board
type CreateTaskRequest struct {
	Title      string `json:"title"`
	Priority   string `json:"priority"`
	DueDate    string `json:"due_date"`
	AssigneeID string `json:"assignee_id"`
}

func (r *CreateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if validator.IsEmpty(r.Priority) {
		errs = append(errs, validator.ValidationError{
			Field:   "priority",
			Message: "priority is required",
		})
	} else if !validator.IsInSlice(r.Priority, PriorityValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "priority",
			Message: "invalid priority",
		})
	}

	if validator.IsEmpty(r.DueDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "due_date",
			Message: "due_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.DueDate); !ok {
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

// UpdateTaskStatusRequest moves a task between kanban columns
type UpdateTaskStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateTaskStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	} else if !validator.IsInSlice(r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "invalid task status",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
