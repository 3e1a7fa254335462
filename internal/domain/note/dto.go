package note

import (
	"time"

	"github.com/constructor-app/constructor-backend-go/internal/pkg/validator"
)

type NoteResponse struct {
	ID          string `json:"id"`
	ProjectID   string `json:"project_id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	LastUpdated string `json:"last_updated"`
	CreatorID   string `json:"creator_id"`
}

func ToResponse(n Note) NoteResponse {
	return NoteResponse{
		ID:          n.ID,
		ProjectID:   n.ProjectID,
		Title:       n.Title,
		Content:     n.Content,
		LastUpdated: n.LastUpdated.Format(time.RFC3339),
		CreatorID:   n.CreatorID,
	}
}

func ToResponses(notes []Note) []NoteResponse {
	out := make([]NoteResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, ToResponse(n))
	}
	return out
}

type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (r *CreateNoteRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (r *UpdateNoteRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
