package document

import (
	"github.com/constructor-app/constructor-backend-go/internal/pkg/validator"
)

type DocumentResponse struct {
	ID         string `json:"id"`
	ProjectID  string `json:"project_id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Version    string `json:"version"`
	UploadDate string `json:"upload_date"`
	URL        string `json:"url"`
}

func ToResponse(d Document) DocumentResponse {
	return DocumentResponse{
		ID:         d.ID,
		ProjectID:  d.ProjectID,
		Name:       d.Name,
		Type:       string(d.Type),
		Version:    d.Version,
		UploadDate: d.UploadDate.Format("2006-01-02"),
		URL:        d.URL,
	}
}

func ToResponses(documents []Document) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(documents))
	for _, d := range documents {
		out = append(out, ToResponse(d))
	}
	return out
}

type CreateDocumentRequest struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Version string `json:"version"`
	URL     string `json:"url"`
}

func (r *CreateDocumentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
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
			Message: "invalid document type",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
