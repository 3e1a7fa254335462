package project

import (
	"github.com/constructor-app/constructor-backend-go/internal/domain/user"
	"github.com/constructor-app/constructor-backend-go/internal/pkg/validator"
)

// ProjectResponse represents project data in API responses
type ProjectResponse struct {
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	Location   string              `json:"location"`
	StartDate  string              `json:"start_date"`
	DueDate    string              `json:"due_date"`
	Budget     float64             `json:"budget"`
	ActualCost float64             `json:"actual_cost"`
	Status     string              `json:"status"`
	Progress   int                 `json:"progress"`
	Members    []user.UserResponse `json:"members"`
	ClientID   string              `json:"client_id,omitempty"`
}

func ToResponse(p Project) ProjectResponse {
	return ProjectResponse{
		ID:         p.ID,
		Name:       p.Name,
		Location:   p.Location,
		StartDate:  p.StartDate.Format("2006-01-02"),
		DueDate:    p.DueDate.Format("2006-01-02"),
		Budget:     p.Budget,
		ActualCost: p.ActualCost,
		Status:     string(p.Status),
		Progress:   p.Progress,
		Members:    user.ToResponses(p.Members),
		ClientID:   p.ClientID,
	}
}

func ToResponses(projects []Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, ToResponse(p))
	}
	return out
}

// TabsResponse carries the resolved tab set for the acting user on a project
type TabsResponse struct {
	Tabs      []Tab    `json:"tabs"`
	VisibleID []string `json:"visible_ids"`
	ActiveTab string   `json:"active_tab"`
}

// AddMemberRequest represents request to add a member to a project team
type AddMemberRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (r *AddMemberRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	} else if !validator.IsInSlice(r.Role, user.RoleValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "invalid role",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// SetPermissionsRequest replaces the allowed-tab override for one member.
// AllowedTabs may be empty: that hides every tab for the member.
type SetPermissionsRequest struct {
	AllowedTabs []string `json:"allowed_tabs"`
}

func (r *SetPermissionsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.AllowedTabs == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "allowed_tabs",
			Message: "allowed_tabs is required",
		})
	}

	for _, id := range r.AllowedTabs {
		if !IsKnownTab(id) {
			errs = append(errs, validator.ValidationError{
				Field:   "allowed_tabs",
				Message: "unknown tab id: " + id,
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
