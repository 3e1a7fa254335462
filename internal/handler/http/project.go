package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/constructor-app/constructor-backend-go/internal/domain/project"
	"github.com/constructor-app/constructor-backend-go/internal/handler/http/response"
	projectservice "github.com/constructor-app/constructor-backend-go/internal/service/project"
	"github.com/go-chi/chi/v5"
)

type ProjectHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Tabs(w http.ResponseWriter, r *http.Request)
	AddMember(w http.ResponseWriter, r *http.Request)
	RemoveMember(w http.ResponseWriter, r *http.Request)
	SetPermissions(w http.ResponseWriter, r *http.Request)
}

type ProjectHandlerImpl struct {
	projectService projectservice.ProjectService
}

func NewProjectHandler(projectService projectservice.ProjectService) ProjectHandler {
	return &ProjectHandlerImpl{projectService: projectService}
}

// List implements ProjectHandler.
func (h *ProjectHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.ListVisible(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, projects)
}

// Get implements ProjectHandler.
func (h *ProjectHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")
	if projectID == "" {
		response.BadRequest(w, "Project ID is required", nil)
		return
	}

	p, err := h.projectService.Get(r.Context(), projectID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, p)
}

// Tabs implements ProjectHandler. The optional ?current query parameter names
// the tab the client is on so a now-hidden tab can be re-selected.
func (h *ProjectHandlerImpl) Tabs(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")
	if projectID == "" {
		response.BadRequest(w, "Project ID is required", nil)
		return
	}

	tabs, err := h.projectService.Tabs(r.Context(), projectID, r.URL.Query().Get("current"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, tabs)
}

// AddMember implements ProjectHandler.
func (h *ProjectHandlerImpl) AddMember(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")
	if projectID == "" {
		response.BadRequest(w, "Project ID is required", nil)
		return
	}

	var req project.AddMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AddMember decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	member, err := h.projectService.AddMember(r.Context(), projectID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Member added successfully", member)
}

// RemoveMember implements ProjectHandler.
func (h *ProjectHandlerImpl) RemoveMember(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")
	userID := chi.URLParam(r, "userID")
	if projectID == "" || userID == "" {
		response.BadRequest(w, "Project ID and user ID are required", nil)
		return
	}

	if err := h.projectService.RemoveMember(r.Context(), projectID, userID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Member removed successfully", nil)
}

// SetPermissions implements ProjectHandler.
func (h *ProjectHandlerImpl) SetPermissions(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")
	userID := chi.URLParam(r, "userID")
	if projectID == "" || userID == "" {
		response.BadRequest(w, "Project ID and user ID are required", nil)
		return
	}

	var req project.SetPermissionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SetPermissions decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.projectService.SetPermissions(r.Context(), projectID, userID, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Permissions updated successfully", nil)
}
